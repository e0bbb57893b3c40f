package pcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/pion/opus"
	"github.com/pion/opus/pkg/oggreader"
)

// maxOpusFrameBytes is the largest single Opus frame at the decoder's
// 48 kHz mono output rate: 60 ms, 2880 samples.
const maxOpusFrameBytes = 2880 * 2

// opusFrameSamples returns the decoded length in samples of a packet's
// frame at 48 kHz, derived from the config bits of its TOC byte
// (RFC 6716 section 3.1).
func opusFrameSamples(toc byte) int {
	config := int(toc >> 3)
	switch {
	case config < 12: // SILK-only: 10, 20, 40, 60 ms
		return [...]int{480, 960, 1920, 2880}[config%4]
	case config < 16: // hybrid: 10, 20 ms
		return [...]int{480, 960}[config%2]
	default: // CELT-only: 2.5, 5, 10, 20 ms
		return [...]int{120, 240, 480, 960}[config%4]
	}
}

// DecodeOpus decodes an Ogg Opus stream with the pure-Go pion decoder,
// which outputs mono at 48 kHz. The decoded length of each packet is taken
// from its TOC byte.
func DecodeOpus(r io.Reader) (*Clip, error) {
	ogg, _, err := oggreader.NewWith(r)
	if err != nil {
		return nil, fmt.Errorf("reading ogg container: %w", err)
	}

	dec := opus.NewDecoder()
	var data []byte
	out := make([]byte, maxOpusFrameBytes)

	for {
		segments, _, err := ogg.ParseNextPage()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading ogg page: %w", err)
		}
		for _, segment := range segments {
			// Header packets carry no audio.
			if len(segment) == 0 ||
				bytes.HasPrefix(segment, []byte("OpusHead")) ||
				bytes.HasPrefix(segment, []byte("OpusTags")) {
				continue
			}
			if _, _, err := dec.Decode(segment, out); err != nil {
				return nil, fmt.Errorf("decoding opus frame: %w", err)
			}
			data = append(data, out[:opusFrameSamples(segment[0])*2]...)
		}
	}
	if len(data) == 0 {
		return nil, ErrEmptyClip
	}

	return &Clip{Data: data, Rate: 48000, Channels: 1}, nil
}
