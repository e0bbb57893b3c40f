package pcm

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
)

// DecodeMP3 decodes an MPEG audio stream. The decoder always produces
// stereo output at the stream's sample rate.
func DecodeMP3(r io.Reader) (*Clip, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3: %w", err)
	}

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyClip
	}

	// go-mp3 emits s16le stereo regardless of the source layout.
	return &Clip{
		Data:     data,
		Rate:     dec.SampleRate(),
		Channels: 2,
	}, nil
}
