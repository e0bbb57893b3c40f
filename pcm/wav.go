package pcm

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/wav"
)

// ErrNotWAV is returned by DecodeWAV for input that is not a RIFF/WAVE file.
var ErrNotWAV = errors.New("not a WAV file")

// DecodeWAV decodes a RIFF/WAVE file. Samples narrower or wider than 16 bits
// are rescaled to 16.
func DecodeWAV(r io.ReadSeeker) (*Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWAV
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding wav: %w", err)
	}
	if len(buf.Data) == 0 {
		return nil, ErrEmptyClip
	}

	depth := buf.SourceBitDepth
	if depth == 0 {
		depth = int(dec.BitDepth)
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = scaleTo16(v, depth)
	}
	return &Clip{
		Data:     fromSamples(samples),
		Rate:     buf.Format.SampleRate,
		Channels: buf.Format.NumChannels,
	}, nil
}

// scaleTo16 rescales a sample of the given bit depth to signed 16-bit.
// 8-bit WAV data is unsigned per the RIFF spec.
func scaleTo16(v, depth int) int16 {
	switch depth {
	case 8:
		return int16((v - 128) << 8)
	case 16:
		return int16(v)
	case 24:
		return int16(v >> 8)
	case 32:
		return int16(v >> 16)
	default:
		return int16(v)
	}
}
