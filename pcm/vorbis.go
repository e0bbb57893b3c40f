package pcm

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
)

// DecodeVorbis decodes an Ogg Vorbis stream.
func DecodeVorbis(r io.Reader) (*Clip, error) {
	samples, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decoding vorbis: %w", err)
	}
	if len(samples) == 0 {
		return nil, ErrEmptyClip
	}

	pcm16 := make([]int16, len(samples))
	for i, x := range samples {
		if x > 1 {
			x = 1
		} else if x < -1 {
			x = -1
		}
		pcm16[i] = int16(x * 32767)
	}
	return &Clip{
		Data:     fromSamples(pcm16),
		Rate:     format.SampleRate,
		Channels: format.Channels,
	}, nil
}
