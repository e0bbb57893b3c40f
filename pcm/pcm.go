package pcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"
)

var (
	// ErrUnknownFormat is returned by Decode when the input matches no
	// supported container.
	ErrUnknownFormat = errors.New("unrecognized audio format")

	// ErrEmptyClip is returned when decoding produced no samples.
	ErrEmptyClip = errors.New("no samples decoded")
)

// Clip is a fully decoded audio clip: interleaved signed 16-bit
// little-endian samples.
type Clip struct {
	Data     []byte // interleaved s16le sample frames
	Rate     int    // sample rate in Hz
	Channels int    // interleaved channel count
}

// Frames returns the number of sample frames in the clip.
func (c *Clip) Frames() int {
	if c.Channels == 0 {
		return 0
	}
	return len(c.Data) / 2 / c.Channels
}

// Duration returns the clip's play time.
func (c *Clip) Duration() time.Duration {
	if c.Rate == 0 {
		return 0
	}
	return time.Duration(c.Frames()) * time.Second / time.Duration(c.Rate)
}

// samples returns the clip's data as int16 values.
func (c *Clip) samples() []int16 {
	s := make([]int16, len(c.Data)/2)
	for i := range s {
		s[i] = int16(uint16(c.Data[2*i]) | uint16(c.Data[2*i+1])<<8)
	}
	return s
}

// fromSamples builds clip data from int16 values.
func fromSamples(s []int16) []byte {
	data := make([]byte, len(s)*2)
	for i, v := range s {
		data[2*i] = byte(v)
		data[2*i+1] = byte(uint16(v) >> 8)
	}
	return data
}

// Decode sniffs the input's leading bytes and dispatches to the matching
// format decoder. It recognizes RIFF/WAVE, Ogg pages carrying Vorbis or
// Opus, and MP3 streams with or without an ID3 tag.
func Decode(r io.ReadSeeker) (*Clip, error) {
	head := make([]byte, 512)
	n, err := io.ReadAtLeast(r, head, 4)
	if err != nil {
		return nil, fmt.Errorf("sniffing format: %w", err)
	}
	head = head[:n]
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding input: %w", err)
	}

	switch {
	case bytes.HasPrefix(head, []byte("RIFF")):
		return DecodeWAV(r)
	case bytes.HasPrefix(head, []byte("OggS")):
		if bytes.Contains(head, []byte("OpusHead")) {
			return DecodeOpus(r)
		}
		return DecodeVorbis(r)
	case bytes.HasPrefix(head, []byte("ID3")), looksLikeMPEG(head):
		return DecodeMP3(r)
	default:
		return nil, ErrUnknownFormat
	}
}

// looksLikeMPEG reports whether the buffer starts with an MPEG frame sync.
func looksLikeMPEG(head []byte) bool {
	return len(head) >= 2 && head[0] == 0xFF && head[1]&0xE0 == 0xE0
}
