// Package pcm decodes common audio formats into raw PCM clips without
// touching the native mixer library.
//
// The mixer's quick-load path accepts raw sample data already in the opened
// device's format and nothing else. This package produces that data in pure
// Go: it decodes WAV, MP3, Ogg Vorbis and Ogg Opus files into interleaved
// signed 16-bit little-endian samples, and converts clips between sample
// rates and channel layouts so they match the device spec.
//
//	clip, err := pcm.Decode(f)
//	if err != nil {
//	    return err
//	}
//	clip = clip.Convert(spec.Frequency, spec.Channels)
//	chunk, err := mix.QuickLoadRaw(clip.Data)
package pcm
