// Package mix provides Go bindings for the SDL2_mixer audio library.
//
// SDL2_mixer is a multi-channel sample mixer built on SDL2. It decodes a
// range of audio formats (WAV, OGG, MP3, FLAC, MOD, MIDI, Opus), mixes
// short samples on numbered channels, streams one music track, and applies
// fades and simple positional effects. This package forwards each operation
// to the native library, translating return codes into errors and wrapping
// native pointers in handle types with explicit lifecycles.
//
// # Basic Usage
//
//	import mix "github.com/locallycompact/sdl2-mixer"
//
//	if err := mix.OpenAudio(mix.DefaultSpec(), 1024); err != nil {
//	    log.Fatal(err)
//	}
//	defer mix.CloseAudio()
//
//	chunk, err := mix.LoadWAV("door.wav")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer chunk.Close()
//
//	if _, err := chunk.Play(mix.AnyChannel, 0); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The native library serializes mixing internally, but handle lifecycles are
// not synchronized: do not Close a handle while another goroutine is playing
// it. The finished hooks run on the native audio thread; see OnChannelFinished.
package mix

/*
#cgo pkg-config: SDL2_mixer
#include <SDL2/SDL.h>
#include <SDL2/SDL_mixer.h>
*/
import "C"
import "fmt"

// InitFlags selects which optional decoder backends Init loads.
type InitFlags int

const (
	InitFLAC InitFlags = C.MIX_INIT_FLAC
	InitMOD  InitFlags = C.MIX_INIT_MOD
	InitMP3  InitFlags = C.MIX_INIT_MP3
	InitOGG  InitFlags = C.MIX_INIT_OGG
	InitMID  InitFlags = C.MIX_INIT_MID
	InitOpus InitFlags = C.MIX_INIT_OPUS
)

// Init loads decoder support for the requested formats. It reports an error
// if any requested backend failed to load; backends that did load stay
// loaded. Call Quit to unload them.
func Init(flags InitFlags) error {
	got := InitFlags(C.Mix_Init(C.int(flags)))
	if got&flags != flags {
		return lastError("Mix_Init")
	}
	return nil
}

// Quit unloads all decoder backends loaded by Init.
func Quit() {
	C.Mix_Quit()
}

// Format identifies a sample format of the opened audio device.
type Format uint16

const (
	FormatU8     Format = C.AUDIO_U8
	FormatS8     Format = C.AUDIO_S8
	FormatU16LSB Format = C.AUDIO_U16LSB
	FormatS16LSB Format = C.AUDIO_S16LSB
	FormatU16MSB Format = C.AUDIO_U16MSB
	FormatS16MSB Format = C.AUDIO_S16MSB

	// Native byte order variants.
	FormatU16Sys Format = C.AUDIO_U16SYS
	FormatS16Sys Format = C.AUDIO_S16SYS
)

// Default device parameters of the native library.
const (
	DefaultFrequency = C.MIX_DEFAULT_FREQUENCY
	DefaultFormat    = Format(C.MIX_DEFAULT_FORMAT)
	DefaultChannels  = C.MIX_DEFAULT_CHANNELS

	// Mono and Stereo are the supported output channel counts.
	Mono   = 1
	Stereo = 2
)

// Spec describes the output format of the mixer device.
type Spec struct {
	Frequency int    // samples per second
	Format    Format // sample format
	Channels  int    // Mono or Stereo
}

// DefaultSpec returns the native library's default device parameters
// (22050 Hz, native-endian signed 16-bit, stereo).
func DefaultSpec() Spec {
	return Spec{
		Frequency: DefaultFrequency,
		Format:    DefaultFormat,
		Channels:  DefaultChannels,
	}
}

// OpenAudio opens the audio device. chunkSize is the mixing buffer length in
// sample frames; smaller buffers reduce latency at the cost of more frequent
// callbacks. The device may be opened multiple times; each OpenAudio must be
// balanced by a CloseAudio, and only the first open sets the format.
func OpenAudio(spec Spec, chunkSize int) error {
	if C.Mix_OpenAudio(C.int(spec.Frequency), C.Uint16(spec.Format),
		C.int(spec.Channels), C.int(chunkSize)) != 0 {
		return lastError("Mix_OpenAudio")
	}
	return nil
}

// CloseAudio closes the audio device, undoing one OpenAudio.
func CloseAudio() {
	C.Mix_CloseAudio()
}

func (s *Spec) query() C.int {
	var freq, channels C.int
	var format C.Uint16
	n := C.Mix_QuerySpec(&freq, &format, &channels)
	s.Frequency = int(freq)
	s.Format = Format(format)
	s.Channels = int(channels)
	return n
}

// QuerySpec reports the format the device was actually opened with, which
// may differ from the one requested, and how many times it has been opened.
func QuerySpec() (Spec, int, error) {
	var spec Spec
	n := spec.query()
	if n == 0 {
		return Spec{}, 0, lastError("Mix_QuerySpec")
	}
	return spec, int(n), nil
}

// Version identifies a release of the native library.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String returns the version as a formatted string.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// LinkedVersion returns the version of the SDL2_mixer library the process
// is actually linked against, which may differ from the headers it was
// compiled with.
func LinkedVersion() Version {
	ver := C.Mix_Linked_Version()
	return Version{
		Major: int(ver.major),
		Minor: int(ver.minor),
		Patch: int(ver.patch),
	}
}
