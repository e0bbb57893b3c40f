package mix

/*
#cgo pkg-config: SDL2_mixer
#include <stdlib.h>
#include <SDL2/SDL.h>
#include <SDL2/SDL_mixer.h>

extern void goMusicFinished(void);

static void mix_hook_music_finished(int enable) {
	Mix_HookMusicFinished(enable ? goMusicFinished : NULL);
}
*/
import "C"
import (
	"runtime"
	"unsafe"
)

// Music is a streamed music track. Unlike chunks, music is decoded on the
// fly, and the native library plays at most one track at a time; the
// package-level music functions control whichever track is playing.
type Music struct {
	handle *C.Mix_Music
}

// MusicType identifies the format a music track was decoded from.
type MusicType int

const (
	MusicNone MusicType = C.MUS_NONE
	MusicCMD  MusicType = C.MUS_CMD
	MusicWAV  MusicType = C.MUS_WAV
	MusicMOD  MusicType = C.MUS_MOD
	MusicMID  MusicType = C.MUS_MID
	MusicOGG  MusicType = C.MUS_OGG
	MusicMP3  MusicType = C.MUS_MP3
	MusicFLAC MusicType = C.MUS_FLAC
	MusicOpus MusicType = C.MUS_OPUS
)

func (t MusicType) String() string {
	switch t {
	case MusicCMD:
		return "CMD"
	case MusicWAV:
		return "WAV"
	case MusicMOD:
		return "MOD"
	case MusicMID:
		return "MID"
	case MusicOGG:
		return "OGG"
	case MusicMP3:
		return "MP3"
	case MusicFLAC:
		return "FLAC"
	case MusicOpus:
		return "Opus"
	default:
		return "none"
	}
}

// LoadMusic loads a music track from a file, detecting the format from its
// contents.
func LoadMusic(path string) (*Music, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	handle := C.Mix_LoadMUS(cpath)
	if handle == nil {
		return nil, lastError("Mix_LoadMUS")
	}
	m := &Music{handle: handle}
	runtime.SetFinalizer(m, (*Music).Close)
	return m, nil
}

// Type returns the format the track was decoded from.
func (m *Music) Type() MusicType {
	if m.handle == nil {
		return MusicNone
	}
	return MusicType(C.Mix_GetMusicType(m.handle))
}

// Play starts the track, halting any music already playing. loops is the
// number of times to play; LoopForever plays until halted.
func (m *Music) Play(loops int) error {
	if m.handle == nil {
		return ErrClosed
	}
	if C.Mix_PlayMusic(m.handle, C.int(loops)) != 0 {
		return lastError("Mix_PlayMusic")
	}
	return nil
}

// FadeIn starts the track like Play, ramping from silence to the music
// volume over ms milliseconds.
func (m *Music) FadeIn(loops, ms int) error {
	if m.handle == nil {
		return ErrClosed
	}
	if C.Mix_FadeInMusic(m.handle, C.int(loops), C.int(ms)) != 0 {
		return lastError("Mix_FadeInMusic")
	}
	return nil
}

// FadeInAt is FadeIn starting pos seconds into the track. Position
// semantics depend on the format, as SetMusicPosition.
func (m *Music) FadeInAt(loops, ms int, pos float64) error {
	if m.handle == nil {
		return ErrClosed
	}
	if C.Mix_FadeInMusicPos(m.handle, C.int(loops), C.int(ms), C.double(pos)) != 0 {
		return lastError("Mix_FadeInMusicPos")
	}
	return nil
}

// Close frees the track, halting it first if it is playing. Safe to call
// twice.
func (m *Music) Close() error {
	if m.handle != nil {
		C.Mix_FreeMusic(m.handle)
		m.handle = nil
		runtime.SetFinalizer(m, nil)
	}
	return nil
}

// MusicVolume sets the music volume (0..MaxVolume) and returns the previous
// value. Pass -1 to query.
func MusicVolume(v int) int {
	return int(C.Mix_VolumeMusic(C.int(v)))
}

// PauseMusic suspends the playing track.
func PauseMusic() {
	C.Mix_PauseMusic()
}

// ResumeMusic continues a paused track.
func ResumeMusic() {
	C.Mix_ResumeMusic()
}

// RewindMusic restarts the playing track from the beginning. Only some
// formats support rewinding.
func RewindMusic() {
	C.Mix_RewindMusic()
}

// HaltMusic stops the playing track, firing the music finished hook.
func HaltMusic() {
	C.Mix_HaltMusic()
}

// FadeOutMusic ramps the playing track to silence over ms milliseconds and
// halts it. It reports whether a fade was started.
func FadeOutMusic(ms int) bool {
	return C.Mix_FadeOutMusic(C.int(ms)) != 0
}

// PlayingMusic reports whether a track is playing. Paused music counts as
// playing.
func PlayingMusic() bool {
	return C.Mix_PlayingMusic() != 0
}

// PausedMusic reports whether the playing track is paused.
func PausedMusic() bool {
	return C.Mix_PausedMusic() != 0
}

// FadingMusic reports the playing track's fade state.
func FadingMusic() Fading {
	return Fading(C.Mix_FadingMusic())
}

// SetMusicPosition seeks within the playing track to pos. For MP3 and OGG
// pos is seconds from the start; for MOD it is a pattern order number.
func SetMusicPosition(pos float64) error {
	if C.Mix_SetMusicPosition(C.double(pos)) != 0 {
		return lastError("Mix_SetMusicPosition")
	}
	return nil
}

// SetMusicCommand makes the library play music by piping it to an external
// command instead of decoding it internally. Empty string restores the
// built-in decoders.
func SetMusicCommand(cmd string) error {
	var ccmd *C.char
	if cmd != "" {
		ccmd = C.CString(cmd)
		defer C.free(unsafe.Pointer(ccmd))
	}
	if C.Mix_SetMusicCMD(ccmd) != 0 {
		return lastError("Mix_SetMusicCMD")
	}
	return nil
}

// SetSoundFonts sets the SoundFont file paths (semicolon separated) used by
// the MIDI decoder.
func SetSoundFonts(paths string) error {
	cpaths := C.CString(paths)
	defer C.free(unsafe.Pointer(cpaths))
	if C.Mix_SetSoundFonts(cpaths) == 0 {
		return lastError("Mix_SetSoundFonts")
	}
	return nil
}

// SoundFonts returns the SoundFont paths used by the MIDI decoder.
func SoundFonts() string {
	p := C.Mix_GetSoundFonts()
	if p == nil {
		return ""
	}
	return C.GoString(p)
}

// MusicDecoders lists the music decoders the native library loaded, by name
// ("OGG", "MOD", ...). Valid once the device is open.
func MusicDecoders() []string {
	n := int(C.Mix_GetNumMusicDecoders())
	decoders := make([]string, 0, n)
	for i := 0; i < n; i++ {
		decoders = append(decoders, C.GoString(C.Mix_GetMusicDecoder(C.int(i))))
	}
	return decoders
}

// OnMusicFinished registers fn to be called when the playing track ends or
// is halted (but not when it is interrupted by another Play). One global
// slot; nil unregisters. The same audio-thread rules as OnChannelFinished
// apply.
func OnMusicFinished(fn func()) {
	hooks.Lock()
	defer hooks.Unlock()
	if fn != nil {
		hooks.musicFinished.Store(&fn)
		C.mix_hook_music_finished(1)
	} else {
		C.mix_hook_music_finished(0)
		hooks.musicFinished.Store(nil)
	}
}
