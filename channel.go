package mix

/*
#cgo pkg-config: SDL2_mixer
#include <SDL2/SDL.h>
#include <SDL2/SDL_mixer.h>

extern void goChannelFinished(int channel);

static void mix_hook_channel_finished(int enable) {
	Mix_ChannelFinished(enable ? goChannelFinished : NULL);
}
*/
import "C"

// Channel addresses one of the native library's mixing lanes. Lanes are
// numbered from zero; AllChannels and AnyChannel are sentinels accepted
// where documented.
type Channel int

const (
	// AnyChannel asks Play and FadeIn to pick the first free channel.
	AnyChannel Channel = -1

	// AllChannels applies a control operation to every channel.
	AllChannels Channel = -1

	// PostEffects routes an effect to the final mixed stream rather than
	// a single channel.
	PostEffects Channel = C.MIX_CHANNEL_POST

	// LoopForever makes a loop count repeat until the channel is halted.
	LoopForever = -1

	// MaxVolume is the upper bound of every volume scale.
	MaxVolume = C.MIX_MAX_VOLUME
)

// Fading is a channel's current volume transition state.
type Fading int

const (
	NoFading  Fading = C.MIX_NO_FADING
	FadingOut Fading = C.MIX_FADING_OUT
	FadingIn  Fading = C.MIX_FADING_IN
)

func (f Fading) String() string {
	switch f {
	case NoFading:
		return "none"
	case FadingOut:
		return "fading out"
	case FadingIn:
		return "fading in"
	default:
		return "unknown"
	}
}

// AllocateChannels resizes the pool of mixing channels, halting any channel
// that is cut off. It returns the new channel count. Pass -1 to query.
func AllocateChannels(n int) int {
	return int(C.Mix_AllocateChannels(C.int(n)))
}

// Channels returns the current size of the channel pool.
func Channels() int {
	return int(C.Mix_AllocateChannels(-1))
}

// Volume sets the channel's volume (0..MaxVolume) and returns the previous
// value. Pass -1 to query. With AllChannels it sets every channel and
// returns the average volume.
func (ch Channel) Volume(v int) int {
	return int(C.Mix_Volume(C.int(ch), C.int(v)))
}

// Pause suspends playback on the channel; with AllChannels, on every
// channel. A paused channel still counts as playing.
func (ch Channel) Pause() {
	C.Mix_Pause(C.int(ch))
}

// Resume continues playback on a paused channel; with AllChannels, on every
// channel.
func (ch Channel) Resume() {
	C.Mix_Resume(C.int(ch))
}

// Halt stops the channel immediately, firing the finished hook. With
// AllChannels it halts every channel.
func (ch Channel) Halt() error {
	if C.Mix_HaltChannel(C.int(ch)) != 0 {
		return lastError("Mix_HaltChannel")
	}
	return nil
}

// Expire schedules the channel to halt after ms milliseconds, returning the
// number of channels affected. Pass -1 to cancel a pending expiry.
func (ch Channel) Expire(ms int) int {
	return int(C.Mix_ExpireChannel(C.int(ch), C.int(ms)))
}

// FadeOut ramps the channel to silence over ms milliseconds and then halts
// it, returning the number of channels now fading.
func (ch Channel) FadeOut(ms int) int {
	return int(C.Mix_FadeOutChannel(C.int(ch), C.int(ms)))
}

// Playing reports whether the channel is playing. Paused channels count as
// playing. Use PlayingCount for the AllChannels total.
func (ch Channel) Playing() bool {
	return C.Mix_Playing(C.int(ch)) != 0
}

// Paused reports whether the channel is paused.
func (ch Channel) Paused() bool {
	return C.Mix_Paused(C.int(ch)) != 0
}

// Fading reports the channel's current fade state. Sentinel channels are
// not valid here.
func (ch Channel) Fading() Fading {
	return Fading(C.Mix_FadingChannel(C.int(ch)))
}

// Chunk returns the sample most recently played on the channel, or nil.
// The returned chunk is borrowed from the native library: Close on it is a
// no-op, and it stays valid only as long as the real owner keeps it alive.
func (ch Channel) Chunk() *Chunk {
	handle := C.Mix_GetChunk(C.int(ch))
	if handle == nil {
		return nil
	}
	return &Chunk{handle: handle}
}

// PlayingCount returns how many channels are playing, paused included.
func PlayingCount() int {
	return int(C.Mix_Playing(-1))
}

// PausedCount returns how many channels are paused.
func PausedCount() int {
	return int(C.Mix_Paused(-1))
}

// OnChannelFinished registers fn to be called whenever a channel stops,
// whether it played out, was halted, or expired. There is one global slot:
// registering replaces the previous function, and nil unregisters the
// native hook.
//
// fn runs on the native audio thread. It must return quickly and must not
// call mixer operations that lock the audio device.
func OnChannelFinished(fn func(Channel)) {
	hooks.Lock()
	defer hooks.Unlock()
	if fn != nil {
		hooks.channelFinished.Store(&fn)
		C.mix_hook_channel_finished(1)
	} else {
		C.mix_hook_channel_finished(0)
		hooks.channelFinished.Store(nil)
	}
}
