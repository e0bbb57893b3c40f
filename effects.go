package mix

/*
#cgo pkg-config: SDL2_mixer
#include <SDL2/SDL.h>
#include <SDL2/SDL_mixer.h>
*/
import "C"

// The built-in effects below are applied per channel after mixing but
// before output. Passing PostEffects applies them to the final mixed
// stream instead. Effects only work on stereo devices.

// SetPanning splits the channel's output between the left and right
// speakers (0..255 each). SetPanning(255, 255) removes the effect.
func (ch Channel) SetPanning(left, right uint8) error {
	if C.Mix_SetPanning(C.int(ch), C.Uint8(left), C.Uint8(right)) == 0 {
		return lastError("Mix_SetPanning")
	}
	return nil
}

// SetDistance attenuates the channel as if its source were distance units
// away (0 = nearest/loudest, 255 = farthest/near silent). SetDistance(0)
// removes the effect.
func (ch Channel) SetDistance(distance uint8) error {
	if C.Mix_SetDistance(C.int(ch), C.Uint8(distance)) == 0 {
		return lastError("Mix_SetDistance")
	}
	return nil
}

// SetPosition places the channel's source at an angle (degrees clockwise
// from straight ahead) and distance, combining panning and attenuation.
// SetPosition(0, 0) removes the effect.
func (ch Channel) SetPosition(angle int16, distance uint8) error {
	if C.Mix_SetPosition(C.int(ch), C.Sint16(angle), C.Uint8(distance)) == 0 {
		return lastError("Mix_SetPosition")
	}
	return nil
}

// SetReverseStereo swaps the channel's left and right output when flip is
// true, and removes the effect when false.
func (ch Channel) SetReverseStereo(flip bool) error {
	var f C.int
	if flip {
		f = 1
	}
	if C.Mix_SetReverseStereo(C.int(ch), f) == 0 {
		return lastError("Mix_SetReverseStereo")
	}
	return nil
}
