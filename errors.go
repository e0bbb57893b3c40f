package mix

/*
#cgo pkg-config: SDL2_mixer
#include <SDL2/SDL.h>
#include <SDL2/SDL_mixer.h>
*/
import "C"
import "errors"

// Error reports a failed native mixer call.
type Error struct {
	Op  string // native entry point that failed
	Msg string // message reported by the library
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Op + " failed"
	}
	return e.Op + ": " + e.Msg
}

// ErrClosed is returned when an operation is attempted on a closed handle.
var ErrClosed = errors.New("handle is closed")

// lastError builds an *Error for op from the native library's error string.
func lastError(op string) error {
	return &Error{Op: op, Msg: C.GoString(C.SDL_GetError())}
}
