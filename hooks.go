package mix

import "C"
import (
	"sync"
	"sync/atomic"
)

// hooks holds the process-global callback slots mirroring the native
// library's single channel-finished and music-finished hooks. The mutex
// serializes registration so a slot and its native hook state change
// together. The trampolines read the slots lock-free: they run with the
// native device lock held, and the registration path takes that same lock
// when toggling the hook, so taking the mutex there could deadlock.
var hooks struct {
	sync.Mutex
	channelFinished atomic.Pointer[func(Channel)]
	musicFinished   atomic.Pointer[func()]
}

//export goChannelFinished
func goChannelFinished(channel C.int) {
	if fn := hooks.channelFinished.Load(); fn != nil {
		(*fn)(Channel(channel))
	}
}

//export goMusicFinished
func goMusicFinished() {
	if fn := hooks.musicFinished.Load(); fn != nil {
		(*fn)()
	}
}
