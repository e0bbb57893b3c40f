package mix

/*
#cgo pkg-config: SDL2_mixer
#include <SDL2/SDL.h>
#include <SDL2/SDL_mixer.h>
*/
import "C"

// Group names a collection of channels for batch operations. Any int is a
// valid group tag; DefaultGroup is the set of channels not assigned to any
// group.
type Group int

// DefaultGroup holds every channel that has not been assigned to a group.
const DefaultGroup Group = -1

// ReserveChannels excludes the first n channels from AnyChannel selection,
// so they are only played on when addressed explicitly. It returns the
// number of channels actually reserved.
func ReserveChannels(n int) int {
	return int(C.Mix_ReserveChannels(C.int(n)))
}

// Assign moves the channel into the group, removing it from its previous
// one. It reports whether the channel existed.
func (g Group) Assign(ch Channel) bool {
	return C.Mix_GroupChannel(C.int(ch), C.int(g)) == 1
}

// AssignRange moves channels from through to (inclusive) into the group,
// returning how many were assigned.
func (g Group) AssignRange(from, to Channel) int {
	return int(C.Mix_GroupChannels(C.int(from), C.int(to), C.int(g)))
}

// Available returns a channel in the group that is not currently playing,
// or -1 if all are busy.
func (g Group) Available() Channel {
	return Channel(C.Mix_GroupAvailable(C.int(g)))
}

// Count returns the number of channels in the group. For DefaultGroup this
// is the total channel count.
func (g Group) Count() int {
	return int(C.Mix_GroupCount(C.int(g)))
}

// Oldest returns the group's playing channel that started longest ago, or
// -1 if none are playing.
func (g Group) Oldest() Channel {
	return Channel(C.Mix_GroupOldest(C.int(g)))
}

// Newest returns the group's most recently started playing channel, or -1
// if none are playing.
func (g Group) Newest() Channel {
	return Channel(C.Mix_GroupNewer(C.int(g)))
}

// FadeOut ramps every playing channel in the group to silence over ms
// milliseconds, returning the number of channels set fading.
func (g Group) FadeOut(ms int) int {
	return int(C.Mix_FadeOutGroup(C.int(g), C.int(ms)))
}

// Halt stops every channel in the group immediately, firing the finished
// hook for each.
func (g Group) Halt() error {
	if C.Mix_HaltGroup(C.int(g)) != 0 {
		return lastError("Mix_HaltGroup")
	}
	return nil
}
