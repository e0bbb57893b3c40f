package mix

/*
#cgo pkg-config: SDL2_mixer
#include <stdlib.h>
#include <SDL2/SDL.h>
#include <SDL2/SDL_mixer.h>
*/
import "C"
import (
	"runtime"
	"unsafe"
)

// Chunk is a fully decoded short audio sample held in memory by the native
// library. A Chunk obtained from LoadWAV, DecodeWAV or QuickLoadRaw is owned
// by the caller until Close is called.
type Chunk struct {
	handle *C.Mix_Chunk
	raw    unsafe.Pointer // C copy backing a QuickLoadRaw chunk
	owned  bool
}

// LoadWAV loads a sample from a file, decoding it through the native
// decoders. Despite the name any format the library supports may be given.
func LoadWAV(path string) (*Chunk, error) {
	cpath := C.CString(path)
	mode := C.CString("rb")
	defer C.free(unsafe.Pointer(cpath))
	defer C.free(unsafe.Pointer(mode))

	handle := C.Mix_LoadWAV_RW(C.SDL_RWFromFile(cpath, mode), 1)
	if handle == nil {
		return nil, lastError("Mix_LoadWAV_RW")
	}
	return newChunk(handle, nil), nil
}

// DecodeWAV decodes a sample from an in-memory encoded buffer. The data is
// fully decoded before DecodeWAV returns; the input slice is not retained.
func DecodeWAV(data []byte) (*Chunk, error) {
	if len(data) == 0 {
		return nil, &Error{Op: "Mix_LoadWAV_RW", Msg: "empty buffer"}
	}
	rw := C.SDL_RWFromConstMem(unsafe.Pointer(&data[0]), C.int(len(data)))
	handle := C.Mix_LoadWAV_RW(rw, 1)
	runtime.KeepAlive(data)
	if handle == nil {
		return nil, lastError("Mix_LoadWAV_RW")
	}
	return newChunk(handle, nil), nil
}

// QuickLoadRaw wraps raw PCM that is already in the opened device's format
// (see QuerySpec). The binding copies the data into memory it owns, so the
// input slice is not retained; the copy is released by Close.
func QuickLoadRaw(pcm []byte) (*Chunk, error) {
	if len(pcm) == 0 {
		return nil, &Error{Op: "Mix_QuickLoad_RAW", Msg: "empty buffer"}
	}
	raw := C.CBytes(pcm)
	handle := C.Mix_QuickLoad_RAW((*C.Uint8)(raw), C.Uint32(len(pcm)))
	if handle == nil {
		C.free(raw)
		return nil, lastError("Mix_QuickLoad_RAW")
	}
	return newChunk(handle, raw), nil
}

func newChunk(handle *C.Mix_Chunk, raw unsafe.Pointer) *Chunk {
	c := &Chunk{handle: handle, raw: raw, owned: true}
	runtime.SetFinalizer(c, (*Chunk).Close)
	return c
}

// Volume sets the chunk's volume (0..MaxVolume) and returns the previous
// value. Pass -1 to query without changing it.
func (c *Chunk) Volume(v int) int {
	if c.handle == nil {
		return 0
	}
	return int(C.Mix_VolumeChunk(c.handle, C.int(v)))
}

// Play starts the chunk on the given channel, or on the first free channel
// when ch is AnyChannel, looping loops extra times (LoopForever to loop
// until halted). It returns the channel the chunk is playing on.
func (c *Chunk) Play(ch Channel, loops int) (Channel, error) {
	return c.PlayTimed(ch, loops, -1)
}

// PlayTimed is Play with a playback cap: the channel halts after ticks
// milliseconds even if loops remain. Pass -1 for no cap.
func (c *Chunk) PlayTimed(ch Channel, loops, ticks int) (Channel, error) {
	if c.handle == nil {
		return -1, ErrClosed
	}
	got := C.Mix_PlayChannelTimed(C.int(ch), c.handle, C.int(loops), C.int(ticks))
	if got < 0 {
		return -1, lastError("Mix_PlayChannelTimed")
	}
	return Channel(got), nil
}

// FadeIn starts the chunk like Play, ramping the volume from silence to the
// channel volume over ms milliseconds.
func (c *Chunk) FadeIn(ch Channel, loops, ms int) (Channel, error) {
	return c.FadeInTimed(ch, loops, ms, -1)
}

// FadeInTimed is FadeIn with a playback cap in milliseconds, as PlayTimed.
func (c *Chunk) FadeInTimed(ch Channel, loops, ms, ticks int) (Channel, error) {
	if c.handle == nil {
		return -1, ErrClosed
	}
	got := C.Mix_FadeInChannelTimed(C.int(ch), c.handle, C.int(loops), C.int(ms), C.int(ticks))
	if got < 0 {
		return -1, lastError("Mix_FadeInChannelTimed")
	}
	return Channel(got), nil
}

// Close frees the native chunk. It is a no-op on a chunk the binding does
// not own (one borrowed from Channel.Chunk) and is safe to call twice.
// Closing a chunk that is still playing is an error in the native library;
// halt its channels first.
func (c *Chunk) Close() error {
	if c.handle != nil && c.owned {
		C.Mix_FreeChunk(c.handle)
		if c.raw != nil {
			C.free(c.raw)
		}
		runtime.SetFinalizer(c, nil)
	}
	c.handle = nil
	c.raw = nil
	return nil
}

// ChunkDecoders lists the sample decoders the native library loaded, by name
// ("WAVE", "OGG", ...). Valid once the device is open.
func ChunkDecoders() []string {
	n := int(C.Mix_GetNumChunkDecoders())
	decoders := make([]string, 0, n)
	for i := 0; i < n; i++ {
		decoders = append(decoders, C.GoString(C.Mix_GetChunkDecoder(C.int(i))))
	}
	return decoders
}
