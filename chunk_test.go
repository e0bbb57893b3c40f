package mix

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickLoadRaw(t *testing.T) {
	openTestAudio(t)

	chunk := silentChunk(t, 1)
	assert.Equal(t, MaxVolume, chunk.Volume(-1))
	assert.Equal(t, MaxVolume, chunk.Volume(64))
	assert.Equal(t, 64, chunk.Volume(-1))
}

func TestQuickLoadRawEmpty(t *testing.T) {
	_, err := QuickLoadRaw(nil)
	assert.Error(t, err)
}

func TestDecodeWAVGarbage(t *testing.T) {
	openTestAudio(t)

	_, err := DecodeWAV([]byte("not a wav file at all"))
	assert.Error(t, err)

	_, err = DecodeWAV(nil)
	assert.Error(t, err)
}

func TestLoadWAVMissingFile(t *testing.T) {
	openTestAudio(t)

	_, err := LoadWAV("testdata/no-such-file.wav")
	require.Error(t, err)
	var mixErr *Error
	assert.ErrorAs(t, err, &mixErr)
}

func TestLoadWAVFile(t *testing.T) {
	openTestAudio(t)

	chunk, err := LoadWAV(writeTestWAV(t))
	require.NoError(t, err)
	defer chunk.Close()

	ch, err := chunk.Play(AnyChannel, LoopForever)
	require.NoError(t, err)
	assert.True(t, ch.Playing())
	require.NoError(t, ch.Halt())
}

func TestDecodeWAVBuffer(t *testing.T) {
	openTestAudio(t)

	data, err := os.ReadFile(writeTestWAV(t))
	require.NoError(t, err)

	chunk, err := DecodeWAV(data)
	require.NoError(t, err)
	defer chunk.Close()

	assert.Equal(t, MaxVolume, chunk.Volume(-1))
}

func TestPlayAndHalt(t *testing.T) {
	openTestAudio(t)

	chunk := silentChunk(t, 1)
	ch, err := chunk.Play(AnyChannel, LoopForever)
	require.NoError(t, err)
	require.GreaterOrEqual(t, int(ch), 0)

	assert.True(t, ch.Playing())
	assert.Equal(t, 1, PlayingCount())

	ch.Pause()
	assert.True(t, ch.Paused())
	assert.Equal(t, 1, PausedCount())
	ch.Resume()
	assert.False(t, ch.Paused())

	require.NoError(t, ch.Halt())
	assert.False(t, ch.Playing())
}

func TestChannelChunk(t *testing.T) {
	openTestAudio(t)

	chunk := silentChunk(t, 1)
	ch, err := chunk.Play(AnyChannel, 0)
	require.NoError(t, err)
	defer ch.Halt()

	borrowed := ch.Chunk()
	require.NotNil(t, borrowed)
	// borrowed chunks are not owned; Close must not free the native data
	require.NoError(t, borrowed.Close())
	assert.True(t, ch.Playing())
}

func TestFadeInAndOut(t *testing.T) {
	openTestAudio(t)

	chunk := silentChunk(t, 1)
	ch, err := chunk.FadeIn(AnyChannel, LoopForever, 10000)
	require.NoError(t, err)

	assert.Equal(t, FadingIn, ch.Fading())
	assert.Equal(t, 1, ch.FadeOut(10000))
	assert.Equal(t, FadingOut, ch.Fading())

	require.NoError(t, ch.Halt())
	assert.Equal(t, NoFading, ch.Fading())
}

func TestExpire(t *testing.T) {
	openTestAudio(t)

	chunk := silentChunk(t, 1)
	ch, err := chunk.Play(AnyChannel, LoopForever)
	require.NoError(t, err)
	defer ch.Halt()

	assert.Equal(t, 1, ch.Expire(60000))
	assert.Equal(t, 1, ch.Expire(-1)) // cancel
}

func TestClosedChunk(t *testing.T) {
	openTestAudio(t)

	chunk := silentChunk(t, 1)
	require.NoError(t, chunk.Close())
	require.NoError(t, chunk.Close()) // idempotent

	_, err := chunk.Play(AnyChannel, 0)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = chunk.FadeIn(AnyChannel, 0, 100)
	assert.ErrorIs(t, err, ErrClosed)
	assert.Equal(t, 0, chunk.Volume(-1))
}

func TestChunkDecoders(t *testing.T) {
	openTestAudio(t)

	assert.NotEmpty(t, ChunkDecoders())
}

func TestOnChannelFinished(t *testing.T) {
	openTestAudio(t)

	done := make(chan Channel, 1)
	OnChannelFinished(func(ch Channel) {
		select {
		case done <- ch:
		default:
		}
	})
	defer OnChannelFinished(nil)

	chunk := silentChunk(t, 1)
	ch, err := chunk.Play(AnyChannel, LoopForever)
	require.NoError(t, err)

	require.NoError(t, ch.Halt())
	select {
	case got := <-done:
		assert.Equal(t, ch, got)
	case <-time.After(5 * time.Second):
		t.Fatal("channel finished hook never fired")
	}
}

func TestOnChannelFinishedReregistration(t *testing.T) {
	openTestAudio(t)

	// hammer the slot from two goroutines; the registered function and the
	// native hook state must stay in step
	var wg sync.WaitGroup
	for g := 0; g < 2; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				OnChannelFinished(func(Channel) {})
				OnChannelFinished(nil)
			}
		}()
	}
	wg.Wait()

	done := make(chan struct{}, 1)
	OnChannelFinished(func(Channel) {
		select {
		case done <- struct{}{}:
		default:
		}
	})
	defer OnChannelFinished(nil)

	chunk := silentChunk(t, 1)
	ch, err := chunk.Play(AnyChannel, LoopForever)
	require.NoError(t, err)
	require.NoError(t, ch.Halt())

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("hook lost after concurrent reregistration")
	}
}
