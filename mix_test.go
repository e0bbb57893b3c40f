package mix

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// The dummy driver mixes without audio hardware, so the full native
	// pipeline can run headless.
	os.Setenv("SDL_AUDIODRIVER", "dummy")
	os.Exit(m.Run())
}

// openTestAudio opens the device for one test, skipping when no driver is
// usable in the environment.
func openTestAudio(t *testing.T) {
	t.Helper()
	if err := OpenAudio(DefaultSpec(), 1024); err != nil {
		t.Skipf("cannot open audio device: %v", err)
	}
	t.Cleanup(CloseAudio)
}

// silentChunk builds a chunk of n seconds of silence in the device format.
func silentChunk(t *testing.T, seconds int) *Chunk {
	t.Helper()
	spec, _, err := QuerySpec()
	require.NoError(t, err)

	pcm := make([]byte, spec.Frequency*spec.Channels*2*seconds)
	chunk, err := QuickLoadRaw(pcm)
	require.NoError(t, err)
	t.Cleanup(func() { chunk.Close() })
	return chunk
}

// writeTestWAV encodes a short 440 Hz sine to a temp file and returns its
// path, for exercising the native file decoders.
func writeTestWAV(t *testing.T) string {
	t.Helper()

	const rate, frames = 22050, 22050 / 2
	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	enc := wav.NewEncoder(f, rate, 16, Mono, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: Mono, SampleRate: rate},
		SourceBitDepth: 16,
		Data:           make([]int, frames),
	}
	for i := range buf.Data {
		buf.Data[i] = int(10000 * math.Sin(2*math.Pi*440*float64(i)/rate))
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())
	return path
}

func TestLinkedVersion(t *testing.T) {
	v := LinkedVersion()
	assert.Equal(t, 2, v.Major)
	assert.NotEmpty(t, v.String())
}

func TestInitNoFlags(t *testing.T) {
	require.NoError(t, Init(0))
	Quit()
}

func TestOpenAudioQuerySpec(t *testing.T) {
	openTestAudio(t)

	spec, opened, err := QuerySpec()
	require.NoError(t, err)
	assert.Equal(t, 1, opened)
	assert.Greater(t, spec.Frequency, 0)
	assert.Contains(t, []int{Mono, Stereo}, spec.Channels)
}

func TestQuerySpecClosed(t *testing.T) {
	_, _, err := QuerySpec()
	assert.Error(t, err)
}

func TestError(t *testing.T) {
	err := &Error{Op: "Mix_PlayMusic", Msg: "no music"}
	assert.Equal(t, "Mix_PlayMusic: no music", err.Error())

	err = &Error{Op: "Mix_PlayMusic"}
	assert.Equal(t, "Mix_PlayMusic failed", err.Error())
}

func TestFadingString(t *testing.T) {
	assert.Equal(t, "none", NoFading.String())
	assert.Equal(t, "fading in", FadingIn.String())
	assert.Equal(t, "fading out", FadingOut.String())
}
