package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWAVSinkRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "click.wav")
	sink, err := WAVOpener{Path: path}.Open(44100, 1)
	require.NoError(t, err)

	tick := []float32{0, 0.5, -0.5, 1, -1}
	silence := make([]float32, 95)
	require.NoError(t, sink.Write(tick))
	require.NoError(t, sink.Write(silence))
	require.NoError(t, sink.Stop())
	require.NoError(t, sink.Close())
	require.NoError(t, sink.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	require.NoError(t, err)
	defer streamer.Close()

	assert.Equal(t, 44100, int(format.SampleRate))
	assert.Equal(t, 1, format.NumChannels)
	assert.Equal(t, 100, streamer.Len())

	decoded := make([][2]float64, 100)
	n, ok := streamer.Stream(decoded)
	require.True(t, ok)
	require.Equal(t, 100, n)
	for i, v := range tick {
		assert.InDelta(t, float64(v), decoded[i][0], 1e-3, "sample %d", i)
	}
	assert.InDelta(t, 0, decoded[50][0], 1e-9)
}

func TestWAVOpenerErrors(t *testing.T) {
	t.Parallel()

	_, err := WAVOpener{}.Open(44100, 1)
	assert.Error(t, err)

	_, err = WAVOpener{Path: "x.wav"}.Open(44100, 2)
	assert.Error(t, err)

	sink, err := WAVOpener{Path: filepath.Join(t.TempDir(), "missing", "x.wav")}.Open(44100, 1)
	require.NoError(t, err)
	require.NoError(t, sink.Write([]float32{0.1}))
	assert.Error(t, sink.Close())
	assert.Error(t, sink.Write([]float32{0.1}))
}
