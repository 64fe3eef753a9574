package rhythm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterTickSilence(t *testing.T) {
	t.Parallel()

	silence, err := InterTickSilence(120, QuarterNote, 1400, DefaultSampleRate)
	require.NoError(t, err)
	assert.Equal(t, 20650, silence)

	beat, err := BeatSamples(120, QuarterNote, DefaultSampleRate)
	require.NoError(t, err)
	assert.Equal(t, beat, silence+1400)
}

func TestInterTickSilenceRounds(t *testing.T) {
	t.Parallel()

	// 2646000/7 = 378000 exactly
	beat, err := BeatSamples(7, QuarterNote, DefaultSampleRate)
	require.NoError(t, err)
	assert.Equal(t, 378000, beat)

	// 2646000/97 = 27278.35...
	beat, err = BeatSamples(97, QuarterNote, DefaultSampleRate)
	require.NoError(t, err)
	assert.Equal(t, 27278, beat)

	// 2646000/113 = 23415.93...
	beat, err = BeatSamples(113, QuarterNote, DefaultSampleRate)
	require.NoError(t, err)
	assert.Equal(t, 23416, beat)
}

func TestInterTickSilenceTempoTooFast(t *testing.T) {
	t.Parallel()

	// 1890 bpm leaves exactly 1400 samples per beat
	silence, err := InterTickSilence(1890, QuarterNote, 1400, DefaultSampleRate)
	require.NoError(t, err)
	assert.Equal(t, 0, silence)

	_, err = InterTickSilence(1891, QuarterNote, 1400, DefaultSampleRate)
	require.Error(t, err)
	assert.True(t, IsInvalidConfiguration(err))
	assert.Contains(t, err.Error(), "fastest playable tempo is 1890 bpm")

	assert.Equal(t, 1890, MaxTempo(QuarterNote, 1400, DefaultSampleRate))
	assert.Equal(t, 1200, MaxTempo(QuarterNote, 2205, DefaultSampleRate))
	assert.Equal(t, 0, MaxTempo(QuarterNote, 0, DefaultSampleRate))
}

func TestInterTickSilenceRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := InterTickSilence(0, QuarterNote, 1400, DefaultSampleRate)
	assert.True(t, IsInvalidConfiguration(err))

	_, err = InterTickSilence(120, 0, 1400, DefaultSampleRate)
	assert.True(t, IsInvalidConfiguration(err))

	_, err = InterTickSilence(120, QuarterNote, 0, DefaultSampleRate)
	assert.True(t, IsInvalidConfiguration(err))
}
