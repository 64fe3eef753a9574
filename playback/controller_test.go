package playback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robmorgan/clave/audio"
	"github.com/robmorgan/clave/rhythm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"
)

func TestStopPlaysAtMostOneMoreBeat(t *testing.T) {
	t.Parallel()

	plan := newTestPlan(t, Params{Tempo: 120, BeatsInBar: 4, Grouping: rhythm.Grouping{4}})
	sink := newGatedSink()
	c := NewController(openerFor(sink))

	session, err := c.Start(plan, Options{})
	require.NoError(t, err)

	// let two full beats through
	for i := 0; i < 4; i++ {
		<-sink.entered
		sink.gate <- struct{}{}
	}

	// the third tick is in flight when the stop arrives
	<-sink.entered
	session.Stop()
	close(sink.gate)

	require.NoError(t, session.Wait())
	assert.Equal(t, int64(3), session.Beats())
	assert.Len(t, sink.Writes(), 6)
	assert.Equal(t, StateStopped, session.State())
	assert.True(t, sink.closed)
}

func TestControllerPreventsConcurrentSessions(t *testing.T) {
	t.Parallel()

	plan := newTestPlan(t, Params{Tempo: 120, BeatsInBar: 4})
	sink := newGatedSink()
	opened := 0
	c := NewController(audio.OpenerFunc(func(sampleRate, channels int) (audio.Sink, error) {
		opened++
		if opened == 1 {
			return sink, nil
		}
		return &recordingSink{}, nil
	}))

	first, err := c.Start(plan, Options{})
	require.NoError(t, err)
	<-sink.entered

	_, err = c.Start(plan, Options{})
	require.Error(t, err)
	assert.True(t, IsConcurrentSession(err))
	assert.Equal(t, 1, opened)

	first.Stop()
	close(sink.gate)
	require.NoError(t, c.Stop())

	second, err := c.Start(plan, Options{Bars: 1})
	require.NoError(t, err)
	require.NoError(t, second.Wait())
	assert.Equal(t, int64(4), second.Beats())
	assert.Same(t, second, c.Active())
}

func TestControllerOpenFailure(t *testing.T) {
	t.Parallel()

	plan := newTestPlan(t, Params{Tempo: 120, BeatsInBar: 4})
	c := NewController(audio.OpenerFunc(func(sampleRate, channels int) (audio.Sink, error) {
		return nil, errors.New("no such device")
	}))

	_, err := c.Start(plan, Options{})
	require.Error(t, err)
	assert.True(t, IsOutputDeviceFailure(err))
	assert.Nil(t, c.Active())
	assert.NoError(t, c.Stop())
}

func TestControllerSurfacesWriteFailure(t *testing.T) {
	t.Parallel()

	plan := newTestPlan(t, Params{Tempo: 120, BeatsInBar: 4})
	sink := &recordingSink{failOn: 7}
	c := NewController(openerFor(sink))

	err := c.Run(context.Background(), plan, Options{})
	require.Error(t, err)
	assert.True(t, IsOutputDeviceFailure(err))
	assert.True(t, sink.closed)
}

func TestControllerRunStopsOnContext(t *testing.T) {
	t.Parallel()

	plan := newTestPlan(t, Params{Tempo: 120, BeatsInBar: 4})
	sink := &recordingSink{}
	c := NewController(openerFor(sink))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	observer := func(pos rhythm.Position, accent rhythm.Accent) {
		if pos.Bar == 2 {
			cancel()
		}
	}

	require.NoError(t, c.Run(ctx, plan, Options{Observer: observer}))
	assert.GreaterOrEqual(t, len(sink.Writes()), 10)
	assert.Equal(t, 0, len(sink.Writes())%2)
	assert.True(t, sink.closed)
	assert.Equal(t, StateStopped, c.Active().State())
}

func TestControllerWithPacedSink(t *testing.T) {
	t.Parallel()

	plan := newTestPlan(t, Params{Tempo: 97, BeatsInBar: 5, Grouping: rhythm.Grouping{3, 2}})
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := testingclock.NewFakeClock(start)
	c := NewController(audio.NullOpener{Clock: clock})

	require.NoError(t, c.Run(context.Background(), plan, Options{Bars: 8}))

	// forty beats of exactly BeatSamples each, with no drift
	expected := audio.SamplesToDuration(int64(40*plan.BeatSamples()), plan.SampleRate)
	assert.Equal(t, expected, clock.Since(start))
}
