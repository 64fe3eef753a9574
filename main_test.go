package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/faiface/beep/wav"
	"github.com/robmorgan/clave/config"
	"github.com/robmorgan/clave/rhythm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"
)

func TestListGroupings(t *testing.T) {
	t.Parallel()

	cfg, err := config.NewClaveConfig()
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, listGroupings(&out, cfg, 7))

	expected := strings.Join([]string{
		"   1)  No Grouping",
		"   2)  2, 2, 3",
		"   3)  2, 3, 2",
		"   4)  3, 2, 2",
		"   5)  3, 4",
		"   6)  4, 3",
		"",
	}, "\n")
	assert.Equal(t, expected, out.String())

	assert.Error(t, listGroupings(&out, cfg, 0))
}

func TestParamsFromArgs(t *testing.T) {
	t.Parallel()

	params, err := paramsFromArgs(args{Tempo: 97, Beats: 7, Grouping: "2,2,3"})
	require.NoError(t, err)
	assert.Equal(t, 97, params.Tempo)
	assert.Equal(t, 7, params.BeatsInBar)
	assert.Equal(t, rhythm.Grouping{2, 2, 3}, params.Grouping)

	params, err = paramsFromArgs(args{Tempo: 120, Beats: 4})
	require.NoError(t, err)
	assert.Nil(t, params.Grouping)

	_, err = paramsFromArgs(args{Tempo: 120, Beats: 4, Grouping: "2,x"})
	assert.Error(t, err)
}

func TestValidateArgs(t *testing.T) {
	t.Parallel()

	assert.NoError(t, args{Sink: sinkDevice}.validate())
	assert.NoError(t, args{Sink: sinkNull, Render: "out.wav", Bars: 2}.validate())
	assert.Error(t, args{Sink: "speaker"}.validate())
	assert.Error(t, args{Sink: sinkDevice, Render: "out.wav"}.validate())
}

func TestRenderWritesWholeBars(t *testing.T) {
	t.Parallel()

	cfg, err := config.NewClaveConfig()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "click.wav")
	a := args{Tempo: 120, Beats: 3, Grouping: "3", Bars: 2, Render: path}
	require.NoError(t, render(context.Background(), cfg, a))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	require.NoError(t, err)
	defer streamer.Close()

	beat, err := rhythm.BeatSamples(120, cfg.BeatType, cfg.SampleRate)
	require.NoError(t, err)
	assert.Equal(t, cfg.SampleRate, int(format.SampleRate))
	assert.Equal(t, 2*3*beat, streamer.Len())
}

func TestRenderRejectsBadGrouping(t *testing.T) {
	t.Parallel()

	cfg, err := config.NewClaveConfig()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "click.wav")
	err = render(context.Background(), cfg, args{Tempo: 120, Beats: 7, Grouping: "4,4", Bars: 1, Render: path})
	assert.True(t, rhythm.IsInvalidConfiguration(err))
	assert.NoFileExists(t, path)
}

func TestWatchForQuit(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	watchForQuit(strings.NewReader("\nx\n Q \nmore\n"), cancel)
	assert.Error(t, ctx.Err())

	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	watchForQuit(strings.NewReader("x\n"), cancel)
	assert.NoError(t, ctx.Err())
}

func TestReportProgress(t *testing.T) {
	t.Parallel()

	clock := testingclock.NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx, cancel := context.WithCancel(context.Background())
	reports := make(chan struct{}, 10)
	done := make(chan struct{})

	go func() {
		defer close(done)
		reportProgress(ctx, clock, 30*time.Second, func() { reports <- struct{}{} })
	}()

	require.Eventually(t, clock.HasWaiters, time.Second, time.Millisecond)
	clock.Step(29 * time.Second)
	assert.Len(t, reports, 0)

	clock.Step(time.Second)
	select {
	case <-reports:
	case <-time.After(time.Second):
		t.Fatal("no report after one interval")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reportProgress kept running after cancel")
	}
}

func TestRunHeadlessStopsOnQuitLine(t *testing.T) {
	t.Parallel()

	cfg, err := config.NewClaveConfig()
	require.NoError(t, err)

	a := args{Tempo: 600, Beats: 4, Sink: sinkNull}
	require.NoError(t, runHeadless(context.Background(), cfg, a, strings.NewReader("q\n")))
}

func TestRunHeadlessStopsOnCancel(t *testing.T) {
	t.Parallel()

	cfg, err := config.NewClaveConfig()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	a := args{Tempo: 600, Beats: 5, Grouping: "2,3", Sink: sinkNull}
	start := time.Now()
	require.NoError(t, runHeadless(ctx, cfg, a, strings.NewReader("")))
	// at most one more beat (100ms at 600 bpm) after the cancel
	assert.True(t, time.Since(start) < time.Second)
}

func TestRunHeadlessRejectsInvalidTempo(t *testing.T) {
	t.Parallel()

	cfg, err := config.NewClaveConfig()
	require.NoError(t, err)

	err = runHeadless(context.Background(), cfg, args{Tempo: 5000, Beats: 4, Sink: sinkNull}, strings.NewReader(""))
	assert.True(t, rhythm.IsInvalidConfiguration(err))
}
