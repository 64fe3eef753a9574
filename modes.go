package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robmorgan/clave/audio"
	"github.com/robmorgan/clave/config"
	"github.com/robmorgan/clave/logger"
	"github.com/robmorgan/clave/playback"
	"github.com/robmorgan/clave/rhythm"
	"github.com/robmorgan/clave/tui"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"k8s.io/utils/clock"
)

const progressInterval = 30 * time.Second

// newOpener returns the opener for the selected sink and a function releasing
// whatever it holds once every session has been joined.
func newOpener(cfg config.ClaveConfig, sink string) (audio.Opener, func() error) {
	if sink == sinkNull {
		return audio.NullOpener{Clock: clock.RealClock{}}, func() error { return nil }
	}
	device := audio.NewDevice(cfg.BufferSize)
	return device, device.Close
}

func paramsFromArgs(a args) (playback.Params, error) {
	params := playback.Params{Tempo: a.Tempo, BeatsInBar: a.Beats}
	if a.Grouping == "" {
		return params, nil
	}
	grouping, err := rhythm.ParseGrouping(a.Grouping)
	if err != nil {
		return params, err
	}
	params.Grouping = grouping
	return params, nil
}

func listGroupings(w io.Writer, cfg config.ClaveConfig, beats int) error {
	if beats <= 0 {
		return fmt.Errorf("--beats must be positive, got %d", beats)
	}
	for i, g := range rhythm.GroupingChoices(cfg.GroupSizes, beats) {
		label := g.String()
		if g.IsNoGrouping(beats) {
			label = "No Grouping"
		}
		if _, err := fmt.Fprintf(w, "%4d)  %s\n", i+1, label); err != nil {
			return err
		}
	}
	return nil
}

// render plays exactly a.Bars bars into a WAV file.
func render(ctx context.Context, cfg config.ClaveConfig, a args) error {
	logger := logger.GetProjectLogger()

	params, err := paramsFromArgs(a)
	if err != nil {
		return err
	}
	plan, err := playback.NewPlan(cfg, params)
	if err != nil {
		return err
	}

	controller := playback.NewController(audio.WAVOpener{Path: a.Render})
	if err := controller.Run(ctx, plan, playback.Options{Bars: a.Bars}); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"file":  a.Render,
		"bars":  a.Bars,
		"tempo": plan.Metronome.GetTempo(),
	}).Info("Rendered click track")
	return nil
}

// runHeadless plays the session described by the flags until it is
// interrupted, a line reading "q" arrives on in, or the output fails.
func runHeadless(ctx context.Context, cfg config.ClaveConfig, a args, in io.Reader) error {
	logger := logger.GetProjectLogger()

	params, err := paramsFromArgs(a)
	if err != nil {
		return err
	}
	plan, err := playback.NewPlan(cfg, params)
	if err != nil {
		return err
	}

	opener, release := newOpener(cfg, a.Sink)
	defer func() {
		if err := release(); err != nil {
			logger.Errorf("Could not release audio output: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go watchForQuit(in, cancel)

	var bars atomic.Int64
	opts := playback.Options{
		Observer: func(pos rhythm.Position, _ rhythm.Accent) {
			bars.Store(int64(pos.Bar))
		},
	}

	controller := playback.NewController(opener)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return controller.Run(gctx, plan, opts)
	})
	g.Go(func() error {
		reportProgress(gctx, clock.RealClock{}, progressInterval, func() {
			logger.Infof("Bar %d", bars.Load())
		})
		return nil
	})

	logger.Info("Playing, press ctrl+c (or enter q) to stop")
	return g.Wait()
}

// watchForQuit cancels once a "q" line is read. End of input leaves the
// session running so clave can be started with stdin closed.
func watchForQuit(r io.Reader, cancel context.CancelFunc) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if strings.EqualFold(strings.TrimSpace(scanner.Text()), "q") {
			cancel()
			return
		}
	}
}

// reportProgress calls report every interval of c until ctx is done.
func reportProgress(ctx context.Context, c clock.WithTicker, interval time.Duration, report func()) {
	ticker := c.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			report()
		}
	}
}

func runInteractive(cfg config.ClaveConfig, a args) error {
	logger := logger.GetProjectLogger()

	opener, release := newOpener(cfg, a.Sink)
	controller := playback.NewController(opener)

	program := tea.NewProgram(tui.NewModel(cfg, controller), tea.WithAltScreen())
	_, err := program.Run()

	// the model joins its session before quitting; this covers a program
	// that exited any other way
	if stopErr := controller.Stop(); stopErr != nil {
		logger.Errorf("Playback ended with an error: %v", stopErr)
	}
	if releaseErr := release(); releaseErr != nil {
		logger.Errorf("Could not release audio output: %v", releaseErr)
	}
	return err
}

