package playback

import (
	"sync/atomic"

	"github.com/robmorgan/clave/audio"
	"github.com/robmorgan/clave/logger"
	"github.com/robmorgan/clave/rhythm"
	"github.com/sirupsen/logrus"
)

// BeatObserver is told about every beat once its tick and silence have been
// written. It runs on the playback worker and must not block.
type BeatObserver func(pos rhythm.Position, accent rhythm.Accent)

// Options tune a session.
type Options struct {
	Observer BeatObserver

	// Bars stops the session after this many complete bars. Zero plays until
	// stopped.
	Bars int
}

// Scheduler streams one beat at a time to a sink. Timing comes entirely from
// the sink blocking the writer, and every beat is exactly tick plus silence
// samples long, so there is nothing to drift.
type Scheduler struct {
	plan *Plan
	sink audio.Sink
	opts Options

	// set by the controller, read here once per beat
	stop *atomic.Bool

	state atomic.Int32
	beats atomic.Int64
}

// NewScheduler takes ownership of sink: Run always stops and closes it.
func NewScheduler(plan *Plan, sink audio.Sink, stop *atomic.Bool, opts Options) *Scheduler {
	return &Scheduler{
		plan: plan,
		sink: sink,
		stop: stop,
		opts: opts,
	}
}

// Run plays until the stop flag is observed at a beat boundary or the sink
// fails. The sink is released on every path before Run returns.
func (s *Scheduler) Run() (err error) {
	logger := logger.GetProjectLogger()
	metronome := s.plan.Metronome
	beatsPerBar := metronome.GetBeatsPerBar()

	fields := logrus.Fields{
		"tempo":        metronome.GetTempo(),
		"beats_in_bar": beatsPerBar,
		"grouping":     metronome.GetGrouping().String(),
		"strong_beats": metronome.GetStrongBeats(),
		"beat_ms":      metronome.GetBeatInterval(),
		"bar_ms":       metronome.GetBarInterval(),
	}
	logger.WithFields(fields).Info("Playback started")
	s.state.Store(int32(StateRunning))

	defer func() {
		s.state.Store(int32(StateStopping))
		if releaseErr := s.release(); releaseErr != nil && err == nil {
			err = releaseErr
		}
		s.state.Store(int32(StateStopped))

		entry := logger.WithFields(fields).WithField("beats", s.beats.Load())
		if err != nil {
			entry.Errorf("Playback aborted: %v", err)
		} else {
			entry.Info("Playback stopped")
		}
	}()

	pos := rhythm.Start()
	for !s.stop.Load() {
		if err := s.sink.Write(s.plan.TickFor(pos.Beat)); err != nil {
			return outputDeviceFailure("write tick", err)
		}
		if len(s.plan.Silence) > 0 {
			if err := s.sink.Write(s.plan.Silence); err != nil {
				return outputDeviceFailure("write silence", err)
			}
		}
		s.beats.Add(1)

		if s.opts.Observer != nil {
			s.opts.Observer(pos, metronome.AccentOf(pos.Beat))
		}
		if pos.IsLastBeat(beatsPerBar) {
			logger.Debugf("Bar %d complete", pos.Bar)
			if s.opts.Bars > 0 && pos.Bar >= s.opts.Bars {
				s.stop.Store(true)
			}
		}

		pos = pos.Next(beatsPerBar)
	}

	return nil
}

func (s *Scheduler) release() error {
	stopErr := s.sink.Stop()
	closeErr := s.sink.Close()
	if stopErr != nil {
		return outputDeviceFailure("stop", stopErr)
	}
	if closeErr != nil {
		return outputDeviceFailure("close", closeErr)
	}
	return nil
}

// State returns where the run is in its lifecycle.
func (s *Scheduler) State() State {
	return State(s.state.Load())
}

// Beats returns the number of complete beats written.
func (s *Scheduler) Beats() int64 {
	return s.beats.Load()
}
