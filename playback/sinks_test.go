package playback

import (
	"errors"
	"sync"

	"github.com/robmorgan/clave/audio"
)

// recordingSink keeps every buffer written to it.
type recordingSink struct {
	mu      sync.Mutex
	writes  [][]float32
	stopped bool
	closed  bool

	// fail the nth write (1-indexed); zero never fails
	failOn int
}

func (s *recordingSink) Write(samples []float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.New("write after close")
	}
	if s.failOn > 0 && len(s.writes)+1 == s.failOn {
		return errors.New("device unplugged")
	}
	s.writes = append(s.writes, samples)
	return nil
}

func (s *recordingSink) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	return nil
}

func (s *recordingSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *recordingSink) Writes() [][]float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]float32(nil), s.writes...)
}

// gatedSink blocks every write until a token arrives on gate, reporting the
// write on entered first.
type gatedSink struct {
	recordingSink
	entered chan int
	gate    chan struct{}
}

func newGatedSink() *gatedSink {
	return &gatedSink{
		entered: make(chan int, 1024),
		gate:    make(chan struct{}),
	}
}

func (s *gatedSink) Write(samples []float32) error {
	s.entered <- len(samples)
	<-s.gate
	return s.recordingSink.Write(samples)
}

func openerFor(sink audio.Sink) audio.Opener {
	return audio.OpenerFunc(func(sampleRate, channels int) (audio.Sink, error) {
		return sink, nil
	})
}
