package audio

import (
	"fmt"
	"sync"
	"time"

	"k8s.io/utils/clock"
)

// NullOpener opens sinks that discard samples but block for as long as the
// samples would take to play, which makes a device-free session behave like a
// real one.
type NullOpener struct {
	Clock clock.Clock
}

func (o NullOpener) Open(sampleRate, channels int) (Sink, error) {
	if sampleRate <= 0 || channels <= 0 {
		return nil, fmt.Errorf("invalid stream format %d Hz/%d channels", sampleRate, channels)
	}

	c := o.Clock
	if c == nil {
		c = clock.RealClock{}
	}
	return NewPacedSink(c, sampleRate*channels), nil
}

// PacedSink consumes samples at rate per second of c. Pacing is measured from
// the first write against the total written so far, so rounding in one write
// never accumulates into drift.
type PacedSink struct {
	clock clock.Clock
	rate  int

	mu      sync.Mutex
	start   time.Time
	written int64
	closed  bool
}

func NewPacedSink(c clock.Clock, rate int) *PacedSink {
	return &PacedSink{clock: c, rate: rate}
}

func (p *PacedSink) Write(samples []float32) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return fmt.Errorf("cannot write to closed sink")
	}
	if p.written == 0 {
		p.start = p.clock.Now()
	}
	p.written += int64(len(samples))
	target := p.start.Add(SamplesToDuration(p.written, p.rate))
	p.mu.Unlock()

	if wait := target.Sub(p.clock.Now()); wait > 0 {
		p.clock.Sleep(wait)
	}
	return nil
}

// Written returns the number of samples consumed so far.
func (p *PacedSink) Written() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.written
}

func (p *PacedSink) Stop() error {
	return nil
}

func (p *PacedSink) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}
