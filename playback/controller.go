package playback

import (
	"context"
	"sync"
	"sync/atomic"

	goerrors "github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/clave/audio"
	"github.com/robmorgan/clave/logger"
)

// Controller owns the audio output and makes sure only one session plays at
// a time.
type Controller struct {
	opener audio.Opener

	mu     sync.Mutex
	active *Session
}

// NewController creates a Controller that opens sinks with opener.
func NewController(opener audio.Opener) *Controller {
	return &Controller{opener: opener}
}

// Start opens a sink and plays plan on a new worker goroutine. It fails with a
// ConcurrentSessionError while the previous session's worker is still running.
func (c *Controller) Start(plan *Plan, opts Options) (*Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil && !c.active.finished() {
		return nil, goerrors.WithStackTrace(ConcurrentSessionError{})
	}

	sink, err := c.opener.Open(plan.SampleRate, plan.Channels)
	if err != nil {
		return nil, outputDeviceFailure("open", err)
	}

	s := &Session{
		plan: plan,
		done: make(chan struct{}),
	}
	s.scheduler = NewScheduler(plan, sink, &s.stop, opts)
	c.active = s

	go s.run()
	return s, nil
}

// Active returns the most recently started session, if any.
func (c *Controller) Active() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Stop signals the active session and waits for its worker to release the
// output.
func (c *Controller) Stop() error {
	s := c.Active()
	if s == nil {
		return nil
	}
	s.Stop()
	return s.Wait()
}

// Run plays plan until ctx is done, the requested bars have been played, or
// the output fails.
func (c *Controller) Run(ctx context.Context, plan *Plan, opts Options) error {
	s, err := c.Start(plan, opts)
	if err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		logger.GetProjectLogger().Info("Stopping playback...")
		s.Stop()
	case <-s.Done():
	}
	return s.Wait()
}

// Session is one run of the scheduler.
type Session struct {
	plan      *Plan
	scheduler *Scheduler

	// the cancellation flag, written here and polled by the worker
	stop atomic.Bool

	done chan struct{}
	err  error
}

func (s *Session) run() {
	defer close(s.done)
	s.err = s.scheduler.Run()
}

// Stop asks the worker to finish after the beat it is currently writing.
func (s *Session) Stop() {
	s.stop.Store(true)
}

// Wait blocks until the worker has released the output and returns its error.
func (s *Session) Wait() error {
	<-s.done
	return s.err
}

// Done is closed once the worker has exited.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) finished() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

func (s *Session) Plan() *Plan {
	return s.plan
}

func (s *Session) State() State {
	return s.scheduler.State()
}

// Beats returns the number of complete beats played so far.
func (s *Session) Beats() int64 {
	return s.scheduler.Beats()
}
