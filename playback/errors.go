package playback

import (
	"errors"
	"fmt"

	goerrors "github.com/gruntwork-io/go-commons/errors"
)

// OutputDeviceError is returned when the sink cannot be opened or fails
// during a session.
type OutputDeviceError struct {
	Op  string
	Err error
}

func (err OutputDeviceError) Error() string {
	return fmt.Sprintf("audio output failed to %s: %v", err.Op, err.Err)
}

func (err OutputDeviceError) Unwrap() error {
	return err.Err
}

// ConcurrentSessionError is returned by Controller.Start while a previous
// session has not been joined.
type ConcurrentSessionError struct{}

func (err ConcurrentSessionError) Error() string {
	return "a playback session is already active, stop it before starting another"
}

func outputDeviceFailure(op string, err error) error {
	return goerrors.WithStackTrace(OutputDeviceError{Op: op, Err: err})
}

// IsOutputDeviceFailure reports whether err is, or wraps, an OutputDeviceError.
func IsOutputDeviceFailure(err error) bool {
	var target OutputDeviceError
	return errors.As(goerrors.Unwrap(err), &target)
}

// IsConcurrentSession reports whether err is, or wraps, a ConcurrentSessionError.
func IsConcurrentSession(err error) bool {
	var target ConcurrentSessionError
	return errors.As(goerrors.Unwrap(err), &target)
}
