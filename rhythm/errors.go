package rhythm

import (
	"errors"
	"fmt"

	goerrors "github.com/gruntwork-io/go-commons/errors"
)

// InvalidConfigurationError is returned when the requested tempo, meter or
// grouping cannot be played. It is always surfaced before playback starts.
type InvalidConfigurationError struct {
	Reason string
}

func (err InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", err.Reason)
}

func invalidConfiguration(format string, args ...interface{}) error {
	return goerrors.WithStackTrace(InvalidConfigurationError{Reason: fmt.Sprintf(format, args...)})
}

// IsInvalidConfiguration reports whether err is, or wraps, an
// InvalidConfigurationError.
func IsInvalidConfiguration(err error) bool {
	var target InvalidConfigurationError
	return errors.As(goerrors.Unwrap(err), &target)
}
