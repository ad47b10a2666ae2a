package treelog

import "errors"

var (
	// ErrInvalidSeverity indicates that a severity name or rank is outside the
	// defined set of eight levels.
	ErrInvalidSeverity = errors.New("invalid severity, should be in range of [0, 7]")

	// ErrNilMessage indicates that a nil message was passed to Log.
	// Logging a nil message is a contract violation; use an empty string instead.
	ErrNilMessage = errors.New("message is nil")

	// ErrNilGenerator indicates that a nil generator function was passed to LogLazy.
	ErrNilGenerator = errors.New("message generator is nil")

	// ErrNilSink indicates that a nil sink was passed in a destination list.
	// An empty destination list is valid; a nil element is not.
	ErrNilSink = errors.New("sink is nil")

	// ErrLoggerClosed indicates that a logging call was made on a closed Logger.
	ErrLoggerClosed = errors.New("logger is closed")
)
