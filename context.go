package treelog

import (
	"context"
	"os"
	"strconv"
	"sync"
)

// EnvThreshold is the environment variable holding the numeric severity rank
// (0-7) used as the threshold of the process default logger. Unset or invalid
// values fall back to Debug, the least restrictive level.
const EnvThreshold = "TREELOG_LEVEL"

type contextKey struct{}

var activeContextKey = contextKey{}

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// Default returns the process-wide default logger, building it on first use
// with a console sink and a threshold read from the TREELOG_LEVEL environment
// variable.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(WithThreshold(envThreshold(os.Getenv(EnvThreshold))))
	})

	return defaultLogger
}

func envThreshold(val string) Severity {
	rank, err := strconv.Atoi(val)
	if err != nil {
		return Debug
	}
	s, err := SeverityFromRank(rank)
	if err != nil {
		return Debug
	}

	return s
}

// NewContext returns a derived context carrying l as the current logger.
// Contexts derived from the returned one inherit the override; sibling
// contexts are unaffected.
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, activeContextKey, l)
}

// FromContext returns the logger carried by ctx, or the process default when
// ctx carries none.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(activeContextKey).(*Logger); ok {
		return l
	}

	return Default()
}

// Scope runs fn with l installed as the current logger for the dynamic extent
// of the call: fn receives a derived context that carries l, so any top-level
// logging inside fn, or inside goroutines fn starts with that context, routes
// to l. When Scope returns, ctx is unchanged and later top-level calls on it
// resolve as before, whether fn returned normally or with an error.
func Scope(ctx context.Context, l *Logger, fn func(ctx context.Context) error) error {
	return fn(NewContext(ctx, l))
}

// Log logs msg at the given severity on the current logger of ctx.
// Filtering, laziness and error semantics match Logger.Log.
func Log(ctx context.Context, severity Severity, msg any) error {
	return FromContext(ctx).Log(severity, msg)
}

// LogLazy logs the lazily generated message at the given severity on the
// current logger of ctx. The generator runs only when the message passes the
// current logger's threshold.
func LogLazy(ctx context.Context, severity Severity, generate func() any) error {
	return FromContext(ctx).LogLazy(severity, generate)
}
