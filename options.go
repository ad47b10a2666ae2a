package treelog

import (
	"time"

	"github.com/mivholt/treelog/internal/check"
)

// loggerConfig collects the optional construction parameters of a Logger.
//
// New and Child fill in different defaults for omitted fields, so the config
// tracks which fields were set explicitly: an empty WithSinks() is a valid
// empty destination list, not an omission.
type loggerConfig struct {
	sinks    []Sink
	sinksSet bool

	name    string
	nameSet bool

	threshold    Severity
	thresholdSet bool

	formatter Formatter

	clock func() time.Time
}

// Option customizes a Logger created by New or Child.
type Option func(cfg *loggerConfig)

// WithSinks sets the destination list of the logger, invoked in the given
// order for every accepted record. Passing no sinks sets an explicit empty
// list. Nil elements are a contract violation.
func WithSinks(sinks ...Sink) Option {
	return func(cfg *loggerConfig) {
		for _, s := range sinks {
			check.Must(s != nil, ErrNilSink)
		}
		cfg.sinks = sinks
		cfg.sinksSet = true
	}
}

// WithName sets the logger name, recorded as the origin of every record the
// logger produces. Children default to their parent's name.
func WithName(name string) Option {
	return func(cfg *loggerConfig) {
		cfg.name = name
		cfg.nameSet = true
	}
}

// WithThreshold sets the minimum severity the logger accepts. Messages
// strictly less severe than the threshold are dropped without side effects.
// Defaults to Info for root loggers; children default to their parent's
// threshold.
func WithThreshold(threshold Severity) Option {
	return func(cfg *loggerConfig) {
		cfg.threshold = threshold
		cfg.thresholdSet = true
	}
}

// WithFormatter sets the formatter bound into every record the logger
// produces. Defaults to DefaultFormatter; children do not inherit the
// parent's formatter.
func WithFormatter(f Formatter) Option {
	return func(cfg *loggerConfig) {
		cfg.formatter = f
	}
}

// WithClock sets the time source read once per accepted record, making
// timestamps injectable for tests. Defaults to time.Now. Children always
// inherit the parent's clock; Child ignores this option.
func WithClock(clock func() time.Time) Option {
	return func(cfg *loggerConfig) {
		cfg.clock = clock
	}
}
