package treelog

import (
	"sync/atomic"
	"time"

	"github.com/mivholt/treelog/internal/check"
	"github.com/mivholt/treelog/internal/util"
)

// Logger is one named point in a tree of loggers.
//
// A logger owns an ordered list of sinks and a severity threshold. An
// accepted message is turned into a single Record, dispatched to the logger's
// own sinks in order, and then forwarded unchanged to the parent logger,
// recursively up to the root. Forwarding is unconditional: ancestors do not
// re-filter or re-stamp the record, so every ancestor's sinks see a child's
// accepted record exactly once, with the original timestamp and severity.
//
// The sink list, parent link, formatter and clock are fixed at construction.
// The core takes no locks; sharing one logger across goroutines is safe as
// long as its sinks tolerate concurrent Accept calls.
type Logger struct {
	name      string
	threshold Severity
	sinks     []Sink
	formatter Formatter
	clock     func() time.Time

	// parent is a non-owning back-reference used only for upward forwarding.
	// It is nil for root loggers and never changes after construction.
	parent *Logger

	closed atomic.Bool
}

// New creates a root logger. All parameters are optional:
//
//   - destinations default to a single console sink (stdout)
//   - name defaults to empty
//   - threshold defaults to Info
//   - formatter defaults to DefaultFormatter
//   - clock defaults to time.Now
func New(opts ...Option) *Logger {
	cfg := loggerConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.sinksSet {
		cfg.sinks = []Sink{NewConsoleSink()}
	}
	if !cfg.thresholdSet {
		cfg.threshold = Info
	}
	if cfg.formatter == nil {
		cfg.formatter = DefaultFormatter
	}
	if cfg.clock == nil {
		cfg.clock = time.Now
	}

	return &Logger{
		name:      cfg.name,
		threshold: cfg.threshold,
		sinks:     util.CloneSlice(cfg.sinks, 0),
		formatter: cfg.formatter,
		clock:     cfg.clock,
	}
}

// Child creates a logger whose parent is l. Records accepted by the child are
// forwarded to l's sinks (and further up) after the child's own.
//
// Omitted fields inherit differently than in New: name and threshold default
// to the parent's, the clock is always the parent's, destinations default to
// an empty list (fan-out to the parent's sinks happens via forwarding, never
// by copying them), and the formatter defaults to DefaultFormatter rather
// than the parent's.
//
// Child does not modify the parent; closing either side leaves the other
// fully usable.
func (l *Logger) Child(opts ...Option) *Logger {
	cfg := loggerConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.nameSet {
		cfg.name = l.name
	}
	if !cfg.thresholdSet {
		cfg.threshold = l.threshold
	}
	if cfg.formatter == nil {
		cfg.formatter = DefaultFormatter
	}

	return &Logger{
		name:      cfg.name,
		threshold: cfg.threshold,
		sinks:     util.CloneSlice(cfg.sinks, 0),
		formatter: cfg.formatter,
		clock:     l.clock,
		parent:    l,
	}
}

// Name returns the logger's name. It may be empty.
func (l *Logger) Name() string {
	return l.name
}

// Threshold returns the minimum severity the logger accepts.
func (l *Logger) Threshold() Severity {
	return l.threshold
}

// Enabled reports whether a message at the given severity would pass the
// logger's threshold.
func (l *Logger) Enabled(severity Severity) bool {
	return severity.AtLeast(l.threshold)
}

// Log logs msg at the given severity.
//
// If the severity does not pass the threshold the call is a complete no-op:
// no record is built, no clock is read, no sink is touched. Otherwise one
// Record is built and dispatched through this logger and its ancestors; the
// first failing sink aborts the remaining dispatch and its error is returned.
//
// A nil msg, or calling on a closed logger, is a contract violation and
// panics (elided in builds with the treelog_unchecked tag).
func (l *Logger) Log(severity Severity, msg any) error {
	check.NotNil(msg, ErrNilMessage)
	check.Must(!l.closed.Load(), ErrLoggerClosed)

	if !l.Enabled(severity) {
		return nil
	}

	return l.dispatch(l.newRecord(severity, msg))
}

// LogLazy logs the value produced by generate at the given severity.
//
// The generator runs only when the severity passes the threshold, so callers
// can defer expensive message construction to the log site without paying for
// it when the message would be dropped. A panic inside the generator is not
// recovered and propagates to the caller.
//
// A nil generate, or calling on a closed logger, is a contract violation and
// panics (elided in builds with the treelog_unchecked tag).
func (l *Logger) LogLazy(severity Severity, generate func() any) error {
	// compare at the concrete func type; boxing a typed nil into any would
	// always look non-nil
	check.Must(generate != nil, ErrNilGenerator)
	check.Must(!l.closed.Load(), ErrLoggerClosed)

	if !l.Enabled(severity) {
		return nil
	}

	return l.dispatch(l.newRecord(severity, generate()))
}

// Emergency logs msg at Emergency severity.
func (l *Logger) Emergency(msg any) error { return l.Log(Emergency, msg) }

// Alert logs msg at Alert severity.
func (l *Logger) Alert(msg any) error { return l.Log(Alert, msg) }

// Critical logs msg at Critical severity.
func (l *Logger) Critical(msg any) error { return l.Log(Critical, msg) }

// Error logs msg at Error severity.
func (l *Logger) Error(msg any) error { return l.Log(Error, msg) }

// Warning logs msg at Warning severity.
func (l *Logger) Warning(msg any) error { return l.Log(Warning, msg) }

// Notice logs msg at Notice severity.
func (l *Logger) Notice(msg any) error { return l.Log(Notice, msg) }

// Info logs msg at Info severity.
func (l *Logger) Info(msg any) error { return l.Log(Info, msg) }

// Debug logs msg at Debug severity.
func (l *Logger) Debug(msg any) error { return l.Log(Debug, msg) }

// Close closes the logger's own sinks in the order they were supplied and
// marks the logger closed; any later Log or LogLazy call on it is a contract
// violation. Closing is not recursive: the parent and any children keep their
// sinks and remain usable. The first failing sink aborts closing the rest and
// its error is returned.
func (l *Logger) Close() error {
	if !l.closed.CompareAndSwap(false, true) {
		return nil
	}

	for _, s := range l.sinks {
		if err := s.Close(); err != nil {
			return err
		}
	}

	return nil
}

func (l *Logger) newRecord(severity Severity, payload any) *Record {
	return &Record{
		origin:    l.name,
		payload:   payload,
		severity:  severity,
		timestamp: l.clock(),
		formatter: l.formatter,
	}
}

// dispatch feeds the record to this logger's sinks in order, then forwards
// the identical record to the parent. The parent chain runs even when this
// logger owns no sinks. A closed ancestor's sinks are skipped — they were
// already closed and must not see another Accept — but forwarding continues
// past it to the rest of the chain.
func (l *Logger) dispatch(r *Record) error {
	if !l.closed.Load() {
		for _, s := range l.sinks {
			if err := s.Accept(r); err != nil {
				return err
			}
		}
	}

	if l.parent != nil {
		return l.parent.dispatch(r)
	}

	return nil
}
