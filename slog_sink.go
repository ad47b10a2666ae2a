package treelog

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/phsym/console-slog"
)

// SlogSink forwards accepted records into a log/slog Handler, bridging
// treelog loggers to the wider slog handler ecosystem.
type SlogSink struct {
	handler slog.Handler
}

// NewSlogSink returns a sink handing every accepted record to h.
//
// The record's own timestamp and severity are carried over; the origin is
// attached as a "logger" attribute when present.
func NewSlogSink(h slog.Handler) *SlogSink {
	return &SlogSink{handler: h}
}

// NewConsoleSlogSink returns a sink rendering records with a human-friendly
// colored console handler on stderr. All severities are passed through; the
// owning logger's threshold already filtered them.
func NewConsoleSlogSink() *SlogSink {
	opts := &console.HandlerOptions{
		Level: slog.LevelDebug,
	}

	return NewSlogSink(console.NewHandler(os.Stderr, opts))
}

// Accept converts the record to a slog.Record and hands it to the handler.
func (s *SlogSink) Accept(r *Record) error {
	level := toSlogLevel(r.Severity())
	rec := slog.NewRecord(r.Timestamp(), level, fmt.Sprint(r.Payload()), 0)
	if r.Origin() != "" {
		rec.AddAttrs(slog.String("logger", r.Origin()))
	}

	return s.handler.Handle(context.Background(), rec)
}

// Close implements Sink.
func (s *SlogSink) Close() error {
	return nil
}

var slogLevelMap = map[Severity]slog.Level{
	Debug:     slog.LevelDebug,
	Info:      slog.LevelInfo,
	Notice:    slog.LevelInfo,
	Warning:   slog.LevelWarn,
	Error:     slog.LevelError,
	Critical:  slog.LevelError + 4,
	Alert:     slog.LevelError + 8,
	Emergency: slog.LevelError + 12,
}

func toSlogLevel(s Severity) slog.Level {
	if slogLevel, ok := slogLevelMap[s]; ok {
		return slogLevel
	}

	return slog.LevelError
}
