package treelog

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closableBuffer struct {
	bytes.Buffer
	closed bool
}

func (b *closableBuffer) Close() error {
	b.closed = true
	return nil
}

func TestWriterSink(t *testing.T) {
	t.Run("WritesRenderedLines", func(t *testing.T) {
		var buf bytes.Buffer
		sink := NewWriterSink(&buf)

		ts := time.Date(2024, 3, 7, 9, 30, 15, 250*int(time.Millisecond), time.UTC)
		require.NoError(t, sink.Accept(testRecord("worker", "one", Info, ts)))
		require.NoError(t, sink.Accept(testRecord("worker", "two", Error, ts)))

		expected := "[info @ 9:30:15:250] worker: one\n[error @ 9:30:15:250] worker: two\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("CloseClosesCloser", func(t *testing.T) {
		buf := &closableBuffer{}
		sink := NewWriterSink(buf)

		require.NoError(t, sink.Close())
		assert.True(t, buf.closed)
	})

	t.Run("CloseIgnoresPlainWriter", func(t *testing.T) {
		sink := NewWriterSink(&bytes.Buffer{})
		assert.NoError(t, sink.Close())
	})
}

func TestFuncSink(t *testing.T) {
	var got []string
	sink := NewFuncSink(func(text string) error {
		got = append(got, text)
		return nil
	})

	ts := time.Date(2024, 3, 7, 1, 2, 3, 4*int(time.Millisecond), time.UTC)
	require.NoError(t, sink.Accept(testRecord("fwd", "hello", Notice, ts)))
	require.NoError(t, sink.Close())

	assert.Equal(t, []string{"[notice @ 1:2:3:4] fwd: hello"}, got)

	failErr := errors.New("consumer refused")
	failing := NewFuncSink(func(string) error { return failErr })
	assert.ErrorIs(t, failing.Accept(testRecord("fwd", "x", Info, ts)), failErr)
}

func TestBufferSink(t *testing.T) {
	sink := NewBufferSink()
	assert.Zero(t, sink.Len())

	ts := time.Date(2024, 3, 7, 1, 2, 3, 4*int(time.Millisecond), time.UTC)
	require.NoError(t, sink.Accept(testRecord("buf", "first", Info, ts)))
	require.NoError(t, sink.Accept(testRecord("buf", "second", Info, ts)))

	assert.Equal(t, 2, sink.Len())
	lines := sink.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "[info @ 1:2:3:4] buf: first", lines[0])
	assert.Equal(t, "[info @ 1:2:3:4] buf: second", lines[1])

	// Lines returns a copy
	lines[0] = "mutated"
	assert.Equal(t, "[info @ 1:2:3:4] buf: first", sink.Lines()[0])

	// lines survive Close
	require.NoError(t, sink.Close())
	assert.Equal(t, 2, sink.Len())
}

func TestDiscardSink(t *testing.T) {
	sink := NewDiscardSink()
	require.NoError(t, sink.Accept(testRecord("", "dropped", Info, time.Now())))
	require.NoError(t, sink.Close())
}

func TestSlogSink(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	sink := NewSlogSink(handler)

	ts := time.Date(2024, 3, 7, 9, 30, 15, 0, time.UTC)
	require.NoError(t, sink.Accept(testRecord("svc", "connected", Warning, ts)))
	require.NoError(t, sink.Close())

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "msg=connected")
	assert.Contains(t, out, "logger=svc")
}

func TestSlogSink_NoOriginAttr(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSlogSink(slog.NewTextHandler(&buf, nil))

	require.NoError(t, sink.Accept(testRecord("", "anon", Info, time.Now())))
	assert.NotContains(t, buf.String(), "logger=")
}

func TestToSlogLevel(t *testing.T) {
	tests := []struct {
		severity Severity
		expected slog.Level
	}{
		{severity: Debug, expected: slog.LevelDebug},
		{severity: Info, expected: slog.LevelInfo},
		{severity: Notice, expected: slog.LevelInfo},
		{severity: Warning, expected: slog.LevelWarn},
		{severity: Error, expected: slog.LevelError},
		{severity: Critical, expected: slog.LevelError + 4},
		{severity: Alert, expected: slog.LevelError + 8},
		{severity: Emergency, expected: slog.LevelError + 12},
		{severity: Severity(99), expected: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.severity.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, toSlogLevel(tt.severity))
		})
	}
}

func TestSlogSink_AsLoggerDestination(t *testing.T) {
	var buf bytes.Buffer
	l := New(
		WithName("bridge"),
		WithSinks(NewSlogSink(slog.NewTextHandler(&buf, nil))),
	)

	require.NoError(t, l.Info("over the bridge"))
	assert.True(t, strings.Contains(buf.String(), "over the bridge"))
}
