package treelog

import (
	"io"
	"os"
	"sync"

	"github.com/mivholt/treelog/internal/util"
)

// Sink is the destination contract consumed by loggers. Any type implementing
// it can be passed to a Logger's destination list via WithSinks.
//
// Accept consumes one record; its error is returned to the logging caller and
// aborts the remaining dispatch, including forwarding to ancestor loggers.
// Close releases any held resource. The core never calls Accept after Close:
// closing a logger removes its sinks from the dispatch path, even for records
// forwarded by still-open descendants.
//
// The core does not serialize calls: when concurrent contexts share one
// logger, thread safety of Accept is the sink's responsibility.
type Sink interface {
	Accept(r *Record) error
	Close() error
}

// consoleSink renders records to standard output.
type consoleSink struct{}

// NewConsoleSink returns a sink that prints each rendered record to stdout,
// one per line. Close is a no-op; the sink does not own stdout.
func NewConsoleSink() Sink {
	return consoleSink{}
}

func (consoleSink) Accept(r *Record) error {
	_, err := io.WriteString(os.Stdout, r.Render()+"\n")
	return err
}

func (consoleSink) Close() error {
	return nil
}

// discardSink drops every record.
type discardSink struct{}

// NewDiscardSink returns a sink that accepts and drops every record.
func NewDiscardSink() Sink {
	return discardSink{}
}

func (discardSink) Accept(*Record) error { return nil }
func (discardSink) Close() error         { return nil }

// WriterSink renders records to an io.Writer, one per line.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink returns a sink writing each rendered record to w followed by
// a newline. If w also implements io.Closer, Close closes it.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Accept writes the rendered record to the underlying writer.
func (s *WriterSink) Accept(r *Record) error {
	_, err := io.WriteString(s.w, r.Render()+"\n")
	return err
}

// Close closes the underlying writer when it implements io.Closer.
func (s *WriterSink) Close() error {
	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

// FuncSink forwards each rendered record to an external text consumer.
type FuncSink struct {
	fn func(text string) error
}

// NewFuncSink returns a sink invoking fn with the rendered text of every
// accepted record. Close is a no-op.
func NewFuncSink(fn func(text string) error) *FuncSink {
	return &FuncSink{fn: fn}
}

// Accept renders the record and hands the text to the consumer function.
func (s *FuncSink) Accept(r *Record) error {
	return s.fn(r.Render())
}

// Close implements Sink.
func (s *FuncSink) Close() error {
	return nil
}

// BufferSink appends rendered records to an in-memory text buffer.
// It is safe for concurrent use.
type BufferSink struct {
	mu    sync.Mutex
	lines []string
}

// NewBufferSink returns an empty in-memory buffer sink.
func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

// Accept appends the rendered record to the buffer.
func (s *BufferSink) Accept(r *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = append(s.lines, r.Render())

	return nil
}

// Close implements Sink. The buffered lines remain readable after Close.
func (s *BufferSink) Close() error {
	return nil
}

// Lines returns a copy of the buffered lines in arrival order.
func (s *BufferSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return util.CloneSlice(s.lines, 0)
}

// Len returns the number of buffered lines.
func (s *BufferSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.lines)
}
