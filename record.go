package treelog

import "time"

// Record captures one accepted log event.
//
// A Record is built exactly once, by the Logger that accepted the message,
// and is then handed unchanged to every sink in the chain from that logger up
// to the root. It is immutable after construction: the same Record rendered
// twice yields the same text.
type Record struct {
	origin    string
	payload   any
	severity  Severity
	timestamp time.Time
	formatter Formatter
}

// Origin returns the name of the logger that produced the record.
// It may be empty for unnamed loggers.
func (r *Record) Origin() string {
	return r.origin
}

// Payload returns the logged message value.
func (r *Record) Payload() any {
	return r.payload
}

// Severity returns the severity the message was logged at.
func (r *Record) Severity() Severity {
	return r.severity
}

// Timestamp returns the creation time of the record, read once from the
// owning logger's clock. Forwarding to ancestor loggers never re-stamps it.
func (r *Record) Timestamp() time.Time {
	return r.timestamp
}

// Render formats the record to text using its bound formatter.
func (r *Record) Render() string {
	return r.formatter(r)
}
