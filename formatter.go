package treelog

import (
	"fmt"
	"time"
)

// Formatter renders a Record to text. A Logger binds its formatter into every
// record it produces, so rendering stays stable no matter which sink in the
// ancestor chain performs it.
type Formatter func(r *Record) string

// DefaultFormatter renders a record as
//
//	[<severity> @ <H>:<M>:<S>:<ms>] <name>: <payload>
//
// e.g. "[info @ 14:5:2:84] worker: job done". Time fields are not
// zero-padded. An unnamed origin renders as an empty string before the colon.
func DefaultFormatter(r *Record) string {
	ts := r.Timestamp()

	return fmt.Sprintf("[%s @ %d:%d:%d:%d] %s: %v",
		r.Severity(),
		ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond()/int(time.Millisecond),
		r.Origin(), r.Payload(),
	)
}
