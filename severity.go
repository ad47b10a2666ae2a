package treelog

import "strings"

// Severity indicates how important a log message is.
//
// The eight levels follow the syslog convention: a lower rank means a more
// severe message, with Emergency being rank 0 and Debug rank 7. Comparing two
// severities compares their ranks and nothing else.
type Severity int8

const (
	// Emergency indicates the system is unusable.
	Emergency Severity = iota
	// Alert indicates action must be taken immediately.
	Alert
	// Critical indicates a critical condition.
	Critical
	// Error indicates an error that requires attention.
	Error
	// Warning indicates a potential issue worth drawing attention to.
	Warning
	// Notice indicates a normal but significant condition.
	Notice
	// Info is the default logging severity for general informational messages.
	Info
	// Debug logs are typically voluminous, and are usually disabled in production.
	Debug
)

// numSeverities is the size of the closed severity set.
const numSeverities = 8

var severityNames = [numSeverities]string{
	"emergency",
	"alert",
	"critical",
	"error",
	"warning",
	"notice",
	"info",
	"debug",
}

// String returns the lowercase name of the severity, e.g. "warning".
// It returns "unknown" for values outside the defined set.
func (s Severity) String() string {
	if !s.Valid() {
		return "unknown"
	}

	return severityNames[s]
}

// Valid reports whether s is one of the eight defined severities.
func (s Severity) Valid() bool {
	return s >= Emergency && s <= Debug
}

// MoreSevere reports whether s is strictly more severe than other,
// i.e. s has a smaller rank.
func (s Severity) MoreSevere(other Severity) bool {
	return s < other
}

// AtLeast reports whether s is at least as severe as threshold.
//
// A message logged at severity s passes a logger with the given threshold
// exactly when this returns true.
func (s Severity) AtLeast(threshold Severity) bool {
	return s <= threshold
}

// ParseSeverity parses a lowercase severity name, e.g. "error".
// It returns ErrInvalidSeverity if the name is not one of the eight defined severities.
func ParseSeverity(name string) (Severity, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range severityNames {
		if n == name {
			return Severity(i), nil //nolint: gosec
		}
	}

	return 0, ErrInvalidSeverity
}

// SeverityFromRank converts a numeric rank in the range [0, 7] to a Severity.
// It returns ErrInvalidSeverity if the rank is out of range.
func SeverityFromRank(rank int) (Severity, error) {
	if rank < 0 || rank >= numSeverities {
		return 0, ErrInvalidSeverity
	}

	return Severity(rank), nil
}
