package treelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		expected string
	}{
		{name: "Emergency", severity: Emergency, expected: "emergency"},
		{name: "Alert", severity: Alert, expected: "alert"},
		{name: "Critical", severity: Critical, expected: "critical"},
		{name: "Error", severity: Error, expected: "error"},
		{name: "Warning", severity: Warning, expected: "warning"},
		{name: "Notice", severity: Notice, expected: "notice"},
		{name: "Info", severity: Info, expected: "info"},
		{name: "Debug", severity: Debug, expected: "debug"},
		{name: "OutOfRange", severity: Severity(42), expected: "unknown"},
		{name: "Negative", severity: Severity(-1), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.severity.String())
		})
	}
}

func TestSeverity_Ordering(t *testing.T) {
	// lower rank = more severe
	assert.True(t, Emergency.MoreSevere(Debug))
	assert.True(t, Error.MoreSevere(Warning))
	assert.False(t, Debug.MoreSevere(Emergency))
	assert.False(t, Info.MoreSevere(Info))

	assert.True(t, Error.AtLeast(Warning))
	assert.True(t, Warning.AtLeast(Warning))
	assert.False(t, Debug.AtLeast(Info))
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Severity
		wantErr  bool
	}{
		{name: "Emergency", input: "emergency", expected: Emergency},
		{name: "Debug", input: "debug", expected: Debug},
		{name: "MixedCase", input: "Warning", expected: Warning},
		{name: "Whitespace", input: " error ", expected: Error},
		{name: "Unknown", input: "verbose", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseSeverity(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSeverity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestSeverityFromRank(t *testing.T) {
	for rank := 0; rank < numSeverities; rank++ {
		s, err := SeverityFromRank(rank)
		require.NoError(t, err)
		assert.Equal(t, Severity(rank), s)
		assert.True(t, s.Valid())
	}

	_, err := SeverityFromRank(-1)
	assert.ErrorIs(t, err, ErrInvalidSeverity)

	_, err = SeverityFromRank(8)
	assert.ErrorIs(t, err, ErrInvalidSeverity)
}
