//go:build !treelog_unchecked

// Package check implements the contract checks guarding treelog's public API.
//
// Checks are compiled in by default and panic on violation. Building with the
// treelog_unchecked tag removes them entirely, trading verification for zero
// overhead on hot logging paths.
package check

// Must panics with err if cond is false.
func Must(cond bool, err error) {
	if !cond {
		panic(err)
	}
}

// NotNil panics with err if v is nil.
func NotNil(v any, err error) {
	if v == nil {
		panic(err)
	}
}
