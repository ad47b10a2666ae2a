//go:build treelog_unchecked

package check

// Must is a no-op in unchecked builds.
func Must(cond bool, err error) {}

// NotNil is a no-op in unchecked builds.
func NotNil(v any, err error) {}
