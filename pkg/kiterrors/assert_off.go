//go:build !ci

package kiterrors

const DebugAssertionsEnabled = false

// DebugAssertf does nothing in non-CI builds.
func DebugAssertf(condition func() bool, format string, args ...any) {
	// Do nothing
}

// DebugAssertNotNilf does nothing in non-CI builds.
func DebugAssertNotNilf(obj any, format string, args ...any) {
	// Do nothing
}
