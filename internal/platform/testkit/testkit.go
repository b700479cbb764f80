// Package testkit holds test helpers shared across packages: panic
// assertions, seam swapping and a recording fake of the upstream API
package testkit

import "testing"

// MustPanic fails t unless fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	fn()
}

// Swap sets *target to v until the test ends. Tests that swap the same
// seam must not run in parallel
func Swap[T any](t *testing.T, target *T, v T) {
	t.Helper()
	prev := *target
	*target = v
	t.Cleanup(func() { *target = prev })
}
