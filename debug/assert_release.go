//go:build !debug

// Package debug provides assertions for programmer errors, e.g. calling the
// TA driver out of order. They are compiled in with the debug build tag and
// are no-ops otherwise.
package debug

// Enabled reports whether assertions are compiled in. Wrap assertions whose
// arguments are expensive to compute in `if debug.Enabled {...}`.
const Enabled = false

// Assert panics with message if b is false.
func Assert(b bool, message string) {}

// Assertf is like Assert but formats its message like fmt.Sprintf.
func Assertf(b bool, format string, args ...any) {}

// AssertErrNil panics if err is not nil.
func AssertErrNil(err error) {}
