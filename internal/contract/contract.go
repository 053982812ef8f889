// Package contract holds precondition checks for real-time code paths.
//
// Checks are active by default so tests exercise them. Building with the
// dspnoassert tag turns every check into a no-op that the compiler removes.
package contract

import "fmt"

// Violation is the panic value raised by a failed check.
type Violation struct {
	Msg string
}

func (v *Violation) Error() string {
	return "contract violation: " + v.Msg
}

// Require panics with a *Violation when cond is false.
func Require(cond bool, msg string) {
	if Enabled && !cond {
		panic(&Violation{Msg: msg})
	}
}

// Requiref is Require with a formatted message. The arguments are only
// formatted when the check fails.
func Requiref(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(&Violation{Msg: fmt.Sprintf(format, args...)})
	}
}
