package internal

import "fmt"

// Invariant panics with a fmt.Errorf-wrapped message if cond is false. It
// guards programming errors — a nil body or factory, a double
// activation — not data the protocol itself is meant to
// tolerate; refusal already covers every expected runtime condition.
func Invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("tasket: "+format, args...))
	}
}
