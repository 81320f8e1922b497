package errors

import "fmt"

// Debug controls how broken internal invariants are surfaced.
// When true, Invariant panics so bugs fail loudly during development.
// When false, violations are reported to the handler and execution
// continues best-effort.
var Debug = false

// SetDebug enables or disables debug mode for the engine.
func SetDebug(debug bool) {
	Debug = debug
}

// Invariant checks an internal engine invariant. It does nothing when cond
// is true. When cond is false it panics in debug mode, and otherwise
// reports a KindInvariant error to the handler.
func Invariant(cond bool, op, format string, args ...any) {
	if cond {
		return
	}
	err := &Error{
		Op:   op,
		Kind: KindInvariant,
		Err:  fmt.Errorf(format, args...),
	}
	if Debug {
		panic(err)
	}
	err.StackTrace = CaptureStack()
	Report(err)
}
