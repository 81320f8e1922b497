// Package errors provides structured error handling for the motion engine.
//
// The engine never fails playback for recoverable problems. Invalid
// configuration falls back to documented defaults and is surfaced as a
// Warning; numeric instability is recovered locally and reported; broken
// internal invariants are reported, or panic when Debug is enabled.
// Applications observe all of this through a single pluggable Handler.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates invalid animation configuration.
	KindConfig
	// KindResolve indicates a keyframe resolution failure.
	KindResolve
	// KindNumeric indicates numeric instability in a simulation.
	KindNumeric
	// KindInvariant indicates a broken internal invariant.
	KindInvariant
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindResolve:
		return "resolve"
	case KindNumeric:
		return "numeric"
	case KindInvariant:
		return "invariant"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the motion engine.
type Error struct {
	// Op is the operation that failed (e.g., "animation.resolveKeyframes").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Warning represents a recoverable configuration problem. The engine has
// already substituted a default and continued; the warning exists so the
// application can surface misconfiguration during development.
type Warning struct {
	// Op is the operation that produced the warning (e.g., "generators.Spring").
	Op string
	// Message describes the problem and the substituted behavior.
	Message string
	// Timestamp is when the warning occurred.
	Timestamp time.Time
}

func (w *Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Op, w.Message)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "frame.ProcessFrame").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives errors and warnings reported by the motion engine.
type Handler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandleWarning is called when invalid configuration is corrected.
	HandleWarning(w *Warning)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
