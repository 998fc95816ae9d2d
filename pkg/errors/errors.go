// Package errors provides structured error handling for the a11y toolkit.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindEmptyTrap indicates a focus trap was activated on a container
	// with no focusable descendants.
	KindEmptyTrap
	// KindTrapActive indicates a focus trap activation was rejected
	// because another trap session is already live.
	KindTrapActive
	// KindInvalidSeverity indicates an announcement was routed with a
	// politeness outside the supported set.
	KindInvalidSeverity
	// KindLifecycle indicates a dialog lifecycle operation was invoked
	// from an incompatible phase.
	KindLifecycle
	// KindMissingReturnTarget indicates the element that held focus
	// before a dialog opened has left the document. Warning grade: the
	// system recovers by focusing the body landmark.
	KindMissingReturnTarget
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindEmptyTrap:
		return "empty-trap"
	case KindTrapActive:
		return "trap-active"
	case KindInvalidSeverity:
		return "invalid-severity"
	case KindLifecycle:
		return "lifecycle"
	case KindMissingReturnTarget:
		return "missing-return-target"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the a11y toolkit.
type Error struct {
	// Op is the operation that failed (e.g., "focus.Register.Activate").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s [%s]", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error with the given operation, kind, and cause.
func New(op string, kind ErrorKind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// Newf creates an Error whose cause is a formatted message.
func Newf(op string, kind ErrorKind, format string, args ...any) *Error {
	return New(op, kind, fmt.Errorf(format, args...))
}

// IsKind reports whether err is or wraps an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == kind {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// Warning represents a degraded-path event that the toolkit recovered
// from. Warnings are reported to the handler, never returned to callers.
type Warning struct {
	// Op is the operation that degraded (e.g., "dialog.Controller.Dismiss").
	Op string
	// Kind categorizes the warning.
	Kind ErrorKind
	// Detail describes the degradation and the recovery taken.
	Detail string
	// Timestamp is when the warning occurred.
	Timestamp time.Time
}

func (w *Warning) String() string {
	return fmt.Sprintf("%s [%s]: %s", w.Op, w.Kind, w.Detail)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked.
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

// ErrorHandler receives errors and warnings reported by the toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandleWarning is called when a recoverable degradation occurs.
	HandleWarning(w *Warning)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
