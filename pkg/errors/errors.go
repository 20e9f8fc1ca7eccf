// Package errors provides structured error handling for widgetkit.
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
	// KindConfig indicates an invalid widget or theme configuration.
	KindConfig
	// KindTimer indicates a failure raised from a timer fire callback.
	KindTimer
	// KindGesture indicates a failure raised from a gesture callback.
	KindGesture
	// KindRender indicates a painting or layout error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindTimer:
		return "timer"
	case KindGesture:
		return "gesture"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// KitError represents a structured error in widgetkit.
type KitError struct {
	// Op is the operation that failed (e.g., "carousel.Refresh").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *KitError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *KitError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "animation.StepTimers").
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

// ErrorHandler receives errors reported by widgetkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *KitError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
