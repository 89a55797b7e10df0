package dispatch

import (
	"context"
	"time"
)

// Handler is the interface for event handlers.
// This mirrors the event.Handler interface to avoid circular imports.
type Handler interface {
	Handle(ctx context.Context, event any) error
}

// Result represents the outcome of a single handler execution.
type Result struct {
	// Success is true if the handler completed without error or panic.
	Success bool

	// Err is the error returned by the handler, if any.
	Err error

	// Panicked is true if the handler panicked.
	Panicked bool

	// PanicValue is the value passed to panic(), if Panicked is true.
	PanicValue any

	// PanicStack is the stack trace captured at the point of panic.
	PanicStack []byte

	// Duration is how long the handler took to execute.
	Duration time.Duration

	// Skipped is true if the handler was not executed because the caller's
	// context was already cancelled.
	Skipped bool
}

// IsSuccess returns true if the handler ran to completion.
func (r Result) IsSuccess() bool {
	return r.Success && !r.Panicked && r.Err == nil
}
