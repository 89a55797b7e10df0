package dispatch

import (
	"context"
	"runtime/debug"
	"time"
)

// Executor runs event handlers with panic recovery and timing.
type Executor struct{}

// NewExecutor creates a new executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs a handler with the given event and returns the result.
// Panics are recovered with a full stack trace; a panicking handler never
// takes down the publisher.
func (e *Executor) Execute(ctx context.Context, event any, handler Handler) (result Result) {
	// A publish with an already-cancelled context skips remaining handlers.
	select {
	case <-ctx.Done():
		return Result{
			Err:     ctx.Err(),
			Skipped: true,
		}
	default:
	}

	start := time.Now()

	defer func() {
		result.Duration = time.Since(start)

		if r := recover(); r != nil {
			result.Success = false
			result.Panicked = true
			result.PanicValue = r
			result.PanicStack = debug.Stack()
		}
	}()

	if err := handler.Handle(ctx, event); err != nil {
		result.Err = err
		return result
	}

	result.Success = true
	return result
}
