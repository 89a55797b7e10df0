// Package dispatch implements synchronous handler execution for the event
// bus.
//
// The Executor runs a single handler with panic recovery and timing. The
// SyncDispatcher wraps it with statistics and slow-handler warnings. All
// execution happens in the publisher's goroutine; dispatch is strictly
// sequential and blocking. There is deliberately no asynchronous dispatcher,
// queue, or worker pool here.
package dispatch
