package event

import (
	"context"

	"github.com/foyerlabs/menage/internal/event/topic"
)

// Priority determines handler execution order for a single publish.
// Lower values execute first; registration order breaks ties.
type Priority int

const (
	// PriorityCritical is for handlers that must observe the event first.
	PriorityCritical Priority = 0

	// PriorityHigh is for cache invalidation and index maintenance.
	PriorityHigh Priority = 100

	// PriorityNormal is for notification and integration handlers.
	PriorityNormal Priority = 200

	// PriorityLow is for audit and logging handlers that run last.
	PriorityLow Priority = 300
)

// String returns a human-readable priority name.
func (p Priority) String() string {
	switch {
	case p <= PriorityCritical:
		return "critical"
	case p <= PriorityHigh:
		return "high"
	case p <= PriorityNormal:
		return "normal"
	default:
		return "low"
	}
}

// Handler is the interface for event handlers.
type Handler interface {
	// Handle processes an event. A returned error is logged and isolated;
	// it is never propagated to the publisher.
	Handle(ctx context.Context, evt Event) error
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ctx context.Context, evt Event) error

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(ctx context.Context, evt Event) error {
	return f(ctx, evt)
}

// FilterFunc is a predicate for filtering events before delivery.
// Return true to deliver the event, false to skip the handler.
type FilterFunc func(evt Event) bool

// Stats contains a diagnostic snapshot of the bus.
type Stats struct {
	// Patterns maps each registered pattern to its handler count.
	Patterns map[topic.Topic]int

	// TotalSubscriptions is the number of registered handler entries.
	TotalSubscriptions int

	// EventsPublished is the total number of publish calls that passed
	// validation.
	EventsPublished uint64

	// HandlersSucceeded is the number of handler executions that completed
	// without error or panic.
	HandlersSucceeded uint64

	// HandlerErrors is the number of handlers that returned errors.
	HandlerErrors uint64

	// HandlerPanics is the number of handlers that panicked.
	HandlerPanics uint64
}
