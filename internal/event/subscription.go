package event

import (
	"sync/atomic"

	"github.com/foyerlabs/menage/internal/event/topic"
)

// Subscription represents an active handler registration.
type Subscription interface {
	// ID returns the unique subscription identifier.
	ID() string

	// Pattern returns the subscribed pattern.
	Pattern() topic.Topic

	// Priority returns the subscription priority.
	Priority() Priority

	// IsActive returns true if the subscription can receive events.
	IsActive() bool

	// Cancel permanently deactivates the subscription. A cancelled
	// subscription is skipped by snapshots and pruned from the registry.
	Cancel()
}

// SubscriptionConfig contains configuration for a subscription.
type SubscriptionConfig struct {
	// Priority determines execution order (lower values execute first).
	Priority Priority

	// Filter is an optional predicate; events are only delivered when it
	// returns true.
	Filter FilterFunc

	// Once auto-cancels the subscription after its first successful
	// delivery.
	Once bool
}

// SubscriptionOption configures a subscription.
type SubscriptionOption func(*SubscriptionConfig)

// WithPriority sets the subscription priority.
func WithPriority(p Priority) SubscriptionOption {
	return func(c *SubscriptionConfig) {
		c.Priority = p
	}
}

// WithFilter sets a filter predicate.
func WithFilter(f FilterFunc) SubscriptionOption {
	return func(c *SubscriptionConfig) {
		c.Filter = f
	}
}

// WithOnce auto-cancels the subscription after the first successful delivery.
func WithOnce() SubscriptionOption {
	return func(c *SubscriptionConfig) {
		c.Once = true
	}
}

// subscription is the internal implementation of Subscription.
type subscription struct {
	id      string
	seq     uint64 // registration order, assigned by the registry
	pattern topic.Topic
	handler Handler
	config  SubscriptionConfig

	cancelled atomic.Bool
}

// newSubscription creates a new subscription.
// Priority defaults to PriorityCritical (0), matching the bus contract that
// an unspecified priority runs before explicitly deprioritized handlers.
func newSubscription(id string, pattern topic.Topic, h Handler, opts ...SubscriptionOption) *subscription {
	config := SubscriptionConfig{Priority: PriorityCritical}
	for _, opt := range opts {
		opt(&config)
	}

	return &subscription{
		id:      id,
		pattern: pattern,
		handler: h,
		config:  config,
	}
}

func (s *subscription) ID() string          { return s.id }
func (s *subscription) Pattern() topic.Topic { return s.pattern }
func (s *subscription) Priority() Priority  { return s.config.Priority }

// IsActive returns true if the subscription has not been cancelled.
func (s *subscription) IsActive() bool {
	return !s.cancelled.Load()
}

// Cancel permanently deactivates the subscription.
func (s *subscription) Cancel() {
	s.cancelled.Store(true)
}

// ShouldDeliver returns true if the event should be delivered to this
// subscription.
func (s *subscription) ShouldDeliver(evt Event) bool {
	if !s.IsActive() {
		return false
	}
	if s.config.Filter != nil && !s.config.Filter(evt) {
		return false
	}
	return true
}
