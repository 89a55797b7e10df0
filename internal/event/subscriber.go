package event

import (
	"sync"

	"github.com/foyerlabs/menage/internal/event/topic"
)

// Subscriber tracks a module's subscriptions and cancels them together on
// Close, tying handler lifetime to the lifetime of the owning module.
type Subscriber struct {
	bus           Bus
	mu            sync.Mutex
	subscriptions []Subscription
	closed        bool
}

// NewSubscriber creates a new Subscriber wrapping the given bus.
func NewSubscriber(bus Bus) *Subscriber {
	return &Subscriber{
		bus: bus,
	}
}

// Subscribe creates a subscription tracked for cleanup on Close.
func (s *Subscriber) Subscribe(pattern topic.Topic, handler Handler, opts ...SubscriptionOption) (Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSubscriberClosed
	}

	sub, err := s.bus.Subscribe(pattern, handler, opts...)
	if err != nil {
		return nil, err
	}

	s.subscriptions = append(s.subscriptions, sub)
	return sub, nil
}

// SubscribeFunc creates a tracked subscription with a function handler.
func (s *Subscriber) SubscribeFunc(pattern topic.Topic, fn HandlerFunc, opts ...SubscriptionOption) (Subscription, error) {
	return s.Subscribe(pattern, fn, opts...)
}

// Count returns the number of tracked subscriptions.
func (s *Subscriber) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subscriptions)
}

// Close cancels and removes every subscription created through this
// Subscriber. Closing twice is a no-op.
func (s *Subscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	for _, sub := range s.subscriptions {
		_ = s.bus.Remove(sub)
	}
	s.subscriptions = nil
	return nil
}
