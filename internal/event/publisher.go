package event

import (
	"context"

	"github.com/foyerlabs/menage/internal/event/topic"
)

// Publisher is a source-scoped convenience wrapper around a Bus. Every event
// it publishes is stamped with the owning module's name, so audit handlers
// can attribute occurrences without each call site repeating the source.
type Publisher struct {
	bus    Bus
	source string
}

// NewPublisher creates a Publisher for the given module.
// The source parameter identifies where events originate (e.g., "recettes").
func NewPublisher(bus Bus, source string) *Publisher {
	return &Publisher{
		bus:    bus,
		source: source,
	}
}

// Publish sends an event with the publisher's source stamped on it.
func (p *Publisher) Publish(ctx context.Context, name topic.Topic, payload Payload) (int, error) {
	return p.bus.PublishEvent(ctx, NewEvent(name, payload, p.source))
}

// Source returns the publisher's source identifier.
func (p *Publisher) Source() string {
	return p.source
}

// Bus returns the underlying bus.
func (p *Publisher) Bus() Bus {
	return p.bus
}
