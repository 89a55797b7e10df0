package event

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/foyerlabs/menage/internal/event/topic"
)

// timeNow is a variable to allow testing with fixed timestamps.
var timeNow = time.Now

// Payload carries the keyword arguments of a published event. The bus
// attaches no meaning to the keys; that contract is established bilaterally
// between publisher and subscriber modules.
type Payload map[string]any

// Metadata contains standard information attached to every event.
type Metadata struct {
	// ID is a unique identifier for this event instance.
	ID string

	// Timestamp is when the event was published.
	Timestamp time.Time

	// Source identifies the module that published the event.
	Source string
}

// Event is a concrete occurrence delivered to handlers.
// Events are immutable once published.
type Event struct {
	// Name is the dot-segmented event name (e.g., "recette.creee").
	// It must never contain wildcard tokens.
	Name topic.Topic

	// Payload contains the event-specific data.
	Payload Payload

	// Meta contains standard event information.
	Meta Metadata
}

// NewEvent creates an event with a fresh ID and timestamp.
func NewEvent(name topic.Topic, payload Payload, source string) Event {
	return Event{
		Name:    name,
		Payload: payload,
		Meta: Metadata{
			ID:        generateID(),
			Timestamp: timeNow(),
			Source:    source,
		},
	}
}

// generateID generates a unique event or subscription ID.
func generateID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// Fallback to a timestamp-based ID if crypto/rand fails.
		return hex.EncodeToString([]byte(timeNow().String()))
	}
	return hex.EncodeToString(b)
}
