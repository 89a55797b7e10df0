package event

import "errors"

// Sentinel errors for the event bus.
var (
	// ErrEmptyEventName is returned when publishing with an empty name.
	ErrEmptyEventName = errors.New("empty event name")

	// ErrInvalidEventName is returned when publishing with a malformed name
	// (leading, trailing, or doubled separators).
	ErrInvalidEventName = errors.New("invalid event name")

	// ErrWildcardEventName is returned when publishing with a name that
	// contains wildcard tokens. Wildcards belong to subscription patterns
	// only; using one in a publish call is a programming error.
	ErrWildcardEventName = errors.New("event name contains wildcard")

	// ErrNilHandler is returned when a nil handler is subscribed.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrInvalidSubscription is returned when a nil subscription is removed.
	ErrInvalidSubscription = errors.New("invalid subscription")

	// ErrSubscriptionNotFound is returned when removing a subscription that
	// is not registered.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrSubscriberClosed is returned when subscribing through a closed
	// Subscriber.
	ErrSubscriberClosed = errors.New("subscriber is closed")
)
