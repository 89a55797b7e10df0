package event

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/foyerlabs/menage/internal/event/dispatch"
	"github.com/foyerlabs/menage/internal/event/topic"
)

// Bus is the central event bus interface.
//
// One Bus instance is constructed at process start by the composition root
// and shared by reference across every module that publishes or subscribes.
type Bus interface {
	// Publishing
	Publish(ctx context.Context, name topic.Topic, payload Payload) (int, error)
	PublishEvent(ctx context.Context, evt Event) (int, error)

	// Subscription
	Subscribe(pattern topic.Topic, handler Handler, opts ...SubscriptionOption) (Subscription, error)
	SubscribeFunc(pattern topic.Topic, fn HandlerFunc, opts ...SubscriptionOption) (Subscription, error)
	On(pattern topic.Topic, opts ...SubscriptionOption) func(HandlerFunc) HandlerFunc
	Unsubscribe(pattern topic.Topic, handler Handler) int
	Remove(sub Subscription) error

	// Lifecycle & diagnostics
	Reset()
	Stats() Stats
}

// bus is the default Bus implementation.
type bus struct {
	registry   *Registry
	dispatcher *dispatch.SyncDispatcher
	logger     zerolog.Logger
	config     busConfig

	eventsPublished atomic.Uint64
}

// NewBus creates a new event bus with the given options.
func NewBus(opts ...BusOption) Bus {
	config := defaultBusConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &bus{
		registry: NewRegistry(),
		dispatcher: dispatch.NewSyncDispatcher(
			dispatch.WithLogger(config.logger),
			dispatch.WithSlowWarning(config.slowWarn),
		),
		logger: config.logger,
		config: config,
	}
}

// Publish sends an event with the given name and keyword payload.
//
// Handlers execute synchronously on the caller's goroutine, strictly in
// priority order (registration order among equal priorities), each isolated:
// an error or panic in one handler is logged and the next handler still
// runs. The returned count is the number of handlers that completed
// successfully; zero covers both "no handler matched" and "every handler
// failed", and is a normal outcome, not an error.
//
// Publishing with an empty, malformed, or wildcard-bearing name is a caller
// programming error and fails fast with a non-nil error.
func (b *bus) Publish(ctx context.Context, name topic.Topic, payload Payload) (int, error) {
	return b.PublishEvent(ctx, NewEvent(name, payload, ""))
}

// PublishEvent sends a fully-formed event. Used by Publisher to stamp the
// source module; most callers want Publish.
func (b *bus) PublishEvent(ctx context.Context, evt Event) (int, error) {
	if evt.Name == "" {
		return 0, ErrEmptyEventName
	}
	if !evt.Name.IsValid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidEventName, evt.Name)
	}
	if evt.Name.IsWildcard() {
		return 0, fmt.Errorf("%w: %q", ErrWildcardEventName, evt.Name)
	}

	b.eventsPublished.Add(1)

	// The snapshot is taken under the registry lock and the lock released
	// before any handler runs, so handlers may publish or subscribe
	// re-entrantly. Subscriptions added from here on see the next publish.
	snapshot := b.registry.SnapshotFor(evt.Name)
	if len(snapshot) == 0 {
		return 0, nil
	}

	succeeded := 0
	for _, sub := range snapshot {
		if !sub.ShouldDeliver(evt) {
			continue
		}

		result := b.dispatcher.Dispatch(ctx, evt.Name.String(), evt, handlerAdapter{sub.handler})

		switch {
		case result.Skipped:
			b.logger.Debug().
				Str("event", evt.Name.String()).
				Str("subscription", sub.id).
				Msg("handler skipped, context cancelled")
		case result.Panicked:
			log := b.logger.Error().
				Str("event", evt.Name.String()).
				Str("subscription", sub.id).
				Str("pattern", sub.pattern.String()).
				Interface("panic", result.PanicValue)
			if b.config.panicStacks {
				log = log.Bytes("stack", result.PanicStack)
			}
			log.Msg("event handler panicked")
		case result.Err != nil:
			b.logger.Error().
				Err(result.Err).
				Str("event", evt.Name.String()).
				Str("subscription", sub.id).
				Str("pattern", sub.pattern.String()).
				Msg("event handler failed")
		default:
			succeeded++
		}

		if sub.config.Once && result.IsSuccess() {
			sub.Cancel()
			b.registry.Remove(sub.id)
		}
	}

	return succeeded, nil
}

// Subscribe registers a handler for the given pattern.
// The pattern must be an exact name, a final-segment wildcard ("a.*"), or
// the catch-all "**"; any other wildcard form is rejected.
func (b *bus) Subscribe(pattern topic.Topic, handler Handler, opts ...SubscriptionOption) (Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	if err := topic.ValidatePattern(pattern); err != nil {
		return nil, err
	}

	sub := newSubscription(generateID(), pattern, handler, opts...)
	b.registry.Add(sub)

	b.logger.Debug().
		Str("pattern", pattern.String()).
		Str("subscription", sub.id).
		Str("priority", sub.config.Priority.String()).
		Msg("handler subscribed")

	return sub, nil
}

// SubscribeFunc is a convenience method for subscribing a function handler.
func (b *bus) SubscribeFunc(pattern topic.Topic, fn HandlerFunc, opts ...SubscriptionOption) (Subscription, error) {
	return b.Subscribe(pattern, fn, opts...)
}

// On returns a registration helper that subscribes the handler it is applied
// to and hands the handler back unchanged, so registration composes with
// handler definition:
//
//	invalidate := bus.On("recette.*")(func(ctx context.Context, evt event.Event) error {
//	    cache.Drop(evt.Name)
//	    return nil
//	})
//
// A rejected pattern is logged; the handler is still returned unchanged.
func (b *bus) On(pattern topic.Topic, opts ...SubscriptionOption) func(HandlerFunc) HandlerFunc {
	return func(fn HandlerFunc) HandlerFunc {
		if _, err := b.Subscribe(pattern, fn, opts...); err != nil {
			b.logger.Error().
				Err(err).
				Str("pattern", pattern.String()).
				Msg("registration helper could not subscribe handler")
		}
		return fn
	}
}

// Unsubscribe removes every entry for the given handler under the given
// pattern. Unknown patterns or handlers are a no-op; the call is idempotent.
// Returns the number of entries removed.
func (b *bus) Unsubscribe(pattern topic.Topic, handler Handler) int {
	return b.registry.RemoveHandler(pattern, handler)
}

// Remove cancels and removes a subscription obtained from Subscribe.
func (b *bus) Remove(sub Subscription) error {
	if sub == nil {
		return ErrInvalidSubscription
	}

	sub.Cancel()
	if !b.registry.Remove(sub.ID()) {
		return ErrSubscriptionNotFound
	}
	return nil
}

// Reset clears every subscription. It exists for test isolation and
// controlled process reinitialization; calling it during normal operation
// silently drops all other modules' subscriptions.
func (b *bus) Reset() {
	b.registry.Clear()
}

// Stats returns a diagnostic snapshot of the bus.
func (b *bus) Stats() Stats {
	dispatchStats := b.dispatcher.Stats()

	return Stats{
		Patterns:           b.registry.PerPattern(),
		TotalSubscriptions: b.registry.Count(),
		EventsPublished:    b.eventsPublished.Load(),
		HandlersSucceeded:  dispatchStats.Succeeded,
		HandlerErrors:      dispatchStats.Failed,
		HandlerPanics:      dispatchStats.Panicked,
	}
}

// handlerAdapter bridges the typed Handler to the dispatch package's
// type-erased interface.
type handlerAdapter struct {
	h Handler
}

func (a handlerAdapter) Handle(ctx context.Context, event any) error {
	evt, ok := event.(Event)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}
	return a.h.Handle(ctx, evt)
}
