// Package event provides the in-process event bus that decouples the
// application's modules: when a domain fact becomes true (a recipe was
// created, a pantry item ran out), the module that owns the fact publishes an
// event and interested modules react without either side knowing about the
// other.
//
// # Event names and patterns
//
// Events use hierarchical names with dot notation:
//
//	recette.creee              A recipe was created
//	inventaire.article.ajoute  An item was added to the pantry
//	courses.liste.generee      A shopping list was generated
//
// Subscriptions register against a pattern, which is either an exact name, a
// final-segment wildcard, or the catch-all:
//
//	recette.creee   exact match only
//	recette.*       any recette event with exactly two segments
//	**              every event
//
// Those are the only supported forms. Mid-pattern wildcards, wildcards
// embedded inside a segment, and "**" combined with a prefix are rejected at
// Subscribe time. Concrete event names must never contain wildcard tokens;
// publishing one fails fast.
//
// # Dispatch
//
// Publish runs entirely on the caller's goroutine. All matching handlers
// execute sequentially in ascending priority order (registration order among
// equal priorities) before Publish returns. A handler that returns an error
// or panics is logged and isolated; the remaining handlers still run, and
// the publisher only sees the count of handlers that succeeded. There is no
// queue, no worker pool, and no way to cancel a running handler; a handler
// doing slow I/O blocks the publisher for that duration.
//
// # Re-entrancy
//
// The registry lock protects only table mutation and snapshot construction
// and is released before any handler executes, so a handler may safely call
// Subscribe, Unsubscribe, or Publish again, including recursively. A handler
// subscribed during an in-flight publish receives events starting with the
// next publish.
//
// # Usage
//
//	bus := event.NewBus(event.WithLogger(logger))
//
//	_, err := bus.SubscribeFunc("recette.*", func(ctx context.Context, evt event.Event) error {
//	    cache.Invalidate(evt.Name.String())
//	    return nil
//	}, event.WithPriority(event.PriorityHigh))
//
//	n, err := bus.Publish(ctx, "recette.creee", event.Payload{"id": 42})
//
// # Subpackages
//
//   - topic: topic type and trie-based pattern matching
//   - dispatch: synchronous handler execution with panic isolation
package event
