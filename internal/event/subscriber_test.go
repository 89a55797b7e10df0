package event

import (
	"context"
	"errors"
	"testing"
)

func TestSubscriber_TracksSubscriptions(t *testing.T) {
	bus := NewBus()
	sub := NewSubscriber(bus)

	sub.SubscribeFunc("recette.creee", func(ctx context.Context, evt Event) error { return nil })
	sub.SubscribeFunc("recette.*", func(ctx context.Context, evt Event) error { return nil })

	if sub.Count() != 2 {
		t.Errorf("expected 2 tracked subscriptions, got %d", sub.Count())
	}
	if bus.Stats().TotalSubscriptions != 2 {
		t.Errorf("expected 2 bus subscriptions, got %d", bus.Stats().TotalSubscriptions)
	}
}

func TestSubscriber_Close(t *testing.T) {
	bus := NewBus()
	sub := NewSubscriber(bus)
	calls := 0

	sub.SubscribeFunc("recette.creee", func(ctx context.Context, evt Event) error {
		calls++
		return nil
	})
	sub.SubscribeFunc("**", func(ctx context.Context, evt Event) error {
		calls++
		return nil
	})

	if err := sub.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if sub.Count() != 0 {
		t.Errorf("expected 0 tracked subscriptions after Close, got %d", sub.Count())
	}

	bus.Publish(context.Background(), "recette.creee", nil)
	if calls != 0 {
		t.Errorf("expected no deliveries after Close, got %d", calls)
	}

	// Closing twice is a no-op.
	if err := sub.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}
}

func TestSubscriber_SubscribeAfterClose(t *testing.T) {
	sub := NewSubscriber(NewBus())
	sub.Close()

	_, err := sub.SubscribeFunc("recette.creee", func(ctx context.Context, evt Event) error { return nil })
	if !errors.Is(err, ErrSubscriberClosed) {
		t.Errorf("expected ErrSubscriberClosed, got %v", err)
	}
}

func TestSubscriber_RejectedPatternNotTracked(t *testing.T) {
	sub := NewSubscriber(NewBus())

	_, err := sub.SubscribeFunc("*.creee", func(ctx context.Context, evt Event) error { return nil })
	if err == nil {
		t.Fatal("expected invalid pattern to be rejected")
	}
	if sub.Count() != 0 {
		t.Errorf("expected rejected subscription not to be tracked, got %d", sub.Count())
	}
}

func TestSubscriber_CloseDoesNotAffectOthers(t *testing.T) {
	bus := NewBus()
	calls := 0

	// A subscription owned by another module survives this subscriber's Close.
	bus.SubscribeFunc("recette.creee", func(ctx context.Context, evt Event) error {
		calls++
		return nil
	})

	mine := NewSubscriber(bus)
	mine.SubscribeFunc("recette.creee", func(ctx context.Context, evt Event) error { return nil })
	mine.Close()

	bus.Publish(context.Background(), "recette.creee", nil)
	if calls != 1 {
		t.Errorf("expected untracked subscription to survive, calls=%d", calls)
	}
}
