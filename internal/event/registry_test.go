package event

import (
	"context"
	"sync"
	"testing"
)

func nopHandler() HandlerFunc {
	return func(ctx context.Context, evt Event) error { return nil }
}

func TestRegistry_Add(t *testing.T) {
	r := NewRegistry()

	sub := newSubscription("s1", "recette.creee", nopHandler())
	r.Add(sub)

	if r.Count() != 1 {
		t.Errorf("expected count 1, got %d", r.Count())
	}
	if r.CountByPattern("recette.creee") != 1 {
		t.Errorf("expected 1 subscription for pattern, got %d", r.CountByPattern("recette.creee"))
	}
	if got, ok := r.Get("s1"); !ok || got != sub {
		t.Error("expected Get to return the registered subscription")
	}
}

func TestRegistry_Add_PriorityOrder(t *testing.T) {
	r := NewRegistry()

	low := newSubscription("low", "recette.creee", nopHandler(), WithPriority(PriorityLow))
	crit := newSubscription("crit", "recette.creee", nopHandler(), WithPriority(PriorityCritical))
	norm := newSubscription("norm", "recette.creee", nopHandler(), WithPriority(PriorityNormal))

	r.Add(low)
	r.Add(crit)
	r.Add(norm)

	snapshot := r.SnapshotFor("recette.creee")
	if len(snapshot) != 3 {
		t.Fatalf("expected 3 subscriptions, got %d", len(snapshot))
	}
	want := []string{"crit", "norm", "low"}
	for i, id := range want {
		if snapshot[i].id != id {
			t.Errorf("position %d: expected %s, got %s", i, id, snapshot[i].id)
		}
	}
}

func TestRegistry_Add_EqualPriorityKeepsRegistrationOrder(t *testing.T) {
	r := NewRegistry()

	for _, id := range []string{"a", "b", "c", "d"} {
		r.Add(newSubscription(id, "recette.creee", nopHandler()))
	}

	snapshot := r.SnapshotFor("recette.creee")
	for i, id := range []string{"a", "b", "c", "d"} {
		if snapshot[i].id != id {
			t.Errorf("position %d: expected %s, got %s", i, id, snapshot[i].id)
		}
	}
}

func TestRegistry_Add_DuplicateHandlerAllowed(t *testing.T) {
	r := NewRegistry()
	h := nopHandler()

	r.Add(newSubscription("s1", "recette.creee", h))
	r.Add(newSubscription("s2", "recette.creee", h))

	if got := len(r.SnapshotFor("recette.creee")); got != 2 {
		t.Errorf("expected duplicate registration to yield 2 entries, got %d", got)
	}
}

func TestRegistry_Remove(t *testing.T) {
	r := NewRegistry()
	r.Add(newSubscription("s1", "recette.creee", nopHandler()))

	if !r.Remove("s1") {
		t.Error("expected Remove to return true")
	}
	if r.Remove("s1") {
		t.Error("expected second Remove to return false")
	}
	if r.Count() != 0 {
		t.Errorf("expected count 0, got %d", r.Count())
	}
	// Pattern cleanup: the matcher should no longer resolve it.
	if got := r.SnapshotFor("recette.creee"); got != nil {
		t.Errorf("expected no snapshot after removal, got %v", got)
	}
}

func TestRegistry_RemoveHandler(t *testing.T) {
	r := NewRegistry()
	h := nopHandler()
	other := nopHandler()

	r.Add(newSubscription("s1", "recette.creee", h))
	r.Add(newSubscription("s2", "recette.creee", h))
	r.Add(newSubscription("s3", "recette.creee", other))

	removed := r.RemoveHandler("recette.creee", h)
	if removed != 2 {
		t.Errorf("expected 2 entries removed, got %d", removed)
	}

	snapshot := r.SnapshotFor("recette.creee")
	if len(snapshot) != 1 || snapshot[0].id != "s3" {
		t.Errorf("expected only s3 to remain, got %v", snapshot)
	}
}

func TestRegistry_RemoveHandler_Unknown(t *testing.T) {
	r := NewRegistry()
	r.Add(newSubscription("s1", "recette.creee", nopHandler()))

	if n := r.RemoveHandler("recette.creee", nopHandler()); n != 0 {
		t.Errorf("expected 0 removed for unregistered handler, got %d", n)
	}
	if n := r.RemoveHandler("jamais.vue", nopHandler()); n != 0 {
		t.Errorf("expected 0 removed for unknown pattern, got %d", n)
	}
	if n := r.RemoveHandler("recette.creee", nil); n != 0 {
		t.Errorf("expected 0 removed for nil handler, got %d", n)
	}
}

func TestRegistry_SnapshotFor_MergesPatterns(t *testing.T) {
	r := NewRegistry()

	r.Add(newSubscription("exact", "recette.creee", nopHandler(), WithPriority(PriorityNormal)))
	r.Add(newSubscription("wild", "recette.*", nopHandler(), WithPriority(PriorityCritical)))
	r.Add(newSubscription("all", "**", nopHandler(), WithPriority(PriorityLow)))
	r.Add(newSubscription("unrelated", "inventaire.*", nopHandler()))

	snapshot := r.SnapshotFor("recette.creee")
	if len(snapshot) != 3 {
		t.Fatalf("expected 3 subscriptions, got %d", len(snapshot))
	}
	// Priority order across patterns.
	want := []string{"wild", "exact", "all"}
	for i, id := range want {
		if snapshot[i].id != id {
			t.Errorf("position %d: expected %s, got %s", i, id, snapshot[i].id)
		}
	}
}

func TestRegistry_SnapshotFor_SkipsCancelled(t *testing.T) {
	r := NewRegistry()

	active := newSubscription("active", "recette.creee", nopHandler())
	dead := newSubscription("dead", "recette.creee", nopHandler())
	dead.Cancel()

	r.Add(active)
	r.Add(dead)

	snapshot := r.SnapshotFor("recette.creee")
	if len(snapshot) != 1 || snapshot[0].id != "active" {
		t.Errorf("expected only the active subscription, got %v", snapshot)
	}
}

func TestRegistry_Patterns(t *testing.T) {
	r := NewRegistry()
	r.Add(newSubscription("s1", "recette.creee", nopHandler()))
	r.Add(newSubscription("s2", "recette.*", nopHandler()))

	patterns := r.Patterns()
	if len(patterns) != 2 {
		t.Errorf("expected 2 patterns, got %v", patterns)
	}

	counts := r.PerPattern()
	if counts["recette.creee"] != 1 || counts["recette.*"] != 1 {
		t.Errorf("unexpected per-pattern counts: %v", counts)
	}
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry()
	r.Add(newSubscription("s1", "recette.creee", nopHandler()))
	r.Add(newSubscription("s2", "**", nopHandler()))

	r.Clear()

	if r.Count() != 0 {
		t.Errorf("expected count 0 after Clear, got %d", r.Count())
	}
	if got := r.SnapshotFor("recette.creee"); got != nil {
		t.Errorf("expected empty snapshot after Clear, got %v", got)
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			sub := newSubscription(generateID(), "recette.*", nopHandler())
			r.Add(sub)
			if n%2 == 0 {
				r.Remove(sub.id)
			}
		}(i)
		go func() {
			defer wg.Done()
			_ = r.SnapshotFor("recette.creee")
			_ = r.Count()
			_ = r.PerPattern()
		}()
	}
	wg.Wait()

	if r.Count() != 10 {
		t.Errorf("expected 10 remaining subscriptions, got %d", r.Count())
	}
}

func TestSameHandler(t *testing.T) {
	fn := nopHandler()
	other := nopHandler()

	if !sameHandler(fn, fn) {
		t.Error("expected a func handler to equal itself")
	}
	if sameHandler(fn, other) {
		t.Error("expected distinct func handlers to differ")
	}
	if !sameHandler(nil, nil) {
		t.Error("expected nil handlers to be equal")
	}
	if sameHandler(fn, nil) {
		t.Error("expected func handler to differ from nil")
	}
}

// Named struct handler to exercise interface-equality comparison.
type countingHandler struct{ name string }

func (h *countingHandler) Handle(ctx context.Context, evt Event) error { return nil }

func TestSameHandler_StructHandlers(t *testing.T) {
	a := &countingHandler{name: "a"}
	b := &countingHandler{name: "b"}

	if !sameHandler(a, a) {
		t.Error("expected pointer handler to equal itself")
	}
	if sameHandler(a, b) {
		t.Error("expected distinct pointer handlers to differ")
	}
	var fn Handler = nopHandler()
	if sameHandler(a, fn) {
		t.Error("expected struct handler to differ from func handler")
	}
}
