package event

import (
	"reflect"
	"sort"
	"sync"

	"github.com/foyerlabs/menage/internal/event/topic"
)

// Registry owns the subscription table: the mapping from pattern to its
// priority-ordered handler entries. It is safe for concurrent use, and the
// lock is never held while a handler executes - SnapshotFor copies under the
// lock so dispatch happens lock-free, which lets handlers subscribe,
// unsubscribe, or publish re-entrantly without deadlocking.
type Registry struct {
	mu      sync.RWMutex
	subs    map[topic.Topic][]*subscription
	byID    map[string]*subscription
	matcher *topic.Matcher
	nextSeq uint64
}

// NewRegistry creates a new subscription registry.
func NewRegistry() *Registry {
	return &Registry{
		subs:    make(map[topic.Topic][]*subscription),
		byID:    make(map[string]*subscription),
		matcher: topic.NewMatcher(),
	}
}

// Add registers a subscription under its pattern. The per-pattern list is
// kept sorted by priority; the registration sequence number preserves
// insertion order among equal priorities. Duplicate pattern+handler pairs
// are allowed and will both be invoked.
func (r *Registry) Add(sub *subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextSeq++
	sub.seq = r.nextSeq

	pattern := sub.pattern
	subs := append(r.subs[pattern], sub)

	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].config.Priority < subs[j].config.Priority
	})

	r.subs[pattern] = subs
	r.byID[sub.id] = sub
	r.matcher.Add(pattern)
}

// Remove removes a subscription by ID.
func (r *Registry) Remove(subID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, exists := r.byID[subID]
	if !exists {
		return false
	}

	r.removeFromPattern(sub.pattern, func(s *subscription) bool {
		return s.id == subID
	})
	delete(r.byID, subID)
	return true
}

// RemoveHandler removes every entry for the given handler under the given
// pattern and cancels them. Handler identity follows function-pointer
// comparison for func handlers, so the same named function or method value
// registered twice is fully removed. Returns the number of entries removed;
// zero when the pattern or handler was never registered.
func (r *Registry) RemoveHandler(pattern topic.Topic, handler Handler) int {
	if handler == nil {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	r.removeFromPattern(pattern, func(s *subscription) bool {
		if !sameHandler(s.handler, handler) {
			return false
		}
		s.Cancel()
		delete(r.byID, s.id)
		removed++
		return true
	})
	return removed
}

// removeFromPattern drops entries matching the predicate from a pattern's
// list and unregisters the pattern when the list empties.
// Callers must hold the write lock.
func (r *Registry) removeFromPattern(pattern topic.Topic, match func(*subscription) bool) {
	subs := r.subs[pattern]
	kept := subs[:0]
	for _, s := range subs {
		if !match(s) {
			kept = append(kept, s)
		}
	}

	if len(kept) == 0 {
		delete(r.subs, pattern)
		r.matcher.Remove(pattern)
		return
	}
	r.subs[pattern] = kept
}

// Get returns a subscription by ID.
func (r *Registry) Get(subID string) (*subscription, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sub, exists := r.byID[subID]
	return sub, exists
}

// SnapshotFor returns the merged, priority-ordered list of active
// subscriptions applicable to the given concrete event name. The snapshot is
// built while holding the lock and used after it is released; handlers
// registered during an in-flight publish are first eligible on the next one.
// Entries are deduplicated by identity across matching patterns.
func (r *Registry) SnapshotFor(eventName topic.Topic) []*subscription {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patterns := r.matcher.Match(eventName)
	if len(patterns) == 0 {
		return nil
	}

	var merged []*subscription
	seen := make(map[*subscription]struct{})
	for _, pattern := range patterns {
		for _, sub := range r.subs[pattern] {
			if !sub.IsActive() {
				continue
			}
			if _, dup := seen[sub]; dup {
				continue
			}
			seen[sub] = struct{}{}
			merged = append(merged, sub)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].config.Priority != merged[j].config.Priority {
			return merged[i].config.Priority < merged[j].config.Priority
		}
		return merged[i].seq < merged[j].seq
	})

	return merged
}

// Count returns the total number of registered subscriptions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID)
}

// CountByPattern returns the number of subscriptions for a pattern.
func (r *Registry) CountByPattern(pattern topic.Topic) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.subs[pattern])
}

// Patterns returns every pattern with at least one subscription.
func (r *Registry) Patterns() []topic.Topic {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.subs) == 0 {
		return nil
	}

	patterns := make([]topic.Topic, 0, len(r.subs))
	for p := range r.subs {
		patterns = append(patterns, p)
	}
	return patterns
}

// PerPattern returns the handler count per registered pattern.
func (r *Registry) PerPattern() map[topic.Topic]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[topic.Topic]int, len(r.subs))
	for p, subs := range r.subs {
		counts[p] = len(subs)
	}
	return counts
}

// Clear removes all subscriptions. Intended for test teardown and controlled
// reinitialization, not request-scoped cleanup.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subs = make(map[topic.Topic][]*subscription)
	r.byID = make(map[string]*subscription)
	r.matcher.Clear()
}

// sameHandler reports whether two handlers are the same callable. Functions
// are compared by code pointer (two closures created from the same function
// literal compare equal); comparable non-func handlers use interface
// equality.
func sameHandler(a, b Handler) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	if va.Kind() == reflect.Func || vb.Kind() == reflect.Func {
		return va.Kind() == vb.Kind() && va.Pointer() == vb.Pointer()
	}

	if va.Type() != vb.Type() || !va.Type().Comparable() {
		return false
	}
	return a == b
}
