package topic

import "sync"

// Matcher indexes subscription patterns in a trie keyed by segment and
// resolves, for a concrete event topic, the set of registered patterns that
// apply to it. It is safe for concurrent use.
type Matcher struct {
	mu   sync.RWMutex
	root *trieNode
}

// trieNode represents a node in the pattern trie.
type trieNode struct {
	children map[string]*trieNode
	patterns []Topic // patterns that terminate at this node
}

func newTrieNode() *trieNode {
	return &trieNode{
		children: make(map[string]*trieNode),
	}
}

// NewMatcher creates a new pattern matcher.
func NewMatcher() *Matcher {
	return &Matcher{
		root: newTrieNode(),
	}
}

// Add adds a pattern to the matcher. The pattern must already have been
// accepted by ValidatePattern; empty patterns are ignored.
func (m *Matcher) Add(pattern Topic) {
	if pattern == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	node := m.root
	for _, seg := range pattern.Segments() {
		if node.children[seg] == nil {
			node.children[seg] = newTrieNode()
		}
		node = node.children[seg]
	}

	for _, p := range node.patterns {
		if p == pattern {
			return
		}
	}
	node.patterns = append(node.patterns, pattern)
}

// Remove removes a pattern from the matcher. Unknown patterns are a no-op.
func (m *Matcher) Remove(pattern Topic) {
	if pattern == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	node := m.root
	for _, seg := range pattern.Segments() {
		if node.children[seg] == nil {
			return
		}
		node = node.children[seg]
	}

	for i, p := range node.patterns {
		if p == pattern {
			node.patterns = append(node.patterns[:i], node.patterns[i+1:]...)
			return
		}
	}
}

// Has returns true if the pattern is registered.
func (m *Matcher) Has(pattern Topic) bool {
	if pattern == "" {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	node := m.root
	for _, seg := range pattern.Segments() {
		if node.children[seg] == nil {
			return false
		}
		node = node.children[seg]
	}

	for _, p := range node.patterns {
		if p == pattern {
			return true
		}
	}
	return false
}

// Match returns every registered pattern that applies to the given concrete
// topic: the exact topic, the catch-all "**", and a pattern replacing the
// final segment with "*". The topic must not itself contain wildcards.
func (m *Matcher) Match(eventTopic Topic) []Topic {
	if eventTopic == "" {
		return nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var matches []Topic

	if all := m.root.children[WildcardAll]; all != nil {
		matches = append(matches, all.patterns...)
	}

	segs := eventTopic.Segments()
	node := m.root
	for i, seg := range segs {
		if i == len(segs)-1 {
			if star := node.children[WildcardSegment]; star != nil {
				matches = append(matches, star.patterns...)
			}
		}
		node = node.children[seg]
		if node == nil {
			return matches
		}
	}

	matches = append(matches, node.patterns...)
	return matches
}

// Patterns returns all registered patterns.
func (m *Matcher) Patterns() []Topic {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var patterns []Topic
	collectPatterns(m.root, &patterns)
	return patterns
}

func collectPatterns(node *trieNode, patterns *[]Topic) {
	*patterns = append(*patterns, node.patterns...)
	for _, child := range node.children {
		collectPatterns(child, patterns)
	}
}

// Count returns the number of registered patterns.
func (m *Matcher) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	countPatterns(m.root, &count)
	return count
}

func countPatterns(node *trieNode, count *int) {
	*count += len(node.patterns)
	for _, child := range node.children {
		countPatterns(child, count)
	}
}

// Clear removes all patterns from the matcher.
func (m *Matcher) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.root = newTrieNode()
}
