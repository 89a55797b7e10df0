package topic

import (
	"errors"
	"fmt"
	"strings"
)

// Topic identifies an event using dot notation.
// Examples: "recette.creee", "inventaire.article.ajoute"
type Topic string

// Wildcard constants for subscription patterns.
const (
	// WildcardSegment matches exactly one segment. It is only valid as the
	// final segment of a pattern.
	WildcardSegment = "*"

	// WildcardAll matches every topic. It is only valid as an entire
	// pattern, never combined with a prefix.
	WildcardAll = "**"

	// Separator is the character used to separate topic segments.
	Separator = "."
)

// Pattern validation errors.
var (
	// ErrEmptyPattern is returned for an empty subscription pattern.
	ErrEmptyPattern = errors.New("empty pattern")

	// ErrMalformedTopic is returned for topics with empty segments.
	ErrMalformedTopic = errors.New("malformed topic")

	// ErrUnsupportedWildcard is returned for wildcard forms the matcher does
	// not define: a mid-pattern "*", a "*" embedded inside a segment, or
	// "**" combined with other segments.
	ErrUnsupportedWildcard = errors.New("unsupported wildcard pattern")
)

// String returns the topic as a string.
func (t Topic) String() string {
	return string(t)
}

// Segments returns the topic split by the separator.
func (t Topic) Segments() []string {
	if t == "" {
		return nil
	}
	return strings.Split(string(t), Separator)
}

// SegmentCount returns the number of segments in the topic.
func (t Topic) SegmentCount() int {
	if t == "" {
		return 0
	}
	return strings.Count(string(t), Separator) + 1
}

// IsWildcard returns true if the topic contains a wildcard token in any
// segment. Concrete event names must never be wildcards.
func (t Topic) IsWildcard() bool {
	return strings.Contains(string(t), WildcardSegment)
}

// IsValid returns true if the topic is well formed: non-empty, no leading or
// trailing separator, no empty segments.
func (t Topic) IsValid() bool {
	s := string(t)
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, Separator) || strings.HasSuffix(s, Separator) {
		return false
	}
	return !strings.Contains(s, Separator+Separator)
}

// ValidatePattern checks that a subscription pattern is one of the three
// supported forms:
//
//  1. an exact topic with no wildcard tokens,
//  2. the standalone catch-all "**",
//  3. an exact prefix followed by a final "*" segment ("a.*", "a.b.*",
//     or a bare "*" matching any single-segment topic).
//
// Every other wildcard form is rejected rather than silently mis-matched.
func ValidatePattern(p Topic) error {
	if p == "" {
		return ErrEmptyPattern
	}
	if p == WildcardAll {
		return nil
	}
	if !p.IsValid() {
		return fmt.Errorf("%w: %q", ErrMalformedTopic, p)
	}

	segs := p.Segments()
	for i, seg := range segs {
		switch {
		case seg == WildcardAll:
			return fmt.Errorf("%w: %q (%q must stand alone)", ErrUnsupportedWildcard, p, WildcardAll)
		case seg == WildcardSegment:
			if i != len(segs)-1 {
				return fmt.Errorf("%w: %q (%q is only valid as the final segment)", ErrUnsupportedWildcard, p, WildcardSegment)
			}
		case strings.Contains(seg, WildcardSegment):
			return fmt.Errorf("%w: %q (wildcard embedded in segment %q)", ErrUnsupportedWildcard, p, seg)
		}
	}
	return nil
}

// Matches returns true if the concrete topic t matches the given subscription
// pattern. The pattern must be one of the forms accepted by ValidatePattern;
// unsupported forms never match.
func (t Topic) Matches(pattern Topic) bool {
	if pattern == WildcardAll {
		return t.IsValid() && !t.IsWildcard()
	}
	if ValidatePattern(pattern) != nil {
		return false
	}

	ts := t.Segments()
	ps := pattern.Segments()
	if len(ts) != len(ps) {
		return false
	}
	for i, seg := range ps {
		if seg == WildcardSegment {
			// final position, guaranteed by ValidatePattern
			continue
		}
		if seg != ts[i] {
			return false
		}
	}
	return true
}

// Join joins multiple segments into a topic.
func Join(segments ...string) Topic {
	return Topic(strings.Join(segments, Separator))
}

// Split splits a topic string into segments without creating a Topic first.
func Split(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, Separator)
}
