// Package topic provides the topic type and pattern matching for the event
// bus.
//
// Topics are dot-separated strings identifying concrete occurrences:
//
//	recette.creee
//	inventaire.article.ajoute
//
// Subscription patterns come in exactly three forms:
//
//	recette.creee    exact match, segment for segment
//	recette.*        "*" replaces the final segment; "recette.*" matches
//	                 "recette.creee" but not "recette.photo.ajoutee"
//	**               catch-all, matches every topic
//
// No other wildcard form is defined. A mid-pattern "*", a "*" embedded in a
// segment, several "*" tokens, or "**" combined with a prefix are rejected by
// ValidatePattern rather than silently mis-matched.
//
// The Matcher stores patterns in a trie keyed by segment, so resolving the
// patterns for a published topic is O(k) in the number of segments.
package topic
