package tokens

import (
	"slices"
	"strings"
)

// Tokenize splits s on runs of whitespace and returns the tokens in order.
// Whitespace-only input yields an empty slice.
func Tokenize(s string) []string {
	return strings.Fields(s)
}

// Set is a deduplicated token collection. It keeps first-occurrence
// order, but set operations treat it as unordered.
type Set struct {
	order   []string
	members map[string]struct{}
}

// NewSet tokenizes s and removes duplicate tokens.
func NewSet(s string) Set {
	return SetOf(Tokenize(s))
}

// SetOf builds a Set from already split tokens.
func SetOf(tokens []string) Set {
	set := Set{
		order:   make([]string, 0, len(tokens)),
		members: make(map[string]struct{}, len(tokens)),
	}
	for _, tok := range tokens {
		if _, ok := set.members[tok]; ok {
			continue
		}
		set.members[tok] = struct{}{}
		set.order = append(set.order, tok)
	}
	return set
}

// Len returns the number of distinct tokens.
func (s Set) Len() int {
	return len(s.order)
}

// Contains reports whether tok is a member.
func (s Set) Contains(tok string) bool {
	_, ok := s.members[tok]
	return ok
}

// Tokens returns the members in first-occurrence order.
func (s Set) Tokens() []string {
	return slices.Clone(s.order)
}

// Intersect returns the tokens present in both sets.
func (s Set) Intersect(other Set) []string {
	out := make([]string, 0, min(s.Len(), other.Len()))
	for _, tok := range s.order {
		if other.Contains(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// Difference returns the tokens of s missing from other.
func (s Set) Difference(other Set) []string {
	out := make([]string, 0, s.Len())
	for _, tok := range s.order {
		if !other.Contains(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// SortedJoin sorts a copy of toks lexicographically and joins it with
// single spaces.
func SortedJoin(toks []string) string {
	sorted := slices.Clone(toks)
	slices.Sort(sorted)
	return strings.Join(sorted, " ")
}

// Concat joins two already rendered token strings with a single space,
// omitting the separator when either side is empty.
func Concat(head, tail string) string {
	switch {
	case head == "":
		return tail
	case tail == "":
		return head
	default:
		return head + " " + tail
	}
}
