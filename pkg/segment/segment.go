// Package segment splits strings into the element sequences the matcher
// compares. Scores depend on the choice: a grapheme cluster built from a
// base letter and a combining mark is one element as a grapheme, two as
// code points, and three or more as bytes.
package segment

import (
	"cmp"

	"github.com/rivo/uniseg"
)

// Segmenter splits a string into ordered, comparable elements.
type Segmenter[T cmp.Ordered] func(string) []T

// CodePoints splits s into Unicode scalar values. Invalid UTF-8 bytes
// become U+FFFD.
func CodePoints(s string) []rune {
	return []rune(s)
}

// Bytes splits s into its raw UTF-8 bytes.
func Bytes(s string) []byte {
	return []byte(s)
}

// Graphemes splits s into extended grapheme clusters.
func Graphemes(s string) []string {
	clusters := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	return clusters
}
