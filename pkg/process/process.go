// Package process selects the best matching candidates from a list of
// choices using a preprocessing hook and a scorer from package fuzz.
package process

import (
	"cmp"
	"slices"

	"github.com/standardbeagle/fuzzymatch/internal/debug"
	"github.com/standardbeagle/fuzzymatch/pkg/fuzz"
	"github.com/standardbeagle/fuzzymatch/pkg/normalize"
)

// Processor prepares a query or choice before scoring. A nil Processor
// leaves strings untouched.
type Processor func(string) string

// Scorer returns the similarity of two processed strings in [0, 100].
type Scorer func(a, b string) int

// Match is a scored choice. Index is the position of Choice in the
// caller's slice.
type Match struct {
	Choice string
	Index  int
	Score  int
}

// DefaultProcessor full-processes without ASCII forcing.
func DefaultProcessor(s string) string {
	return normalize.Default(s)
}

// DefaultScorer is WRatio with ASCII forcing and full processing. It is
// also the scorer used when a nil Scorer is passed.
func DefaultScorer(a, b string) int {
	return fuzz.WRatio(a, b, true, true)
}

func (p Processor) apply(s string) string {
	if p == nil {
		return s
	}
	return p(s)
}

// Score runs the processor over query and every choice and scores each
// pair, keeping input order. The query is processed once. A nil scorer
// uses DefaultScorer.
func Score(query string, choices []string, processor Processor, scorer Scorer) []Match {
	if len(choices) == 0 {
		return nil
	}
	if scorer == nil {
		scorer = DefaultScorer
	}

	processed := ProcessQuery(query, processor)
	matches := make([]Match, len(choices))
	for i, choice := range choices {
		matches[i] = Match{
			Choice: choice,
			Index:  i,
			Score:  scorer(processed, processor.apply(choice)),
		}
	}
	return matches
}

// ProcessQuery applies processor to query and logs when a non-empty
// query is reduced to nothing.
func ProcessQuery(query string, processor Processor) string {
	processed := processor.apply(query)
	if processed == "" && query != "" {
		debug.LogProcess("processor reduced query %q to an empty string\n", query)
	}
	return processed
}

// ExtractWithoutOrder returns every choice scoring at least cutoff, in
// input order.
func ExtractWithoutOrder(query string, choices []string, processor Processor, scorer Scorer, cutoff int) []Match {
	return Filter(Score(query, choices, processor, scorer), cutoff)
}

// ExtractOne returns the best choice. It reports false when choices is
// empty or when no choice scores strictly above cutoff; of equal scores
// the earliest choice wins.
func ExtractOne(query string, choices []string, processor Processor, scorer Scorer, cutoff int) (Match, bool) {
	return Best(Score(query, choices, processor, scorer), cutoff)
}

// Extract returns up to limit choices ordered by descending score. Ties
// keep input order. A limit of zero or less returns nothing.
func Extract(query string, choices []string, processor Processor, scorer Scorer, limit int) []Match {
	if limit <= 0 {
		return []Match{}
	}
	return Top(Score(query, choices, processor, scorer), limit)
}

// ExtractBests is Extract restricted to choices scoring at least cutoff.
func ExtractBests(query string, choices []string, processor Processor, scorer Scorer, cutoff, limit int) []Match {
	if limit <= 0 {
		return []Match{}
	}
	return Top(ExtractWithoutOrder(query, choices, processor, scorer, cutoff), limit)
}

// Filter keeps the matches scoring at least cutoff, preserving order.
func Filter(matches []Match, cutoff int) []Match {
	kept := make([]Match, 0, len(matches))
	for _, m := range matches {
		if m.Score >= cutoff {
			kept = append(kept, m)
		}
	}
	return kept
}

// Best returns the first match with the highest score, provided that
// score is above cutoff.
func Best(matches []Match, cutoff int) (Match, bool) {
	var best Match
	found := false
	for _, m := range matches {
		if m.Score > cutoff && (!found || m.Score > best.Score) {
			best = m
			found = true
		}
	}
	return best, found
}

// Top sorts matches by descending score, stable on ties, and returns at
// most limit of them. The input slice is not modified.
func Top(matches []Match, limit int) []Match {
	if limit <= 0 {
		return []Match{}
	}

	sorted := slices.Clone(matches)
	slices.SortStableFunc(sorted, func(a, b Match) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	if sorted == nil {
		return []Match{}
	}
	return sorted
}
