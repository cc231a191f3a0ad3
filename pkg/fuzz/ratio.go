// Package fuzz scores how similar two strings are on a 0 to 100 scale.
//
// Every scorer is built on the matching blocks of internal/matcher: the
// basic Ratio compares whole strings, PartialRatio the best aligned
// window, the token ratios compare reordered or deduplicated words, and
// WRatio picks among them by the length ratio of the inputs. Scores are
// rounded half up. All functions are pure and safe for concurrent use.
package fuzz

import (
	"cmp"
	"slices"

	"github.com/standardbeagle/fuzzymatch/internal/matcher"
	"github.com/standardbeagle/fuzzymatch/pkg/normalize"
	"github.com/standardbeagle/fuzzymatch/pkg/segment"
)

// Ratio returns 2*M/T scaled to 100, where M is the number of matched
// code points and T the combined length of a and b. Two empty strings
// score 100; one empty string scores 0.
func Ratio(a, b string) int {
	if a == b {
		return 100
	}
	return ratioOf([]rune(a), []rune(b))
}

// PartialRatio scores the shorter string against the best aligned window
// of the longer one, so a substring scores 100.
//
// The result depends on argument order when the lengths are equal, since
// a is then taken as the shorter string.
func PartialRatio(a, b string) int {
	if a == b {
		return 100
	}
	return partialRatioOf([]rune(a), []rune(b))
}

// RatioFull is Ratio with an explicit normalizer and segmenter. A nil
// normalizer leaves the strings as given.
//
//	fuzz.RatioFull("Straße", "strasse", normalize.Lower, segment.Graphemes)
func RatioFull[T cmp.Ordered](a, b string, n normalize.Normalizer, seg segment.Segmenter[T]) int {
	if n != nil {
		a, b = n.Normalize(a), n.Normalize(b)
	}
	return ratioOf(seg(a), seg(b))
}

// PartialRatioFull is PartialRatio with an explicit normalizer and segmenter.
func PartialRatioFull[T cmp.Ordered](a, b string, n normalize.Normalizer, seg segment.Segmenter[T]) int {
	if n != nil {
		a, b = n.Normalize(a), n.Normalize(b)
	}
	return partialRatioOf(seg(a), seg(b))
}

// ratioOf orients the pair before matching, shorter first and then by
// element order, so that the score does not depend on argument order.
func ratioOf[T cmp.Ordered](a, b []T) int {
	if slices.Equal(a, b) {
		return 100
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(a) > len(b) || (len(a) == len(b) && slices.Compare(a, b) > 0) {
		a, b = b, a
	}
	matched := matcher.MatchedLength(matcher.New(a, b).MatchingBlocks())
	return scoreOf(matched, len(a)+len(b))
}

func partialRatioOf[T cmp.Ordered](a, b []T) int {
	if slices.Equal(a, b) {
		return 100
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	shorter, longer := a, b
	if len(a) > len(b) {
		shorter, longer = b, a
	}

	best := 0
	for _, blk := range matcher.FindMatchingBlocks(shorter, longer) {
		// The block aligned at the start of the window, then at its end.
		start := max(0, blk.B-blk.A)
		score := windowRatio(shorter, longer, start)
		if alt := max(0, blk.B-blk.A+len(shorter)-len(longer)); alt != start {
			score = max(score, windowRatio(shorter, longer, alt))
		}
		if score == 100 {
			return 100
		}
		best = max(best, score)
	}
	return best
}

// windowRatio scores shorter against the window of longer at start,
// truncated at the end of longer.
func windowRatio[T cmp.Ordered](shorter, longer []T, start int) int {
	end := min(start+len(shorter), len(longer))
	return ratioOf(shorter, longer[start:end])
}

// scoreOf rounds 200*matched/total half up without leaving integers.
func scoreOf(matched, total int) int {
	if total == 0 {
		return 100
	}
	return (400*matched + total) / (2 * total)
}
