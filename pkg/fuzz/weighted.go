package fuzz

import (
	"math"
	"unicode/utf8"
)

const (
	// unbaseScale discounts token ratios against the plain ratio.
	unbaseScale = 0.95

	// Length ratios from which partial scoring takes over.
	partialLengthRatio = 1.5
	longLengthRatio    = 8.0

	partialScale     = 0.9
	longPartialScale = 0.6
)

// WRatio returns the best of several scorers, chosen and weighted by how
// different the string lengths are.
//
// When neither string is at least 1.5 times as long as the other it takes
// the maximum of Ratio and the token ratios scaled by 0.95. Otherwise the
// partial scorers replace them, scaled by 0.9, or by 0.6 once one string
// is more than 8 times as long.
func WRatio(a, b string, forceASCII, fullProcess bool) int {
	if a == b {
		return 100
	}

	p1 := preprocess(a, forceASCII, fullProcess)
	p2 := preprocess(b, forceASCII, fullProcess)
	len1, len2 := utf8.RuneCountInString(p1), utf8.RuneCountInString(p2)
	if len1 == 0 || len2 == 0 {
		return 0
	}

	base := float64(Ratio(p1, p2))
	lengthRatio := float64(max(len1, len2)) / float64(min(len1, len2))

	scale, usePartial := partialWeight(lengthRatio)
	if !usePartial {
		tsort := float64(TokenSortRatio(p1, p2, forceASCII, true)) * unbaseScale
		tset := float64(TokenSetRatio(p1, p2, forceASCII, true)) * unbaseScale
		return roundHalfUp(max(base, tsort, tset))
	}

	partial := float64(PartialRatio(p1, p2)) * scale
	ptsort := float64(PartialTokenSortRatio(p1, p2, forceASCII, true)) * unbaseScale * scale
	ptset := float64(PartialTokenSetRatio(p1, p2, forceASCII, true)) * unbaseScale * scale
	return roundHalfUp(max(base, partial, ptsort, ptset))
}

// UWRatio is WRatio keeping non-ASCII characters.
func UWRatio(a, b string, fullProcess bool) int {
	return WRatio(a, b, false, fullProcess)
}

// partialWeight maps a length ratio to the partial scale, reporting
// false when partial scoring does not apply.
func partialWeight(lengthRatio float64) (float64, bool) {
	switch {
	case lengthRatio < partialLengthRatio:
		return 1, false
	case lengthRatio > longLengthRatio:
		return longPartialScale, true
	default:
		return partialScale, true
	}
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
