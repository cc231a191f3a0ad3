package fuzz

import (
	"github.com/standardbeagle/fuzzymatch/internal/tokens"
	"github.com/standardbeagle/fuzzymatch/pkg/normalize"
)

// TokenSortRatio compares a and b after sorting their words, so word
// order does not matter.
func TokenSortRatio(a, b string, forceASCII, fullProcess bool) int {
	return tokenSort(a, b, forceASCII, fullProcess, Ratio)
}

// PartialTokenSortRatio is TokenSortRatio scored with PartialRatio.
func PartialTokenSortRatio(a, b string, forceASCII, fullProcess bool) int {
	return tokenSort(a, b, forceASCII, fullProcess, PartialRatio)
}

// TokenSetRatio compares the shared words of a and b against each side's
// shared words plus its remainder. Repeated and extra words on one side
// cost little; a side without words scores 0.
func TokenSetRatio(a, b string, forceASCII, fullProcess bool) int {
	return tokenSet(a, b, forceASCII, fullProcess, Ratio)
}

// PartialTokenSetRatio is TokenSetRatio scored with PartialRatio.
func PartialTokenSetRatio(a, b string, forceASCII, fullProcess bool) int {
	return tokenSet(a, b, forceASCII, fullProcess, PartialRatio)
}

// QRatio full-processes both strings and compares them with Ratio. An
// input that processes to nothing scores 0.
func QRatio(a, b string, forceASCII bool) int {
	p1 := normalize.FullProcess(a, forceASCII)
	p2 := normalize.FullProcess(b, forceASCII)
	if p1 == "" || p2 == "" {
		return 0
	}
	return Ratio(p1, p2)
}

// UQRatio is QRatio keeping non-ASCII characters.
func UQRatio(a, b string) int {
	return QRatio(a, b, false)
}

func preprocess(s string, forceASCII, fullProcess bool) string {
	if !fullProcess {
		return s
	}
	return normalize.FullProcess(s, forceASCII)
}

func tokenSort(a, b string, forceASCII, fullProcess bool, score func(a, b string) int) int {
	sa := tokens.SortedJoin(tokens.Tokenize(preprocess(a, forceASCII, fullProcess)))
	sb := tokens.SortedJoin(tokens.Tokenize(preprocess(b, forceASCII, fullProcess)))
	return score(sa, sb)
}

func tokenSet(a, b string, forceASCII, fullProcess bool, score func(a, b string) int) int {
	if a == b {
		return 100
	}

	setA := tokens.NewSet(preprocess(a, forceASCII, fullProcess))
	setB := tokens.NewSet(preprocess(b, forceASCII, fullProcess))
	if setA.Len() == 0 || setB.Len() == 0 {
		return 0
	}

	sect := tokens.SortedJoin(setA.Intersect(setB))
	combinedAB := tokens.Concat(sect, tokens.SortedJoin(setA.Difference(setB)))
	combinedBA := tokens.Concat(sect, tokens.SortedJoin(setB.Difference(setA)))

	return max(
		score(sect, combinedAB),
		score(sect, combinedBA),
		score(combinedAB, combinedBA),
	)
}
