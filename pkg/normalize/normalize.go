// Package normalize provides the preprocessing hooks applied to strings
// before they are compared.
//
// A Normalizer maps a string to the canonical member of its equivalence
// class: a case-insensitive comparison lowercases, an accent-insensitive
// one decomposes and drops marks, and so on. Normalizers compose, and
// plain functions satisfy the interface through Func.
//
//	n := normalize.Compose(normalize.FormKC, normalize.Lower)
//	n.Normalize("ＡＢＣ") // "abc"
//
// FullProcess is the default preprocessing used by the token ratios and
// by candidate selection.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/standardbeagle/fuzzymatch/internal/tokens"
)

// Normalizer maps a string to its canonical form.
type Normalizer interface {
	Normalize(s string) string
}

// Func adapts a plain function to the Normalizer interface.
type Func func(string) string

// Normalize calls f(s).
func (f Func) Normalize(s string) string {
	return f(s)
}

var (
	// Passthrough returns its input unchanged.
	Passthrough Normalizer = Func(func(s string) string { return s })

	// Lower lowercases every letter.
	Lower Normalizer = Func(strings.ToLower)

	// Trim removes leading and trailing whitespace.
	Trim Normalizer = Func(strings.TrimSpace)

	// ASCIIOnly removes every code point outside 7-bit ASCII.
	ASCIIOnly Normalizer = Func(asciiOnly)

	// SplitAlphanumeric replaces each character that is not a letter,
	// number or underscore with a space.
	SplitAlphanumeric Normalizer = Func(replaceNonAlphanumeric)

	// SortedTokens splits on whitespace, sorts the tokens and rejoins
	// them with single spaces.
	SortedTokens Normalizer = Func(func(s string) string {
		return tokens.SortedJoin(tokens.Tokenize(s))
	})

	// FormC applies Unicode canonical composition (NFC).
	FormC Normalizer = Func(norm.NFC.String)

	// FormKC applies Unicode compatibility composition (NFKC).
	FormKC Normalizer = Func(norm.NFKC.String)

	// FormD applies Unicode canonical decomposition (NFD).
	FormD Normalizer = Func(norm.NFD.String)

	// FormKD applies Unicode compatibility decomposition (NFKD).
	FormKD Normalizer = Func(norm.NFKD.String)

	// UnicodeToASCII decomposes the string and then drops everything
	// outside ASCII, so "ä" and "ä" both become "a".
	UnicodeToASCII Normalizer = Func(func(s string) string {
		return asciiOnly(norm.NFD.String(s))
	})
)

// Compose chains normalizers; they run in argument order.
func Compose(normalizers ...Normalizer) Normalizer {
	return Func(func(s string) string {
		for _, n := range normalizers {
			s = n.Normalize(s)
		}
		return s
	})
}

// FullProcess keeps only letters, numbers and underscores, lowercases
// and trims. With forceASCII, non-ASCII code points are dropped first,
// which happens before punctuation becomes whitespace and so can change
// how words split.
func FullProcess(s string, forceASCII bool) string {
	if forceASCII {
		s = asciiOnly(s)
	}
	return strings.TrimSpace(strings.ToLower(replaceNonAlphanumeric(s)))
}

// Processor returns FullProcess with a fixed forceASCII flag as a Normalizer.
func Processor(forceASCII bool) Normalizer {
	return Func(func(s string) string {
		return FullProcess(s, forceASCII)
	})
}

// Default is FullProcess without ASCII forcing.
func Default(s string) string {
	return FullProcess(s, false)
}

func asciiOnly(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return strings.Map(func(r rune) rune {
				if r >= utf8.RuneSelf {
					return -1
				}
				return r
			}, s)
		}
	}
	return s
}

func replaceNonAlphanumeric(s string) string {
	return strings.Map(func(r rune) rune {
		if isWordRune(r) {
			return r
		}
		return ' '
	}, s)
}

// isWordRune matches alphabetic and numeric characters plus underscore.
// Combining marks only count when Unicode lists them as alphabetic.
func isWordRune(r rune) bool {
	return r == '_' ||
		unicode.IsLetter(r) ||
		unicode.IsNumber(r) ||
		unicode.Is(unicode.Other_Alphabetic, r)
}
