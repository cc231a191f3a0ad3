package normalize

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/surgebase/porter2"

	"github.com/standardbeagle/fuzzymatch/internal/tokens"
)

// DefaultStemMinLength is the shortest token, in characters, the stemmer
// will touch.
const DefaultStemMinLength = 3

// Stemmer reduces each whitespace token to its porter2 stem, so that
// "searching" and "searches" compare equal. Input should already be
// lowercased; run it after FullProcess or Lower.
type Stemmer struct {
	minLength  int
	exclusions map[string]bool // Words to never stem
}

// NewStemmer creates a stemmer. Tokens shorter than minLength and the
// listed exclusions are left alone.
func NewStemmer(minLength int, exclusions ...string) (*Stemmer, error) {
	if minLength < 0 {
		return nil, fmt.Errorf("invalid min length: %d (must be >= 0)", minLength)
	}

	excluded := make(map[string]bool, len(exclusions))
	for _, word := range exclusions {
		excluded[strings.ToLower(word)] = true
	}

	return &Stemmer{
		minLength:  minLength,
		exclusions: excluded,
	}, nil
}

// Stem returns the stem of a single word, or the word itself when it is
// excluded or too short.
func (s *Stemmer) Stem(word string) string {
	if s.exclusions[strings.ToLower(word)] {
		return word
	}
	if utf8.RuneCountInString(word) < s.minLength {
		return word
	}
	return porter2.Stem(word)
}

// Normalize stems every token of str and rejoins them with single spaces.
func (s *Stemmer) Normalize(str string) string {
	toks := tokens.Tokenize(str)
	for i, tok := range toks {
		toks[i] = s.Stem(tok)
	}
	return strings.Join(toks, " ")
}

// IsExcluded checks if a word is in the exclusion list
func (s *Stemmer) IsExcluded(word string) bool {
	return s.exclusions[strings.ToLower(word)]
}
