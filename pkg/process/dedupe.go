package process

import (
	"cmp"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/fuzzymatch/internal/debug"
	"github.com/standardbeagle/fuzzymatch/internal/errors"
	"github.com/standardbeagle/fuzzymatch/pkg/fuzz"
)

// Policy decides which member of a duplicate group is kept.
type Policy int

const (
	// KeepFirst keeps the first item of each group.
	KeepFirst Policy = iota
	// KeepLongest keeps the item with the most characters, the earliest on ties.
	KeepLongest
)

// DefaultDedupeThreshold is the score at which two items are duplicates.
const DefaultDedupeThreshold = 70

// DefaultDedupeScorer is TokenSetRatio with ASCII forcing and full processing.
func DefaultDedupeScorer(a, b string) int {
	return fuzz.TokenSetRatio(a, b, true, true)
}

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case KeepFirst:
		return "first"
	case KeepLongest:
		return "longest"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps a configuration name to a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "first":
		return KeepFirst, nil
	case "longest":
		return KeepLongest, nil
	default:
		return KeepFirst, errors.NewPolicyError(name)
	}
}

// Dedupe removes fuzzy duplicates from items.
//
// Each item is scored against the representatives kept so far; a score
// of at least threshold against any of them makes it a duplicate of the
// first such representative. Under KeepLongest a longer duplicate takes
// over as its group's representative. The result lists the kept items
// in input order. Exact repeats are dropped without scoring. A nil
// scorer uses DefaultDedupeScorer.
func Dedupe(items []string, threshold int, scorer Scorer, policy Policy) []string {
	if scorer == nil {
		scorer = DefaultDedupeScorer
	}

	reps := make([]representative, 0, len(items))
	seen := newFingerprints(len(items))
	dropped := 0

	for idx, item := range items {
		if !seen.add(item) {
			dropped++
			continue
		}

		group := -1
		for i, rep := range reps {
			if scorer(item, rep.item) >= threshold {
				group = i
				break
			}
		}

		if group < 0 {
			reps = append(reps, representative{item: item, index: idx})
			continue
		}

		dropped++
		if policy == KeepLongest && utf8.RuneCountInString(item) > utf8.RuneCountInString(reps[group].item) {
			reps[group] = representative{item: item, index: idx}
		}
	}

	// A replacement carries its own input position
	slices.SortFunc(reps, func(a, b representative) int {
		return cmp.Compare(a.index, b.index)
	})

	kept := make([]string, len(reps))
	for i, rep := range reps {
		kept[i] = rep.item
	}

	debug.LogProcess("dedupe dropped %d of %d items (policy %s)\n", dropped, len(items), policy)
	return kept
}

// representative is the kept member of a duplicate group and its
// position in the input.
type representative struct {
	item  string
	index int
}

// fingerprints is a set of strings keyed by their xxhash digest.
type fingerprints map[uint64][]string

func newFingerprints(size int) fingerprints {
	return make(fingerprints, size)
}

// add records s and reports whether it was new.
func (f fingerprints) add(s string) bool {
	sum := xxhash.Sum64String(s)
	for _, existing := range f[sum] {
		if existing == s {
			return false
		}
	}
	f[sum] = append(f[sum], s)
	return true
}
