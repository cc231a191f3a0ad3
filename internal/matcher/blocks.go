package matcher

import (
	"cmp"
	"slices"

	"github.com/standardbeagle/fuzzymatch/internal/debug"
)

// Autojunk thresholds. An element of b is popular when b is longer than
// autojunkMinLength and the element fills more than popularPercent of it.
const (
	autojunkMinLength = 200
	popularPercent    = 1
	minCoveragePct    = 90
)

// MatchingBlock is a common run: a[A:A+Size] equals b[B:B+Size].
type MatchingBlock struct {
	A    int
	B    int
	Size int
}

// span is a pending search region [alo,ahi) x [blo,bhi)
type span struct {
	alo, ahi int
	blo, bhi int
}

// Matcher finds matching blocks between two sequences. It holds the
// position index of b and is meant for a single comparison.
type Matcher[T comparable] struct {
	a, b      []T
	positions map[T][]int
	popular   int
}

// New builds a matcher for a against b, indexing b.
func New[T comparable](a, b []T) *Matcher[T] {
	m := &Matcher[T]{a: a, b: b}
	m.index()
	return m
}

// index maps every element of b to its ascending positions, then drops
// popular elements while indexed coverage stays at or above 90% of b.
func (m *Matcher[T]) index() {
	m.positions = make(map[T][]int)
	var order []T
	for j, e := range m.b {
		if _, ok := m.positions[e]; !ok {
			order = append(order, e)
		}
		m.positions[e] = append(m.positions[e], j)
	}

	n := len(m.b)
	if n <= autojunkMinLength {
		return
	}

	covered := n
	for _, e := range order {
		count := len(m.positions[e])
		if count*100 <= n*popularPercent {
			continue
		}
		if (covered-count)*100 < n*minCoveragePct {
			continue
		}
		covered -= count
		delete(m.positions, e)
		m.popular++
	}

	if m.popular > 0 {
		debug.LogMatcher("autojunk dropped %d popular elements, coverage %d/%d\n", m.popular, covered, n)
	}
}

// PopularCount reports how many distinct elements autojunk removed from the index.
func (m *Matcher[T]) PopularCount() int {
	return m.popular
}

// FindLongestMatch returns the longest block inside a[alo:ahi] x b[blo:bhi].
//
// Of all maximal blocks it returns the one starting earliest in a, and of
// those the one starting earliest in b. Runs are carried per position of b
// from one element of a to the next. A block found through the index is
// then extended over neighbouring equal elements the index skipped. When
// nothing matches the result is {alo, blo, 0}.
func (m *Matcher[T]) FindLongestMatch(alo, ahi, blo, bhi int) MatchingBlock {
	besti, bestj, bestsize := alo, blo, 0

	runs := make(map[int]int)
	next := make(map[int]int)
	for i := alo; i < ahi; i++ {
		clear(next)
		for _, j := range m.positions[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := runs[j-1] + 1
			next[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		runs, next = next, runs
	}

	for besti > alo && bestj > blo && m.a[besti-1] == m.b[bestj-1] {
		besti--
		bestj--
		bestsize++
	}
	for besti+bestsize < ahi && bestj+bestsize < bhi && m.a[besti+bestsize] == m.b[bestj+bestsize] {
		bestsize++
	}

	return MatchingBlock{A: besti, B: bestj, Size: bestsize}
}

// MatchingBlocks partitions a and b around their longest matches and
// returns the blocks in ascending order, terminated by the sentinel
// {len(a), len(b), 0}. Abutting blocks are reported separately.
func (m *Matcher[T]) MatchingBlocks() []MatchingBlock {
	la, lb := len(m.a), len(m.b)

	var blocks []MatchingBlock
	stack := []span{{alo: 0, ahi: la, blo: 0, bhi: lb}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		blk := m.FindLongestMatch(s.alo, s.ahi, s.blo, s.bhi)
		if blk.Size == 0 {
			continue
		}
		blocks = append(blocks, blk)

		if s.alo < blk.A && s.blo < blk.B {
			stack = append(stack, span{alo: s.alo, ahi: blk.A, blo: s.blo, bhi: blk.B})
		}
		if blk.A+blk.Size < s.ahi && blk.B+blk.Size < s.bhi {
			stack = append(stack, span{alo: blk.A + blk.Size, ahi: s.ahi, blo: blk.B + blk.Size, bhi: s.bhi})
		}
	}

	slices.SortFunc(blocks, func(x, y MatchingBlock) int {
		return cmp.Compare(x.A, y.A)
	})

	return append(blocks, MatchingBlock{A: la, B: lb, Size: 0})
}

// FindMatchingBlocks returns the matching blocks of a and b in (a, b)
// coordinates. The shorter sequence drives the scan; on equal lengths a
// does.
func FindMatchingBlocks[T comparable](a, b []T) []MatchingBlock {
	if len(a) <= len(b) {
		return New(a, b).MatchingBlocks()
	}

	blocks := New(b, a).MatchingBlocks()
	for i, blk := range blocks {
		blocks[i] = MatchingBlock{A: blk.B, B: blk.A, Size: blk.Size}
	}
	return blocks
}

// MatchedLength sums the sizes of all blocks.
func MatchedLength(blocks []MatchingBlock) int {
	total := 0
	for _, blk := range blocks {
		total += blk.Size
	}
	return total
}
