package matcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) []rune { return []rune(s) }

func TestFindMatchingBlocks(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want []MatchingBlock
	}{
		{
			name: "gap in longer first",
			a:    "abxcd", b: "abcd",
			want: []MatchingBlock{{0, 0, 2}, {3, 2, 2}, {5, 4, 0}},
		},
		{
			name: "gap in longer second",
			a:    "abcd", b: "abxcd",
			want: []MatchingBlock{{0, 0, 2}, {2, 3, 2}, {4, 5, 0}},
		},
		{
			name: "multibyte prefix",
			a:    "chance", b: "スマホでchance",
			want: []MatchingBlock{{0, 4, 6}, {6, 10, 0}},
		},
		{
			name: "prefix",
			a:    "foo bar", b: "foo bar baz",
			want: []MatchingBlock{{0, 0, 7}, {7, 11, 0}},
		},
		{
			name: "nothing in common",
			a:    "abc", b: "xyz",
			want: []MatchingBlock{{3, 3, 0}},
		},
		{
			name: "both empty",
			a:    "", b: "",
			want: []MatchingBlock{{0, 0, 0}},
		},
		{
			name: "one empty",
			a:    "", b: "ab",
			want: []MatchingBlock{{0, 2, 0}},
		},
		{
			name: "offset blocks",
			a:    "qabxcdz", b: "abcd",
			want: []MatchingBlock{{1, 0, 2}, {4, 2, 2}, {7, 4, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindMatchingBlocks(runes(tt.a), runes(tt.b))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindMatchingBlocks_Invariants(t *testing.T) {
	pairs := [][2]string{
		{"fuzzy wuzzy was a bear", "wuzzy fuzzy was a bear"},
		{"new york mets vs chicago cubs", "chicago cubs vs new york mets"},
		{"this is a test", "this is a test!"},
		{"abcabcabc", "cbacbacba"},
	}

	for _, p := range pairs {
		a, b := runes(p[0]), runes(p[1])
		blocks := FindMatchingBlocks(a, b)
		require.NotEmpty(t, blocks)

		last := blocks[len(blocks)-1]
		assert.Equal(t, MatchingBlock{len(a), len(b), 0}, last, "sentinel for %q", p)

		prevA, prevB := 0, 0
		for _, blk := range blocks[:len(blocks)-1] {
			assert.Positive(t, blk.Size)
			assert.GreaterOrEqual(t, blk.A, prevA, "blocks overlap in a for %q", p)
			assert.GreaterOrEqual(t, blk.B, prevB, "blocks overlap in b for %q", p)
			assert.Equal(t, a[blk.A:blk.A+blk.Size], b[blk.B:blk.B+blk.Size])
			prevA, prevB = blk.A+blk.Size, blk.B+blk.Size
		}
	}
}

func TestFindLongestMatch(t *testing.T) {
	tests := []struct {
		a, b string
		want MatchingBlock
	}{
		{"foo bar", "foo bar baz", MatchingBlock{0, 0, 7}},
		// " ba" and "bar" are both length 3; the earliest start in a wins
		{"foo bar", "bar baz", MatchingBlock{3, 3, 3}},
		{"bar baz", "foo bar baz", MatchingBlock{0, 4, 7}},
		// Tie in a broken by the earliest start in b
		{"ab", "xabab", MatchingBlock{0, 1, 2}},
		{"abc", "xyz", MatchingBlock{0, 0, 0}},
	}

	for _, tt := range tests {
		a, b := runes(tt.a), runes(tt.b)
		m := New(a, b)
		got := m.FindLongestMatch(0, len(a), 0, len(b))
		assert.Equal(t, tt.want, got, "%q vs %q", tt.a, tt.b)
	}
}

func TestFindLongestMatch_Bounds(t *testing.T) {
	a, b := runes("abcdef"), runes("abcdef")
	m := New(a, b)

	got := m.FindLongestMatch(2, 4, 0, 6)
	assert.Equal(t, MatchingBlock{2, 2, 2}, got)

	// Empty sub-range returns the lower bounds with size zero
	got = m.FindLongestMatch(3, 3, 1, 6)
	assert.Equal(t, MatchingBlock{3, 1, 0}, got)
}

// junkSequence returns 250 elements where 'x' sits at every 12th position
// and every other position holds a distinct rune.
func junkSequence() []rune {
	b := make([]rune, 250)
	for i := range b {
		if i%12 == 0 {
			b[i] = 'x'
		} else {
			b[i] = rune(0x100 + i)
		}
	}
	return b
}

func TestAutojunk_DropsPopularElement(t *testing.T) {
	b := junkSequence()
	m := New(runes("zx"), b)
	assert.Equal(t, 1, m.PopularCount())

	// 'x' is no longer indexed, so a lone x cannot seed a match
	blocks := FindMatchingBlocks(runes("zx"), b)
	assert.Equal(t, []MatchingBlock{{2, 250, 0}}, blocks)

	// Short sequences are never junked
	blocks = FindMatchingBlocks(runes("zx"), runes("xq"))
	assert.Equal(t, []MatchingBlock{{1, 0, 1}, {2, 2, 0}}, blocks)
}

func TestAutojunk_ExtendsOverPopularNeighbours(t *testing.T) {
	b := junkSequence()
	a := []rune{'x', rune(0x100 + 13), rune(0x100 + 14)}

	blocks := FindMatchingBlocks(a, b)
	assert.Equal(t, []MatchingBlock{{0, 12, 3}, {3, 250, 0}}, blocks)
}

func TestAutojunk_KeepsCoverage(t *testing.T) {
	// 'a' fills almost all of b; dropping it would leave under 90% indexed
	a := runes(strings.Repeat("a", 150) + "b" + strings.Repeat("a", 100))
	b := runes(strings.Repeat("a", 300) + "b")

	m := New(a, b)
	assert.Zero(t, m.PopularCount())

	blocks := FindMatchingBlocks(a, b)
	assert.Equal(t, []MatchingBlock{{0, 150, 151}, {251, 301, 0}}, blocks)
}

func TestMatchedLength(t *testing.T) {
	blocks := FindMatchingBlocks(runes("abxcd"), runes("abcd"))
	assert.Equal(t, 4, MatchedLength(blocks))
	assert.Zero(t, MatchedLength(nil))
}

func TestFindMatchingBlocks_Bytes(t *testing.T) {
	blocks := FindMatchingBlocks([]byte("hello"), []byte("yellow"))
	assert.Equal(t, []MatchingBlock{{1, 1, 4}, {5, 6, 0}}, blocks)
}

func TestFindMatchingBlocks_DoesNotMutateInput(t *testing.T) {
	a, b := runes("fuzzy was a bear"), runes("fuzzy fuzzy was a bear")
	aCopy, bCopy := append([]rune(nil), a...), append([]rune(nil), b...)

	FindMatchingBlocks(a, b)
	assert.Equal(t, aCopy, a)
	assert.Equal(t, bCopy, b)
}

func BenchmarkFindMatchingBlocks(b *testing.B) {
	x := runes(strings.Repeat("the quick brown fox jumps over the lazy dog ", 8))
	y := runes(strings.Repeat("the quick brown cat leaps over the lazy dog ", 8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FindMatchingBlocks(x, y)
	}
}
