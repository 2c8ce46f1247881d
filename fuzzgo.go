// Package fuzzgo is an embedded fuzzy matcher for candidate lists.
//
// A Matcher holds an immutable list of candidate lines and ranks them
// against a typed needle with an affine-gap local-alignment score: the best
// matching region of a line wins, contiguous matches beat gapped ones, and
// one long gap costs less than several short ones. Scoring fans out over a
// fixed worker pool, so interactive-sized lists rank within a keystroke.
//
// Basic usage:
//
//	m := fuzzgo.New(lines)
//	results, err := m.Match(ctx, []byte("main"))
//
// Or the fluent form:
//
//	results, err := m.Search([]byte("main")).
//	    Workers(8).
//	    Limit(20).
//	    Execute(ctx)
package fuzzgo

import (
	"context"
	"runtime"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// Match pairs a candidate line with its relevance score. Results never
// contain zero-scored lines.
type Match struct {
	// Index is the line's position in the candidate list.
	Index int
	// Line is the matched candidate. It aliases the Matcher's line data.
	Line []byte
	// Score is the alignment score; higher is better.
	Score uint16
}

// Results is a ranked match list, best-first. Ties carry no specified order.
type Results []Match

// Bitmap returns the matched line indices as a compressed bitmap, useful
// for set operations across several queries.
func (r Results) Bitmap() *roaring.Bitmap {
	bm := roaring.New()
	for _, m := range r {
		bm.Add(uint32(m.Index))
	}
	return bm
}

// FilterSet returns the matched line indices as a bitset suitable for
// SearchBuilder.Filter, the building block for narrowing an interactive
// query as the user types.
func (r Results) FilterSet() *bitset.BitSet {
	bs := bitset.New(0)
	for _, m := range r {
		bs.Set(uint(m.Index))
	}
	return bs
}

// Matcher ranks candidate lines against needles. It is safe for concurrent
// use: the line list is immutable after construction and every query runs
// with private state.
type Matcher struct {
	lines [][]byte
	opts  options
}

// New creates a Matcher over the given candidate lines. The Matcher aliases
// the slices; callers must not mutate them afterwards.
func New(lines [][]byte, optFns ...Option) *Matcher {
	return &Matcher{
		lines: lines,
		opts:  applyOptions(optFns),
	}
}

// NewFromStrings creates a Matcher from string candidates.
func NewFromStrings(lines []string, optFns ...Option) *Matcher {
	bs := make([][]byte, len(lines))
	for i, s := range lines {
		bs[i] = []byte(s)
	}
	return New(bs, optFns...)
}

// Len returns the number of candidate lines.
func (m *Matcher) Len() int {
	return len(m.lines)
}

// Match ranks all candidate lines against the needle using the configured
// defaults. Use Search for per-query control.
func (m *Matcher) Match(ctx context.Context, needle []byte) (Results, error) {
	return m.Search(needle).Execute(ctx)
}

// MatchString is Match for a string needle.
func (m *Matcher) MatchString(ctx context.Context, needle string) (Results, error) {
	return m.Match(ctx, []byte(needle))
}

// Run is a one-shot convenience: build a Matcher, run one query, done.
func Run(ctx context.Context, needle []byte, lines [][]byte, optFns ...Option) (Results, error) {
	return New(lines, optFns...).Match(ctx, needle)
}

func defaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}
