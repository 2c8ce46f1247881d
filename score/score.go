// Package score implements the affine-gap local-alignment kernel that rates
// how well a candidate line matches a needle.
//
// The alignment is local: it may start and end anywhere in the candidate, so
// the best matching region wins regardless of surrounding text. Gaps are only
// ever opened in the candidate (skipped candidate bytes); the needle is never
// gapped, because the needle is the set of bytes the user actually typed.
// Matching is case-sensitive and byte-oriented.
package score

import (
	"math"

	"github.com/hupe1980/fuzzgo/internal/arena"
	"github.com/hupe1980/fuzzgo/resource"
)

// Scoring policy. One long gap costs less than several short ones (the open
// cost is paid once, extending is cheap), contiguous matches beat any gapped
// match of equal length, and a single mismatch is recoverable but costly.
const (
	MatchScore       = 12
	MismatchPenalty  = 6
	GapOpenPenalty   = 5
	GapExtendPenalty = 1
)

const (
	// MaxScratchCandidate is the longest candidate scored from a worker's
	// arena. Longer candidates take a transient per-call allocation; this is
	// an expected condition, not an error.
	MaxScratchCandidate = 512

	// MaxScore is the saturation ceiling of the 16-bit score. Additions clamp
	// here instead of wrapping, so needles longer than MaxScore/MatchScore
	// bytes (~5461) stop separating exact matches from near-exact ones.
	MaxScore = math.MaxUint16
)

// Scorer rates candidates against a single needle, backing the two
// dynamic-programming matrices with a private scratch arena that is reset
// between candidates. A Scorer is not safe for concurrent use; every worker
// owns its own.
type Scorer struct {
	needle  []byte
	scratch *arena.Arena
	rc      *resource.Controller
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithController accounts oversized-candidate fallback allocations against
// the given resource controller. A nil controller disables accounting.
func WithController(rc *resource.Controller) Option {
	return func(s *Scorer) {
		s.rc = rc
	}
}

// NewScorer creates a Scorer for the given needle. The scratch arena is sized
// once, for the largest candidate the arena path supports, and never resized.
func NewScorer(needle []byte, optFns ...Option) *Scorer {
	s := &Scorer{needle: needle}
	for _, fn := range optFns {
		if fn != nil {
			fn(s)
		}
	}

	rows := len(needle) + 1
	cols := MaxScratchCandidate + 1
	// Two uint16 matrices plus alignment slack.
	s.scratch = arena.New(2*2*rows*cols + 16)

	return s
}

// Score returns the affine-gap local-alignment score of haystack against the
// needle, or 0 for a non-match. A zero score means "excluded from results".
//
// The only error condition is an exhausted scratch budget on the
// oversized-candidate fallback path; it is fatal for the run rather than a
// per-candidate soft failure.
func (s *Scorer) Score(haystack []byte) (uint16, error) {
	n, m := len(s.needle), len(haystack)
	if n == 0 || m == 0 {
		return 0, nil
	}
	if !IsSubsequence(s.needle, haystack) {
		return 0, nil
	}

	cells := (n + 1) * (m + 1)

	var best, gap []uint16
	if m <= MaxScratchCandidate {
		defer s.scratch.Reset()
		var err error
		if best, err = s.scratch.AllocUint16Slice(cells); err == nil {
			gap, err = s.scratch.AllocUint16Slice(cells)
		}
		if err != nil {
			return 0, err
		}
	} else {
		bytes := int64(2 * 2 * cells)
		if s.rc != nil {
			if !s.rc.TryAcquireScratch(bytes) {
				return 0, resource.ErrScratchBudget
			}
			defer s.rc.ReleaseScratch(bytes)
		}
		best = make([]uint16, cells)
		gap = make([]uint16, cells)
	}

	return align(s.needle, haystack, best, gap), nil
}

// Score is a one-shot convenience for tests and small inputs. Workers should
// hold a Scorer instead so the scratch arena is reused across candidates.
func Score(needle, haystack []byte) uint16 {
	sc, _ := NewScorer(needle).Score(haystack)
	return sc
}

// align fills the two (n+1)x(m+1) matrices row-major and returns the best
// score in the final row.
//
//   - best[i][j]: best score aligning the first i needle bytes with a
//     candidate prefix ending at j, allowed to restart anywhere (row 0 and
//     column 0 stay zero, the local-alignment hallmark).
//   - gap[i][j]: best score with an open gap consuming candidate bytes
//     ending at j, either freshly opened or extended.
func align(needle, haystack []byte, best, gap []uint16) uint16 {
	n, m := len(needle), len(haystack)
	w := m + 1

	for i := 1; i <= n; i++ {
		row := i * w
		prev := row - w
		for j := 1; j <= m; j++ {
			diag := best[prev+j-1]
			if needle[i-1] == haystack[j-1] {
				diag = satAdd(diag, MatchScore)
			} else {
				diag = satSub(diag, MismatchPenalty)
			}

			g := max(
				satSub(best[row+j-1], GapOpenPenalty),
				satSub(gap[row+j-1], GapExtendPenalty),
			)
			gap[row+j] = g
			best[row+j] = max(diag, g)
		}
	}

	// The alignment may end anywhere in the candidate.
	var top uint16
	for j := 0; j <= m; j++ {
		if sc := best[n*w+j]; sc > top {
			top = sc
		}
	}
	return top
}

// satSub is subtraction clamped at zero: scores never go negative.
func satSub(a, b uint16) uint16 {
	if a < b {
		return 0
	}
	return a - b
}

func satAdd(a, b uint16) uint16 {
	if sum := uint32(a) + uint32(b); sum < MaxScore {
		return uint16(sum)
	}
	return MaxScore
}
