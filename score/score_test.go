package score

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fuzzgo/resource"
)

func TestScore_Basic(t *testing.T) {
	t.Run("contiguous match", func(t *testing.T) {
		// Three matched bytes, no gaps, no mismatches.
		assert.Equal(t, uint16(3*MatchScore), Score([]byte("foo"), []byte("foobar")))
	})

	t.Run("exact match", func(t *testing.T) {
		assert.Equal(t, uint16(6*MatchScore), Score([]byte("foobar"), []byte("foobar")))
	})

	t.Run("local alignment ignores surrounding text", func(t *testing.T) {
		// The matching region scores the same wherever it sits.
		assert.Equal(t, Score([]byte("foo"), []byte("foobar")), Score([]byte("foo"), []byte("barfoo")))
	})

	t.Run("empty needle", func(t *testing.T) {
		assert.Equal(t, uint16(0), Score(nil, []byte("foobar")))
		assert.Equal(t, uint16(0), Score([]byte(""), []byte("foobar")))
	})

	t.Run("empty haystack", func(t *testing.T) {
		assert.Equal(t, uint16(0), Score([]byte("foo"), nil))
	})

	t.Run("not a subsequence", func(t *testing.T) {
		assert.Equal(t, uint16(0), Score([]byte("xyz"), []byte("foobar")))
		assert.Equal(t, uint16(0), Score([]byte("oof"), []byte("foo")))
	})

	t.Run("case sensitive", func(t *testing.T) {
		assert.Equal(t, uint16(0), Score([]byte("FOO"), []byte("foobar")))
	})
}

func TestScore_GapPolicy(t *testing.T) {
	t.Run("one long gap beats two short gaps", func(t *testing.T) {
		// 4 matches minus one gap of length 2: 48 - (5+1) = 42.
		long := Score([]byte("abcd"), []byte("abc__d"))
		assert.Equal(t, uint16(42), long)

		// Same needle, gap of length 3: 48 - (5+1+1) = 41. Extending an
		// open gap costs one point per byte.
		longer := Score([]byte("abcd"), []byte("abc___d"))
		assert.Equal(t, uint16(41), longer)
		assert.Equal(t, uint16(1), long-longer)
	})

	t.Run("each gap pays the open cost", func(t *testing.T) {
		// f[oo]b[a]r: two gaps opened. 36 - (5+1) - 5 = 25.
		assert.Equal(t, uint16(25), Score([]byte("fbr"), []byte("foobar")))
	})

	t.Run("contiguity beats scattering", func(t *testing.T) {
		compact := Score([]byte("fbar"), []byte("foobar"))
		scattered := Score([]byte("fbr"), []byte("fxbxr"))
		assert.Greater(t, compact, scattered)
	})
}

func TestScore_Ranking(t *testing.T) {
	needle := []byte("main")
	candidates := [][]byte{
		[]byte("main.c"),
		[]byte("src/main.c"),
		[]byte("domain_manager.c"),
		[]byte("readme.txt"),
	}

	scores := make([]uint16, len(candidates))
	for i, c := range candidates {
		scores[i] = Score(needle, c)
	}

	// "main" appears contiguously in all three source files, including
	// inside "domain", so they tie at full match score.
	assert.Equal(t, uint16(4*MatchScore), scores[0])
	assert.Equal(t, scores[0], scores[1])
	assert.Equal(t, scores[0], scores[2])

	// No subsequence, no score.
	assert.Equal(t, uint16(0), scores[3])
}

func TestScorer_Reuse(t *testing.T) {
	s := NewScorer([]byte("foo"))

	// Scoring the same input repeatedly must be stable; the arena is
	// reset (and re-zeroed) between candidates.
	for range 10 {
		sc, err := s.Score([]byte("foobar"))
		require.NoError(t, err)
		assert.Equal(t, uint16(36), sc)

		sc, err = s.Score([]byte("xfxoxox"))
		require.NoError(t, err)
		assert.NotZero(t, sc)
	}
}

func TestScorer_OversizedCandidate(t *testing.T) {
	t.Run("falls back past the arena bound", func(t *testing.T) {
		s := NewScorer([]byte("abc"))

		haystack := append([]byte("abc"), bytes.Repeat([]byte("x"), MaxScratchCandidate+100)...)
		sc, err := s.Score(haystack)
		require.NoError(t, err)

		// The padding adds nothing; the contiguous prefix still wins.
		assert.Equal(t, uint16(3*MatchScore), sc)
	})

	t.Run("exhausted budget aborts", func(t *testing.T) {
		rc := resource.NewController(resource.Config{ScratchLimitBytes: 1})
		s := NewScorer([]byte("abc"), WithController(rc))

		haystack := append([]byte("abc"), bytes.Repeat([]byte("x"), MaxScratchCandidate+100)...)
		sc, err := s.Score(haystack)
		assert.ErrorIs(t, err, resource.ErrScratchBudget)
		assert.Zero(t, sc)

		// Nothing stays reserved after the failed acquire.
		assert.Zero(t, rc.ScratchUsage())
	})

	t.Run("matches the arena path result", func(t *testing.T) {
		s := NewScorer([]byte("abc"))

		small := []byte("azbzc")
		large := append(append([]byte{}, small...), bytes.Repeat([]byte("z"), MaxScratchCandidate)...)

		smallScore, err := s.Score(small)
		require.NoError(t, err)
		largeScore, err := s.Score(large)
		require.NoError(t, err)

		assert.Equal(t, smallScore, largeScore)
	})
}

func TestSaturation(t *testing.T) {
	t.Run("addition clamps at the ceiling", func(t *testing.T) {
		assert.Equal(t, uint16(MaxScore), satAdd(MaxScore-5, MatchScore))
		assert.Equal(t, uint16(MaxScore), satAdd(MaxScore, MatchScore))
		assert.Equal(t, uint16(100+MatchScore), satAdd(100, MatchScore))
	})

	t.Run("subtraction clamps at zero", func(t *testing.T) {
		assert.Equal(t, uint16(0), satSub(3, MismatchPenalty))
		assert.Equal(t, uint16(0), satSub(0, GapOpenPenalty))
		assert.Equal(t, uint16(94), satSub(100, MismatchPenalty))
	})
}
