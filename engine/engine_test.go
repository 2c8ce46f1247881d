package engine

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLines(n int) [][]byte {
	lines := make([][]byte, n)
	for i := range lines {
		switch i % 4 {
		case 0:
			lines[i] = fmt.Appendf(nil, "src/module_%d/main.c", i)
		case 1:
			lines[i] = fmt.Appendf(nil, "docs/readme_%d.txt", i)
		case 2:
			lines[i] = fmt.Appendf(nil, "lib/domain_%d/manager.c", i)
		default:
			lines[i] = fmt.Appendf(nil, "assets/logo_%d.svg", i)
		}
	}
	return lines
}

func TestRun_InvalidWorkerCount(t *testing.T) {
	ctx := context.Background()

	for _, workers := range []int{0, -1, -100} {
		_, err := Run(ctx, Params{
			Needle:  []byte("main"),
			Lines:   testLines(10),
			Workers: workers,
		})
		assert.ErrorIs(t, err, ErrInvalidWorkerCount)
	}
}

func TestRun_Ranking(t *testing.T) {
	ctx := context.Background()

	matches, err := Run(ctx, Params{
		Needle:  []byte("main"),
		Lines:   testLines(200),
		Workers: 4,
	})
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	// Descending scores, no zero scores materialized.
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}
	for _, m := range matches {
		assert.NotZero(t, m.Score)
	}
}

func TestRun_WorkerCountEquivalence(t *testing.T) {
	ctx := context.Background()
	lines := testLines(5000)

	type pair struct {
		index int
		score uint16
	}

	collect := func(workers int) []pair {
		matches, err := Run(ctx, Params{
			Needle:  []byte("main"),
			Lines:   lines,
			Workers: workers,
		})
		require.NoError(t, err)

		pairs := make([]pair, len(matches))
		for i, m := range matches {
			pairs[i] = pair{index: m.Index, score: m.Score}
		}
		// Order among equal scores is unspecified; normalize before
		// comparing across worker counts.
		sort.Slice(pairs, func(i, j int) bool {
			if pairs[i].score != pairs[j].score {
				return pairs[i].score > pairs[j].score
			}
			return pairs[i].index < pairs[j].index
		})
		return pairs
	}

	want := collect(1)
	for _, workers := range []int{2, 4, 8} {
		assert.Equal(t, want, collect(workers), "workers=%d", workers)
	}
}

func TestRun_Limit(t *testing.T) {
	ctx := context.Background()
	lines := testLines(1000)

	all, err := Run(ctx, Params{
		Needle:  []byte("main"),
		Lines:   lines,
		Workers: 4,
	})
	require.NoError(t, err)
	require.Greater(t, len(all), 10)

	limited, err := Run(ctx, Params{
		Needle:  []byte("main"),
		Lines:   lines,
		Workers: 4,
		Limit:   10,
	})
	require.NoError(t, err)
	require.Len(t, limited, 10)

	// The limited head carries the same scores as the full ranking.
	for i, m := range limited {
		assert.Equal(t, all[i].Score, m.Score)
	}
}

func TestRun_Filter(t *testing.T) {
	ctx := context.Background()
	lines := testLines(100)

	filter := bitset.New(uint(len(lines)))
	for i := 0; i < len(lines); i += 2 {
		filter.Set(uint(i))
	}

	matches, err := Run(ctx, Params{
		Needle:  []byte("main"),
		Lines:   lines,
		Workers: 4,
		Filter:  filter,
	})
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	for _, m := range matches {
		assert.Zero(t, m.Index%2, "filtered-out line %d in results", m.Index)
	}
}

func TestRun_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Params{
		Needle:  []byte("main"),
		Lines:   testLines(10_000),
		Workers: 4,
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_EmptyInputs(t *testing.T) {
	ctx := context.Background()

	t.Run("no lines", func(t *testing.T) {
		matches, err := Run(ctx, Params{
			Needle:  []byte("main"),
			Workers: 4,
		})
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("empty needle matches nothing", func(t *testing.T) {
		matches, err := Run(ctx, Params{
			Lines:   testLines(100),
			Workers: 4,
		})
		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

func TestRun_SmallChunks(t *testing.T) {
	ctx := context.Background()

	// Chunk size 1 maximizes cursor traffic; results must not change.
	matches, err := Run(ctx, Params{
		Needle:    []byte("main"),
		Lines:     testLines(500),
		Workers:   8,
		ChunkSize: 1,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, matches)
}
