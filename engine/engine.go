// Package engine distributes candidate scoring across a fixed pool of
// workers and merges their results into one ranked list.
//
// # Concurrency Model
//
// A run spawns a fixed number of workers up front; none are added mid-run.
// Workers repeatedly claim chunks of the candidate list from a shared atomic
// cursor, score every line in the chunk with a private scorer (and therefore
// a private scratch arena), and accumulate matches into a local slice nothing
// else reads until the join. The needle and the line list are immutable for
// the run and read without synchronization.
//
// Chunk claims are totally ordered by the cursor, but chunk completion is
// not: workers finish out of order and the aggregation sort restores
// ranking order afterwards.
package engine

import (
	"context"
	"errors"
	"sort"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/fuzzgo/queue"
	"github.com/hupe1980/fuzzgo/resource"
	"github.com/hupe1980/fuzzgo/score"
)

// ErrInvalidWorkerCount is returned when the worker count is not a positive
// integer. It is surfaced before any matching work starts.
var ErrInvalidWorkerCount = errors.New("engine: worker count must be a positive integer")

// Match pairs a candidate line with its relevance score. Only lines scoring
// above zero are ever materialized.
type Match struct {
	Index int
	Line  []byte
	Score uint16
}

// Params configures a matching run.
type Params struct {
	// Needle is the query, shared read-only by all workers.
	Needle []byte

	// Lines is the full candidate list, immutable for the run.
	Lines [][]byte

	// Workers is the number of parallel workers. Must be >= 1.
	Workers int

	// ChunkSize overrides DefaultChunkSize when positive.
	ChunkSize int

	// Limit caps the number of returned matches when positive.
	Limit int

	// Filter, when non-nil, restricts scoring to the line indices set in it.
	// Interactive callers use this to narrow a follow-up query to the
	// previous result set.
	Filter *bitset.BitSet

	// Resources, when non-nil, bounds the transient scratch memory used for
	// candidates longer than score.MaxScratchCandidate.
	Resources *resource.Controller
}

// Run scores every candidate line against the needle and returns all
// positively-scored lines sorted by descending score. Ties carry no
// specified order.
//
// For a given needle and line set the returned set of (line, score) pairs is
// identical for every worker count; only the order among equal scores may
// vary.
func Run(ctx context.Context, p Params) ([]Match, error) {
	if p.Workers < 1 {
		return nil, ErrInvalidWorkerCount
	}

	d := newDispatcher(len(p.Lines), p.ChunkSize)
	locals := make([][]Match, p.Workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := range locals {
		g.Go(func() error {
			return work(ctx, d, p, &locals[w])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return merge(locals, p.Limit, p.Lines), nil
}

// work is one worker's loop: claim a chunk, score its lines, repeat until
// the dispatcher is exhausted. The scorer (and its arena) lives exactly as
// long as the loop.
func work(ctx context.Context, d *dispatcher, p Params, out *[]Match) error {
	scorer := score.NewScorer(p.Needle, score.WithController(p.Resources))

	var local []Match
	for {
		// A claimed chunk always runs to completion; cancellation is only
		// observed between claims.
		if err := ctx.Err(); err != nil {
			return err
		}

		start, end, ok := d.claim()
		if !ok {
			break
		}

		for i := start; i < end; i++ {
			if p.Filter != nil && !p.Filter.Test(uint(i)) {
				continue
			}
			sc, err := scorer.Score(p.Lines[i])
			if err != nil {
				return err
			}
			if sc > 0 {
				local = append(local, Match{Index: i, Line: p.Lines[i], Score: sc})
			}
		}
	}

	*out = local
	return nil
}

// merge concatenates the per-worker match lists after the join and sorts
// them best-first. With a positive limit the bounded heap keeps only the
// top K instead of sorting everything.
func merge(locals [][]Match, limit int, lines [][]byte) []Match {
	if limit > 0 {
		topk := queue.NewTopK(limit)
		for _, local := range locals {
			for _, m := range local {
				topk.Offer(queue.Item{Index: m.Index, Score: m.Score})
			}
		}
		items := topk.Descending()
		out := make([]Match, len(items))
		for i, it := range items {
			out[i] = Match{Index: it.Index, Line: lines[it.Index], Score: it.Score}
		}
		return out
	}

	total := 0
	for _, local := range locals {
		total += len(local)
	}
	out := make([]Match, 0, total)
	for _, local := range locals {
		out = append(out, local...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
