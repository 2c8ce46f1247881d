package engine

import "sync/atomic"

// DefaultChunkSize is the number of candidate lines handed to a worker per
// claim. A larger chunk reduces contention on the cursor at the cost of
// coarser load balancing; this is a throughput trade-off, not a correctness
// concern.
const DefaultChunkSize = 512

// dispatcher partitions the candidate list into fixed-size chunks and hands
// out chunk bounds to workers through an atomically incremented cursor.
//
// The cursor is the only mutable state shared between workers. It is
// monotonic and never reset mid-run; a plain read-then-write would race and
// duplicate or skip chunks, so claims go through a single fetch-and-add.
type dispatcher struct {
	total  int // number of candidate lines
	size   int // lines per chunk
	chunks int64
	next   atomic.Int64
}

func newDispatcher(total, size int) *dispatcher {
	if size < 1 {
		size = DefaultChunkSize
	}
	d := &dispatcher{total: total, size: size}
	d.chunks = int64((total + size - 1) / size)
	return d
}

// claim atomically takes the next unclaimed chunk and returns its line
// bounds. ok is false once all chunks are handed out; cursor values beyond
// the chunk count only ever signal exhaustion. Each chunk is claimed by
// exactly one caller.
func (d *dispatcher) claim() (start, end int, ok bool) {
	c := d.next.Add(1) - 1
	if c >= d.chunks {
		return 0, 0, false
	}
	start = int(c) * d.size
	end = start + d.size
	if end > d.total {
		end = d.total
	}
	return start, end, true
}
