// Package queue provides the bounded priority queue used to keep the best K
// matches while aggregating worker results.
package queue

import "container/heap"

// Compile time check to ensure PriorityQueue satisfies the heap interface.
var _ heap.Interface = (*PriorityQueue)(nil)

// Item is an entry in the priority queue: a candidate line index and its
// match score.
type Item struct {
	Index int    // Index is the position of the line in the candidate list.
	Score uint16 // Score is the priority of the item in the queue.
}

// PriorityQueue implements heap.Interface as a min-heap over scores, so the
// weakest retained match is always at the top and cheap to evict.
type PriorityQueue struct {
	Items []Item
}

// Len returns the number of elements in the priority queue.
func (pq *PriorityQueue) Len() int { return len(pq.Items) }

// Less reports whether the element with index i should sort before the element with index j.
func (pq *PriorityQueue) Less(i, j int) bool {
	return pq.Items[i].Score < pq.Items[j].Score
}

// Swap swaps the elements with indexes i and j.
func (pq *PriorityQueue) Swap(i, j int) {
	pq.Items[i], pq.Items[j] = pq.Items[j], pq.Items[i]
}

// Push adds x to the priority queue.
func (pq *PriorityQueue) Push(x any) {
	item, _ := x.(Item)
	pq.Items = append(pq.Items, item)
}

// Pop removes and returns the top element from the priority queue.
func (pq *PriorityQueue) Pop() any {
	old := pq.Items
	n := len(old)
	item := old[n-1]
	pq.Items = old[:n-1]
	return item
}

// TopK retains the k highest-scoring items offered to it.
type TopK struct {
	k  int
	pq PriorityQueue
}

// NewTopK creates a TopK bounded at k items. k must be positive.
func NewTopK(k int) *TopK {
	return &TopK{k: k, pq: PriorityQueue{Items: make([]Item, 0, k)}}
}

// Offer considers an item for retention. Items weaker than the current
// k-th best are dropped.
func (t *TopK) Offer(it Item) {
	if t.k <= 0 {
		return
	}
	if t.pq.Len() < t.k {
		heap.Push(&t.pq, it)
		return
	}
	if it.Score > t.pq.Items[0].Score {
		t.pq.Items[0] = it
		heap.Fix(&t.pq, 0)
	}
}

// Len returns the number of retained items.
func (t *TopK) Len() int { return t.pq.Len() }

// Descending drains the queue and returns the retained items best-first.
func (t *TopK) Descending() []Item {
	out := make([]Item, t.pq.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i], _ = heap.Pop(&t.pq).(Item)
	}
	return out
}
