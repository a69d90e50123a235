// Package heapq provides a generic binary min-heap of (distance, key)
// pairs, used by the dijkstra package. The queue accepts several entries
// for the same key and never updates an entry in place.
package heapq

import "container/heap"

// Item is one (distance, key) pair tracked by the queue.
type Item[K comparable, D Ordered] struct {
	Key      K
	Distance D
}

// Ordered is any type heap entries can be strictly ordered by.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// innerQueue is the container/heap.Interface implementation: a min-heap
// ordered by ascending Distance, ties broken by nothing in particular
// (key order does not matter for correctness).
type innerQueue[K comparable, D Ordered] []Item[K, D]

func (q innerQueue[K, D]) Len() int            { return len(q) }
func (q innerQueue[K, D]) Less(i, j int) bool  { return q[i].Distance < q[j].Distance }
func (q innerQueue[K, D]) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *innerQueue[K, D]) Push(x interface{}) { *q = append(*q, x.(Item[K, D])) }
func (q *innerQueue[K, D]) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}

// Queue is a min-heap of Item, ordered by ascending Distance.
type Queue[K comparable, D Ordered] struct {
	inner innerQueue[K, D]
}

// New returns an empty queue with capacity hint cap.
func New[K comparable, D Ordered](capacity int) *Queue[K, D] {
	return &Queue[K, D]{inner: make(innerQueue[K, D], 0, capacity)}
}

// Len reports the number of entries currently queued, including stale
// duplicates left behind by the lazy-decrease-key pattern.
func (q *Queue[K, D]) Len() int { return q.inner.Len() }

// Push adds key at the given distance.
func (q *Queue[K, D]) Push(key K, distance D) {
	heap.Push(&q.inner, Item[K, D]{Key: key, Distance: distance})
}

// Pop removes and returns the entry with the smallest distance.
func (q *Queue[K, D]) Pop() Item[K, D] {
	return heap.Pop(&q.inner).(Item[K, D])
}
