// Package pqueue provides the binary min-heap used as the open set in
// travel pathfinding. There is no decrease-key: callers re-push with a
// better priority and discard stale pops (lazy deletion).
package pqueue

type entry[T any] struct {
	value    T
	priority float64
	seq      uint64
}

// Queue is a min-heap of values ordered by priority. Equal priorities
// pop in insertion order, so pop sequences are fully deterministic for
// a given push sequence.
type Queue[T any] struct {
	entries []entry[T]
	nextSeq uint64
}

// New returns an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Len returns the number of queued entries.
func (q *Queue[T]) Len() int {
	return len(q.entries)
}

// Push adds a value with the given priority.
func (q *Queue[T]) Push(value T, priority float64) {
	q.entries = append(q.entries, entry[T]{value: value, priority: priority, seq: q.nextSeq})
	q.nextSeq++
	q.siftUp(len(q.entries) - 1)
}

// Pop removes and returns the minimum-priority value. The third return
// is false when the queue is empty.
func (q *Queue[T]) Pop() (T, float64, bool) {
	if len(q.entries) == 0 {
		var zero T
		return zero, 0, false
	}
	top := q.entries[0]
	last := len(q.entries) - 1
	q.entries[0] = q.entries[last]
	q.entries = q.entries[:last]
	if len(q.entries) > 0 {
		q.siftDown(0)
	}
	return top.value, top.priority, true
}

func (q *Queue[T]) less(i, j int) bool {
	if q.entries[i].priority != q.entries[j].priority {
		return q.entries[i].priority < q.entries[j].priority
	}
	return q.entries[i].seq < q.entries[j].seq
}

func (q *Queue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			return
		}
		q.entries[i], q.entries[parent] = q.entries[parent], q.entries[i]
		i = parent
	}
}

func (q *Queue[T]) siftDown(i int) {
	n := len(q.entries)
	for {
		smallest := i
		if l := 2*i + 1; l < n && q.less(l, smallest) {
			smallest = l
		}
		if r := 2*i + 2; r < n && q.less(r, smallest) {
			smallest = r
		}
		if smallest == i {
			return
		}
		q.entries[i], q.entries[smallest] = q.entries[smallest], q.entries[i]
		i = smallest
	}
}
