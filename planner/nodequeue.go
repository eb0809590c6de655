package planner

// pqEntry is one slot of a nodeQueue: an item with its priority key and its
// push-order sequence number, the latter breaking ties by insertion order
// as §4.6/§4.9 require.
type pqEntry[T any] struct {
	item T
	key  float64
	seq  int
}

func (e pqEntry[T]) less(o pqEntry[T]) bool {
	if e.key != o.key {
		return e.key < o.key
	}
	return e.seq < o.seq
}

// nodeQueue is a binary min-heap ordered by (key, insertion order),
// adapted from the teacher's dtNodeQueue bubble-up/trickle-down shape
// (detour/nodequeue.go) into a generic slice-backed heap.
type nodeQueue[T any] struct {
	heap []pqEntry[T]
	next int
}

func newNodeQueue[T any]() *nodeQueue[T] {
	return &nodeQueue[T]{}
}

func (q *nodeQueue[T]) empty() bool { return len(q.heap) == 0 }

func (q *nodeQueue[T]) push(item T, key float64) {
	q.heap = append(q.heap, pqEntry[T]{item: item, key: key, seq: q.next})
	q.next++
	q.bubbleUp(len(q.heap) - 1)
}

func (q *nodeQueue[T]) pop() T {
	top := q.heap[0].item
	last := len(q.heap) - 1
	q.heap[0] = q.heap[last]
	q.heap = q.heap[:last]
	if len(q.heap) > 0 {
		q.trickleDown(0)
	}
	return top
}

func (q *nodeQueue[T]) bubbleUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.heap[i].less(q.heap[parent]) {
			break
		}
		q.heap[parent], q.heap[i] = q.heap[i], q.heap[parent]
		i = parent
	}
}

func (q *nodeQueue[T]) trickleDown(i int) {
	n := len(q.heap)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && q.heap[left].less(q.heap[smallest]) {
			smallest = left
		}
		if right < n && q.heap[right].less(q.heap[smallest]) {
			smallest = right
		}
		if smallest == i {
			break
		}
		q.heap[i], q.heap[smallest] = q.heap[smallest], q.heap[i]
		i = smallest
	}
}
