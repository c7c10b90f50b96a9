package frontier

import (
	"errors"
	"fmt"
)

// Sentinel errors for precondition violations.
var (
	// ErrEmpty indicates PopMin was called on an empty queue.
	ErrEmpty = errors.New("frontier: queue is empty")
	// ErrNotFound indicates DecreaseKey was called for an item not in the queue.
	ErrNotFound = errors.New("frontier: item not in queue")
)

// Item is anything that can be ordered by a priority. Smaller priorities are
// popped first. Items are compared with ==, so two distinct pointers to equal
// values are different items.
type Item interface {
	comparable
	Priority() float64
}

// Queue is a binary min-heap of items. The zero value is ready to use.
// Queue is not safe for concurrent use.
type Queue[T Item] struct {
	items    []T
	inserted int
	popped   int
}

// New returns an empty queue with room for capacity items.
func New[T Item](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[T]{items: make([]T, 0, capacity)}
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.items) }

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return len(q.items) == 0 }

// Inserted returns how many items were ever inserted.
func (q *Queue[T]) Inserted() int { return q.inserted }

// Popped returns how many items were ever popped.
func (q *Queue[T]) Popped() int { return q.popped }

// Insert appends x and sifts it up to its heap position.
func (q *Queue[T]) Insert(x T) {
	q.items = append(q.items, x)
	q.inserted++
	q.siftUp(len(q.items) - 1)
}

// PopMin removes and returns the item with the smallest priority.
func (q *Queue[T]) PopMin() (T, error) {
	var zero T
	n := len(q.items)
	if n == 0 {
		return zero, ErrEmpty
	}

	top := q.items[0]
	last := q.items[n-1]
	q.items[n-1] = zero
	q.items = q.items[:n-1]
	q.popped++

	if len(q.items) > 0 {
		q.items[0] = last
		q.siftDown(0)
	}

	return top, nil
}

// IndexOf returns the heap index of x, or -1 when x is not queued.
func (q *Queue[T]) IndexOf(x T) int {
	for i, it := range q.items {
		if it == x {
			return i
		}
	}

	return -1
}

// Contains reports whether x is queued.
func (q *Queue[T]) Contains(x T) bool {
	return q.IndexOf(x) >= 0
}

// DecreaseKey restores heap order after x's priority was lowered by the
// caller. Only sift-up is performed; raising a priority is not supported.
func (q *Queue[T]) DecreaseKey(x T) error {
	i := q.IndexOf(x)
	if i < 0 {
		return fmt.Errorf("%w: decrease-key on %d-item queue", ErrNotFound, len(q.items))
	}
	q.siftUp(i)

	return nil
}

// siftUp swaps the item at i with its parent while it is strictly smaller.
func (q *Queue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if q.items[i].Priority() >= q.items[parent].Priority() {
			return
		}
		q.items[i], q.items[parent] = q.items[parent], q.items[i]
		i = parent
	}
}

// siftDown moves the item at i below any smaller child. On ties the parent
// stays, then the left child wins over the right one.
func (q *Queue[T]) siftDown(i int) {
	n := len(q.items)
	for {
		smallest := i
		for _, c := range [2]int{2*i + 1, 2*i + 2} {
			if c < n && q.items[c].Priority() < q.items[smallest].Priority() {
				smallest = c
			}
		}
		if smallest == i {
			return
		}
		q.items[i], q.items[smallest] = q.items[smallest], q.items[i]
		i = smallest
	}
}
