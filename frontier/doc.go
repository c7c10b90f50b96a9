// Package frontier implements the open set of a best-first search: a binary
// min-heap keyed by each item's priority, with in-place decrease-key.
//
// Unlike the lazy-decrease-key heaps that push duplicates and skip stale
// entries, Queue keeps exactly one entry per item and repositions it when its
// priority drops. Membership is tested by identity, so items are usually
// pointers.
//
// Heap layout:
//
//	parent(i) = (i-1)/2     left(i) = 2i+1     right(i) = 2i+2
//
// Complexity:
//
//   - Insert, PopMin:          O(log n)
//   - Contains, IndexOf:       O(n) (linear identity scan)
//   - DecreaseKey:             O(n) lookup + O(log n) sift-up
//
// Errors:
//
//   - ErrEmpty:    PopMin on an empty queue.
//   - ErrNotFound: DecreaseKey for an item that is not queued.
package frontier
