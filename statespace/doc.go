// Package statespace turns a grid and a rolling die into an explicit,
// deduplicated search graph.
//
// A search state is the pair (cell, orientation). Nodes wrap states with the
// bookkeeping a best-first search needs (g, f and a parent handle) and are
// created lazily: the first time a state is generated it is stored in the
// Graph arena, and every later rediscovery returns the same *Node.
//
// Pruning rules applied while expanding:
//
//   - A new state with 6 on top is never materialised (dead orientation).
//   - A new state on the goal cell is materialised only when 1 is on top;
//     any other arrival at the goal cell is dropped.
//
// Parent links are arena indices, so the discovered nodes form a rooted tree
// without back pointers. A Graph belongs to exactly one search run.
package statespace
