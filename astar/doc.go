// Package astar finds the cheapest sequence of rolls that brings a die from
// the start cell to the goal cell of a grid with 1 facing up.
//
// The search space is (cell, orientation), materialised lazily by a
// statespace.Graph that is created fresh for every call. Every roll costs 1,
// so g is always the path length; f = g + h may be fractional.
//
// Algorithm:
//
//  1. Obtain the start node, set g = 0, f = h(start) and insert it.
//  2. Pop the node with the smallest f. If it is the goal cell with 1 on top,
//     mark it visited and stop.
//  3. Skip nodes that were already expanded.
//  4. Otherwise mark the node visited and expand it. Unvisited successors
//     already in the frontier are relaxed in place (decrease-key) when the
//     new f is strictly smaller; new successors get g, f, a parent and are
//     inserted.
//  5. An empty frontier means the goal is unreachable with 1 on top. That is
//     a normal outcome (Result.Found == false), not an error.
//
// Complexity:
//
//   - States: at most W×H×24, fewer after dead-face pruning.
//   - Time: O(S·n) because frontier membership is a linear scan, where S is
//     the number of states and n the frontier size.
//
// Errors (sentinel):
//
//   - ErrNilGrid          if the grid pointer is nil.
//   - ErrOptionViolation  if an option carries an invalid value.
package astar
