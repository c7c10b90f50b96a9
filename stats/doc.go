// Package stats turns search results into the per-run performance report:
// heuristic name, path length, nodes put on the frontier and nodes visited.
//
// Reports can be written as a human-readable summary, a comparison table, a
// horizontal bar chart of generated versus visited nodes, or exported as
// JSON or YAML.
package stats
