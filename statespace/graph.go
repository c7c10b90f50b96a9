package statespace

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rollingdie/dice"
	"github.com/katalvlaran/rollingdie/grid"
)

// Graph is the per-run arena of discovered nodes, keyed by State.
type Graph struct {
	grid  *grid.Grid
	nodes []*Node
	index map[State]int
}

// NewGraph returns an empty arena over g.
func NewGraph(g *grid.Grid) *Graph {
	return &Graph{
		grid:  g,
		index: make(map[State]int),
	}
}

// Len returns the number of materialised nodes.
func (gr *Graph) Len() int { return len(gr.nodes) }

// Lookup returns the cached node for s, if any.
func (gr *Graph) Lookup(s State) (*Node, bool) {
	i, ok := gr.index[s]
	if !ok {
		return nil, false
	}

	return gr.nodes[i], true
}

// Obtain returns the cached node for s, creating it when s is new.
// New nodes have no parent and unassigned costs.
func (gr *Graph) Obtain(s State) *Node {
	if n, ok := gr.Lookup(s); ok {
		return n
	}
	n := &Node{
		ID:     len(gr.nodes),
		State:  s,
		G:      -1,
		F:      math.Inf(1),
		parent: noParent,
	}
	gr.nodes = append(gr.nodes, n)
	gr.index[s] = n.ID

	return n
}

// Seed inserts a placeholder for s without marking it as reached. A seeded
// goal-cell node adopts the first node that expands into it as its parent.
func (gr *Graph) Seed(s State) *Node {
	return gr.Obtain(s)
}

// Parent returns the parent of n, if one is set.
func (gr *Graph) Parent(n *Node) (*Node, bool) {
	if n == nil || n.parent == noParent {
		return nil, false
	}

	return gr.nodes[n.parent], true
}

// SetParent links n to p. A nil p clears the link.
func (gr *Graph) SetParent(n, p *Node) error {
	if !gr.owns(n) {
		return fmt.Errorf("%w: %v", ErrForeignNode, n)
	}
	if p == nil {
		n.parent = noParent
		return nil
	}
	if !gr.owns(p) {
		return fmt.Errorf("%w: %v", ErrForeignNode, p)
	}
	n.parent = p.ID

	return nil
}

// Path walks parent links from n back to the root and returns the states
// root first. A nil n has no path.
func (gr *Graph) Path(n *Node) []State {
	if n == nil {
		return nil
	}
	var rev []State
	for cur := n; cur != nil; {
		rev = append(rev, cur.State)
		cur, _ = gr.Parent(cur)
	}
	path := make([]State, len(rev))
	for i, s := range rev {
		path[len(rev)-1-i] = s
	}

	return path
}

// IsGoal reports whether s is the goal cell with 1 on top.
func (gr *Graph) IsGoal(s State) bool {
	return s.Cell == gr.grid.Goal() && s.Dice.Top == GoalFace
}

// Expand returns the successor nodes of n. Previously discovered states are
// returned as the cached node; new states are materialised unless they show
// the dead face or land on the goal cell with anything but 1 on top.
func (gr *Graph) Expand(n *Node) []*Node {
	goal := gr.grid.Goal()
	neighbors := ValidNeighbors(gr.grid, n.State.Cell, n.State.Dice)
	successors := make([]*Node, 0, len(neighbors))

	for _, s := range neighbors {
		if cached, ok := gr.Lookup(s); ok {
			// seeded goal placeholder: first real arrival becomes its parent
			if s.Cell == goal && !cached.HasParent() && cached != n {
				cached.parent = n.ID
			}
			successors = append(successors, cached)
			continue
		}
		if s.Dice.Top == DeadFace {
			continue
		}
		if s.Cell == goal && s.Dice.Top != GoalFace {
			continue
		}
		successors = append(successors, gr.Obtain(s))
	}

	return successors
}

// owns reports whether n was materialised by gr.
func (gr *Graph) owns(n *Node) bool {
	return n != nil && n.ID >= 0 && n.ID < len(gr.nodes) && gr.nodes[n.ID] == n
}

// ValidNeighbors lists the states reachable from (c, d) with one roll, in
// the order left, right, south, north. Off-board and obstacle cells are
// skipped; d itself is never modified.
func ValidNeighbors(g *grid.Grid, c grid.Cell, d dice.Dice) []State {
	out := make([]State, 0, 4)
	for _, dir := range dice.Directions() {
		next := c.Add(dir.Offset())
		if !g.Open(next) {
			continue
		}
		out = append(out, State{Cell: next, Dice: d.Roll(dir)})
	}

	return out
}
