package statespace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rollingdie/dice"
	"github.com/katalvlaran/rollingdie/grid"
)

const (
	// DeadFace is the top face that is pruned from the search.
	DeadFace = 6
	// GoalFace is the top face required on the goal cell.
	GoalFace = 1

	// noParent marks a node without a parent handle.
	noParent = -1
)

// ErrForeignNode indicates a node that does not belong to the graph.
var ErrForeignNode = errors.New("statespace: node belongs to another graph")

// State identifies a search node: a cell and the die orientation on it.
type State struct {
	Cell grid.Cell
	Dice dice.Dice
}

// String formats the state as "(x,y) top/right/north".
func (s State) String() string {
	return fmt.Sprintf("%v %v", s.Cell, s.Dice)
}

// Node is a cached State plus search bookkeeping. G is the number of moves
// from the start (-1 until assigned) and F = G + h (+Inf until assigned).
type Node struct {
	ID    int
	State State
	G     int
	F     float64

	parent int
}

// Priority orders nodes in the frontier by total estimated cost.
func (n *Node) Priority() float64 { return n.F }

// HasParent reports whether a parent handle is set.
func (n *Node) HasParent() bool { return n.parent != noParent }

func (n *Node) String() string {
	return fmt.Sprintf("#%d %v g=%d f=%.2f", n.ID, n.State, n.G, n.F)
}
