package astar_test

import (
	"github.com/katalvlaran/rollingdie/dice"
	"github.com/katalvlaran/rollingdie/grid"
	"github.com/katalvlaran/rollingdie/statespace"
)

// legalMoves applies the same pruning rules as statespace.Graph.Expand.
func legalMoves(g *grid.Grid, s statespace.State) []statespace.State {
	var out []statespace.State
	for _, n := range statespace.ValidNeighbors(g, s.Cell, s.Dice) {
		if n.Dice.Top == statespace.DeadFace {
			continue
		}
		if n.Cell == g.Goal() && n.Dice.Top != statespace.GoalFace {
			continue
		}
		out = append(out, n)
	}

	return out
}

func isGoal(g *grid.Grid, s statespace.State) bool {
	return s.Cell == g.Goal() && s.Dice.Top == statespace.GoalFace
}

// bfsDistance returns the fewest rolls from s to the goal, brute force.
func bfsDistance(g *grid.Grid, s statespace.State) (int, bool) {
	dist := map[statespace.State]int{s: 0}
	queue := []statespace.State{s}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		if isGoal(g, cur) {
			return dist[cur], true
		}
		for _, n := range legalMoves(g, cur) {
			if _, seen := dist[n]; !seen {
				dist[n] = dist[cur] + 1
				queue = append(queue, n)
			}
		}
	}

	return 0, false
}

// reachable lists every state reachable from s, s included. Expansion stops
// at the goal state, mirroring the search, which never expands it.
func reachable(g *grid.Grid, s statespace.State) []statespace.State {
	seen := map[statespace.State]bool{s: true}
	queue := []statespace.State{s}
	for qi := 0; qi < len(queue); qi++ {
		if isGoal(g, queue[qi]) {
			continue
		}
		for _, n := range legalMoves(g, queue[qi]) {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}

	return queue
}

func startState(g *grid.Grid) statespace.State {
	return statespace.State{Cell: g.Start(), Dice: dice.Default()}
}
