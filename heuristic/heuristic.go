package heuristic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rollingdie/dice"
	"github.com/katalvlaran/rollingdie/grid"
	"github.com/katalvlaran/rollingdie/statespace"
)

// fancyBonus is the credit fancy_manhattan grants to promising orientations.
const fancyBonus = 0.5

// New returns the estimator for kind over board g.
func New(kind Kind, g *grid.Grid) (Func, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	goal := g.Goal()

	switch kind {
	case Manhattan:
		return func(s statespace.State) float64 { return manhattan(s.Cell, goal) }, nil
	case Euclidean:
		return func(s statespace.State) float64 { return euclidean(s.Cell, goal) }, nil
	case Diagonal:
		return func(s statespace.State) float64 { return diagonal(s.Cell, goal) }, nil
	case FancyManhattan:
		return func(s statespace.State) float64 { return fancyManhattan(s, goal) }, nil
	case ForecastManhattan:
		return func(s statespace.State) float64 { return forecastManhattan(g, s) }, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownHeuristic, kind)
	}
}

// absDelta returns |dx| and |dy| between two cells.
func absDelta(a, b grid.Cell) (dx, dy int) {
	dx, dy = a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return dx, dy
}

func manhattan(c, goal grid.Cell) float64 {
	dx, dy := absDelta(c, goal)
	return float64(dx + dy)
}

func euclidean(c, goal grid.Cell) float64 {
	dx, dy := absDelta(c, goal)
	return math.Sqrt(float64(dx*dx + dy*dy))
}

func diagonal(c, goal grid.Cell) float64 {
	dx, dy := absDelta(c, goal)
	lo, hi := dx, dy
	if lo > hi {
		lo, hi = hi, lo
	}

	return float64(lo)*math.Sqrt2 + float64(hi-lo)
}

// fancyManhattan subtracts fancyBonus when rolling straight towards the goal
// (horizontal leg then vertical, or vertical then horizontal, each leg taken
// modulo a full revolution) shows 1 on top. Only evaluated close to a goal
// row or column.
func fancyManhattan(s statespace.State, goal grid.Cell) float64 {
	h := manhattan(s.Cell, goal)
	dx, dy := s.Cell.X-goal.X, s.Cell.Y-goal.Y
	adx, ady := absDelta(s.Cell, goal)
	if adx >= 2 && ady >= 2 {
		return h
	}

	horiz, vert := dice.Right, dice.North
	if dx > 0 {
		horiz = dice.Left
	}
	if dy > 0 {
		vert = dice.South
	}

	var rewardA, rewardB float64
	if s.Dice.RollN(horiz, adx%4).RollN(vert, ady%4).Top == statespace.GoalFace {
		rewardA = -fancyBonus
	}
	if s.Dice.RollN(vert, ady%4).RollN(horiz, adx%4).Top == statespace.GoalFace {
		rewardB = -fancyBonus
	}

	return h + math.Min(rewardA, rewardB)
}

// forecastManhattan adds one when exactly one neighbour avoids the dead face.
func forecastManhattan(g *grid.Grid, s statespace.State) float64 {
	h := manhattan(s.Cell, g.Goal())
	live := 0
	for _, n := range statespace.ValidNeighbors(g, s.Cell, s.Dice) {
		if n.Dice.Top != statespace.DeadFace {
			live++
		}
	}
	if live == 1 {
		return h + 1
	}

	return h
}
