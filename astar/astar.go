package astar

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/rollingdie/dice"
	"github.com/katalvlaran/rollingdie/frontier"
	"github.com/katalvlaran/rollingdie/grid"
	"github.com/katalvlaran/rollingdie/heuristic"
	"github.com/katalvlaran/rollingdie/statespace"
)

// Search runs A* over g and returns the cheapest roll sequence that ends on
// the goal cell with 1 on top.
//
// Validation (in order):
//  1. every option value must be valid (ErrOptionViolation),
//  2. g must be non-nil (ErrNilGrid).
//
// An unreachable goal is reported as Result.Found == false with a nil error.
func Search(g *grid.Grid, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate grid
	if g == nil {
		return nil, ErrNilGrid
	}

	h, err := heuristic.New(cfg.Heuristic, g)
	if err != nil {
		return nil, fmt.Errorf("astar: %w", err)
	}

	// 3) Fresh per-run state: a stale cache would corrupt parent chains.
	r := &runner{
		graph:   statespace.NewGraph(g),
		open:    frontier.New[*statespace.Node](g.OpenCells()),
		visited: make(map[*statespace.Node]bool),
		h:       h,
		options: cfg,
	}

	res := &Result{
		RunID:     uuid.New(),
		Heuristic: cfg.Heuristic,
	}
	logger := cfg.Logger.With().Str("run", res.RunID.String()).Str("heuristic", cfg.Heuristic.String()).Logger()
	logger.Debug().
		Stringer("start", g.Start()).
		Stringer("goal", g.Goal()).
		Int("width", g.Width()).
		Int("height", g.Height()).
		Msg("search started")

	// 4) Run main loop
	began := time.Now()
	terminal, err := r.run(g.Start(), g.Goal())
	res.Elapsed = time.Since(began)
	if err != nil {
		return nil, err
	}

	// 5) Collect statistics and the path
	res.Generated = r.open.Inserted()
	res.Popped = r.open.Popped()
	res.Visited = len(r.visited)
	res.States = r.graph.Len()
	if terminal != nil {
		res.Found = true
		res.Terminal = terminal
		res.Path = r.graph.Path(terminal)
		res.Moves = len(res.Path) - 1
	}

	logger.Debug().
		Bool("found", res.Found).
		Int("moves", res.Moves).
		Int("generated", res.Generated).
		Int("visited", res.Visited).
		Dur("elapsed", res.Elapsed).
		Msg("search finished")

	return res, nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	graph   *statespace.Graph                 // node arena, owned by this run
	open    *frontier.Queue[*statespace.Node] // frontier keyed by f
	visited map[*statespace.Node]bool         // closed set
	h       heuristic.Func                    // cost-to-goal estimate
	options Options
}

// run executes the A* loop and returns the terminal node, or nil when the
// frontier drains without reaching the goal.
func (r *runner) run(start, goal grid.Cell) (*statespace.Node, error) {
	root := r.graph.Obtain(statespace.State{Cell: start, Dice: r.options.StartDice})
	root.G = 0
	root.F = r.h(root.State)
	r.open.Insert(root)

	// placeholder for the goal in the default orientation; it only counts as
	// reached once a real expansion rolls onto it
	r.graph.Seed(statespace.State{Cell: goal, Dice: dice.Default()})

	for !r.open.IsEmpty() {
		cur, err := r.open.PopMin()
		if err != nil {
			return nil, fmt.Errorf("astar: %w", err)
		}

		if r.graph.IsGoal(cur.State) {
			r.visited[cur] = true
			r.options.OnGoal(cur)
			return cur, nil
		}

		if r.visited[cur] {
			continue
		}
		r.visited[cur] = true
		r.options.OnExpand(cur)

		if err := r.relax(cur); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// relax generates the successors of cur and either improves their frontier
// entry or inserts them.
func (r *runner) relax(cur *statespace.Node) error {
	for _, child := range r.graph.Expand(cur) {
		if r.visited[child] {
			continue
		}

		g := cur.G + 1
		f := float64(g) + r.h(child.State)

		if r.open.Contains(child) {
			if f >= child.F {
				continue
			}
			child.G, child.F = g, f
			if err := r.graph.SetParent(child, cur); err != nil {
				return fmt.Errorf("astar: %w", err)
			}
			if err := r.open.DecreaseKey(child); err != nil {
				return fmt.Errorf("astar: %w", err)
			}
			continue
		}

		child.G, child.F = g, f
		if err := r.graph.SetParent(child, cur); err != nil {
			return fmt.Errorf("astar: %w", err)
		}
		r.open.Insert(child)
	}

	return nil
}
