package grid

import (
	"fmt"
	"unicode/utf8"
)

// Parse builds a Grid from layout rows, northernmost row first.
// It validates the whole layout before returning, so no search ever runs on
// a truncated or guessed board.
// Complexity: O(W×H).
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h := len(rows)
	w := utf8.RuneCountInString(rows[0])
	for i, row := range rows {
		if n := utf8.RuneCountInString(row); n != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, n, w)
		}
	}

	g := &Grid{
		width:     w,
		height:    h,
		symbols:   make([][]rune, w),
		obstacles: make([][]bool, w),
	}
	for x := 0; x < w; x++ {
		g.symbols[x] = make([]rune, h)
		g.obstacles[x] = make([]bool, h)
	}

	var starts, goals int
	for i, row := range rows {
		y := h - 1 - i // layout row 0 is the top (north) edge
		x := 0
		for _, r := range row {
			g.symbols[x][y] = r
			switch r {
			case ObstacleSymbol:
				g.obstacles[x][y] = true
			case StartSymbol:
				g.start = Cell{X: x, Y: y}
				starts++
			case GoalSymbol:
				g.goal = Cell{X: x, Y: y}
				goals++
			}
			x++
		}
	}

	switch {
	case starts == 0:
		return nil, ErrMissingStart
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrDuplicateStart, starts)
	case goals == 0:
		return nil, ErrMissingGoal
	case goals > 1:
		return nil, fmt.Errorf("%w: found %d", ErrDuplicateGoal, goals)
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the start cell.
func (g *Grid) Start() Cell { return g.start }

// Goal returns the goal cell.
func (g *Grid) Goal() Cell { return g.goal }

// InBounds reports whether c lies on the board.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// IsObstacle reports whether c is blocked. Callers are expected to
// bounds-check first; an out-of-range cell returns ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) IsObstacle(c Cell) (bool, error) {
	if !g.InBounds(c) {
		return false, fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, c, g.width, g.height)
	}

	return g.obstacles[c.X][c.Y], nil
}

// Open reports whether a die may stand on c: inside the board and not an
// obstacle.
func (g *Grid) Open(c Cell) bool {
	return g.InBounds(c) && !g.obstacles[c.X][c.Y]
}

// Symbol returns the layout character at c, or ErrOutOfBounds.
func (g *Grid) Symbol(c Cell) (rune, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, c, g.width, g.height)
	}

	return g.symbols[c.X][c.Y], nil
}

// OpenCells counts the cells that are not obstacles.
func (g *Grid) OpenCells() int {
	n := 0
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if !g.obstacles[x][y] {
				n++
			}
		}
	}

	return n
}
