package grid

import (
	"errors"
	"fmt"
)

// Layout characters.
const (
	ObstacleSymbol = '*'
	StartSymbol    = 'S'
	GoalSymbol     = 'G'
)

// Sentinel errors for grid construction and queries.
var (
	// ErrEmptyGrid indicates the layout has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: layout must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrMissingStart indicates the layout has no start cell.
	ErrMissingStart = errors.New("grid: layout has no start cell 'S'")
	// ErrMissingGoal indicates the layout has no goal cell.
	ErrMissingGoal = errors.New("grid: layout has no goal cell 'G'")
	// ErrDuplicateStart indicates more than one start cell.
	ErrDuplicateStart = errors.New("grid: layout has more than one start cell 'S'")
	// ErrDuplicateGoal indicates more than one goal cell.
	ErrDuplicateGoal = errors.New("grid: layout has more than one goal cell 'G'")
	// ErrOutOfBounds indicates a coordinate outside the board.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
)

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

// Add returns the cell displaced by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is the immutable board. symbols[x][y] keeps the original layout
// character; obstacles[x][y] caches the '*' test for the hot path.
type Grid struct {
	width, height int
	symbols       [][]rune
	obstacles     [][]bool
	start, goal   Cell
}
