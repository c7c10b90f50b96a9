package dice

import "errors"

// FaceSum is the value that opposite faces of a standard die add up to.
const FaceSum = 7

// ErrInvalidDice indicates that three faces do not describe a real die.
var ErrInvalidDice = errors.New("dice: invalid orientation")

// Direction names one of the four rolls a die can make on a grid.
type Direction int

const (
	// Left tips the die towards decreasing x.
	Left Direction = iota
	// Right tips the die towards increasing x.
	Right
	// South tips the die towards decreasing y.
	South
	// North tips the die towards increasing y.
	North
)

// directions is the fixed expansion order used by successor generation.
var directions = [...]Direction{Left, Right, South, North}

// Directions returns the four rolls in their stable expansion order:
// left, right, south, north.
func Directions() []Direction {
	out := make([]Direction, len(directions))
	copy(out, directions[:])

	return out
}

// Inverse returns the roll that undoes d.
func (d Direction) Inverse() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case South:
		return North
	default:
		return South
	}
}

// Offset returns the grid displacement of a roll. The y axis grows northward.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case South:
		return 0, -1
	default:
		return 0, 1
	}
}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case South:
		return "south"
	case North:
		return "north"
	default:
		return "unknown"
	}
}

// Dice is the orientation of a die, described by the faces pointing up,
// east and north. The zero value is not a valid orientation; use Default or
// New.
type Dice struct {
	Top   int
	Right int
	North int
}
