package dice

import "fmt"

// Default returns the orientation every search starts from:
// 1 on top, 3 facing east, 2 facing north.
func Default() Dice {
	return Dice{Top: 1, Right: 3, North: 2}
}

// New builds a Dice from its three visible faces and validates it.
// Returns ErrInvalidDice when a face is out of range or two of the faces are
// equal or opposite.
func New(top, right, north int) (Dice, error) {
	d := Dice{Top: top, Right: right, North: north}
	if !d.Valid() {
		return Dice{}, fmt.Errorf("%w: top=%d right=%d north=%d", ErrInvalidDice, top, right, north)
	}

	return d, nil
}

// Valid reports whether the three faces are in 1..6 and mutually adjacent
// (no two equal, no two opposite). Handedness is not checked: a mirrored die
// is closed under the same rolls.
func (d Dice) Valid() bool {
	faces := [3]int{d.Top, d.Right, d.North}
	for _, f := range faces {
		if f < 1 || f > 6 {
			return false
		}
	}
	for i := 0; i < len(faces); i++ {
		for j := i + 1; j < len(faces); j++ {
			if faces[i] == faces[j] || faces[i]+faces[j] == FaceSum {
				return false
			}
		}
	}

	return true
}

// Bottom returns the face touching the ground.
func (d Dice) Bottom() int { return FaceSum - d.Top }

// Left returns the face pointing west.
func (d Dice) Left() int { return FaceSum - d.Right }

// South returns the face pointing south.
func (d Dice) South() int { return FaceSum - d.North }

// RollRight tips the die one cell east.
func (d Dice) RollRight() Dice {
	d.Top, d.Right = FaceSum-d.Right, d.Top
	return d
}

// RollLeft tips the die one cell west.
func (d Dice) RollLeft() Dice {
	d.Top, d.Right = d.Right, FaceSum-d.Top
	return d
}

// RollNorth tips the die one cell north.
func (d Dice) RollNorth() Dice {
	d.Top, d.North = FaceSum-d.North, d.Top
	return d
}

// RollSouth tips the die one cell south.
func (d Dice) RollSouth() Dice {
	d.Top, d.North = d.North, FaceSum-d.Top
	return d
}

// Roll dispatches to the roll named by dir.
func (d Dice) Roll(dir Direction) Dice {
	switch dir {
	case Left:
		return d.RollLeft()
	case Right:
		return d.RollRight()
	case South:
		return d.RollSouth()
	default:
		return d.RollNorth()
	}
}

// RollN applies the same roll n times. Negative n rolls the inverse way.
func (d Dice) RollN(dir Direction, n int) Dice {
	if n < 0 {
		dir, n = dir.Inverse(), -n
	}
	for i := 0; i < n; i++ {
		d = d.Roll(dir)
	}

	return d
}

// All returns the 24 orientations reachable from Default, in breadth-first
// order of discovery.
func All() []Dice {
	start := Default()
	seen := map[Dice]bool{start: true}
	queue := []Dice{start}
	for qi := 0; qi < len(queue); qi++ {
		for _, dir := range directions {
			next := queue[qi].Roll(dir)
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}

	return queue
}

// String renders the orientation as "top/right/north".
func (d Dice) String() string {
	return fmt.Sprintf("%d/%d/%d", d.Top, d.Right, d.North)
}
