// Package dice models the orientation of a six-sided die that is rolled
// across a grid, one edge-tip at a time.
//
// What:
//
//   - Dice stores only three visible faces (Top, Right, North); the hidden
//     three are derived from the rule that opposite faces sum to 7.
//   - RollLeft, RollRight, RollNorth and RollSouth return the orientation
//     after tipping the die over one edge in that direction.
//   - Direction enumerates the four rolls together with their grid offsets.
//
// Why:
//
//   - A rolling die cannot be reduced to its grid position: the same cell
//     reached with different faces up is a different search state.
//   - Dice is a plain comparable value, so it can be embedded in map keys and
//     "peeked" by copying instead of rolling and un-rolling a shared object.
//
// Rolls:
//
//	right:  top' = 7 − right   right' = top         north' = north
//	left:   top' = right       right' = 7 − top     north' = north
//	north:  top' = 7 − north   north' = top         right' = right
//	south:  top' = north       north' = 7 − top     right' = right
//
// Left/Right and North/South are mutual inverses, and together the four rolls
// generate all 24 orientations of a standard die.
//
// Complexity:
//
//   - Every roll is O(1) and allocation free.
package dice
