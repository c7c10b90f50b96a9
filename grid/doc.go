// Package grid holds the static board a die is rolled across.
//
// What:
//
//   - Grid wraps a rectangular character layout: '*' marks an obstacle,
//     'S' the unique start cell, 'G' the unique goal cell, anything else is
//     open floor.
//   - Coordinates are Cartesian: x grows eastward, y grows northward, so the
//     first layout row is the northernmost one (y = Height-1).
//   - The grid is immutable once built. Rendering overlays live elsewhere.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrMissingStart / ErrMissingGoal: no 'S' / 'G' in the layout.
//   - ErrDuplicateStart / ErrDuplicateGoal: more than one 'S' / 'G'.
//   - ErrOutOfBounds: a coordinate query outside the board.
//
// Complexity:
//
//   - Parse: O(W×H) time and memory.
//   - InBounds, IsObstacle, Open: O(1).
package grid
