// Package maze models a rectangular wall maze and its usable entry and
// exit points, parsed from a plain-text description.
//
// What:
//
//   - Grid wraps a rectangular [][]bool wall map, immutable once built.
//   - Position and Direction give bounds-checked cell addressing and the
//     four orthogonal unit displacements.
//   - Parse reads the textual grammar (X = wall, space = open, O = a
//     user-designated exit) and returns the Grid plus every usable
//     ExitPoint: open perimeter cells first, user-marked cells after.
//
// Why:
//
//   - The solver package needs nothing beyond bounds-checked wall queries;
//     keeping the Grid wall-only and read-only makes every solve
//     deterministic and side-effect free.
//   - Exit discovery is a loading concern: a maze without at least two
//     distinct exit points is rejected here, before any solver exists.
//
// Errors:
//
//   - ErrEmptyMaze: the description has no rows or no columns.
//   - ErrRaggedRows: rows have differing lengths.
//   - ErrMarkOutOfBounds: a marked exit lies outside the grid.
//   - ErrTooFewExits: fewer than two usable exit points were found.
package maze
