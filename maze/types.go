// Package maze defines core types and sentinel errors for maze loading
// and cell addressing.
package maze

import "errors"

// Sentinel errors for maze construction and parsing.
var (
	// ErrEmptyMaze indicates the input has no rows or no columns.
	ErrEmptyMaze = errors.New("maze: input must have at least one row and one column")
	// ErrRaggedRows indicates rows of differing lengths.
	ErrRaggedRows = errors.New("maze: all rows must have the same length")
	// ErrMarkOutOfBounds indicates a marked exit outside the grid.
	ErrMarkOutOfBounds = errors.New("maze: marked exit out of bounds")
	// ErrTooFewExits indicates fewer than two usable exit points.
	ErrTooFewExits = errors.New("maze: maze must have at least two entrances/exits")
)

// Position addresses a single cell as a (row, column) pair,
// 0..Rows-1 / 0..Cols-1.
type Position struct {
	Row, Col int
}

// Add returns the position one unit displacement away in direction d.
func (p Position) Add(d Direction) Position {
	dr, dc := d.Delta()

	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Direction is one of the four orthogonal movement directions.
type Direction int

const (
	// Up decreases the row index.
	Up Direction = iota
	// Down increases the row index.
	Down
	// Left decreases the column index.
	Left
	// Right increases the column index.
	Right
)

// Directions lists all four directions in the package's canonical scan
// order: Left, Right, Up, Down.
var Directions = [4]Direction{Left, Right, Up, Down}

// Delta returns the (row, column) unit displacement of d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

// Opposite returns the reverse direction (Up↔Down, Left↔Right).
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Vertical reports whether d moves along the row axis (Up or Down).
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// String returns the direction name for diagnostics.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}

// ExitPoint is an open cell where a solve may start or successfully
// terminate, plus the direction a bot entering there should initially face.
type ExitPoint struct {
	Pos    Position
	Facing Direction
}
