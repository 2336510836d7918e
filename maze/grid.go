package maze

// Grid is a rectangular boolean wall map plus the set of user-marked exit
// cells. It is immutable once built: construction deep-copies its input and
// no method mutates it.
type Grid struct {
	rows, cols int
	walls      [][]bool
	marked     map[Position]struct{}
}

// New constructs a Grid from a non-empty, rectangular wall map and the
// user-marked exit cells. The wall slice is deep-copied to ensure
// immutability.
// Returns ErrEmptyMaze if walls has no rows or no columns,
// ErrRaggedRows if any row length differs,
// ErrMarkOutOfBounds if a marked cell lies outside the grid.
// Complexity: O(rows×cols) time and memory.
func New(walls [][]bool, marked []Position) (*Grid, error) {
	if len(walls) == 0 || len(walls[0]) == 0 {
		return nil, ErrEmptyMaze
	}
	rows, cols := len(walls), len(walls[0])
	for _, row := range walls {
		if len(row) != cols {
			return nil, ErrRaggedRows
		}
	}

	// Deep copy to prevent external mutation.
	cells := make([][]bool, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]bool, cols)
		copy(cells[r], walls[r])
	}

	g := &Grid{
		rows:   rows,
		cols:   cols,
		walls:  cells,
		marked: make(map[Position]struct{}, len(marked)),
	}
	for _, p := range marked {
		if !g.InBounds(p) {
			return nil, ErrMarkOutOfBounds
		}
		g.marked[p] = struct{}{}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// IsWall reports whether the cell at p is a wall. Callers must bounds-check
// with InBounds first; IsWall panics for out-of-bounds positions.
// Complexity: O(1).
func (g *Grid) IsWall(p Position) bool {
	return g.walls[p.Row][p.Col]
}

// MarkedExit reports whether p was marked as a user-designated exit in the
// maze description. Out-of-bounds positions report false.
func (g *Grid) MarkedExit(p Position) bool {
	_, ok := g.marked[p]

	return ok
}

// OpenCells returns the number of non-wall cells, used by callers sizing
// step caps.
func (g *Grid) OpenCells() int {
	var n int
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if !g.walls[r][c] {
				n++
			}
		}
	}

	return n
}
