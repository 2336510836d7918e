package maze

import (
	"bufio"
	"fmt"
	"io"
)

// Maze description markers.
const (
	// WallMarker marks an impassable cell.
	WallMarker = 'X'
	// OpenMarker marks an open cell.
	OpenMarker = ' '
	// ExitMarker marks an open, user-designated exit cell.
	ExitMarker = 'O'
)

// Parse reads a textual maze description from r and returns the Grid plus
// every usable ExitPoint, perimeter entry points first and user-marked exits
// after, deduplicated by position. Blank lines are skipped; every remaining
// line must have identical width. Any character other than WallMarker and
// ExitMarker is treated as open.
// Returns ErrEmptyMaze, ErrRaggedRows, ErrTooFewExits, or a read error.
func Parse(r io.Reader) (*Grid, []ExitPoint, error) {
	var (
		walls  [][]bool
		marked []Position
		width  int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if width == 0 {
			width = len(line)
		} else if len(line) != width {
			return nil, nil, fmt.Errorf("%w: line %d is %d wide, want %d",
				ErrRaggedRows, len(walls)+1, len(line), width)
		}

		row := make([]bool, width)
		for col := 0; col < width; col++ {
			switch line[col] {
			case WallMarker:
				row[col] = true
			case ExitMarker:
				marked = append(marked, Position{Row: len(walls), Col: col})
			}
		}
		walls = append(walls, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("maze: reading description: %w", err)
	}
	if len(walls) == 0 {
		return nil, nil, ErrEmptyMaze
	}

	g, err := New(walls, marked)
	if err != nil {
		return nil, nil, err
	}

	exits := EntryPoints(g)
	seen := make(map[Position]struct{}, len(exits)+len(marked))
	for _, e := range exits {
		seen[e.Pos] = struct{}{}
	}
	for _, p := range marked {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		exits = append(exits, ExitPoint{Pos: p, Facing: Down})
	}
	if len(exits) < 2 {
		return nil, nil, ErrTooFewExits
	}

	return g, exits, nil
}

// EntryPoints scans the grid perimeter and returns an ExitPoint for every
// open boundary cell, facing inward: top row faces Down, bottom row Up, the
// left edge Right, and the right edge Left. Cells in the top or bottom row
// resolve as top/bottom, so corners appear exactly once. Results are in
// row-major scan order.
// Complexity: O(rows×cols).
func EntryPoints(g *Grid) []ExitPoint {
	var result []ExitPoint

	for row := 0; row < g.Rows(); row++ {
		switch {
		case row == 0 || row == g.Rows()-1:
			facing := Down
			if row != 0 {
				facing = Up
			}
			for col := 0; col < g.Cols(); col++ {
				if p := (Position{Row: row, Col: col}); !g.IsWall(p) {
					result = append(result, ExitPoint{Pos: p, Facing: facing})
				}
			}
		default:
			if p := (Position{Row: row, Col: 0}); !g.IsWall(p) {
				result = append(result, ExitPoint{Pos: p, Facing: Right})
			}
			if p := (Position{Row: row, Col: g.Cols() - 1}); g.Cols() > 1 && !g.IsWall(p) {
				result = append(result, ExitPoint{Pos: p, Facing: Left})
			}
		}
	}

	return result
}
