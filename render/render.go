// Package render draws human-viewable ASCII frames of a maze solve: the
// wall map, the user-designated exits, the bot, and (once solved) the path
// overlay. The solver never calls into this package; the driver renders
// after each transition at whatever cadence it wants.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ravenmoor/mazebot/maze"
)

// Frame cell markers.
const (
	botMark  = 'B'
	pathMark = '*'
)

// ansiClear clears the terminal and homes the cursor.
const ansiClear = "\x1b[2J\x1b[H"

// Frame renders one frame of g with the bot at bot and path overlaid.
// Precedence per cell: bot, then path, then the user-exit marker, then the
// wall or open marker. Rows are newline-terminated.
func Frame(g *maze.Grid, bot maze.Position, path []maze.Position) string {
	onPath := make(map[maze.Position]struct{}, len(path))
	for _, p := range path {
		onPath[p] = struct{}{}
	}

	var sb strings.Builder
	sb.Grow((g.Cols() + 1) * g.Rows())
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			p := maze.Position{Row: row, Col: col}
			switch {
			case p == bot:
				sb.WriteByte(botMark)
			case hasPos(onPath, p):
				sb.WriteByte(pathMark)
			case g.MarkedExit(p):
				sb.WriteByte(maze.ExitMarker)
			case g.IsWall(p):
				sb.WriteByte(maze.WallMarker)
			default:
				sb.WriteByte(maze.OpenMarker)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Renderer writes frames to w, optionally clearing the terminal first.
type Renderer struct {
	w     io.Writer
	clear bool
}

// NewRenderer returns a Renderer writing to w. When clear is true every
// frame is preceded by an ANSI clear-and-home sequence.
func NewRenderer(w io.Writer, clear bool) *Renderer {
	return &Renderer{w: w, clear: clear}
}

// Frame writes one frame, followed by the bot's position line.
func (r *Renderer) Frame(g *maze.Grid, bot maze.Position, path []maze.Position) error {
	if r.clear {
		if _, err := io.WriteString(r.w, ansiClear); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(r.w, Frame(g, bot, path)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(r.w, "Position: %d,%d\n", bot.Col, bot.Row)

	return err
}

func hasPos(set map[maze.Position]struct{}, p maze.Position) bool {
	_, ok := set[p]

	return ok
}
