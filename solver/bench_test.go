package solver_test

import (
	"testing"

	"github.com/ravenmoor/mazebot/maze"
	"github.com/ravenmoor/mazebot/solver"
)

// serpentineGrid builds a rows×cols maze whose single corridor snakes left
// to right and back, forcing the bot to traverse nearly every open cell.
func serpentineGrid(b *testing.B, rows, cols int) *maze.Grid {
	b.Helper()
	walls := make([][]bool, rows)
	for r := range walls {
		walls[r] = make([]bool, cols)
		if r%2 == 0 {
			continue // corridor row, fully open
		}
		for c := range walls[r] {
			walls[r][c] = true
		}
		// One gap per wall row, alternating ends.
		if (r/2)%2 == 0 {
			walls[r][cols-1] = false
		} else {
			walls[r][0] = false
		}
	}
	g, err := maze.New(walls, nil)
	if err != nil {
		b.Fatalf("building grid: %v", err)
	}

	return g
}

// BenchmarkStepperRun measures a full solve of a 41×41 serpentine maze.
func BenchmarkStepperRun(b *testing.B) {
	g := serpentineGrid(b, 41, 41)
	start := maze.ExitPoint{Pos: maze.Position{Row: 0, Col: 0}, Facing: maze.Right}
	goal := maze.ExitPoint{Pos: maze.Position{Row: 40, Col: 0}, Facing: maze.Right}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		st, err := solver.New(g, start, []maze.ExitPoint{goal})
		if err != nil {
			b.Fatal(err)
		}
		res, err := st.Run()
		if err != nil {
			b.Fatal(err)
		}
		if res.Outcome != solver.OutcomeSolved {
			b.Fatalf("unexpected outcome %s", res.Outcome)
		}
	}
}
