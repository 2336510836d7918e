// File: solver/example_test.go
package solver_test

import (
	"fmt"
	"strings"

	"github.com/ravenmoor/mazebot/maze"
	"github.com/ravenmoor/mazebot/solver"
)

// ExampleStepper_Run walks a fully open 1×5 corridor from its left end to
// its right end. The solution path reads most recent cell first.
func ExampleStepper_Run() {
	g, _ := maze.New([][]bool{{false, false, false, false, false}}, nil)

	start := maze.ExitPoint{Pos: maze.Position{Row: 0, Col: 0}, Facing: maze.Right}
	goal := maze.ExitPoint{Pos: maze.Position{Row: 0, Col: 4}, Facing: maze.Left}

	st, _ := solver.New(g, start, []maze.ExitPoint{goal})
	res, _ := st.Run()

	cells := make([]string, len(res.Path))
	for i, p := range res.Path {
		cells[i] = fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	fmt.Printf("outcome: %s in %d steps\n", res.Outcome, res.Steps)
	fmt.Println("path:", strings.Join(cells, " "))

	// Output:
	// outcome: solved in 5 steps
	// path: (0,4) (0,3) (0,2) (0,1) (0,0)
}

// ExampleStepper_Step paces a solve one decision at a time, the way an
// animation driver would, reporting each transition.
func ExampleStepper_Step() {
	g, _ := maze.New([][]bool{
		{true, false, true},
		{false, false, false},
		{true, true, true},
	}, nil)

	start := maze.ExitPoint{Pos: maze.Position{Row: 0, Col: 1}, Facing: maze.Down}
	goal := maze.ExitPoint{Pos: maze.Position{Row: 1, Col: 2}, Facing: maze.Left}

	st, _ := solver.New(g, start, []maze.ExitPoint{goal})
	for {
		t, err := st.Step()
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Println(t)
		if t == solver.TransitionSolved || t == solver.TransitionStuck {
			return
		}
	}

	// Output:
	// advanced
	// branched
	// backtracked
	// advanced
	// solved
}
