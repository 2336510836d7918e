package maze_test

import (
	"errors"
	"testing"

	"github.com/ravenmoor/mazebot/maze"
)

//----------------------------------------------------------------------------//
// New and cell query tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged, and badly marked input.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		walls  [][]bool
		marked []maze.Position
		err    error
	}{
		{"EmptyRows", [][]bool{}, nil, maze.ErrEmptyMaze},
		{"EmptyCols", [][]bool{{}}, nil, maze.ErrEmptyMaze},
		{"RaggedRows", [][]bool{{false, true}, {false}}, nil, maze.ErrRaggedRows},
		{"MarkOutOfBounds", [][]bool{{false, false}}, []maze.Position{{Row: 1, Col: 0}}, maze.ErrMarkOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.New(tc.walls, tc.marked)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.walls, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := maze.New([][]bool{
		{false, true, false},
		{true, false, true},
	}, nil)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	valid := []maze.Position{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 1, Col: 1}}
	for _, p := range valid {
		if !g.InBounds(p) {
			t.Errorf("InBounds(%v)=false; want true", p)
		}
	}
	invalid := []maze.Position{{Row: -1, Col: 0}, {Row: 2, Col: 0}, {Row: 0, Col: 3}, {Row: 0, Col: -1}}
	for _, p := range invalid {
		if g.InBounds(p) {
			t.Errorf("InBounds(%v)=true; want false", p)
		}
	}
}

// TestIsWall_And_MarkedExit verifies cell queries and the marked-exit set.
func TestIsWall_And_MarkedExit(t *testing.T) {
	mark := maze.Position{Row: 0, Col: 2}
	g, err := maze.New([][]bool{
		{false, true, false},
		{true, false, true},
	}, []maze.Position{mark})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if g.IsWall(maze.Position{Row: 0, Col: 0}) {
		t.Error("IsWall(0,0)=true; want false")
	}
	if !g.IsWall(maze.Position{Row: 0, Col: 1}) {
		t.Error("IsWall(0,1)=false; want true")
	}
	if !g.MarkedExit(mark) {
		t.Errorf("MarkedExit(%v)=false; want true", mark)
	}
	if g.MarkedExit(maze.Position{Row: 1, Col: 1}) {
		t.Error("MarkedExit(1,1)=true; want false")
	}
	if g.MarkedExit(maze.Position{Row: 9, Col: 9}) {
		t.Error("MarkedExit out of bounds = true; want false")
	}
	if got := g.OpenCells(); got != 3 {
		t.Errorf("OpenCells()=%d; want 3", got)
	}
}

// TestNew_DeepCopies verifies that mutating the input after construction
// does not affect the grid.
func TestNew_DeepCopies(t *testing.T) {
	walls := [][]bool{{false, false}}
	g, err := maze.New(walls, nil)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	walls[0][1] = true
	if g.IsWall(maze.Position{Row: 0, Col: 1}) {
		t.Error("grid reflects post-construction mutation of input")
	}
}
