package solver

import "github.com/ravenmoor/mazebot/maze"

// VisitedNode records one visited cell: which of the four neighbor
// directions are passable, and which have already been attempted from it.
// Passability is surveyed once, when the node is created, and frozen;
// attempted flags only ever transition false→true.
type VisitedNode struct {
	pos   maze.Position
	open  [4]bool
	tried [4]bool
}

// NewVisitedNode surveys the four neighbors of p on g and returns the
// node. Out-of-bounds neighbors are impassable.
func NewVisitedNode(g *maze.Grid, p maze.Position) *VisitedNode {
	n := &VisitedNode{pos: p}
	for _, d := range maze.Directions {
		if q := p.Add(d); g.InBounds(q) && !g.IsWall(q) {
			n.open[d] = true
		}
	}

	return n
}

// Pos returns the node's cell position.
func (n *VisitedNode) Pos() maze.Position { return n.pos }

// CanMove reports whether the neighbor in direction d was passable when the
// node was surveyed.
func (n *VisitedNode) CanMove(d maze.Direction) bool { return n.open[d] }

// Tried reports whether direction d has already been attempted from this node.
func (n *VisitedNode) Tried(d maze.Direction) bool { return n.tried[d] }

// MarkTried records that direction d has been attempted. Sticky: there is
// no way to clear the flag.
func (n *VisitedNode) MarkTried(d maze.Direction) { n.tried[d] = true }
