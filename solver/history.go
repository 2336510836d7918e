package solver

import "github.com/ravenmoor/mazebot/maze"

// PathHistory is the ordered stack of visited nodes behind the search:
// pushed on forward moves, popped when a node has no remaining branch and
// must be abandoned. It is owned exclusively by the Stepper.
//
// Misuse panics rather than returning errors: an underflow, a duplicate
// push, or exceeding the size cap can only mean a solver bug, never an
// expected runtime condition.
type PathHistory struct {
	nodes   []*VisitedNode
	sizeCap int
}

// NewPathHistory returns an empty history. sizeCap, if > 0, bounds the
// stack depth; the Stepper passes the grid's cell count, which a correct
// solve can never exceed because no position is ever pushed twice.
func NewPathHistory(sizeCap int) *PathHistory {
	return &PathHistory{sizeCap: sizeCap}
}

// Push appends n as the new top. Panics if n duplicates the current top
// (same position, identical attempted flags — a no-progress loop) or if the
// size cap is exceeded.
func (h *PathHistory) Push(n *VisitedNode) {
	if len(h.nodes) > 0 {
		if top := h.nodes[len(h.nodes)-1]; top.pos == n.pos && top.tried == n.tried {
			panic("solver: push would duplicate the current top node")
		}
	}
	if h.sizeCap > 0 && len(h.nodes) >= h.sizeCap {
		panic("solver: path history exceeded its size cap")
	}
	h.nodes = append(h.nodes, n)
}

// Top returns the most recently pushed node. Panics on an empty history.
func (h *PathHistory) Top() *VisitedNode {
	if len(h.nodes) == 0 {
		panic("solver: path history underflow")
	}

	return h.nodes[len(h.nodes)-1]
}

// Pop removes and returns the top node. Panics on an empty history.
func (h *PathHistory) Pop() *VisitedNode {
	if len(h.nodes) == 0 {
		panic("solver: path history underflow")
	}
	n := h.nodes[len(h.nodes)-1]
	h.nodes[len(h.nodes)-1] = nil
	h.nodes = h.nodes[:len(h.nodes)-1]

	return n
}

// Len returns the number of nodes on the stack.
func (h *PathHistory) Len() int { return len(h.nodes) }

// IsEmpty reports whether the history holds no nodes.
func (h *PathHistory) IsEmpty() bool { return len(h.nodes) == 0 }

// Positions returns the node positions top-to-bottom, the cells visited in
// visitation order, most recent first.
func (h *PathHistory) Positions() []maze.Position {
	out := make([]maze.Position, 0, len(h.nodes))
	for i := len(h.nodes) - 1; i >= 0; i-- {
		out = append(out, h.nodes[i].pos)
	}

	return out
}
