package solver

import (
	"fmt"

	"github.com/ravenmoor/mazebot/maze"
)

// Stepper is the navigation state machine. Each Step call performs exactly
// one decision: goal check, forward move, perpendicular branch, or a single
// backtracking pop. The Stepper owns the Bot and the PathHistory; the Grid
// is read-only.
//
// Re-entry policy: the Stepper keeps the set of every position ever pushed
// and never offers a move into such a cell, whether advancing, branching,
// or resuming after a pop. This forbids re-entering any previously visited
// node (not just the immediate predecessor), which keeps junctions of three
// or more branches sound and bounds every solve by 4×(open cells) steps.
type Stepper struct {
	grid    *maze.Grid
	bot     Bot
	history *PathHistory
	goals   map[maze.Position]struct{}
	visited map[maze.Position]struct{}
	opts    Options
	steps   int
	outcome Outcome
}

// Result carries a finished solve: the terminal outcome, the solution path
// (history read top-to-bottom, most recent cell first; empty when stuck),
// and the number of Step decisions taken.
type Result struct {
	Outcome Outcome
	Path    []maze.Position
	Steps   int
}

// New constructs a Stepper with the bot at start, facing start's assigned
// direction, and the history seeded with the start node. goals are the
// remaining exit points; reaching any of their positions solves the maze.
// Returns ErrNilGrid, ErrBlockedStart, or ErrNoGoals on invalid input.
func New(g *maze.Grid, start maze.ExitPoint, goals []maze.ExitPoint, opts ...Option) (*Stepper, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start.Pos) || g.IsWall(start.Pos) {
		return nil, ErrBlockedStart
	}
	if len(goals) == 0 {
		return nil, ErrNoGoals
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	s := &Stepper{
		grid:    g,
		bot:     Bot{Pos: start.Pos, Facing: start.Facing},
		history: NewPathHistory(g.Rows() * g.Cols()),
		goals:   make(map[maze.Position]struct{}, len(goals)),
		visited: make(map[maze.Position]struct{}),
		opts:    o,
	}
	for _, ep := range goals {
		s.goals[ep.Pos] = struct{}{}
	}

	// Seed the search with the start node.
	s.history.Push(NewVisitedNode(g, start.Pos))
	s.visited[start.Pos] = struct{}{}

	return s, nil
}

// Bot returns the bot's current state.
func (s *Stepper) Bot() Bot { return s.bot }

// Outcome returns the terminal outcome, or OutcomePending while stepping.
func (s *Stepper) Outcome() Outcome { return s.outcome }

// Steps returns the number of Step decisions taken so far.
func (s *Stepper) Steps() int { return s.steps }

// Path returns the current history top-to-bottom (most recent cell first).
func (s *Stepper) Path() []maze.Position { return s.history.Positions() }

// HistoryLen returns the current depth of the path history.
func (s *Stepper) HistoryLen() int { return s.history.Len() }

// Result snapshots the solve. Meaningful once Outcome is terminal.
func (s *Stepper) Result() *Result {
	return &Result{Outcome: s.outcome, Path: s.history.Positions(), Steps: s.steps}
}

// Step performs one decision and reports the transition taken. After a
// terminal transition it returns that transition again with ErrSolverDone.
// ErrStepLimit aborts a solve that exceeds the WithMaxSteps cap; the
// transition is TransitionNone in that case.
func (s *Stepper) Step() (Transition, error) {
	// 1. Terminal states are sticky.
	if s.outcome != OutcomePending {
		return s.terminalTransition(), ErrSolverDone
	}

	// 2. Goal check: standing on a remaining exit point is Solved even when
	// the step cap is already exhausted.
	if _, ok := s.goals[s.bot.Pos]; ok {
		s.steps++
		s.outcome = OutcomeSolved

		return s.fire(TransitionSolved)
	}
	if s.opts.MaxSteps > 0 && s.steps >= s.opts.MaxSteps {
		return TransitionNone, ErrStepLimit
	}
	s.steps++

	node := s.history.Top()

	// 3. Forward attempt in the current facing.
	if s.viable(node, s.bot.Facing) {
		s.advance(node, s.bot.Facing)

		return s.fire(TransitionAdvanced)
	}

	// 4. Forward is blocked: retire the whole current axis on this node
	// (the opposite direction is never a forward candidate), then scan the
	// two perpendicular branches in the fixed tie-break order.
	node.MarkTried(s.bot.Facing)
	node.MarkTried(s.bot.Facing.Opposite())
	if d, ok := s.bestBranch(node, perpendicular(s.bot.Facing)); ok {
		s.advance(node, d)

		return s.fire(TransitionBranched)
	}

	// 5. No viable move: abandon the node. One pop per Step, so a long
	// unwind stays observable decision by decision.
	s.history.Pop()
	if s.history.IsEmpty() {
		s.outcome = OutcomeStuck

		return s.fire(TransitionStuck)
	}

	// Teleport to the restored node; this is not a directional move and
	// explores nothing. The abandoned cell stays in the visited set, so no
	// branch can lead back into it.
	top := s.history.Top()
	s.bot.Pos = top.Pos()
	if d, ok := s.bestBranch(top, maze.Directions[:]); ok {
		// Face the branch; the next Step's forward attempt takes it.
		s.bot.Facing = d
	}

	return s.fire(TransitionBacktracked)
}

// Run steps to a terminal state in a tight loop and returns the Result.
func (s *Stepper) Run() (*Result, error) {
	for {
		t, err := s.Step()
		if err != nil {
			return nil, err
		}
		if t == TransitionSolved || t == TransitionStuck {
			return s.Result(), nil
		}
	}
}

// viable reports whether direction d can be taken from node: passable,
// not yet attempted, and leading to a never-visited cell.
func (s *Stepper) viable(node *VisitedNode, d maze.Direction) bool {
	if !node.CanMove(d) || node.Tried(d) {
		return false
	}
	_, seen := s.visited[node.Pos().Add(d)]

	return !seen
}

// bestBranch returns the first viable direction from node in scan order.
func (s *Stepper) bestBranch(node *VisitedNode, dirs []maze.Direction) (maze.Direction, bool) {
	for _, d := range dirs {
		if s.viable(node, d) {
			return d, true
		}
	}

	return 0, false
}

// advance marks d attempted on node, moves the bot, and pushes the
// destination's freshly surveyed node.
func (s *Stepper) advance(node *VisitedNode, d maze.Direction) {
	node.MarkTried(d)
	s.bot.Advance(d)
	s.history.Push(NewVisitedNode(s.grid, s.bot.Pos))
	s.visited[s.bot.Pos] = struct{}{}
}

// fire invokes the OnStep hook, if any, and returns the transition.
func (s *Stepper) fire(t Transition) (Transition, error) {
	if s.opts.OnStep != nil {
		if err := s.opts.OnStep(t, s.bot); err != nil {
			return t, fmt.Errorf("solver: OnStep hook: %w", err)
		}
	}

	return t, nil
}

func (s *Stepper) terminalTransition() Transition {
	if s.outcome == OutcomeSolved {
		return TransitionSolved
	}

	return TransitionStuck
}

// perpendicular returns the branch candidates for a blocked facing:
// vertical movement tries Left then Right, horizontal tries Up then Down.
func perpendicular(d maze.Direction) []maze.Direction {
	if d.Vertical() {
		return []maze.Direction{maze.Left, maze.Right}
	}

	return []maze.Direction{maze.Up, maze.Down}
}
