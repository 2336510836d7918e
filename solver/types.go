// Package solver defines types, options, and sentinel errors for the
// maze-walking Stepper.
package solver

import "errors"

// Sentinel errors for Stepper construction and stepping.
var (
	// ErrNilGrid is returned when a nil *maze.Grid is passed to New.
	ErrNilGrid = errors.New("solver: grid is nil")
	// ErrBlockedStart indicates a start position that is out of bounds or a wall.
	ErrBlockedStart = errors.New("solver: start position is blocked or out of bounds")
	// ErrNoGoals indicates an empty goal list.
	ErrNoGoals = errors.New("solver: at least one goal exit point is required")
	// ErrStepLimit indicates the WithMaxSteps cap was reached before a
	// terminal state.
	ErrStepLimit = errors.New("solver: step limit reached")
	// ErrSolverDone indicates Step was called after Solved or Stuck.
	ErrSolverDone = errors.New("solver: solve already finished")
)

// Outcome is the terminal result of a solve. Stuck is ordinary data, not an
// error: a maze without a reachable exit is an expected case.
type Outcome int

const (
	// OutcomePending means the solve has not reached a terminal state.
	OutcomePending Outcome = iota
	// OutcomeSolved means the bot reached a goal exit point.
	OutcomeSolved
	// OutcomeStuck means the path history drained with no branch left.
	OutcomeStuck
)

// String returns the outcome name for diagnostics.
func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "solved"
	case OutcomeStuck:
		return "stuck"
	default:
		return "pending"
	}
}

// Transition identifies what a single Step decided.
type Transition int

const (
	// TransitionAdvanced: the bot moved one cell in its current facing.
	TransitionAdvanced Transition = iota
	// TransitionBranched: the bot turned to a perpendicular branch and moved.
	TransitionBranched
	// TransitionBacktracked: the bot abandoned the top node and teleported
	// to the node beneath it.
	TransitionBacktracked
	// TransitionSolved: the bot is standing on a goal exit point.
	TransitionSolved
	// TransitionStuck: the history drained; no solution is reachable.
	TransitionStuck
	// TransitionNone: no decision was made; reported only alongside an error.
	TransitionNone
)

// String returns the transition name for diagnostics.
func (t Transition) String() string {
	switch t {
	case TransitionAdvanced:
		return "advanced"
	case TransitionBranched:
		return "branched"
	case TransitionBacktracked:
		return "backtracked"
	case TransitionSolved:
		return "solved"
	case TransitionStuck:
		return "stuck"
	default:
		return "none"
	}
}

// Option configures optional Stepper behavior. Use with New(g, start, goals, opts...).
type Option func(*Options)

// Options holds configurable Stepper parameters.
type Options struct {
	// MaxSteps, if > 0, aborts the solve with ErrStepLimit after that many
	// Step calls. 0 disables the cap; the algorithm terminates on its own
	// within 4×(open cells) steps regardless.
	MaxSteps int

	// OnStep, if non-nil, is invoked after every transition with the
	// transition taken and the bot's state after it. Returning an error
	// aborts the solve with that error (wrapped).
	OnStep func(t Transition, b Bot) error
}

// DefaultOptions returns Options with no step cap and no hook.
func DefaultOptions() Options {
	return Options{MaxSteps: 0, OnStep: nil}
}

// WithMaxSteps returns an Option capping the number of Step calls.
// Non-positive values disable the cap.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithOnStep returns an Option installing fn as the per-transition hook.
func WithOnStep(fn func(t Transition, b Bot) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}
