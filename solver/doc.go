// Package solver walks a maze.Grid with a wall-following, backtracking
// depth-first bot, one decision per Step call.
//
// What:
//
//   - Bot holds the search's current position and facing; a pure value
//     holder mutated only by the Stepper.
//   - VisitedNode records, for one visited cell, which neighbor directions
//     are passable (frozen at first visit) and which have been attempted.
//   - PathHistory is the stack of VisitedNode backing the search: it grows
//     on forward moves and shrinks while backtracking, and at rest its top
//     always matches the Bot's position.
//   - Stepper is the decision procedure: prefer straight ahead, then the
//     perpendicular branches, then unwind the history to the most recent
//     node with an untried, passable direction.
//
// Why:
//
//   - Step never sleeps and touches no clock, so a driver may pace it for
//     animation while tests run it to completion in a tight loop with
//     identical results.
//   - Every (node, direction) pair is attempted at most once and visited
//     cells are never re-entered, so a solve always terminates within
//     4×(open cells) decisions, loops or not.
//
// Terminal results:
//
//   - OutcomeSolved — the bot reached an exit; Result.Path holds the cells
//     of the solution, most recent first.
//   - OutcomeStuck — the history drained with no branch left. This is an
//     ordinary result value, not an error.
//
// Errors:
//
//   - ErrNilGrid, ErrBlockedStart, ErrNoGoals: constructor validation.
//   - ErrStepLimit: the defensive WithMaxSteps cap was hit.
//   - ErrSolverDone: Step was called after a terminal transition.
//
// PathHistory underflow, a duplicate push, and the size cap are invariant
// violations and panic; normal termination always reaches OutcomeStuck
// before the history can drain incorrectly.
package solver
