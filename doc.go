// Package mazebot is a small toolkit for solving textual mazes with a
// wall-following, backtracking depth-first bot.
//
// 🤖 What is mazebot?
//
//	A library plus a CLI that together:
//		• Parse a textual maze (X = wall, space = open, O = designated exit)
//		• Scan the perimeter for usable entry and exit points
//		• Walk the maze one decision at a time, reversing dead branches
//		  through a persistent path history
//		• Render each step as an ASCII frame, with the final path overlaid
//
// Everything is organized under four packages:
//
//	maze/    — Grid, Position, Direction, ExitPoint, textual parsing
//	solver/  — Bot, PathHistory, and the Stepper state machine
//	render/  — ASCII frames for the driver's animation loop
//	cmd/     — the mazebot binary (solve command, pacing, exit codes)
//
// The solver is deliberately pure: Step() performs exactly one decision and
// never sleeps, so tests and callers may run it to completion in a tight
// loop while the CLI paces it against a ticker for human-viewable output.
//
//	go get github.com/ravenmoor/mazebot
package mazebot
