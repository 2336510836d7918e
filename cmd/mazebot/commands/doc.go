// Package commands wires the mazebot CLI: the root command, the solve
// command with its pacing loop, and the mapping from solve outcomes to
// process exit codes (0 solved, 1 usage or I/O failure, 2 malformed maze,
// 3 no solution).
package commands
