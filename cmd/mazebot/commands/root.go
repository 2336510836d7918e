package commands

import (
	"github.com/spf13/cobra"
)

// ExitError carries a process exit code through cobra's error return. Err
// may be nil when the outcome was already reported to the user (a stuck
// solve prints its own message and only needs the code).
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}

	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

var configPath string

// Execute builds and runs the root command.
func Execute() error {
	root := &cobra.Command{
		Use:           "mazebot",
		Short:         "Solve textual mazes with a backtracking wall-following bot",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (YAML, optional)")

	root.AddCommand(solveCmd())

	return root.Execute()
}
