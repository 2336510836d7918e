package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ravenmoor/mazebot/internal/config"
	"github.com/ravenmoor/mazebot/maze"
	"github.com/ravenmoor/mazebot/render"
	"github.com/ravenmoor/mazebot/solver"
)

func solveCmd() *cobra.Command {
	var (
		tick     time.Duration
		maxSteps int
		fast     bool
		noClear  bool
	)

	cmd := &cobra.Command{
		Use:   "solve <maze-file>",
		Short: "Animate the bot solving a maze file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return &ExitError{Code: 1, Err: err}
			}
			if cmd.Flags().Changed("tick") {
				cfg.TickInterval = tick
			}
			if cmd.Flags().Changed("max-steps") {
				cfg.MaxSteps = maxSteps
			}
			if noClear {
				cfg.ClearScreen = false
			}

			f, err := os.Open(args[0])
			if err != nil {
				return &ExitError{Code: 1, Err: fmt.Errorf("opening %s: %w", args[0], err)}
			}
			defer f.Close()

			g, exits, err := maze.Parse(f)
			if err != nil {
				return &ExitError{Code: 2, Err: err}
			}

			// The first exit point is consumed as the start; the rest are
			// the goals the bot may finish on.
			start, goals := exits[0], exits[1:]

			out := cmd.OutOrStdout()
			renderer := render.NewRenderer(out, cfg.ClearScreen && !fast)

			var st *solver.Stepper
			onStep := func(t solver.Transition, b solver.Bot) error {
				var path []maze.Position
				if t == solver.TransitionSolved {
					path = st.Path()
				}
				if err := renderer.Frame(g, b.Pos, path); err != nil {
					return err
				}
				if t == solver.TransitionBacktracked {
					fmt.Fprintln(out, "The bot is backtracking to an unused branch")
				}

				return nil
			}

			opts := []solver.Option{solver.WithMaxSteps(cfg.MaxSteps)}
			if !fast {
				opts = append(opts, solver.WithOnStep(onStep))
			}
			st, err = solver.New(g, start, goals, opts...)
			if err != nil {
				return &ExitError{Code: 2, Err: err}
			}

			fmt.Fprintf(out, "Going to solve a %dx%d maze:\n", g.Cols(), g.Rows())
			if err := renderer.Frame(g, st.Bot().Pos, nil); err != nil {
				return &ExitError{Code: 1, Err: err}
			}

			res, err := runLoop(st, cfg.TickInterval, fast)
			if err != nil {
				return &ExitError{Code: 1, Err: err}
			}

			if res.Outcome == solver.OutcomeSolved {
				if fast {
					if err := renderer.Frame(g, st.Bot().Pos, res.Path); err != nil {
						return &ExitError{Code: 1, Err: err}
					}
				}
				for _, p := range res.Path {
					fmt.Fprintf(out, "%d,%d\n", p.Col, p.Row)
				}
				fmt.Fprintln(out, "Bot has found the exit!")
				fmt.Fprintln(out, "The path taken is designated by '*'")

				return nil
			}

			fmt.Fprintln(out, "Bot got stuck! No solution.")

			return &ExitError{Code: 3}
		},
	}

	cmd.Flags().DurationVar(&tick, "tick", config.DefaultTickInterval, "pause between decisions")
	cmd.Flags().IntVar(&maxSteps, "max-steps", config.DefaultMaxSteps, "abort after this many decisions (0 = no cap)")
	cmd.Flags().BoolVar(&fast, "fast", false, "run to completion without animation")
	cmd.Flags().BoolVar(&noClear, "no-clear", false, "do not clear the terminal between frames")

	return cmd
}

// runLoop drives the Stepper to a terminal state, paced by tick unless fast
// is set. Pacing is purely presentational; the result is identical at any
// cadence.
func runLoop(st *solver.Stepper, tick time.Duration, fast bool) (*solver.Result, error) {
	if fast || tick <= 0 {
		res, err := st.Run()
		if err != nil {
			return nil, describeAbort(err)
		}

		return res, nil
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		<-ticker.C
		t, err := st.Step()
		if err != nil {
			return nil, describeAbort(err)
		}
		if t == solver.TransitionSolved || t == solver.TransitionStuck {
			return st.Result(), nil
		}
	}
}

func describeAbort(err error) error {
	if errors.Is(err, solver.ErrStepLimit) {
		return fmt.Errorf("aborted: %w", err)
	}

	return err
}
