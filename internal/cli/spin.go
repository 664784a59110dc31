package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgs61/wheelofchumps/internal/config"
	"github.com/jgs61/wheelofchumps/internal/domain"
	"github.com/jgs61/wheelofchumps/internal/service"
	"github.com/jgs61/wheelofchumps/internal/spin"
)

// SpinOptions хранит флаги команды spin.
type SpinOptions struct {
	Names string
	Task  string
	Seed  int64
}

// NewSpinCommand создаёт команду spin: одно вращение колеса в терминале.
func NewSpinCommand(rootOpts *RootOptions, runtime runtimeFactory) *cobra.Command {
	opts := &SpinOptions{}

	cmd := &cobra.Command{
		Use:   "spin",
		Short: "Spin the wheel and announce the chump",
		Long: `Spin the wheel for the given participants and task.

Names are comma separated. The wheel spins for 3.5 seconds, prints every
phase change and finally announces who has to do the task.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpin(cmd, rootOpts, opts, runtime(opts.Seed))
		},
	}

	cmd.Flags().StringVarP(&opts.Names, "names", "n", "", "comma-separated participant names")
	cmd.Flags().StringVarP(&opts.Task, "task", "t", "", "task the chump has to do")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed for a reproducible spin (0 = random)")

	return cmd
}

func runSpin(cmd *cobra.Command, rootOpts *RootOptions, opts *SpinOptions, rt Runtime) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	var cfg config.Config
	cfg.Normalize()

	done := make(chan domain.Result, 1)
	svc := service.New(cfg, rt.Randomizer, rt.Clock, rt.Scheduler,
		&printer{out: out, verbose: rootOpts.Verbose},
		spin.ObserverFuncs{Result: func(res domain.Result) { done <- res }},
	)

	if _, err := svc.Start(ctx, opts.Names, opts.Task); err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return &ExitError{Code: ExitInvalidInput, Err: err}
		}
		return err
	}
	if rt.Drive != nil {
		rt.Drive()
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		svc.Cancel(context.WithoutCancel(ctx))
		fmt.Fprintln(out, "spin cancelled")
		return ctx.Err()
	}
}
