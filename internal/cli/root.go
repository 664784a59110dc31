package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jgs61/wheelofchumps/internal/logging"
)

// ExitInvalidInput используется как код выхода при отклонённом вводе.
const ExitInvalidInput = 2

// RootOptions хранит глобальные флаги.
type RootOptions struct {
	Verbose   bool
	LogOutput string

	closeLog func()
}

// ExitError несёт код выхода процесса.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode возвращает код выхода для ошибки команды.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// NewRootCommand создаёт корневую команду wheel.
func NewRootCommand() *cobra.Command {
	return newRootCommand(systemRuntime)
}

func newRootCommand(runtime runtimeFactory) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "wheel",
		Short: "Wheel of Chumps",
		Long:  "Spin the wheel of chumps to pick who has to do the task.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if opts.Verbose {
				level = "debug"
			}
			closeLog, err := logging.Setup(opts.LogOutput, level)
			if err != nil {
				return err
			}
			opts.closeLog = closeLog
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.closeLog != nil {
				opts.closeLog()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "print every name the wheel shows")
	cmd.PersistentFlags().StringVar(&opts.LogOutput, "log-output", "stderr", "log destination (stdout|stderr|path)")

	cmd.AddCommand(NewSpinCommand(opts, runtime))
	cmd.AddCommand(NewCheckCommand())

	return cmd
}
