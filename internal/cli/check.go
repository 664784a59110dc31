package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgs61/wheelofchumps/internal/domain"
	"github.com/jgs61/wheelofchumps/internal/service"
)

// NewCheckCommand создаёт команду check: проверку одного поля без запуска колеса.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "check <names|task> <value>",
		Short:     "Validate a single input field",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(domain.FieldNames), string(domain.FieldTask)},
		RunE: func(cmd *cobra.Command, args []string) error {
			field := domain.Field(args[0])
			err := service.ValidateField(field, args[1])
			switch {
			case err == nil:
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", field)
				return nil
			case errors.Is(err, service.ErrUnknownField):
				return fmt.Errorf("%w %q: must be names or task", err, args[0])
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", domain.ErrorCode(err), err)
				if fixed, ok := service.Suggest(field, args[1]); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "did you mean: %q\n", fixed)
				}
				return &ExitError{Code: ExitInvalidInput, Err: err}
			}
		},
	}
}
