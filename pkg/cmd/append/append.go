package append

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/takenlabs/taken/internal/state"
)

func NewCmdAppend(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "append [notebook]",
		Aliases: []string{"a"},
		Short:   "Append the clipboard without opening the picker.",
		Long: heredoc.Doc(`
			Invokes the tkn append tool directly. With no argument the
			default notebook receives the capture; with one argument the
			named notebook does.

			Examples:
			  taken append          // capture into the default notebook
			  taken append Work     // capture into Work
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s.Reload()

			if outcome := s.Runner.Run(args...); !outcome.OK {
				return errors.New(outcome.Message)
			}

			target := "the default notebook"
			if len(args) == 1 {
				target = args[0]
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Captured clipboard into %s.\n", target)
			return nil
		},
	}

	return cmd
}
