package root

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/takenlabs/taken/internal/fzf"
	"github.com/takenlabs/taken/internal/state"
	appendcmd "github.com/takenlabs/taken/pkg/cmd/append"
	"github.com/takenlabs/taken/pkg/cmd/initialize"
	"github.com/takenlabs/taken/pkg/cmd/list"
	newcmd "github.com/takenlabs/taken/pkg/cmd/new"
	"github.com/takenlabs/taken/tui/picker"
)

func NewCmdRoot(s *state.State) *cobra.Command {
	var fuzzy bool

	cmd := &cobra.Command{
		Use:   "taken",
		Short: "Append your clipboard to a markdown notebook.",
		Long: heredoc.Doc(`
			Taken shows a notebook picker and hands your clipboard to the
			tkn append tool.

			The picker filters as you type. Enter appends to the highlighted
			notebook, alt+1 through alt+0 append to the first ten rows, and
			ctrl+d appends to the default notebook without picking one.
		`),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s.Reload()
			if fuzzy {
				return runFuzzy(s)
			}
			return picker.Run(s)
		},
	}

	cmd.Flags().
		BoolVar(&fuzzy, "fuzzy", false, "pick with a fuzzy finder instead of the picker")

	cmd.AddCommand(
		appendcmd.NewCmdAppend(s),
		list.NewCmdList(s),
		newcmd.NewCmdNew(s),
		initialize.NewCmdInit(s),
	)

	return cmd
}

func runFuzzy(s *state.State) error {
	name, err := fzf.NewFinder(s.Provider, "Append clipboard to…").Pick()
	if err != nil {
		if errors.Is(err, fzf.ErrAborted) {
			return nil
		}
		return err
	}

	if outcome := s.Runner.Run(name); !outcome.OK {
		return errors.New(outcome.Message)
	}

	fmt.Printf("Captured clipboard into %s.\n", name)
	return nil
}
