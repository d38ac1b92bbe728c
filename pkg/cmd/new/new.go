package new

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/spf13/cobra"

	"github.com/takenlabs/taken/internal/notebook"
	"github.com/takenlabs/taken/internal/state"
)

func NewCmdNew(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create an empty notebook.",
		Long: heredoc.Doc(`
			Create a markdown notebook file in the notebook directory,
			seeded with a top level heading.

			If a notebook with the same name already exists you are asked
			before it is replaced.
		`),
		Example: heredoc.Doc(`
			# Create ~/.taken/notebooks/Reading.md
			taken new Reading
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s.Reload()
			return run(s, cmd, args[0])
		},
	}

	return cmd
}

func run(s *state.State, cmd *cobra.Command, name string) error {
	if _, ok := notebook.DeriveName(name + notebook.Extension); !ok {
		return fmt.Errorf("invalid notebook name %q", name)
	}

	path := s.Config.NotebookPath(name)
	if _, err := os.Stat(path); err == nil {
		prompt := confirmation.New(
			fmt.Sprintf("Notebook %q already exists. Start it fresh?", name),
			confirmation.No,
		)
		fresh, err := prompt.RunPrompt()
		if err != nil {
			return err
		}
		if !fresh {
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte("# "+name+"\n"), 0o644); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}
