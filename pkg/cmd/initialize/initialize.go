package initialize

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/takenlabs/taken/internal/state"
)

func NewCmdInit(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the notebook directory and a starter config file.",
		Long: heredoc.Doc(`
			Create the notebook directory and write a config.yaml recording
			the resolved settings, so they can be edited in one place.

			Environment variables and the plain override files keep
			precedence over config.yaml afterwards.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s.Reload()
			w := cmd.OutOrStdout()

			if err := os.MkdirAll(s.Config.NotebookDir, 0o755); err != nil {
				return err
			}
			fmt.Fprintf(w, "Notebook directory: %s\n", s.Config.NotebookDir)

			path := s.Config.YAMLPath()
			if _, err := os.Stat(path); err == nil {
				fmt.Fprintf(w, "Config already exists at %s\n", path)
				return nil
			}

			if err := s.Config.Save(); err != nil {
				return err
			}
			fmt.Fprintf(w, "Wrote %s\n", path)
			return nil
		},
	}

	return cmd
}
