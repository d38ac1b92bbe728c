package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/takenlabs/taken/internal/notebook"
	"github.com/takenlabs/taken/internal/state"
)

func NewCmdList(s *state.State) *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the notebooks the picker would show.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s.Reload()
			w := cmd.OutOrStdout()

			notebooks := s.Provider.Load()
			if len(notebooks) == 0 {
				fmt.Fprintf(w, "No notebooks in %s\n", s.Provider.Dir())
				return nil
			}

			for _, nb := range notebooks {
				display := nb.Name
				if nb.IsDefault {
					display += " (default)"
				}

				if !long {
					fmt.Fprintln(w, display)
					continue
				}

				meta, err := notebook.ReadMeta(s.Provider.Path(nb.Name))
				if err != nil {
					fmt.Fprintln(w, display)
					continue
				}
				fmt.Fprintf(w, "%-28s %3d entries  %8s  %s\n",
					display,
					meta.Entries,
					formatSize(meta.Size),
					meta.ModTime.Format("2006-01-02 15:04"),
				)
			}
			return nil
		},
	}

	cmd.Flags().
		BoolVarP(&long, "long", "l", false, "include entry counts and modification times")

	return cmd
}

func formatSize(size int64) string {
	const kb = 1024
	if size < kb {
		return fmt.Sprintf("%d B", size)
	}
	return fmt.Sprintf("%.1f KB", float64(size)/kb)
}
