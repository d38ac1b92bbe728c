// Package state wires the resolved config, notebook provider, runner, and
// clipboard reader together and hands them to the command factories. The
// explicit handle replaces any process-wide singleton lookup.
package state

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"

	"github.com/takenlabs/taken/internal/config"
	"github.com/takenlabs/taken/internal/notebook"
	"github.com/takenlabs/taken/internal/runner"
)

// ClipboardReader returns the current clipboard text. Injectable so the
// picker can be tested without a window system.
type ClipboardReader func() (string, error)

type State struct {
	Config    config.Config
	Provider  *notebook.Provider
	Runner    *runner.Runner
	Clipboard ClipboardReader
	Home      string
}

func New() (*State, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}

	s := &State{
		Home:      home,
		Runner:    runner.New(),
		Clipboard: clipboard.ReadAll,
	}
	s.Reload()
	return s, nil
}

// Reload re-resolves config and rebuilds the provider. Called at the start
// of every picker session and headless command so config edits take effect
// immediately; nothing is cached across invocations.
func (s *State) Reload() {
	s.Config = config.Resolve(s.Home)
	s.Provider = notebook.NewProvider(s.Config.NotebookDir, s.Config.DefaultNotebook)
}
