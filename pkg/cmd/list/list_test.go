package list

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/takenlabs/taken/internal/state"
)

func testState(t *testing.T, defaultName string, names ...string) *state.State {
	t.Helper()

	configDir := t.TempDir()
	notebookDir := t.TempDir()
	t.Setenv("TAKEN_CONFIG_DIR", configDir)
	t.Setenv("TAKEN_DIR", notebookDir)

	if defaultName != "" {
		path := filepath.Join(configDir, "default_notebook")
		if err := os.WriteFile(path, []byte(defaultName+"\n"), 0o644); err != nil {
			t.Fatalf("failed to write default override: %v", err)
		}
	}
	for _, name := range names {
		path := filepath.Join(notebookDir, name+".md")
		body := "# " + name + "\n\n## First entry\n\nbody\n"
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("failed to write notebook: %v", err)
		}
	}

	s := &state.State{}
	s.Reload()
	return s
}

func execute(t *testing.T, s *state.State, args ...string) string {
	t.Helper()
	cmd := NewCmdList(s)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	return out.String()
}

func TestListMarksDefaultFirst(t *testing.T) {
	s := testState(t, "Ideas", "Work", "Ideas")

	out := execute(t, s)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines: got %d, want 2\n%s", len(lines), out)
	}
	if lines[0] != "Ideas (default)" {
		t.Errorf("first line: got %q, want %q", lines[0], "Ideas (default)")
	}
	if lines[1] != "Work" {
		t.Errorf("second line: got %q, want %q", lines[1], "Work")
	}
}

func TestListEmptyDirectory(t *testing.T) {
	s := testState(t, "")

	out := execute(t, s)

	if !strings.Contains(out, "No notebooks in") {
		t.Errorf("output: got %q", out)
	}
}

func TestListLongIncludesEntryCounts(t *testing.T) {
	s := testState(t, "", "Work")

	out := execute(t, s, "--long")

	if !strings.Contains(out, "Work") || !strings.Contains(out, "2 entries") {
		t.Errorf("output: got %q, want entry count for Work", out)
	}
}
