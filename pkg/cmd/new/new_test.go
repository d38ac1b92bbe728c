package new

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/takenlabs/taken/internal/state"
)

func testState(t *testing.T) (*state.State, string) {
	t.Helper()

	notebookDir := filepath.Join(t.TempDir(), "notebooks")
	t.Setenv("TAKEN_CONFIG_DIR", t.TempDir())
	t.Setenv("TAKEN_DIR", notebookDir)

	s := &state.State{}
	s.Reload()
	return s, notebookDir
}

func TestNewCreatesSeededNotebook(t *testing.T) {
	s, dir := testState(t)
	cmd := NewCmdNew(s)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"Reading"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	path := filepath.Join(dir, "Reading.md")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("notebook was not created: %v", err)
	}
	if string(data) != "# Reading\n" {
		t.Errorf("contents: got %q", data)
	}
	if !strings.Contains(out.String(), "Created "+path) {
		t.Errorf("output: got %q", out.String())
	}
}

func TestNewRejectsInvalidName(t *testing.T) {
	s, _ := testState(t)
	cmd := NewCmdNew(s)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"   "})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for a blank name")
	}
}
