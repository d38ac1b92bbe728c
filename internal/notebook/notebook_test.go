package notebook

import (
	"os"
	"path/filepath"
	"testing"
)

func writeNotebooks(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("# seed\n"), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}

func names(notebooks []Notebook) []string {
	out := make([]string, len(notebooks))
	for i, nb := range notebooks {
		out[i] = nb.Name
	}
	return out
}

func TestDeriveName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     string
		ok       bool
	}{
		{"Work.md", "Work", true},
		{" Padded .md", "Padded", true},
		{"notes.md.bak", "", false},
		{"notes.md~", "", false},
		{"notes.md.swp", "", false},
		{"notes.md.swo", "", false},
		{"notes.md.swx", "", false},
		{"notes.md.tmp", "", false},
		{"notes.md.orig", "", false},
		{"notes.md.rej", "", false},
		{"notes.txt", "", false},
		{"README", "", false},
		{".md", "", false},
		{" .md", "", false},
	}

	for _, tt := range tests {
		got, ok := DeriveName(tt.filename)
		if got != tt.want || ok != tt.ok {
			t.Errorf("DeriveName(%q) = (%q, %v), want (%q, %v)",
				tt.filename, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLoadPromotesDefaultAndExcludesBackups(t *testing.T) {
	dir := t.TempDir()
	writeNotebooks(t, dir, "Work.md", "Ideas.md", "notes.md.bak")

	got := NewProvider(dir, "Ideas").Load()

	want := []string{"Ideas", "Work"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", names(got), want)
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Fatalf("got %v, want %v", names(got), want)
		}
	}
	if !got[0].IsDefault {
		t.Error("expected Ideas to be marked default")
	}
	if got[1].IsDefault {
		t.Error("Work should not be marked default")
	}
}

func TestLoadSortsCaseInsensitively(t *testing.T) {
	dir := t.TempDir()
	writeNotebooks(t, dir, "banana.md", "Apple.md", "cherry.md", "Blueberry.md")

	got := names(NewProvider(dir, "").Load())

	want := []string{"Apple", "banana", "Blueberry", "cherry"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestLoadUnmatchedDefaultLeavesOrderAlphabetical(t *testing.T) {
	dir := t.TempDir()
	writeNotebooks(t, dir, "Work.md", "Ideas.md")

	got := NewProvider(dir, "Missing").Load()

	if got[0].Name != "Ideas" || got[1].Name != "Work" {
		t.Fatalf("got %v, want [Ideas Work]", names(got))
	}
	for _, nb := range got {
		if nb.IsDefault {
			t.Errorf("%s should not be marked default", nb.Name)
		}
	}
}

func TestLoadRetainsDuplicateDerivedNames(t *testing.T) {
	dir := t.TempDir()
	writeNotebooks(t, dir, "Work.md", "Work .md")

	got := names(NewProvider(dir, "").Load())
	if len(got) != 2 || got[0] != "Work" || got[1] != "Work" {
		t.Fatalf("got %v, want [Work Work]", got)
	}
}

func TestLoadUnreadableDirectoryIsEmpty(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")

	if got := NewProvider(dir, "").Load(); len(got) != 0 {
		t.Fatalf("got %v, want empty", names(got))
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	all := []Notebook{{Name: "Ideas"}, {Name: "Work"}, {Name: "workout log"}}

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Ideas", "Work", "workout log"}},
		{"wo", []string{"Work", "workout log"}},
		{"WORK", []string{"Work", "workout log"}},
		{"deas", []string{"Ideas"}},
		{"zzz", nil},
	}

	for _, tt := range tests {
		got := names(Filter(all, tt.query))
		if len(got) != len(tt.want) {
			t.Errorf("Filter(%q) = %v, want %v", tt.query, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("Filter(%q) = %v, want %v", tt.query, got, tt.want)
				break
			}
		}
	}
}
