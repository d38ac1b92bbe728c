// Package notebook discovers the markdown notebooks a picker session can
// append to.
package notebook

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Extension is the filename extension a notebook file must carry.
const Extension = ".md"

// ignoredSuffixes covers editor swap and backup artifacts that show up next
// to real notebooks.
var ignoredSuffixes = []string{"~", ".swp", ".swo", ".swx", ".bak", ".tmp", ".orig", ".rej"}

// Notebook is one pickable entry. Identity is the derived name only; a fresh
// set is produced on every directory scan.
type Notebook struct {
	Name      string
	IsDefault bool
}

// Provider lists the notebooks in a single directory.
type Provider struct {
	dir         string
	defaultName string
}

func NewProvider(dir, defaultName string) *Provider {
	return &Provider{dir: dir, defaultName: defaultName}
}

// Dir returns the directory this provider scans.
func (p *Provider) Dir() string {
	return p.dir
}

// Path returns the file path for a notebook name within this provider's
// directory.
func (p *Provider) Path(name string) string {
	return filepath.Join(p.dir, name+Extension)
}

// Load scans the notebook directory and returns the pickable notebooks,
// sorted ascending case-insensitively with the default notebook (exact name
// match) promoted to the front. An unreadable directory yields an empty
// list; the picker renders that as its empty state rather than an error.
func (p *Provider) Load() []Notebook {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return nil
	}

	var notebooks []Notebook
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, ok := DeriveName(entry.Name())
		if !ok {
			continue
		}
		notebooks = append(notebooks, Notebook{Name: name})
	}

	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(notebooks, func(i, j int) bool {
		return c.CompareString(notebooks[i].Name, notebooks[j].Name) < 0
	})

	if p.defaultName != "" {
		for i := range notebooks {
			if notebooks[i].Name != p.defaultName {
				continue
			}
			def := notebooks[i]
			def.IsDefault = true
			notebooks = append(notebooks[:i], notebooks[i+1:]...)
			notebooks = append([]Notebook{def}, notebooks...)
			break
		}
	}

	return notebooks
}

// DeriveName maps a directory entry to a notebook name. Entries with backup
// or swap suffixes, entries without the notebook extension, and entries
// whose trimmed name comes out empty are rejected.
func DeriveName(filename string) (string, bool) {
	for _, suffix := range ignoredSuffixes {
		if strings.HasSuffix(filename, suffix) {
			return "", false
		}
	}
	if filepath.Ext(filename) != Extension {
		return "", false
	}
	name := strings.TrimSpace(strings.TrimSuffix(filename, Extension))
	if name == "" {
		return "", false
	}
	return name, true
}

// Filter returns the notebooks whose name contains query case-insensitively,
// preserving the order of the input.
func Filter(notebooks []Notebook, query string) []Notebook {
	if query == "" {
		return notebooks
	}
	q := strings.ToLower(query)
	var matched []Notebook
	for _, nb := range notebooks {
		if strings.Contains(strings.ToLower(nb.Name), q) {
			matched = append(matched, nb)
		}
	}
	return matched
}
