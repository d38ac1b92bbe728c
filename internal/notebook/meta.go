package notebook

import (
	"os"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Meta carries the display metadata for one notebook file.
type Meta struct {
	Entries int
	Size    int64
	ModTime time.Time
}

// ReadMeta parses a notebook file and reports its entry count (captures land
// under their own headings) along with size and modification time.
func ReadMeta(path string) (Meta, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Meta{}, err
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return Meta{}, err
	}

	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	entries := 0
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if heading, ok := n.(*ast.Heading); ok && heading.Level <= 2 {
			entries++
		}
		return ast.WalkContinue, nil
	})

	return Meta{
		Entries: entries,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}
