// Package fzf is the fuzzy-finder alternative to the built-in picker.
package fzf

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/takenlabs/taken/internal/notebook"
	"github.com/takenlabs/taken/utils"
)

// ErrAborted reports that the user backed out without choosing a notebook.
var ErrAborted = fuzzyfinder.ErrAbort

type Finder struct {
	provider *notebook.Provider
	header   string
}

func NewFinder(provider *notebook.Provider, header string) *Finder {
	return &Finder{provider: provider, header: header}
}

// Pick runs the fuzzy finder over the provider's notebooks and returns the
// chosen name.
func (f *Finder) Pick() (string, error) {
	notebooks := f.provider.Load()
	if len(notebooks) == 0 {
		return "", fmt.Errorf("no notebooks in %s", f.provider.Dir())
	}

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return utils.RenderMarkdownPreview(f.provider.Path(notebooks[i].Name), w/2)
		}),
	}
	if f.header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.header))
	}

	idx, err := fuzzyfinder.Find(notebooks, func(i int) string {
		label := notebooks[i].Name
		if notebooks[i].IsDefault {
			label += " •"
		}
		return label
	}, options...)
	if err != nil {
		return "", err
	}
	return notebooks[idx].Name, nil
}
