package utils

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

const defaultWrapWidth = 80

// RenderMarkdownPreview reads a notebook file and renders it as styled
// terminal markdown for the picker's preview pane.
func RenderMarkdownPreview(path string, w int) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return "Error reading notebook"
	}

	wrap := w
	if wrap <= 0 {
		wrap = defaultWrapWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(wrap),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return "Error rendering markdown" // Displayed in Preview Pane
	}

	markdown, err := r.Render(string(content))
	if err != nil {
		return "Error rendering markdown"
	}

	return markdown
}
