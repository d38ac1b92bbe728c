package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Notebooks"))
	if m.clip != "" {
		b.WriteString(clipStyle.Render(fmt.Sprintf("  clipboard: %s", m.clip)))
	}
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(m.viewEmpty())
	} else {
		b.WriteString(m.list.View())
	}
	b.WriteString("\n\n")

	b.WriteString(m.viewMessage())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(
		"↵ append · alt+1…0 quick · ctrl+d default · tab preview · ctrl+r reload · esc quit",
	))

	left := b.String()
	if m.showPreview && m.preview != "" {
		maxHeight := m.height - 2
		if maxHeight < 1 {
			maxHeight = defaultListHeight + chromeRows
		}
		right := previewStyle.Render(
			lipgloss.NewStyle().MaxHeight(maxHeight).Render(m.preview),
		)
		return appStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	}
	return appStyle.Render(left)
}

func (m Model) viewEmpty() string {
	if len(m.all) == 0 {
		return emptyStyle.Render(
			fmt.Sprintf("No notebooks in %s", m.state.Provider.Dir()),
		)
	}
	return emptyStyle.Render("No matches")
}

func (m Model) viewMessage() string {
	if m.message == "" {
		return ""
	}
	if m.messageIsError {
		return errorStyle(m.message)
	}
	return statusStyle(m.message)
}
