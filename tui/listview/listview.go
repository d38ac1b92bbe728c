// Package listview renders a scrollable, selectable list of rows supplied
// through an explicit row-source interface.
package listview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RowSource supplies rows to the view. Implementations stay oblivious to
// scrolling, selection, and styling.
type RowSource interface {
	RowCount() int
	RowContent(i int) string
}

type Styles struct {
	Selected lipgloss.Style
	Normal   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0AF")),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCC")),
	}
}

// Model is a windowed list with a single cursor. The cursor is -1 whenever
// the source is empty.
type Model struct {
	src    RowSource
	cursor int
	offset int
	height int
	Styles Styles
}

func New(src RowSource, height int) Model {
	m := Model{src: src, height: height, Styles: DefaultStyles()}
	m.reset()
	return m
}

// SetSource swaps the rows and moves the cursor to the first row, matching
// the picker's select-first-match behavior on every refilter.
func (m *Model) SetSource(src RowSource) {
	m.src = src
	m.reset()
}

func (m *Model) reset() {
	m.offset = 0
	if m.src == nil || m.src.RowCount() == 0 {
		m.cursor = -1
		return
	}
	m.cursor = 0
}

// Cursor returns the selected row index, or -1 when nothing is selectable.
func (m Model) Cursor() int {
	return m.cursor
}

// Select moves the cursor to row i. It reports whether i was in range;
// out-of-range requests leave the cursor untouched.
func (m *Model) Select(i int) bool {
	if m.src == nil || i < 0 || i >= m.src.RowCount() {
		return false
	}
	m.cursor = i
	m.scrollIntoView()
	return true
}

func (m *Model) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
		m.scrollIntoView()
	}
}

func (m *Model) CursorDown() {
	if m.src != nil && m.cursor < m.src.RowCount()-1 {
		m.cursor++
		m.scrollIntoView()
	}
}

func (m *Model) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	m.height = height
	m.scrollIntoView()
}

func (m *Model) scrollIntoView() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m Model) View() string {
	if m.src == nil || m.src.RowCount() == 0 {
		return ""
	}

	var b strings.Builder
	end := m.offset + m.height
	if end > m.src.RowCount() {
		end = m.src.RowCount()
	}

	for i := m.offset; i < end; i++ {
		row := m.src.RowContent(i)
		if i == m.cursor {
			b.WriteString(m.Styles.Selected.Render("> " + row))
		} else {
			b.WriteString(m.Styles.Normal.Render("  " + row))
		}
		if i < end-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}
