// Package picker implements the notebook picker session: a filterable,
// keyboard-driven list of notebooks wired to the external append tool.
package picker

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/takenlabs/taken/internal/cache"
	"github.com/takenlabs/taken/internal/notebook"
	"github.com/takenlabs/taken/internal/runner"
	"github.com/takenlabs/taken/internal/state"
	"github.com/takenlabs/taken/tui/listview"
	"github.com/takenlabs/taken/utils"
)

const (
	flashDuration     = 2 * time.Second
	defaultListHeight = 10
	previewCacheSize  = 100

	// Rows consumed by title, search field, message, and help lines.
	chromeRows = 6
)

// appendDoneMsg is the one-shot completion signal for a tkn invocation. It
// is produced by a tea.Cmd, so delivery always happens on the update loop
// no matter which goroutine observed the process exit.
type appendDoneMsg struct {
	target  string
	outcome runner.Outcome
}

// flashClearMsg expires a flash message. Stale sequence numbers are ignored,
// so setting any newer message cancels the pending clear.
type flashClearMsg struct {
	seq int
}

type clipboardMsg struct {
	text string
	err  error
}

type Model struct {
	state *state.State

	input textinput.Model
	keys  *keyMap
	list  listview.Model

	all      []notebook.Notebook
	filtered []notebook.Notebook

	message        string
	messageIsError bool
	flashSeq       int

	pending bool
	result  string

	clip string

	preview      string
	previewCache *cache.LRUCache
	showPreview  bool

	width  int
	height int
}

func NewModel(s *state.State) Model {
	input := textinput.New()
	input.Placeholder = "Filter notebooks"
	input.Prompt = "> "
	// The search field owns focus for the whole session.
	input.Focus()

	all := s.Provider.Load()

	m := Model{
		state:        s,
		input:        input,
		keys:         newKeyMap(),
		all:          all,
		filtered:     all,
		previewCache: cache.NewLRUCache(previewCacheSize),
	}
	m.list = listview.New(noteRows(m.filtered), defaultListHeight)
	return m
}

// Result returns the name of the notebook that received the append, or ""
// when the session ended without one.
func (m Model) Result() string {
	return m.result
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, readClipboard(m.state.Clipboard))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		_, v := appStyle.GetFrameSize()
		m.list.SetHeight(msg.Height - v - chromeRows)
		m.refreshPreview()
		return m, nil

	case clipboardMsg:
		if msg.err == nil {
			m.clip = firstLine(msg.text)
		}
		return m, nil

	case appendDoneMsg:
		return m.handleAppendDone(msg)

	case flashClearMsg:
		if msg.seq == m.flashSeq {
			m.message = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey routes keys before the search field sees them, so quick-select
// and the other shortcuts work regardless of input focus.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.quickSelect):
		return m.quickSelect(quickSelectIndex(msg.String()))

	case key.Matches(msg, m.keys.confirm):
		return m.confirmSelection()

	case key.Matches(msg, m.keys.cursorUp):
		m.list.CursorUp()
		m.refreshPreview()
		return m, nil

	case key.Matches(msg, m.keys.cursorDown):
		m.list.CursorDown()
		m.refreshPreview()
		return m, nil

	case key.Matches(msg, m.keys.defaultAppend):
		return m.startDefaultAppend()

	case key.Matches(msg, m.keys.reload):
		return m.reload()

	case key.Matches(msg, m.keys.togglePreview):
		m.showPreview = !m.showPreview
		m.refreshPreview()
		return m, nil
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.applyFilter()
		m.refreshPreview()
	}
	return m, cmd
}

// applyFilter recomputes the filtered view from the current query. The list
// cursor lands on the first match whenever the result is non-empty.
func (m *Model) applyFilter() {
	m.filtered = notebook.Filter(m.all, m.input.Value())
	m.list.SetSource(noteRows(m.filtered))
}

func (m Model) quickSelect(index int) (tea.Model, tea.Cmd) {
	if index < 0 || index >= len(m.filtered) {
		return m, bell()
	}
	m.list.Select(index)
	return m.confirmSelection()
}

func (m Model) confirmSelection() (tea.Model, tea.Cmd) {
	if m.pending {
		return m, bell()
	}
	cursor := m.list.Cursor()
	if cursor < 0 || cursor >= len(m.filtered) {
		return m, bell()
	}
	name := m.filtered[cursor].Name
	return m.startAppend(name, name)
}

func (m Model) startDefaultAppend() (tea.Model, tea.Cmd) {
	if m.pending {
		return m, bell()
	}
	label := m.state.Config.DefaultNotebook
	if label == "" {
		label = "the default notebook"
	}
	return m.startAppend(label)
}

// startAppend launches tkn asynchronously. With no args the tool targets
// its default notebook. The session keeps running; only the completion
// message may end it.
func (m Model) startAppend(label string, args ...string) (tea.Model, tea.Cmd) {
	m.pending = true
	m.setMessage(fmt.Sprintf("Appending to %s…", label), false)

	r := m.state.Runner
	return m, func() tea.Msg {
		return appendDoneMsg{target: label, outcome: r.Run(args...)}
	}
}

func (m Model) handleAppendDone(msg appendDoneMsg) (tea.Model, tea.Cmd) {
	m.pending = false
	if msg.outcome.OK {
		m.result = msg.target
		return m, tea.Quit
	}
	m.setMessage(msg.outcome.Message, true)
	return m, bell()
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	m.all = m.state.Provider.Load()
	// Notebook contents may have changed on disk along with the listing.
	m.previewCache = cache.NewLRUCache(previewCacheSize)
	m.applyFilter()
	m.refreshPreview()
	return m, m.setFlash(fmt.Sprintf("Loaded %d notebooks", len(m.all)))
}

// setMessage replaces the message area. Bumping the sequence cancels any
// flash clear still in flight.
func (m *Model) setMessage(text string, isError bool) {
	m.message = text
	m.messageIsError = isError
	m.flashSeq++
}

// setFlash sets a message that clears itself after flashDuration.
func (m *Model) setFlash(text string) tea.Cmd {
	m.setMessage(text, false)
	seq := m.flashSeq
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashClearMsg{seq: seq}
	})
}

func (m *Model) refreshPreview() {
	if !m.showPreview {
		m.preview = ""
		return
	}
	cursor := m.list.Cursor()
	if cursor < 0 || cursor >= len(m.filtered) {
		m.preview = "No notebook selected"
		return
	}

	path := m.state.Provider.Path(m.filtered[cursor].Name)
	width := m.previewWidth()
	// Renders are wrap-width specific, so a resize must miss the cache.
	key := fmt.Sprintf("%d|%s", width, path)
	if cached, ok := m.previewCache.Get(key); ok {
		m.preview = cached
		return
	}

	rendered := utils.RenderMarkdownPreview(path, width)
	if meta, err := notebook.ReadMeta(path); err == nil {
		header := fmt.Sprintf("%d entries · %s", meta.Entries, meta.ModTime.Format("2006-01-02"))
		rendered = clipStyle.Render(header) + "\n" + rendered
	}
	m.previewCache.Put(key, rendered)
	m.preview = rendered
}

func (m Model) previewWidth() int {
	w := m.width / 2
	if w <= 0 {
		w = 40
	}
	return w
}

// bell emits the audible failure cue. No message text accompanies it.
func bell() tea.Cmd {
	return func() tea.Msg {
		fmt.Fprint(os.Stderr, "\a")
		return nil
	}
}

func readClipboard(read state.ClipboardReader) tea.Cmd {
	return func() tea.Msg {
		if read == nil {
			return clipboardMsg{}
		}
		text, err := read()
		return clipboardMsg{text: text, err: err}
	}
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	const max = 48
	if utf8.RuneCountInString(line) > max {
		runes := []rune(line)
		return string(runes[:max]) + "…"
	}
	return line
}

// Run shows the picker and blocks until the session ends, reporting a
// successful append on stdout afterwards.
func Run(s *state.State) error {
	if original, err := term.GetState(int(os.Stdin.Fd())); err == nil {
		defer term.Restore(int(os.Stdin.Fd()), original)
	}

	lipgloss.SetColorProfile(termenv.ColorProfile())

	final, err := tea.NewProgram(NewModel(s), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("running picker: %w", err)
	}

	if m, ok := final.(Model); ok && m.Result() != "" {
		fmt.Printf("Captured clipboard into %s.\n", m.Result())
	}
	return nil
}
