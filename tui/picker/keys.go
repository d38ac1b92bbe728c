package picker

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	confirm       key.Binding
	quit          key.Binding
	cursorUp      key.Binding
	cursorDown    key.Binding
	quickSelect   key.Binding
	defaultAppend key.Binding
	reload        key.Binding
	togglePreview key.Binding
}

func newKeyMap() *keyMap {
	return &keyMap{
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "append"),
		),
		quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		cursorUp: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		cursorDown: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		quickSelect: key.NewBinding(
			key.WithKeys(
				"alt+1", "alt+2", "alt+3", "alt+4", "alt+5",
				"alt+6", "alt+7", "alt+8", "alt+9", "alt+0",
			),
			key.WithHelp("alt+1…0", "quick append"),
		),
		defaultAppend: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "append to default"),
		),
		reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
		),
		togglePreview: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "preview"),
		),
	}
}

// quickSelectIndex maps a quick-select key to its positional index: digits
// 1-9 address rows 0-8, 0 addresses row 9. Anything else is -1.
func quickSelectIndex(keyString string) int {
	const prefix = "alt+"
	if len(keyString) != len(prefix)+1 || keyString[:len(prefix)] != prefix {
		return -1
	}
	digit := keyString[len(prefix)]
	switch {
	case digit == '0':
		return 9
	case digit >= '1' && digit <= '9':
		return int(digit - '1')
	}
	return -1
}
