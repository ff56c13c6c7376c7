package input

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"tftlookup/internal/ui/input/modes"
	"tftlookup/internal/ui/input/types"
)

// KeyMap holds every key binding of the app
type KeyMap struct {
	modes.Bindings
	Delete key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Bindings: modes.Bindings{
			Up: key.NewBinding(
				key.WithKeys("up", "ctrl+p"),
				key.WithHelp("↑", "previous"),
			),
			Down: key.NewBinding(
				key.WithKeys("down", "ctrl+n"),
				key.WithHelp("↓", "next"),
			),
			Submit: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "show item"),
			),
			Escape: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "clear"),
			),
			Tab: key.NewBinding(
				key.WithKeys("tab"),
				key.WithHelp("tab", "accept"),
			),
			Focus: key.NewBinding(
				key.WithKeys("/", "i", "shift+tab"),
				key.WithHelp("/", "search"),
			),
			Help: key.NewBinding(
				key.WithKeys("?", "f1"),
				key.WithHelp("?", "keys"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q"),
				key.WithHelp("q", "quit"),
			),
			Force: key.NewBinding(
				key.WithKeys("ctrl+c"),
				key.WithHelp("ctrl+c", "quit"),
			),
		},
		Delete: key.NewBinding(
			key.WithKeys("backspace", "delete", "ctrl+h", "ctrl+w", "ctrl+u", "alt+backspace"),
		),
	}
}

// modeKeys adapts a list of bindings to help.KeyMap
type modeKeys []key.Binding

func (k modeKeys) ShortHelp() []key.Binding  { return k }
func (k modeKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

// HelpFor returns the bindings worth showing in mode
func (k KeyMap) HelpFor(mode types.Mode) help.KeyMap {
	if mode == types.ModeBrowse {
		return modeKeys{k.Focus, k.Help, k.Quit}
	}
	return modeKeys{k.Up, k.Down, k.Submit, k.Tab, k.Escape, k.Force}
}
