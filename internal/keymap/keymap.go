package keymap

import "github.com/charmbracelet/bubbles/key"

var Quit = key.NewBinding(
	key.WithKeys("esc"),
	key.WithHelp("esc", "quit"),
)

var CycleFocus = key.NewBinding(
	key.WithKeys("tab"),
	key.WithHelp("tab", "focus next field"),
)

var FocusName = key.NewBinding(
	key.WithKeys("ctrl+n"),
	key.WithHelp("ctrl+n", "focus file name"),
)

var FocusType = key.NewBinding(
	key.WithKeys("ctrl+t"),
	key.WithHelp("ctrl+t", "focus note type"),
)

var FocusCategory = key.NewBinding(
	key.WithKeys("ctrl+c"),
	key.WithHelp("ctrl+c", "focus PARA category"),
)

var FocusFiles = key.NewBinding(
	key.WithKeys("ctrl+l"),
	key.WithHelp("ctrl+l", "focus TINO files"),
)

var FocusPreview = key.NewBinding(
	key.WithKeys("ctrl+p"),
	key.WithHelp("ctrl+p", "focus preview"),
)

var Down = key.NewBinding(
	key.WithKeys("down", "j"),
	key.WithHelp("↓ / j", "next item, scroll preview down"),
)

var Up = key.NewBinding(
	key.WithKeys("up", "k"),
	key.WithHelp("↑ / k", "previous item, scroll preview up"),
)

var Submit = key.NewBinding(
	key.WithKeys("enter"),
	key.WithHelp("enter", "create note (file name)\nopen in external editor (TINO files)"),
)

var Preview = key.NewBinding(
	key.WithKeys("v"),
	key.WithHelp("v", "preview selected file"),
)

var Copy = key.NewBinding(
	key.WithKeys("y"),
	key.WithHelp("y", "copy path of selected file to clipboard"),
)

var Refresh = key.NewBinding(
	key.WithKeys("ctrl+r"),
	key.WithHelp("ctrl+r", "rescan note directories"),
)

var Help = key.NewBinding(
	key.WithKeys("f1"),
	key.WithHelp("f1", "toggle help view"),
)

// Bindings returns every binding in the order shown by the help view.
func Bindings() []key.Binding {
	return []key.Binding{
		CycleFocus,
		FocusName,
		FocusType,
		FocusCategory,
		FocusFiles,
		FocusPreview,
		Down,
		Up,
		Submit,
		Preview,
		Copy,
		Refresh,
		Help,
		Quit,
	}
}
