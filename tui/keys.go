package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/tino/internal/keymap"
	"github.com/ionut-t/tino/pkg/app"
	"github.com/ionut-t/tino/pkg/focus"
)

// toEvent translates a key press into an application event.
// Keys without a binding become KeyEvents so they can be typed into the name input.
func toEvent(msg tea.KeyMsg) app.Event {
	switch {
	case key.Matches(msg, keymap.Quit):
		return app.QuitEvent{}

	case key.Matches(msg, keymap.CycleFocus):
		return app.CycleFocusEvent{}

	case key.Matches(msg, keymap.FocusName):
		return app.FocusEvent{Field: focus.NameInput}

	case key.Matches(msg, keymap.FocusType):
		return app.FocusEvent{Field: focus.TypeList}

	case key.Matches(msg, keymap.FocusCategory):
		return app.FocusEvent{Field: focus.CategoryList}

	case key.Matches(msg, keymap.FocusFiles):
		return app.FocusEvent{Field: focus.FileList}

	case key.Matches(msg, keymap.FocusPreview):
		return app.FocusEvent{Field: focus.Preview}

	case key.Matches(msg, keymap.Refresh):
		return app.RescanEvent{}

	case key.Matches(msg, keymap.Down):
		return app.DownEvent{Key: msg}

	case key.Matches(msg, keymap.Up):
		return app.UpEvent{Key: msg}

	case key.Matches(msg, keymap.Submit):
		return app.CommitEvent{Key: msg}

	case key.Matches(msg, keymap.Preview):
		return app.PreviewEvent{Key: msg}

	case key.Matches(msg, keymap.Copy):
		return app.CopyPathEvent{Key: msg}
	}

	return app.KeyEvent{Key: msg}
}
