package app

import (
	"errors"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/ionut-t/tino/pkg/focus"
	"github.com/ionut-t/tino/pkg/note"
)

const PreviewPlaceholder = "File preview"

var ErrNotSelectedFile = errors.New("no TINO file selected")

// Preview is the content shown in the preview pane.
type Preview struct {
	Content string
	Offset  int
}

// State is everything the view needs to paint a frame.
// It is only changed by Update.
type State struct {
	Running    bool
	Active     focus.Field
	OpenEditor bool

	Input      textinput.Model
	Types      focus.List[note.Type]
	Categories focus.List[note.Category]
	Files      focus.List[note.Entry]
	Preview    Preview

	// Err is the error of the last action, cleared by the next input event.
	Err error
	// Status is the outcome of the last successful action.
	Status string

	Dirs note.Directories
}

// NewState returns the initial state with the given listing.
func NewState(dirs note.Directories, entries []note.Entry) State {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "Name of the new note"
	input.Cursor.SetMode(cursor.CursorStatic)
	// Update has no way to run the clipboard read behind ctrl+v.
	// Terminal paste still arrives as runes.
	input.KeyMap.Paste.SetEnabled(false)
	input.Focus()

	return State{
		Running:    true,
		Active:     focus.NameInput,
		Input:      input,
		Types:      focus.NewList(note.Types),
		Categories: focus.NewList(note.Categories),
		Files:      focus.NewList(entries),
		Preview:    Preview{Content: PreviewPlaceholder},
		Dirs:       dirs,
	}
}

// SelectedFile returns the path of the selected listing entry.
func (s State) SelectedFile() (string, error) {
	entry, ok := s.Files.Selected()
	if !ok {
		return "", ErrNotSelectedFile
	}

	return entry.Path, nil
}

// EditorTarget returns the file to open once the run loop has ended,
// or "" when no editor was requested.
func (s State) EditorTarget() (string, error) {
	if !s.OpenEditor {
		return "", nil
	}

	return s.SelectedFile()
}

func (s *State) setActive(f focus.Field) {
	s.Active = f

	if f == focus.NameInput {
		s.Input.Focus()
		return
	}

	s.Input.Blur()
}
