package app

import (
	"fmt"
	"math"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/tino/pkg/focus"
)

// Update is the transition function of the application. It never performs I/O:
// work is returned as effects, whose results come back as events.
func Update(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case FileCreatedEvent:
		s.Input.Reset()
		s.Status = "Created " + filepath.Base(ev.Path)
		return s, []Effect{RescanEffect{}}

	case ListingEvent:
		s.Files.SetItems(ev.Entries)
		return s, nil

	case PreviewLoadedEvent:
		s.Preview = Preview{Content: ev.Content}
		return s, nil

	case PathCopiedEvent:
		s.Status = "Copied " + ev.Path
		return s, nil

	case FailedEvent:
		s.Err = ev.Err
		return s, nil
	}

	s.Err = nil
	s.Status = ""

	switch ev := ev.(type) {
	case QuitEvent:
		s.Running = false
		return s, []Effect{QuitEffect{}}

	case CycleFocusEvent:
		s.setActive(s.Active.Next())
		return s, nil

	case FocusEvent:
		s.setActive(ev.Field)
		return s, nil

	case RescanEvent:
		return s, []Effect{RescanEffect{}}

	case DownEvent:
		return move(s, ev.Key, 1)

	case UpEvent:
		return move(s, ev.Key, -1)

	case CommitEvent:
		return commit(s)

	case PreviewEvent:
		if s.Active == focus.NameInput {
			return edit(s, ev.Key)
		}

		if s.Active != focus.FileList {
			return s, nil
		}

		path, err := s.SelectedFile()
		if err != nil {
			s.Err = err
			return s, nil
		}

		return s, []Effect{LoadPreviewEffect{Path: path}}

	case CopyPathEvent:
		if s.Active == focus.NameInput {
			return edit(s, ev.Key)
		}

		if s.Active != focus.FileList {
			return s, nil
		}

		path, err := s.SelectedFile()
		if err != nil {
			s.Err = err
			return s, nil
		}

		return s, []Effect{CopyPathEffect{Path: path}}

	case KeyEvent:
		if s.Active == focus.NameInput {
			return edit(s, ev.Key)
		}

		return s, nil
	}

	return s, nil
}

func move(s State, key tea.KeyMsg, delta int) (State, []Effect) {
	switch s.Active {
	case focus.NameInput:
		return edit(s, key)

	case focus.TypeList:
		step(&s.Types, delta)

	case focus.CategoryList:
		step(&s.Categories, delta)

	case focus.FileList:
		step(&s.Files, delta)

	case focus.Preview:
		s.Preview.Offset = scroll(s.Preview.Offset, delta)
	}

	return s, nil
}

type cyclic interface {
	Next()
	Previous()
}

func step(l cyclic, delta int) {
	if delta > 0 {
		l.Next()
		return
	}

	l.Previous()
}

// scroll moves the offset by delta, saturating at 0 and math.MaxInt.
func scroll(offset, delta int) int {
	switch {
	case delta < 0 && offset < -delta:
		return 0
	case delta > 0 && offset > math.MaxInt-delta:
		return math.MaxInt
	}

	return offset + delta
}

func commit(s State) (State, []Effect) {
	switch s.Active {
	case focus.NameInput:
		t, ok := s.Types.Selected()
		if !ok {
			return s, nil
		}

		dir, ok := s.Dirs.Dir(t)
		if !ok {
			s.Err = fmt.Errorf("no directory configured for %s", t)
			return s, nil
		}

		effect := CreateFileEffect{
			Type: t,
			Dir:  dir,
			Text: s.Input.Value(),
		}

		if c, ok := s.Categories.Selected(); ok {
			effect.Category = &c
		}

		return s, []Effect{effect}

	case focus.FileList:
		s.OpenEditor = true
		s.Running = false

		path, _ := s.SelectedFile()
		return s, []Effect{LaunchEditorEffect{Path: path}}
	}

	return s, nil
}

func edit(s State, key tea.KeyMsg) (State, []Effect) {
	s.Input, _ = s.Input.Update(key)
	return s, nil
}
