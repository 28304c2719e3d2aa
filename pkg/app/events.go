package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/tino/pkg/focus"
	"github.com/ionut-t/tino/pkg/note"
)

// Event is an input to Update: either a user action or the result of an effect.
type Event interface {
	isEvent()
}

// User actions. Actions that can also be typed as text carry the key that produced them,
// so it can be forwarded to the name input when that field is focused.
type (
	QuitEvent       struct{}
	CycleFocusEvent struct{}
	RescanEvent     struct{}

	FocusEvent struct {
		Field focus.Field
	}

	DownEvent struct {
		Key tea.KeyMsg
	}

	UpEvent struct {
		Key tea.KeyMsg
	}

	CommitEvent struct {
		Key tea.KeyMsg
	}

	PreviewEvent struct {
		Key tea.KeyMsg
	}

	CopyPathEvent struct {
		Key tea.KeyMsg
	}

	// KeyEvent is any other key.
	KeyEvent struct {
		Key tea.KeyMsg
	}
)

// Effect results.
type (
	FileCreatedEvent struct {
		Path string
	}

	ListingEvent struct {
		Entries []note.Entry
	}

	PreviewLoadedEvent struct {
		Content string
	}

	PathCopiedEvent struct {
		Path string
	}

	FailedEvent struct {
		Err error
	}
)

func (QuitEvent) isEvent()          {}
func (CycleFocusEvent) isEvent()    {}
func (RescanEvent) isEvent()        {}
func (FocusEvent) isEvent()         {}
func (DownEvent) isEvent()          {}
func (UpEvent) isEvent()            {}
func (CommitEvent) isEvent()        {}
func (PreviewEvent) isEvent()       {}
func (CopyPathEvent) isEvent()      {}
func (KeyEvent) isEvent()           {}
func (FileCreatedEvent) isEvent()   {}
func (ListingEvent) isEvent()       {}
func (PreviewLoadedEvent) isEvent() {}
func (PathCopiedEvent) isEvent()    {}
func (FailedEvent) isEvent()        {}

// Effect is work requested by Update and carried out by an Executor.
type Effect interface {
	isEffect()
}

type (
	// CreateFileEffect names a new note and creates it in Dir.
	CreateFileEffect struct {
		Type     note.Type
		Dir      string
		Text     string
		Category *note.Category
	}

	RescanEffect struct{}

	LoadPreviewEffect struct {
		Path string
	}

	// LaunchEditorEffect records the intent to open Path once the run loop has ended.
	LaunchEditorEffect struct {
		Path string
	}

	QuitEffect struct{}

	CopyPathEffect struct {
		Path string
	}
)

func (CreateFileEffect) isEffect()   {}
func (RescanEffect) isEffect()       {}
func (LoadPreviewEffect) isEffect()  {}
func (LaunchEditorEffect) isEffect() {}
func (QuitEffect) isEffect()         {}
func (CopyPathEffect) isEffect()     {}
