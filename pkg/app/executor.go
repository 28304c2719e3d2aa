package app

import (
	"io"
	"time"

	"github.com/ionut-t/tino/pkg/naming"
	"github.com/ionut-t/tino/pkg/note"
	"github.com/ionut-t/tino/store/notes"
	"github.com/sirupsen/logrus"
)

// Scanner returns a fresh listing of every configured directory.
type Scanner func() ([]note.Entry, error)

// Executor performs the I/O behind effects, synchronously.
type Executor struct {
	Store     notes.Store
	Scan      Scanner
	Clipboard func(text string) error
	Now       func() time.Time
	Log       logrus.FieldLogger
}

// Run performs effect and returns the event reporting its outcome,
// or nil when the effect has nothing to report.
func (e Executor) Run(effect Effect) Event {
	log := e.logger()

	switch effect := effect.(type) {
	case CreateFileEffect:
		name, err := naming.Generate(effect.Text, effect.Category, e.now())
		if err != nil {
			log.WithError(err).Warn("could not name note")
			return FailedEvent{Err: err}
		}

		path, err := e.Store.Create(effect.Dir, name)
		if err != nil {
			log.WithError(err).WithField("dir", effect.Dir).Warn("could not create note")
			return FailedEvent{Err: err}
		}

		log.WithFields(logrus.Fields{"effect": "create", "type": effect.Type.String(), "path": path}).Info("note created")
		return FileCreatedEvent{Path: path}

	case RescanEffect:
		entries, err := e.Scan()
		if err != nil {
			log.WithError(err).Warn("rescan failed, keeping previous listing")
			return FailedEvent{Err: err}
		}

		log.WithFields(logrus.Fields{"effect": "rescan", "entries": len(entries)}).Debug("listing refreshed")
		return ListingEvent{Entries: entries}

	case LoadPreviewEffect:
		content, err := e.Store.Read(effect.Path)
		if err != nil {
			log.WithError(err).WithField("path", effect.Path).Warn("could not load preview")
			return FailedEvent{Err: err}
		}

		log.WithFields(logrus.Fields{"effect": "preview", "path": effect.Path}).Debug("preview loaded")
		return PreviewLoadedEvent{Content: content}

	case CopyPathEffect:
		if e.Clipboard == nil {
			return nil
		}

		if err := e.Clipboard(effect.Path); err != nil {
			log.WithError(err).Warn("could not copy path")
			return FailedEvent{Err: err}
		}

		return PathCopiedEvent{Path: effect.Path}

	case LaunchEditorEffect:
		log.WithFields(logrus.Fields{"effect": "editor", "path": effect.Path}).Debug("editor requested")

	case QuitEffect:
		log.WithField("effect", "quit").Debug("quit requested")
	}

	return nil
}

func (e Executor) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}

	return e.Now()
}

func (e Executor) logger() logrus.FieldLogger {
	if e.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		return l
	}

	return e.Log
}
