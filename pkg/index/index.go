package index

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/ionut-t/tino/pkg/note"
)

var ErrDirCouldNotBeRead = errors.New("directory could not be read")

// ScanError reports the directory that stopped a scan.
type ScanError struct {
	Dir string
	Err error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrDirCouldNotBeRead, e.Dir, e.Err)
}

func (e *ScanError) Unwrap() []error {
	return []error{ErrDirCouldNotBeRead, e.Err}
}

type options struct {
	ignore []glob.Glob
}

type Option func(*options) error

// WithIgnore skips directory children whose names match any of the glob patterns.
func WithIgnore(patterns ...string) Option {
	return func(o *options) error {
		for _, pattern := range patterns {
			g, err := glob.Compile(pattern)
			if err != nil {
				return fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
			}

			o.ignore = append(o.ignore, g)
		}

		return nil
	}
}

func (o options) ignored(name string) bool {
	for _, g := range o.ignore {
		if g.Match(name) {
			return true
		}
	}

	return false
}

// Scan lists the immediate children of every configured directory, in note.Types order.
// If any directory cannot be read no entries are returned.
func Scan(dirs note.Directories, opts ...Option) ([]note.Entry, error) {
	var o options
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	var entries []note.Entry

	for _, t := range note.Types {
		dir, ok := dirs.Dir(t)
		if !ok {
			return nil, &ScanError{Dir: t.ConfigKey(), Err: note.ErrMissingDirectory}
		}

		found, err := scanDir(t, dir, o)
		if err != nil {
			return nil, err
		}

		entries = append(entries, found...)
	}

	return entries, nil
}

func scanDir(t note.Type, dir string, o options) ([]note.Entry, error) {
	children, err := os.ReadDir(dir)
	if err != nil {
		return nil, &ScanError{Dir: dir, Err: err}
	}

	entries := make([]note.Entry, 0, len(children))

	for _, child := range children {
		if o.ignored(child.Name()) {
			continue
		}

		path, err := canonical(filepath.Join(dir, child.Name()))
		if err != nil {
			return nil, &ScanError{Dir: dir, Err: err}
		}

		entries = append(entries, note.NewEntry(t, child.Name(), path))
	}

	return entries, nil
}

// canonical resolves symlinks in path. A child whose link target is gone
// keeps its absolute path so it stays listed.
func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if errors.Is(err, os.ErrNotExist) {
		return abs, nil
	}

	return resolved, err
}
