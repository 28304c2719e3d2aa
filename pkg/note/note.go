package note

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Type is the kind of a note. Each type is stored in its own directory.
type Type int

const (
	Todo Type = iota
	Idea
	Note
	AcademicNote
)

// Types lists every note type in listing order.
var Types = []Type{Todo, Idea, Note, AcademicNote}

func (t Type) String() string {
	switch t {
	case Todo:
		return "Todos"
	case Idea:
		return "Ideas"
	case Note:
		return "Notes"
	case AcademicNote:
		return "Academic notes"
	}

	return fmt.Sprintf("Type(%d)", int(t))
}

// Tag is the short label shown in front of a file in the listing.
func (t Type) Tag() string {
	switch t {
	case Todo:
		return "TODO"
	case Idea:
		return "IDEA"
	case Note:
		return "NOTE"
	case AcademicNote:
		return "ACAD. NOTE"
	}

	return "?"
}

// ConfigKey is the key under [tino_dirs] holding the directory of the type.
func (t Type) ConfigKey() string {
	switch t {
	case Todo:
		return "todos_dir"
	case Idea:
		return "ideas_dir"
	case Note:
		return "notes_dir"
	case AcademicNote:
		return "academic_notes_dir"
	}

	return ""
}

// Category is a PARA category. None is a valid selection and is rendered as an empty string.
type Category string

const (
	None     Category = ""
	Project  Category = "Project"
	Area     Category = "Area"
	Resource Category = "Resource"
	Archive  Category = "Archive"
)

// Categories lists the selectable categories in display order.
var Categories = []Category{None, Project, Area, Resource, Archive}

// Entry is a row of the notes listing.
type Entry struct {
	Label string
	Name  string
	Path  string
	Type  Type
}

// NewEntry labels the file name with the tag of its type.
func NewEntry(t Type, name, path string) Entry {
	return Entry{
		Label: fmt.Sprintf("%s | %s", t.Tag(), name),
		Name:  name,
		Path:  path,
		Type:  t,
	}
}

var (
	ErrMissingDirectory   = errors.New("missing directory")
	ErrDuplicateDirectory = errors.New("directory used by more than one note type")
)

// Directories maps every note type to its storage directory.
// A valid mapping is total and injective.
type Directories map[Type]string

// Dir returns the directory configured for t.
func (d Directories) Dir(t Type) (string, bool) {
	dir, ok := d[t]
	if !ok || dir == "" {
		return "", false
	}

	return dir, true
}

// Validate checks that every type has a directory and no directory is shared.
func (d Directories) Validate() error {
	seen := make(map[string]Type, len(d))

	for _, t := range Types {
		dir, ok := d.Dir(t)
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingDirectory, t.ConfigKey())
		}

		clean := filepath.Clean(dir)
		if other, exists := seen[clean]; exists {
			return fmt.Errorf("%w: %s and %s both point to %s",
				ErrDuplicateDirectory, other.ConfigKey(), t.ConfigKey(), clean)
		}

		seen[clean] = t
	}

	return nil
}
