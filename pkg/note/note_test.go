package note

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestNewEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		noteType Type
		path     string
		expected string
	}{
		{"todo", Todo, "/tmp/todos/buy milk.md", "TODO | buy milk.md"},
		{"idea", Idea, "/tmp/ideas/a.md", "IDEA | a.md"},
		{"note", Note, "/tmp/notes/b.md", "NOTE | b.md"},
		{"academic note", AcademicNote, "/tmp/acad/c.md", "ACAD. NOTE | c.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := NewEntry(tt.noteType, filepath.Base(tt.path), tt.path)

			if entry.Label != tt.expected {
				t.Errorf("Expected label %q, got %q", tt.expected, entry.Label)
			}

			if entry.Name != filepath.Base(tt.path) {
				t.Errorf("Expected name %q, got %q", filepath.Base(tt.path), entry.Name)
			}

			if entry.Path != tt.path {
				t.Errorf("Expected path %q, got %q", tt.path, entry.Path)
			}

			if entry.Type != tt.noteType {
				t.Errorf("Expected type %v, got %v", tt.noteType, entry.Type)
			}
		})
	}
}

func TestDirectoriesValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dirs    Directories
		wantErr error
	}{
		{
			name: "complete mapping",
			dirs: Directories{Todo: "/a", Idea: "/b", Note: "/c", AcademicNote: "/d"},
		},
		{
			name:    "missing type",
			dirs:    Directories{Todo: "/a", Idea: "/b", Note: "/c"},
			wantErr: ErrMissingDirectory,
		},
		{
			name:    "empty directory",
			dirs:    Directories{Todo: "/a", Idea: "", Note: "/c", AcademicNote: "/d"},
			wantErr: ErrMissingDirectory,
		},
		{
			name:    "shared directory",
			dirs:    Directories{Todo: "/a", Idea: "/b", Note: "/a/", AcademicNote: "/d"},
			wantErr: ErrDuplicateDirectory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dirs.Validate()

			if tt.wantErr == nil && err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTypeMetadata(t *testing.T) {
	t.Parallel()

	keys := map[string]bool{}
	for _, nt := range Types {
		if nt.ConfigKey() == "" || nt.Tag() == "?" {
			t.Errorf("Type %v is missing metadata", nt)
		}
		keys[nt.ConfigKey()] = true
	}

	if len(keys) != len(Types) {
		t.Errorf("Expected %d distinct config keys, got %d", len(Types), len(keys))
	}
}
