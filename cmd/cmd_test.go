package cmd

import (
	"strings"
	"testing"

	"github.com/ionut-t/tino/internal/version"
	"github.com/ionut-t/tino/pkg/note"
	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	entries := []note.Entry{
		note.NewEntry(note.Todo, "buy milk.md", "/para/todos/buy milk.md"),
		note.NewEntry(note.Idea, "app.md", "/para/ideas/app.md"),
	}

	out := renderTable(entries)
	lines := strings.Split(strings.TrimSpace(out), "\n")

	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "TYPE")
	assert.Contains(t, lines[1], "TODO")
	assert.Contains(t, lines[1], "buy milk.md")
	assert.Contains(t, lines[2], "/para/ideas/app.md")
}

func TestParseType(t *testing.T) {
	tests := []struct {
		input string
		want  note.Type
		ok    bool
	}{
		{"todo", note.Todo, true},
		{"ideas", note.Idea, true},
		{"note", note.Note, true},
		{"academic", note.AcademicNote, true},
		{"projects", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseType(tt.input)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFilterByType(t *testing.T) {
	entries := []note.Entry{
		note.NewEntry(note.Todo, "a.md", "/t/a.md"),
		note.NewEntry(note.Idea, "b.md", "/i/b.md"),
		note.NewEntry(note.Todo, "c.md", "/t/c.md"),
	}

	got := filterByType(entries, note.Todo)

	assert.Len(t, got, 2)
	for _, e := range got {
		assert.Equal(t, note.Todo, e.Type)
	}
}

func TestVersionText(t *testing.T) {
	out := versionText(version.Info{Version: "v1.0.0", Commit: "abc1234", Date: "01/02/2025"})

	assert.Contains(t, out, "v1.0.0")
	assert.Contains(t, out, "abc1234")
	assert.Contains(t, out, "Release date")
}

func TestOpenInEditorWithoutEditor(t *testing.T) {
	assert.ErrorIs(t, openInEditor("  ", "/tmp/a.md"), errNoEditor)
}
