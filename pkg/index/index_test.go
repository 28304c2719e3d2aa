package index

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ionut-t/tino/pkg/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDirs(t *testing.T, files map[note.Type][]string) note.Directories {
	t.Helper()

	root := t.TempDir()
	dirs := note.Directories{}

	for _, nt := range note.Types {
		dir := filepath.Join(root, nt.ConfigKey())
		require.NoError(t, os.MkdirAll(dir, 0755))

		for _, name := range files[nt] {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
		}

		dirs[nt] = dir
	}

	return dirs
}

func labels(entries []note.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Label)
	}
	return out
}

func TestScan(t *testing.T) {
	t.Parallel()

	dirs := setupDirs(t, map[note.Type][]string{
		note.Todo:         {"groceries.md"},
		note.Note:         {"a.md", "b.md"},
		note.AcademicNote: {"thesis.md"},
	})

	entries, err := Scan(dirs)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, note.Todo, entries[0].Type)
	assert.Equal(t, "TODO | groceries.md", entries[0].Label)

	assert.Equal(t, note.Note, entries[1].Type)
	assert.Equal(t, note.Note, entries[2].Type)
	assert.ElementsMatch(t, []string{"NOTE | a.md", "NOTE | b.md"}, labels(entries[1:3]))

	assert.Equal(t, note.AcademicNote, entries[3].Type)
	assert.Equal(t, "ACAD. NOTE | thesis.md", entries[3].Label)

	for _, e := range entries {
		assert.True(t, filepath.IsAbs(e.Path), "path %s should be absolute", e.Path)

		expected, err := filepath.EvalSymlinks(filepath.Join(dirs[e.Type], filepath.Base(e.Path)))
		require.NoError(t, err)
		assert.Equal(t, expected, e.Path)
	}
}

func TestScanEmptyDirectories(t *testing.T) {
	t.Parallel()

	entries, err := Scan(setupDirs(t, nil))

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestScanIsNotRecursive(t *testing.T) {
	t.Parallel()

	dirs := setupDirs(t, nil)
	nested := filepath.Join(dirs[note.Idea], "nested")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "deep.md"), nil, 0644))

	entries, err := Scan(dirs)

	require.NoError(t, err)
	assert.Equal(t, []string{"IDEA | nested"}, labels(entries))
}

func TestScanUnreadableDirectory(t *testing.T) {
	t.Parallel()

	dirs := setupDirs(t, map[note.Type][]string{
		note.Todo: {"a.md"},
		note.Idea: {"b.md"},
		note.Note: {"c.md"},
	})
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	dirs[note.AcademicNote] = missing

	entries, err := Scan(dirs)

	require.Error(t, err)
	assert.Nil(t, entries)
	assert.ErrorIs(t, err, ErrDirCouldNotBeRead)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var scanErr *ScanError
	require.True(t, errors.As(err, &scanErr))
	assert.Equal(t, missing, scanErr.Dir)
}

func TestScanMissingMapping(t *testing.T) {
	t.Parallel()

	dirs := setupDirs(t, nil)
	delete(dirs, note.Idea)

	entries, err := Scan(dirs)

	assert.Nil(t, entries)
	assert.ErrorIs(t, err, ErrDirCouldNotBeRead)
	assert.ErrorIs(t, err, note.ErrMissingDirectory)
}

func TestScanWithIgnore(t *testing.T) {
	t.Parallel()

	dirs := setupDirs(t, map[note.Type][]string{
		note.Todo: {"keep.md", ".DS_Store", "draft.md.swp"},
	})

	entries, err := Scan(dirs, WithIgnore(".DS_Store", "*.swp"))

	require.NoError(t, err)
	assert.Equal(t, []string{"TODO | keep.md"}, labels(entries))
}

func TestScanKeepsDanglingSymlink(t *testing.T) {
	t.Parallel()

	dirs := setupDirs(t, map[note.Type][]string{
		note.Todo: {"a.md"},
	})

	link := filepath.Join(dirs[note.Todo], "broken.md")
	require.NoError(t, os.Symlink(filepath.Join(t.TempDir(), "gone.md"), link))

	entries, err := Scan(dirs)

	require.NoError(t, err)
	assert.Equal(t, []string{"TODO | a.md", "TODO | broken.md"}, labels(entries))
	assert.Equal(t, "broken.md", filepath.Base(entries[1].Path))
	assert.True(t, filepath.IsAbs(entries[1].Path))
}
