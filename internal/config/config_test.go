package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ionut-t/tino/pkg/note"
	"github.com/ionut-t/tino/store/notes"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
editor = "nvim"
collision_policy = "fail"
ignore = [".DS_Store", "*.swp"]

[tino_dirs]
todos_dir = "/para/todos"
ideas_dir = "/para/ideas"
notes_dir = "/para/notes"
academic_notes_dir = "~/para/academic"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".tino.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, validConfig)

	cfg, err := Load(path)
	require.NoError(t, err)

	home, err := homedir.Dir()
	require.NoError(t, err)

	assert.Equal(t, note.Directories{
		note.Todo:         "/para/todos",
		note.Idea:         "/para/ideas",
		note.Note:         "/para/notes",
		note.AcademicNote: filepath.Join(home, "para", "academic"),
	}, cfg.Dirs)
	assert.Equal(t, "nvim", cfg.Editor)
	assert.Equal(t, "nvim", cfg.GetEditor())
	assert.Equal(t, notes.Fail, cfg.CollisionPolicy)
	assert.Equal(t, []string{".DS_Store", "*.swp"}, cfg.Ignore)
	assert.Equal(t, path, cfg.Path())
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
[tino_dirs]
todos_dir = "/a"
ideas_dir = "/b"
notes_dir = "/c"
academic_notes_dir = "/d"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, notes.DefaultCollisionPolicy, cfg.CollisionPolicy)
	assert.Empty(t, cfg.Ignore)
	assert.Empty(t, cfg.Editor)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr []error
	}{
		{
			name: "missing directory key",
			content: `
[tino_dirs]
todos_dir = "/a"
ideas_dir = "/b"
notes_dir = "/c"
`,
			wantErr: []error{ErrInvalidConfig, note.ErrMissingDirectory},
		},
		{
			name: "shared directory",
			content: `
[tino_dirs]
todos_dir = "/a"
ideas_dir = "/a"
notes_dir = "/c"
academic_notes_dir = "/d"
`,
			wantErr: []error{ErrInvalidConfig, note.ErrDuplicateDirectory},
		},
		{
			name: "unknown collision policy",
			content: `
collision_policy = "rename"

[tino_dirs]
todos_dir = "/a"
ideas_dir = "/b"
notes_dir = "/c"
academic_notes_dir = "/d"
`,
			wantErr: []error{ErrInvalidConfig, notes.ErrInvalidCollisionPolicy},
		},
		{
			name:    "malformed toml",
			content: `[tino_dirs`,
			wantErr: []error{ErrInvalidConfig},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))

			require.Error(t, err)
			for _, target := range tt.wantErr {
				assert.ErrorIs(t, err, target)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), ".tino.toml"))

	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestWriteThenLoad(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path := filepath.Join(root, "nested", ".tino.toml")
	dirs := note.Directories{
		note.Todo:         filepath.Join(root, "todos"),
		note.Idea:         filepath.Join(root, "ideas"),
		note.Note:         filepath.Join(root, "notes"),
		note.AcademicNote: filepath.Join(root, "academic"),
	}

	require.NoError(t, Write(path, dirs, "hx"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, dirs, cfg.Dirs)
	assert.Equal(t, "hx", cfg.Editor)
	assert.Equal(t, notes.DefaultCollisionPolicy, cfg.CollisionPolicy)

	require.NoError(t, Set(path, EditorKey, "nano"))

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "nano", cfg.Editor)
	assert.Equal(t, dirs, cfg.Dirs)
}

func TestEnsureDirs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dirs := note.Directories{
		note.Todo: filepath.Join(root, "a", "todos"),
		note.Idea: filepath.Join(root, "ideas"),
	}

	require.NoError(t, EnsureDirs(dirs))

	for _, dir := range dirs {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestGetEditorFallback(t *testing.T) {
	t.Setenv("EDITOR", "micro")

	assert.Equal(t, "micro", Config{}.GetEditor())
	assert.Equal(t, "nvim", Config{Editor: "nvim"}.GetEditor())

	t.Setenv("EDITOR", "")
	t.Setenv("WINDIR", "")
	assert.Equal(t, "vim", Config{}.GetEditor())
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(envConfigPath, "/tmp/custom.toml")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.toml", path)
}
