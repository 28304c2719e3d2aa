package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ionut-t/tino/pkg/note"
	"github.com/ionut-t/tino/store/notes"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	configFileName = ".tino.toml"
	envConfigPath  = "TINO_CONFIG"
)

const (
	EditorKey          = "editor"
	CollisionPolicyKey = "collision_policy"
	IgnoreKey          = "ignore"
	DirsKey            = "tino_dirs"
)

var (
	ErrConfigDirNotFound = errors.New("configuration directory not found")
	ErrConfigNotFound    = errors.New("config file not found")
	ErrInvalidConfig     = errors.New("invalid config file")
)

type Config struct {
	Dirs            note.Directories
	Editor          string
	CollisionPolicy notes.CollisionPolicy
	Ignore          []string

	path string
}

// Path returns the file the config was loaded from.
func (c Config) Path() string {
	return c.path
}

// GetEditor returns the configured editor, falling back to $EDITOR and then a platform default.
func (c Config) GetEditor() string {
	if c.Editor != "" {
		return c.Editor
	}

	return getDefaultEditor()
}

func getDefaultEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	if os.Getenv("WINDIR") != "" {
		return "notepad"
	}

	return "vim"
}

// DefaultPath returns $TINO_CONFIG, or .tino.toml in the user config directory.
func DefaultPath() (string, error) {
	if path := os.Getenv(envConfigPath); path != "" {
		return path, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfigDirNotFound, err)
	}

	return filepath.Join(dir, configFileName), nil
}

// Load reads and validates the config file at path.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	dirs := note.Directories{}
	for _, t := range note.Types {
		raw := v.GetString(DirsKey + "." + t.ConfigKey())
		if raw == "" {
			continue
		}

		dir, err := homedir.Expand(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, t.ConfigKey(), err)
		}

		dirs[t] = dir
	}

	if err := dirs.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	policy, err := notes.ParseCollisionPolicy(v.GetString(CollisionPolicyKey))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return Config{
		Dirs:            dirs,
		Editor:          v.GetString(EditorKey),
		CollisionPolicy: policy,
		Ignore:          v.GetStringSlice(IgnoreKey),
		path:            path,
	}, nil
}

// Set writes a single top level key to the config file at path.
func Set(path, key string, value any) error {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	v.Set(key, value)

	return v.WriteConfig()
}

// Write creates the config file at path with the given directories.
// Missing parent directories are created.
func Write(path string, dirs note.Directories, editor string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	v := newViper(path)

	for _, t := range note.Types {
		if dir, ok := dirs.Dir(t); ok {
			v.Set(DirsKey+"."+t.ConfigKey(), dir)
		}
	}

	if editor != "" {
		v.Set(EditorKey, editor)
	}

	v.Set(CollisionPolicyKey, string(notes.DefaultCollisionPolicy))

	return v.WriteConfigAs(path)
}

// EnsureDirs creates the configured directories that do not exist yet.
func EnsureDirs(dirs note.Directories) error {
	for _, t := range note.Types {
		dir, ok := dirs.Dir(t)
		if !ok {
			continue
		}

		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	return nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	return v
}
