package notes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ionut-t/tino/pkg/naming"
)

// CollisionPolicy decides what Create does when the target file already exists.
type CollisionPolicy string

const (
	// Overwrite truncates the existing file.
	Overwrite CollisionPolicy = "overwrite"
	// Fail returns ErrFileExists.
	Fail CollisionPolicy = "fail"
	// Suffix picks the first free "name (n).md".
	Suffix CollisionPolicy = "suffix"
)

const DefaultCollisionPolicy = Suffix

// maxSuffix bounds the search for a free suffixed name.
const maxSuffix = 1000

var (
	ErrReadFileFailed         = errors.New("failed to read note")
	ErrFileExists             = errors.New("note already exists")
	ErrOutsideDirectory       = errors.New("note would be created outside its directory")
	ErrInvalidCollisionPolicy = errors.New("invalid collision policy")
)

// ParseCollisionPolicy converts a config value into a policy. An empty value yields the default.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch p := CollisionPolicy(s); p {
	case "":
		return DefaultCollisionPolicy, nil
	case Overwrite, Fail, Suffix:
		return p, nil
	}

	return "", fmt.Errorf("%w: %q (expected overwrite, fail or suffix)", ErrInvalidCollisionPolicy, s)
}

type Store interface {
	Create(dir, name string) (string, error) // Create creates an empty note and returns its path
	Read(path string) (string, error)        // Read returns the full content of a note
}

func New(policy CollisionPolicy) Store {
	if policy == "" {
		policy = DefaultCollisionPolicy
	}

	return &store{policy: policy}
}

type store struct {
	policy CollisionPolicy
}

func (s *store) Create(dir, name string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	dir = resolved

	path := filepath.Join(dir, name)
	if filepath.Dir(path) != dir || filepath.Base(path) != name {
		return "", fmt.Errorf("%w: %q", ErrOutsideDirectory, name)
	}

	flags := os.O_RDWR | os.O_CREATE | os.O_TRUNC

	switch s.policy {
	case Fail:
		flags = os.O_RDWR | os.O_CREATE | os.O_EXCL
	case Suffix:
		path, err = s.freePath(dir, name)
		if err != nil {
			return "", err
		}
		flags = os.O_RDWR | os.O_CREATE | os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrFileExists, path)
		}

		return "", fmt.Errorf("failed to create note: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to create note: %w", err)
	}

	return path, nil
}

func (s *store) freePath(dir, name string) (string, error) {
	candidate := filepath.Join(dir, name)

	for n := 1; n <= maxSuffix; n++ {
		if _, err := os.Lstat(candidate); errors.Is(err, os.ErrNotExist) {
			return candidate, nil
		} else if err != nil {
			return "", fmt.Errorf("failed to create note: %w", err)
		}

		candidate = filepath.Join(dir, naming.WithSuffix(name, n))
	}

	return "", fmt.Errorf("%w: %s", ErrFileExists, filepath.Join(dir, name))
}

func (s *store) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadFileFailed, err)
	}

	return string(data), nil
}
