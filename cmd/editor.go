package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

var errNoEditor = errors.New("no editor configured")

// openInEditor runs editor on path attached to the terminal and waits for it.
// editor may carry arguments, e.g. "code --wait".
func openInEditor(editor, path string) error {
	args := strings.Fields(editor)
	if len(args) == 0 {
		return errNoEditor
	}

	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("error opening editor %s: %w", args[0], err)
	}

	return nil
}
