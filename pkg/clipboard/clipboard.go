package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var ErrUnsupported = errors.New("clipboard is not available on this system")

// Write copies text to the system clipboard.
func Write(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}

	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	return nil
}
