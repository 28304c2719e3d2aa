package naming

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ionut-t/tino/pkg/note"
)

// TimestampLayout sorts lexically in creation order.
const TimestampLayout = "2006-01-02T15:04:05"

const extension = ".md"

var (
	ErrNotSelectedCategory = errors.New("no PARA category selected")
	ErrInvalidName         = errors.New("note name cannot contain path separators")
)

// Timestamp formats now in local time using TimestampLayout.
func Timestamp(now time.Time) string {
	return now.Local().Format(TimestampLayout)
}

// Generate builds the file name of a new note.
// A nil category means the category selector has no selection, which is an error;
// note.None is a valid selection that leaves the category out of the name.
func Generate(text string, category *note.Category, now time.Time) (string, error) {
	if category == nil {
		return "", ErrNotSelectedCategory
	}

	text = strings.TrimSpace(text)
	if strings.ContainsAny(text, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, text)
	}

	ts := Timestamp(now)

	switch {
	case text == "" && *category == note.None:
		return ts + extension, nil
	case text == "":
		return fmt.Sprintf("%s - %s%s", ts, *category, extension), nil
	case *category == note.None:
		return fmt.Sprintf("%s %s%s", text, ts, extension), nil
	default:
		return fmt.Sprintf("%s %s - %s%s", text, ts, *category, extension), nil
	}
}

// WithSuffix inserts " (n)" before the extension of name.
func WithSuffix(name string, n int) string {
	base := strings.TrimSuffix(name, extension)
	ext := extension
	if base == name {
		ext = ""
	}

	return fmt.Sprintf("%s (%d)%s", base, n, ext)
}
