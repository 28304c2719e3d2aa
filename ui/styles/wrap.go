package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Wrap breaks text into lines no wider than width, preserving existing line breaks.
// Words longer than width are split.
func Wrap(width int, text string) string {
	if width <= 0 {
		return text
	}

	var out []string

	for line := range strings.SplitSeq(text, "\n") {
		if lipgloss.Width(line) <= width {
			out = append(out, line)
			continue
		}

		var current string
		for _, word := range strings.Fields(line) {
			for lipgloss.Width(word) > width {
				if current != "" {
					out = append(out, current)
					current = ""
				}

				head, tail := splitAt(word, width)
				out = append(out, head)
				word = tail
			}

			switch {
			case current == "":
				current = word
			case lipgloss.Width(current+" "+word) <= width:
				current += " " + word
			default:
				out = append(out, current)
				current = word
			}
		}

		out = append(out, current)
	}

	return strings.Join(out, "\n")
}

func splitAt(word string, width int) (string, string) {
	runes := []rune(word)
	n := 0
	w := 0

	for n < len(runes) {
		rw := lipgloss.Width(string(runes[n]))
		if w+rw > width && n > 0 {
			break
		}
		w += rw
		n++
	}

	return string(runes[:n]), string(runes[n:])
}
