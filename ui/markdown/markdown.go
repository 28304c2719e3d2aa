// Package markdown renders note previews.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/tino/ui/styles"
)

type Renderer struct {
	width    int
	renderer *glamour.TermRenderer
	err      error
}

func New(width int) Renderer {
	style := "light"
	if lipgloss.HasDarkBackground() {
		style = "dark"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width, 1)),
	)

	return Renderer{width: width, renderer: r, err: err}
}

func (r Renderer) Width() int {
	return r.width
}

// Render renders content as markdown. Content glamour cannot handle is
// shown as plain text wrapped to the renderer width.
func (r Renderer) Render(content string) string {
	if r.err == nil && r.renderer != nil {
		if out, err := r.renderer.Render(content); err == nil {
			return strings.Trim(out, "\n")
		}
	}

	return styles.Wrap(max(r.width, 1), content)
}
