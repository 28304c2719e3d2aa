package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/tino/pkg/focus"
	"github.com/ionut-t/tino/ui/styles"
)

type Info struct {
	Active focus.Field
	Files  int
	Err    error
	Status string
}

// View renders a single line bar: the focused field and file count on the
// left, the latest error or status in the middle, the help hint on the right.
func View(info Info, width int) string {
	bg := styles.Surface0.GetBackground()
	separator := styles.Overlay1.Background(bg).Render(" | ")

	left := styles.Surface0.Padding(0, 1).Render(
		styles.Primary.Background(bg).Bold(true).Render(info.Active.String()) +
			separator +
			styles.Accent.Background(bg).Render(fmt.Sprintf("%d files", info.Files)),
	)

	var message string
	switch {
	case info.Err != nil:
		message = styles.Error.Background(bg).Render(info.Err.Error())
	case info.Status != "":
		message = styles.Success.Background(bg).Render(info.Status)
	}

	help := styles.Info.Background(bg).PaddingRight(1).Render("F1 Help")

	room := width - lipgloss.Width(left) - lipgloss.Width(help)
	if lipgloss.Width(message) > room-1 {
		message = truncate(message, room-1)
	}

	gap := styles.Surface0.Render(strings.Repeat(" ", max(0, room-lipgloss.Width(message))))

	return styles.Surface0.Width(width).MaxWidth(width).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, left, message, gap, help),
	)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}

	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
