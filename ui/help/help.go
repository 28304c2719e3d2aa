package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/tino/ui/styles"
)

// RenderHelpView lists the enabled bindings, one per line, with multi line
// descriptions aligned under the first description line.
func RenderHelpView(width int, keys []key.Binding) string {
	var sb strings.Builder

	enabled := make([]key.Binding, 0, len(keys))
	keyWidth := 0

	for _, binding := range keys {
		if !binding.Enabled() {
			continue
		}

		enabled = append(enabled, binding)
		keyWidth = max(keyWidth, lipgloss.Width(binding.Help().Key))
	}

	indent := strings.Repeat(" ", keyWidth+4)

	for _, binding := range enabled {
		h := binding.Help()
		padding := strings.Repeat(" ", keyWidth-lipgloss.Width(h.Key)+2)

		lines := strings.Split(h.Desc, "\n")
		for i, line := range lines {
			lines[i] = styles.Text.Render(strings.TrimSpace(line))
		}

		sb.WriteString(fmt.Sprintf("• %s%s%s\n",
			styles.Info.Render(h.Key),
			padding,
			strings.Join(lines, "\n"+indent),
		))
	}

	title := styles.ActiveTitle.Render("Key bindings")
	body := strings.Trim(sb.String(), "\n")

	return lipgloss.NewStyle().Width(width).Padding(1, 1).Render(title + "\n\n" + body)
}
