package styles

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary.GetForeground())
	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Overlay0.GetForeground())

	Title       = Text.Bold(true)
	ActiveTitle = Primary.Bold(true)
	Hint        = Overlay1.Italic(true)

	SelectedItem = Accent.Bold(true)
	Item         = Text
)
