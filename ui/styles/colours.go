package styles

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

func adaptive(light, dark catppuccin.Color) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light.Hex, Dark: dark.Hex}
}

var (
	Base = lipgloss.NewStyle().
		Foreground(adaptive(catppuccin.Latte.Base(), catppuccin.Mocha.Base()))

	Text = lipgloss.NewStyle().
		Foreground(adaptive(catppuccin.Latte.Text(), catppuccin.Mocha.Text()))

	// Primary marks the focused field.
	Primary = lipgloss.NewStyle().
		Foreground(adaptive(catppuccin.Latte.Mauve(), catppuccin.Mocha.Mauve()))

	// Accent marks the selected item of a list.
	Accent = lipgloss.NewStyle().
		Foreground(adaptive(catppuccin.Latte.Sky(), catppuccin.Mocha.Sky()))

	Success = lipgloss.NewStyle().
		Foreground(adaptive(catppuccin.Latte.Green(), catppuccin.Mocha.Green()))

	Error = lipgloss.NewStyle().
		Foreground(adaptive(catppuccin.Latte.Red(), catppuccin.Mocha.Red()))

	Info = lipgloss.NewStyle().
		Foreground(adaptive(catppuccin.Latte.Blue(), catppuccin.Mocha.Blue()))

	Subtext0 = lipgloss.NewStyle().
			Foreground(adaptive(catppuccin.Latte.Subtext0(), catppuccin.Mocha.Subtext0()))

	Subtext1 = lipgloss.NewStyle().
			Foreground(adaptive(catppuccin.Latte.Subtext1(), catppuccin.Mocha.Subtext1()))

	Overlay0 = lipgloss.NewStyle().
			Foreground(adaptive(catppuccin.Latte.Overlay0(), catppuccin.Mocha.Overlay0()))

	Overlay1 = lipgloss.NewStyle().
			Foreground(adaptive(catppuccin.Latte.Overlay1(), catppuccin.Mocha.Overlay1()))

	Surface0 = lipgloss.NewStyle().
			Background(adaptive(catppuccin.Latte.Surface0(), catppuccin.Mocha.Surface0()))
)

// Tag colours, one per note type.
var (
	TodoTag         = lipgloss.NewStyle().Foreground(adaptive(catppuccin.Latte.Peach(), catppuccin.Mocha.Peach()))
	IdeaTag         = lipgloss.NewStyle().Foreground(adaptive(catppuccin.Latte.Yellow(), catppuccin.Mocha.Yellow()))
	NoteTag         = lipgloss.NewStyle().Foreground(adaptive(catppuccin.Latte.Teal(), catppuccin.Mocha.Teal()))
	AcademicNoteTag = lipgloss.NewStyle().Foreground(adaptive(catppuccin.Latte.Lavender(), catppuccin.Mocha.Lavender()))
)
