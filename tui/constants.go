package tui

// Layout constants
const (
	topRowHeight    = 8 // Border included
	statusBarHeight = 1
	boxFrame        = 2 // Border width on each axis
	titleHeight     = 1

	windowTitle = "tino"
)
