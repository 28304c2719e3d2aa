package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/tino/internal/keymap"
	"github.com/ionut-t/tino/pkg/app"
	"github.com/ionut-t/tino/ui/markdown"
)

// Model adapts an app.Machine to bubbletea. It owns only presentation
// state: the terminal size, the help toggle and the rendered preview.
type Model struct {
	machine *app.Machine

	width, height int
	showHelp      bool

	preview  viewport.Model
	renderer markdown.Renderer
	rendered string // Preview content currently in the viewport
}

func New(machine *app.Machine) Model {
	return Model{
		machine: machine,
		preview: viewport.New(0, 0),
	}
}

// State returns the current application state.
func (m Model) State() app.State {
	return m.machine.State()
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(windowTitle)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.syncPreview()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keymap.Help) {
			m.showHelp = !m.showHelp
			return m, nil
		}

		if m.showHelp {
			if key.Matches(msg, keymap.Quit) {
				m.showHelp = false
			}
			return m, nil
		}

		m.machine.Dispatch(toEvent(msg))
		m.syncPreview()

		if !m.machine.State().Running {
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *Model) resize() {
	_, bottom := m.rowHeights()
	_, previewWidth := m.bottomWidths()

	m.preview.Width = max(previewWidth-boxFrame, 0)
	m.preview.Height = max(bottom-boxFrame-titleHeight, 0)

	if m.renderer.Width() != m.preview.Width {
		m.renderer = markdown.New(m.preview.Width)
		m.rendered = ""
	}
}

// syncPreview refreshes the viewport from the application state, rendering
// the content again only when it changed.
func (m *Model) syncPreview() {
	p := m.machine.State().Preview

	if p.Content != m.rendered || m.preview.TotalLineCount() == 0 {
		if p.Content == app.PreviewPlaceholder {
			m.preview.SetContent(p.Content)
		} else {
			m.preview.SetContent(m.renderer.Render(p.Content))
		}
		m.rendered = p.Content
	}

	m.preview.SetYOffset(p.Offset)
}
