package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/tino/internal/keymap"
	"github.com/ionut-t/tino/pkg/app"
	"github.com/ionut-t/tino/pkg/focus"
	"github.com/ionut-t/tino/pkg/note"
	"github.com/ionut-t/tino/ui/help"
	"github.com/ionut-t/tino/ui/statusbar"
	"github.com/ionut-t/tino/ui/styles"
)

const selectionMarker = ">> "

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showHelp {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			MaxHeight(m.height).
			Render(help.RenderHelpView(m.width, keymap.Bindings()))
	}

	s := m.machine.State()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTopRow(s),
		m.renderBottomRow(s),
		statusbar.View(statusbar.Info{
			Active: s.Active,
			Files:  s.Files.Len(),
			Err:    s.Err,
			Status: s.Status,
		}, m.width),
	)
}

func (m Model) rowHeights() (int, int) {
	top := min(topRowHeight, max(m.height-statusBarHeight, 0))
	return top, max(m.height-statusBarHeight-top, 0)
}

func (m Model) topWidths() (int, int, int) {
	name := m.width / 2
	types := m.width / 4
	return name, types, m.width - name - types
}

func (m Model) bottomWidths() (int, int) {
	files := m.width * 3 / 5
	return files, m.width - files
}

func (m Model) renderTopRow(s app.State) string {
	height, _ := m.rowHeights()
	nameWidth, typeWidth, categoryWidth := m.topWidths()
	bodyHeight := max(height-boxFrame-titleHeight, 0)

	input := s.Input
	input.Width = max(nameWidth-boxFrame-1, 1)

	types := renderList(s.Types, bodyHeight, typeWidth-boxFrame, func(t note.Type) string {
		return t.String()
	})

	categories := renderList(s.Categories, bodyHeight, categoryWidth-boxFrame, func(c note.Category) string {
		if c == note.None {
			return "none"
		}
		return string(c)
	})

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		box(focus.NameInput, s.Active, input.View(), nameWidth, height),
		box(focus.TypeList, s.Active, types, typeWidth, height),
		box(focus.CategoryList, s.Active, categories, categoryWidth, height),
	)
}

func (m Model) renderBottomRow(s app.State) string {
	_, height := m.rowHeights()
	if height < boxFrame+titleHeight {
		return ""
	}

	filesWidth, previewWidth := m.bottomWidths()
	bodyHeight := height - boxFrame - titleHeight

	files := renderList(s.Files, bodyHeight, filesWidth-boxFrame, func(e note.Entry) string {
		return tagStyle(e.Type).Render(e.Label)
	})
	if s.Files.Len() == 0 {
		files = styles.Hint.Render("No notes yet")
	}

	preview := m.preview.View()
	if s.Preview.Content == app.PreviewPlaceholder {
		preview = styles.Hint.Render(app.PreviewPlaceholder)
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		box(focus.FileList, s.Active, files, filesWidth, height),
		box(focus.Preview, s.Active, preview, previewWidth, height),
	)
}

// box draws a bordered pane titled with the field name, highlighted when focused.
func box(field, active focus.Field, body string, width, height int) string {
	border := styles.InactiveBorder
	title := styles.Title.Render(field.String())

	if field == active {
		border = styles.ActiveBorder
		title = styles.ActiveTitle.Render(field.String())
	}

	innerWidth := max(width-boxFrame, 0)
	innerHeight := max(height-boxFrame, 0)

	content := lipgloss.NewStyle().
		MaxWidth(innerWidth).
		MaxHeight(innerHeight).
		Render(title + "\n" + body)

	return border.
		Width(innerWidth).
		Height(innerHeight).
		Render(content)
}

// renderList shows at most height items, scrolled so the selection stays visible.
func renderList[T any](l focus.List[T], height, width int, label func(T) string) string {
	if height <= 0 {
		return ""
	}

	items := l.Items()
	selected, ok := l.Index()
	if !ok {
		selected = -1
	}

	start := 0
	if selected >= height {
		start = selected - height + 1
	}
	end := min(start+height, len(items))

	markerWidth := lipgloss.Width(selectionMarker)
	lines := make([]string, 0, end-start)

	for i := start; i < end; i++ {
		text := label(items[i])

		if i == selected {
			lines = append(lines, styles.SelectedItem.Render(selectionMarker)+
				styles.SelectedItem.MaxWidth(max(width-markerWidth, 0)).Render(text))
			continue
		}

		lines = append(lines, strings.Repeat(" ", markerWidth)+
			styles.Item.MaxWidth(max(width-markerWidth, 0)).Render(text))
	}

	return strings.Join(lines, "\n")
}

func tagStyle(t note.Type) lipgloss.Style {
	switch t {
	case note.Todo:
		return styles.TodoTag
	case note.Idea:
		return styles.IdeaTag
	case note.AcademicNote:
		return styles.AcademicNoteTag
	}

	return styles.NoteTag
}
