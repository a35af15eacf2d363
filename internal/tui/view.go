package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesen/nodegraph/pkg/render"
)

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.width == 0 || m.height == 0 {
		return tea.NewView("")
	}
	r := layoutFor(m.width, m.height)

	surf := newCellSurface(m.metrics, r.canvas, canvasBG)
	m.editor.Draw(surf)

	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(surf.Render()).X(r.canvas.Min.X).Y(r.canvas.Min.Y).Z(0).ID("canvas"),
		lineLayer(r.status, m.statusLine(surf.cursor), statusStyle, "status"),
		lineLayer(r.help, m.help.ShortHelpView(m.keys.ShortHelp()), statusStyle, "help"),
	}
	if surf.popup != nil {
		layers = append(layers, popupLayer(*surf.popup, m.metrics))
	}
	if surf.tooltip != "" {
		layers = append(layers, m.tooltipLayer(surf.tooltip))
	}
	if m.showHelp {
		content := m.help.FullHelpView(m.keys.FullHelp())
		layers = append(layers, modalLayer(content, m.width, m.height, helpBoxStyle, "help-modal"))
	}

	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.width, m.height)
	canvas.Compose(comp)

	v := tea.NewView(canvas.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	v.ReportFocus = true
	v.WindowTitle = "nodegraph"
	return v
}

// statusLine summarises the view, graph, history and gesture, followed by
// the last hint.
func (m Model) statusLine(cursor render.Cursor) string {
	ed := m.editor
	h := ed.History()
	gesture := ed.Gesture().String()
	if cursor == render.CursorResize {
		gesture += " ⇲"
	}
	parts := []string{
		fmt.Sprintf("zoom %.0f%%", ed.View().Zoom*100),
		fmt.Sprintf("nodes %d", len(ed.Graph().Nodes())),
		fmt.Sprintf("selected %d", len(ed.Selection())),
		fmt.Sprintf("history %d/%d", h.Index()+1, h.Len()),
		gesture,
	}
	line := accentStyle.Render(" nodegraph ") + statusStyle.Render(" "+strings.Join(parts, " │ "))
	if hint := ed.Hint(); hint != "" {
		line += statusStyle.Render(" │ ") + hintStyle.Render(hint)
	}
	return line
}

// popupLayer draws the add menu one row per cell, aligned so that the
// pointer's cell centre falls inside the row the editor hit-tests.
func popupLayer(p render.Popup, m Metrics) *lipgloss.Layer {
	x, y := m.Snap(p.Bounds.Min)
	width := max(int(p.Bounds.Dx()/m.CellW), 1)
	lines := []string{menuTitleStyle.Width(width).Render(fit(" "+p.Title, width))}
	for _, item := range p.Items {
		st := menuItemStyle
		if item.Selected {
			st = menuSelectedStyle
		}
		lines = append(lines, st.Width(width).Render(fit(" "+item.Label, width)))
	}
	return lipgloss.NewLayer(strings.Join(lines, "\n")).X(x).Y(y).Z(10).ID(p.ID)
}

// tooltipLayer places the tooltip below and right of the pointer, kept on
// screen.
func (m Model) tooltipLayer(text string) *lipgloss.Layer {
	rendered := tooltipStyle.Render(fit(text, max(m.width-2, 1)))
	px, py := m.metrics.Cell(m.input.state.Pointer)
	x := min(px+2, m.width-lipgloss.Width(rendered))
	y := min(py+1, m.height-1)
	return lipgloss.NewLayer(rendered).X(max(x, 0)).Y(max(y, 0)).Z(20).ID("tooltip")
}
