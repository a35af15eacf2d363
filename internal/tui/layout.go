package tui

import (
	"image"
	"strings"

	"charm.land/lipgloss/v2"
)

// regions splits the terminal into the canvas and the two chrome rows
// below it.
type regions struct {
	canvas, status, help image.Rectangle
}

func layoutFor(w, h int) regions {
	var r regions
	if w <= 0 || h <= 0 {
		return r
	}
	chrome := min(h, 2)
	if canvasH := h - chrome; canvasH > 0 {
		r.canvas = image.Rect(0, 0, w, canvasH)
	}
	r.status = image.Rect(0, h-chrome, w, h-chrome+1)
	if chrome == 2 {
		r.help = image.Rect(0, h-1, w, h)
	}
	return r
}

// lineLayer renders content as a single styled row filling rect.
func lineLayer(rect image.Rectangle, content string, style lipgloss.Style, id string) *lipgloss.Layer {
	if rect.Empty() {
		return lipgloss.NewLayer("").ID(id)
	}
	rendered := style.Width(rect.Dx()).MaxWidth(rect.Dx()).Render(content)
	return lipgloss.NewLayer(rendered).X(rect.Min.X).Y(rect.Min.Y).Z(1).ID(id)
}

// modalLayer centres content inside style on a w×h terminal.
func modalLayer(content string, w, h int, style lipgloss.Style, id string) *lipgloss.Layer {
	rendered := style.Render(content)
	x := max((w-lipgloss.Width(rendered))/2, 0)
	y := max((h-lipgloss.Height(rendered))/2, 0)
	return lipgloss.NewLayer(rendered).X(x).Y(y).Z(100).ID(id)
}

// fit truncates s to n cells, marking the cut with an ellipsis.
func fit(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return strings.Repeat("…", max(n, 0))
	}
	return string(r[:n-1]) + "…"
}
