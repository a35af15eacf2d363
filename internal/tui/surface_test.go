package tui

import (
	"image"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"

	"github.com/wesen/nodegraph/pkg/geom"
	"github.com/wesen/nodegraph/pkg/render"
)

var (
	red   = colorful.Color{R: 1}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

func testSurface() *cellSurface {
	return newCellSurface(testMetrics, image.Rect(0, 0, 10, 5), canvasBG)
}

func (s *cellSurface) row(y int) string {
	r := make([]rune, s.buf.W)
	for x := range r {
		r[x] = s.buf.At(x, y).Ch
	}
	return string(r)
}

func (s *cellSurface) colors(x, y int) (fg, bg string) {
	return s.pal.Colors(s.buf.At(x, y).Style)
}

func TestSurfaceFillAndText(t *testing.T) {
	s := testSurface()
	s.RectFilled(geom.R(0, 0, 16, 32), red, 0, render.CornersNone)
	s.Text(geom.V(0, 0), 13, white, "hi", render.AlignLeft)
	s.Text(geom.V(40, 16), 13, white, "ab", render.AlignRight)
	s.Text(geom.V(0, 48), 5, white, "tiny", render.AlignLeft)

	assert.Equal(t, "hi        ", s.row(0))
	assert.Equal(t, "   ab     ", s.row(1))
	assert.Equal(t, "          ", s.row(3), "text below the size threshold is hidden")

	fg, bg := s.colors(1, 0)
	assert.Equal(t, white.Hex(), fg)
	assert.Equal(t, red.Hex(), bg, "text keeps the fill behind it")
	_, bg = s.colors(1, 1)
	assert.Equal(t, red.Hex(), bg)
	_, bg = s.colors(2, 0)
	assert.Equal(t, canvasBG.Hex(), bg)
}

func TestSurfaceRectCorners(t *testing.T) {
	s := testSurface()
	s.Rect(geom.R(8, 0, 48, 48), white, 4, render.CornersTop|render.CornerBottomLeft, 2)
	assert.Equal(t, " ╭───╮    ", s.row(0))
	assert.Equal(t, " │   │    ", s.row(1))
	assert.Equal(t, " ╰───┘    ", s.row(2))

	s = testSurface()
	s.Rect(geom.R(8, 0, 48, 48), white, 0, render.CornersAll, 2)
	assert.Equal(t, " ┌───┐    ", s.row(0))
}

func TestSurfaceGlyphs(t *testing.T) {
	s := testSurface()
	s.Line(geom.V(0, 40), geom.V(79, 40), white, 1)
	assert.Equal(t, "──────────", s.row(2))

	s.CircleFilled(geom.V(4, 8), 6, red)
	s.Circle(geom.V(4, 8), 6, white, 1)
	s.Circle(geom.V(20, 8), 6, white, 1)
	s.TriangleFilled(geom.V(40, 60), geom.V(60, 60), geom.V(50, 79), white)
	assert.Equal(t, "● ○       ", s.row(0))
	assert.Equal(t, "      ▼   ", s.row(4))
}

func TestSurfaceBezierConnectsEndpoints(t *testing.T) {
	s := testSurface()
	a, b := geom.V(4, 8), geom.V(76, 72)
	s.Bezier(a, a.Add(geom.V(36, 0)), b.Sub(geom.V(36, 0)), b, red, 2)
	assert.NotEqual(t, ' ', s.buf.At(0, 0).Ch)
	assert.NotEqual(t, ' ', s.buf.At(9, 4).Ch)
	fg, _ := s.colors(9, 4)
	assert.Equal(t, red.Hex(), fg)
}

func TestSurfaceOverlaysAndOffset(t *testing.T) {
	s := newCellSurface(testMetrics, image.Rect(2, 1, 6, 3), canvasBG)
	s.CircleFilled(geom.V(16, 16), 6, red)
	assert.Equal(t, '●', s.buf.At(0, 0).Ch, "pixels are relative to the region origin")

	s.Tooltip("Number")
	s.SetCursor(render.CursorResize)
	s.Popup(render.Popup{ID: "menu", Title: "Add node"})
	assert.Equal(t, "Number", s.tooltip)
	assert.Equal(t, render.CursorResize, s.cursor)
	assert.Equal(t, "Add node", s.popup.Title)
	assert.NotEmpty(t, s.Render())
}
