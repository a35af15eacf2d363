package drawutil

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesen/nodegraph/pkg/cellbuf"
	"github.com/wesen/nodegraph/pkg/geom"
)

func TestBresenhamEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		n              int
	}{
		{"horizontal", 0, 0, 5, 0, 6},
		{"vertical", 0, 0, 0, 5, 6},
		{"diagonal", 0, 0, 5, 5, 6},
		{"reverse", 5, 3, 0, 0, 6},
		{"point", 3, 3, 3, 3, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pts := Bresenham(tc.x0, tc.y0, tc.x1, tc.y1)
			require.Len(t, pts, tc.n)
			assert.Equal(t, image.Pt(tc.x0, tc.y0), pts[0])
			assert.Equal(t, image.Pt(tc.x1, tc.y1), pts[len(pts)-1])
		})
	}
}

func TestBresenhamSteepStepsEveryRow(t *testing.T) {
	pts := Bresenham(0, 0, 2, 8)
	require.GreaterOrEqual(t, len(pts), 9)
	for i := 1; i < len(pts); i++ {
		assert.LessOrEqual(t, pts[i].Y-pts[i-1].Y, 1)
	}
}

func TestLineChar(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   rune
	}{
		{0, 1, '│'},
		{0, -1, '│'},
		{1, 0, '─'},
		{-1, 0, '─'},
		{1, 1, '\\'},
		{-1, -1, '\\'},
		{-1, 1, '/'},
		{1, -1, '/'},
	}
	for _, tc := range tests {
		assert.Equal(t, string(tc.want), string(LineChar(tc.dx, tc.dy)), "LineChar(%d,%d)", tc.dx, tc.dy)
	}
}

func TestLineGlyphs(t *testing.T) {
	gs := LineGlyphs(0, 0, 3, 0)
	require.Len(t, gs, 4)
	for i, g := range gs {
		assert.Equal(t, image.Pt(i, 0), g.Point)
		assert.Equal(t, '─', g.Ch)
	}
}

func TestPolylineSkipsSharedVertices(t *testing.T) {
	pts := Polyline([]image.Point{{0, 0}, {3, 0}, {3, 0}, {3, 2}})
	assert.Equal(t, []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}, {3, 2}}, pts)
	assert.Nil(t, Polyline(nil))
}

func TestPenKeepsBackground(t *testing.T) {
	pal := cellbuf.NewPalette()
	buf := cellbuf.New(4, 3, 0)
	pen := Pen{Buf: buf, Pal: pal}

	pen.Fill(0, 0, 4, 1, "#303030")
	pen.Stroke(PolylineGlyphs([]image.Point{{0, 0}, {3, 0}, {3, 2}}), "#ff0000")
	pen.Text(0, 2, "ab", "#00ff00")
	pen.Put(9, 9, 'x', "#00ff00")

	assert.Equal(t, "───│\n   │\nab │", buf.Render(nil))
	fg, bg := pal.Colors(buf.At(1, 0).Style)
	assert.Equal(t, "#ff0000", fg)
	assert.Equal(t, "#303030", bg)
	fg, bg = pal.Colors(buf.At(3, 1).Style)
	assert.Equal(t, "#ff0000", fg)
	assert.Empty(t, bg)
	fg, _ = pal.Colors(buf.At(1, 2).Style)
	assert.Equal(t, "#00ff00", fg)
}

func TestBezierEndpoints(t *testing.T) {
	p0, p3 := geom.V(0, 0), geom.V(100, 40)
	pts := Bezier(p0, geom.V(50, 0), geom.V(50, 40), p3, 8)
	require.Len(t, pts, 9)
	assert.Equal(t, p0, pts[0])
	assert.InDelta(t, p3.X, pts[8].X, 1e-9)
	assert.InDelta(t, p3.Y, pts[8].Y, 1e-9)
	// symmetric control points put the midpoint at the centre
	assert.InDelta(t, 50, pts[4].X, 1e-9)
	assert.InDelta(t, 20, pts[4].Y, 1e-9)

	assert.Len(t, Bezier(p0, p0, p3, p3, 0), 2)
}

func TestTriangleGlyph(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c geom.Vec2
		want    rune
	}{
		{"resize corner", geom.V(100, 80), geom.V(80, 100), geom.V(100, 100), '◢'},
		{"bottom left wedge", geom.V(0, 0), geom.V(0, 10), geom.V(10, 10), '◣'},
		{"top right wedge", geom.V(0, 0), geom.V(10, 0), geom.V(10, 10), '◥'},
		{"pointing down", geom.V(10, 11), geom.V(20, 11), geom.V(15, 21), '▼'},
		{"pointing right", geom.V(10, 10), geom.V(20, 15), geom.V(10, 20), '▶'},
		{"pointing up", geom.V(10, 20), geom.V(20, 20), geom.V(15, 10), '▲'},
		{"pointing left", geom.V(20, 10), geom.V(10, 15), geom.V(20, 20), '◀'},
		{"skewed", geom.V(0, 0), geom.V(7, 3), geom.V(2, 9), '•'},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, string(tc.want), string(TriangleGlyph(tc.a, tc.b, tc.c)))
		})
	}
}

func render(w, h int, gs []Glyph) string {
	buf := cellbuf.New(w, h, 0)
	for _, g := range gs {
		buf.Set(g.X, g.Y, g.Ch, 0)
	}
	return buf.Render(nil)
}

func TestBoxGlyphs(t *testing.T) {
	assert.Equal(t, "╭───╮\n│   │\n╰───╯", render(5, 3, BoxGlyphs(0, 0, 4, 2, RoundedBox)))
	assert.Equal(t, "     \n ─── \n     ", render(5, 3, BoxGlyphs(1, 1, 3, 1, SquareBox)))
	assert.Equal(t, " ┃\n ┃", render(2, 2, BoxGlyphs(1, 0, 1, 1, HeavyBox)))
	assert.Nil(t, BoxGlyphs(1, 1, 0, 0, HeavyBox))
}
