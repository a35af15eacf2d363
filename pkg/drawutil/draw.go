package drawutil

import (
	"image"

	"github.com/wesen/nodegraph/pkg/cellbuf"
)

// Glyph is a character placed at a buffer cell.
type Glyph struct {
	image.Point
	Ch rune
}

// pointChar returns the line character for a point based on its local
// direction, looking at the next point or, for the last one, the previous.
func pointChar(pts []image.Point, i int) rune {
	var dx, dy int
	if i < len(pts)-1 {
		dx = pts[i+1].X - pts[i].X
		dy = pts[i+1].Y - pts[i].Y
	} else if i > 0 {
		dx = pts[i].X - pts[i-1].X
		dy = pts[i].Y - pts[i-1].Y
	}
	return LineChar(dx, dy)
}

func pathGlyphs(pts []image.Point) []Glyph {
	gs := make([]Glyph, len(pts))
	for i, p := range pts {
		gs[i] = Glyph{Point: p, Ch: pointChar(pts, i)}
	}
	return gs
}

// LineGlyphs returns a Bresenham line with per-point line characters.
func LineGlyphs(x0, y0, x1, y1 int) []Glyph {
	return pathGlyphs(Bresenham(x0, y0, x1, y1))
}

// PolylineGlyphs returns the path through vertices with characters that
// follow its direction.
func PolylineGlyphs(vertices []image.Point) []Glyph {
	return pathGlyphs(Polyline(vertices))
}

// Polyline rasterises the path through vertices, dropping repeated cells.
func Polyline(vertices []image.Point) []image.Point {
	if len(vertices) == 0 {
		return nil
	}
	out := []image.Point{vertices[0]}
	for i := 1; i < len(vertices); i++ {
		a, b := vertices[i-1], vertices[i]
		for _, p := range Bresenham(a.X, a.Y, b.X, b.Y)[1:] {
			if p != out[len(out)-1] {
				out = append(out, p)
			}
		}
	}
	return out
}

// Pen draws coloured glyphs into a buffer. Strokes change a cell's
// character and foreground but keep its background, so lines and text
// drawn over a filled rectangle stay on that rectangle's colour.
type Pen struct {
	Buf *cellbuf.Buffer
	Pal *cellbuf.Palette
}

// Put writes ch at (x, y) in fg.
func (p Pen) Put(x, y int, ch rune, fg string) {
	if !p.Buf.InBounds(x, y) {
		return
	}
	p.Buf.Set(x, y, ch, p.Pal.WithFg(p.Buf.At(x, y).Style, fg))
}

// Stroke writes every glyph in fg.
func (p Pen) Stroke(gs []Glyph, fg string) {
	for _, g := range gs {
		p.Put(g.X, g.Y, g.Ch, fg)
	}
}

// Text writes s starting at (x, y), one cell per rune.
func (p Pen) Text(x, y int, s string, fg string) {
	i := 0
	for _, r := range s {
		p.Put(x+i, y, r, fg)
		i++
	}
}

// Fill blanks the cells in [x0, x1) x [y0, y1) onto background bg.
func (p Pen) Fill(x0, y0, x1, y1 int, bg string) {
	p.Buf.FillRect(x0, y0, x1, y1, ' ', p.Pal.Key("", bg))
}
