package tui

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/wesen/nodegraph/pkg/cellbuf"
	"github.com/wesen/nodegraph/pkg/drawutil"
	"github.com/wesen/nodegraph/pkg/geom"
	"github.com/wesen/nodegraph/pkg/render"
)

// minTextSize hides text once zooming out makes it smaller than this.
const minTextSize = 7.0

// cellSurface rasterises editor primitives into a cell buffer covering the
// canvas region. Overlays (tooltip, popup, cursor) are kept for the layer
// compositor.
type cellSurface struct {
	metrics Metrics
	origin  geom.Vec2 // screen px of buffer cell (0, 0)
	buf     *cellbuf.Buffer
	pal     *cellbuf.Palette
	pen     drawutil.Pen

	tooltip string
	popup   *render.Popup
	cursor  render.Cursor
}

var _ render.Surface = (*cellSurface)(nil)

func newCellSurface(m Metrics, region image.Rectangle, bg colorful.Color) *cellSurface {
	pal := cellbuf.NewPalette()
	buf := cellbuf.New(region.Dx(), region.Dy(), pal.Key("", bg.Hex()))
	return &cellSurface{
		metrics: m,
		origin:  geom.V(float64(region.Min.X)*m.CellW, float64(region.Min.Y)*m.CellH),
		buf:     buf,
		pal:     pal,
		pen:     drawutil.Pen{Buf: buf, Pal: pal},
	}
}

// cell maps a screen pixel to buffer coordinates.
func (s *cellSurface) cell(p geom.Vec2) (int, int) {
	return s.metrics.Cell(p.Sub(s.origin))
}

func (s *cellSurface) point(p geom.Vec2) image.Point {
	x, y := s.cell(p)
	return image.Pt(x, y)
}

// cellRect returns the inclusive cell range covered by r.
func (s *cellSurface) cellRect(r geom.Rect) (x0, y0, x1, y1 int, ok bool) {
	if r.Empty() {
		return 0, 0, 0, 0, false
	}
	x0, y0 = s.cell(r.Min)
	x1, y1 = s.cell(geom.V(math.Nextafter(r.Max.X, r.Min.X), math.Nextafter(r.Max.Y, r.Min.Y)))
	return x0, y0, x1, y1, true
}

func (s *cellSurface) Line(a, b geom.Vec2, c colorful.Color, _ float64) {
	pa, pb := s.point(a), s.point(b)
	s.pen.Stroke(drawutil.LineGlyphs(pa.X, pa.Y, pb.X, pb.Y), c.Hex())
}

func (s *cellSurface) Rect(r geom.Rect, c colorful.Color, rounding float64, corners render.Corner, _ float64) {
	x0, y0, x1, y1, ok := s.cellRect(r)
	if !ok {
		return
	}
	box := drawutil.SquareBox
	if rounding > 0 {
		round := drawutil.RoundedBox.Corners
		for i, flag := range []render.Corner{render.CornerTopLeft, render.CornerTopRight, render.CornerBottomLeft, render.CornerBottomRight} {
			if corners&flag != 0 {
				box.Corners[i] = round[i]
			}
		}
	}
	s.pen.Stroke(drawutil.BoxGlyphs(x0, y0, x1, y1, box), c.Hex())
}

func (s *cellSurface) RectFilled(r geom.Rect, c colorful.Color, _ float64, _ render.Corner) {
	x0, y0, x1, y1, ok := s.cellRect(r)
	if !ok {
		return
	}
	s.pen.Fill(x0, y0, x1+1, y1+1, c.Hex())
}

// TriangleFilled draws a single wedge or arrowhead glyph at the centroid.
func (s *cellSurface) TriangleFilled(a, b, d geom.Vec2, c colorful.Color) {
	p := s.point(a.Add(b).Add(d).Div(3))
	s.pen.Put(p.X, p.Y, drawutil.TriangleGlyph(a, b, d), c.Hex())
}

// Circle draws a ring glyph unless a filled circle already occupies the
// cell; at cell resolution the ring would hide it.
func (s *cellSurface) Circle(center geom.Vec2, _ float64, c colorful.Color, _ float64) {
	p := s.point(center)
	if s.buf.At(p.X, p.Y).Ch == '●' {
		return
	}
	s.pen.Put(p.X, p.Y, '○', c.Hex())
}

func (s *cellSurface) CircleFilled(center geom.Vec2, _ float64, c colorful.Color) {
	p := s.point(center)
	s.pen.Put(p.X, p.Y, '●', c.Hex())
}

// Bezier flattens the curve into roughly one segment per cell of chord
// length and strokes the resulting polyline.
func (s *cellSurface) Bezier(p0, p1, p2, p3 geom.Vec2, c colorful.Color, _ float64) {
	chord := p0.Dist(p1) + p1.Dist(p2) + p2.Dist(p3)
	segments := int(chord/math.Min(s.metrics.CellW, s.metrics.CellH)) + 1
	pts := drawutil.Bezier(p0, p1, p2, p3, min(segments, 512))
	cells := make([]image.Point, len(pts))
	for i, p := range pts {
		cells[i] = s.point(p)
	}
	s.pen.Stroke(drawutil.PolylineGlyphs(cells), c.Hex())
}

func (s *cellSurface) Text(pos geom.Vec2, size float64, c colorful.Color, text string, align render.Align) {
	if size < minTextSize || text == "" {
		return
	}
	p := s.point(pos)
	if align == render.AlignRight {
		p.X -= len([]rune(text))
	}
	s.pen.Text(p.X, p.Y, text, c.Hex())
}

func (s *cellSurface) Tooltip(text string)       { s.tooltip = text }
func (s *cellSurface) SetCursor(c render.Cursor) { s.cursor = c }
func (s *cellSurface) Popup(p render.Popup)      { s.popup = &p }

// Render returns the styled canvas.
func (s *cellSurface) Render() string { return s.buf.Render(s.pal) }
