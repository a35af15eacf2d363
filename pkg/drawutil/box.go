package drawutil

import "image"

// Box holds the glyphs of a rectangle outline. Corners are ordered
// top-left, top-right, bottom-left, bottom-right.
type Box struct {
	Horizontal, Vertical rune
	Corners              [4]rune
}

var (
	SquareBox  = Box{Horizontal: '─', Vertical: '│', Corners: [4]rune{'┌', '┐', '└', '┘'}}
	RoundedBox = Box{Horizontal: '─', Vertical: '│', Corners: [4]rune{'╭', '╮', '╰', '╯'}}
	HeavyBox   = Box{Horizontal: '━', Vertical: '┃', Corners: [4]rune{'┏', '┓', '┗', '┛'}}
)

// BoxGlyphs outlines the cells from (x0, y0) to (x1, y1) inclusive. A box
// one cell tall or wide degenerates to a line.
func BoxGlyphs(x0, y0, x1, y1 int, b Box) []Glyph {
	if x1 < x0 || y1 < y0 {
		return nil
	}
	g := func(x, y int, ch rune) Glyph { return Glyph{Point: image.Pt(x, y), Ch: ch} }
	var gs []Glyph
	switch {
	case x0 == x1 && y0 == y1:
		return []Glyph{g(x0, y0, b.Corners[0])}
	case y0 == y1:
		for x := x0; x <= x1; x++ {
			gs = append(gs, g(x, y0, b.Horizontal))
		}
		return gs
	case x0 == x1:
		for y := y0; y <= y1; y++ {
			gs = append(gs, g(x0, y, b.Vertical))
		}
		return gs
	}
	for x := x0 + 1; x < x1; x++ {
		gs = append(gs, g(x, y0, b.Horizontal), g(x, y1, b.Horizontal))
	}
	for y := y0 + 1; y < y1; y++ {
		gs = append(gs, g(x0, y, b.Vertical), g(x1, y, b.Vertical))
	}
	return append(gs,
		g(x0, y0, b.Corners[0]), g(x1, y0, b.Corners[1]),
		g(x0, y1, b.Corners[2]), g(x1, y1, b.Corners[3]))
}
