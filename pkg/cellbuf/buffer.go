// Package cellbuf provides a 2D character buffer with per-cell styling
// and efficient Lipgloss-based rendering.
//
// Each cell holds a rune and a StyleKey. A Palette interns colour pairs
// into StyleKeys and hands Render the matching lipgloss styles, so the
// buffer itself never deals with colours.
//
// Limitation: all runes are assumed to be single-width. CJK or other
// double-width characters are not handled correctly.
package cellbuf

// StyleKey identifies a visual style within a Palette. Key 0 is the
// terminal default.
type StyleKey int

// Cell is a single character in the buffer with an associated style.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Buffer is a 2D grid of styled cells.
type Buffer struct {
	W, H  int
	Cells [][]Cell // [row][col]
}

// New creates a w×h Buffer of spaces in defaultStyle, usually the
// palette key of the canvas background. Negative sizes give an empty
// buffer.
func New(w, h int, defaultStyle StyleKey) *Buffer {
	w, h = max(w, 0), max(h, 0)
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range b.Cells {
		b.Cells[y] = make([]Cell, w)
	}
	b.Fill(defaultStyle)
	return b
}

// InBounds reports whether (x, y) is a cell of the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Set overwrites the cell at (x, y). Writes outside the buffer are
// dropped, which is how strokes and labels clip at the canvas edge.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// SetString writes s from (x, y) rightwards, one cell per rune.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) {
	for _, ch := range s {
		b.Set(x, y, ch, style)
		x++
	}
}

// At returns the cell at (x, y), or a blank cell outside the buffer.
func (b *Buffer) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{Ch: ' '}
	}
	return b.Cells[y][x]
}

// FillRect fills the cells in [x0, x1) x [y0, y1) with ch. The rectangle
// is clipped to the buffer.
func (b *Buffer) FillRect(x0, y0, x1, y1 int, ch rune, style StyleKey) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, b.W), min(y1, b.H)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			b.Cells[y][x] = Cell{Ch: ch, Style: style}
		}
	}
}

// Fill blanks the whole buffer onto style.
func (b *Buffer) Fill(style StyleKey) {
	b.FillRect(0, 0, b.W, b.H, ' ', style)
}
