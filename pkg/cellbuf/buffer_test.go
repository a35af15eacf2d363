package cellbuf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	b := New(10, 5, 3)
	require.Equal(t, 10, b.W)
	require.Equal(t, 5, b.H)
	require.Len(t, b.Cells, 5)
	for y := range b.Cells {
		require.Len(t, b.Cells[y], 10)
		for x := range b.Cells[y] {
			require.Equal(t, Cell{Ch: ' ', Style: 3}, b.Cells[y][x], "cell (%d,%d)", x, y)
		}
	}
}

func TestNewNegativeSizeIsEmpty(t *testing.T) {
	b := New(-5, -3, 0)
	assert.Equal(t, 0, b.W)
	assert.Equal(t, 0, b.H)
	assert.Equal(t, "", b.Render(NewPalette()))
}

func TestInBounds(t *testing.T) {
	b := New(10, 5, 0)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 4, true},
		{-1, 0, false},
		{0, -1, false},
		{10, 0, false},
		{0, 5, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, b.InBounds(tc.x, tc.y), "InBounds(%d, %d)", tc.x, tc.y)
	}
}

func TestSetIgnoresOutOfBounds(t *testing.T) {
	b := New(4, 2, 0)
	b.Set(1, 1, 'X', 2)
	b.Set(-1, 0, 'Y', 2)
	b.Set(4, 0, 'Y', 2)
	b.Set(0, 2, 'Y', 2)

	assert.Equal(t, Cell{Ch: 'X', Style: 2}, b.At(1, 1))
	assert.Equal(t, Cell{Ch: ' '}, b.At(-1, 0))
	assert.Equal(t, "    \n X  ", b.Render(nil))
}

func TestSetStringClips(t *testing.T) {
	b := New(5, 1, 0)
	b.SetString(3, 0, "Hello", 1)
	assert.Equal(t, "   He", b.Render(nil))
	assert.Equal(t, StyleKey(1), b.At(4, 0).Style)

	b = New(5, 1, 0)
	b.SetString(0, 0, "⇲ ab", 1)
	assert.Equal(t, "⇲ ab ", b.Render(nil), "one cell per rune")
}

func TestFillRectClips(t *testing.T) {
	b := New(4, 3, 0)
	b.FillRect(-2, 1, 2, 9, '#', 1)
	assert.Equal(t, "    \n##  \n##  ", b.Render(nil))

	b.Fill(0)
	assert.Equal(t, "    \n    \n    ", b.Render(nil))
}

func TestPaletteInternsPairs(t *testing.T) {
	p := NewPalette()
	red := p.Key("#ff0000", "")
	assert.Equal(t, red, p.Key("#ff0000", ""))
	onBlue := p.Key("#ff0000", "#0000ff")
	assert.NotEqual(t, red, onBlue)
	assert.Equal(t, 3, p.Len())

	fg, bg := p.Colors(onBlue)
	assert.Equal(t, "#ff0000", fg)
	assert.Equal(t, "#0000ff", bg)

	white := p.WithFg(onBlue, "#ffffff")
	fg, bg = p.Colors(white)
	assert.Equal(t, "#ffffff", fg)
	assert.Equal(t, "#0000ff", bg)

	fg, bg = p.Colors(StyleKey(99))
	assert.Empty(t, fg)
	assert.Empty(t, bg)
}

func TestRenderMergesRuns(t *testing.T) {
	p := NewPalette()
	red, blue := p.Key("#ff0000", ""), p.Key("#0000ff", "")

	uniform := New(50, 1, red)
	alternating := New(50, 1, red)
	for x := 1; x < 50; x += 2 {
		alternating.Set(x, 0, ' ', blue)
	}
	assert.Less(t, len(uniform.Render(p)), len(alternating.Render(p)))
}

func TestRenderKeepsTextUnderStyles(t *testing.T) {
	p := NewPalette()
	b := New(10, 2, 0)
	b.SetString(2, 1, "Hi", p.Key("#ff0000", "#202020"))
	out := b.Render(p)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Hi")
}

func BenchmarkRenderCanvas(b *testing.B) {
	p := NewPalette()
	grid, wire := p.Key("#525257", ""), p.Key("#66ff66", "")
	buf := New(150, 40, 0)
	for y := 0; y < 40; y++ {
		for x := 0; x < 150; x += 6 {
			buf.Set(x, y, '│', grid)
		}
		buf.Set(y*3, y, '╲', wire)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.Render(p)
	}
}
