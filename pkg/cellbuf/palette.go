package cellbuf

import "charm.land/lipgloss/v2"

// colorPair is a foreground/background pair of hex colours. An empty
// string keeps the terminal default.
type colorPair struct{ fg, bg string }

// Palette interns colour pairs as StyleKeys and builds the lipgloss style
// for each. Key 0 is always the terminal default.
type Palette struct {
	keys   map[colorPair]StyleKey
	pairs  []colorPair
	styles map[StyleKey]lipgloss.Style
}

// NewPalette returns a palette holding only the default style.
func NewPalette() *Palette {
	return &Palette{
		keys:   map[colorPair]StyleKey{{}: 0},
		pairs:  []colorPair{{}},
		styles: map[StyleKey]lipgloss.Style{0: lipgloss.NewStyle()},
	}
}

// Key returns the style key for fg on bg, allocating it on first use.
func (p *Palette) Key(fg, bg string) StyleKey {
	cp := colorPair{fg, bg}
	if k, ok := p.keys[cp]; ok {
		return k
	}
	k := StyleKey(len(p.pairs))
	p.keys[cp] = k
	p.pairs = append(p.pairs, cp)

	st := lipgloss.NewStyle()
	if fg != "" {
		st = st.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		st = st.Background(lipgloss.Color(bg))
	}
	p.styles[k] = st
	return k
}

// Colors returns the pair behind k. Unknown keys report the default.
func (p *Palette) Colors(k StyleKey) (fg, bg string) {
	if k < 0 || int(k) >= len(p.pairs) {
		return "", ""
	}
	cp := p.pairs[k]
	return cp.fg, cp.bg
}

// WithFg returns the key that keeps k's background under a new foreground.
func (p *Palette) WithFg(k StyleKey, fg string) StyleKey {
	_, bg := p.Colors(k)
	return p.Key(fg, bg)
}

// Len returns the number of interned styles, the default included.
func (p *Palette) Len() int { return len(p.pairs) }

// style returns the lipgloss style for k. The default key and unknown keys
// report false so their cells are written unstyled.
func (p *Palette) style(k StyleKey) (lipgloss.Style, bool) {
	if p == nil || k == 0 {
		return lipgloss.Style{}, false
	}
	st, ok := p.styles[k]
	return st, ok
}
