package cellbuf

import "strings"

// Render turns the buffer into rows of styled text joined by "\n". Each
// run of cells sharing a StyleKey is styled once. A nil palette renders
// plain text. An empty buffer renders as "".
func (b *Buffer) Render(p *Palette) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}
	var sb strings.Builder
	for y, row := range b.Cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		b.renderRow(&sb, row, p)
	}
	return sb.String()
}

func (b *Buffer) renderRow(sb *strings.Builder, row []Cell, p *Palette) {
	run := make([]rune, 0, len(row))
	flush := func(k StyleKey) {
		if len(run) == 0 {
			return
		}
		if st, ok := p.style(k); ok {
			sb.WriteString(st.Render(string(run)))
		} else {
			sb.WriteString(string(run))
		}
		run = run[:0]
	}

	key := row[0].Style
	for _, c := range row {
		if c.Style != key {
			flush(key)
			key = c.Style
		}
		run = append(run, c.Ch)
	}
	flush(key)
}
