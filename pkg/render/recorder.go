package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/wesen/nodegraph/pkg/geom"
)

// OpKind identifies a recorded primitive.
type OpKind int

const (
	OpLine OpKind = iota
	OpRect
	OpRectFilled
	OpTriangleFilled
	OpCircle
	OpCircleFilled
	OpBezier
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpLine:
		return "line"
	case OpRect:
		return "rect"
	case OpRectFilled:
		return "rect-filled"
	case OpTriangleFilled:
		return "triangle-filled"
	case OpCircle:
		return "circle"
	case OpCircleFilled:
		return "circle-filled"
	case OpBezier:
		return "bezier"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Op is one recorded primitive. Only the fields relevant to Kind are set.
type Op struct {
	Kind   OpKind
	Points []geom.Vec2
	Rect   geom.Rect
	Radius float64
	Color  colorful.Color
	Text   string
}

// Recorder is a Surface that keeps everything drawn to it. Reset clears it
// between frames.
type Recorder struct {
	Ops      []Op
	Tooltips []string
	Cursor   Cursor
	Popups   []Popup
}

var _ Surface = (*Recorder)(nil)

// Reset forgets the previous frame.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.Tooltips = nil
	r.Cursor = CursorArrow
	r.Popups = nil
}

func (r *Recorder) add(op Op) { r.Ops = append(r.Ops, op) }

func (r *Recorder) Line(a, b geom.Vec2, c colorful.Color, _ float64) {
	r.add(Op{Kind: OpLine, Points: []geom.Vec2{a, b}, Color: c})
}

func (r *Recorder) Rect(rect geom.Rect, c colorful.Color, _ float64, _ Corner, _ float64) {
	r.add(Op{Kind: OpRect, Rect: rect, Color: c})
}

func (r *Recorder) RectFilled(rect geom.Rect, c colorful.Color, _ float64, _ Corner) {
	r.add(Op{Kind: OpRectFilled, Rect: rect, Color: c})
}

func (r *Recorder) TriangleFilled(a, b, d geom.Vec2, c colorful.Color) {
	r.add(Op{Kind: OpTriangleFilled, Points: []geom.Vec2{a, b, d}, Color: c})
}

func (r *Recorder) Circle(center geom.Vec2, radius float64, c colorful.Color, _ float64) {
	r.add(Op{Kind: OpCircle, Points: []geom.Vec2{center}, Radius: radius, Color: c})
}

func (r *Recorder) CircleFilled(center geom.Vec2, radius float64, c colorful.Color) {
	r.add(Op{Kind: OpCircleFilled, Points: []geom.Vec2{center}, Radius: radius, Color: c})
}

func (r *Recorder) Bezier(p0, p1, p2, p3 geom.Vec2, c colorful.Color, _ float64) {
	r.add(Op{Kind: OpBezier, Points: []geom.Vec2{p0, p1, p2, p3}, Color: c})
}

func (r *Recorder) Text(pos geom.Vec2, _ float64, c colorful.Color, s string, _ Align) {
	r.add(Op{Kind: OpText, Points: []geom.Vec2{pos}, Color: c, Text: s})
}

func (r *Recorder) Tooltip(text string) { r.Tooltips = append(r.Tooltips, text) }

func (r *Recorder) SetCursor(c Cursor) { r.Cursor = c }

func (r *Recorder) Popup(p Popup) { r.Popups = append(r.Popups, p) }

// Count returns how many ops of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Texts returns every recorded text string in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Filter returns the recorded ops of kind k.
func (r *Recorder) Filter(k OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}
