// Package render defines the drawing surface the editor emits primitives
// to. All coordinates are final screen pixels.
package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/wesen/nodegraph/pkg/geom"
)

// Corner selects which corners of a rectangle are rounded.
type Corner uint8

const (
	CornerTopLeft Corner = 1 << iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight

	CornersNone   Corner = 0
	CornersTop           = CornerTopLeft | CornerTopRight
	CornersBottom        = CornerBottomLeft | CornerBottomRight
	CornersAll           = CornersTop | CornersBottom
)

// Align anchors text at its position.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Cursor is the pointer shape requested for the frame.
type Cursor int

const (
	CursorArrow Cursor = iota
	CursorResize
)

// MenuItem is one row of a popup menu.
type MenuItem struct {
	Label       string
	Description string
	Selected    bool
	Bounds      geom.Rect
}

// Popup is a positioned menu. A popup is open for every frame it is drawn.
type Popup struct {
	ID     string
	Title  string
	Bounds geom.Rect
	Items  []MenuItem
}

// Surface receives the editor's draw primitives for one frame.
type Surface interface {
	Line(a, b geom.Vec2, c colorful.Color, width float64)
	Rect(r geom.Rect, c colorful.Color, rounding float64, corners Corner, width float64)
	RectFilled(r geom.Rect, c colorful.Color, rounding float64, corners Corner)
	TriangleFilled(a, b, d geom.Vec2, c colorful.Color)
	Circle(center geom.Vec2, radius float64, c colorful.Color, width float64)
	CircleFilled(center geom.Vec2, radius float64, c colorful.Color)
	Bezier(p0, p1, p2, p3 geom.Vec2, c colorful.Color, width float64)
	Text(pos geom.Vec2, size float64, c colorful.Color, s string, align Align)
	Tooltip(text string)
	SetCursor(Cursor)
	Popup(p Popup)
}
