package nodeeditor

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/wesen/nodegraph/pkg/geom"
	"github.com/wesen/nodegraph/pkg/graphmodel"
	"github.com/wesen/nodegraph/pkg/render"
)

const (
	textSize      = 13.0
	wireWidth     = 2.0
	outlineWidth  = 2.0
	wireMinReach  = 30.0
	roundExpanded = 4.0
	roundCollapse = 15.0
)

// Draw emits the frame: grid, connections, nodes, the pending wire, the
// selection box, the add menu, then tooltip and cursor.
func (e *Editor) Draw(s render.Surface) {
	e.drawGrid(s)
	for _, c := range e.graph.Connections() {
		e.drawConnection(s, c)
	}
	for _, n := range e.graph.Nodes() {
		e.drawNode(s, n)
	}
	e.drawWire(s)
	if e.gesture == GestureBoxSelect && e.boxing {
		r := e.view.RectToScreen(e.box)
		s.RectFilled(r, colorSelectFill, 0, render.CornersNone)
		s.Rect(r, colorSelectOutline, 0, render.CornersNone, outlineWidth)
	}
	if e.menu.open {
		s.Popup(e.menuPopup())
	}
	if e.tooltip != "" {
		s.Tooltip(e.tooltip)
	}
	s.SetCursor(e.cursor)
}

func (e *Editor) drawGrid(s render.Surface) {
	xs, ys := e.view.GridLines(e.size)
	o, width := e.view.Origin, math.Max(1, e.view.Zoom)
	for _, x := range xs {
		s.Line(geom.V(x, o.Y), geom.V(x, o.Y+e.size.Y), colorGrid, width)
	}
	for _, y := range ys {
		s.Line(geom.V(o.X, y), geom.V(o.X+e.size.X, y), colorGrid, width)
	}
}

func (e *Editor) drawConnection(s render.Surface, c graphmodel.Connection) {
	from, ok1 := e.graph.PortPositionOf(graphmodel.PortRef{Node: c.From, Name: c.Output})
	to, ok2 := e.graph.PortPositionOf(graphmodel.PortRef{Node: c.To, Input: true, Name: c.Input})
	if !ok1 || !ok2 {
		return
	}
	e.drawBezier(s, e.view.ToScreen(from), e.view.ToScreen(to), e.outputColor(c.From, c.Output))
}

// drawWire draws the connection being dragged. It snaps to the input port
// under the pointer and turns to the warning colour when that port would
// refuse it.
func (e *Editor) drawWire(s render.Surface) {
	w := e.wire
	if w == nil {
		return
	}
	from, ok := e.graph.PortPositionOf(graphmodel.PortRef{Node: w.from, Name: w.output})
	if !ok {
		return
	}
	end := e.pointer
	if w.over != nil {
		if p, ok := e.graph.PortPositionOf(*w.over); ok {
			end = p
		}
	}
	col := e.outputColor(w.from, w.output)
	if w.err != nil {
		col = colorWarning
	}
	e.drawBezier(s, e.view.ToScreen(from), e.view.ToScreen(end), col)
}

// drawBezier draws a wire that leaves a to the right and enters b from
// the left.
func (e *Editor) drawBezier(s render.Surface, a, b geom.Vec2, col colorful.Color) {
	reach := math.Max(math.Abs(b.X-a.X)/2, e.view.Length(wireMinReach))
	s.Bezier(a, a.Add(geom.V(reach, 0)), b.Sub(geom.V(reach, 0)), b, col, e.view.Length(wireWidth))
}

func (e *Editor) outputColor(id graphmodel.NodeID, output string) colorful.Color {
	if n := e.graph.Node(id); n != nil {
		if c := n.Output(output); c != nil {
			return c.Type.Color
		}
	}
	return colorOutlineIdle
}

func (e *Editor) drawNode(s render.Surface, n *graphmodel.Node) {
	z := e.view.Zoom
	r := e.view.RectToScreen(graphmodel.Bounds(n))
	rounding := e.view.Length(roundExpanded)
	corners := render.CornersTop | render.CornerBottomLeft
	if n.Collapsed {
		rounding = e.view.Length(roundCollapse)
		corners = render.CornersAll
	}

	s.RectFilled(r, colorNode, rounding, corners)
	if a, b, c, ok := graphmodel.ResizeCorner(n); ok {
		col := colorResize
		if e.hovering == n.ID && e.cursor == render.CursorResize {
			col = colorResizeHover
		}
		s.TriangleFilled(e.view.ToScreen(a), e.view.ToScreen(b), e.view.ToScreen(c), col)
	}

	outline := colorOutlineIdle
	switch {
	case e.active == n.ID || e.IsSelected(n.ID):
		outline = colorOutlineActive
	case e.hovering == n.ID:
		outline = colorOutlineHover
	}
	s.Rect(r, outline, rounding, corners, outlineWidth)
	e.drawPorts(s, n)

	if !n.Collapsed {
		bar := e.view.RectToScreen(graphmodel.DragBar(n))
		s.RectFilled(bar, colorDragBar, rounding, render.CornersTop)
		lower := bar
		lower.Min.Y += graphmodel.TitleHeight / 2 * z
		s.RectFilled(lower, colorDragBarLower, 0, render.CornersNone)
	}
	s.Text(r.Min.Add(geom.V(25, 9).Scale(z)), e.view.Length(textSize), colorText, n.Type.Name, render.AlignLeft)

	icon := [3]geom.Vec2{geom.V(10, 11), geom.V(20, 11), geom.V(15, 21)}
	if n.Collapsed {
		icon = [3]geom.Vec2{geom.V(10, 10), geom.V(20, 15), geom.V(10, 20)}
	}
	s.TriangleFilled(e.view.ToScreen(n.Pos.Add(icon[0])), e.view.ToScreen(n.Pos.Add(icon[1])),
		e.view.ToScreen(n.Pos.Add(icon[2])), colorCollapseIcon)
}

// drawPorts draws every visible port as a typed circle. Expanded nodes
// label inputs to the right of the circle and outputs to the left.
func (e *Editor) drawPorts(s render.Surface, n *graphmodel.Node) {
	z := e.view.Zoom
	radius := e.view.Length(graphmodel.PortRadius)
	for i, c := range n.Inputs() {
		pos := e.view.ToScreen(graphmodel.PortPosition(n, true, i))
		s.CircleFilled(pos, radius, c.Type.Color)
		s.Circle(pos, radius, portOutline(c.Type.Color), z)
		if !n.Collapsed {
			s.Text(pos.Add(geom.V(10, -7).Scale(z)), e.view.Length(textSize), colorText, c.Name, render.AlignLeft)
		}
	}
	for i, c := range n.Outputs() {
		pos := e.view.ToScreen(graphmodel.PortPosition(n, false, i))
		s.CircleFilled(pos, radius, c.Type.Color)
		s.Circle(pos, radius, portOutline(c.Type.Color), z)
		if !n.Collapsed {
			s.Text(pos.Add(geom.V(-10, -7).Scale(z)), e.view.Length(textSize), colorText, c.Name, render.AlignRight)
		}
	}
}
