// Package graphmodel holds the editable node graph: typed nodes placed in
// graph space, an authoritative list of port-to-port connections, the
// geometry of every node's interactive zones, and the graph algorithms
// (cycle detection, connection legality) that guard its invariants.
package graphmodel

import "github.com/wesen/nodegraph/pkg/geom"

// Node geometry in graph units.
var (
	DefaultNodeSize = geom.V(100, 100)
	MinNodeSize     = geom.V(100, 100)
)

const (
	TitleHeight     = 30.0 // drag bar height; also the collapsed node height
	titleInset      = 2.0
	PortFirstRow    = 15.0 // port y offset inside a collapsed node
	PortRowsStart   = 45.0 // first port row of an expanded node
	PortRowHeight   = 26.0
	PortRadius      = 6.0
	PortHitRadius   = 10.0
	ResizeHandle    = 20.0
	collapseIconMin = 8.0
	collapseIconMax = 24.0
)

// Bounds returns the node's rectangle. Collapsed nodes are only as tall as
// their title bar.
func Bounds(n *Node) geom.Rect {
	size := n.Size
	if n.Collapsed {
		size.Y = TitleHeight
	}
	return geom.Rect{Min: n.Pos, Max: n.Pos.Add(size)}
}

// DragBar returns the title bar area that starts a drag.
func DragBar(n *Node) geom.Rect {
	b := Bounds(n)
	return geom.R(b.Min.X+titleInset, b.Min.Y+titleInset, b.Max.X-titleInset, b.Min.Y+TitleHeight)
}

// CollapseIcon returns the square inside the title bar that toggles
// collapsed on click.
func CollapseIcon(n *Node) geom.Rect {
	return geom.R(n.Pos.X+collapseIconMin, n.Pos.Y+collapseIconMin,
		n.Pos.X+collapseIconMax, n.Pos.Y+collapseIconMax)
}

// ResizeCorner returns the triangle in the bottom-right corner that starts
// a resize. ok is false for collapsed nodes, which cannot be resized.
func ResizeCorner(n *Node) (a, b, c geom.Vec2, ok bool) {
	if n.Collapsed {
		return a, b, c, false
	}
	r := Bounds(n)
	return geom.V(r.Max.X, r.Max.Y-ResizeHandle), geom.V(r.Max.X-ResizeHandle, r.Max.Y), r.Max, true
}

// InResizeCorner reports whether pt lies in the node's resize triangle.
func InResizeCorner(n *Node, pt geom.Vec2) bool {
	a, b, c, ok := ResizeCorner(n)
	return ok && geom.TriangleContains(a, b, c, pt)
}

// PortPosition returns the centre of the index-th input (input=true) or
// output port. Inputs sit on the left edge, outputs on the right; all
// ports of a collapsed node share the title row.
func PortPosition(n *Node, input bool, index int) geom.Vec2 {
	r := Bounds(n)
	x := r.Max.X
	if input {
		x = r.Min.X
	}
	if n.Collapsed {
		return geom.V(x, r.Min.Y+PortFirstRow)
	}
	return geom.V(x, r.Min.Y+PortRowsStart+PortRowHeight*float64(index))
}

// PortRef names one port of one node.
type PortRef struct {
	Node  NodeID
	Input bool
	Name  string
}

// PortPositionOf returns the position of the named port, or false if the
// node has no such port.
func (g *Graph) PortPositionOf(p PortRef) (geom.Vec2, bool) {
	n := g.nodes[p.Node]
	if n == nil {
		return geom.Vec2{}, false
	}
	ports := n.Outputs()
	if p.Input {
		ports = n.Inputs()
	}
	for i, c := range ports {
		if c.Name == p.Name {
			return PortPosition(n, p.Input, i), true
		}
	}
	return geom.Vec2{}, false
}

// PortAt returns the frontmost port whose hit circle contains pt.
func (g *Graph) PortAt(pt geom.Vec2) (PortRef, bool) {
	for i := len(g.order) - 1; i >= 0; i-- {
		n := g.nodes[g.order[i]]
		for idx, c := range n.Inputs() {
			if PortPosition(n, true, idx).Dist(pt) <= PortHitRadius {
				return PortRef{Node: n.ID, Input: true, Name: c.Name}, true
			}
		}
		for idx, c := range n.Outputs() {
			if PortPosition(n, false, idx).Dist(pt) <= PortHitRadius {
				return PortRef{Node: n.ID, Input: false, Name: c.Name}, true
			}
		}
	}
	return PortRef{}, false
}
