// Package view maps between screen space and graph space.
//
// A graph point p appears on screen at
//
//	origin + (scroll + p) · zoom
//
// where origin is the top-left corner of the editor's drawing area. Scroll
// is stored in graph units, so panning by a zoomed-space delta is a plain
// addition.
package view

import (
	"github.com/wesen/nodegraph/pkg/geom"
)

const (
	MinZoom = 0.1
	MaxZoom = 10.0

	// wheelStep is the relative zoom change per wheel notch at speed 1.
	wheelStep = 0.15

	// GridSpacing is the distance between background grid lines in graph units.
	GridSpacing = 50.0
)

// Transform is the editor's view state.
type Transform struct {
	Origin    geom.Vec2 // top-left of the drawing area, screen px
	Scroll    geom.Vec2 // graph units
	Zoom      float64
	ZoomSpeed float64
}

// New returns an identity transform with zoom speed 1.
func New() *Transform {
	return &Transform{Zoom: 1, ZoomSpeed: 1}
}

// ToScreen maps a graph point to screen pixels.
func (t *Transform) ToScreen(p geom.Vec2) geom.Vec2 {
	return t.Origin.Add(t.Scroll.Add(p).Scale(t.Zoom))
}

// ToGraph maps a screen point to graph space.
func (t *Transform) ToGraph(s geom.Vec2) geom.Vec2 {
	return t.local(s).Sub(t.Scroll)
}

// local is s relative to the origin, divided by zoom.
func (t *Transform) local(s geom.Vec2) geom.Vec2 {
	return s.Sub(t.Origin).Div(t.Zoom)
}

// RectToScreen maps a graph rectangle to screen pixels.
func (t *Transform) RectToScreen(r geom.Rect) geom.Rect {
	return geom.Rect{Min: t.ToScreen(r.Min), Max: t.ToScreen(r.Max)}
}

// Length scales a graph-space length to pixels.
func (t *Transform) Length(l float64) float64 { return l * t.Zoom }

// ApplyWheel zooms by wheel notches around the screen point pointer: the
// graph point under the pointer stays under it.
func (t *Transform) ApplyWheel(wheel float64, pointer geom.Vec2) {
	if wheel == 0 {
		return
	}
	newZoom := geom.Clamp(t.Zoom+wheel*wheelStep*t.ZoomSpeed*t.Zoom, MinZoom, MaxZoom)
	factor := 1 - t.Zoom/newZoom
	t.Scroll = t.Scroll.Sub(t.local(pointer).Scale(factor))
	t.Zoom = newZoom
}

// Pan scrolls by a screen-space pointer movement.
func (t *Transform) Pan(screenDelta geom.Vec2) {
	t.Scroll = t.Scroll.Add(screenDelta.Div(t.Zoom))
}

// GridLines returns the screen x and y coordinates of the background grid
// lines crossing a viewport of the given size.
func (t *Transform) GridLines(size geom.Vec2) (xs, ys []float64) {
	step := GridSpacing * t.Zoom
	return gridAxis(t.Origin.X, t.Scroll.X*t.Zoom, size.X, step),
		gridAxis(t.Origin.Y, t.Scroll.Y*t.Zoom, size.Y, step)
}

func gridAxis(origin, offset, extent, step float64) []float64 {
	if step <= 0 || extent <= 0 {
		return nil
	}
	start := offset - step*float64(int(offset/step))
	if start < 0 {
		start += step
	}
	var lines []float64
	for v := start; v < extent; v += step {
		lines = append(lines, origin+v)
	}
	return lines
}
