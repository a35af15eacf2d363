// Package geom provides the small amount of 2D float geometry the editor
// needs: vectors, axis-aligned rectangles and triangle containment.
//
// Graph space and screen space both use these types; pkg/view converts
// between them.
package geom

import "math"

// Vec2 is a 2D vector or point.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Div(s float64) Vec2 { return Vec2{v.X / s, v.Y / s} }
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }
func (v Vec2) Max(o Vec2) Vec2 { return Vec2{math.Max(v.X, o.X), math.Max(v.Y, o.Y)} }
func (v Vec2) Min(o Vec2) Vec2 { return Vec2{math.Min(v.X, o.X), math.Min(v.Y, o.Y)} }
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Rect is an axis-aligned rectangle. Min is inclusive, Max exclusive.
type Rect struct {
	Min, Max Vec2
}

// R builds a rectangle from its corners.
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{Min: Vec2{x0, y0}, Max: Vec2{x1, y1}}
}

// RectFromPoints returns the canonical rectangle spanned by two arbitrary
// corner points.
func RectFromPoints(a, b Vec2) Rect {
	return Rect{Min: a.Min(b), Max: a.Max(b)}
}

func (r Rect) Size() Vec2 { return r.Max.Sub(r.Min) }
func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }
func (r Rect) Center() Vec2 { return r.Min.Add(r.Max).Scale(0.5) }
func (r Rect) Empty() bool { return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Overlaps reports whether r and o share any area.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X &&
		r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}

// Translate moves r by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// TriangleContains reports whether p lies inside (or on the edge of) the
// triangle abc, regardless of winding.
func TriangleContains(a, b, c, p Vec2) bool {
	d1 := cross(p, a, b)
	d2 := cross(p, b, c)
	d3 := cross(p, c, a)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func cross(p, a, b Vec2) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
