package drawutil

import "github.com/wesen/nodegraph/pkg/geom"

// Bezier samples the cubic curve p0..p3 at segments+1 evenly spaced
// parameter values, both endpoints included.
func Bezier(p0, p1, p2, p3 geom.Vec2, segments int) []geom.Vec2 {
	segments = max(segments, 1)
	pts := make([]geom.Vec2, 0, segments+1)
	for i := range segments + 1 {
		t := float64(i) / float64(segments)
		u := 1 - t
		pts = append(pts, p0.Scale(u*u*u).
			Add(p1.Scale(3*u*u*t)).
			Add(p2.Scale(3*u*t*t)).
			Add(p3.Scale(t*t*t)))
	}
	return pts
}

// TriangleGlyph picks the block character that best matches a small
// triangle. Right triangles map to the corner wedge on their right angle;
// triangles with an axis-aligned base map to the arrowhead pointing away
// from it.
func TriangleGlyph(a, b, c geom.Vec2) rune {
	v := [3]geom.Vec2{a, b, c}
	for i := range v {
		p, q, r := v[i], v[(i+1)%3], v[(i+2)%3]
		switch {
		case p.X == q.X && p.Y == r.Y, p.X == r.X && p.Y == q.Y:
			other := q.Add(r).Sub(p) // corner opposite the right angle
			right, below := p.X > other.X, p.Y > other.Y
			switch {
			case right && below:
				return '◢'
			case below:
				return '◣'
			case right:
				return '◥'
			default:
				return '◤'
			}
		}
	}
	for i := range v {
		p, q, r := v[i], v[(i+1)%3], v[(i+2)%3]
		switch {
		case p.Y == q.Y && r.Y > p.Y:
			return '▼'
		case p.Y == q.Y && r.Y < p.Y:
			return '▲'
		case p.X == q.X && r.X > p.X:
			return '▶'
		case p.X == q.X && r.X < p.X:
			return '◀'
		}
	}
	return '•'
}
