package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wesen/nodegraph/pkg/geom"
)

func assertVecInDelta(t *testing.T, want, got geom.Vec2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9)
	assert.InDelta(t, want.Y, got.Y, 1e-9)
}

func TestScreenGraphRoundTrip(t *testing.T) {
	tr := &Transform{Origin: geom.V(10, 20), Scroll: geom.V(-30, 5), Zoom: 2, ZoomSpeed: 1}
	p := geom.V(100, 50)
	s := tr.ToScreen(p)
	assertVecInDelta(t, geom.V(10+(-30+100)*2, 20+(5+50)*2), s)
	assertVecInDelta(t, p, tr.ToGraph(s))
}

func TestWheelKeepsPointAnchored(t *testing.T) {
	tr := New()
	tr.Origin = geom.V(5, 5)
	tr.Scroll = geom.V(12, -7)
	pointer := geom.V(320, 200)
	before := tr.ToGraph(pointer)

	tr.ApplyWheel(1, pointer)
	assert.InDelta(t, 1.15, tr.Zoom, 1e-9)
	assertVecInDelta(t, before, tr.ToGraph(pointer))

	tr.ApplyWheel(-3, pointer)
	assertVecInDelta(t, before, tr.ToGraph(pointer))
}

func TestWheelClampsZoom(t *testing.T) {
	tr := New()
	for range 100 {
		tr.ApplyWheel(5, geom.V(0, 0))
	}
	assert.Equal(t, MaxZoom, tr.Zoom)
	for range 100 {
		tr.ApplyWheel(-5, geom.V(0, 0))
	}
	assert.Equal(t, MinZoom, tr.Zoom)
}

func TestPanUsesZoomedDelta(t *testing.T) {
	tr := New()
	tr.Zoom = 2
	tr.Pan(geom.V(20, -10))
	assertVecInDelta(t, geom.V(10, -5), tr.Scroll)
}

func TestLengthScalesWithZoom(t *testing.T) {
	tr := New()
	assert.InDelta(t, 6, tr.Length(6), 1e-9)
	tr.Zoom = 2.5
	assert.InDelta(t, 15, tr.Length(6), 1e-9)
}

func TestGridLines(t *testing.T) {
	tr := New()
	tr.Scroll = geom.V(-20, 0)
	xs, ys := tr.GridLines(geom.V(160, 100))
	assert.Equal(t, []float64{30, 80, 130}, xs)
	assert.Equal(t, []float64{0, 50}, ys)
}
