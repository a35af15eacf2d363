package render

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"

	"github.com/wesen/nodegraph/pkg/geom"
)

func TestRecorderKeepsDrawOrder(t *testing.T) {
	var r Recorder
	red := colorful.Color{R: 1}
	r.RectFilled(geom.R(0, 0, 10, 10), red, 0, CornersNone)
	r.Text(geom.V(1, 1), 13, red, "a", AlignLeft)
	r.Line(geom.V(0, 0), geom.V(5, 5), red, 1)
	r.Text(geom.V(2, 2), 13, red, "b", AlignRight)

	assert.Equal(t, []string{"a", "b"}, r.Texts())
	assert.Equal(t, 2, r.Count(OpText))
	assert.Equal(t, 1, r.Count(OpLine))
	assert.Equal(t, 0, r.Count(OpBezier))
	lines := r.Filter(OpLine)
	assert.Equal(t, []geom.Vec2{geom.V(0, 0), geom.V(5, 5)}, lines[0].Points)
	assert.Equal(t, OpRectFilled, r.Ops[0].Kind)
}

func TestRecorderReset(t *testing.T) {
	var r Recorder
	r.Circle(geom.V(1, 1), 3, colorful.Color{}, 1)
	r.Tooltip("Number")
	r.SetCursor(CursorResize)
	r.Popup(Popup{ID: "menu"})

	r.Reset()
	assert.Empty(t, r.Ops)
	assert.Empty(t, r.Tooltips)
	assert.Empty(t, r.Popups)
	assert.Equal(t, CursorArrow, r.Cursor)
}

func TestOpKindString(t *testing.T) {
	assert.Equal(t, "bezier", OpBezier.String())
	assert.Equal(t, "triangle-filled", OpTriangleFilled.String())
	assert.Equal(t, "unknown", OpKind(99).String())
}

func TestCornerSets(t *testing.T) {
	assert.Equal(t, CornersAll, CornerTopLeft|CornerTopRight|CornerBottomLeft|CornerBottomRight)
	assert.Zero(t, CornersTop&CornersBottom)
}
