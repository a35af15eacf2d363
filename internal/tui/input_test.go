package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesen/nodegraph/pkg/geom"
	"github.com/wesen/nodegraph/pkg/input"
)

var testMetrics = Metrics{CellW: 8, CellH: 16}

func TestMetrics(t *testing.T) {
	assert.Equal(t, geom.V(20, 56), testMetrics.Pixel(2, 3))

	x, y := testMetrics.Cell(geom.V(20, 56))
	assert.Equal(t, [2]int{2, 3}, [2]int{x, y})
	x, y = testMetrics.Cell(geom.V(-1, -1))
	assert.Equal(t, [2]int{-1, -1}, [2]int{x, y})

	x, y = testMetrics.Snap(testMetrics.Pixel(3, 4))
	assert.Equal(t, [2]int{3, 4}, [2]int{x, y})
	x, y = testMetrics.Snap(geom.V(24.1, 64))
	assert.Equal(t, [2]int{3, 4}, [2]int{x, y})
}

func TestHostInputMouseDrag(t *testing.T) {
	h := newHostInput(testMetrics, defaultKeyMap())

	h.mouse(tea.MouseClickMsg{X: 2, Y: 3, Button: tea.MouseLeft})
	s := h.frame(geom.Vec2{}, geom.V(640, 320))
	assert.True(t, s.IsPressed(input.ButtonLeft))
	assert.True(t, s.IsDown(input.ButtonLeft))
	assert.Equal(t, geom.V(20, 56), s.Pointer)
	assert.True(t, s.Focused)
	h.endFrame()

	h.mouse(tea.MouseMotionMsg{X: 4, Y: 3, Button: tea.MouseLeft, Mod: tea.ModShift})
	s = h.frame(geom.Vec2{}, geom.V(640, 320))
	assert.False(t, s.IsPressed(input.ButtonLeft))
	assert.True(t, s.IsDown(input.ButtonLeft))
	assert.Equal(t, geom.V(16, 0), s.DragDelta)
	assert.True(t, s.KeyDown(input.KeyShift))
	assert.True(t, s.MultiSelect())
	h.endFrame()

	// legacy encodings report releases without a button
	h.mouse(tea.MouseReleaseMsg{X: 4, Y: 3, Button: tea.MouseNone})
	s = h.frame(geom.Vec2{}, geom.V(640, 320))
	assert.True(t, s.IsReleased(input.ButtonLeft))
	assert.False(t, s.IsDown(input.ButtonLeft))
	assert.False(t, s.IsReleased(input.ButtonMiddle), "only held buttons are released")
	assert.Equal(t, geom.V(16, 0), s.DragDelta, "delta survives the release frame")
	assert.False(t, s.KeyDown(input.KeyShift))
	h.endFrame()

	assert.True(t, h.state.DragDelta.IsZero())
	assert.False(t, h.state.IsReleased(input.ButtonLeft))
}

func TestHostInputWheelAndMiddle(t *testing.T) {
	h := newHostInput(testMetrics, defaultKeyMap())
	h.mouse(tea.MouseWheelMsg{X: 1, Y: 1, Button: tea.MouseWheelUp})
	h.mouse(tea.MouseWheelMsg{X: 1, Y: 1, Button: tea.MouseWheelUp})
	assert.Equal(t, 2.0, h.state.Wheel)
	h.endFrame()
	assert.Zero(t, h.state.Wheel)

	h.mouse(tea.MouseWheelMsg{X: 1, Y: 1, Button: tea.MouseWheelDown})
	assert.Equal(t, -1.0, h.state.Wheel)
	h.endFrame()

	h.mouse(tea.MouseClickMsg{X: 1, Y: 1, Button: tea.MouseMiddle})
	assert.True(t, h.state.IsPressed(input.ButtonMiddle))
	assert.True(t, h.state.DragDelta.IsZero())
	h.endFrame()
	h.mouse(tea.MouseReleaseMsg{X: 1, Y: 1, Button: tea.MouseMiddle})
	assert.True(t, h.state.IsReleased(input.ButtonMiddle))
}

func TestHostInputKeys(t *testing.T) {
	tests := []struct {
		name        string
		msg         tea.KeyPressMsg
		key         input.Key
		shift, ctrl bool
		chars       string
	}{
		{"add node", tea.KeyPressMsg{Code: 'a', ShiftedCode: 'A', Text: "A", Mod: tea.ModShift}, input.KeyA, true, false, "A"},
		{"undo", tea.KeyPressMsg{Code: 'z', Mod: tea.ModCtrl}, input.KeyZ, false, true, ""},
		{"redo shift", tea.KeyPressMsg{Code: 'z', Mod: tea.ModCtrl | tea.ModShift}, input.KeyZ, true, true, ""},
		{"redo y", tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}, input.KeyY, false, true, ""},
		{"copy", tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}, input.KeyC, false, true, ""},
		{"paste", tea.KeyPressMsg{Code: 'v', Mod: tea.ModCtrl}, input.KeyV, false, true, ""},
		{"delete", tea.KeyPressMsg{Code: tea.KeyDelete}, input.KeyDelete, false, false, ""},
		{"backspace", tea.KeyPressMsg{Code: tea.KeyBackspace}, input.KeyBackspace, false, false, ""},
		{"enter", tea.KeyPressMsg{Code: tea.KeyEnter}, input.KeyEnter, false, false, ""},
		{"escape", tea.KeyPressMsg{Code: tea.KeyEscape}, input.KeyEscape, false, false, ""},
		{"up", tea.KeyPressMsg{Code: tea.KeyUp}, input.KeyUp, false, false, ""},
		{"down", tea.KeyPressMsg{Code: tea.KeyDown}, input.KeyDown, false, false, ""},
		{"letter", tea.KeyPressMsg{Code: 'x', Text: "x"}, input.KeyNone, false, false, "x"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHostInput(testMetrics, defaultKeyMap())
			h.key(tc.msg)
			s := h.state
			if tc.key != input.KeyNone {
				assert.True(t, s.KeyPressed(tc.key), "%s pressed", tc.key)
			} else {
				assert.Empty(t, s.KeysPressed)
			}
			assert.Equal(t, tc.shift, s.KeyDown(input.KeyShift))
			assert.Equal(t, tc.ctrl, s.KeyDown(input.KeyCtrl))
			assert.Equal(t, tc.chars, string(s.Chars))

			h.endFrame()
			require.Empty(t, h.state.KeysPressed)
			assert.Empty(t, h.state.Chars)
		})
	}
}
