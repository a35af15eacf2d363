package tui

import (
	"math"
	"unicode"
	"unicode/utf8"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/wesen/nodegraph/pkg/geom"
	"github.com/wesen/nodegraph/pkg/input"
)

// Metrics is the size of one terminal cell in screen pixels.
type Metrics struct {
	CellW, CellH float64
}

// Pixel returns the centre of cell (x, y).
func (m Metrics) Pixel(x, y int) geom.Vec2 {
	return geom.V(float64(x)*m.CellW+m.CellW/2, float64(y)*m.CellH+m.CellH/2)
}

// Cell returns the cell containing pixel p.
func (m Metrics) Cell(p geom.Vec2) (x, y int) {
	return int(math.Floor(p.X / m.CellW)), int(math.Floor(p.Y / m.CellH))
}

// Snap returns the cell whose centre is the first one at or after p on
// both axes, so rows laid out from p line up with cell centres.
func (m Metrics) Snap(p geom.Vec2) (x, y int) {
	return int(math.Ceil(p.X/m.CellW - 0.5)), int(math.Ceil(p.Y/m.CellH - 0.5))
}

// hostInput accumulates terminal events into editor input frames. Button
// and modifier state persist across frames; presses, releases, wheel,
// keys and typed characters last one frame.
type hostInput struct {
	metrics Metrics
	keys    keyMap
	state   input.State
	pressAt geom.Vec2
}

func newHostInput(m Metrics, keys keyMap) *hostInput {
	h := &hostInput{metrics: m, keys: keys}
	h.state.Focused = true
	return h
}

func mouseButton(b tea.MouseButton) (input.Button, bool) {
	switch b {
	case tea.MouseLeft:
		return input.ButtonLeft, true
	case tea.MouseRight:
		return input.ButtonRight, true
	case tea.MouseMiddle:
		return input.ButtonMiddle, true
	}
	return 0, false
}

func (h *hostInput) mouse(msg tea.MouseMsg) {
	ms := msg.Mouse()
	s := &h.state
	s.SetModifiers(ms.Mod.Contains(tea.ModShift), ms.Mod.Contains(tea.ModCtrl))
	s.Pointer = h.metrics.Pixel(ms.X, ms.Y)

	switch msg.(type) {
	case tea.MouseClickMsg:
		if b, ok := mouseButton(ms.Button); ok {
			s.Down[b], s.Pressed[b] = true, true
			if b == input.ButtonLeft {
				h.pressAt = s.Pointer
			}
		}
	case tea.MouseReleaseMsg:
		// Legacy mouse encodings do not say which button went up.
		if b, ok := mouseButton(ms.Button); ok {
			h.release(b)
		} else {
			for _, b := range []input.Button{input.ButtonLeft, input.ButtonRight, input.ButtonMiddle} {
				h.release(b)
			}
		}
	case tea.MouseWheelMsg:
		switch ms.Button {
		case tea.MouseWheelUp:
			s.Wheel++
		case tea.MouseWheelDown:
			s.Wheel--
		}
	}
	h.updateDrag()
}

func (h *hostInput) release(b input.Button) {
	if h.state.Down[b] {
		h.state.Down[b], h.state.Released[b] = false, true
	}
}

// updateDrag keeps DragDelta in step with the left button; it still holds
// on the release frame so the editor can tell a click from a drag.
func (h *hostInput) updateDrag() {
	s := &h.state
	if s.Down[input.ButtonLeft] || s.Released[input.ButtonLeft] {
		s.DragDelta = s.Pointer.Sub(h.pressAt)
	} else {
		s.DragDelta = geom.Vec2{}
	}
}

func (h *hostInput) key(msg tea.KeyPressMsg) {
	k := msg.Key()
	first, _ := utf8.DecodeRuneInString(k.Text)
	shift := k.Mod.Contains(tea.ModShift) || unicode.IsUpper(first)
	ctrl := k.Mod.Contains(tea.ModCtrl)
	s := &h.state
	s.SetModifiers(shift, ctrl)

	switch {
	case key.Matches(msg, h.keys.AddNode):
		s.SetModifiers(true, false)
		s.PressKey(input.KeyA)
	case key.Matches(msg, h.keys.Undo):
		s.PressKey(input.KeyZ)
	case key.Matches(msg, h.keys.Redo):
		if shift {
			s.PressKey(input.KeyZ)
		} else {
			s.PressKey(input.KeyY)
		}
	case key.Matches(msg, h.keys.Copy):
		s.PressKey(input.KeyC)
	case key.Matches(msg, h.keys.Paste):
		s.PressKey(input.KeyV)
	case key.Matches(msg, h.keys.Delete):
		if k.Code == tea.KeyBackspace {
			s.PressKey(input.KeyBackspace)
		} else {
			s.PressKey(input.KeyDelete)
		}
	}

	switch k.Code {
	case tea.KeyEnter:
		s.PressKey(input.KeyEnter)
	case tea.KeyEscape:
		s.PressKey(input.KeyEscape)
	case tea.KeyUp:
		s.PressKey(input.KeyUp)
	case tea.KeyDown:
		s.PressKey(input.KeyDown)
	}
	if !ctrl {
		s.Chars = append(s.Chars, []rune(k.Text)...)
	}
}

func (h *hostInput) focus(focused bool) {
	h.state.Focused = focused
}

// frame returns the input for one editor update over the given area.
func (h *hostInput) frame(origin, size geom.Vec2) input.State {
	h.state.Origin, h.state.Size = origin, size
	return h.state
}

func (h *hostInput) endFrame() {
	h.state.EndFrame()
	h.updateDrag()
}
