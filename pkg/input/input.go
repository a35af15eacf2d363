// Package input defines the per-frame input sample the editor consumes.
//
// A host (terminal, window system, test script) fills one State per frame.
// Positions are screen pixels. Pressed/Released and KeysPressed are edge
// events valid for exactly one frame; Down and KeysDown are levels.
package input

import (
	"github.com/wesen/nodegraph/pkg/geom"
)

// Button indexes the pointer button arrays.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	buttonCount
)

// Key is a named key the editor reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyUp
	KeyDown
	KeyShift
	KeyCtrl
	KeyA
	KeyC
	KeyV
	KeyY
	KeyZ
)

var keyNames = map[Key]string{
	KeyDelete:    "delete",
	KeyBackspace: "backspace",
	KeyEnter:     "enter",
	KeyEscape:    "esc",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyShift:     "shift",
	KeyCtrl:      "ctrl",
	KeyA:         "a",
	KeyC:         "c",
	KeyV:         "v",
	KeyY:         "y",
	KeyZ:         "z",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "none"
}

// State is one frame of sampled input.
type State struct {
	// Origin and Size describe the editor's drawing area in screen px.
	Origin geom.Vec2
	Size   geom.Vec2

	Pointer  geom.Vec2
	Down     [buttonCount]bool
	Pressed  [buttonCount]bool
	Released [buttonCount]bool

	// DragDelta is the pointer movement since the left button was pressed,
	// in screen px. Zero when the button is up.
	DragDelta geom.Vec2

	// Wheel is the vertical scroll amount this frame, in notches.
	Wheel float64

	KeysDown    map[Key]bool
	KeysPressed map[Key]bool

	// Chars are the characters typed this frame, in order.
	Chars []rune

	Focused bool
}

// IsDown reports whether button b is held.
func (s State) IsDown(b Button) bool { return s.Down[b] }

// IsPressed reports whether button b went down this frame.
func (s State) IsPressed(b Button) bool { return s.Pressed[b] }

// IsReleased reports whether button b went up this frame.
func (s State) IsReleased(b Button) bool { return s.Released[b] }

// KeyDown reports whether k is held.
func (s State) KeyDown(k Key) bool { return s.KeysDown[k] }

// KeyPressed reports whether k went down this frame.
func (s State) KeyPressed(k Key) bool { return s.KeysPressed[k] }

// MultiSelect reports whether the multi-select modifier (Shift or Ctrl)
// is held.
func (s State) MultiSelect() bool {
	return s.KeyDown(KeyShift) || s.KeyDown(KeyCtrl)
}

// EndFrame clears the one-frame edge events so the state can be reused
// as the next frame's starting point.
func (s *State) EndFrame() {
	s.Pressed = [buttonCount]bool{}
	s.Released = [buttonCount]bool{}
	s.Wheel = 0
	s.KeysPressed = nil
	s.Chars = nil
	for k := range s.KeysDown {
		if k != KeyShift && k != KeyCtrl {
			delete(s.KeysDown, k)
		}
	}
}

// PressKey marks k as pressed this frame and held.
func (s *State) PressKey(k Key) {
	if s.KeysPressed == nil {
		s.KeysPressed = make(map[Key]bool)
	}
	if s.KeysDown == nil {
		s.KeysDown = make(map[Key]bool)
	}
	s.KeysPressed[k] = true
	s.KeysDown[k] = true
}

// SetModifiers sets the held state of Shift and Ctrl.
func (s *State) SetModifiers(shift, ctrl bool) {
	if s.KeysDown == nil {
		s.KeysDown = make(map[Key]bool)
	}
	s.KeysDown[KeyShift] = shift
	s.KeysDown[KeyCtrl] = ctrl
}
