package nodeeditor

import (
	"slices"

	gerrors "github.com/wesen/nodegraph/pkg/errors"
	"github.com/wesen/nodegraph/pkg/geom"
	"github.com/wesen/nodegraph/pkg/graphmodel"
	"github.com/wesen/nodegraph/pkg/input"
	"github.com/wesen/nodegraph/pkg/render"
)

// Update processes one frame of input.
func (e *Editor) Update(in input.State) {
	e.sample(in)
	e.updateView(in)

	menuWasOpen := e.menu.open
	if menuWasOpen {
		e.updateMenu(in)
	} else {
		e.handleKeys(in)
	}
	// The add menu owns the pointer while it is open, including the frame
	// that opens or closes it.
	if !menuWasOpen && !e.menu.open {
		e.updatePointer(in)
	}

	e.updateFeedback()
	e.prevPointer = e.pointer
	e.prevScreen = e.screen
}

func (e *Editor) sample(in input.State) {
	e.focused = in.Focused
	e.multiSelect = in.MultiSelect()
	e.size = in.Size
	e.screen = in.Pointer
	e.view.Origin = in.Origin
}

// updateView applies wheel zoom and middle-button panning, then maps the
// pointer into graph space.
func (e *Editor) updateView(in input.State) {
	if e.focused {
		e.view.ApplyWheel(in.Wheel, in.Pointer)
		if in.IsDown(input.ButtonMiddle) && !in.IsPressed(input.ButtonMiddle) {
			e.view.Pan(in.Pointer.Sub(e.prevScreen))
		}
	}
	e.pointer = e.view.ToGraph(in.Pointer)
	e.dragDelta = in.DragDelta.Div(e.view.Zoom)
}

func (e *Editor) handleKeys(in input.State) {
	if !e.focused || e.gesture != GestureNone {
		return
	}
	ctrl, shift := in.KeyDown(input.KeyCtrl), in.KeyDown(input.KeyShift)
	var err error
	switch {
	case shift && !ctrl && in.KeyPressed(input.KeyA):
		e.openMenu()
	case ctrl && shift && in.KeyPressed(input.KeyZ), ctrl && in.KeyPressed(input.KeyY):
		err = e.Redo()
	case ctrl && in.KeyPressed(input.KeyZ):
		err = e.Undo()
	case ctrl && in.KeyPressed(input.KeyC):
		_, err = e.Copy()
	case ctrl && in.KeyPressed(input.KeyV):
		_, err = e.Paste()
	case in.KeyPressed(input.KeyDelete), in.KeyPressed(input.KeyBackspace):
		e.DeleteSelection()
	}
	if err != nil {
		e.hint = gerrors.Hint(err)
	}
}

// ── Pointer gestures ──

func (e *Editor) updatePointer(in input.State) {
	e.updateHover()
	if e.focused && e.gesture == GestureNone && in.IsPressed(input.ButtonLeft) {
		e.beginGesture()
	}
	switch {
	case e.gesture == GestureNone:
	case in.IsDown(input.ButtonLeft):
		e.continueGesture()
	default:
		e.endGesture()
	}
}

// updateHover picks the frontmost node under the pointer. While a node is
// being dragged or resized no other node can be hovered.
func (e *Editor) updateHover() {
	e.hovering = graphmodel.NoNode
	if !e.focused {
		return
	}
	switch e.gesture {
	case GestureResize, GestureDrag:
		if n := e.graph.Node(e.target); n != nil && graphmodel.Bounds(n).Contains(e.pointer) {
			e.hovering = e.target
		}
	default:
		e.hovering = e.graph.HitTest(e.pointer)
	}
}

// beginGesture resolves a left press. Precedence: resize corner, drag
// bar, port, node body, background.
func (e *Editor) beginGesture() {
	e.hint = ""
	e.pressAt = e.pointer
	e.prevPointer = e.pointer
	e.moved = false

	p := e.pointer
	hit := e.graph.HitTest(p)
	if n := e.graph.Node(hit); n != nil {
		if graphmodel.InResizeCorner(n, p) {
			e.clickNode(hit)
			e.gesture, e.target, e.sizeBefore = GestureResize, hit, n.Size
			return
		}
		if graphmodel.DragBar(n).Contains(p) {
			e.clickNode(hit)
			e.gesture, e.target = GestureDrag, hit
			return
		}
	}
	if port, ok := e.graph.PortAt(p); ok && (hit == graphmodel.NoNode || port.Node == hit) {
		if e.startWire(port) {
			return
		}
	}
	if hit != graphmodel.NoNode {
		e.clickNode(hit)
		return
	}
	if !e.multiSelect {
		clear(e.selection)
	}
	e.gesture = GestureBoxSelect
	e.boxBase = e.selectionSnapshot()
}

// clickNode activates a node and brings it to the front. With the
// multi-select modifier the node joins the selection; without it, clicking
// outside the selection clears it.
func (e *Editor) clickNode(id graphmodel.NodeID) {
	e.active = id
	e.graph.BringToFront(id)
	switch {
	case e.multiSelect:
		e.selection[id] = struct{}{}
	case !e.IsSelected(id):
		clear(e.selection)
	}
}

// startWire begins a connection from an output, or pulls an existing
// connection off an input and keeps dragging it from its source.
func (e *Editor) startWire(port graphmodel.PortRef) bool {
	if !port.Input {
		e.wire = &pendingWire{from: port.Node, output: port.Name}
		e.gesture = GestureConnect
		return true
	}
	c, ok := e.graph.InputConnection(port.Node, port.Name)
	if !ok {
		return false
	}
	e.graph.DeleteConnection(c)
	e.commit("detach connection")
	e.wire = &pendingWire{from: c.From, output: c.Output}
	e.gesture = GestureConnect
	return true
}

func (e *Editor) continueGesture() {
	switch e.gesture {
	case GestureResize:
		if n := e.graph.Node(e.target); n != nil {
			n.Size = e.sizeBefore.Add(e.dragDelta).Max(graphmodel.MinNodeSize)
		}
	case GestureDrag:
		e.dragNodes()
	case GestureConnect:
		e.updateWire()
	case GestureBoxSelect:
		e.updateBox()
	}
}

// dragNodes moves the whole selection when the dragged node is part of
// it, otherwise clears the selection and moves the dragged node alone.
func (e *Editor) dragNodes() {
	delta := e.pointer.Sub(e.prevPointer)
	if delta.IsZero() {
		return
	}
	e.moved = true
	if e.IsSelected(e.target) {
		for id := range e.selection {
			e.graph.Translate(id, delta)
		}
		return
	}
	clear(e.selection)
	e.graph.Translate(e.target, delta)
}

// updateWire checks the pending connection against the input port under
// the pointer, if any.
func (e *Editor) updateWire() {
	w := e.wire
	w.over, w.err = nil, nil
	port, ok := e.graph.PortAt(e.pointer)
	if !ok || !port.Input {
		return
	}
	w.over = &port
	w.err = graphmodel.CheckConnection(e.graph, e.wireConnection())
}

func (e *Editor) wireConnection() graphmodel.Connection {
	return graphmodel.Connection{From: e.wire.from, Output: e.wire.output, To: e.wire.over.Node, Input: e.wire.over.Name}
}

// updateBox resets the selection to the nodes overlapping the box, or adds
// them to the selection held at press time when the modifier is down.
func (e *Editor) updateBox() {
	if e.dragDelta.IsZero() {
		e.boxing = false
		return
	}
	e.boxing = true
	e.box = geom.RectFromPoints(e.pressAt, e.pointer)
	hits := e.graph.NodesInRect(e.box)
	if e.multiSelect {
		hits = append(slices.Clone(e.boxBase), hits...)
	}
	e.resetSelectionTo(hits)
}

func (e *Editor) endGesture() {
	n := e.graph.Node(e.target)
	switch e.gesture {
	case GestureResize:
		if n != nil && n.Size != e.sizeBefore {
			e.commit("resize")
		}
	case GestureDrag:
		switch {
		case e.moved:
			e.commit("move")
		case n != nil && e.dragDelta.IsZero() && !e.multiSelect && graphmodel.CollapseIcon(n).Contains(e.pointer):
			n.Collapsed = !n.Collapsed
			e.commit("collapse")
		}
	case GestureConnect:
		e.dropWire()
	}
	e.cancelGesture()
}

func (e *Editor) dropWire() {
	e.updateWire()
	w := e.wire
	if w.over == nil {
		return
	}
	if w.err != nil {
		e.hint = gerrors.Hint(w.err)
		e.logger.Debug("connection refused", "reason", w.err)
		return
	}
	if err := e.graph.Connect(e.wireConnection()); err != nil {
		e.hint = gerrors.Hint(err)
		return
	}
	e.commit("connect")
}

func (e *Editor) cancelGesture() {
	e.gesture = GestureNone
	e.target = graphmodel.NoNode
	e.wire = nil
	e.boxing = false
	e.boxBase = nil
}

// updateFeedback decides the tooltip and cursor for the frame.
func (e *Editor) updateFeedback() {
	e.tooltip = ""
	e.cursor = render.CursorArrow
	if !e.focused {
		return
	}
	if e.menu.open {
		if item, ok := e.menuItemAt(e.screen); ok {
			e.tooltip = item.Description
		}
		return
	}

	hovered := e.graph.Node(e.hovering)
	if e.gesture == GestureResize || (e.gesture == GestureNone && hovered != nil && graphmodel.InResizeCorner(hovered, e.pointer)) {
		e.cursor = render.CursorResize
	}

	switch {
	case e.wire != nil && e.wire.err != nil:
		e.tooltip = gerrors.Hint(e.wire.err)
	case e.gesture == GestureNone || e.gesture == GestureConnect:
		if port, ok := e.graph.PortAt(e.pointer); ok {
			e.tooltip = e.portType(port)
		} else if e.gesture == GestureNone && hovered != nil && graphmodel.DragBar(hovered).Contains(e.pointer) {
			e.tooltip = hovered.Type.Description
		}
	}
}

func (e *Editor) portType(p graphmodel.PortRef) string {
	n := e.graph.Node(p.Node)
	c := n.Output(p.Name)
	if p.Input {
		c = n.Input(p.Name)
	}
	if c == nil {
		return ""
	}
	return c.Type.Name
}
