// Package nodeeditor is the interactive core of the node graph editor.
//
// An Editor owns one graph, its selection and its undo history. The host
// calls Update once per frame with the sampled input and then Draw with a
// render.Surface; Frame does both. Within Update the order is fixed:
// zoom and pan, keyboard and add menu, pointer gesture, history commit.
// Exactly one gesture (resize, drag, connect or box select) is active at
// a time.
package nodeeditor

import (
	"io"
	"maps"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/wesen/nodegraph/pkg/geom"
	"github.com/wesen/nodegraph/pkg/graphmodel"
	"github.com/wesen/nodegraph/pkg/history"
	"github.com/wesen/nodegraph/pkg/input"
	"github.com/wesen/nodegraph/pkg/nodetype"
	"github.com/wesen/nodegraph/pkg/render"
	"github.com/wesen/nodegraph/pkg/view"
)

// DefaultPasteOffset is added to every pasted node's position.
var DefaultPasteOffset = geom.V(30, 30)

// Gesture is the pointer gesture in progress.
type Gesture int

const (
	GestureNone Gesture = iota
	GestureResize
	GestureDrag
	GestureConnect
	GestureBoxSelect
)

func (g Gesture) String() string {
	switch g {
	case GestureResize:
		return "resize"
	case GestureDrag:
		return "drag"
	case GestureConnect:
		return "connect"
	case GestureBoxSelect:
		return "select"
	default:
		return "idle"
	}
}

// Option configures an Editor.
type Option func(*Editor)

func WithLogger(l *log.Logger) Option      { return func(e *Editor) { e.logger = l } }
func WithClipboard(c Clipboard) Option     { return func(e *Editor) { e.clipboard = c } }
func WithPasteOffset(off geom.Vec2) Option { return func(e *Editor) { e.pasteOffset = off } }
func WithZoomSpeed(speed float64) Option   { return func(e *Editor) { e.view.ZoomSpeed = speed } }
func WithDebug(debug bool) Option          { return func(e *Editor) { e.debug = debug } }
func WithGraph(g *graphmodel.Graph) Option { return func(e *Editor) { e.graph = g } }

func WithHistory(depth, chunk int) Option {
	return func(e *Editor) { e.historyOpts = []history.Option{history.WithDepth(depth, chunk)} }
}

func WithMenuMetrics(width, row float64) Option {
	return func(e *Editor) { e.menuWidth, e.menuRow = width, row }
}

// Editor is one node graph editing session.
type Editor struct {
	id          string
	catalog     *nodetype.Catalog
	graph       *graphmodel.Graph
	view        *view.Transform
	history     *history.History
	historyOpts []history.Option
	clipboard   Clipboard
	logger      *log.Logger
	pasteOffset geom.Vec2
	debug       bool

	selection map[graphmodel.NodeID]struct{}
	active    graphmodel.NodeID
	hovering  graphmodel.NodeID

	// Per-frame pointer state. pointer and prevPointer are graph space.
	focused     bool
	multiSelect bool
	size        geom.Vec2
	screen      geom.Vec2
	prevScreen  geom.Vec2
	pointer     geom.Vec2
	prevPointer geom.Vec2
	dragDelta   geom.Vec2 // graph units

	gesture    Gesture
	target     graphmodel.NodeID
	sizeBefore geom.Vec2
	pressAt    geom.Vec2 // graph space
	moved      bool
	wire       *pendingWire
	boxBase    []graphmodel.NodeID
	box        geom.Rect
	boxing     bool

	menu      addMenu
	menuWidth float64
	menuRow   float64

	hint    string
	tooltip string
	cursor  render.Cursor
}

// pendingWire is a half-built connection following the pointer.
type pendingWire struct {
	from   graphmodel.NodeID
	output string
	over   *graphmodel.PortRef // input port under the pointer, if any
	err    error               // why connecting to over would be refused
}

// New creates an editor over an empty graph and records it as the first
// history entry.
func New(cat *nodetype.Catalog, opts ...Option) *Editor {
	e := &Editor{
		id:          uuid.NewString(),
		catalog:     cat,
		graph:       graphmodel.New(),
		view:        view.New(),
		clipboard:   NewMemoryClipboard(),
		logger:      log.New(io.Discard),
		pasteOffset: DefaultPasteOffset,
		selection:   make(map[graphmodel.NodeID]struct{}),
		active:      graphmodel.NoNode,
		hovering:    graphmodel.NoNode,
		target:      graphmodel.NoNode,
		menuWidth:   defaultMenuWidth,
		menuRow:     defaultMenuRow,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.history = history.New(e.historyOpts...)
	e.commit("initial")
	return e
}

// ID returns the editor's unique identifier.
func (e *Editor) ID() string { return e.id }

func (e *Editor) Graph() *graphmodel.Graph    { return e.graph }
func (e *Editor) Catalog() *nodetype.Catalog  { return e.catalog }
func (e *Editor) View() *view.Transform       { return e.view }
func (e *Editor) History() *history.History   { return e.history }
func (e *Editor) Active() graphmodel.NodeID   { return e.active }
func (e *Editor) Hovering() graphmodel.NodeID { return e.hovering }
func (e *Editor) Gesture() Gesture            { return e.gesture }
func (e *Editor) MenuOpen() bool              { return e.menu.open }

// Hint returns the most recent user-facing message, such as the reason a
// connection was refused. Starting a new gesture clears it.
func (e *Editor) Hint() string { return e.hint }

// Frame runs Update then Draw.
func (e *Editor) Frame(in input.State, s render.Surface) {
	e.Update(in)
	e.Draw(s)
}

// commit records the graph in history. In debug mode a graph that fails
// validation panics here, right after the edit that broke it.
func (e *Editor) commit(reason string) {
	e.history.Commit(e.graph)
	e.logger.Debug("history commit", "reason", reason, "depth", e.history.Len(), "cursor", e.history.Index())
	if e.debug {
		if err := e.graph.Validate(); err != nil {
			panic(err)
		}
	}
}

// ── Graph edits ──

// AddNode creates a node of type t at pos (graph space), makes it active
// and commits.
func (e *Editor) AddNode(t *nodetype.NodeType, pos geom.Vec2) *graphmodel.Node {
	n := e.graph.AddNode(t, pos)
	e.active = n.ID
	e.commit("add node")
	return n
}

// AddChild creates a node inside parent's sub-graph and commits.
func (e *Editor) AddChild(parent graphmodel.NodeID, t *nodetype.NodeType, pos geom.Vec2) (*graphmodel.Node, error) {
	n, err := e.graph.AddChild(parent, t, pos)
	if err != nil {
		return nil, err
	}
	e.commit("add child")
	return n, nil
}

// Connect commits a connection if it is legal. The graph is unchanged on
// error.
func (e *Editor) Connect(from graphmodel.NodeID, output string, to graphmodel.NodeID, inputName string) error {
	c := graphmodel.Connection{From: from, Output: output, To: to, Input: inputName}
	if err := e.graph.ConnectChecked(c); err != nil {
		e.logger.Debug("connection refused", "err", err)
		return err
	}
	e.commit("connect")
	return nil
}

// DeleteConnection removes c and commits. It reports whether c existed.
func (e *Editor) DeleteConnection(c graphmodel.Connection) bool {
	if !e.graph.DeleteConnection(c) {
		return false
	}
	e.commit("delete connection")
	return true
}

// DeleteNode removes a node with its connections and commits.
func (e *Editor) DeleteNode(id graphmodel.NodeID) bool {
	if !e.removeNode(id) {
		return false
	}
	e.commit("delete node")
	return true
}

// DeleteSelection removes every selected node, or the active node when
// nothing is selected, then commits once. It returns the number of nodes
// removed.
func (e *Editor) DeleteSelection() int {
	ids := e.Selection()
	if len(ids) == 0 && e.active != graphmodel.NoNode {
		ids = []graphmodel.NodeID{e.active}
	}
	removed := 0
	for _, id := range ids {
		if e.removeNode(id) {
			removed++
		}
	}
	if removed > 0 {
		e.commit("delete selection")
	}
	return removed
}

// removeNode deletes a node and every editor reference to it.
func (e *Editor) removeNode(id graphmodel.NodeID) bool {
	if !e.graph.DeleteNode(id) {
		return false
	}
	delete(e.selection, id)
	if e.active == id {
		e.active = graphmodel.NoNode
	}
	if e.hovering == id {
		e.hovering = graphmodel.NoNode
	}
	if e.target == id {
		e.cancelGesture()
	}
	return true
}

// ── History ──

// Undo restores the previous snapshot. A failed restore leaves the graph
// and the history cursor unchanged.
func (e *Editor) Undo() error {
	g, err := e.history.Undo(e.catalog)
	return e.restored("undo", g, err)
}

// Redo restores the next snapshot. Same contract as Undo.
func (e *Editor) Redo() error {
	g, err := e.history.Redo(e.catalog)
	return e.restored("redo", g, err)
}

func (e *Editor) restored(op string, g *graphmodel.Graph, err error) error {
	if err != nil {
		e.logger.Warn("snapshot restore failed", "op", op, "err", err)
		return err
	}
	if g == nil {
		return nil
	}
	// Restored graphs carry fresh IDs; every reference into the old graph
	// is dropped.
	e.graph = g
	clear(e.selection)
	e.active = graphmodel.NoNode
	e.hovering = graphmodel.NoNode
	e.cancelGesture()
	e.logger.Debug(op, "cursor", e.history.Index(), "depth", e.history.Len())
	return nil
}

// ── Selection ──

// Select adds id to the selection.
func (e *Editor) Select(id graphmodel.NodeID) {
	if e.graph.Node(id) != nil {
		e.selection[id] = struct{}{}
	}
}

// SetSelection replaces the selection.
func (e *Editor) SetSelection(ids ...graphmodel.NodeID) {
	clear(e.selection)
	for _, id := range ids {
		e.Select(id)
	}
}

func (e *Editor) ClearSelection() { clear(e.selection) }

func (e *Editor) IsSelected(id graphmodel.NodeID) bool {
	_, ok := e.selection[id]
	return ok
}

// Selection returns the selected node IDs in draw order.
func (e *Editor) Selection() []graphmodel.NodeID {
	var ids []graphmodel.NodeID
	for _, id := range e.graph.IDs() {
		if e.IsSelected(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// SetActive makes id the active node, or clears it with NoNode.
func (e *Editor) SetActive(id graphmodel.NodeID) {
	if id == graphmodel.NoNode || e.graph.Node(id) != nil {
		e.active = id
	}
}

// selectedOrActive returns the selection, or the active node alone.
func (e *Editor) selectedOrActive() []graphmodel.NodeID {
	ids := e.Selection()
	if len(ids) == 0 && e.graph.Node(e.active) != nil {
		return []graphmodel.NodeID{e.active}
	}
	return ids
}

func (e *Editor) resetSelectionTo(ids []graphmodel.NodeID) {
	clear(e.selection)
	for _, id := range ids {
		e.selection[id] = struct{}{}
	}
}

func (e *Editor) selectionSnapshot() []graphmodel.NodeID {
	return slices.Collect(maps.Keys(e.selection))
}
