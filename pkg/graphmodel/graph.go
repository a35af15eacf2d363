package graphmodel

import (
	"slices"

	gerrors "github.com/wesen/nodegraph/pkg/errors"
	"github.com/wesen/nodegraph/pkg/geom"
	"github.com/wesen/nodegraph/pkg/nodetype"
)

// NodeID is a stable handle for a node within one Graph. IDs are never
// reused by the graph that issued them.
type NodeID int

// NoNode is the zero handle: "no node".
const NoNode NodeID = -1

// Node is one placed instance of a node type.
type Node struct {
	ID        NodeID
	Type      *nodetype.NodeType
	Pos       geom.Vec2
	Size      geom.Vec2
	Collapsed bool

	// Per-instance ports appended after the type's fixed ports.
	ExtraInputs  []*nodetype.Connector
	ExtraOutputs []*nodetype.Connector

	// Children is the node's nested sub-graph, nil until the first child
	// is added. Only node types with CanHaveChildren may have one.
	Children *Graph
}

// Inputs returns the node's visible inputs: fixed inputs then extra inputs.
func (n *Node) Inputs() []*nodetype.Connector {
	return concat(n.Type.Inputs, n.ExtraInputs)
}

// Outputs returns the node's visible outputs: fixed outputs then extra outputs.
func (n *Node) Outputs() []*nodetype.Connector {
	return concat(n.Type.Outputs, n.ExtraOutputs)
}

// Input returns the visible input named name, or nil.
func (n *Node) Input(name string) *nodetype.Connector {
	return lookup(n.Inputs(), name)
}

// Output returns the visible output named name, or nil.
func (n *Node) Output(name string) *nodetype.Connector {
	return lookup(n.Outputs(), name)
}

func (n *Node) hasPortNamed(name string) bool {
	return n.Input(name) != nil || n.Output(name) != nil
}

func concat(a, b []*nodetype.Connector) []*nodetype.Connector {
	out := make([]*nodetype.Connector, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func lookup(cs []*nodetype.Connector, name string) *nodetype.Connector {
	for _, c := range cs {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Connection is a directed edge from an output port to an input port.
// Connections compare structurally with ==.
type Connection struct {
	From   NodeID
	Output string
	To     NodeID
	Input  string
}

// Touches reports whether id is either endpoint of c.
func (c Connection) Touches(id NodeID) bool {
	return c.From == id || c.To == id
}

// Graph is the editor's working set: nodes in draw order (last is
// frontmost) plus the single authoritative list of connections.
type Graph struct {
	nodes  map[NodeID]*Node
	order  []NodeID // draw / pick order, back to front
	conns  []Connection
	nextID NodeID
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[NodeID]*Node)}
}

// ── Node operations ──

// AddNode creates a node of type t at pos with the default size and puts
// it in front of every other node.
func (g *Graph) AddNode(t *nodetype.NodeType, pos geom.Vec2) *Node {
	id := g.nextID
	g.nextID++
	n := &Node{ID: id, Type: t, Pos: pos, Size: DefaultNodeSize}
	g.nodes[id] = n
	g.order = append(g.order, id)
	return n
}

// Node returns the node with the given ID, or nil.
func (g *Graph) Node(id NodeID) *Node {
	return g.nodes[id]
}

// Nodes returns all nodes in draw order, back to front.
func (g *Graph) Nodes() []*Node {
	result := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		result = append(result, g.nodes[id])
	}
	return result
}

// IDs returns all node IDs in draw order.
func (g *Graph) IDs() []NodeID {
	return slices.Clone(g.order)
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.order) }

// DeleteNode removes every connection touching the node, then the node
// itself. It reports whether the node existed.
func (g *Graph) DeleteNode(id NodeID) bool {
	if _, ok := g.nodes[id]; !ok {
		return false
	}
	g.conns = slices.DeleteFunc(g.conns, func(c Connection) bool { return c.Touches(id) })
	delete(g.nodes, id)
	g.order = slices.DeleteFunc(g.order, func(o NodeID) bool { return o == id })
	return true
}

// BringToFront moves the node to the end of the draw order.
func (g *Graph) BringToFront(id NodeID) {
	i := slices.Index(g.order, id)
	if i < 0 || i == len(g.order)-1 {
		return
	}
	g.order = append(slices.Delete(g.order, i, i+1), id)
}

// Translate moves a node by delta.
func (g *Graph) Translate(id NodeID, delta geom.Vec2) {
	if n, ok := g.nodes[id]; ok {
		n.Pos = n.Pos.Add(delta)
	}
}

// AddInput appends a per-instance input port. Port names must stay unique
// across the node's inputs and outputs.
func (g *Graph) AddInput(id NodeID, c *nodetype.Connector) error {
	n, err := g.portTarget(id, c)
	if err != nil {
		return err
	}
	n.ExtraInputs = append(n.ExtraInputs, c)
	return nil
}

// AddOutput appends a per-instance output port.
func (g *Graph) AddOutput(id NodeID, c *nodetype.Connector) error {
	n, err := g.portTarget(id, c)
	if err != nil {
		return err
	}
	n.ExtraOutputs = append(n.ExtraOutputs, c)
	return nil
}

func (g *Graph) portTarget(id NodeID, c *nodetype.Connector) (*Node, error) {
	n := g.nodes[id]
	if n == nil {
		return nil, gerrors.New(gerrors.ErrCodeUnknownNode, "node %d does not exist", id)
	}
	if n.hasPortNamed(c.Name) {
		return nil, gerrors.New(gerrors.ErrCodeDuplicatePort, "node %d already has a port named %q", id, c.Name)
	}
	return n, nil
}

// AddChild creates a node of type t inside parent's nested sub-graph.
func (g *Graph) AddChild(parent NodeID, t *nodetype.NodeType, pos geom.Vec2) (*Node, error) {
	p := g.nodes[parent]
	if p == nil {
		return nil, gerrors.New(gerrors.ErrCodeUnknownNode, "node %d does not exist", parent)
	}
	if !p.Type.CanHaveChildren {
		return nil, gerrors.New(gerrors.ErrCodeChildrenNotAllowed, "%s nodes cannot have children", p.Type.Name)
	}
	if p.Children == nil {
		p.Children = New()
	}
	return p.Children.AddNode(t, pos), nil
}

// Merge moves every node and connection of other into g, in other's draw
// order, in front of g's existing nodes. It returns the new IDs in that
// order. other must not be used afterwards.
func (g *Graph) Merge(other *Graph) []NodeID {
	remap := make(map[NodeID]NodeID, len(other.order))
	added := make([]NodeID, 0, len(other.order))
	for _, oldID := range other.order {
		n := other.nodes[oldID]
		n.ID = g.nextID
		g.nextID++
		g.nodes[n.ID] = n
		g.order = append(g.order, n.ID)
		remap[oldID] = n.ID
		added = append(added, n.ID)
	}
	for _, c := range other.conns {
		c.From, c.To = remap[c.From], remap[c.To]
		g.conns = append(g.conns, c)
	}
	return added
}

// ── Connection operations ──

// Connect records c after checking that both endpoints exist and expose
// the named ports in the right direction. It does not check legality
// (occupancy, types, cycles); see CheckConnection.
func (g *Graph) Connect(c Connection) error {
	src, dst := g.nodes[c.From], g.nodes[c.To]
	if src == nil || dst == nil {
		return gerrors.New(gerrors.ErrCodeUnknownNode, "connection %d→%d references a missing node", c.From, c.To)
	}
	if src.Output(c.Output) == nil {
		return gerrors.New(gerrors.ErrCodeNotAnOutput, "%s has no output %q", src.Type.Name, c.Output)
	}
	if dst.Input(c.Input) == nil {
		return gerrors.New(gerrors.ErrCodeNotAnInput, "%s has no input %q", dst.Type.Name, c.Input)
	}
	if !slices.Contains(g.conns, c) {
		g.conns = append(g.conns, c)
	}
	return nil
}

// DeleteConnection removes the connection structurally equal to c. It
// reports whether one was found.
func (g *Graph) DeleteConnection(c Connection) bool {
	i := slices.Index(g.conns, c)
	if i < 0 {
		return false
	}
	g.conns = slices.Delete(g.conns, i, i+1)
	return true
}

// Connections returns a copy of every connection.
func (g *Graph) Connections() []Connection {
	return slices.Clone(g.conns)
}

// ConnectionsOf returns connections touching the node in either direction.
func (g *Graph) ConnectionsOf(id NodeID) []Connection {
	return g.filter(func(c Connection) bool { return c.Touches(id) })
}

// OutputConnections returns connections whose source is the node.
func (g *Graph) OutputConnections(id NodeID) []Connection {
	return g.filter(func(c Connection) bool { return c.From == id })
}

// InputConnections returns connections whose destination is the node.
func (g *Graph) InputConnections(id NodeID) []Connection {
	return g.filter(func(c Connection) bool { return c.To == id })
}

// InputConnection returns the connection feeding the node's input port.
func (g *Graph) InputConnection(id NodeID, input string) (Connection, bool) {
	for _, c := range g.conns {
		if c.To == id && c.Input == input {
			return c, true
		}
	}
	return Connection{}, false
}

// IsPortConnected reports whether any connection uses the named port of
// the node, as input or as output.
func (g *Graph) IsPortConnected(id NodeID, port string) bool {
	for _, c := range g.conns {
		if (c.From == id && c.Output == port) || (c.To == id && c.Input == port) {
			return true
		}
	}
	return false
}

func (g *Graph) filter(keep func(Connection) bool) []Connection {
	var result []Connection
	for _, c := range g.conns {
		if keep(c) {
			result = append(result, c)
		}
	}
	return result
}

// ── Spatial queries ──

// HitTest returns the frontmost node whose bounds contain pt, or NoNode.
func (g *Graph) HitTest(pt geom.Vec2) NodeID {
	for i := len(g.order) - 1; i >= 0; i-- {
		if Bounds(g.nodes[g.order[i]]).Contains(pt) {
			return g.order[i]
		}
	}
	return NoNode
}

// NodesInRect returns the IDs of nodes whose bounds overlap r, in draw order.
func (g *Graph) NodesInRect(r geom.Rect) []NodeID {
	var result []NodeID
	for _, id := range g.order {
		if Bounds(g.nodes[id]).Overlaps(r) {
			result = append(result, id)
		}
	}
	return result
}

// ── Integrity ──

// Validate checks the structural invariants: unique port names per node,
// no dangling connection endpoints, at most one connection per input and
// an acyclic connection graph. Nested sub-graphs are checked recursively.
func (g *Graph) Validate() error {
	for _, n := range g.Nodes() {
		seen := make(map[string]bool)
		for _, c := range concat(n.Inputs(), n.Outputs()) {
			if seen[c.Name] {
				return gerrors.New(gerrors.ErrCodeDuplicatePort, "node %d has two ports named %q", n.ID, c.Name)
			}
			seen[c.Name] = true
		}
		if n.Children != nil {
			if err := n.Children.Validate(); err != nil {
				return gerrors.Wrap(gerrors.GetCode(err), err, "children of node %d", n.ID)
			}
		}
	}
	fed := make(map[Connection]bool)
	for _, c := range g.conns {
		src, dst := g.nodes[c.From], g.nodes[c.To]
		if src == nil || dst == nil || src.Output(c.Output) == nil || dst.Input(c.Input) == nil {
			return gerrors.New(gerrors.ErrCodeDanglingEndpoint, "connection %d.%s→%d.%s has a dangling endpoint", c.From, c.Output, c.To, c.Input)
		}
		key := Connection{To: c.To, Input: c.Input}
		if fed[key] {
			return gerrors.New(gerrors.ErrCodeInputOccupied, "input %d.%s has more than one connection", c.To, c.Input)
		}
		fed[key] = true
	}
	if ContainsLoop(g) {
		return gerrors.New(gerrors.ErrCodeCycle, "connection graph contains a cycle")
	}
	return nil
}
