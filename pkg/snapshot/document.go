// Package snapshot converts graphs to and from Documents, the structural
// snapshot format shared by the clipboard and the undo history.
//
// A Document is an ordered list of node records. Record ids are local to
// one document: they are the record's position in the list it was written
// from, recomputed on every call. Connections are stored once, as outgoing
// records on their source node; a connection whose destination lies
// outside the serialized set is dropped.
package snapshot

import (
	gerrors "github.com/wesen/nodegraph/pkg/errors"
	"github.com/wesen/nodegraph/pkg/geom"
	"github.com/wesen/nodegraph/pkg/graphmodel"
	"github.com/wesen/nodegraph/pkg/nodetype"
)

// Document is a structural snapshot of a list of nodes.
type Document []NodeRecord

// Point is a 2D value stored as [x, y].
type Point [2]float64

func pointOf(v geom.Vec2) Point { return Point{v.X, v.Y} }
func (p Point) vec() geom.Vec2  { return geom.V(p[0], p[1]) }

// NodeRecord is one serialized node.
type NodeRecord struct {
	ID                int                `json:"id"`
	Type              string             `json:"type"`
	Position          Point              `json:"position"`
	Size              Point              `json:"size"`
	Collapsed         bool               `json:"collapsed,omitempty"`
	AdditionalInputs  []PortRecord       `json:"additionalInputs,omitempty"`
	AdditionalOutputs []PortRecord       `json:"additionalOutputs,omitempty"`
	Children          Document           `json:"children,omitempty"`
	Connections       []ConnectionRecord `json:"connections,omitempty"`
}

// PortRecord is a per-instance port definition.
type PortRecord struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ValueType   string `json:"valueType"`
}

// ConnectionRecord is an outgoing connection of the enclosing node.
type ConnectionRecord struct {
	Output  string `json:"output"`
	Input   string `json:"input"`
	DstNode int    `json:"dstNode"`
}

// Capture serializes every node of g in draw order.
func Capture(g *graphmodel.Graph) Document {
	return ToDocument(g, g.IDs())
}

// ToDocument serializes the given nodes of g, in the given order. Record
// ids are positions in ids. Unknown IDs are skipped.
func ToDocument(g *graphmodel.Graph, ids []graphmodel.NodeID) Document {
	local := make(map[graphmodel.NodeID]int, len(ids))
	var picked []*graphmodel.Node
	for _, id := range ids {
		n := g.Node(id)
		if n == nil {
			continue
		}
		if _, dup := local[id]; dup {
			continue
		}
		local[id] = len(picked)
		picked = append(picked, n)
	}

	doc := make(Document, 0, len(picked))
	for i, n := range picked {
		rec := NodeRecord{
			ID:                i,
			Type:              n.Type.Name,
			Position:          pointOf(n.Pos),
			Size:              pointOf(n.Size),
			Collapsed:         n.Collapsed,
			AdditionalInputs:  portRecords(n.ExtraInputs),
			AdditionalOutputs: portRecords(n.ExtraOutputs),
		}
		if n.Children != nil && n.Children.Len() > 0 {
			rec.Children = Capture(n.Children)
		}
		for _, c := range g.OutputConnections(n.ID) {
			dst, ok := local[c.To]
			if !ok {
				continue
			}
			rec.Connections = append(rec.Connections, ConnectionRecord{
				Output:  c.Output,
				Input:   c.Input,
				DstNode: dst,
			})
		}
		doc = append(doc, rec)
	}
	return doc
}

func portRecords(cs []*nodetype.Connector) []PortRecord {
	if len(cs) == 0 {
		return nil
	}
	out := make([]PortRecord, len(cs))
	for i, c := range cs {
		out[i] = PortRecord{Name: c.Name, Description: c.Description, ValueType: c.Type.Name}
	}
	return out
}

// FromDocument rebuilds a graph from doc, resolving names against cat.
//
// Pass one creates every node (so connections may reference records that
// appear later); pass two resolves connections by record id and port name.
// Any failure aborts the whole reconstruction: the result is nil and the
// error carries a structural code. The returned graph's draw order follows
// record ids.
func FromDocument(doc Document, cat *nodetype.Catalog) (*graphmodel.Graph, error) {
	// Record ids are positions, so they must cover 0..len(doc)-1 exactly.
	byID := make([]*NodeRecord, len(doc))
	for i := range doc {
		rec := &doc[i]
		if rec.ID < 0 || rec.ID >= len(doc) {
			return nil, gerrors.New(gerrors.ErrCodeMalformedDocument, "record id %d outside 0..%d", rec.ID, len(doc)-1)
		}
		if byID[rec.ID] != nil {
			return nil, gerrors.New(gerrors.ErrCodeMalformedDocument, "record id %d used twice", rec.ID)
		}
		byID[rec.ID] = rec
	}

	g := graphmodel.New()
	slots := make([]*graphmodel.Node, len(doc))

	// Pass 1: instantiate nodes in id order.
	for id, rec := range byID {
		nt, ok := cat.NodeType(rec.Type)
		if !ok {
			return nil, gerrors.New(gerrors.ErrCodeUnknownNodeType, "record %d: no node type %q", rec.ID, rec.Type)
		}
		n := g.AddNode(nt, rec.Position.vec())
		n.Size = rec.Size.vec()
		n.Collapsed = rec.Collapsed
		if err := addPorts(g, n.ID, rec.AdditionalInputs, cat, g.AddInput); err != nil {
			return nil, err
		}
		if err := addPorts(g, n.ID, rec.AdditionalOutputs, cat, g.AddOutput); err != nil {
			return nil, err
		}
		if len(rec.Children) > 0 {
			if !nt.CanHaveChildren {
				return nil, gerrors.New(gerrors.ErrCodeMalformedDocument, "record %d: %s nodes cannot have children", rec.ID, nt.Name)
			}
			children, err := FromDocument(rec.Children, cat)
			if err != nil {
				return nil, gerrors.Wrap(gerrors.GetCode(err), err, "children of record %d", rec.ID)
			}
			n.Children = children
		}
		slots[id] = n
	}

	// Pass 2: connections.
	for _, rec := range doc {
		src := slots[rec.ID]
		for _, cr := range rec.Connections {
			if cr.DstNode < 0 || cr.DstNode >= len(slots) {
				return nil, gerrors.New(gerrors.ErrCodeMalformedDocument, "record %d: connection to unknown record %d", rec.ID, cr.DstNode)
			}
			c := graphmodel.Connection{From: src.ID, Output: cr.Output, To: slots[cr.DstNode].ID, Input: cr.Input}
			if err := g.Connect(c); err != nil {
				return nil, gerrors.Wrap(gerrors.ErrCodeUnknownPort, err, "record %d", rec.ID)
			}
		}
	}

	if err := g.Validate(); err != nil {
		return nil, gerrors.Wrap(gerrors.ErrCodeMalformedDocument, err, "document violates graph invariants")
	}
	return g, nil
}

func addPorts(g *graphmodel.Graph, id graphmodel.NodeID, recs []PortRecord, cat *nodetype.Catalog,
	add func(graphmodel.NodeID, *nodetype.Connector) error) error {
	for _, pr := range recs {
		vt, ok := cat.ValueType(pr.ValueType)
		if !ok {
			return gerrors.New(gerrors.ErrCodeUnknownValueType, "port %q: no value type %q", pr.Name, pr.ValueType)
		}
		if err := add(id, &nodetype.Connector{Name: pr.Name, Description: pr.Description, Type: vt}); err != nil {
			return gerrors.Wrap(gerrors.ErrCodeMalformedDocument, err, "port %q", pr.Name)
		}
	}
	return nil
}
