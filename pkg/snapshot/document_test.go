package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/wesen/nodegraph/pkg/errors"
	"github.com/wesen/nodegraph/pkg/geom"
	"github.com/wesen/nodegraph/pkg/graphmodel"
	"github.com/wesen/nodegraph/pkg/nodetype"
)

func nodeType(t *testing.T, cat *nodetype.Catalog, name string) *nodetype.NodeType {
	t.Helper()
	nt, ok := cat.NodeType(name)
	require.True(t, ok, "catalog has no %s", name)
	return nt
}

func TestToDocumentStoresOutgoingConnections(t *testing.T) {
	cat := nodetype.Default()
	g := graphmodel.New()
	c := g.AddNode(nodeType(t, cat, "Const"), geom.V(0, 0))
	a := g.AddNode(nodeType(t, cat, "Add"), geom.V(200, 0))
	require.Equal(t, graphmodel.NodeID(0), c.ID)
	require.Equal(t, graphmodel.NodeID(1), a.ID)
	require.NoError(t, g.ConnectChecked(graphmodel.Connection{From: c.ID, Output: "out", To: a.ID, Input: "in0"}))

	doc := Capture(g)
	require.Len(t, doc, 2)
	assert.Equal(t, 0, doc[0].ID)
	assert.Equal(t, []ConnectionRecord{{Output: "out", Input: "in0", DstNode: 1}}, doc[0].Connections)
	assert.Empty(t, doc[1].Connections)
	assert.Equal(t, "Add", doc[1].Type)
	assert.Equal(t, Point{200, 0}, doc[1].Position)
	assert.Equal(t, Point{100, 100}, doc[1].Size)
}

func TestToDocumentDropsExternalConnections(t *testing.T) {
	cat := nodetype.Default()
	g := graphmodel.New()
	c := g.AddNode(nodeType(t, cat, "Const"), geom.V(0, 0))
	a := g.AddNode(nodeType(t, cat, "Add"), geom.V(200, 0))
	b := g.AddNode(nodeType(t, cat, "Add"), geom.V(400, 0))
	require.NoError(t, g.ConnectChecked(graphmodel.Connection{From: c.ID, Output: "out", To: a.ID, Input: "in0"}))
	require.NoError(t, g.ConnectChecked(graphmodel.Connection{From: a.ID, Output: "out", To: b.ID, Input: "in0"}))

	// Serialize only the middle and last node, in reverse order.
	doc := ToDocument(g, []graphmodel.NodeID{b.ID, a.ID})
	require.Len(t, doc, 2)
	assert.Equal(t, "Add", doc[0].Type)
	assert.Empty(t, doc[0].Connections)
	assert.Equal(t, []ConnectionRecord{{Output: "out", Input: "in0", DstNode: 0}}, doc[1].Connections)
}

func TestRoundTrip(t *testing.T) {
	cat := nodetype.Default()
	number, _ := cat.ValueType("Number")
	g := graphmodel.New()
	c := g.AddNode(nodeType(t, cat, "Const"), geom.V(10, 20))
	a := g.AddNode(nodeType(t, cat, "Add"), geom.V(200, 40))
	a.Collapsed = true
	a.Size = geom.V(160, 120)
	require.NoError(t, g.AddInput(a.ID, &nodetype.Connector{Name: "in2", Type: number}))
	grp := g.AddNode(nodeType(t, cat, "Group"), geom.V(400, 0))
	_, err := g.AddChild(grp.ID, nodeType(t, cat, "Const"), geom.V(5, 5))
	require.NoError(t, err)
	require.NoError(t, g.ConnectChecked(graphmodel.Connection{From: c.ID, Output: "out", To: a.ID, Input: "in2"}))
	require.NoError(t, g.ConnectChecked(graphmodel.Connection{From: a.ID, Output: "out", To: grp.ID, Input: "in"}))

	doc := Capture(g)
	data, err := Marshal(doc)
	require.NoError(t, err)
	decoded, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)

	g2, err := FromDocument(decoded, cat)
	require.NoError(t, err)
	require.Equal(t, 3, g2.Len())
	assert.Equal(t, doc, Capture(g2))

	n := g2.Nodes()[1]
	assert.True(t, n.Collapsed)
	assert.Equal(t, geom.V(160, 120), n.Size)
	require.NotNil(t, n.Input("in2"))
	assert.Same(t, number, n.Input("in2").Type)
	assert.Equal(t, 1, g2.Nodes()[2].Children.Len())
	assert.NoError(t, g2.Validate())
}

func TestFromDocumentForwardReference(t *testing.T) {
	cat := nodetype.Default()
	doc := Document{
		{ID: 1, Type: "Const", Size: Point{100, 100}, Connections: []ConnectionRecord{{Output: "out", Input: "in0", DstNode: 0}}},
		{ID: 0, Type: "Add", Size: Point{100, 100}},
	}
	g, err := FromDocument(doc, cat)
	require.NoError(t, err)
	require.Len(t, g.Connections(), 1)
	conn := g.Connections()[0]
	assert.Equal(t, "Const", g.Node(conn.From).Type.Name)
	assert.Equal(t, "Add", g.Node(conn.To).Type.Name)
}

func TestFromDocumentFailuresAreAtomic(t *testing.T) {
	cat := nodetype.Default()
	tests := []struct {
		name string
		doc  Document
		code gerrors.Code
	}{
		{
			name: "unknown node type",
			doc:  Document{{ID: 0, Type: "Const"}, {ID: 1, Type: "Teleport"}},
			code: gerrors.ErrCodeUnknownNodeType,
		},
		{
			name: "unknown value type",
			doc:  Document{{ID: 0, Type: "Add", AdditionalInputs: []PortRecord{{Name: "x", ValueType: "Quaternion"}}}},
			code: gerrors.ErrCodeUnknownValueType,
		},
		{
			name: "unknown port",
			doc: Document{
				{ID: 0, Type: "Const", Connections: []ConnectionRecord{{Output: "out", Input: "nope", DstNode: 1}}},
				{ID: 1, Type: "Add"},
			},
			code: gerrors.ErrCodeUnknownPort,
		},
		{
			name: "unknown destination",
			doc:  Document{{ID: 0, Type: "Const", Connections: []ConnectionRecord{{Output: "out", Input: "in0", DstNode: 7}}}},
			code: gerrors.ErrCodeMalformedDocument,
		},
		{
			name: "record id past the end",
			doc:  Document{{ID: 4611686018427387904, Type: "Const"}},
			code: gerrors.ErrCodeMalformedDocument,
		},
		{
			name: "sparse record ids",
			doc:  Document{{ID: 0, Type: "Const"}, {ID: 1000000000, Type: "Add"}},
			code: gerrors.ErrCodeMalformedDocument,
		},
		{
			name: "negative record id",
			doc:  Document{{ID: -1, Type: "Const"}},
			code: gerrors.ErrCodeMalformedDocument,
		},
		{
			name: "duplicate record id",
			doc:  Document{{ID: 0, Type: "Const"}, {ID: 0, Type: "Add"}},
			code: gerrors.ErrCodeMalformedDocument,
		},
		{
			name: "cycle",
			doc: Document{
				{ID: 0, Type: "Add", Connections: []ConnectionRecord{{Output: "out", Input: "in0", DstNode: 1}}},
				{ID: 1, Type: "Add", Connections: []ConnectionRecord{{Output: "out", Input: "in0", DstNode: 0}}},
			},
			code: gerrors.ErrCodeMalformedDocument,
		},
		{
			name: "children on a leaf type",
			doc:  Document{{ID: 0, Type: "Add", Children: Document{{ID: 0, Type: "Const"}}}},
			code: gerrors.ErrCodeMalformedDocument,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := FromDocument(tc.doc, cat)
			assert.Nil(t, g)
			require.Error(t, err)
			assert.True(t, gerrors.Is(err, tc.code), "expected %s, got %v", tc.code, err)
			assert.Equal(t, gerrors.KindStructural, gerrors.KindOf(err))
		})
	}
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	_, err := Unmarshal([]byte("{not json"))
	assert.True(t, gerrors.Is(err, gerrors.ErrCodeMalformedDocument))
}
