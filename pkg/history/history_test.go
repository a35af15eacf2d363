package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesen/nodegraph/pkg/geom"
	"github.com/wesen/nodegraph/pkg/graphmodel"
	"github.com/wesen/nodegraph/pkg/nodetype"
	"github.com/wesen/nodegraph/pkg/snapshot"
)

func constType(t *testing.T, cat *nodetype.Catalog) *nodetype.NodeType {
	t.Helper()
	nt, ok := cat.NodeType("Const")
	require.True(t, ok)
	return nt
}

func TestUndoRedoRestoresEachState(t *testing.T) {
	cat := nodetype.Default()
	g := graphmodel.New()
	h := New()
	h.Commit(g)

	var states []snapshot.Document
	states = append(states, snapshot.Capture(g))
	for i := range 5 {
		g.AddNode(constType(t, cat), geom.V(float64(i*10), 0))
		h.Commit(g)
		states = append(states, snapshot.Capture(g))
	}
	require.Equal(t, 6, h.Len())

	for i := 4; i >= 0; i-- {
		restored, err := h.Undo(cat)
		require.NoError(t, err)
		require.NotNil(t, restored)
		assert.Equal(t, states[i], snapshot.Capture(restored))
	}
	assert.False(t, h.CanUndo())
	assertUndoIsNoOp(t, h, cat)

	for i := 1; i <= 5; i++ {
		restored, err := h.Redo(cat)
		require.NoError(t, err)
		assert.Equal(t, states[i], snapshot.Capture(restored))
	}
	assert.False(t, h.CanRedo())
}

func assertUndoIsNoOp(t *testing.T, h *History, cat *nodetype.Catalog) {
	t.Helper()
	idx := h.Index()
	g, err := h.Undo(cat)
	require.NoError(t, err)
	assert.Nil(t, g)
	assert.Equal(t, idx, h.Index())
}

func TestBoundaryNoOps(t *testing.T) {
	cat := nodetype.Default()
	h := New()

	g, err := h.Undo(cat)
	assert.NoError(t, err)
	assert.Nil(t, g)
	g, err = h.Redo(cat)
	assert.NoError(t, err)
	assert.Nil(t, g)
	assert.Equal(t, -1, h.Index())

	h.Commit(graphmodel.New())
	g, err = h.Redo(cat)
	assert.NoError(t, err)
	assert.Nil(t, g)
	assert.Equal(t, 0, h.Index())
}

func TestCommitTruncatesRedoBranch(t *testing.T) {
	cat := nodetype.Default()
	g := graphmodel.New()
	h := New()
	h.Commit(g)
	g.AddNode(constType(t, cat), geom.V(0, 0))
	h.Commit(g)
	g.AddNode(constType(t, cat), geom.V(0, 0))
	h.Commit(g)

	g, err := h.Undo(cat)
	require.NoError(t, err)
	require.Equal(t, 1, g.Len())
	g.AddNode(constType(t, cat), geom.V(50, 50))
	h.Commit(g)

	assert.Equal(t, 3, h.Len())
	assert.False(t, h.CanRedo())
	cur, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, snapshot.Point{50, 50}, cur[1].Position)
}

func TestEvictionKeepsRecentEntries(t *testing.T) {
	cat := nodetype.Default()
	g := graphmodel.New()
	h := New(WithDepth(10, 3))
	for range 25 {
		g.AddNode(constType(t, cat), geom.V(0, 0))
		h.Commit(g)
		assert.LessOrEqual(t, h.Len(), 10)
		assert.GreaterOrEqual(t, h.Len(), 1)
		assert.Equal(t, h.Len()-1, h.Index())
	}
	assert.GreaterOrEqual(t, h.Len(), 10-3)

	cur, _ := h.Current()
	assert.Len(t, cur, 25)
	undone := 0
	for h.CanUndo() {
		_, err := h.Undo(cat)
		require.NoError(t, err)
		undone++
	}
	assert.Equal(t, h.Len()-1, undone)
	oldest, _ := h.Current()
	assert.Len(t, oldest, 25-undone)
}

func TestUndoFailureLeavesCursor(t *testing.T) {
	cat := nodetype.Default()
	h := New()
	h.Push(snapshot.Document{{ID: 0, Type: "Vanished"}})
	h.Commit(graphmodel.New())

	g, err := h.Undo(cat)
	assert.Error(t, err)
	assert.Nil(t, g)
	assert.Equal(t, 1, h.Index())
}
