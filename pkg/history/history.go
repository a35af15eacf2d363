// Package history keeps a bounded linear undo/redo stack of graph
// snapshots.
//
// Every committed edit pushes a full snapshot.Document. The cursor points
// at the snapshot matching the live graph; Undo and Redo move it and
// rebuild a graph from the snapshot under it. Committing after an undo
// discards the redo branch. When the stack grows past its depth the oldest
// chunk of entries is evicted in one step.
package history

import (
	"github.com/wesen/nodegraph/pkg/graphmodel"
	"github.com/wesen/nodegraph/pkg/nodetype"
	"github.com/wesen/nodegraph/pkg/snapshot"
)

const (
	DefaultMaxDepth = 128
	DefaultChunk    = 12
)

// History is a linear list of snapshots with a cursor.
type History struct {
	docs     []snapshot.Document
	index    int // index of the snapshot matching the live graph; -1 when empty
	maxDepth int
	chunk    int
}

// Option configures a History.
type Option func(*History)

// WithDepth sets the eviction threshold and the number of entries evicted
// at once. Non-positive values keep the defaults; chunk is capped at depth.
func WithDepth(maxDepth, chunk int) Option {
	return func(h *History) {
		if maxDepth > 0 {
			h.maxDepth = maxDepth
		}
		if chunk > 0 {
			h.chunk = chunk
		}
	}
}

// New creates an empty history.
func New(opts ...Option) *History {
	h := &History{index: -1, maxDepth: DefaultMaxDepth, chunk: DefaultChunk}
	for _, opt := range opts {
		opt(h)
	}
	h.chunk = min(h.chunk, h.maxDepth)
	return h
}

// Commit records the current state of g as the newest snapshot. Entries
// after the cursor are discarded first.
func (h *History) Commit(g *graphmodel.Graph) {
	h.Push(snapshot.Capture(g))
}

// Push records doc as the newest snapshot.
func (h *History) Push(doc snapshot.Document) {
	h.docs = append(h.docs[:h.index+1], doc)
	h.index = len(h.docs) - 1
	if len(h.docs) > h.maxDepth {
		h.docs = append(h.docs[:0:0], h.docs[h.chunk:]...)
		h.index -= h.chunk
	}
}

// Undo moves the cursor back one step and returns the graph rebuilt from
// the snapshot there. It returns (nil, nil) when there is nothing to undo.
// If the snapshot cannot be rebuilt the cursor stays put and the error is
// returned.
func (h *History) Undo(cat *nodetype.Catalog) (*graphmodel.Graph, error) {
	if !h.CanUndo() {
		return nil, nil
	}
	return h.restore(h.index-1, cat)
}

// Redo moves the cursor forward one step. Same contract as Undo.
func (h *History) Redo(cat *nodetype.Catalog) (*graphmodel.Graph, error) {
	if !h.CanRedo() {
		return nil, nil
	}
	return h.restore(h.index+1, cat)
}

func (h *History) restore(i int, cat *nodetype.Catalog) (*graphmodel.Graph, error) {
	g, err := snapshot.FromDocument(h.docs[i], cat)
	if err != nil {
		return nil, err
	}
	h.index = i
	return g, nil
}

// CanUndo reports whether an older snapshot exists.
func (h *History) CanUndo() bool { return h.index > 0 }

// CanRedo reports whether a newer snapshot exists.
func (h *History) CanRedo() bool { return h.index >= 0 && h.index < len(h.docs)-1 }

// Len returns the number of stored snapshots.
func (h *History) Len() int { return len(h.docs) }

// Index returns the cursor position, or -1 for an empty history.
func (h *History) Index() int { return h.index }

// Current returns the snapshot under the cursor.
func (h *History) Current() (snapshot.Document, bool) {
	if h.index < 0 {
		return nil, false
	}
	return h.docs[h.index], true
}
