package nodeeditor

import (
	"github.com/wesen/nodegraph/pkg/graphmodel"
	"github.com/wesen/nodegraph/pkg/snapshot"
)

// Clipboard stores the document produced by Copy and read by Paste. Each
// editor has its own; hosts inject a shared or system-backed one.
type Clipboard interface {
	Store(doc snapshot.Document) error
	// Load returns the stored document; ok is false when nothing is stored.
	Load() (doc snapshot.Document, ok bool, err error)
}

// MemoryClipboard keeps the document in process memory.
type MemoryClipboard struct {
	doc snapshot.Document
	set bool
}

func NewMemoryClipboard() *MemoryClipboard { return &MemoryClipboard{} }

func (c *MemoryClipboard) Store(doc snapshot.Document) error {
	c.doc, c.set = doc, true
	return nil
}

func (c *MemoryClipboard) Load() (snapshot.Document, bool, error) {
	return c.doc, c.set, nil
}

// Copy stores the selection, or the active node when nothing is selected.
// It returns the number of nodes copied.
func (e *Editor) Copy() (int, error) {
	ids := e.selectedOrActive()
	if len(ids) == 0 {
		return 0, nil
	}
	if err := e.clipboard.Store(snapshot.ToDocument(e.graph, ids)); err != nil {
		e.logger.Warn("clipboard store failed", "err", err)
		return 0, err
	}
	e.logger.Debug("copy", "nodes", len(ids))
	return len(ids), nil
}

// Paste adds the clipboard's nodes to the graph, offset by the paste
// offset, selects them and stores them back so the next paste lands one
// more offset away. It commits once and returns the new IDs.
func (e *Editor) Paste() ([]graphmodel.NodeID, error) {
	doc, ok, err := e.clipboard.Load()
	if err != nil {
		e.logger.Warn("clipboard load failed", "err", err)
		return nil, err
	}
	if !ok || len(doc) == 0 {
		return nil, nil
	}
	pasted, err := snapshot.FromDocument(doc, e.catalog)
	if err != nil {
		e.logger.Warn("paste failed", "err", err)
		e.hint = err.Error()
		return nil, err
	}
	for _, n := range pasted.Nodes() {
		n.Pos = n.Pos.Add(e.pasteOffset)
	}
	ids := e.graph.Merge(pasted)
	e.resetSelectionTo(ids)
	if err := e.clipboard.Store(snapshot.ToDocument(e.graph, ids)); err != nil {
		e.logger.Warn("clipboard store failed", "err", err)
	}
	e.commit("paste")
	e.logger.Debug("paste", "nodes", len(ids))
	return ids, nil
}
