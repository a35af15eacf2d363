package tui

import (
	"io"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"

	"github.com/wesen/nodegraph/pkg/nodeeditor"
	"github.com/wesen/nodegraph/pkg/snapshot"
)

// SystemClipboard keeps copied documents on the system clipboard as JSON,
// so they can be pasted into another nodegraph process. When the system
// clipboard is unavailable it falls back to process memory.
type SystemClipboard struct {
	read        func() (string, error)
	write       func(string) error
	unsupported bool
	fallback    *nodeeditor.MemoryClipboard
	logger      *log.Logger
}

var _ nodeeditor.Clipboard = (*SystemClipboard)(nil)

func NewSystemClipboard(logger *log.Logger) *SystemClipboard {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &SystemClipboard{
		read:        clipboard.ReadAll,
		write:       clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
		fallback:    nodeeditor.NewMemoryClipboard(),
		logger:      logger,
	}
}

func (c *SystemClipboard) Store(doc snapshot.Document) error {
	data, err := snapshot.Marshal(doc)
	if err != nil {
		return err
	}
	if c.unsupported {
		return c.fallback.Store(doc)
	}
	if err := c.write(string(data)); err != nil {
		c.logger.Warn("system clipboard write failed, keeping copy in memory", "err", err)
		return c.fallback.Store(doc)
	}
	return nil
}

// Load reads the system clipboard. Text that is not a node document is
// treated as an empty clipboard rather than an error.
func (c *SystemClipboard) Load() (snapshot.Document, bool, error) {
	if c.unsupported {
		return c.fallback.Load()
	}
	text, err := c.read()
	if err != nil {
		c.logger.Warn("system clipboard read failed, using in-memory copy", "err", err)
		return c.fallback.Load()
	}
	if text == "" {
		return nil, false, nil
	}
	doc, err := snapshot.Unmarshal([]byte(text))
	if err != nil {
		c.logger.Debug("clipboard holds no node document", "err", err)
		return nil, false, nil
	}
	return doc, true, nil
}
