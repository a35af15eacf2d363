// Package tui hosts a node graph editor in the terminal with bubbletea.
//
// Terminal cells stand in for screen pixels at a configurable size: mouse
// positions become the centre pixel of their cell, and the editor's draw
// primitives are rasterised back onto cells.
package tui

import (
	"image"
	"io"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/wesen/nodegraph/pkg/geom"
	"github.com/wesen/nodegraph/pkg/nodeeditor"
)

// menuCells is the add menu width in cells.
const menuCells = 22

// MenuMetrics sizes the editor's add menu so each row is one cell tall.
func MenuMetrics(m Metrics) nodeeditor.Option {
	return nodeeditor.WithMenuMetrics(menuCells*m.CellW, m.CellH)
}

// Model is the bubbletea model wrapping one editor.
type Model struct {
	editor  *nodeeditor.Editor
	input   *hostInput
	keys    keyMap
	help    help.Model
	metrics Metrics
	logger  *log.Logger

	width, height int
	showHelp      bool
}

// NewModel hosts ed. The editor should be built with MenuMetrics(m).
func NewModel(ed *nodeeditor.Editor, m Metrics, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := defaultKeyMap()
	return Model{
		editor:  ed,
		input:   newHostInput(m, keys),
		keys:    keys,
		help:    help.New(),
		metrics: m,
		logger:  logger,
	}
}

// Editor returns the hosted editor.
func (m Model) Editor() *nodeeditor.Editor { return m.editor }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Every input event runs one editor frame.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.SetWidth(msg.Width)

	case tea.FocusMsg:
		m.input.focus(true)
		m.step()

	case tea.BlurMsg:
		m.input.focus(false)
		m.step()

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		case m.showHelp:
			if msg.Key().Code == tea.KeyEscape {
				m.showHelp = false
			}
			return m, nil
		}
		m.input.key(msg)
		m.step()

	case tea.MouseMsg:
		mouse := msg.Mouse()
		canvas := layoutFor(m.width, m.height).canvas
		if _, click := msg.(tea.MouseClickMsg); click && !image.Pt(mouse.X, mouse.Y).In(canvas) {
			return m, nil
		}
		m.input.mouse(msg)
		m.step()
	}
	return m, nil
}

// step runs one editor frame over the canvas region.
func (m Model) step() {
	canvas := layoutFor(m.width, m.height).canvas
	origin := geom.V(float64(canvas.Min.X)*m.metrics.CellW, float64(canvas.Min.Y)*m.metrics.CellH)
	size := geom.V(float64(canvas.Dx())*m.metrics.CellW, float64(canvas.Dy())*m.metrics.CellH)
	m.editor.Update(m.input.frame(origin, size))
	m.input.endFrame()
}
