package nodeeditor

import (
	"unicode"
	"unicode/utf8"

	"github.com/wesen/nodegraph/pkg/geom"
	"github.com/wesen/nodegraph/pkg/input"
	"github.com/wesen/nodegraph/pkg/nodetype"
	"github.com/wesen/nodegraph/pkg/render"
)

const (
	defaultMenuWidth = 160.0
	defaultMenuRow   = 20.0
)

// addMenu is the filterable node type picker opened with Shift+A.
type addMenu struct {
	open     bool
	filter   string
	selected int       // highlighted item, -1 for none
	pos      geom.Vec2 // where the new node goes, graph space
}

func (e *Editor) openMenu() {
	e.menu = addMenu{open: true, selected: -1, pos: e.pointer}
}

func (e *Editor) closeMenu() {
	e.menu = addMenu{selected: -1}
}

// MenuFilter returns the add menu's current filter text.
func (e *Editor) MenuFilter() string { return e.menu.filter }

// menuItems returns the node types matching the filter.
func (e *Editor) menuItems() []*nodetype.NodeType {
	return e.catalog.Filter(e.menu.filter)
}

func (e *Editor) updateMenu(in input.State) {
	for _, r := range in.Chars {
		if unicode.IsPrint(r) {
			e.menu.filter += string(r)
		}
	}
	if in.KeyPressed(input.KeyBackspace) && e.menu.filter != "" {
		_, size := utf8.DecodeLastRuneInString(e.menu.filter)
		e.menu.filter = e.menu.filter[:len(e.menu.filter)-size]
	}

	items := e.menuItems()
	if e.menu.filter != "" && e.menu.selected < 0 {
		e.menu.selected = 0
	}
	switch {
	case in.KeyPressed(input.KeyDown):
		e.menu.selected++
	case in.KeyPressed(input.KeyUp):
		e.menu.selected--
	}
	e.menu.selected = max(min(e.menu.selected, len(items)-1), -1)

	switch {
	case in.KeyPressed(input.KeyEnter) && e.menu.selected >= 0:
		e.insertFromMenu(items[e.menu.selected])
	case in.KeyPressed(input.KeyEscape):
		e.closeMenu()
	case in.IsPressed(input.ButtonLeft):
		popup := e.menuPopup()
		for i, item := range popup.Items {
			if item.Bounds.Contains(in.Pointer) {
				e.insertFromMenu(items[i])
				return
			}
		}
		if !popup.Bounds.Contains(in.Pointer) {
			e.closeMenu()
		}
	}
}

// insertFromMenu adds a node at the menu position, makes it the only
// thing the user is working on and commits.
func (e *Editor) insertFromMenu(t *nodetype.NodeType) {
	n := e.graph.AddNode(t, e.menu.pos)
	e.active = n.ID
	clear(e.selection)
	e.closeMenu()
	e.commit("add node")
	e.logger.Debug("add node from menu", "type", t.Name, "id", n.ID)
}

// menuPopup lays the menu out in screen space: a title row followed by
// one row per matching node type.
func (e *Editor) menuPopup() render.Popup {
	items := e.menuItems()
	anchor := e.view.ToScreen(e.menu.pos)
	title := "Add node"
	if e.menu.filter != "" {
		title = "Filter: " + e.menu.filter
	}
	p := render.Popup{
		ID:     e.id + "_add_menu",
		Title:  title,
		Bounds: geom.Rect{Min: anchor, Max: anchor.Add(geom.V(e.menuWidth, e.menuRow*float64(len(items)+1)))},
		Items:  make([]render.MenuItem, len(items)),
	}
	for i, t := range items {
		top := anchor.Y + e.menuRow*float64(i+1)
		p.Items[i] = render.MenuItem{
			Label:       t.Name,
			Description: t.Description,
			Selected:    i == e.menu.selected,
			Bounds:      geom.R(anchor.X, top, anchor.X+e.menuWidth, top+e.menuRow),
		}
	}
	return p
}

func (e *Editor) menuItemAt(pt geom.Vec2) (render.MenuItem, bool) {
	for _, item := range e.menuPopup().Items {
		if item.Bounds.Contains(pt) {
			return item, true
		}
	}
	return render.MenuItem{}, false
}
