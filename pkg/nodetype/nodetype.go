// Package nodetype holds the immutable type catalog the editor works
// against: value types, connector templates and node types.
//
// Catalog values are created once at startup and shared by reference by
// every node and port in every editor. Nothing in this package is mutated
// after NewCatalog returns.
package nodetype

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ValueType is the type carried by a connector. Wildcard value types are
// compatible with every other value type.
type ValueType struct {
	Name     string
	Color    colorful.Color
	Wildcard bool
}

// Connector is a port template: a named, typed input or output slot.
type Connector struct {
	Name        string
	Description string
	Type        *ValueType
}

// NodeType is the template shared by all nodes of one kind.
type NodeType struct {
	Name            string
	Description     string
	Inputs          []*Connector
	Outputs         []*Connector
	CanHaveChildren bool
}

// Input returns the fixed input connector named name, or nil.
func (t *NodeType) Input(name string) *Connector {
	return findConnector(t.Inputs, name)
}

// Output returns the fixed output connector named name, or nil.
func (t *NodeType) Output(name string) *Connector {
	return findConnector(t.Outputs, name)
}

func findConnector(cs []*Connector, name string) *Connector {
	for _, c := range cs {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Compatible reports whether a value of type out may feed an input of type
// in: identical types, or either side a wildcard.
func Compatible(out, in *ValueType) bool {
	if out == nil || in == nil {
		return false
	}
	return out == in || out.Wildcard || in.Wildcard
}

// MatchName reports whether name contains filter, ignoring case. An empty
// filter matches everything.
func MatchName(name, filter string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(filter))
}
