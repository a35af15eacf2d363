package nodetype

import (
	gerrors "github.com/wesen/nodegraph/pkg/errors"
)

// Catalog is the read-only set of value types and node types available to
// an editor. Lookup by name is used when reconstructing snapshots.
type Catalog struct {
	valueTypes  []*ValueType
	nodeTypes   []*NodeType
	valueByName map[string]*ValueType
	nodeByName  map[string]*NodeType
}

// NewCatalog validates and indexes the given types. Names must be unique
// per kind, every connector must reference a value type in the catalog,
// and port names must be unique across one node type's inputs and outputs.
func NewCatalog(valueTypes []*ValueType, nodeTypes []*NodeType) (*Catalog, error) {
	c := &Catalog{
		valueTypes:  valueTypes,
		nodeTypes:   nodeTypes,
		valueByName: make(map[string]*ValueType, len(valueTypes)),
		nodeByName:  make(map[string]*NodeType, len(nodeTypes)),
	}
	for _, vt := range valueTypes {
		if _, dup := c.valueByName[vt.Name]; dup {
			return nil, gerrors.New(gerrors.ErrCodeDuplicateName, "value type %q defined twice", vt.Name)
		}
		c.valueByName[vt.Name] = vt
	}
	for _, nt := range nodeTypes {
		if _, dup := c.nodeByName[nt.Name]; dup {
			return nil, gerrors.New(gerrors.ErrCodeDuplicateName, "node type %q defined twice", nt.Name)
		}
		c.nodeByName[nt.Name] = nt

		seen := make(map[string]bool)
		for _, conn := range append(append([]*Connector{}, nt.Inputs...), nt.Outputs...) {
			if seen[conn.Name] {
				return nil, gerrors.New(gerrors.ErrCodeDuplicatePort, "node type %q has two ports named %q", nt.Name, conn.Name)
			}
			seen[conn.Name] = true
			if conn.Type == nil || c.valueByName[conn.Type.Name] != conn.Type {
				return nil, gerrors.New(gerrors.ErrCodeUnknownValueType, "port %s.%s uses a value type outside the catalog", nt.Name, conn.Name)
			}
		}
	}
	return c, nil
}

// ValueType returns the value type named name.
func (c *Catalog) ValueType(name string) (*ValueType, bool) {
	vt, ok := c.valueByName[name]
	return vt, ok
}

// NodeType returns the node type named name.
func (c *Catalog) NodeType(name string) (*NodeType, bool) {
	nt, ok := c.nodeByName[name]
	return nt, ok
}

// ValueTypes returns all value types in definition order.
func (c *Catalog) ValueTypes() []*ValueType { return c.valueTypes }

// NodeTypes returns all node types in definition order.
func (c *Catalog) NodeTypes() []*NodeType { return c.nodeTypes }

// Filter returns the node types whose name contains filter (case-insensitive),
// in definition order.
func (c *Catalog) Filter(filter string) []*NodeType {
	var result []*NodeType
	for _, nt := range c.nodeTypes {
		if MatchName(nt.Name, filter) {
			result = append(result, nt)
		}
	}
	return result
}
