package nodetype

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	gerrors "github.com/wesen/nodegraph/pkg/errors"
)

//go:embed default_catalog.toml
var defaultCatalog string

// catalogFile mirrors the TOML catalog layout:
//
//	[[value_types]]
//	name = "Number"
//	color = "#4f9dde"
//
//	[[node_types]]
//	name = "Add"
//	inputs = [{ name = "in0", type = "Number" }, { name = "in1", type = "Number" }]
//	outputs = [{ name = "out", type = "Number" }]
type catalogFile struct {
	ValueTypes []valueTypeDef `toml:"value_types"`
	NodeTypes  []nodeTypeDef  `toml:"node_types"`
}

type valueTypeDef struct {
	Name     string `toml:"name"`
	Color    string `toml:"color"`
	Wildcard bool   `toml:"wildcard"`
}

type connectorDef struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Type        string `toml:"type"`
}

type nodeTypeDef struct {
	Name            string         `toml:"name"`
	Description     string         `toml:"description"`
	CanHaveChildren bool           `toml:"can_have_children"`
	Inputs          []connectorDef `toml:"inputs"`
	Outputs         []connectorDef `toml:"outputs"`
}

// DecodeTOML reads a catalog definition from r.
func DecodeTOML(r io.Reader) (*Catalog, error) {
	var f catalogFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := checkKeys(md); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return f.build()
}

// LoadFile reads a catalog definition from the TOML file at path.
func LoadFile(path string) (*Catalog, error) {
	var f catalogFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	if err := checkKeys(md); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return f.build()
}

// checkKeys rejects keys the catalog layout does not know, so a typo such
// as can_have_child fails instead of being dropped.
func checkKeys(md toml.MetaData) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := DecodeTOML(strings.NewReader(defaultCatalog))
	if err != nil {
		panic("nodetype: invalid built-in catalog: " + err.Error())
	}
	return c
}

func (f catalogFile) build() (*Catalog, error) {
	valueTypes := make([]*ValueType, 0, len(f.ValueTypes))
	byName := make(map[string]*ValueType, len(f.ValueTypes))
	for _, d := range f.ValueTypes {
		col, err := colorful.Hex(d.Color)
		if err != nil {
			return nil, fmt.Errorf("value type %q: color %q: %w", d.Name, d.Color, err)
		}
		vt := &ValueType{Name: d.Name, Color: col, Wildcard: d.Wildcard}
		valueTypes = append(valueTypes, vt)
		if _, dup := byName[d.Name]; !dup {
			byName[d.Name] = vt
		}
	}

	connectors := func(owner string, defs []connectorDef) ([]*Connector, error) {
		out := make([]*Connector, 0, len(defs))
		for _, d := range defs {
			vt, ok := byName[d.Type]
			if !ok {
				return nil, gerrors.New(gerrors.ErrCodeUnknownValueType, "%s.%s: no value type %q", owner, d.Name, d.Type)
			}
			out = append(out, &Connector{Name: d.Name, Description: d.Description, Type: vt})
		}
		return out, nil
	}

	nodeTypes := make([]*NodeType, 0, len(f.NodeTypes))
	for _, d := range f.NodeTypes {
		ins, err := connectors(d.Name, d.Inputs)
		if err != nil {
			return nil, err
		}
		outs, err := connectors(d.Name, d.Outputs)
		if err != nil {
			return nil, err
		}
		nodeTypes = append(nodeTypes, &NodeType{
			Name:            d.Name,
			Description:     d.Description,
			Inputs:          ins,
			Outputs:         outs,
			CanHaveChildren: d.CanHaveChildren,
		})
	}
	return NewCatalog(valueTypes, nodeTypes)
}
