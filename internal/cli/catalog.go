package cli

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/wesen/nodegraph/pkg/nodetype"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the node type catalog",
		Long:  `Print every value type with its colour swatch and every node type with its ports. Fails if the catalog does not load.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := sessionFromContext(cmd.Context())
			if s == nil {
				return fmt.Errorf("no session")
			}
			return printCatalog(cmd.OutOrStdout(), s.catalog)
		},
	}
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	nameStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

func swatch(vt *nodetype.ValueType) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(vt.Color.Hex())).Render("●")
}

func printCatalog(w io.Writer, cat *nodetype.Catalog) error {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Value types") + "\n")
	for _, vt := range cat.ValueTypes() {
		line := fmt.Sprintf("  %s %s %s", swatch(vt), nameStyle.Render(vt.Name), dimStyle.Render(vt.Color.Hex()))
		if vt.Wildcard {
			line += dimStyle.Render(" (wildcard)")
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + headingStyle.Render("Node types") + "\n")
	for _, nt := range cat.NodeTypes() {
		line := "  " + nameStyle.Render(nt.Name)
		if nt.CanHaveChildren {
			line += dimStyle.Render(" [group]")
		}
		if nt.Description != "" {
			line += "  " + dimStyle.Render(nt.Description)
		}
		b.WriteString(line + "\n")
		writePorts(&b, "in ", nt.Inputs)
		writePorts(&b, "out", nt.Outputs)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writePorts(b *strings.Builder, dir string, cs []*nodetype.Connector) {
	for _, c := range cs {
		fmt.Fprintf(b, "    %s %s %s: %s\n", dimStyle.Render(dir), swatch(c.Type), c.Name, c.Type.Name)
	}
}
