// Package render turns structure graphs into Graphviz DOT text and rendered
// SVG or PNG images.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"patternbook/pkg/graph"
)

// ToDOT converts a structure graph to Graphviz DOT format.
// Node roles map to styling: interfaces are dashed, bases filled grey,
// wrappers plain rounded boxes.
func ToDOT(g *graph.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  label=%q;\n", g.Name())
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		label := n.Label
		if label == "" {
			label = n.ID
		}
		attrs := []string{fmt.Sprintf("label=%q", label)}
		switch n.Role {
		case "interface":
			attrs = append(attrs, "style=\"rounded,dashed\"")
		case "base":
			attrs = append(attrs, "style=\"rounded,filled\"", "fillcolor=lightgrey")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if e.Label != "" {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.From, e.To, e.Label)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}
