// # internal/output/dot.go
package output

import (
	"fmt"
	"strings"

	"importsearch/internal/search"
	"importsearch/internal/shared/util"
)

type DOTGenerator struct {
	result *search.Result
}

func NewDOTGenerator(result *search.Result) *DOTGenerator {
	return &DOTGenerator{result: result}
}

// Generate renders the dependency graph as a DOT digraph: project files in
// one cluster, external modules dashed and grey, cycle edges highlighted.
func (d *DOTGenerator) Generate() (string, error) {
	var buf strings.Builder

	buf.WriteString("digraph imports {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=rounded, fontname=\"Helvetica\", fontsize=10];\n")
	buf.WriteString("  edge [fontname=\"Helvetica\", fontsize=8, penwidth=1.2];\n")
	buf.WriteString("  splines=polyline;\n")
	buf.WriteString("  overlap=false;\n\n")

	// Build cycle edge set for highlighting
	cycleEdges := make(map[string]map[string]bool)
	inCycle := make(map[string]bool)
	for _, cycle := range d.result.Cycles {
		for i := 0; i < len(cycle); i++ {
			from := cycle[i]
			to := cycle[(i+1)%len(cycle)]
			if cycleEdges[from] == nil {
				cycleEdges[from] = make(map[string]bool)
			}
			cycleEdges[from][to] = true
			inCycle[from] = true
		}
	}

	internal := make(map[string]bool, len(d.result.Visited))
	for _, path := range d.result.Visited {
		internal[path] = true
	}

	externals := make(map[string]bool)
	for _, key := range d.result.Summary.Keys() {
		names, _ := d.result.Summary.Get(key)
		for _, name := range names {
			if !internal[name] {
				externals[name] = true
			}
		}
	}

	// Project files cluster
	buf.WriteString("  subgraph cluster_project {\n")
	buf.WriteString("    label=\"Project Files\";\n")
	buf.WriteString("    style=filled;\n")
	buf.WriteString("    color=\"whitesmoke\";\n")
	buf.WriteString("    node [fillcolor=\"white\", style=\"rounded,filled\"];\n")
	for _, path := range d.result.Visited {
		if inCycle[path] {
			buf.WriteString(fmt.Sprintf("    \"%s\" [fillcolor=\"mistyrose\", color=\"red\", penwidth=2.0];\n", path))
		} else {
			buf.WriteString(fmt.Sprintf("    \"%s\" [color=\"darkslategrey\"];\n", path))
		}
	}
	buf.WriteString("  }\n\n")

	// External and standard library modules
	buf.WriteString("  node [fillcolor=\"gainsboro\", style=\"rounded,filled\", color=\"grey\"];\n")
	for _, name := range util.SortedStringKeys(externals) {
		buf.WriteString(fmt.Sprintf("  \"%s\";\n", name))
	}
	buf.WriteString("\n")

	// Edges
	for _, key := range d.result.Summary.Keys() {
		names, _ := d.result.Summary.Get(key)
		for _, name := range names {
			switch {
			case cycleEdges[key] != nil && cycleEdges[key][name]:
				buf.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\" [color=\"red\", penwidth=3.0, label=\"CYCLE\"];\n", key, name))
			case internal[name]:
				buf.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\" [color=\"forestgreen\", penwidth=1.8];\n", key, name))
			default:
				buf.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\" [color=\"grey\", style=dashed];\n", key, name))
			}
		}
	}

	// Legend
	buf.WriteString("\n  subgraph cluster_legend {\n")
	buf.WriteString("    label=\"Legend\";\n")
	buf.WriteString("    style=dashed;\n")
	buf.WriteString("    legend_project [label=\"Project File\", fillcolor=\"white\", style=\"rounded,filled\"];\n")
	buf.WriteString("    legend_external [label=\"External/Stdlib\", fillcolor=\"gainsboro\", style=\"rounded,filled\"];\n")
	buf.WriteString("    legend_cycle [label=\"Import Cycle\", fillcolor=\"mistyrose\", color=\"red\", style=\"rounded,filled\"];\n")
	buf.WriteString("  }\n")

	buf.WriteString("}\n")

	return buf.String(), nil
}
