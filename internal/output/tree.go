// # internal/output/tree.go
package output

import (
	"strings"

	"importsearch/internal/graph"
	"importsearch/internal/shared/util"
)

// BuildTree derives the renderer's adjacency from the graph: root-relative
// keys, children limited to resolved dependencies. External names appear
// in the summary only, never in the tree.
func BuildTree(g *graph.Graph, root string) map[string][]string {
	tree := make(map[string][]string, g.Len())
	for _, file := range g.Files() {
		resolved := g.Resolved(file)
		children := make([]string, 0, len(resolved))
		for _, dep := range resolved {
			children = append(children, dep.Name())
		}
		tree[util.Relativize(file, root)] = children
	}
	return tree
}

// Normalize reconciles child names recorded without the .py suffix against
// keys that carry it, so a dependency noted as "utils" links up with the
// "utils.py" entry. The normalized lists are built fresh; child order is
// preserved and the input map is never mutated.
func Normalize(tree map[string][]string) map[string][]string {
	keys := make(map[string]bool, len(tree))
	for key := range tree {
		keys[key] = true
	}

	normalized := make(map[string][]string, len(tree))
	for key, children := range tree {
		next := make([]string, 0, len(children))
		for _, child := range children {
			if !strings.HasSuffix(child, ".py") && keys[child+".py"] {
				child += ".py"
			}
			next = append(next, child)
		}
		normalized[key] = next
	}
	return normalized
}

// RenderTree prints the tree depth-first from the root key. Every line
// carries a "|-" marker indented two spaces per depth. A node rendered
// earlier is printed again to show the edge but not re-expanded, which
// keeps cyclic graphs finite.
func RenderTree(tree map[string][]string, root string) string {
	normalized := Normalize(tree)

	var b strings.Builder
	visited := make(map[string]bool)
	renderNode(&b, normalized, root, "|-", visited)
	return strings.TrimRight(b.String(), "\n")
}

func renderNode(b *strings.Builder, tree map[string][]string, node, indent string, visited map[string]bool) {
	b.WriteString(indent)
	b.WriteString(node)
	b.WriteByte('\n')

	if visited[node] {
		return
	}
	visited[node] = true

	for _, child := range tree[node] {
		renderNode(b, tree, child, "  "+indent, visited)
	}
}
