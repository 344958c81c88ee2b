// # internal/output/text.go
package output

import (
	"strings"

	"importsearch/internal/search"
)

// Text renders the plain block format: flat summary, visited listing and
// the import tree.
func Text(result *search.Result) string {
	var b strings.Builder

	b.WriteString("Import Summary\n\n")
	for _, key := range result.Summary.Keys() {
		names, _ := result.Summary.Get(key)
		b.WriteString(key)
		b.WriteString(" -> ")
		b.WriteString(strings.Join(names, ", "))
		b.WriteByte('\n')
	}

	b.WriteString("\nVisited Files\n\n")
	for _, path := range result.Visited {
		b.WriteString(path)
		b.WriteByte('\n')
	}

	b.WriteString("\nImport Tree\n\n")
	tree := RenderTree(BuildTree(result.Graph, result.Root), result.Entry)
	b.WriteString(tree)
	b.WriteByte('\n')

	return b.String()
}
