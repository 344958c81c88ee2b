// # internal/output/tsv.go
package output

import (
	"fmt"
	"strings"

	"importsearch/internal/search"
	"importsearch/internal/shared/util"
)

type TSVGenerator struct {
	result *search.Result
}

func NewTSVGenerator(result *search.Result) *TSVGenerator {
	return &TSVGenerator{result: result}
}

// Generate renders the edge list: one row per recorded dependency, in
// graph insertion order, with a resolved marker.
func (t *TSVGenerator) Generate() (string, error) {
	var buf strings.Builder

	buf.WriteString("From\tTo\tResolved\n")

	g := t.result.Graph
	for _, file := range g.Files() {
		deps, _ := g.Deps(file)
		from := util.Relativize(file, t.result.Root)
		for _, dep := range deps {
			buf.WriteString(fmt.Sprintf("%s\t%s\t%t\n", from, dep.Name(), dep.IsResolved()))
		}
	}

	return buf.String(), nil
}
