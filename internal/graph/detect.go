// # internal/graph/detect.go
package graph

// DetectCycles finds import cycles among the resolved edges of the graph.
// Each cycle is reported once as the file path sequence that closes it,
// starting from the first file of the cycle reached by the scan.
func (g *Graph) DetectCycles() [][]string {
	var cycles [][]string
	visited := make(map[string]bool)
	onStack := make(map[string]bool)

	for _, file := range g.order {
		if !visited[file] {
			g.findCycles(file, visited, onStack, []string{}, &cycles)
		}
	}

	return cycles
}

func (g *Graph) findCycles(curr string, visited, onStack map[string]bool, path []string, cycles *[][]string) {
	visited[curr] = true
	onStack[curr] = true
	path = append(path, curr)

	for _, dep := range g.deps[curr] {
		next, ok := dep.Path()
		if !ok {
			continue
		}
		if onStack[next] {
			// Found a cycle
			cycleStart := -1
			for i, file := range path {
				if file == next {
					cycleStart = i
					break
				}
			}
			if cycleStart != -1 {
				cycle := make([]string, len(path)-cycleStart)
				copy(cycle, path[cycleStart:])
				*cycles = append(*cycles, cycle)
			}
		} else if !visited[next] {
			g.findCycles(next, visited, onStack, path, cycles)
		}
	}

	onStack[curr] = false
}
