// # internal/graph/graph.go
package graph

import (
	"bytes"
	"encoding/json"

	"importsearch/internal/resolver"
)

// Graph records, per visited file, the dependencies its import declarations
// resolved to. Keys are absolute file paths. Insertion order is preserved so
// summaries and exports list files in traversal order.
type Graph struct {
	order []string
	deps  map[string][]resolver.Dependency
}

func New() *Graph {
	return &Graph{
		deps: make(map[string][]resolver.Dependency),
	}
}

// Add records the dependency list extracted from one file. Re-adding a file
// replaces its previous list without disturbing its position.
func (g *Graph) Add(file string, deps []resolver.Dependency) {
	if _, exists := g.deps[file]; !exists {
		g.order = append(g.order, file)
	}
	g.deps[file] = append([]resolver.Dependency(nil), deps...)
}

// Files returns the recorded file paths in insertion order.
func (g *Graph) Files() []string {
	return append([]string(nil), g.order...)
}

// Deps returns the dependency list recorded for a file.
func (g *Graph) Deps(file string) ([]resolver.Dependency, bool) {
	deps, ok := g.deps[file]
	if !ok {
		return nil, false
	}
	return append([]resolver.Dependency(nil), deps...), true
}

// Resolved returns only the path-bearing dependencies recorded for a file,
// the edges the traversal actually follows.
func (g *Graph) Resolved(file string) []resolver.Dependency {
	var resolved []resolver.Dependency
	for _, dep := range g.deps[file] {
		if dep.IsResolved() {
			resolved = append(resolved, dep)
		}
	}
	return resolved
}

func (g *Graph) Len() int {
	return len(g.order)
}

// Summary is the flat rendering of a Graph: root-relative file keys in
// graph insertion order, each mapped to its dependency display names.
// It marshals as a JSON object that keeps that order, which a plain map
// cannot.
type Summary struct {
	keys    []string
	entries map[string][]string
}

func NewSummary() *Summary {
	return &Summary{
		entries: make(map[string][]string),
	}
}

func (s *Summary) Add(key string, names []string) {
	if _, exists := s.entries[key]; !exists {
		s.keys = append(s.keys, key)
	}
	if names == nil {
		names = []string{}
	}
	s.entries[key] = names
}

func (s *Summary) Keys() []string {
	return append([]string(nil), s.keys...)
}

func (s *Summary) Get(key string) ([]string, bool) {
	names, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return append([]string(nil), names...), true
}

func (s *Summary) Len() int {
	return len(s.keys)
}

func (s *Summary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(s.entries[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
