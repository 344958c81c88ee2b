// # internal/search/search.go
package search

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"importsearch/internal/graph"
	"importsearch/internal/parser"
	"importsearch/internal/resolver"
	"importsearch/internal/shared/util"
)

// Search walks the import closure of one entry file, resolving every
// declaration it encounters and collecting the results into a Graph.
type Search struct {
	parser   *parser.Parser
	resolver *resolver.Resolver
}

// Result is the outcome of one completed search run.
type Result struct {
	Entry   string         // root-relative display path of the coerced entry
	Root    string         // absolute root directory
	Graph   *graph.Graph   // absolute-path keyed dependency graph
	Summary *graph.Summary // root-relative flat rendering, insertion order
	Visited []string       // sorted root-relative paths of files reached
	Cycles  [][]string     // import cycles among resolved edges, root-relative
}

func New(p *parser.Parser, r *resolver.Resolver) *Search {
	return &Search{parser: p, resolver: r}
}

// CoerceTarget normalizes an entry candidate into a concrete module file
// path: relative inputs join the root, a directory stands for its
// initializer when one exists, and any other suffix is replaced with .py.
func (s *Search) CoerceTarget(candidate string) string {
	path := candidate
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.resolver.Root(), path)
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		init := filepath.Join(path, "__init__.py")
		if pathExists(init) {
			return init
		}
	}

	if ext := filepath.Ext(path); ext != ".py" {
		// A bare dot-file like .env has no suffix to replace.
		if ext != "" && filepath.Base(path) != ext {
			path = strings.TrimSuffix(path, ext)
		}
		path += ".py"
	}
	return path
}

// Run performs the traversal from the entry file. Files are processed at
// most once; a file missing on disk is skipped without becoming part of
// the result. A file that fails to parse aborts the run.
func (s *Search) Run(entry string) (*Result, error) {
	root := s.resolver.Root()
	start := s.CoerceTarget(entry)

	visited := make(map[string]bool)
	g := graph.New()

	stack := []string{start}
	for len(stack) > 0 {
		file := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		file = filepath.Clean(file)

		if visited[file] {
			continue
		}
		if !pathExists(file) {
			slog.Debug("skipping missing file", "path", file)
			continue
		}
		visited[file] = true

		deps, err := s.extract(file)
		if err != nil {
			return nil, err
		}
		if len(deps) > 0 {
			g.Add(file, deps)
		}

		// Reverse push so pop order follows declaration order.
		for i := len(deps) - 1; i >= 0; i-- {
			if target, ok := deps[i].Path(); ok {
				stack = append(stack, target)
			}
		}
	}

	summary := graph.NewSummary()
	for _, file := range g.Files() {
		deps, _ := g.Deps(file)
		names := make([]string, 0, len(deps))
		for _, dep := range deps {
			names = append(names, dep.Name())
		}
		summary.Add(util.Relativize(file, root), names)
	}

	visitedList := make([]string, 0, len(visited))
	for file := range visited {
		visitedList = append(visitedList, util.Relativize(file, root))
	}
	sort.Strings(visitedList)

	cycles := relativizeCycles(g.DetectCycles(), root)
	if len(cycles) > 0 {
		slog.Debug("import cycles detected", "count", len(cycles))
	}

	return &Result{
		Entry:   util.Relativize(start, root),
		Root:    root,
		Graph:   g,
		Summary: summary,
		Visited: visitedList,
		Cycles:  cycles,
	}, nil
}

// extract parses one file and resolves each declaration against it. A
// file that vanished since the existence check yields nothing.
func (s *Search) extract(file string) ([]resolver.Dependency, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		slog.Debug("file not readable", "path", file, "error", err)
		return nil, nil
	}

	decls, err := s.parser.ParseFile(file, content)
	if err != nil {
		return nil, err
	}

	ctx := s.resolver.Context(file)
	deps := make([]resolver.Dependency, 0, len(decls))
	for _, decl := range decls {
		switch decl.Kind {
		case parser.KindAbsolute:
			deps = append(deps, s.resolver.ResolveAbsolute(decl.Module))
		case parser.KindFrom:
			deps = append(deps, s.resolver.ResolveFrom(ctx, decl.Module, decl.Level, decl.Name))
		}
	}
	return deps, nil
}

func relativizeCycles(cycles [][]string, root string) [][]string {
	if len(cycles) == 0 {
		return nil
	}
	out := make([][]string, 0, len(cycles))
	for _, cycle := range cycles {
		rel := make([]string, 0, len(cycle))
		for _, file := range cycle {
			rel = append(rel, util.Relativize(file, root))
		}
		out = append(out, rel)
	}
	return out
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
