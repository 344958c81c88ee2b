// # internal/resolver/resolver.go
package resolver

import (
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"importsearch/internal/shared/util"
)

const cacheSize = 1024

// Context carries the position an import is resolved from.
type Context struct {
	Root string // absolute root directory
	File string // absolute path of the importing file
}

// ModuleName derives the dotted package position of the importing file:
// the root-relative path minus its extension, with a trailing __init__
// segment dropped so an initializer resolves as the package itself.
// Files outside the root have no package position.
func (c Context) ModuleName() string {
	rel, err := filepath.Rel(c.Root, c.File)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return ""
	}

	parts := strings.Split(rel, string(os.PathSeparator))
	last := parts[len(parts)-1]
	last = strings.TrimSuffix(last, filepath.Ext(last))
	if last == "__init__" {
		parts = parts[:len(parts)-1]
	} else {
		parts[len(parts)-1] = last
	}
	return strings.Join(parts, ".")
}

// Resolver maps dotted module names to files under a fixed root directory.
// The root is threaded explicitly; resolution never touches the process
// working directory. Absolute lookups are memoized since the same modules
// recur across files in one run.
type Resolver struct {
	root  string
	cache *lru.Cache[string, Dependency]
}

func New(root string) (*Resolver, error) {
	cache, err := lru.New[string, Dependency](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Resolver{root: root, cache: cache}, nil
}

func (r *Resolver) Root() string {
	return r.root
}

// Context builds the resolution context for a file under this root.
func (r *Resolver) Context(file string) Context {
	return Context{Root: r.root, File: file}
}

// ModuleName is a convenience for deriving a file's package position.
func (r *Resolver) ModuleName(file string) string {
	return r.Context(file).ModuleName()
}

// ResolveAbsolute maps a dotted module name to a file under the root: the
// plain module file wins, the package initializer covers the directory
// form, and names matching neither stay external (standard library,
// site-packages).
func (r *Resolver) ResolveAbsolute(module string) Dependency {
	if dep, ok := r.cache.Get(module); ok {
		return dep
	}

	dep := r.lookup(module)
	r.cache.Add(module, dep)
	return dep
}

func (r *Resolver) lookup(module string) Dependency {
	base := filepath.Join(r.root, filepath.Join(strings.Split(module, ".")...))

	if candidate := base + ".py"; pathExists(candidate) {
		return Resolved(candidate, util.Relativize(candidate, r.root))
	}
	if candidate := filepath.Join(base, "__init__.py"); pathExists(candidate) {
		return Resolved(candidate, util.Relativize(candidate, r.root))
	}
	return External(module)
}

// ResolveFrom resolves one from-import name against the importing file's
// package position. The qualified candidate is tried first, reading the
// name as a submodule; when the statement names a module the bare module
// is the fallback, reading the name as a symbol inside it.
func (r *Resolver) ResolveFrom(ctx Context, module string, level int, name string) Dependency {
	pkg := ctx.ModuleName()
	leading := strings.Repeat(".", level)
	base := module

	var candidates []string

	if name == "" || name == "*" {
		candidate := leading + base
		if base == "" {
			candidate = leading
			if candidate == "" {
				candidate = "."
			}
		}
		candidates = append(candidates, candidate)
	} else {
		qualified := name
		if base != "" {
			qualified = base + "." + name
		}
		candidate := name
		if leading != "" || base != "" {
			candidate = leading + qualified
		}
		candidates = append(candidates, candidate)
		if base != "" {
			candidates = append(candidates, leading+base)
		}
	}

	for _, candidate := range candidates {
		absolute, ok := resolveRelativeName(candidate, pkg)
		if !ok {
			continue
		}
		if dep := r.ResolveAbsolute(absolute); dep.IsResolved() {
			return dep
		}
	}

	fallback := candidates[len(candidates)-1]
	display := strings.TrimLeft(fallback, ".")
	if display == "" {
		display = pkg
	}
	if display == "" {
		display = strings.Trim(fallback, ".")
	}
	if display == "" {
		display = name
	}
	if display == "" {
		display = base
	}
	return External(display)
}

// resolveRelativeName turns a possibly dot-prefixed candidate into an
// absolute dotted name against the given package: one dot is the current
// package and every extra dot climbs one parent. Climbing past the top
// fails, as does any dotted form without a package position.
func resolveRelativeName(name, pkg string) (string, bool) {
	candidate := strings.TrimSpace(name)

	if candidate == "" {
		if pkg == "" {
			return "", false
		}
		return pkg, true
	}

	if !strings.HasPrefix(candidate, ".") {
		return candidate, true
	}
	if pkg == "" {
		return "", false
	}

	rest := strings.TrimLeft(candidate, ".")
	level := len(candidate) - len(rest)
	segments := strings.Split(pkg, ".")
	if len(segments) < level {
		return "", false
	}

	parent := strings.Join(segments[:len(segments)-(level-1)], ".")
	if rest == "" {
		return parent, true
	}
	return parent + "." + rest, true
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
