// # internal/resolver/dependency.go
package resolver

type dependencyKind int

const (
	kindResolved dependencyKind = iota
	kindExternal
)

// Dependency is the outcome of resolving one import reference: either a
// concrete file under the root or an external name with no local file.
// The discriminator is unexported so callers go through the constructors
// and accessors instead of interpreting field combinations.
type Dependency struct {
	kind dependencyKind
	path string
	name string
}

// Resolved builds a dependency backed by a local file. The display name is
// the root-relative forward-slash form of the path.
func Resolved(path, name string) Dependency {
	return Dependency{kind: kindResolved, path: path, name: name}
}

// External builds a dependency known only by name, such as a standard
// library or third-party module.
func External(name string) Dependency {
	return Dependency{kind: kindExternal, name: name}
}

func (d Dependency) IsResolved() bool {
	return d.kind == kindResolved
}

// Path returns the resolved file path; ok is false for external
// dependencies.
func (d Dependency) Path() (string, bool) {
	if d.kind != kindResolved {
		return "", false
	}
	return d.path, true
}

// Name returns the display name shown in summaries.
func (d Dependency) Name() string {
	return d.name
}
