// # internal/parser/types.go
package parser

type DeclarationKind int

const (
	KindAbsolute DeclarationKind = iota
	KindFrom
)

// Declaration is one imported name as written in the source. A statement
// importing several names yields one Declaration per name, in source order.
type Declaration struct {
	Kind     DeclarationKind
	Module   string // dotted module path, empty for pure-relative forms
	Level    int    // leading dots on relative imports, 0 for absolute
	Name     string // imported symbol on from-imports, "*" for star imports
	Alias    string
	Location Location
}

type Location struct {
	File   string
	Line   int
	Column int
}
