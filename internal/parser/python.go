// # internal/parser/python.go
package parser

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

type PythonExtractor struct{}

func (e *PythonExtractor) Extract(root *sitter.Node, source []byte, filePath string) ([]Declaration, error) {
	var decls []Declaration
	e.walk(root, source, filePath, &decls)
	return decls, nil
}

// walk visits every node so imports nested in function or class bodies are
// collected too, matching a full-tree scan.
func (e *PythonExtractor) walk(node *sitter.Node, source []byte, filePath string, decls *[]Declaration) {
	switch node.Kind() {
	case "import_statement":
		e.extractImport(node, source, filePath, decls)
	case "import_from_statement":
		e.extractFromImport(node, source, filePath, decls)
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		e.walk(node.Child(i), source, filePath, decls)
	}
}

func (e *PythonExtractor) extractImport(node *sitter.Node, source []byte, filePath string, decls *[]Declaration) {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)

		switch child.Kind() {
		case "dotted_name", "identifier":
			*decls = append(*decls, Declaration{
				Kind:     KindAbsolute,
				Module:   e.getText(child, source),
				Location: e.getLocation(child, filePath),
			})
		case "aliased_import":
			module, alias := e.splitAliased(child, source)
			*decls = append(*decls, Declaration{
				Kind:     KindAbsolute,
				Module:   module,
				Alias:    alias,
				Location: e.getLocation(child, filePath),
			})
		}
	}
}

func (e *PythonExtractor) extractFromImport(node *sitter.Node, source []byte, filePath string, decls *[]Declaration) {
	var module string
	var level int
	seenImport := false

	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)

		switch child.Kind() {
		case "relative_import":
			relText := e.getText(child, source)
			module = strings.TrimLeft(relText, ".")
			level = len(relText) - len(module)

		case "dotted_name", "identifier":
			if !seenImport {
				// Module part before the import keyword.
				module = e.getText(child, source)
				continue
			}
			*decls = append(*decls, Declaration{
				Kind:     KindFrom,
				Module:   module,
				Level:    level,
				Name:     e.getText(child, source),
				Location: e.getLocation(child, filePath),
			})

		case "aliased_import":
			name, alias := e.splitAliased(child, source)
			*decls = append(*decls, Declaration{
				Kind:     KindFrom,
				Module:   module,
				Level:    level,
				Name:     name,
				Alias:    alias,
				Location: e.getLocation(child, filePath),
			})

		case "wildcard_import":
			*decls = append(*decls, Declaration{
				Kind:     KindFrom,
				Module:   module,
				Level:    level,
				Name:     "*",
				Location: e.getLocation(child, filePath),
			})

		case "import":
			seenImport = true
		}
	}
}

// splitAliased splits an aliased_import node into its name and alias parts.
func (e *PythonExtractor) splitAliased(node *sitter.Node, source []byte) (string, string) {
	var name, alias string
	for i := uint(0); i < node.ChildCount(); i++ {
		sub := node.Child(i)
		if sub.Kind() == "dotted_name" || sub.Kind() == "identifier" {
			if name == "" {
				name = e.getText(sub, source)
			} else {
				alias = e.getText(sub, source)
			}
		}
	}
	return name, alias
}

func (e *PythonExtractor) getLocation(node *sitter.Node, filePath string) Location {
	return Location{
		File:   filePath,
		Line:   int(node.StartPosition().Row) + 1,
		Column: int(node.StartPosition().Column) + 1,
	}
}

func (e *PythonExtractor) getText(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}
