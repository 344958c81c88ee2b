// # internal/parser/parser.go
package parser

import (
	"fmt"
	"path/filepath"

	"importsearch/internal/core/errors"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

type Parser struct {
	loader     *GrammarLoader
	extractors map[string]Extractor // language -> extractor
}

type Extractor interface {
	Extract(root *sitter.Node, source []byte, filePath string) ([]Declaration, error)
}

func NewParser(loader *GrammarLoader) *Parser {
	return &Parser{
		loader:     loader,
		extractors: make(map[string]Extractor),
	}
}

func (p *Parser) RegisterExtractor(lang string, e Extractor) {
	p.extractors[lang] = e
}

// ParseFile turns source text into the ordered import declarations it
// contains. Malformed source is fatal: a file whose structure is unknown
// cannot be resolved any further.
func (p *Parser) ParseFile(path string, content []byte) ([]Declaration, error) {
	lang := p.detectLanguage(path)
	if lang == "" {
		return nil, errors.New(errors.CodeParseFailure, fmt.Sprintf("unsupported source file: %s", path))
	}

	grammar := p.loader.Language(lang)
	if grammar == nil {
		return nil, errors.New(errors.CodeParseFailure, fmt.Sprintf("grammar not loaded: %s", lang))
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(grammar)

	tree := parser.Parse(content, nil)
	if tree == nil {
		return nil, errors.New(errors.CodeParseFailure, fmt.Sprintf("parse produced no tree: %s", path))
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, errors.New(errors.CodeParseFailure, fmt.Sprintf("syntax errors in %s", path))
	}

	extractor := p.extractors[lang]
	if extractor == nil {
		return nil, errors.New(errors.CodeParseFailure, fmt.Sprintf("no extractor for: %s", lang))
	}

	return extractor.Extract(root, content, path)
}

func (p *Parser) detectLanguage(path string) string {
	switch filepath.Ext(path) {
	case ".py":
		return "python"
	default:
		return ""
	}
}
