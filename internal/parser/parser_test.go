// # internal/parser/parser_test.go
package parser

import (
	"testing"

	"importsearch/internal/core/errors"
)

func newTestParser() *Parser {
	p := NewParser(NewGrammarLoader())
	p.RegisterExtractor("python", &PythonExtractor{})
	return p
}

func TestPythonImportExtraction(t *testing.T) {
	p := newTestParser()

	code := `
import os
import sys as system
import json, re
from pathlib import Path
from auth.utils import login as auth_login, logout
from . import local_mod
from ..parent import parent_mod
from .sibling import *

def my_func(a):
    return os.path.join(a, "b")
`
	decls, err := p.ParseFile("test.py", []byte(code))
	if err != nil {
		t.Fatal(err)
	}

	expected := []Declaration{
		{Kind: KindAbsolute, Module: "os"},
		{Kind: KindAbsolute, Module: "sys", Alias: "system"},
		{Kind: KindAbsolute, Module: "json"},
		{Kind: KindAbsolute, Module: "re"},
		{Kind: KindFrom, Module: "pathlib", Name: "Path"},
		{Kind: KindFrom, Module: "auth.utils", Name: "login", Alias: "auth_login"},
		{Kind: KindFrom, Module: "auth.utils", Name: "logout"},
		{Kind: KindFrom, Module: "", Level: 1, Name: "local_mod"},
		{Kind: KindFrom, Module: "parent", Level: 2, Name: "parent_mod"},
		{Kind: KindFrom, Module: "sibling", Level: 1, Name: "*"},
	}

	if len(decls) != len(expected) {
		t.Fatalf("Expected %d declarations, got %d: %+v", len(expected), len(decls), decls)
	}
	for i, want := range expected {
		got := decls[i]
		if got.Kind != want.Kind || got.Module != want.Module || got.Level != want.Level ||
			got.Name != want.Name || got.Alias != want.Alias {
			t.Errorf("Declaration %d: expected %+v, got %+v", i, want, got)
		}
	}
}

func TestPythonNestedImports(t *testing.T) {
	p := newTestParser()

	code := `
def lazy():
    import heavy_module
    from pkg import helper
    return helper
`
	decls, err := p.ParseFile("lazy.py", []byte(code))
	if err != nil {
		t.Fatal(err)
	}

	if len(decls) != 2 {
		t.Fatalf("Expected 2 declarations, got %d", len(decls))
	}
	if decls[0].Module != "heavy_module" {
		t.Errorf("Expected heavy_module, got %s", decls[0].Module)
	}
	if decls[1].Module != "pkg" || decls[1].Name != "helper" {
		t.Errorf("Expected pkg/helper, got %s/%s", decls[1].Module, decls[1].Name)
	}
}

func TestPythonDeclarationLocations(t *testing.T) {
	p := newTestParser()

	code := "import os\nfrom sys import path\n"
	decls, err := p.ParseFile("loc.py", []byte(code))
	if err != nil {
		t.Fatal(err)
	}

	if len(decls) != 2 {
		t.Fatalf("Expected 2 declarations, got %d", len(decls))
	}
	if decls[0].Location.Line != 1 {
		t.Errorf("Expected line 1, got %d", decls[0].Location.Line)
	}
	if decls[1].Location.Line != 2 {
		t.Errorf("Expected line 2, got %d", decls[1].Location.Line)
	}
	if decls[1].Location.File != "loc.py" {
		t.Errorf("Expected loc.py, got %s", decls[1].Location.File)
	}
}

func TestParseFailure(t *testing.T) {
	p := newTestParser()

	_, err := p.ParseFile("broken.py", []byte("def broken(:\n"))
	if err == nil {
		t.Fatal("Expected an error for malformed source")
	}
	if !errors.IsCode(err, errors.CodeParseFailure) {
		t.Errorf("Expected PARSE_FAILURE, got %v", err)
	}
}

func TestUnsupportedSourceFile(t *testing.T) {
	p := newTestParser()

	_, err := p.ParseFile("main.go", []byte("package main"))
	if err == nil {
		t.Fatal("Expected an error for a non-Python file")
	}
}
