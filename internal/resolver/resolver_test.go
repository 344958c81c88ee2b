// # internal/resolver/resolver_test.go
package resolver

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDependency_Variants(t *testing.T) {
	resolved := Resolved("/proj/pkg/mod.py", "pkg/mod.py")
	if !resolved.IsResolved() {
		t.Error("Resolved dependency should report IsResolved")
	}
	if path, ok := resolved.Path(); !ok || path != "/proj/pkg/mod.py" {
		t.Errorf("Path() = %q, %v, expected /proj/pkg/mod.py, true", path, ok)
	}
	if resolved.Name() != "pkg/mod.py" {
		t.Errorf("Name() = %q, expected pkg/mod.py", resolved.Name())
	}

	external := External("os")
	if external.IsResolved() {
		t.Error("External dependency should not report IsResolved")
	}
	if path, ok := external.Path(); ok || path != "" {
		t.Errorf("Path() = %q, %v, expected empty, false", path, ok)
	}
	if external.Name() != "os" {
		t.Errorf("Name() = %q, expected os", external.Name())
	}

	if External("os") != External("os") {
		t.Error("Equal dependencies should compare equal")
	}
}

func TestResolver_ModuleName(t *testing.T) {
	root, _ := os.MkdirTemp("", "pyproj")
	defer os.RemoveAll(root)

	r, err := New(root)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path     string
		expected string
	}{
		{filepath.Join(root, "entry.py"), "entry"},
		{filepath.Join(root, "pkg", "alpha.py"), "pkg.alpha"},
		{filepath.Join(root, "pkg", "__init__.py"), "pkg"},
		{filepath.Join(root, "utilities", "formatters", "json_formatter.py"), "utilities.formatters.json_formatter"},
		{filepath.Join(os.TempDir(), "elsewhere", "x.py"), ""},
	}

	for _, tt := range tests {
		got := r.ModuleName(tt.path)
		if got != tt.expected {
			t.Errorf("ModuleName(%s) = %q, expected %q", tt.path, got, tt.expected)
		}
	}
}

func TestResolver_ResolveAbsolute(t *testing.T) {
	root, _ := os.MkdirTemp("", "pyproj")
	defer os.RemoveAll(root)

	// Create structure:
	// root/utils.py
	// root/pkg/__init__.py
	// root/pkg/mod.py
	// root/dual.py and root/dual/__init__.py (module file wins)
	pkg := filepath.Join(root, "pkg")
	dual := filepath.Join(root, "dual")
	os.MkdirAll(pkg, 0755)
	os.MkdirAll(dual, 0755)
	os.WriteFile(filepath.Join(root, "utils.py"), []byte(""), 0644)
	os.WriteFile(filepath.Join(pkg, "__init__.py"), []byte(""), 0644)
	os.WriteFile(filepath.Join(pkg, "mod.py"), []byte(""), 0644)
	os.WriteFile(filepath.Join(root, "dual.py"), []byte(""), 0644)
	os.WriteFile(filepath.Join(dual, "__init__.py"), []byte(""), 0644)

	r, err := New(root)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		module   string
		resolved bool
		name     string
	}{
		{"utils", true, "utils.py"},
		{"pkg", true, "pkg/__init__.py"},
		{"pkg.mod", true, "pkg/mod.py"},
		{"dual", true, "dual.py"},
		{"os", false, "os"},
		{"pkg.missing", false, "pkg.missing"},
	}

	for _, tt := range tests {
		dep := r.ResolveAbsolute(tt.module)
		if dep.IsResolved() != tt.resolved {
			t.Errorf("ResolveAbsolute(%s) resolved = %v, expected %v", tt.module, dep.IsResolved(), tt.resolved)
			continue
		}
		if dep.Name() != tt.name {
			t.Errorf("ResolveAbsolute(%s) name = %q, expected %q", tt.module, dep.Name(), tt.name)
		}
	}
}

func TestResolver_ResolveAbsoluteMemoized(t *testing.T) {
	root, _ := os.MkdirTemp("", "pyproj")
	defer os.RemoveAll(root)

	target := filepath.Join(root, "utils.py")
	os.WriteFile(target, []byte(""), 0644)

	r, err := New(root)
	if err != nil {
		t.Fatal(err)
	}

	first := r.ResolveAbsolute("utils")
	if !first.IsResolved() {
		t.Fatal("expected utils to resolve")
	}

	// A second lookup must not touch the filesystem again.
	os.Remove(target)
	second := r.ResolveAbsolute("utils")
	if first != second {
		t.Errorf("repeated resolution differs: %+v vs %+v", first, second)
	}
}

func TestResolver_ResolveFrom(t *testing.T) {
	root, _ := os.MkdirTemp("", "pyproj")
	defer os.RemoveAll(root)

	// Create structure:
	// root/entry.py
	// root/pkg/__init__.py
	// root/pkg/first.py and root/pkg/first/special.py
	// root/pkg/second.py
	pkg := filepath.Join(root, "pkg")
	first := filepath.Join(pkg, "first")
	os.MkdirAll(first, 0755)
	os.WriteFile(filepath.Join(root, "entry.py"), []byte(""), 0644)
	os.WriteFile(filepath.Join(pkg, "__init__.py"), []byte(""), 0644)
	os.WriteFile(filepath.Join(pkg, "first.py"), []byte(""), 0644)
	os.WriteFile(filepath.Join(first, "special.py"), []byte(""), 0644)
	os.WriteFile(filepath.Join(pkg, "second.py"), []byte(""), 0644)

	r, err := New(root)
	if err != nil {
		t.Fatal(err)
	}

	entry := filepath.Join(root, "entry.py")
	pkgInit := filepath.Join(pkg, "__init__.py")

	tests := []struct {
		desc     string
		file     string
		module   string
		level    int
		name     string
		resolved bool
		expected string
	}{
		{"submodule beats symbol reading", entry, "pkg.first", 0, "special", true, "pkg/first/special.py"},
		{"symbol falls back to module file", entry, "pkg.second", 0, "anything", true, "pkg/second.py"},
		{"name is itself a submodule", entry, "pkg", 0, "second", true, "pkg/second.py"},
		{"symbol inside package initializer", entry, "pkg", 0, "CONSTANT", true, "pkg/__init__.py"},
		{"star import of a package", entry, "pkg", 0, "*", true, "pkg/__init__.py"},
		{"relative sibling from initializer", pkgInit, "", 1, "second", true, "pkg/second.py"},
		{"relative star stays in package", pkgInit, "", 1, "*", true, "pkg/__init__.py"},
		{"relative miss keeps bare name", pkgInit, "", 1, "missing", false, "missing"},
		{"beyond top level shows package", pkgInit, "", 2, "*", false, "pkg"},
		{"external module", entry, "zoneinfo", 0, "ZoneInfo", false, "zoneinfo"},
		{"relative without package position", filepath.Join(os.TempDir(), "stray.py"), "", 1, "thing", false, "thing"},
	}

	for _, tt := range tests {
		dep := r.ResolveFrom(r.Context(tt.file), tt.module, tt.level, tt.name)
		if dep.IsResolved() != tt.resolved {
			t.Errorf("%s: resolved = %v, expected %v", tt.desc, dep.IsResolved(), tt.resolved)
			continue
		}
		if dep.Name() != tt.expected {
			t.Errorf("%s: name = %q, expected %q", tt.desc, dep.Name(), tt.expected)
		}
	}
}

func TestResolveRelativeName(t *testing.T) {
	tests := []struct {
		name     string
		pkg      string
		expected string
		ok       bool
	}{
		{"pkg.mod", "entry", "pkg.mod", true},
		{".second", "pkg", "pkg.second", true},
		{".", "pkg", "pkg", true},
		{"..shared", "pkg.alpha", "pkg.shared", true},
		{"..", "pkg", "", false},
		{".thing", "", "", false},
		{"", "pkg", "pkg", true},
		{"", "", "", false},
	}

	for _, tt := range tests {
		got, ok := resolveRelativeName(tt.name, tt.pkg)
		if ok != tt.ok || got != tt.expected {
			t.Errorf("resolveRelativeName(%q, %q) = %q, %v, expected %q, %v",
				tt.name, tt.pkg, got, ok, tt.expected, tt.ok)
		}
	}
}
