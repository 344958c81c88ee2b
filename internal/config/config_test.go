// # internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"importsearch/internal/core/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "importsearch.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	content := `
root_path = "./src"

[output]
format = "json"
file = "result"
dot = "graph.dot"
tsv = "deps.tsv"

[exclude]
dirs = [".git"]
files = ["*_test.py"]

[watch]
debounce_ms = 1000
max_runs_per_sec = 5.0
`
	cfg, err := Load(writeConfig(t, content))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.RootPath != "./src" {
		t.Errorf("Expected RootPath ./src, got %s", cfg.RootPath)
	}
	if cfg.Output.Format != "json" || cfg.Output.File != "result" {
		t.Errorf("Unexpected output config: %+v", cfg.Output)
	}
	if cfg.Output.DOT != "graph.dot" || cfg.Output.TSV != "deps.tsv" {
		t.Errorf("Unexpected export paths: %+v", cfg.Output)
	}
	if len(cfg.Exclude.Dirs) != 1 || cfg.Exclude.Dirs[0] != ".git" {
		t.Errorf("Unexpected exclude dirs: %v", cfg.Exclude.Dirs)
	}
	if cfg.Watch.Debounce() != time.Second {
		t.Errorf("Expected debounce 1s, got %v", cfg.Watch.Debounce())
	}
	if cfg.Watch.MaxRunsPerSec != 5.0 {
		t.Errorf("Expected max_runs_per_sec 5.0, got %v", cfg.Watch.MaxRunsPerSec)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `root_path = "."`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Output.Format != "print" {
		t.Errorf("Expected default format print, got %s", cfg.Output.Format)
	}
	if cfg.Output.File != "output" {
		t.Errorf("Expected default output file, got %s", cfg.Output.File)
	}
	if cfg.Watch.Debounce() != 500*time.Millisecond {
		t.Errorf("Expected default debounce 500ms, got %v", cfg.Watch.Debounce())
	}
	if len(cfg.Exclude.Dirs) != 3 {
		t.Errorf("Expected default exclude dirs, got %v", cfg.Exclude.Dirs)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Missing config should fall back to defaults, got %v", err)
	}
	if cfg.RootPath != "." || cfg.Output.Format != "print" {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeConfig(t, "bad = toml = format"))
	if err == nil {
		t.Fatal("Expected error for malformed TOML")
	}
	if !errors.IsCode(err, errors.CodeConfig) {
		t.Errorf("Expected CONFIG_ERROR, got %v", err)
	}
}

func TestLoadUnknownFormat(t *testing.T) {
	_, err := Load(writeConfig(t, `
[output]
format = "yaml"
`))
	if err == nil {
		t.Fatal("Expected error for unknown format")
	}
	if !errors.IsCode(err, errors.CodeUnsupportedFormat) {
		t.Errorf("Expected UNSUPPORTED_FORMAT, got %v", err)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("IMPORTSEARCH_OUTPUT_FORMAT", "text")
	t.Setenv("IMPORTSEARCH_ROOT_PATH", "/elsewhere")
	t.Setenv("IMPORTSEARCH_WATCH_DEBOUNCE_MS", "250")

	cfg := Default()
	ApplyEnvOverrides(cfg)

	if cfg.Output.Format != "text" {
		t.Errorf("Expected format text, got %s", cfg.Output.Format)
	}
	if cfg.RootPath != "/elsewhere" {
		t.Errorf("Expected root /elsewhere, got %s", cfg.RootPath)
	}
	if cfg.Watch.DebounceMS != 250 {
		t.Errorf("Expected debounce 250, got %d", cfg.Watch.DebounceMS)
	}
}

func TestApplyEnvOverridesIgnoresBadValues(t *testing.T) {
	t.Setenv("IMPORTSEARCH_WATCH_DEBOUNCE_MS", "not-a-number")

	cfg := Default()
	ApplyEnvOverrides(cfg)

	if cfg.Watch.DebounceMS != 500 {
		t.Errorf("Expected debounce to keep default 500, got %d", cfg.Watch.DebounceMS)
	}
}

func TestIsValidFormat(t *testing.T) {
	for _, format := range []string{"print", "text", "json"} {
		if !IsValidFormat(format) {
			t.Errorf("Expected %s to be valid", format)
		}
	}
	for _, format := range []string{"", "yaml", "JSON", "csv"} {
		if IsValidFormat(format) {
			t.Errorf("Expected %s to be invalid", format)
		}
	}
}
