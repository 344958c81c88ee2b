// # internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"importsearch/internal/core/errors"
)

type Config struct {
	RootPath string  `toml:"root_path"`
	Output   Output  `toml:"output"`
	Exclude  Exclude `toml:"exclude"`
	Watch    Watch   `toml:"watch"`
}

type Output struct {
	Format string `toml:"format"` // print | text | json
	File   string `toml:"file"`
	DOT    string `toml:"dot"` // optional DOT export path
	TSV    string `toml:"tsv"` // optional TSV edge-list path
}

type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"`
}

type Watch struct {
	DebounceMS    int     `toml:"debounce_ms"`
	MaxRunsPerSec float64 `toml:"max_runs_per_sec"`
}

func (w Watch) Debounce() time.Duration {
	return time.Duration(w.DebounceMS) * time.Millisecond
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the TOML file at path. A missing file is not an error, the
// defaults apply; an unreadable or invalid one is.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrap(err, errors.CodeConfig, fmt.Sprintf("reading config %s", path))
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, errors.Wrap(err, errors.CodeConfig, fmt.Sprintf("parsing config %s", path))
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.RootPath) == "" {
		cfg.RootPath = "."
	}
	if strings.TrimSpace(cfg.Output.Format) == "" {
		cfg.Output.Format = "print"
	}
	if strings.TrimSpace(cfg.Output.File) == "" {
		cfg.Output.File = "output"
	}
	if cfg.Exclude.Dirs == nil {
		cfg.Exclude.Dirs = []string{"__pycache__", ".git", ".venv"}
	}
	if cfg.Watch.DebounceMS <= 0 {
		cfg.Watch.DebounceMS = 500
	}
	if cfg.Watch.MaxRunsPerSec <= 0 {
		cfg.Watch.MaxRunsPerSec = 2.0
	}
}

// Validate checks the effective configuration. It runs again after env
// and flag overrides, before any traversal starts.
func Validate(cfg *Config) error {
	if !IsValidFormat(cfg.Output.Format) {
		return errors.New(errors.CodeUnsupportedFormat, fmt.Sprintf(
			"Unknown output format: %s. use print, text or json instead.", cfg.Output.Format))
	}
	return nil
}

func IsValidFormat(format string) bool {
	switch format {
	case "print", "text", "json":
		return true
	}
	return false
}
