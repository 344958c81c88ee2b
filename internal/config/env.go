// # internal/config/env.go
package config

import (
	"log/slog"
	"os"
	"strconv"
)

// ApplyEnvOverrides applies IMPORTSEARCH_* environment overrides on top
// of the loaded file, before flag handling.
func ApplyEnvOverrides(cfg *Config) {
	setEnvString(&cfg.RootPath, "IMPORTSEARCH_ROOT_PATH")
	setEnvString(&cfg.Output.Format, "IMPORTSEARCH_OUTPUT_FORMAT")
	setEnvString(&cfg.Output.File, "IMPORTSEARCH_OUTPUT_FILE")
	setEnvString(&cfg.Output.DOT, "IMPORTSEARCH_OUTPUT_DOT")
	setEnvString(&cfg.Output.TSV, "IMPORTSEARCH_OUTPUT_TSV")
	setEnvInt(&cfg.Watch.DebounceMS, "IMPORTSEARCH_WATCH_DEBOUNCE_MS")
	setEnvFloat64(&cfg.Watch.MaxRunsPerSec, "IMPORTSEARCH_WATCH_MAX_RUNS_PER_SEC")
}

func setEnvString(target *string, key string) {
	if val, ok := os.LookupEnv(key); ok {
		slog.Debug("applying env override", "key", key, "value", val)
		*target = val
	}
}

func setEnvInt(target *int, key string) {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			slog.Debug("applying env override", "key", key, "value", val)
			*target = i
		}
	}
}

func setEnvFloat64(target *float64, key string) {
	if val, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			slog.Debug("applying env override", "key", key, "value", val)
			*target = f
		}
	}
}
