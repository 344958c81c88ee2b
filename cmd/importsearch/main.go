// # cmd/importsearch/main.go
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"importsearch/internal/config"
)

// Build-time values injected via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagRoot    string
	flagFormat  string
	flagOutput  string
	flagConfig  string
	flagVerbose bool
	flagWatch   bool
	flagUI      bool
)

var rootCmd = &cobra.Command{
	Use:   "importsearch [flags] FILE",
	Short: "Trace the import graph of a Python file",
	Long: `importsearch parses a Python entry file, resolves its import statements
against a root directory and follows the resolved files recursively. The
collected graph is rendered as a console table, a plain-text summary or a
JSON payload, with optional DOT and TSV exports.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(flagVerbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		config.ApplyEnvOverrides(cfg)

		if cmd.Flags().Changed("root") {
			cfg.RootPath = flagRoot
		}
		if cmd.Flags().Changed("output-format") {
			cfg.Output.Format = flagFormat
		}
		if cmd.Flags().Changed("output-file") {
			cfg.Output.File = flagOutput
		}

		// The format must be known before any traversal starts.
		if err := config.Validate(cfg); err != nil {
			return err
		}

		root, err := filepath.Abs(cfg.RootPath)
		if err != nil {
			return err
		}

		app := NewApp(cfg, root, args[0])
		if flagWatch || flagUI {
			return app.Watch(flagUI)
		}
		return app.RunOnce()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("importsearch %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().StringVarP(&flagRoot, "root", "r", ".", "Root directory imports resolve against")
	rootCmd.Flags().StringVarP(&flagFormat, "output-format", "o", "print", "Output format: print, text or json")
	rootCmd.Flags().StringVar(&flagOutput, "output-file", "output", "Base path for text/json output files")
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "importsearch.toml", "Path to config file")
	rootCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Re-run when files under the root change")
	rootCmd.Flags().BoolVar(&flagUI, "ui", false, "Terminal UI for watch mode (implies --watch)")

	rootCmd.AddCommand(versionCmd)
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// stderr keeps stdout clean for the rendered output.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		slog.Error("importsearch failed", "error", err)
		os.Exit(1)
	}
}
