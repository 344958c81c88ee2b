// # cmd/importsearch/app.go
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"importsearch/internal/config"
	"importsearch/internal/core/errors"
	"importsearch/internal/output"
	"importsearch/internal/parser"
	"importsearch/internal/resolver"
	"importsearch/internal/search"
	"importsearch/internal/shared/util"
	"importsearch/internal/watcher"
)

type App struct {
	cfg        *config.Config
	root       string
	entry      string
	out        io.Writer
	limiter    *util.Limiter
	teaProgram *tea.Program
}

func NewApp(cfg *config.Config, root, entry string) *App {
	return &App{
		cfg:     cfg,
		root:    root,
		entry:   entry,
		out:     os.Stdout,
		limiter: util.NewLimiter(cfg.Watch.MaxRunsPerSec, 1),
	}
}

// runSearch builds a fresh parser and resolver so every run observes the
// filesystem as it currently is, then walks the import closure of the entry.
func (a *App) runSearch() (*search.Result, error) {
	p := parser.NewParser(parser.NewGrammarLoader())
	p.RegisterExtractor("python", &parser.PythonExtractor{})

	r, err := resolver.New(a.root)
	if err != nil {
		return nil, err
	}

	result, err := search.New(p, r).Run(a.entry)
	if err != nil {
		return nil, errors.AddContext(err, errors.CtxRoot, a.root)
	}
	return result, nil
}

// emit renders the result in the configured format and writes the optional
// graph exports.
func (a *App) emit(result *search.Result) error {
	switch a.cfg.Output.Format {
	case "print":
		output.Print(a.out, result)
	case "text":
		output.Emit(a.out, output.Text(result), a.cfg.Output.File, "txt")
	case "json":
		payload, err := output.JSON(result)
		if err != nil {
			return err
		}
		output.Emit(a.out, payload, a.cfg.Output.File, "json")
	}

	a.export(result)
	return nil
}

// export writes the DOT and TSV files when configured. Failures are
// reported but never fail the run.
func (a *App) export(result *search.Result) {
	if a.cfg.Output.DOT != "" {
		dot, err := output.NewDOTGenerator(result).Generate()
		if err == nil {
			err = util.WriteStringWithDirs(a.cfg.Output.DOT, dot, 0o644)
		}
		if err != nil {
			slog.Warn("failed to write DOT export", "path", a.cfg.Output.DOT, "error", err)
		}
	}

	if a.cfg.Output.TSV != "" {
		tsv, err := output.NewTSVGenerator(result).Generate()
		if err == nil {
			err = util.WriteStringWithDirs(a.cfg.Output.TSV, tsv, 0o644)
		}
		if err != nil {
			slog.Warn("failed to write TSV export", "path", a.cfg.Output.TSV, "error", err)
		}
	}
}

func (a *App) RunOnce() error {
	result, err := a.runSearch()
	if err != nil {
		return err
	}
	return a.emit(result)
}

// Watch performs an initial run, then re-runs the search whenever Python
// files under the root change. With the UI enabled, results feed the
// terminal program instead of stdout.
func (a *App) Watch(withUI bool) error {
	result, err := a.runSearch()
	if err != nil {
		return err
	}

	if withUI {
		a.export(result)
		a.teaProgram = tea.NewProgram(initialModel(result), tea.WithAltScreen())
	} else if err := a.emit(result); err != nil {
		return err
	}

	w, err := watcher.NewWatcher(a.root, a.cfg.Watch.Debounce(), a.cfg.Exclude.Dirs, a.cfg.Exclude.Files, a.handleChanges)
	if err != nil {
		return errors.Wrap(err, errors.CodeWatcher, "creating filesystem watcher")
	}
	defer w.Close()

	if err := w.Watch([]string{a.root}); err != nil {
		return errors.Wrap(err, errors.CodeWatcher, "watching root directory")
	}
	slog.Info("watching for changes", "root", a.root)

	if withUI {
		_, err := a.teaProgram.Run()
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	slog.Info("shutting down")
	return nil
}

func (a *App) handleChanges(paths []string) {
	slog.Info("detected changes", "count", len(paths))

	if err := a.limiter.Wait(context.Background()); err != nil {
		return
	}

	start := time.Now()
	result, err := a.runSearch()
	if err != nil {
		slog.Error("search failed", "error", err)
		return
	}
	slog.Debug("run completed", "duration", time.Since(start), "visited", len(result.Visited))

	if a.teaProgram != nil {
		a.export(result)
		a.teaProgram.Send(updateMsg{result: result})
		return
	}

	if err := a.emit(result); err != nil {
		slog.Error("failed to emit result", "error", err)
	}
}
