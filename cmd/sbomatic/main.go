// cmd/sbomatic/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"sbomatic/internal/adapters/output"
	"sbomatic/internal/core/usecases"
	"sbomatic/internal/platform/config"
	"sbomatic/internal/platform/errors"
	"sbomatic/internal/platform/logx"
	"sbomatic/internal/platform/registry"
	"sbomatic/internal/platform/toolcheck"
	"sbomatic/internal/platform/ui"

	// Import generators for auto-registration via init()
	_ "sbomatic/internal/generators/gomod"
	_ "sbomatic/internal/generators/java"
	_ "sbomatic/internal/generators/nodejs"
	_ "sbomatic/internal/generators/python"
)

var (
	// Rellenables con -ldflags en build
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// 1. Config (defaults -> YAML -> ENV -> flags)
	cfg, err := config.LoadArgs(args)
	switch {
	case errors.Is(err, config.ErrHelp):
		config.PrintHelp(stdout)
		return exitOK
	case errors.Is(err, config.ErrUsage):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		config.PrintUsage(stderr)
		return exitUsage
	case err != nil:
		fmt.Fprintf(stderr, "Error: configuration load failed: %v\n", err)
		return exitUsage
	}

	if cfg.PrintVersion {
		config.PrintVersion(stdout, version, commit, date)
		return exitOK
	}

	// 2. Shared logger (stderr, warn por defecto para no ensuciar el reporte)
	logger := logx.NewWithWriter(stderr, logx.ParseLevel(cfg.LogLevel))
	if effective, jerr := cfg.ToJSON(); jerr == nil {
		logger.Debug("effective configuration", "config", effective)
	}

	// 3. Presenter
	presenter, err := buildPresenter(cfg, stdout, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	defer presenter.Close()

	// 4. Context and signals for clean shutdown
	ctx, cancel := rootContextWithSignals()
	defer cancel()

	// 5. Build generators from registry (--check inspects the tools they will really run)
	logger.Debug("registered generators", "names", registry.Global().List())
	generators, err := registry.Global().Build(cfg.GeneratorConfigs(), logger)
	if err != nil {
		presenter.Error(fmt.Sprintf("generator configuration: %v", err))
		return exitUsage
	}
	logger.Info("generators built", "count", len(generators))

	if cfg.CheckTools {
		statuses := toolcheck.CheckGenerators(ctx, generators, registry.Global().GetMetadata)
		presenter.ToolCheck(statuses)
		if len(toolcheck.Missing(statuses)) > 0 {
			return exitFailed
		}
		return exitOK
	}

	logger.Info("sbomatic starting",
		"version", version,
		"commit", commit,
		"root", cfg.Root,
		"config", cfg.ConfigPath,
	)

	// 6. Orchestrator
	orch := usecases.NewOrchestrator(usecases.OrchestratorOptions{
		Scanner:    usecases.NewScanner(logger, cfg.Exclude...),
		Generators: generators,
		Reporter:   presenter,
		Logger:     logger,
	})

	report, runErr := orch.Run(ctx, cfg.Root)

	// 7. Handle execution errors
	switch {
	case runErr == nil:
	case errors.IsNoProjects(runErr):
		// el presenter ya lo informó; no es un fallo
	case errors.Is(runErr, context.Canceled):
		presenter.Warning("interrupted, remaining projects were not processed")
	default:
		presenter.Error(runErr.Error())
		logger.Err(runErr, "phase", "scan")
		return exitFailed
	}

	// 8. JSON report (also partial/empty runs)
	if cfg.ReportPath != "" && report != nil {
		if err := output.NewJSONExporter(cfg.ReportPath).Export(report); err != nil {
			logger.Err(err, "phase", "report")
			presenter.Error(fmt.Sprintf("writing report: %v", err))
			return exitFailed
		}
		logger.Info("report written", "path", cfg.ReportPath)
	}

	if report != nil {
		stats := report.Stats()
		logger.Info("sbomatic finished",
			"elapsed_ms", report.Duration().Milliseconds(),
			"generated", stats.Generated,
			"failed", stats.Failed,
			"errors", stats.Errors,
		)
	}

	if errors.Is(runErr, context.Canceled) {
		return exitFailed
	}
	return exitOK
}

// buildPresenter resuelve el modo de UI: auto depende de si stdout es una
// terminal; --report - reserva stdout para el JSON.
func buildPresenter(cfg config.Config, stdout io.Writer, logger logx.Logger) (ui.Presenter, error) {
	mode, err := ui.ParseUIMode(cfg.UI)
	if err != nil {
		return nil, err
	}
	rawFormat, err := ui.ParseLogFormat(cfg.RawFormat)
	if err != nil {
		return nil, err
	}

	tty := isTerminal(stdout)
	color := tty && !cfg.NoColor && os.Getenv("NO_COLOR") == ""
	if !color {
		pterm.DisableColor()
	}

	mode = ui.ResolveMode(mode, tty)
	if cfg.ReportPath == output.StdoutPath && mode != ui.UIModeNone {
		logger.Info("report goes to stdout, console output disabled", "ui", string(mode))
		mode = ui.UIModeNone
	}

	return ui.New(ui.Options{
		Mode:   mode,
		Writer: stdout,
		Color:  color,
		// el spinner solo tiene sentido si la tool no escribe en la misma terminal
		Spinner:   tty && cfg.Quiet,
		RawFormat: rawFormat,
	}), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// rootContextWithSignals creates a root context cancelled on SIGINT/SIGTERM.
// The cancel function releases the signal handler and the watcher goroutine.
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	base, baseCancel := context.WithCancel(context.Background())

	// System signal channel
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	// Goroutine waiting for signals OR context cancellation
	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanupCancel := func() {
		signal.Stop(ch)
		baseCancel()
	}

	return base, cleanupCancel
}
