// Package common provides shared abstractions for generator implementations.
package common

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"sbomatic/internal/platform/errors"
	"sbomatic/internal/platform/logx"
)

// waitDelay limita cuánto espera Wait a que se cierren stdout/stderr
// después de matar el proceso.
const waitDelay = 2 * time.Second

// ToolError indica que una tool externa no pudo arrancar (no está en PATH,
// no es ejecutable, etc.). Envuelve errors.ErrToolNotFound.
type ToolError struct {
	Tool string
	Err  error
}

// Error implements the error interface
func (e *ToolError) Error() string {
	return fmt.Sprintf("%s: %v", e.Tool, e.Err)
}

// ToolName retorna el ejecutable que no pudo arrancar.
func (e *ToolError) ToolName() string {
	return e.Tool
}

// Unwrap retorna la causa original
func (e *ToolError) Unwrap() error {
	return e.Err
}

// Is hace que errors.Is(err, ErrToolNotFound) funcione sin importar la causa.
func (e *ToolError) Is(target error) bool {
	return target == errors.ErrToolNotFound
}

// ToolRun describe una invocación terminada.
type ToolRun struct {
	Tool     string
	Args     []string
	ExitCode int
	Duration time.Duration
}

// BaseCLIGenerator provides common functionality for CLI-based SBOM generators.
// It handles tool lookup, cwd, console passthrough and timeouts.
//
// Usage:
//  1. Embed BaseCLIGenerator in your generator struct
//  2. Call RunTool() once per external command, in order
//  3. Check the artifact with FirstReadyArtifact()
type BaseCLIGenerator struct {
	logger  logx.Logger
	timeout time.Duration
	stdout  io.Writer
	stderr  io.Writer
}

// BaseCLIConfig contains configuration for BaseCLIGenerator.
type BaseCLIConfig struct {
	GeneratorName string        // Generator name for logging
	Timeout       time.Duration // Per-tool timeout (0 = none)
	Quiet         bool          // Discard tool output
	Stdout        io.Writer     // Default: os.Stdout
	Stderr        io.Writer     // Default: os.Stderr
}

// NewBaseCLIGenerator creates a new BaseCLIGenerator with the given configuration.
func NewBaseCLIGenerator(logger logx.Logger, cfg BaseCLIConfig) *BaseCLIGenerator {
	if logger == nil {
		logger = logx.Discard()
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	if cfg.Quiet {
		cfg.Stdout = io.Discard
		cfg.Stderr = io.Discard
	}

	return &BaseCLIGenerator{
		logger:  logger.With("generator", cfg.GeneratorName),
		timeout: cfg.Timeout,
		stdout:  cfg.Stdout,
		stderr:  cfg.Stderr,
	}
}

// RunTool ejecuta argv con dir como cwd y espera a que termine.
//
//   - Tool inexistente o no ejecutable: *ToolError (errors.ErrToolNotFound).
//   - Exit code distinto de cero: warning, nil error. El resultado lo decide
//     el artifact en disco.
//   - Timeout por tool vencido: error que envuelve errors.ErrTimeout.
//   - ctx cancelado: ctx.Err().
func (b *BaseCLIGenerator) RunTool(ctx context.Context, dir string, argv []string) (ToolRun, error) {
	if len(argv) == 0 || argv[0] == "" {
		return ToolRun{}, errors.Wrap(errors.ErrInvalidInput, "empty command")
	}

	run := ToolRun{Tool: argv[0], Args: argv[1:]}

	execPath, err := exec.LookPath(run.Tool)
	if err != nil {
		return run, &ToolError{Tool: run.Tool, Err: err}
	}

	runCtx := ctx
	if b.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, execPath, run.Args...)
	cmd.Dir = dir
	cmd.Stdout = b.stdout
	cmd.Stderr = b.stderr
	cmd.WaitDelay = waitDelay

	b.logger.Debug("executing tool",
		"dir", dir,
		"command", strings.Join(argv, " "),
		"timeout", b.timeout.String(),
	)

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return run, &ToolError{Tool: run.Tool, Err: err}
	}

	waitErr := cmd.Wait()
	run.Duration = time.Since(start)
	if cmd.ProcessState != nil {
		run.ExitCode = cmd.ProcessState.ExitCode()
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return run, ctxErr
	}
	if runCtx.Err() == context.DeadlineExceeded {
		return run, errors.Wrapf(errors.ErrTimeout, "%s exceeded %s", run.Tool, b.timeout)
	}

	if waitErr != nil {
		b.logger.Warn("tool exited with error",
			"tool", run.Tool,
			"dir", dir,
			"exit_code", run.ExitCode,
			"duration", run.Duration.Round(time.Millisecond).String(),
		)
		return run, nil
	}

	b.logger.Debug("tool completed",
		"tool", run.Tool,
		"duration", run.Duration.Round(time.Millisecond).String(),
	)
	return run, nil
}

// GetLogger returns the logger instance.
func (b *BaseCLIGenerator) GetLogger() logx.Logger {
	return b.logger
}
