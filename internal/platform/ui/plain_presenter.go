// internal/platform/ui/plain_presenter.go
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"sbomatic/internal/adapters/output"
	"sbomatic/internal/core/domain"
	"sbomatic/internal/platform/toolcheck"
	"sbomatic/internal/platform/ui/terminal"
)

// PlainPresenter imprime las mismas líneas que el script clásico, sin
// decoración. El color ANSI es opcional (lista de archivos, errores, summary).
type PlainPresenter struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

// NewPlainPresenter crea un presenter de texto plano sobre w (nil = stdout).
func NewPlainPresenter(w io.Writer, color bool) *PlainPresenter {
	if w == nil {
		w = os.Stdout
	}
	return &PlainPresenter{w: w, color: color}
}

func (p *PlainPresenter) paint(text, color string) string {
	if !p.color {
		return text
	}
	return terminal.Colorize(text, color)
}

func (p *PlainPresenter) println(s string) {
	fmt.Fprintln(p.w, s)
}

// ScanStarted no imprime nada: la salida clásica empieza con los resultados.
func (p *PlainPresenter) ScanStarted(root string) {}

// NoProjects informa que no hay manifiestos soportados
func (p *PlainPresenter) NoProjects(root string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println("No supported projects found!")
}

// ProjectsFound lista los proyectos agrupados por directorio, numerados desde 1
func (p *PlainPresenter) ProjectsFound(groups []domain.ProjectGroup) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println("\nFound projects:")
	for i, g := range groups {
		p.println(fmt.Sprintf("%d. Path: %s", i+1, g.Dir))
		for _, m := range g.Matches {
			line := fmt.Sprintf("   File: %s, Tech Stack: %s", m.ManifestFile, m.Ecosystem)
			p.println(p.paint(line, terminal.BrightGreen))
		}
	}
}

// GenerationStarted marca el inicio del dispatch
func (p *PlainPresenter) GenerationStarted(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println("\nGenerating SBOMs...")
}

// ProjectStarted anuncia el proyecto que se va a procesar
func (p *PlainPresenter) ProjectStarted(index, total int, project domain.ProjectRecord) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println(output.StartLine(project))
}

// ProjectFinished imprime la línea de fallo o de error; el éxito no imprime nada
// hasta el summary.
func (p *PlainPresenter) ProjectFinished(outcome domain.Outcome) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch outcome.Status {
	case domain.OutcomeFailed:
		p.println(output.FailureLine(outcome.Project))
	case domain.OutcomeError:
		p.println(p.paint(output.ErrorLine(outcome), terminal.BrightRed))
	}
}

// Summary imprime el bloque "Generated SBOM Summary"
func (p *PlainPresenter) Summary(report *domain.RunReport) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var highlight func(string) string
	if p.color {
		highlight = func(s string) string { return terminal.Colorize(s, terminal.BrightGreen) }
	}
	_ = output.WriteSummary(p.w, report, highlight)
}

// ToolCheck imprime la tabla de tools
func (p *PlainPresenter) ToolCheck(statuses []toolcheck.ToolStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()

	_ = output.WriteToolTable(p.w, statuses)
}

// Info muestra un mensaje informativo
func (p *PlainPresenter) Info(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println(msg)
}

// Warning muestra una advertencia
func (p *PlainPresenter) Warning(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println(p.paint("Warning: "+msg, terminal.Yellow))
}

// Error muestra un error
func (p *PlainPresenter) Error(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println(p.paint("Error: "+msg, terminal.BrightRed))
}

// Close no tiene recursos que liberar
func (p *PlainPresenter) Close() error {
	return nil
}
