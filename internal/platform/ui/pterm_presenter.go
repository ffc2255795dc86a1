// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pterm/pterm"

	"sbomatic/internal/adapters/output"
	"sbomatic/internal/core/domain"
	"sbomatic/internal/platform/toolcheck"
)

// PTermPresenter implementa Presenter usando la biblioteca pterm
// para renderizar headers, secciones, símbolos y spinners en la terminal.
// Todo se escribe en el writer inyectado (Sprint + Fprintln), nunca en el
// stdout global de pterm.
type PTermPresenter struct {
	mu sync.Mutex
	w  io.Writer

	// Spinner del proyecto en curso (solo si withSpinner)
	withSpinner bool
	spinner     *pterm.SpinnerPrinter
}

// NewPTermPresenter crea una nueva instancia del presenter con pterm
func NewPTermPresenter(w io.Writer, spinner bool) *PTermPresenter {
	if w == nil {
		w = os.Stdout
	}
	return &PTermPresenter{w: w, withSpinner: spinner}
}

func (p *PTermPresenter) println(a ...interface{}) {
	fmt.Fprintln(p.w, a...)
}

// ScanStarted muestra el header del run
func (p *PTermPresenter) ScanStarted(root string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println(pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgGreen)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprint("sbomatic - CycloneDX SBOM generation"))
	p.println(fmt.Sprintf("%s Root: %s", IconRoot, StyleAccent.Sprint(root)))
	p.println()
}

// NoProjects informa que no hay manifiestos soportados
func (p *PTermPresenter) NoProjects(root string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println(pterm.Warning.Sprint("No supported projects found!"))
}

// ProjectsFound lista los proyectos agrupados por directorio
func (p *PTermPresenter) ProjectsFound(groups []domain.ProjectGroup) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println(pterm.DefaultSection.Sprint("Found projects"))
	for i, g := range groups {
		p.println(fmt.Sprintf("%d. %s", i+1, g.Dir))
		for _, m := range g.Matches {
			p.println(fmt.Sprintf("   %s %s %s",
				IconManifest,
				StyleSuccess.Sprint(m.ManifestFile),
				StyleSecondary.Sprint("("+m.Ecosystem.DisplayName()+")"),
			))
		}
	}
	p.println()
}

// GenerationStarted abre la sección de generación
func (p *PTermPresenter) GenerationStarted(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println(pterm.DefaultSection.Sprint(fmt.Sprintf("Generating SBOMs (%d)", total)))
}

// ProjectStarted anuncia el proyecto; con spinner, lo deja girando hasta
// ProjectFinished.
func (p *PTermPresenter) ProjectStarted(index, total int, project domain.ProjectRecord) {
	p.mu.Lock()
	defer p.mu.Unlock()

	text := fmt.Sprintf("[%d/%d] %s", index, total, output.StartLine(project))

	if !p.withSpinner {
		p.println(fmt.Sprintf("  %s %s", StatusRunning.Symbol(), text))
		return
	}

	spinner, err := pterm.DefaultSpinner.
		WithWriter(p.w).
		WithRemoveWhenDone(true).
		WithStyle(pterm.NewStyle(pterm.FgCyan)).
		WithSequence("⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷").
		Start(text)
	if err != nil {
		p.println(fmt.Sprintf("  %s %s", StatusRunning.Symbol(), text))
		return
	}
	p.spinner = spinner
}

// ProjectFinished detiene el spinner y renderiza la línea final del proyecto
func (p *PTermPresenter) ProjectFinished(outcome domain.Outcome) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopSpinner()

	status := StatusFromOutcome(outcome.Status)
	project := outcome.Project
	label := fmt.Sprintf("%s (%s)", project.Dir, project.Ecosystem.DisplayName())
	took := StyleSecondary.Sprint(formatDuration(outcome.Duration))

	switch outcome.Status {
	case domain.OutcomeGenerated:
		p.println(fmt.Sprintf("  %s %s %s %s",
			status.Style().Sprint(status.Symbol()), label, took,
			StyleSuccess.Sprint(IconSbom+" "+outcome.ArtifactPath),
		))
	case domain.OutcomeFailed:
		p.println(fmt.Sprintf("  %s %s %s",
			status.Style().Sprint(status.Symbol()),
			StyleWarning.Sprint(output.FailureLine(project)), took,
		))
	default:
		p.println(fmt.Sprintf("  %s %s %s",
			status.Style().Sprint(status.Symbol()),
			StyleError.Sprint(output.ErrorLine(outcome)), took,
		))
		if hint := hintFor(outcome); hint != "" {
			p.println(StyleSecondary.Sprint("      " + IconTool + " " + hint))
		}
	}
}

// Summary imprime el resumen: el bloque clásico más una tabla de totales
func (p *PTermPresenter) Summary(report *domain.RunReport) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopSpinner()

	p.println()
	p.println(pterm.Gray(SeparatorHeavy))
	_ = output.WriteSummary(p.w, report, func(s string) string { return pterm.Green(s) })

	stats := report.Stats()
	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithData(pterm.TableData{
			{"Projects", "Generated", "Failed", "Errors", "Duration"},
			{
				fmt.Sprint(stats.Projects),
				fmt.Sprint(stats.Generated),
				fmt.Sprint(stats.Failed),
				fmt.Sprint(stats.Errors),
				formatDuration(report.Duration()),
			},
		}).
		Srender()
	if err == nil {
		p.println()
		p.println(table)
	}

	switch {
	case stats.Errors > 0:
		p.println(pterm.Error.Sprint(fmt.Sprintf("%d project(s) failed with errors", stats.Errors)))
	case stats.Failed > 0:
		p.println(pterm.Warning.Sprint(fmt.Sprintf("%d project(s) produced no SBOM", stats.Failed)))
	default:
		p.println(pterm.Success.Sprint(fmt.Sprintf("%d SBOM(s) generated", stats.Generated)))
	}
}

// ToolCheck renderiza el estado de las tools como tabla pterm
func (p *PTermPresenter) ToolCheck(statuses []toolcheck.ToolStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println(pterm.DefaultSection.Sprint(IconTool + " External tools"))

	data := pterm.TableData{{"Generator", "Tool", "Status", "Version", "Path"}}
	for _, s := range statuses {
		st := StatusError
		if s.Available {
			st = StatusSuccess
		}
		data = append(data, []string{
			s.Generator,
			s.Tool,
			st.Style().Sprint(st.Symbol()),
			s.Version,
			s.Path,
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		_ = output.WriteToolTable(p.w, statuses)
		return
	}
	p.println(table)

	for _, s := range toolcheck.Missing(statuses) {
		p.println(pterm.Warning.Sprint(fmt.Sprintf("%s not found: %s", s.Tool, s.InstallHint)))
	}
}

// Info muestra un mensaje informativo
func (p *PTermPresenter) Info(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println(pterm.Info.Sprint(msg))
}

// Warning muestra una advertencia
func (p *PTermPresenter) Warning(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println(pterm.Warning.Sprint(msg))
}

// Error muestra un error
func (p *PTermPresenter) Error(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println(pterm.Error.Sprint(msg))
}

// Close detiene el spinner si quedó alguno activo
func (p *PTermPresenter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopSpinner()
	return nil
}

// stopSpinner asume p.mu tomado
func (p *PTermPresenter) stopSpinner() {
	if p.spinner == nil {
		return
	}
	_ = p.spinner.Stop()
	p.spinner = nil
}
