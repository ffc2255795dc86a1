// internal/core/ports/reporter.go
package ports

import "sbomatic/internal/core/domain"

// Reporter es el port de presentación del orchestrator. Desacopla el flujo
// scan/dispatch de cómo se muestra en consola (pterm, texto plano, nada).
type Reporter interface {
	// ScanStarted se invoca antes de recorrer el árbol
	ScanStarted(root string)

	// NoProjects se invoca cuando el scan no encontró manifiestos
	NoProjects(root string)

	// ProjectsFound muestra los proyectos agrupados por directorio
	ProjectsFound(groups []domain.ProjectGroup)

	// GenerationStarted marca el inicio del dispatch
	GenerationStarted(total int)

	// ProjectStarted se invoca antes de despachar un proyecto
	ProjectStarted(index, total int, project domain.ProjectRecord)

	// ProjectFinished reporta el outcome de un proyecto inline
	ProjectFinished(outcome domain.Outcome)

	// Summary imprime el resumen final
	Summary(report *domain.RunReport)
}

// ReportExporter persiste el RunReport (JSON, etc.).
type ReportExporter interface {
	Export(report *domain.RunReport) error
}
