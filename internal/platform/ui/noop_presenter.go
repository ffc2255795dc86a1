// internal/platform/ui/noop_presenter.go
package ui

import (
	"sbomatic/internal/core/domain"
	"sbomatic/internal/platform/toolcheck"
)

// NoopPresenter es una implementación vacía del Presenter
// que no produce ninguna salida. Útil para --ui none o con --report -.
type NoopPresenter struct{}

// NewNoopPresenter crea una instancia del presenter sin salida
func NewNoopPresenter() *NoopPresenter {
	return &NoopPresenter{}
}

// ScanStarted no hace nada
func (n *NoopPresenter) ScanStarted(root string) {}

// NoProjects no hace nada
func (n *NoopPresenter) NoProjects(root string) {}

// ProjectsFound no hace nada
func (n *NoopPresenter) ProjectsFound(groups []domain.ProjectGroup) {}

// GenerationStarted no hace nada
func (n *NoopPresenter) GenerationStarted(total int) {}

// ProjectStarted no hace nada
func (n *NoopPresenter) ProjectStarted(index, total int, project domain.ProjectRecord) {}

// ProjectFinished no hace nada
func (n *NoopPresenter) ProjectFinished(outcome domain.Outcome) {}

// Summary no hace nada
func (n *NoopPresenter) Summary(report *domain.RunReport) {}

// ToolCheck no hace nada
func (n *NoopPresenter) ToolCheck(statuses []toolcheck.ToolStatus) {}

// Info no hace nada
func (n *NoopPresenter) Info(msg string) {}

// Warning no hace nada
func (n *NoopPresenter) Warning(msg string) {}

// Error no hace nada
func (n *NoopPresenter) Error(msg string) {}

// Close no hace nada
func (n *NoopPresenter) Close() error {
	return nil
}
