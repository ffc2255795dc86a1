// internal/platform/ui/symbols.go
package ui

import (
	"github.com/pterm/pterm"

	"sbomatic/internal/core/domain"
)

// Status representa el estado de un proyecto o de una tool
type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusSuccess
	StatusWarning
	StatusError
	StatusSkipped
)

// StatusFromOutcome traduce el resultado de un dispatch a un Status visual.
func StatusFromOutcome(s domain.OutcomeStatus) Status {
	switch s {
	case domain.OutcomeGenerated:
		return StatusSuccess
	case domain.OutcomeFailed:
		return StatusWarning
	case domain.OutcomeError:
		return StatusError
	default:
		return StatusPending
	}
}

// String convierte el status a string
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusSuccess:
		return "success"
	case StatusWarning:
		return "warning"
	case StatusError:
		return "error"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Symbol retorna el símbolo Unicode para cada estado
func (s Status) Symbol() string {
	switch s {
	case StatusPending:
		return "⏸"
	case StatusRunning:
		return "⣾"
	case StatusSuccess:
		return "✓"
	case StatusWarning:
		return "⚠"
	case StatusError:
		return "✗"
	case StatusSkipped:
		return "⊘"
	default:
		return "?"
	}
}

// Color retorna el color pterm para cada estado
func (s Status) Color() pterm.Color {
	switch s {
	case StatusPending, StatusSkipped:
		return pterm.FgGray
	case StatusRunning:
		return pterm.FgCyan
	case StatusSuccess:
		return pterm.FgGreen
	case StatusWarning:
		return pterm.FgYellow
	case StatusError:
		return pterm.FgRed
	default:
		return pterm.FgDefault
	}
}

// Style retorna un pterm.Style configurado para el estado
func (s Status) Style() *pterm.Style {
	return pterm.NewStyle(s.Color())
}

// Icons globales para diferentes elementos de la UI
var (
	IconRoot     = "📂"
	IconManifest = "📄"
	IconSbom     = "📦"
	IconTool     = "🔧"
	IconTime     = "⏱"
)

// Separadores y bordes
var (
	SeparatorHeavy = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
	SeparatorLight = "──────────────────────────────────────────────────"
)
