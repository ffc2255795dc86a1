// internal/platform/ui/helpers.go
package ui

import (
	"fmt"
	"time"

	"sbomatic/internal/core/domain"
	"sbomatic/internal/platform/toolcheck"
)

// formatDuration formatea una duración de manera legible
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	} else if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	} else {
		minutes := int(d.Minutes())
		seconds := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	}
}

// hintFor retorna la primera sugerencia para un outcome con error, o "".
func hintFor(o domain.Outcome) string {
	if o.Status != domain.OutcomeError || o.Err == nil {
		return ""
	}
	ec := toolcheck.AnalyzeError(o.Project.Ecosystem, o.Project.Dir, o.Err)
	if ec == nil || len(ec.Solutions) == 0 {
		return ""
	}
	return ec.Reason + ". " + ec.Solutions[0]
}
