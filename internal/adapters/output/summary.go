// internal/adapters/output/summary.go
package output

import (
	"fmt"
	"io"
	"strings"

	"sbomatic/internal/core/domain"
)

// SummarySeparator separa las entradas del resumen.
var SummarySeparator = strings.Repeat("-", 50)

// WriteSummary imprime el bloque "Generated SBOM Summary": una entrada por
// cada SbomResult, en el orden en que se generaron. highlight colorea la línea
// de la ubicación del SBOM (nil = sin color).
func WriteSummary(w io.Writer, report *domain.RunReport, highlight func(string) string) error {
	if highlight == nil {
		highlight = func(s string) string { return s }
	}

	var b strings.Builder
	b.WriteString("\nGenerated SBOM Summary:\n")
	b.WriteString(SummarySeparator + "\n")

	for _, r := range report.Results {
		fmt.Fprintf(&b, "Language: %s\n", r.Ecosystem)
		fmt.Fprintf(&b, "Project Location: %s\n", r.ProjectPath)
		if r.Succeeded() {
			b.WriteString(highlight("SBOM Location: "+r.ArtifactPath) + "\n")
		} else {
			// Results solo contiene artifacts presentes; la rama queda por si acaso.
			fmt.Fprintf(&b, "SBOM generation failed for %s (%s).\n", r.ProjectPath, r.Ecosystem)
		}
		b.WriteString(SummarySeparator + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// FailureLine es el mensaje para un proyecto que terminó sin artifact.
func FailureLine(project domain.ProjectRecord) string {
	return fmt.Sprintf("SBOM generation failed for %s (%s).", project.Dir, project.Ecosystem)
}

// ErrorLine es el mensaje para un proyecto cuyo generador falló.
func ErrorLine(outcome domain.Outcome) string {
	return fmt.Sprintf("Error generating SBOM for %s (%s): %s",
		outcome.Project.Dir, outcome.Project.Ecosystem, outcome.Error)
}

// StartLine es el mensaje previo a invocar un generador.
func StartLine(project domain.ProjectRecord) string {
	return fmt.Sprintf("Generating SBOM for %s project at %s", project.Ecosystem.DisplayName(), project.Dir)
}
