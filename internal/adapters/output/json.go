// internal/adapters/output/json.go
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"sbomatic/internal/core/domain"
)

// StdoutPath hace que el report se escriba en stdout en lugar de un archivo.
const StdoutPath = "-"

// jsonReport es la forma serializada del RunReport.
type jsonReport struct {
	Root       string                 `json:"root"`
	StartedAt  time.Time              `json:"started_at"`
	FinishedAt time.Time              `json:"finished_at"`
	DurationMS int64                  `json:"duration_ms"`
	Stats      domain.RunStats        `json:"stats"`
	Projects   []domain.ProjectRecord `json:"projects"`
	Outcomes   []jsonOutcome          `json:"outcomes"`
	Results    []domain.SbomResult    `json:"results"`
}

type jsonOutcome struct {
	Dir          string               `json:"dir"`
	ManifestFile string               `json:"manifest_file"`
	Ecosystem    domain.Ecosystem     `json:"ecosystem"`
	Status       domain.OutcomeStatus `json:"status"`
	ArtifactPath string               `json:"artifact_path,omitempty"`
	Error        string               `json:"error,omitempty"`
	DurationMS   int64                `json:"duration_ms"`
}

func toJSONReport(report *domain.RunReport) jsonReport {
	out := jsonReport{
		Root:       report.Root,
		StartedAt:  report.StartedAt,
		FinishedAt: report.FinishedAt,
		DurationMS: report.Duration().Milliseconds(),
		Stats:      report.Stats(),
		Projects:   report.Projects,
		Outcomes:   make([]jsonOutcome, 0, len(report.Outcomes)),
		Results:    report.Results,
	}

	for _, o := range report.Outcomes {
		out.Outcomes = append(out.Outcomes, jsonOutcome{
			Dir:          o.Project.Dir,
			ManifestFile: o.Project.ManifestFile,
			Ecosystem:    o.Project.Ecosystem,
			Status:       o.Status,
			ArtifactPath: o.ArtifactPath,
			Error:        o.Error,
			DurationMS:   o.Duration.Milliseconds(),
		})
	}

	return out
}

// EncodeJSON escribe el report en w como JSON indentado.
func EncodeJSON(w io.Writer, report *domain.RunReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toJSONReport(report)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// WriteJSON exporta el report a path, creando el directorio si hace falta.
func WriteJSON(path string, report *domain.RunReport) error {
	if path == StdoutPath {
		return EncodeJSON(os.Stdout, report)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	return EncodeJSON(f, report)
}

// JSONExporter implementa ports.ReportExporter sobre WriteJSON.
type JSONExporter struct {
	Path string
}

// NewJSONExporter crea un exporter que escribe en path ("-" = stdout).
func NewJSONExporter(path string) *JSONExporter {
	return &JSONExporter{Path: path}
}

// Export escribe el report.
func (e *JSONExporter) Export(report *domain.RunReport) error {
	if e.Path == "" {
		return nil
	}
	return WriteJSON(e.Path, report)
}
