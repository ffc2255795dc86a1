// internal/core/domain/result.go
package domain

import "time"

// SbomResult representa un SBOM generado con éxito para un proyecto.
type SbomResult struct {
	// Ecosystem ecosistema del proyecto de origen
	Ecosystem Ecosystem `json:"ecosystem"`

	// ProjectPath directorio del proyecto
	ProjectPath string `json:"project_path"`

	// ArtifactPath ruta del SBOM generado ("" = ausente)
	ArtifactPath string `json:"artifact_path,omitempty"`
}

// Succeeded indica si el resultado tiene un artifact.
func (r SbomResult) Succeeded() bool {
	return r.ArtifactPath != ""
}

// OutcomeStatus clasifica el resultado de un dispatch a un generador.
type OutcomeStatus string

const (
	// OutcomeGenerated el artifact existe y no está vacío
	OutcomeGenerated OutcomeStatus = "generated"

	// OutcomeFailed el generador terminó pero no dejó artifact utilizable
	OutcomeFailed OutcomeStatus = "failed"

	// OutcomeError el generador retornó un error (o hizo panic)
	OutcomeError OutcomeStatus = "error"
)

// String retorna la representación string del status.
func (s OutcomeStatus) String() string {
	return string(s)
}

// Outcome registra lo ocurrido al despachar un ProjectRecord.
type Outcome struct {
	Project      ProjectRecord `json:"project"`
	Status       OutcomeStatus `json:"status"`
	ArtifactPath string        `json:"artifact_path,omitempty"`
	Err          error         `json:"-"`
	Error        string        `json:"error,omitempty"`
	Duration     time.Duration `json:"duration"`
}

// NewOutcome construye un Outcome a partir de la salida de un generador.
// err tiene prioridad sobre artifactPath.
func NewOutcome(project ProjectRecord, artifactPath string, err error, duration time.Duration) Outcome {
	o := Outcome{
		Project:  project,
		Duration: duration,
	}

	switch {
	case err != nil:
		o.Status = OutcomeError
		o.Err = err
		o.Error = err.Error()
	case artifactPath == "":
		o.Status = OutcomeFailed
	default:
		o.Status = OutcomeGenerated
		o.ArtifactPath = artifactPath
	}

	return o
}

// RunReport contiene el registro completo de una ejecución.
type RunReport struct {
	Root       string          `json:"root"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	Projects   []ProjectRecord `json:"projects"`
	Outcomes   []Outcome       `json:"outcomes"`
	Results    []SbomResult    `json:"results"`
}

// NewRunReport crea un RunReport vacío para root.
func NewRunReport(root string) *RunReport {
	return &RunReport{
		Root:      root,
		StartedAt: time.Now(),
		Projects:  make([]ProjectRecord, 0),
		Outcomes:  make([]Outcome, 0),
		Results:   make([]SbomResult, 0),
	}
}

// AddOutcome agrega un outcome y, si hay artifact, el SbomResult correspondiente.
func (r *RunReport) AddOutcome(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	if o.ArtifactPath != "" {
		r.Results = append(r.Results, SbomResult{
			Ecosystem:    o.Project.Ecosystem,
			ProjectPath:  o.Project.Dir,
			ArtifactPath: o.ArtifactPath,
		})
	}
}

// Finish marca el final de la ejecución.
func (r *RunReport) Finish() {
	r.FinishedAt = time.Now()
}

// Duration retorna la duración total de la ejecución.
func (r *RunReport) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return time.Since(r.StartedAt)
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// RunStats contadores agregados de una ejecución.
type RunStats struct {
	Projects  int `json:"projects"`
	Generated int `json:"generated"`
	Failed    int `json:"failed"`
	Errors    int `json:"errors"`
}

// Stats calcula contadores por status.
func (r *RunReport) Stats() RunStats {
	stats := RunStats{Projects: len(r.Projects)}
	for _, o := range r.Outcomes {
		switch o.Status {
		case OutcomeGenerated:
			stats.Generated++
		case OutcomeFailed:
			stats.Failed++
		case OutcomeError:
			stats.Errors++
		}
	}
	return stats
}
