// internal/platform/ui/raw_presenter.go
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"sbomatic/internal/core/domain"
	"sbomatic/internal/platform/toolcheck"
)

// LogFormat es el formato de línea del modo raw.
type LogFormat string

const (
	LogFormatText LogFormat = "text" // logfmt: event=... key=value
	LogFormatJSON LogFormat = "json" // un objeto JSON por línea
)

// ParseLogFormat valida un formato raw ("" = text).
func ParseLogFormat(s string) (LogFormat, error) {
	switch LogFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", LogFormatText:
		return LogFormatText, nil
	case LogFormatJSON:
		return LogFormatJSON, nil
	default:
		return "", fmt.Errorf("invalid raw format %q (use text or json)", s)
	}
}

// RawPresenter emite una línea por evento, pensado para CI y pipes.
type RawPresenter struct {
	mu     sync.Mutex
	w      io.Writer
	format LogFormat
	now    func() time.Time
}

// NewRawPresenter crea un presenter raw sobre w (nil = stdout).
func NewRawPresenter(w io.Writer, format LogFormat) *RawPresenter {
	if w == nil {
		w = os.Stdout
	}
	if format == "" {
		format = LogFormatText
	}
	return &RawPresenter{w: w, format: format, now: time.Now}
}

func (r *RawPresenter) emit(event string, fields map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields["event"] = event
	fields["ts"] = r.now().UTC().Format(time.RFC3339)

	if r.format == LogFormatJSON {
		// json.Marshal ordena las claves del map
		data, err := json.Marshal(fields)
		if err != nil {
			return
		}
		fmt.Fprintln(r.w, string(data))
		return
	}

	fmt.Fprintln(r.w, logfmtLine(fields))
}

// logfmtLine serializa fields como key=value con claves ordenadas, "ts" y
// "event" primero.
func logfmtLine(fields map[string]interface{}) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == "ts" || k == "event" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	keys = append([]string{"ts", "event"}, keys...)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+logfmtValue(fields[k]))
	}
	return strings.Join(parts, " ")
}

func logfmtValue(v interface{}) string {
	s := fmt.Sprint(v)
	if s == "" || strings.ContainsAny(s, " =\"\t\n") {
		return strconv.Quote(s)
	}
	return s
}

// ScanStarted emite scan_started
func (r *RawPresenter) ScanStarted(root string) {
	r.emit("scan_started", map[string]interface{}{"root": root})
}

// NoProjects emite no_projects
func (r *RawPresenter) NoProjects(root string) {
	r.emit("no_projects", map[string]interface{}{"root": root})
}

// ProjectsFound emite una línea project_found por manifiesto
func (r *RawPresenter) ProjectsFound(groups []domain.ProjectGroup) {
	for _, g := range groups {
		for _, m := range g.Matches {
			r.emit("project_found", map[string]interface{}{
				"dir":       g.Dir,
				"manifest":  m.ManifestFile,
				"ecosystem": m.Ecosystem.String(),
			})
		}
	}
}

// GenerationStarted emite generation_started
func (r *RawPresenter) GenerationStarted(total int) {
	r.emit("generation_started", map[string]interface{}{"total": total})
}

// ProjectStarted emite project_started
func (r *RawPresenter) ProjectStarted(index, total int, project domain.ProjectRecord) {
	r.emit("project_started", map[string]interface{}{
		"index":     index,
		"total":     total,
		"dir":       project.Dir,
		"ecosystem": project.Ecosystem.String(),
	})
}

// ProjectFinished emite project_finished con el status y el artifact o el error
func (r *RawPresenter) ProjectFinished(outcome domain.Outcome) {
	fields := map[string]interface{}{
		"dir":         outcome.Project.Dir,
		"ecosystem":   outcome.Project.Ecosystem.String(),
		"status":      outcome.Status.String(),
		"duration_ms": outcome.Duration.Milliseconds(),
	}
	if outcome.ArtifactPath != "" {
		fields["artifact"] = outcome.ArtifactPath
	}
	if outcome.Error != "" {
		fields["error"] = outcome.Error
	}
	r.emit("project_finished", fields)
}

// Summary emite una línea sbom por resultado y una línea summary con los totales
func (r *RawPresenter) Summary(report *domain.RunReport) {
	for _, res := range report.Results {
		r.emit("sbom", map[string]interface{}{
			"ecosystem": res.Ecosystem.String(),
			"project":   res.ProjectPath,
			"artifact":  res.ArtifactPath,
		})
	}

	stats := report.Stats()
	r.emit("summary", map[string]interface{}{
		"projects":    stats.Projects,
		"generated":   stats.Generated,
		"failed":      stats.Failed,
		"errors":      stats.Errors,
		"duration_ms": report.Duration().Milliseconds(),
	})
}

// ToolCheck emite una línea tool por tool
func (r *RawPresenter) ToolCheck(statuses []toolcheck.ToolStatus) {
	for _, s := range statuses {
		fields := map[string]interface{}{
			"generator": s.Generator,
			"tool":      s.Tool,
			"available": s.Available,
		}
		if s.Version != "" {
			fields["version"] = s.Version
		}
		if s.Path != "" {
			fields["path"] = s.Path
		}
		r.emit("tool", fields)
	}
}

// Info emite un mensaje
func (r *RawPresenter) Info(msg string) {
	r.emit("info", map[string]interface{}{"msg": msg})
}

// Warning emite una advertencia
func (r *RawPresenter) Warning(msg string) {
	r.emit("warning", map[string]interface{}{"msg": msg})
}

// Error emite un error
func (r *RawPresenter) Error(msg string) {
	r.emit("error", map[string]interface{}{"msg": msg})
}

// Close no tiene recursos que liberar
func (r *RawPresenter) Close() error {
	return nil
}
