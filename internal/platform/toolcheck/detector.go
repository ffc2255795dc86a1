// Package toolcheck verifica que las tools externas de cada generador estén
// instaladas y traduce los errores de ejecución a sugerencias concretas.
package toolcheck

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"sbomatic/internal/core/domain"
	"sbomatic/internal/core/ports"
)

// defaultVersionTimeout acota cada llamada de versión (mvn tarda en arrancar).
const defaultVersionTimeout = 15 * time.Second

// ToolInfo describe cómo consultar e instalar una tool conocida.
type ToolInfo struct {
	VersionArgs []string
	InstallHint string
	DocsURL     string
}

// KnownTools son las tools que invocan los generadores por defecto.
var KnownTools = map[string]ToolInfo{
	"mvn": {
		VersionArgs: []string{"--version"},
		InstallHint: "install Apache Maven (https://maven.apache.org/install.html)",
		DocsURL:     "https://github.com/CycloneDX/cyclonedx-maven-plugin",
	},
	"cyclonedx-py": {
		VersionArgs: []string{"--version"},
		InstallHint: "pip install cyclonedx-bom",
		DocsURL:     "https://github.com/CycloneDX/cyclonedx-python",
	},
	"cyclonedx-gomod": {
		VersionArgs: []string{"version"},
		InstallHint: "go install github.com/CycloneDX/cyclonedx-gomod/cmd/cyclonedx-gomod@latest",
		DocsURL:     "https://github.com/CycloneDX/cyclonedx-gomod",
	},
	"npm": {
		VersionArgs: []string{"--version"},
		InstallHint: "install Node.js, which ships npm (https://nodejs.org)",
		DocsURL:     "https://docs.npmjs.com/downloading-and-installing-node-js-and-npm",
	},
	"cyclonedx-npm": {
		VersionArgs: []string{"--version"},
		InstallHint: "npm install --global @cyclonedx/cyclonedx-npm",
		DocsURL:     "https://github.com/CycloneDX/cyclonedx-node-npm",
	},
}

// ToolStatus es el resultado de verificar una tool para un generador.
type ToolStatus struct {
	Generator   string           `json:"generator"`
	Ecosystem   domain.Ecosystem `json:"ecosystem"`
	Tool        string           `json:"tool"`
	Available   bool             `json:"available"`
	Path        string           `json:"path,omitempty"`
	Version     string           `json:"version,omitempty"`
	InstallHint string           `json:"install_hint,omitempty"`
	DocsURL     string           `json:"docs_url,omitempty"`
}

// IsCommandAvailable checks if a command is available in PATH.
func IsCommandAvailable(command string) bool {
	_, err := exec.LookPath(command)
	return err == nil
}

// GetCommandVersion executes a command with version flag and returns output.
func GetCommandVersion(ctx context.Context, command string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("failed to get version for %s: %w", command, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// Lookup retorna la info conocida de una tool, completando con la metadata
// del generador cuando la tool no está en KnownTools.
func Lookup(tool string, meta ports.GeneratorMetadata) ToolInfo {
	info, ok := KnownTools[tool]
	if !ok {
		info = ToolInfo{VersionArgs: []string{"--version"}}
	}
	if info.InstallHint == "" {
		info.InstallHint = meta.InstallHint
	}
	if info.DocsURL == "" {
		info.DocsURL = meta.DocsURL
	}
	return info
}

// Check verifica cada tool declarada por los generadores, en orden.
// La versión es best-effort: si el comando falla queda vacía.
func Check(ctx context.Context, metas []ports.GeneratorMetadata) []ToolStatus {
	statuses := make([]ToolStatus, 0)

	for _, meta := range metas {
		for _, tool := range meta.Tools {
			info := Lookup(tool, meta)
			status := ToolStatus{
				Generator:   meta.Name,
				Ecosystem:   meta.Ecosystem,
				Tool:        tool,
				InstallHint: info.InstallHint,
				DocsURL:     info.DocsURL,
			}

			path, err := exec.LookPath(tool)
			if err == nil {
				status.Available = true
				status.Path = path

				vctx, cancel := context.WithTimeout(ctx, defaultVersionTimeout)
				if out, verr := GetCommandVersion(vctx, path, info.VersionArgs); verr == nil {
					status.Version = ExtractVersion(out)
				}
				cancel()
			}

			statuses = append(statuses, status)
		}
	}

	return statuses
}

// CheckGenerators verifica las tools que los generadores construidos van a
// correr de verdad (Tools() refleja los overrides de comando), en el orden de
// domain.AllEcosystems. lookup aporta hints y docs del registry.
func CheckGenerators(
	ctx context.Context,
	generators map[domain.Ecosystem]ports.Generator,
	lookup func(name string) (ports.GeneratorMetadata, bool),
) []ToolStatus {
	metas := make([]ports.GeneratorMetadata, 0, len(generators))
	for _, eco := range domain.AllEcosystems() {
		gen, ok := generators[eco]
		if !ok || gen == nil {
			continue
		}
		meta, found := lookup(gen.Name())
		if !found {
			meta = ports.GeneratorMetadata{Name: gen.Name(), Ecosystem: eco}
		}
		meta.Tools = gen.Tools()
		metas = append(metas, meta)
	}
	return Check(ctx, metas)
}

// Missing filtra los statuses de tools no disponibles.
func Missing(statuses []ToolStatus) []ToolStatus {
	missing := make([]ToolStatus, 0)
	for _, s := range statuses {
		if !s.Available {
			missing = append(missing, s)
		}
	}
	return missing
}

// cleanVersion normalizes version strings for comparison.
func cleanVersion(version string) string {
	version = strings.TrimSpace(version)
	version = strings.TrimPrefix(version, "v")
	version = strings.TrimPrefix(version, "V")
	version = strings.TrimSuffix(version, ",")
	return version
}

// ExtractVersion attempts to extract a version number from command output.
// Understands outputs like "Apache Maven 3.9.6 (...)", "10.2.4" and
// "Version: v1.6.0".
func ExtractVersion(output string) string {
	lines := strings.Split(output, "\n")

	// Primero líneas que mencionan "version" o "maven"
	for _, line := range lines {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "version") && !strings.Contains(lower, "maven") {
			continue
		}
		for _, part := range strings.Fields(line) {
			clean := cleanVersion(part)
			if isValidVersion(clean) {
				return clean
			}
		}
	}

	// Después cualquier token con forma de versión
	for _, line := range lines {
		for _, part := range strings.Fields(line) {
			clean := cleanVersion(part)
			if isValidVersion(clean) {
				return clean
			}
		}
	}

	return strings.TrimSpace(lines[0])
}

// isValidVersion checks if a string looks like a version number.
func isValidVersion(v string) bool {
	parts := strings.Split(v, ".")
	if len(parts) < 2 {
		return false
	}

	for _, part := range parts {
		if part == "" {
			return false
		}
		for _, r := range part {
			if r < '0' || r > '9' {
				return false
			}
		}
	}

	return true
}
