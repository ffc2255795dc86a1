// internal/core/ports/generator.go
package ports

import (
	"context"
	"time"

	"sbomatic/internal/core/domain"
)

// Generator es el port para las herramientas SBOM de cada ecosistema.
// Cada implementación sabe invocar su tool externa sobre un directorio de
// proyecto y localizar el artifact resultante.
type Generator interface {
	// Name retorna el nombre único del generador (ej: "java", "nodejs")
	Name() string

	// Ecosystem retorna el ecosistema que atiende
	Ecosystem() domain.Ecosystem

	// Tools retorna los ejecutables externos que invoca, en orden de uso
	Tools() []string

	// Generate ejecuta la tool con projectDir como cwd. Retorna la ruta del
	// artifact o "" si no existe o está vacío. Un exit code distinto de cero
	// NO es un error; sí lo es no poder arrancar la tool.
	Generate(ctx context.Context, projectDir string) (artifactPath string, err error)
}

// GeneratorConfig contiene la configuración específica de un generador.
type GeneratorConfig struct {
	// Enabled indica si el generador está habilitado
	Enabled bool

	// Command reemplaza la línea que genera el SBOM (la última tool de
	// Tools()). Vacío = default.
	Command []string

	// Commands reemplaza las líneas de comando por defecto, en el mismo orden
	// que Tools(). Vacío = defaults. Command, si está, tiene prioridad sobre
	// la última posición.
	Commands [][]string

	// Timeout tiempo máximo por invocación de tool (0 = sin timeout)
	Timeout time.Duration

	// Quiet oculta stdout/stderr de las tools
	Quiet bool

	// Options configuración específica del generador (sección "options" del YAML)
	Options map[string]interface{}
}

// DefaultGeneratorConfig retorna una configuración por defecto.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Enabled: true,
		Timeout: 0,
	}
}

// GeneratorMetadata contiene metadatos sobre un generador.
type GeneratorMetadata struct {
	Name        string
	Description string
	Ecosystem   domain.Ecosystem
	Tools       []string // ejecutables requeridos en PATH
	Artifacts   []string // rutas relativas al proyecto, en orden de preferencia
	InstallHint string   // cómo instalar las tools
	DocsURL     string
}

// SbomCommand retorna el override de la línea que genera el SBOM: Command si
// está, si no la posición sbomIndex de Commands. nil = usar el default.
func (c GeneratorConfig) SbomCommand(sbomIndex int) []string {
	if len(c.Command) > 0 {
		return c.Command
	}
	if sbomIndex >= 0 && sbomIndex < len(c.Commands) && len(c.Commands[sbomIndex]) > 0 {
		return c.Commands[sbomIndex]
	}
	return nil
}
