// Package python genera SBOMs para proyectos pip con cyclonedx-py.
package python

import (
	"context"
	"time"

	"sbomatic/internal/core/domain"
	"sbomatic/internal/generators/common"
	"sbomatic/internal/platform/logx"
)

const (
	generatorName = "python"

	// ArtifactName es el archivo que escribe cyclonedx-py en el proyecto
	ArtifactName = "bom-python.json"

	// DefaultRequirements es el archivo que se pasa a cyclonedx-py.
	// Se usa aunque el proyecto se haya detectado por setup.py.
	DefaultRequirements = "requirements.txt"
)

// Generator implementa ports.Generator para Python.
type Generator struct {
	*common.BaseCLIGenerator
	command []string
}

// Options agrupa la configuración del generador.
type Options struct {
	Command      []string // reemplaza el comando por defecto si no está vacío
	Requirements string   // archivo de requirements (default DefaultRequirements)
	Timeout      time.Duration
	Quiet        bool
}

// DefaultCommand retorna la línea de comando para un archivo de requirements.
func DefaultCommand(requirements string) []string {
	if requirements == "" {
		requirements = DefaultRequirements
	}
	return []string{"cyclonedx-py", "requirements", requirements, "-o", ArtifactName}
}

// New crea un Generator con la configuración por defecto.
func New(logger logx.Logger) *Generator {
	return NewWithOptions(logger, Options{})
}

// NewWithOptions crea un Generator con opciones explícitas.
func NewWithOptions(logger logx.Logger, opts Options) *Generator {
	defaults := [][]string{DefaultCommand(opts.Requirements)}

	return &Generator{
		BaseCLIGenerator: common.NewBaseCLIGenerator(logger, common.BaseCLIConfig{
			GeneratorName: generatorName,
			Timeout:       opts.Timeout,
			Quiet:         opts.Quiet,
		}),
		command: common.ResolveCommands(defaults, [][]string{opts.Command})[0],
	}
}

// Name returns the generator name.
func (g *Generator) Name() string {
	return generatorName
}

// Ecosystem returns domain.EcosystemPython.
func (g *Generator) Ecosystem() domain.Ecosystem {
	return domain.EcosystemPython
}

// Tools returns the external executables this generator runs.
func (g *Generator) Tools() []string {
	return []string{g.command[0]}
}

// Generate corre cyclonedx-py en projectDir y retorna bom-python.json si quedó con contenido.
func (g *Generator) Generate(ctx context.Context, projectDir string) (string, error) {
	if _, err := g.RunTool(ctx, projectDir, g.command); err != nil {
		return "", err
	}
	return common.FirstReadyArtifact(projectDir, ArtifactName), nil
}
