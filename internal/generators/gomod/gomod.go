// Package gomod genera SBOMs para módulos Go con cyclonedx-gomod.
package gomod

import (
	"context"
	"time"

	"sbomatic/internal/core/domain"
	"sbomatic/internal/generators/common"
	"sbomatic/internal/platform/logx"
)

const (
	generatorName = "go"

	// ArtifactName es el archivo que escribe cyclonedx-gomod en el módulo
	ArtifactName = "bom-go.json"
)

// Generator implementa ports.Generator para módulos Go.
type Generator struct {
	*common.BaseCLIGenerator
	command []string
}

// Options agrupa la configuración del generador.
type Options struct {
	Command  []string // reemplaza el comando por defecto si no está vacío
	Licenses bool     // agrega -licenses (resuelve licencias de cada módulo)
	Timeout  time.Duration
	Quiet    bool
}

// DefaultCommand retorna la línea de comando de cyclonedx-gomod en modo app.
func DefaultCommand(licenses bool) []string {
	cmd := []string{"cyclonedx-gomod", "app"}
	if licenses {
		cmd = append(cmd, "-licenses")
	}
	return append(cmd, "-json=true", "-output", ArtifactName)
}

// New crea un Generator con la configuración por defecto.
func New(logger logx.Logger) *Generator {
	return NewWithOptions(logger, Options{})
}

// NewWithOptions crea un Generator con opciones explícitas.
func NewWithOptions(logger logx.Logger, opts Options) *Generator {
	return &Generator{
		BaseCLIGenerator: common.NewBaseCLIGenerator(logger, common.BaseCLIConfig{
			GeneratorName: generatorName,
			Timeout:       opts.Timeout,
			Quiet:         opts.Quiet,
		}),
		command: common.ResolveCommands(
			[][]string{DefaultCommand(opts.Licenses)},
			[][]string{opts.Command},
		)[0],
	}
}

// Name returns the generator name.
func (g *Generator) Name() string {
	return generatorName
}

// Ecosystem returns domain.EcosystemGo.
func (g *Generator) Ecosystem() domain.Ecosystem {
	return domain.EcosystemGo
}

// Tools returns the external executables this generator runs.
func (g *Generator) Tools() []string {
	return []string{g.command[0]}
}

// Generate corre cyclonedx-gomod en projectDir y retorna bom-go.json si quedó con contenido.
func (g *Generator) Generate(ctx context.Context, projectDir string) (string, error) {
	if _, err := g.RunTool(ctx, projectDir, g.command); err != nil {
		return "", err
	}
	return common.FirstReadyArtifact(projectDir, ArtifactName), nil
}
