// Package nodejs genera SBOMs para proyectos npm con cyclonedx-npm.
package nodejs

import (
	"context"
	"time"

	"sbomatic/internal/core/domain"
	"sbomatic/internal/generators/common"
	"sbomatic/internal/platform/logx"
)

const (
	generatorName = "nodejs"

	// ArtifactName es el archivo que escribe cyclonedx-npm en el proyecto
	ArtifactName = "bom-nodejs.json"
)

// DefaultInstallCommand materializa node_modules antes de generar el BOM.
var DefaultInstallCommand = []string{"npm", "install", "--silent"}

// Generator implementa ports.Generator para npm. Corre dos tools en orden:
// npm install y cyclonedx-npm. Si npm install falla se sigue igual.
type Generator struct {
	*common.BaseCLIGenerator
	install []string // nil = sin paso de install
	sbom    []string
}

// Options agrupa la configuración del generador.
type Options struct {
	Commands    [][]string // [install, sbom]; entradas vacías usan el default
	SkipInstall bool       // no correr npm install
	ExtraArgs   []string   // flags extra para cyclonedx-npm (ej: --omit dev)
	Timeout     time.Duration
	Quiet       bool
}

// DefaultSbomCommand retorna la línea de comando de cyclonedx-npm.
func DefaultSbomCommand(extra ...string) []string {
	cmd := []string{"cyclonedx-npm"}
	cmd = append(cmd, extra...)
	return append(cmd, "--output-file", ArtifactName)
}

// New crea un Generator con la configuración por defecto.
func New(logger logx.Logger) *Generator {
	return NewWithOptions(logger, Options{})
}

// NewWithOptions crea un Generator con opciones explícitas.
func NewWithOptions(logger logx.Logger, opts Options) *Generator {
	commands := common.ResolveCommands(
		[][]string{DefaultInstallCommand, DefaultSbomCommand(opts.ExtraArgs...)},
		opts.Commands,
	)

	g := &Generator{
		BaseCLIGenerator: common.NewBaseCLIGenerator(logger, common.BaseCLIConfig{
			GeneratorName: generatorName,
			Timeout:       opts.Timeout,
			Quiet:         opts.Quiet,
		}),
		install: commands[0],
		sbom:    commands[1],
	}
	if opts.SkipInstall {
		g.install = nil
	}
	return g
}

// Name returns the generator name.
func (g *Generator) Name() string {
	return generatorName
}

// Ecosystem returns domain.EcosystemNodeJS.
func (g *Generator) Ecosystem() domain.Ecosystem {
	return domain.EcosystemNodeJS
}

// Tools returns the external executables this generator runs, in order.
func (g *Generator) Tools() []string {
	if g.install == nil {
		return []string{g.sbom[0]}
	}
	return []string{g.install[0], g.sbom[0]}
}

// Generate corre npm install y cyclonedx-npm en projectDir.
// Que no arranque cualquiera de las dos es un error; un exit code != 0 no.
func (g *Generator) Generate(ctx context.Context, projectDir string) (string, error) {
	if g.install != nil {
		if _, err := g.RunTool(ctx, projectDir, g.install); err != nil {
			return "", err
		}
	}

	if _, err := g.RunTool(ctx, projectDir, g.sbom); err != nil {
		return "", err
	}

	return common.FirstReadyArtifact(projectDir, ArtifactName), nil
}
