// Package java genera SBOMs para proyectos Maven con el plugin cyclonedx-maven-plugin.
package java

import (
	"context"
	"time"

	"sbomatic/internal/core/domain"
	"sbomatic/internal/generators/common"
	"sbomatic/internal/platform/logx"
)

const (
	generatorName = "java"

	// PreferJSON busca target/bom.json antes que target/bom.xml
	PreferJSON = "json"
	// PreferXML invierte el orden
	PreferXML = "xml"
)

// DefaultCommand genera el BOM agregado del reactor Maven en target/.
var DefaultCommand = []string{"mvn", "org.cyclonedx:cyclonedx-maven-plugin:makeAggregateBom", "-q"}

// Generator implementa ports.Generator para Maven.
type Generator struct {
	*common.BaseCLIGenerator
	command   []string
	artifacts []string
}

// Options agrupa la configuración del generador.
type Options struct {
	Command []string      // reemplaza DefaultCommand si no está vacío
	Prefer  string        // PreferJSON (default) o PreferXML
	Timeout time.Duration // por invocación
	Quiet   bool
}

// New crea un Generator con la configuración por defecto.
func New(logger logx.Logger) *Generator {
	return NewWithOptions(logger, Options{})
}

// NewWithOptions crea un Generator con opciones explícitas.
func NewWithOptions(logger logx.Logger, opts Options) *Generator {
	command := common.ResolveCommands([][]string{DefaultCommand}, [][]string{opts.Command})[0]

	artifacts := []string{"target/bom.json", "target/bom.xml"}
	if opts.Prefer == PreferXML {
		artifacts = []string{"target/bom.xml", "target/bom.json"}
	}

	return &Generator{
		BaseCLIGenerator: common.NewBaseCLIGenerator(logger, common.BaseCLIConfig{
			GeneratorName: generatorName,
			Timeout:       opts.Timeout,
			Quiet:         opts.Quiet,
		}),
		command:   command,
		artifacts: artifacts,
	}
}

// Name returns the generator name.
func (g *Generator) Name() string {
	return generatorName
}

// Ecosystem returns domain.EcosystemJava.
func (g *Generator) Ecosystem() domain.Ecosystem {
	return domain.EcosystemJava
}

// Tools returns the external executables this generator runs.
func (g *Generator) Tools() []string {
	return []string{g.command[0]}
}

// Generate corre Maven en projectDir y retorna el primer BOM no vacío.
// Maven puede terminar con error y aun así dejar el BOM escrito.
func (g *Generator) Generate(ctx context.Context, projectDir string) (string, error) {
	if _, err := g.RunTool(ctx, projectDir, g.command); err != nil {
		return "", err
	}

	artifact := common.FirstReadyArtifact(projectDir, g.artifacts...)
	if artifact == "" {
		g.GetLogger().Debug("no bom produced", "dir", projectDir, "candidates", g.artifacts)
	}
	return artifact, nil
}
