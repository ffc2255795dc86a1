// internal/core/usecases/orchestrator.go
package usecases

import (
	"context"
	"fmt"
	"time"

	"sbomatic/internal/core/domain"
	"sbomatic/internal/core/ports"
	"sbomatic/internal/platform/errors"
	"sbomatic/internal/platform/logx"
)

// Orchestrator coordina scan y dispatch: recorre el árbol, agrupa los
// proyectos para mostrarlos y despacha cada ProjectRecord a su generador,
// de a uno por vez.
//
// Un proyecto que falla (error o panic del generador) nunca corta la
// ejecución: queda registrado en su Outcome y se sigue con el siguiente.
type Orchestrator struct {
	scanner    ProjectScanner
	generators map[domain.Ecosystem]ports.Generator
	reporter   ports.Reporter
	logger     logx.Logger
}

// OrchestratorOptions configura el orchestrator.
type OrchestratorOptions struct {
	Scanner    ProjectScanner
	Generators map[domain.Ecosystem]ports.Generator
	Reporter   ports.Reporter
	Logger     logx.Logger
}

// NewOrchestrator crea una nueva instancia del orchestrator.
func NewOrchestrator(opts OrchestratorOptions) *Orchestrator {
	if opts.Logger == nil {
		opts.Logger = logx.Discard()
	}
	if opts.Scanner == nil {
		opts.Scanner = NewScanner(opts.Logger)
	}
	if opts.Reporter == nil {
		opts.Reporter = noopReporter{}
	}
	if opts.Generators == nil {
		opts.Generators = make(map[domain.Ecosystem]ports.Generator)
	}

	return &Orchestrator{
		scanner:    opts.Scanner,
		generators: opts.Generators,
		reporter:   opts.Reporter,
		logger:     opts.Logger.With("component", "orchestrator"),
	}
}

// Run escanea root y genera un SBOM por cada proyecto detectado.
//
// Retorna errors.ErrNoProjects (envuelto) si el árbol no tiene manifiestos;
// en ese caso no se invoca ningún generador. El report se retorna siempre,
// incluso junto a un error.
func (o *Orchestrator) Run(ctx context.Context, root string) (*domain.RunReport, error) {
	report := domain.NewRunReport(root)

	o.reporter.ScanStarted(root)
	o.logger.Info("starting scan", "root", root, "generators", len(o.generators))

	projects, err := o.scanner.Scan(ctx, root)
	if err != nil {
		report.Finish()
		return report, err
	}
	report.Projects = projects

	if len(projects) == 0 {
		report.Finish()
		o.reporter.NoProjects(root)
		return report, errors.Wrapf(errors.ErrNoProjects, "scan %s", root)
	}

	o.reporter.ProjectsFound(domain.GroupByDir(projects))
	o.reporter.GenerationStarted(len(projects))

	for i, project := range projects {
		if ctxErr := ctx.Err(); ctxErr != nil {
			o.logger.Warn("generation cancelled", "remaining", len(projects)-i)
			report.Finish()
			o.reporter.Summary(report)
			return report, ctxErr
		}

		o.reporter.ProjectStarted(i+1, len(projects), project)

		start := time.Now()
		artifact, genErr := o.runIsolated(ctx, project)
		outcome := domain.NewOutcome(project, artifact, genErr, time.Since(start))

		o.logOutcome(outcome)
		o.reporter.ProjectFinished(outcome)
		report.AddOutcome(outcome)
	}

	report.Finish()
	stats := report.Stats()
	o.logger.Info("generation finished",
		"projects", stats.Projects,
		"generated", stats.Generated,
		"failed", stats.Failed,
		"errors", stats.Errors,
		"duration", report.Duration().Round(time.Millisecond),
	)

	o.reporter.Summary(report)
	return report, nil
}

// runIsolated despacha un proyecto a su generador. Convierte un panic en
// error para que un generador roto no tumbe la ejecución completa.
func (o *Orchestrator) runIsolated(ctx context.Context, project domain.ProjectRecord) (artifact string, err error) {
	if err := project.Validate(); err != nil {
		return "", errors.Wrapf(errors.Join(errors.ErrInvalidInput, err), "project record %q", project.Dir)
	}

	gen, ok := o.generators[project.Ecosystem]
	if !ok || gen == nil {
		return "", errors.Wrapf(errors.ErrGeneratorMissing, "%s", project.Ecosystem)
	}

	defer func() {
		if r := recover(); r != nil {
			artifact = ""
			err = fmt.Errorf("generator %s panicked: %v", gen.Name(), r)
		}
	}()

	return gen.Generate(ctx, project.Dir)
}

func (o *Orchestrator) logOutcome(outcome domain.Outcome) {
	kv := []any{
		"dir", outcome.Project.Dir,
		"ecosystem", outcome.Project.Ecosystem,
		"duration", outcome.Duration.Round(time.Millisecond),
	}

	switch outcome.Status {
	case domain.OutcomeGenerated:
		o.logger.Info("sbom generated", append(kv, "artifact", outcome.ArtifactPath)...)
	case domain.OutcomeFailed:
		o.logger.Warn("sbom generation failed", append(kv, "reason", errors.ErrArtifactMissing)...)
	case domain.OutcomeError:
		o.logger.Err(outcome.Err, kv...)
	}
}

// noopReporter descarta todos los eventos.
type noopReporter struct{}

func (noopReporter) ScanStarted(string) {}
func (noopReporter) NoProjects(string) {}
func (noopReporter) ProjectsFound([]domain.ProjectGroup) {}
func (noopReporter) GenerationStarted(int) {}
func (noopReporter) ProjectStarted(int, int, domain.ProjectRecord) {}
func (noopReporter) ProjectFinished(domain.Outcome) {}
func (noopReporter) Summary(*domain.RunReport) {}
