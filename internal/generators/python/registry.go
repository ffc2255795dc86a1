package python

import (
	"sbomatic/internal/core/domain"
	"sbomatic/internal/core/ports"
	"sbomatic/internal/platform/logx"
	"sbomatic/internal/platform/registry"
)

// Auto-registration on package import
func init() {
	if err := registry.Global().Register(
		generatorName,
		factory,
		ports.GeneratorMetadata{
			Name:        generatorName,
			Description: "pip projects via cyclonedx-py (requirements mode)",
			Ecosystem:   domain.EcosystemPython,
			Tools:       []string{"cyclonedx-py"},
			Artifacts:   []string{ArtifactName},
			InstallHint: "pip install cyclonedx-bom",
			DocsURL:     "https://github.com/CycloneDX/cyclonedx-python",
		},
	); err != nil {
		logx.New().Warn("failed to register python generator", "error", err.Error())
	}
}

// factory creates a Generator from GeneratorConfig.
// Options: requirements (string).
func factory(cfg ports.GeneratorConfig, logger logx.Logger) (ports.Generator, error) {
	return NewWithOptions(logger, Options{
		Command:      cfg.SbomCommand(0),
		Requirements: registry.GetStringConfig(cfg.Options, "requirements", DefaultRequirements),
		Timeout:      cfg.Timeout,
		Quiet:        cfg.Quiet,
	}), nil
}
