package gomod

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
			Description: "Go modules via cyclonedx-gomod (app mode)",
			Ecosystem:   domain.EcosystemGo,
			Tools:       []string{"cyclonedx-gomod"},
			Artifacts:   []string{ArtifactName},
			InstallHint: "go install github.com/CycloneDX/cyclonedx-gomod/cmd/cyclonedx-gomod@latest",
			DocsURL:     "https://github.com/CycloneDX/cyclonedx-gomod",
		},
	); err != nil {
		logx.New().Warn("failed to register go generator", "error", err.Error())
	}
}

// factory creates a Generator from GeneratorConfig.
// Options: licenses (bool).
func factory(cfg ports.GeneratorConfig, logger logx.Logger) (ports.Generator, error) {
	return NewWithOptions(logger, Options{
		Command:  cfg.SbomCommand(0),
		Licenses: registry.GetBoolConfig(cfg.Options, "licenses", false),
		Timeout:  cfg.Timeout,
		Quiet:    cfg.Quiet,
	}), nil
}
