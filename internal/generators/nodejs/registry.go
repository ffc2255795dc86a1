package nodejs

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
			Description: "npm projects via npm install + cyclonedx-npm",
			Ecosystem:   domain.EcosystemNodeJS,
			Tools:       []string{"npm", "cyclonedx-npm"},
			Artifacts:   []string{ArtifactName},
			InstallHint: "npm install --global @cyclonedx/cyclonedx-npm",
			DocsURL:     "https://github.com/CycloneDX/cyclonedx-node-npm",
		},
	); err != nil {
		logx.New().Warn("failed to register nodejs generator", "error", err.Error())
	}
}

// factory creates a Generator from GeneratorConfig.
// Options: install (bool, default true), extra_args ([]string).
// A single command override replaces the cyclonedx-npm step, never npm install.
func factory(cfg ports.GeneratorConfig, logger logx.Logger) (ports.Generator, error) {
	var install []string
	if len(cfg.Commands) > 0 {
		install = cfg.Commands[0]
	}

	return NewWithOptions(logger, Options{
		Commands:    [][]string{install, cfg.SbomCommand(1)},
		SkipInstall: !registry.GetBoolConfig(cfg.Options, "install", true),
		ExtraArgs:   registry.GetSliceConfig(cfg.Options, "extra_args", nil),
		Timeout:     cfg.Timeout,
		Quiet:       cfg.Quiet,
	}), nil
}
