package java

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
			Description: "Maven projects via cyclonedx-maven-plugin (makeAggregateBom)",
			Ecosystem:   domain.EcosystemJava,
			Tools:       []string{"mvn"},
			Artifacts:   []string{"target/bom.json", "target/bom.xml"},
			InstallHint: "install Apache Maven; the plugin is resolved from Maven Central on first run",
			DocsURL:     "https://github.com/CycloneDX/cyclonedx-maven-plugin",
		},
	); err != nil {
		logx.New().Warn("failed to register java generator", "error", err.Error())
	}
}

// factory creates a Generator from GeneratorConfig.
// Options: prefer ("json" | "xml").
func factory(cfg ports.GeneratorConfig, logger logx.Logger) (ports.Generator, error) {
	prefer := registry.GetStringConfig(cfg.Options, "prefer", PreferJSON)
	if err := registry.ValidateEnum("java.options.prefer", prefer, []string{PreferJSON, PreferXML}); err != nil {
		return nil, err
	}

	return NewWithOptions(logger, Options{
		Command: cfg.SbomCommand(0),
		Prefer:  prefer,
		Timeout: cfg.Timeout,
		Quiet:   cfg.Quiet,
	}), nil
}
