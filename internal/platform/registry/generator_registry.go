// internal/platform/registry/generator_registry.go
package registry

import (
	"fmt"
	"sort"
	"sync"

	"sbomatic/internal/core/domain"
	"sbomatic/internal/core/ports"
	"sbomatic/internal/platform/logx"
)

// GeneratorRegistry gestiona el registro y construcción de generadores.
// Implementa el patrón Registry + Factory: cada paquete de generador se
// registra en init() y main solo necesita importarlo.
type GeneratorRegistry struct {
	mu        sync.RWMutex
	factories map[string]GeneratorFactory
	metadata  map[string]ports.GeneratorMetadata
	logger    logx.Logger
}

// GeneratorFactory es una función que crea una instancia de Generator.
type GeneratorFactory func(cfg ports.GeneratorConfig, logger logx.Logger) (ports.Generator, error)

// globalRegistry es la instancia global del registry.
var globalRegistry *GeneratorRegistry
var once sync.Once

// Global retorna la instancia global del registry.
func Global() *GeneratorRegistry {
	once.Do(func() {
		globalRegistry = NewGeneratorRegistry(logx.New())
	})
	return globalRegistry
}

// NewGeneratorRegistry crea un nuevo registry de generadores.
func NewGeneratorRegistry(logger logx.Logger) *GeneratorRegistry {
	return &GeneratorRegistry{
		factories: make(map[string]GeneratorFactory),
		metadata:  make(map[string]ports.GeneratorMetadata),
		logger:    logger.With("component", "generator-registry"),
	}
}

// Register registra una factory con su metadata.
// Típicamente llamado desde init() de cada paquete de generador.
func (r *GeneratorRegistry) Register(name string, factory GeneratorFactory, meta ports.GeneratorMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		return fmt.Errorf("generator name cannot be empty")
	}

	if factory == nil {
		return fmt.Errorf("factory cannot be nil for generator %s", name)
	}

	if !meta.Ecosystem.IsValid() {
		return fmt.Errorf("generator %s declares unknown ecosystem %q", name, meta.Ecosystem)
	}

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("generator %s is already registered", name)
	}

	r.factories[name] = factory
	r.metadata[name] = meta
	r.logger.Debug("generator registered", "name", name, "ecosystem", meta.Ecosystem)

	return nil
}

// Build construye los generadores habilitados y los indexa por ecosistema.
//
// Un generador registrado sin entrada en configs usa DefaultGeneratorConfig.
// Una entrada en configs sin generador registrado se ignora con un warning.
// Retorna error solo si una factory falla.
func (r *GeneratorRegistry) Build(configs map[string]ports.GeneratorConfig, logger logx.Logger) (map[domain.Ecosystem]ports.Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	for name := range configs {
		if _, exists := r.factories[name]; !exists {
			r.logger.Warn("generator not registered, skipping", "generator", name)
		}
	}

	generators := make(map[domain.Ecosystem]ports.Generator, len(r.factories))
	buildErrs := make([]error, 0)

	for _, name := range r.sortedNames() {
		cfg, ok := configs[name]
		if !ok {
			cfg = ports.DefaultGeneratorConfig()
		}
		if !cfg.Enabled {
			logger.Debug("generator disabled", "generator", name)
			continue
		}

		gen, err := r.factories[name](cfg, logger)
		if err != nil {
			buildErrs = append(buildErrs, fmt.Errorf("failed to build generator %s: %w", name, err))
			continue
		}

		eco := r.metadata[name].Ecosystem
		if prev, dup := generators[eco]; dup {
			r.logger.Warn("ecosystem already served, keeping first generator",
				"ecosystem", eco,
				"kept", prev.Name(),
				"skipped", name,
			)
			continue
		}

		generators[eco] = gen
		r.logger.Debug("generator built", "name", name, "ecosystem", eco, "tools", gen.Tools())
	}

	if len(buildErrs) > 0 {
		return generators, buildErrs[0]
	}

	logger.Debug("generators built", "count", len(generators), "registered", len(r.factories))
	return generators, nil
}

func (r *GeneratorRegistry) sortedNames() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List retorna los nombres de todos los generadores registrados.
func (r *GeneratorRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames()
}

// GetMetadata retorna el metadata de un generador.
func (r *GeneratorRegistry) GetMetadata(name string) (ports.GeneratorMetadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, exists := r.metadata[name]
	return meta, exists
}

