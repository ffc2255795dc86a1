// internal/core/usecases/scanner.go
package usecases

import (
	"context"
	"os"
	"path/filepath"

	"sbomatic/internal/core/domain"
	"sbomatic/internal/platform/errors"
	"sbomatic/internal/platform/logx"
)

// DefaultExcludedDirs son los directorios de caché de dependencias que nunca se recorren.
var DefaultExcludedDirs = []string{"node_modules"}

// ProjectScanner recorre un árbol y devuelve los proyectos detectados.
type ProjectScanner interface {
	Scan(ctx context.Context, root string) ([]domain.ProjectRecord, error)
}

// Scanner recorre el árbol en profundidad (orden léxico) aplicando Detect
// en cada directorio visitado.
//
// Política de errores: un directorio ilegible por debajo de root se registra
// como warning y se salta junto con su subárbol. Un root ilegible o que no es
// un directorio es un error.
type Scanner struct {
	logger   logx.Logger
	excluded map[string]struct{}
}

// NewScanner crea un Scanner. Los nombres en excluded se suman a DefaultExcludedDirs.
func NewScanner(logger logx.Logger, excluded ...string) *Scanner {
	if logger == nil {
		logger = logx.Discard()
	}

	set := make(map[string]struct{}, len(DefaultExcludedDirs)+len(excluded))
	for _, name := range DefaultExcludedDirs {
		set[name] = struct{}{}
	}
	for _, name := range excluded {
		if name != "" {
			set[name] = struct{}{}
		}
	}

	return &Scanner{
		logger:   logger.With("component", "scanner"),
		excluded: set,
	}
}

// IsExcluded indica si un subdirectorio con ese nombre se poda.
func (s *Scanner) IsExcluded(name string) bool {
	_, ok := s.excluded[name]
	return ok
}

// Scan recorre root y devuelve una lista plana de ProjectRecord en orden de recorrido.
func (s *Scanner) Scan(ctx context.Context, root string) ([]domain.ProjectRecord, error) {
	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(errors.Join(errors.ErrInvalidInput, errors.ErrNotFound, err), "cannot scan %s", root)
	}
	if err != nil {
		return nil, errors.Wrapf(errors.Join(errors.ErrInvalidInput, err), "cannot scan %s", root)
	}
	if !info.IsDir() {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "%s is not a directory", root)
	}

	// os.ReadDir sigue el symlink del root (igual que os.Stat arriba); los
	// symlinks por debajo de root no se siguen porque su DirEntry no es un directorio.
	w := &treeWalk{scanner: s, projects: make([]domain.ProjectRecord, 0)}
	if err := w.visit(ctx, root, true); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return w.projects, ctxErr
		}
		return nil, errors.Wrapf(errors.Join(errors.ErrInvalidInput, err), "cannot scan %s", root)
	}
	projects, visited := w.projects, w.visited

	s.logger.Info("scan finished",
		"root", root,
		"directories", visited,
		"projects", len(projects),
	)

	return projects, nil
}

// treeWalk acumula el estado de un Scan. Cada directorio se lista una sola vez:
// el mismo listado sirve para detectar manifiestos y para descender.
type treeWalk struct {
	scanner  *Scanner
	projects []domain.ProjectRecord
	visited  int
}

// visit procesa dir en preorden y desciende a sus subdirectorios en orden léxico.
// Solo devuelve error para el root o por cancelación.
func (w *treeWalk) visit(ctx context.Context, dir string, isRoot bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if isRoot {
			return err
		}
		w.scanner.logger.Warn("skipping unreadable directory", "path", dir, "error", err.Error())
		return nil
	}

	w.visited++
	ecosystems, manifests := DetectEntries(entries)
	for i := range ecosystems {
		w.projects = append(w.projects, domain.NewProjectRecord(dir, manifests[i], ecosystems[i]))
		w.scanner.logger.Debug("project detected",
			"dir", dir,
			"manifest", manifests[i],
			"ecosystem", ecosystems[i],
		)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if w.scanner.IsExcluded(entry.Name()) {
			w.scanner.logger.Debug("pruning excluded directory", "path", path)
			continue
		}
		if err := w.visit(ctx, path, false); err != nil {
			return err
		}
	}

	return nil
}
