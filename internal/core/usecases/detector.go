// internal/core/usecases/detector.go
package usecases

import (
	"io/fs"
	"os"

	"sbomatic/internal/core/domain"
)

// Detect clasifica un directorio según los manifiestos presentes en su listado
// inmediato (no recursivo). Los resultados vienen alineados por índice y en el
// orden de la tabla de firmas. Un directorio ilegible no produce resultados:
// decidir qué hacer con él es problema del caller.
func Detect(dir string) (ecosystems []domain.Ecosystem, manifests []string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil
	}
	return DetectEntries(entries)
}

// DetectEntries aplica la tabla de firmas a un listado ya leído.
// Lo usa el scanner para no listar cada directorio dos veces.
func DetectEntries(entries []fs.DirEntry) (ecosystems []domain.Ecosystem, manifests []string) {
	if len(entries) == 0 {
		return nil, nil
	}

	names := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		names[e.Name()] = struct{}{}
	}

	for _, sig := range domain.Signatures() {
		if _, ok := names[sig.Manifest]; ok {
			ecosystems = append(ecosystems, sig.Ecosystem)
			manifests = append(manifests, sig.Manifest)
		}
	}

	return ecosystems, manifests
}
