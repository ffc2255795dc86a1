package common

import (
	"os"
	"path/filepath"
)

// ArtifactReady reporta si path existe, es un archivo regular y no está vacío.
func ArtifactReady(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Size() > 0
}

// FirstReadyArtifact retorna la primera ruta (relativa a dir) que pasa
// ArtifactReady, o "" si ninguna.
func FirstReadyArtifact(dir string, candidates ...string) string {
	for _, rel := range candidates {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if ArtifactReady(path) {
			return path
		}
	}
	return ""
}

// ResolveCommands combina los comandos por defecto con los overrides de
// configuración. Un override vacío (o ausente) deja el default en esa posición.
func ResolveCommands(defaults, overrides [][]string) [][]string {
	out := make([][]string, len(defaults))
	for i, def := range defaults {
		cmd := def
		if i < len(overrides) && len(overrides[i]) > 0 {
			cmd = overrides[i]
		}
		out[i] = append([]string(nil), cmd...)
	}
	return out
}
