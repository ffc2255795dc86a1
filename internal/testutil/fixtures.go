// internal/testutil/fixtures.go
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// MakeTree crea archivos bajo root. Las keys son rutas relativas con "/",
// los valores el contenido. Los directorios intermedios se crean solos.
func MakeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

// MakeDirs crea directorios vacíos bajo root.
func MakeDirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, rel := range dirs {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(rel)), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", rel, err)
		}
	}
}

// FileExists reporta si path existe (archivo o directorio).
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FixtureManifests contenido mínimo por manifiesto.
var FixtureManifests = map[string]string{
	"pom.xml":          "<project><modelVersion>4.0.0</modelVersion></project>\n",
	"package.json":     "{\"name\": \"fixture\", \"version\": \"1.0.0\"}\n",
	"go.mod":           "module example.com/fixture\n\ngo 1.22\n",
	"requirements.txt": "requests==2.31.0\n",
	"setup.py":         "from setuptools import setup\nsetup(name='fixture')\n",
}
