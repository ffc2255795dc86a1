// internal/testutil/tools.go
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// RequireUnixShell salta el test donde no hay /bin/sh.
func RequireUnixShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are /bin/sh scripts")
	}
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}
}

// FakeToolDir crea un directorio vacío y lo deja como único PATH durante el test.
// Así un binario real instalado en la máquina nunca se ejecuta por accidente.
func FakeToolDir(t *testing.T) string {
	t.Helper()
	RequireUnixShell(t)
	dir := t.TempDir()
	t.Setenv("PATH", dir)
	return dir
}

// WriteFakeTool escribe un script /bin/sh ejecutable llamado name en dir.
// El script corre con el directorio del proyecto como cwd, igual que la tool real.
func WriteFakeTool(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake tool %s: %v", name, err)
	}
	return path
}
