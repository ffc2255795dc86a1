// internal/core/domain/project.go
package domain

// ProjectRecord representa un proyecto detectado durante el recorrido del árbol.
// Se crea en el scanner y no se modifica después.
type ProjectRecord struct {
	// ManifestFile nombre del archivo que disparó la detección (ej: "pom.xml")
	ManifestFile string `json:"manifest_file"`

	// Dir directorio visitado donde vive el manifiesto
	Dir string `json:"dir"`

	// Ecosystem ecosistema asociado al manifiesto
	Ecosystem Ecosystem `json:"ecosystem"`
}

// NewProjectRecord crea un ProjectRecord.
func NewProjectRecord(dir, manifest string, eco Ecosystem) ProjectRecord {
	return ProjectRecord{
		ManifestFile: manifest,
		Dir:          dir,
		Ecosystem:    eco,
	}
}

// Validate verifica que el registro esté completo.
func (p ProjectRecord) Validate() error {
	if p.Dir == "" {
		return ErrEmptyProjectDir
	}
	if p.ManifestFile == "" {
		return ErrEmptyManifestFile
	}
	if !p.Ecosystem.IsValid() {
		return ErrUnknownEcosystem
	}
	return nil
}

// ManifestMatch es una entrada (archivo, ecosistema) dentro de un grupo.
type ManifestMatch struct {
	ManifestFile string
	Ecosystem    Ecosystem
}

// ProjectGroup agrupa los manifiestos detectados en un mismo directorio.
type ProjectGroup struct {
	Dir     string
	Matches []ManifestMatch
}

// GroupByDir agrupa registros por directorio preservando el orden de primera aparición.
func GroupByDir(records []ProjectRecord) []ProjectGroup {
	groups := make([]ProjectGroup, 0)
	index := make(map[string]int)

	for _, r := range records {
		i, ok := index[r.Dir]
		if !ok {
			i = len(groups)
			index[r.Dir] = i
			groups = append(groups, ProjectGroup{Dir: r.Dir})
		}
		groups[i].Matches = append(groups[i].Matches, ManifestMatch{
			ManifestFile: r.ManifestFile,
			Ecosystem:    r.Ecosystem,
		})
	}

	return groups
}
