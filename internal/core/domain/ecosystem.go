// internal/core/domain/ecosystem.go
package domain

// Ecosystem identifica el contexto lenguaje/gestor de paquetes de un proyecto.
type Ecosystem string

const (
	// EcosystemJava proyectos Maven (pom.xml)
	EcosystemJava Ecosystem = "java"

	// EcosystemPython proyectos pip/setuptools (requirements.txt, setup.py)
	EcosystemPython Ecosystem = "python"

	// EcosystemGo módulos Go (go.mod)
	EcosystemGo Ecosystem = "go"

	// EcosystemNodeJS proyectos npm (package.json)
	EcosystemNodeJS Ecosystem = "nodejs"
)

// IsValid verifica si el ecosistema es uno de los soportados.
func (e Ecosystem) IsValid() bool {
	switch e {
	case EcosystemJava, EcosystemPython, EcosystemGo, EcosystemNodeJS:
		return true
	default:
		return false
	}
}

// String retorna la representación string del ecosistema.
func (e Ecosystem) String() string {
	return string(e)
}

// DisplayName retorna el nombre legible usado en mensajes de consola.
func (e Ecosystem) DisplayName() string {
	switch e {
	case EcosystemJava:
		return "Java"
	case EcosystemPython:
		return "Python"
	case EcosystemGo:
		return "Go"
	case EcosystemNodeJS:
		return "Node.js"
	default:
		return string(e)
	}
}

// AllEcosystems retorna los ecosistemas soportados en orden estable.
func AllEcosystems() []Ecosystem {
	return []Ecosystem{EcosystemJava, EcosystemPython, EcosystemGo, EcosystemNodeJS}
}

// ParseEcosystem convierte un string (case-sensitive, sin espacios) en Ecosystem.
func ParseEcosystem(s string) (Ecosystem, error) {
	e := Ecosystem(s)
	if !e.IsValid() {
		return "", ErrUnknownEcosystem
	}
	return e, nil
}

// Signature asocia un archivo de manifiesto con su ecosistema.
type Signature struct {
	Manifest  string
	Ecosystem Ecosystem
}

// signatures es la tabla fija de detección. El orden importa: define el
// orden de inserción de los resultados del detector.
var signatures = [...]Signature{
	{Manifest: "pom.xml", Ecosystem: EcosystemJava},
	{Manifest: "package.json", Ecosystem: EcosystemNodeJS},
	{Manifest: "go.mod", Ecosystem: EcosystemGo},
	{Manifest: "requirements.txt", Ecosystem: EcosystemPython},
	{Manifest: "setup.py", Ecosystem: EcosystemPython},
}

// Signatures retorna una copia de la tabla de firmas en orden de chequeo.
func Signatures() []Signature {
	out := make([]Signature, len(signatures))
	copy(out, signatures[:])
	return out
}
