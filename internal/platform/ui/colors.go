// internal/platform/ui/colors.go
package ui

import "github.com/pterm/pterm"

// Paleta de sbomatic: verde CycloneDX para lo generado, rojo para errores,
// ámbar para proyectos sin artifact.

// Colores primarios
var (
	// CycloneGreen - SBOM generado, tools disponibles
	CycloneGreen = pterm.NewRGB(80, 200, 120)

	// AlertRed - errores de generador, tools faltantes
	AlertRed = pterm.NewRGB(215, 38, 56)

	// AmberWarn - proyecto sin artifact
	AmberWarn = pterm.NewRGB(255, 182, 39)

	// SlateGray - texto secundario (rutas, duraciones)
	SlateGray = pterm.NewRGB(120, 120, 120)

	// ManifestBlue - nombres de manifiesto y ecosistema
	ManifestBlue = pterm.NewRGB(64, 156, 255)
)

// Estilos preconfigurados para diferentes contextos
var (
	StyleSuccess   = CycloneGreen.ToRGBStyle()
	StyleError     = AlertRed.ToRGBStyle()
	StyleWarning   = AmberWarn.ToRGBStyle()
	StyleSecondary = SlateGray.ToRGBStyle()
	StyleAccent    = ManifestBlue.ToRGBStyle()
)
