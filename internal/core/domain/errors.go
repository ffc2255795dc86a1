// internal/core/domain/errors.go
package domain

import "errors"

// Errores de dominio comunes.
var (
	// Ecosystem errors
	ErrUnknownEcosystem = errors.New("unknown ecosystem")

	// Project errors
	ErrEmptyProjectDir   = errors.New("project directory cannot be empty")
	ErrEmptyManifestFile = errors.New("manifest file cannot be empty")
)
