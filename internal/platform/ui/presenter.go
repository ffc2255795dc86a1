// internal/platform/ui/presenter.go
package ui

import (
	"fmt"
	"io"
	"strings"

	"sbomatic/internal/core/ports"
	"sbomatic/internal/platform/toolcheck"
)

// UIMode define el modo de visualización
type UIMode string

const (
	UIModeAuto   UIMode = "auto"   // pretty en terminal, plain si no (default)
	UIModePretty UIMode = "pretty" // pterm: headers, secciones, markers
	UIModePlain  UIMode = "plain"  // texto plano, mismas líneas que el script clásico
	UIModeRaw    UIMode = "raw"    // una línea logfmt/JSON por evento, para CI
	UIModeNone   UIMode = "none"   // sin salida
)

// ParseUIMode valida un modo de UI.
func ParseUIMode(s string) (UIMode, error) {
	mode := UIMode(strings.ToLower(strings.TrimSpace(s)))
	switch mode {
	case "":
		return UIModeAuto, nil
	case UIModeAuto, UIModePretty, UIModePlain, UIModeRaw, UIModeNone:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid ui mode %q (use auto, pretty, plain, raw or none)", s)
	}
}

// ResolveMode decide el modo efectivo: auto pasa a pretty si stdout es una terminal.
func ResolveMode(mode UIMode, isTerminal bool) UIMode {
	if mode != UIModeAuto && mode != "" {
		return mode
	}
	if isTerminal {
		return UIModePretty
	}
	return UIModePlain
}

// Presenter extiende ports.Reporter con la salida que no pertenece al flujo
// scan/dispatch (tool check, mensajes sueltos).
type Presenter interface {
	ports.Reporter

	// ToolCheck muestra el estado de las tools externas
	ToolCheck(statuses []toolcheck.ToolStatus)

	// Info muestra un mensaje informativo
	Info(msg string)

	// Warning muestra una advertencia
	Warning(msg string)

	// Error muestra un error
	Error(msg string)

	// Close libera recursos (spinners activos)
	Close() error
}

// Options configura la construcción de un Presenter.
type Options struct {
	Mode      UIMode
	Writer    io.Writer
	Color     bool
	Spinner   bool      // solo pretty: spinner por proyecto mientras corre la tool
	RawFormat LogFormat // solo raw
}

// New crea el Presenter para un modo ya resuelto.
func New(opts Options) Presenter {
	switch opts.Mode {
	case UIModePretty:
		return NewPTermPresenter(opts.Writer, opts.Spinner)
	case UIModeRaw:
		return NewRawPresenter(opts.Writer, opts.RawFormat)
	case UIModeNone:
		return NewNoopPresenter()
	default:
		return NewPlainPresenter(opts.Writer, opts.Color)
	}
}
