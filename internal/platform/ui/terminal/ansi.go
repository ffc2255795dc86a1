// internal/platform/ui/terminal/ansi.go
package terminal

import (
	"strings"
)

// ANSI Escape Codes
const (
	Reset = "\033[0m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Gray   = "\033[90m"

	BrightRed   = "\033[91m"
	BrightGreen = "\033[92m"

	Bold = "\033[1m"
)

// Colorize aplica un color a un texto
func Colorize(text, color string) string {
	return color + text + Reset
}

// StripANSI elimina los códigos de color (CSI ... m) de un string
func StripANSI(s string) string {
	inEscape := false
	var result strings.Builder

	for i := 0; i < len(s); i++ {
		if s[i] == '\033' {
			inEscape = true
			continue
		}

		if inEscape {
			if s[i] == 'm' {
				inEscape = false
			}
			continue
		}

		result.WriteByte(s[i])
	}

	return result.String()
}
