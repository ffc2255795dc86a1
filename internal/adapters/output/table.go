// internal/adapters/output/table.go
package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"sbomatic/internal/platform/toolcheck"
)

// WriteToolTable imprime el estado de las tools en columnas alineadas.
func WriteToolTable(out io.Writer, statuses []toolcheck.ToolStatus) error {
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)

	fmt.Fprintln(w, "GENERATOR\tTOOL\tSTATUS\tVERSION\tPATH")
	fmt.Fprintln(w, "---------\t----\t------\t-------\t----")

	for _, s := range statuses {
		status := "missing"
		if s.Available {
			status = "ok"
		}
		version := s.Version
		if version == "" {
			version = "-"
		}
		path := s.Path
		if path == "" {
			path = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.Generator, s.Tool, status, version, path)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}

	missing := toolcheck.Missing(statuses)
	if len(missing) > 0 {
		fmt.Fprintf(out, "\nMissing tools (%d):\n", len(missing))
		for i, s := range missing {
			fmt.Fprintf(out, "  %d. %s: %s\n", i+1, s.Tool, s.InstallHint)
		}
	}

	return nil
}
