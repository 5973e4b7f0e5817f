// Package output renders scan reports for terminal, JSON, and SARIF
// consumers. Grouping findings by severity happens here, never in the
// scanner itself.
package output

import (
	"fmt"
	"io"

	"github.com/SureshAIOrigin/automatic-eureka/internal/scanner"
)

// Formatter is the interface for rendering a scan report.
type Formatter interface {
	Format(w io.Writer, rep *scanner.Report) error
}

// New returns the formatter for a --format value.
func New(format string, noColor bool) (Formatter, error) {
	switch format {
	case "", "terminal":
		return &TerminalFormatter{NoColor: noColor}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "sarif":
		return &SARIFFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want terminal, json, or sarif)", format)
	}
}
