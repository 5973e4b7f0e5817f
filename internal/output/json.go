package output

import (
	"encoding/json"
	"io"

	"github.com/SureshAIOrigin/automatic-eureka/internal/scanner"
)

// JSONFormatter outputs the report as indented JSON.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(w io.Writer, rep *scanner.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
