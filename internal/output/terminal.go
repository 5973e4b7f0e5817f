package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/SureshAIOrigin/automatic-eureka/internal/scanner"
)

const lineWidth = 80

// severityOrder fixes the display grouping; within a group findings keep
// their scan order.
var severityOrder = []scanner.Severity{
	scanner.SeverityError,
	scanner.SeverityHigh,
	scanner.SeverityMedium,
	scanner.SeverityLow,
}

var severitySymbols = map[scanner.Severity]string{
	scanner.SeverityError:  "✗",
	scanner.SeverityHigh:   "⚠",
	scanner.SeverityMedium: "!",
	scanner.SeverityLow:    "ℹ",
}

var severityColors = map[scanner.Severity][]color.Attribute{
	scanner.SeverityError:  {color.FgRed, color.Bold},
	scanner.SeverityHigh:   {color.FgRed},
	scanner.SeverityMedium: {color.FgYellow},
	scanner.SeverityLow:    {color.FgCyan},
}

// TerminalFormatter renders findings grouped by severity for humans.
type TerminalFormatter struct {
	NoColor bool
}

func (f *TerminalFormatter) sprint(attrs ...color.Attribute) func(a ...interface{}) string {
	if f.NoColor {
		return fmt.Sprint
	}
	return color.New(attrs...).SprintFunc()
}

func (f *TerminalFormatter) Format(w io.Writer, rep *scanner.Report) error {
	if len(rep.Findings) == 0 {
		green := f.sprint(color.FgGreen)
		fmt.Fprintf(w, "%s No performance issues found in %s\n", green("✓"), rep.Target)
		return nil
	}

	rule := strings.Repeat("=", lineWidth)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "Performance Analysis: %s\n", rep.Target)
	fmt.Fprintf(w, "%s\n\n", rule)

	for _, sev := range severityOrder {
		group := filterBySeverity(rep.Findings, sev)
		if len(group) == 0 {
			continue
		}
		paint := f.sprint(severityColors[sev]...)
		fmt.Fprintf(w, "%s %s SEVERITY (%d issue(s))\n",
			paint(severitySymbols[sev]), paint(strings.ToUpper(string(sev))), len(group))
		fmt.Fprintf(w, "%s\n", strings.Repeat("-", lineWidth))
		for _, fd := range group {
			loc := fmt.Sprintf("Line %d", fd.Line)
			if fd.Function != "" {
				loc += fmt.Sprintf(" in %s()", fd.Function)
			}
			fmt.Fprintf(w, "  %s: %s\n", loc, fd.Message)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func filterBySeverity(findings []scanner.Finding, sev scanner.Severity) []scanner.Finding {
	var out []scanner.Finding
	for _, f := range findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}
