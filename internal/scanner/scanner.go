// Package scanner parses a single Go source unit and runs the performance
// rule analyzers over it, aggregating findings in depth-first visit order.
package scanner

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	goscan "go/scanner"
	"go/token"
	"os"
	"sort"
	"time"

	"golang.org/x/tools/go/analysis"
	insppass "golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Scan runs the full rule catalog over one source unit. It is a pure
// function of its input: identical input yields an identical report. A parse
// failure is reported as a single SyntaxError finding, not a Go error; an
// error return means a rule itself failed on a parseable file.
func Scan(src []byte, filename string) (*Report, error) {
	return ScanWithSpecs(src, filename, Catalog())
}

// ScanFile reads path and scans its contents.
func ScanFile(path string) (*Report, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Scan(src, path)
}

// ScanWithSpecs runs only the given rules over one source unit.
func ScanWithSpecs(src []byte, filename string, specs []Spec) (*Report, error) {
	start := time.Now()
	report := &Report{Target: filename, RulesRun: len(specs)}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		report.Findings = []Finding{syntaxFinding(err, filename)}
		report.Duration = time.Since(start)
		return report, nil
	}

	files := []*ast.File{f}
	insp := inspector.New(files)

	type located struct {
		pos     token.Pos
		finding Finding
	}
	var out []located
	for _, spec := range specs {
		var diags []analysis.Diagnostic
		pass := &analysis.Pass{
			Analyzer: spec.Analyzer,
			Fset:     fset,
			Files:    files,
			Report:   func(d analysis.Diagnostic) { diags = append(diags, d) },
			ResultOf: map[*analysis.Analyzer]interface{}{insppass.Analyzer: insp},
		}
		if _, err := spec.Analyzer.Run(pass); err != nil {
			// A rule failing on a parseable file is a scanner defect; surface
			// it rather than returning a partial report.
			return nil, fmt.Errorf("rule %s: %w", spec.RuleID, err)
		}
		for _, d := range diags {
			pos := fset.Position(d.Pos)
			out = append(out, located{pos: d.Pos, finding: Finding{
				RuleID:   spec.RuleID,
				Category: spec.Category,
				Severity: spec.Severity,
				Filename: pos.Filename,
				Line:     pos.Line,
				Column:   pos.Column,
				Message:  d.Message,
				Function: enclosingFunc(f, d.Pos),
			}})
		}
	}

	// Each rule reports in its own depth-first pass; a stable sort by
	// position merges them back into the order a single walk would visit the
	// triggering nodes. No severity grouping happens here.
	sort.SliceStable(out, func(i, j int) bool { return out[i].pos < out[j].pos })
	for _, l := range out {
		report.Findings = append(report.Findings, l.finding)
	}
	report.Duration = time.Since(start)
	return report, nil
}

// syntaxFinding converts a parse error into the single finding returned for
// unparseable input. The first parser diagnostic supplies line and message;
// line 0 means the parser gave no location.
func syntaxFinding(err error, filename string) Finding {
	line := 0
	msg := err.Error()
	var el goscan.ErrorList
	if errors.As(err, &el) && len(el) > 0 {
		line = el[0].Pos.Line
		msg = el[0].Msg
	}
	return Finding{
		RuleID:   RuleSyntaxErrorID,
		Category: CategorySyntaxError,
		Severity: SeverityError,
		Filename: filename,
		Line:     line,
		Message:  fmt.Sprintf("syntax error: %s", msg),
	}
}

// enclosingFunc returns the name of the function declaration containing pos,
// or "" for package-level code. Function literals inherit the name of the
// declaration they appear in; methods report the method name.
func enclosingFunc(f *ast.File, pos token.Pos) string {
	for _, decl := range f.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		if fd.Pos() <= pos && pos < fd.End() {
			return fd.Name.Name
		}
	}
	return ""
}
