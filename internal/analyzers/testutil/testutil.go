package testutil

import (
	"go/ast"
	"go/parser"
	"go/token"

	"golang.org/x/tools/go/analysis"
	insppass "golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// RunAnalyzerOnSrc parses src, builds a minimal analysis.Pass with an
// inspector, runs the analyzer, and returns collected diagnostics. The pass
// carries no type information; the perf analyzers are purely syntactic, so
// src only needs to parse, not type-check.
func RunAnalyzerOnSrc(an *analysis.Analyzer, src string) ([]analysis.Diagnostic, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "src.go", src, 0)
	if err != nil {
		return nil, err
	}
	files := []*ast.File{f}
	var diags []analysis.Diagnostic
	pass := &analysis.Pass{
		Analyzer: an,
		Fset:     fset,
		Files:    files,
		Report:   func(d analysis.Diagnostic) { diags = append(diags, d) },
		ResultOf: map[*analysis.Analyzer]interface{}{insppass.Analyzer: inspector.New(files)},
	}
	_, err = an.Run(pass)
	return diags, err
}
