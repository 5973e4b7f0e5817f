package analyzers

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/analysis"
	insppass "golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// AnalyzerConcatInLoop flags += accumulation inside loop bodies.
var AnalyzerConcatInLoop = &analysis.Analyzer{
	Name:     "perf001_concatinloop",
	Doc:      "flags += accumulation inside loops (prefer strings.Builder or append)",
	Run:      runConcatInLoop,
	Requires: []*analysis.Analyzer{insppass.Analyzer},
}

func runConcatInLoop(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[insppass.Analyzer].(*inspector.Inspector)
	nodes := []ast.Node{(*ast.AssignStmt)(nil)}
	insp.WithStack(nodes, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}
		as := n.(*ast.AssignStmt)
		if as.Tok != token.ADD_ASSIGN {
			return true
		}
		// The enclosing-loop check covers every statement lexically inside a
		// loop body, no matter how deeply nested in blocks or closures.
		if !insideLoopBody(stack) {
			return true
		}
		pass.Reportf(as.Pos(), "+= accumulation in loop; use strings.Builder for strings or grow slices with append")
		return true
	})
	return nil, nil
}
