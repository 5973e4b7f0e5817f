package analyzers

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	insppass "golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// AnalyzerLenInRange flags `for i := range len(xs)` (range over the collection
// itself, or use the index form directly).
var AnalyzerLenInRange = &analysis.Analyzer{
	Name:     "perf004_leninrange",
	Doc:      "flags range over len() (range over the collection directly)",
	Run:      runLenInRange,
	Requires: []*analysis.Analyzer{insppass.Analyzer},
}

func runLenInRange(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[insppass.Analyzer].(*inspector.Inspector)
	nodes := []ast.Node{(*ast.RangeStmt)(nil)}
	insp.Preorder(nodes, func(n ast.Node) {
		rs := n.(*ast.RangeStmt)
		call, ok := unparen(rs.X).(*ast.CallExpr)
		if !ok {
			return
		}
		if id, ok := call.Fun.(*ast.Ident); ok && id.Name == "len" {
			pass.Reportf(rs.For, "range over len(); range over the collection itself")
		}
	})
	return nil, nil
}
