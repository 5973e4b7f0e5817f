package analyzers

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	insppass "golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// AnalyzerListMembership flags membership tests against slice literals.
var AnalyzerListMembership = &analysis.Analyzer{
	Name:     "perf003_listmembership",
	Doc:      "flags slices.Contains over a literal slice (build a map set once instead)",
	Run:      runListMembership,
	Requires: []*analysis.Analyzer{insppass.Analyzer},
}

func runListMembership(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[insppass.Analyzer].(*inspector.Inspector)
	nodes := []ast.Node{(*ast.CallExpr)(nil)}
	insp.Preorder(nodes, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		if !isPkgCall(call.Fun, "slices", "Contains") || len(call.Args) < 1 {
			return
		}
		if isSliceLiteral(call.Args[0]) {
			pass.Reportf(call.Pos(), "membership test against a slice literal; use a map[...]struct{} set for O(1) lookup")
		}
	})
	return nil, nil
}

// isSliceLiteral reports whether e constructs a slice or array in place.
func isSliceLiteral(e ast.Expr) bool {
	cl, ok := unparen(e).(*ast.CompositeLit)
	if !ok {
		return false
	}
	_, ok = cl.Type.(*ast.ArrayType)
	return ok
}
