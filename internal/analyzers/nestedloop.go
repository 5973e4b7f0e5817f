package analyzers

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	insppass "golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// AnalyzerNestedLoop flags loops whose leading statement contains another loop.
//
// Known gap: only the first statement of the outer body is inspected, so an
// inner loop appearing as the second or later statement is not reported. The
// behavior is kept for compatibility with the historical heuristic.
var AnalyzerNestedLoop = &analysis.Analyzer{
	Name:     "perf002_nestedloop",
	Doc:      "flags nested loops (consider indexing with a map for O(1) lookups)",
	Run:      runNestedLoop,
	Requires: []*analysis.Analyzer{insppass.Analyzer},
}

func runNestedLoop(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[insppass.Analyzer].(*inspector.Inspector)
	nodes := []ast.Node{(*ast.ForStmt)(nil), (*ast.RangeStmt)(nil)}
	insp.Preorder(nodes, func(n ast.Node) {
		body := loopBody(n)
		if body == nil || len(body.List) == 0 {
			return
		}
		found := false
		ast.Inspect(body.List[0], func(inner ast.Node) bool {
			if found {
				return false
			}
			switch inner.(type) {
			case *ast.ForStmt, *ast.RangeStmt:
				found = true
				return false
			}
			return true
		})
		if found {
			pass.Reportf(n.Pos(), "nested loop; consider a map[...]struct{} index for O(1) lookups")
		}
	})
	return nil, nil
}
