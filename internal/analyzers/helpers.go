package analyzers

import (
	"go/ast"
)

// loopBody returns the body block of a for or range statement, nil otherwise.
func loopBody(n ast.Node) *ast.BlockStmt {
	switch x := n.(type) {
	case *ast.ForStmt:
		return x.Body
	case *ast.RangeStmt:
		return x.Body
	}
	return nil
}

// insideLoopBody reports whether the innermost node of stack sits inside the
// lexical body of any enclosing for or range statement. Loop headers (init,
// condition, post, range expression) do not count.
func insideLoopBody(stack []ast.Node) bool {
	n := stack[len(stack)-1]
	for _, anc := range stack[:len(stack)-1] {
		body := loopBody(anc)
		if body == nil {
			continue
		}
		if n.Pos() >= body.Lbrace && n.End() <= body.Rbrace {
			return true
		}
	}
	return false
}

// isPkgCall reports whether expr is a selector of the form pkg.name, matched
// syntactically. A shadowed package identifier would need type information to
// reject; callers accept that imprecision.
func isPkgCall(expr ast.Expr, pkg, name string) bool {
	sel, ok := unparen(expr).(*ast.SelectorExpr)
	if !ok || sel.Sel == nil || sel.Sel.Name != name {
		return false
	}
	id, ok := sel.X.(*ast.Ident)
	return ok && id.Name == pkg
}

// unparen strips any parenthesis layers from an expression.
func unparen(e ast.Expr) ast.Expr {
	for {
		p, ok := e.(*ast.ParenExpr)
		if !ok {
			return e
		}
		e = p.X
	}
}
