package sema

import (
	"github.com/aril-lang/arilc/internal/ast"
	"github.com/aril-lang/arilc/internal/diag"
)

// visitLiteral fills a literal's value type from its kind. Name resolution
// has nothing to do here — a literal carries no name.
func visitLiteral(st *State, n *ast.Literal) {
	if st.Pass != TypeCheck {
		return
	}
	switch n.Kind {
	case ast.LitInt:
		n.SetValueType(I32Type)
	case ast.LitFloat:
		n.SetValueType(F64Type)
	case ast.LitString:
		n.SetValueType(StrType)
	case ast.LitBool:
		n.SetValueType(BoolType)
	}
}

// visitBorrow implements spec §4.4 "Borrow / deref nodes": type-check the
// inner expression, then set the result type from the inner type with one
// level of reference added.
func visitBorrow(st *State, n *ast.BorrowExpr) {
	visitExprSlot(st, &n.Inner)
	if st.Pass != TypeCheck {
		return
	}
	inner := n.Inner.ValueType()
	if inner == nil {
		return
	}
	n.SetValueType(&ast.RefType{ValueType: inner, Perm: n.Perm})
}

// visitDeref is the mirror of visitBorrow: one level of reference/pointer
// removed.
func visitDeref(st *State, n *ast.DerefExpr) {
	visitExprSlot(st, &n.Inner)
	if st.Pass != TypeCheck {
		return
	}
	inner := n.Inner.ValueType()
	if inner == nil {
		return
	}
	base, ok := derefOnce(inner)
	if !ok {
		st.Diags.Report(n.Pos(), diag.ErrorInvType, "cannot dereference a value that is not a reference or pointer")
		return
	}
	n.SetValueType(base)
}

// visitBlockExpr walks every statement in order. During name resolution it
// brackets the walk with its own hook scope so locals declared partway
// through the block go out of scope at the closing brace (spec §4.1, §4.3
// "Modules recurse with the hook stack" generalized to any lexical scope).
// During type check its value type is that of its final statement, or void.
func visitBlockExpr(st *State, n *ast.BlockExpr) {
	if st.Pass == NameResolution {
		st.Names.PushScope()
	}

	for i := range n.Stmts {
		visitStmtSlot(st, &n.Stmts[i])
	}

	if st.Pass == NameResolution {
		st.Names.PopScope()
		return
	}

	if len(n.Stmts) == 0 {
		n.SetValueType(VoidType)
		return
	}
	last := n.Stmts[len(n.Stmts)-1]
	_, isDecl := last.(*ast.VarDecl)
	if expr, ok := last.(ast.Expr); ok && !isDecl && expr.ValueType() != nil {
		n.SetValueType(expr.ValueType())
	} else {
		n.SetValueType(VoidType)
	}
}

// visitWhileExpr implements spec §4.4 "While node": sets the "within while"
// flag for the subtree, requires the condition coerces to boolean, and walks
// the body. A while loop's own value is always void.
func visitWhileExpr(st *State, n *ast.WhileExpr) {
	st.withFlag(FlagWithinWhile, func() {
		visitExprSlot(st, &n.Cond)
		visitBlockExpr(st, n.Body)
	})

	if st.Pass != TypeCheck {
		return
	}
	if !coerces(st, BoolType, &n.Cond) {
		st.Diags.Report(n.Cond.Pos(), diag.ErrorInvType, "while condition must coerce to bool")
	}
	n.SetValueType(VoidType)
}

// visitAssignExpr requires Value coerces to Target's value type; the
// assignment's own value type is Target's.
func visitAssignExpr(st *State, n *ast.AssignExpr) {
	visitExprSlot(st, &n.Target)
	visitExprSlot(st, &n.Value)

	if st.Pass != TypeCheck {
		return
	}
	target := n.Target.ValueType()
	if target == nil {
		return
	}
	if !coerces(st, target, &n.Value) {
		st.Diags.Report(n.Pos(), diag.ErrorInvType, "assigned value does not coerce to the target's type")
		return
	}
	n.SetValueType(target)
}

// visitTupleReturnExpr type-checks each bundled value. This core has no
// distinct tuple type (the spec's data model lists "tuple-return" only as
// an expression node, §3); the generator reads Values positionally, so the
// node's own value type is void once every value is individually typed.
func visitTupleReturnExpr(st *State, n *ast.TupleReturnExpr) {
	for i := range n.Values {
		visitExprSlot(st, &n.Values[i])
	}
	if st.Pass != TypeCheck {
		return
	}
	for _, v := range n.Values {
		if v.ValueType() == nil {
			return
		}
	}
	n.SetValueType(VoidType)
}
