package sema

import "github.com/aril-lang/arilc/internal/ast"

// isOwningValue reports whether t is a value type that owns a resource
// rather than merely referring to or computing one (spec §4.6 step 1:
// "if the parameter type is an owning value (not Copy-semantics)").
// Primitives, references, pointers, and function signatures are all
// trivially duplicable or non-owning; a bare struct value is the only shape
// in this IR that owns its contents by value.
func isOwningValue(t ast.Type) bool {
	t = underlyingType(t)
	if t == nil {
		return false
	}
	switch t.(type) {
	case *ast.PrimitiveType, *ast.RefType, *ast.PointerType, *ast.FuncSigType:
		return false
	default:
		return true
	}
}

// isMoveCapable reports whether expr can be moved out of directly rather
// than needing an explicit copy: a bare name use moves the named binding,
// and a call result is always a fresh temporary that has nothing else to
// move from.
func isMoveCapable(expr ast.Expr) bool {
	switch expr.(type) {
	case *ast.NameUse, *ast.FnCall:
		return true
	default:
		return false
	}
}

// applyCopyHandling implements the copy-handler half of spec §4.6 step 1.
// Whether a move is actually legal at this point in the program (e.g.
// whether the named binding is still live afterward) is a question for the
// flow-analysis pass this core hands off to, not for this core itself (spec
// §1 Non-goals); so rather than reject the move, an argument that isn't
// already move-capable is simply wrapped in a copy node for the generator to
// honor.
func applyCopyHandling(parm *ast.VarDecl, slot *ast.Expr) {
	if !isOwningValue(parm.ValueType()) {
		return
	}
	if isMoveCapable(*slot) {
		return
	}
	expr := *slot
	cp := &ast.CopyExpr{Inner: expr}
	cp.Position = expr.Pos()
	cp.SetValueType(expr.ValueType())
	*slot = cp
}
