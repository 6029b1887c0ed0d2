package sema

import "github.com/aril-lang/arilc/internal/ast"

// visitExprSlot dispatches on the concrete type currently held in *slot and
// recurses. Handlers receive slot itself (not just the node) so they can
// rewrite the subtree in place by assigning a replacement into *slot — the
// spec's "address of a node pointer" rewriting mechanism (§4.2, §9).
func visitExprSlot(st *State, slot *ast.Expr) {
	switch n := (*slot).(type) {
	case nil:
		return
	case *ast.Literal:
		visitLiteral(st, n)
	case *ast.NameUse:
		visitNameUseExpr(st, slot, n)
	case *ast.FnCall:
		visitFnCall(st, slot, n)
	case *ast.BorrowExpr:
		visitBorrow(st, n)
	case *ast.DerefExpr:
		visitDeref(st, n)
	case *ast.BlockExpr:
		visitBlockExpr(st, n)
	case *ast.WhileExpr:
		visitWhileExpr(st, n)
	case *ast.AssignExpr:
		visitAssignExpr(st, n)
	case *ast.TupleReturnExpr:
		visitTupleReturnExpr(st, n)
	case *ast.CopyExpr:
		// Inserted already-typed by argument finalization (§4.6); nothing
		// further to resolve if revisited from an outer slot.
	default:
		panic("sema: unhandled expression node in visitExprSlot")
	}
}

// visitStmtSlot dispatches a block-statement slot, which may hold either a
// local declaration or any expression node. It exists separately from
// visitExprSlot because ast.BlockExpr.Stmts is []ast.Node (declarations are
// statements too), not []ast.Expr.
func visitStmtSlot(st *State, slot *ast.Node) {
	switch n := (*slot).(type) {
	case nil:
		return
	case *ast.VarDecl:
		visitLocalVarDecl(st, n)
	default:
		expr, ok := n.(ast.Expr)
		if !ok {
			panic("sema: unhandled statement node in visitStmtSlot")
		}
		visitExprSlot(st, &expr)
		*slot = expr
	}
}

// visitTypeSlot resolves a syntactic type annotation. Type nodes are never
// rewritten (only shared by reference from value-type slots), so this only
// needs to recurse into the type's own sub-type references for nested
// shapes (arrays, pointers, references, function signatures).
func visitTypeSlot(st *State, t ast.Type) {
	switch ty := t.(type) {
	case nil:
		return
	case *ast.ArrayType:
		visitTypeSlot(st, ty.ElementType)
	case *ast.PointerType:
		visitTypeSlot(st, ty.ValueType)
	case *ast.RefType:
		visitTypeSlot(st, ty.ValueType)
	case *ast.FuncSigType:
		for i := 0; i < ty.Params.Len(); i++ {
			visitDecl(st, ty.Params.At(i))
		}
		visitTypeSlot(st, ty.ReturnType)
	case *ast.NameUse:
		resolveTypeNameUse(st, ty)
	case *ast.StructDecl, *ast.PrimitiveType, *ast.PermType, *ast.AllocatorType:
		// Leaf or self-contained; nothing further to resolve here.
	}
}

// visitDecl dispatches any declaration node reached outside of module
// top-level two-pass processing (e.g. a function parameter, or a struct's
// property/method during its own body walk).
func visitDecl(st *State, d ast.Decl) {
	switch decl := d.(type) {
	case *ast.VarDecl:
		visitLocalVarDecl(st, decl)
	case *ast.FuncDecl:
		visitFuncDecl(st, decl)
	case *ast.StructDecl:
		visitStructDecl(st, decl)
	case *ast.ModuleNode:
		visitModule(st, decl)
	}
}
