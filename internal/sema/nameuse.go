package sema

import (
	"github.com/aril-lang/arilc/internal/ast"
	"github.com/aril-lang/arilc/internal/diag"
)

// resolveNameCore implements spec §4.3 steps 1-2: qualified module-path
// lookup, or else the name table's current binding. Shared by name uses in
// value position and in type position.
func resolveNameCore(st *State, n *ast.NameUse) (ast.Decl, bool) {
	if len(n.Qualifiers) > 0 {
		base := n.Base
		if base == nil {
			base = st.Module
		}
		d, err := base.LookupQualified(n.Qualifiers, n.Name)
		if err != nil {
			st.Diags.Report(n.Pos(), diag.ErrorUnkName, "%s", err.Error())
			return nil, false
		}
		return d, true
	}

	current := n.Name.Current()
	if current == nil {
		st.Diags.Report(n.Pos(), diag.ErrorUnkName, "the name %q does not refer to a declared name", n.Name.Text())
		return nil, false
	}
	decl, ok := current.(ast.Decl)
	if !ok {
		st.Diags.Report(n.Pos(), diag.ErrorUnkName, "the name %q does not refer to a declared name", n.Name.Text())
		return nil, false
	}
	return decl, true
}

// visitNameUseExpr implements spec §4.3 (name resolution of a value-position
// name use, including the implicit-self rewrite) and §4.4's "Name use
// (value)" type-check rule. Grounded directly on original_source's
// nameUseWalk (ir/exp/nameuse.c).
func visitNameUseExpr(st *State, slot *ast.Expr, n *ast.NameUse) {
	switch st.Pass {
	case NameResolution:
		decl, ok := resolveNameCore(st, n)
		if !ok {
			return
		}
		n.Decl = decl

		if v, isVar := decl.(*ast.VarDecl); isVar && v.IsMethodOrProperty {
			// Rewrite `x` (a property/field use) into `self.x`: a function
			// call node with an implicit self receiver and the original
			// name repurposed as the member name (spec §4.3 step 3).
			selfName := st.Names.Intern("self")
			selfUse := ast.NewNameUse(selfName)
			selfUse.Position = n.Position
			call := ast.NewFnCall(selfUse)
			call.Position = n.Position
			call.MethProp = n
			var replacement ast.Expr = call
			*slot = replacement
			visitExprSlot(st, slot)
			return
		}

		switch decl.(type) {
		case *ast.VarDecl, *ast.FuncDecl:
			n.Kind = ast.VarNameUse
		default:
			n.Kind = ast.TypeNameUse
		}

	case TypeCheck:
		if n.Decl == nil {
			return
		}
		n.SetValueType(n.Decl.ValueType())
	}
}

// resolveTypeNameUse implements the type-position analogue of §4.3 steps
// 1-2-4: a named type reference (e.g. a VarDecl's declared type spelled as
// a bare identifier) resolves the same way a value name use does, but never
// triggers the self/property rewrite (a type can't be a struct property)
// and always reclassifies to TypeNameUse on success.
func resolveTypeNameUse(st *State, n *ast.NameUse) {
	if st.Pass != NameResolution {
		return
	}
	decl, ok := resolveNameCore(st, n)
	if !ok {
		return
	}
	n.Decl = decl
	if _, isType := decl.(ast.Type); isType {
		n.Kind = ast.TypeNameUse
	} else {
		st.Diags.Report(n.Pos(), diag.ErrorUnkName, "%q does not refer to a type", n.Name.Text())
	}
}
