package sema

import (
	"github.com/aril-lang/arilc/internal/ast"
	"github.com/aril-lang/arilc/internal/diag"
)

// visitFnCall is the central lowering node described in spec §4.4: the
// single generic shape standing in for a method call, a property access, a
// plain function call, or an operator expression. During name resolution it
// only recurses into objfn and the arguments — methprop's own name
// resolution happens here, in type check, since which namespace it resolves
// against depends on objfn's type (grounded directly on original_source's
// fnCallPass comment: "Name resolution for .methprop happens in typecheck
// pass").
func visitFnCall(st *State, slot *ast.Expr, n *ast.FnCall) {
	switch st.Pass {
	case NameResolution:
		visitExprSlot(st, &n.Objfn)
		for i := range n.Args {
			visitExprSlot(st, &n.Args[i])
		}
	case TypeCheck:
		typeCheckFnCall(st, slot, n)
	}
}

func typeCheckFnCall(st *State, slot *ast.Expr, n *ast.FnCall) {
	visitExprSlot(st, &n.Objfn)
	for i := range n.Args {
		visitExprSlot(st, &n.Args[i])
	}

	objType := n.Objfn.ValueType()
	if objType == nil {
		st.Diags.Report(n.Pos(), diag.ErrorNotTyped, "call target has no resolved type")
		return
	}

	t := dereferencedValueType(objType)

	if ns := t.MethodNamespace(); ns != nil {
		lowerMethodCall(st, slot, n, t, ns)
		return
	}

	if n.MethProp != nil {
		st.Diags.Report(n.Pos(), diag.ErrorBadMeth, "%q is not method-typed but a member name %q was given", t.TypeKind(), n.MethProp.Name.Text())
		return
	}

	lowerPlainCall(st, n, t)
}

// lowerMethodCall implements spec §4.4 step 4: the receiver's type exposes a
// method/property namespace.
func lowerMethodCall(st *State, slot *ast.Expr, n *ast.FnCall, recv ast.Type, ns *ast.Namespace) {
	if n.MethProp == nil {
		opName := st.Names.Intern(ast.ImplicitCallOperator)
		n.MethProp = ast.NewNameUse(opName)
		n.MethProp.Position = n.Position
	}

	memberName := n.MethProp.Name
	if memberName.Private() {
		st.Diags.Report(n.Pos(), diag.ErrorNotPublic, "%q is not accessible outside its declaring struct", memberName.Text())
		return
	}

	member, ok := ns.Find(memberName)
	if !ok {
		st.Diags.Report(n.Pos(), diag.ErrorNoMeth, "%s has no method or property named %q", recv.TypeKind(), memberName.Text())
		return
	}

	switch m := member.(type) {
	case *ast.VarDecl:
		lowerPropertyAccess(st, slot, n, m, memberName)
	case *ast.FuncDecl:
		lowerMethodInvocation(st, n, m, memberName)
	default:
		st.Diags.Report(n.Pos(), diag.ErrorNoMeth, "%q is not a method or property", memberName.Text())
	}
}

// lowerPropertyAccess implements the "Property" branch of spec §4.4 step 4:
// arguments are forbidden, the receiver is auto-dereferenced, methprop
// becomes a member-name-use bound to the property, and the call node stays
// in place (keeping its receiver) typed as the property's value type.
func lowerPropertyAccess(st *State, slot *ast.Expr, n *ast.FnCall, prop *ast.VarDecl, memberName *ast.NameHandle) {
	if !prop.IsMethodOrProperty {
		st.Diags.Report(n.Pos(), diag.ErrorNoMeth, "%q is not a method or property", memberName.Text())
		return
	}
	if n.HasArgList() {
		st.Diags.Report(n.Pos(), diag.ErrorManyArgs, "property %q does not take arguments", memberName.Text())
		return
	}

	insertAutoDeref(&n.Objfn)

	n.MethProp.Decl = prop
	n.MethProp.Kind = ast.MbrNameUse
	n.MethProp.Position = n.Position
	n.MethProp.SetValueType(prop.ValueType())
	n.SetValueType(prop.ValueType())
}

// lowerMethodInvocation implements the "Method" branch of spec §4.4 step 4:
// insert the receiver as argument 0, run overload resolution (§4.5), rewrite
// the method-name-use into a value-name-use on the selected declaration, and
// finalize arguments (§4.6).
func lowerMethodInvocation(st *State, n *ast.FnCall, chain *ast.FuncDecl, memberName *ast.NameHandle) {
	if !chain.IsMethodOrProperty {
		st.Diags.Report(n.Pos(), diag.ErrorNoMeth, "%q is not a method or property", memberName.Text())
		return
	}

	args := make([]ast.Expr, 0, len(n.Args)+1)
	args = append(args, n.Objfn)
	args = append(args, n.Args...)

	chosen := bestMatch(chain, args)
	if chosen == nil {
		st.Diags.Report(n.Pos(), diag.ErrorNoMeth, "no overload of %q matches the given arguments", memberName.Text())
		return
	}

	fnUse := ast.NewNameUse(memberName)
	fnUse.Position = n.Position
	fnUse.Kind = ast.VarNameUse
	fnUse.Decl = chosen
	fnUse.SetValueType(chosen.ValueType())

	n.Objfn = fnUse
	n.Args = args
	n.MethProp = nil
	n.SetValueType(chosen.Sig.ReturnType)

	finalizeArgs(st, n, chosen.Sig.Params)
}

// lowerPlainCall implements spec §4.4 steps 5-6: T is not method-typed and
// no member name was given, so objfn must itself be a function value.
func lowerPlainCall(st *State, n *ast.FnCall, t ast.Type) {
	sig, ok := t.(*ast.FuncSigType)
	if !ok {
		st.Diags.Report(n.Pos(), diag.ErrorNotFn, "%s is not callable", t.TypeKind())
		return
	}

	insertAutoDeref(&n.Objfn)

	// A bare, unqualified method name used as a value (e.g. calling `g(1)`
	// from inside another method of the same struct, rather than `self.g(1)`
	// or the name-resolution rewrite of a bare property) still binds to the
	// *ast.FuncDecl itself, not a VarDecl; the implicit-self property
	// rewrite (§4.3 step 3) only fires for fields. Prepend the enclosing
	// method's own self parameter as argument 0 before this falls through
	// to ordinary plain-call handling.
	if objName, ok := n.Objfn.(*ast.NameUse); ok && len(objName.Qualifiers) == 0 {
		if fd, isFunc := objName.Decl.(*ast.FuncDecl); isFunc && fd.IsMethodOrProperty {
			if st.FuncSig != nil && st.FuncSig.Params.Len() > 0 {
				self := st.FuncSig.Params.At(0)
				selfUse := ast.NewNameUse(self.Name)
				selfUse.Position = n.Position
				selfUse.Kind = ast.VarNameUse
				selfUse.Decl = self
				selfUse.SetValueType(self.ValueType())
				n.Args = append([]ast.Expr{selfUse}, n.Args...)
			}
		}
	}

	n.SetValueType(sig.ReturnType)

	if len(n.Args) > sig.Params.Len() {
		st.Diags.Report(n.Pos(), diag.ErrorManyArgs, "too many arguments: got %d, want at most %d", len(n.Args), sig.Params.Len())
		return
	}

	finalizeArgs(st, n, sig.Params)
}

// finalizeArgs implements spec §4.6: coerce (and copy-handle) every supplied
// argument, then pull defaults for any trailing parameters left unsupplied.
func finalizeArgs(st *State, n *ast.FnCall, params *ast.NodeList[*ast.VarDecl]) {
	supplied := len(n.Args)
	for i := 0; i < supplied && i < params.Len(); i++ {
		parm := params.At(i)
		if !coerces(st, parm.ValueType(), &n.Args[i]) {
			st.Diags.Report(n.Args[i].Pos(), diag.ErrorInvType, "argument %d does not coerce to parameter %q's type", i+1, parm.Name.Text())
			continue
		}
		applyCopyHandling(parm, &n.Args[i])
	}

	for i := supplied; i < params.Len(); i++ {
		parm := params.At(i)
		if parm.Init == nil {
			st.Diags.Report(n.Pos(), diag.ErrorFewArgs, "missing argument for parameter %q", parm.Name.Text())
			continue
		}
		n.Args = append(n.Args, parm.Init)
	}
}
