package sema

import (
	"github.com/aril-lang/arilc/internal/ast"
	"github.com/aril-lang/arilc/internal/diag"
)

// visitLocalVarDecl implements spec §4.4 "Variable declaration" for a
// parameter or a block-local. Parameters (ParamIndex >= 0) are hooked by
// their owning FuncDecl/FuncSigType walk instead of here, so a forward
// reference to a signature's own parameter list during module pass 1 never
// double-hooks.
func visitLocalVarDecl(st *State, v *ast.VarDecl) {
	switch st.Pass {
	case NameResolution:
		if v.Perm != nil {
			visitTypeSlot(st, v.Perm)
		}
		if v.DeclaredType != nil {
			visitTypeSlot(st, v.DeclaredType)
		}
		if v.Init != nil {
			visitExprSlot(st, &v.Init)
		}
		if v.ParamIndex < 0 && v.ScopeDepth > 0 {
			st.Names.Hook(v.Name, v)
		}

	case TypeCheck:
		if v.Init != nil {
			visitExprSlot(st, &v.Init)
		}
		switch {
		case v.DeclaredType != nil:
			v.SetValueType(v.DeclaredType)
			if v.Init != nil && !coerces(st, v.DeclaredType, &v.Init) {
				st.Diags.Report(v.Pos(), diag.ErrorInvType, "initializer for %q does not coerce to its declared type", v.Name.Text())
			}
		case v.Init != nil:
			v.SetValueType(v.Init.ValueType())
		default:
			st.Diags.Report(v.Pos(), diag.ErrorNoInit, "%q has no declared type and no initializer to infer one from", v.Name.Text())
		}
		validateLocalPermission(st, v)
	}
}

// validateLocalPermission rejects permissions that make no sense on a local
// (spec §4.4: "mut1 / uni / opaque are rejected for local variables; const
// is rejected unless the 'may be const' flag was set at parse time"). Under
// the `strict-permissions` project toggle (SPEC_FULL.md §1), a local must
// also carry an explicit permission qualifier at all.
func validateLocalPermission(st *State, v *ast.VarDecl) {
	if v.ScopeDepth == 0 {
		return
	}
	if v.Perm == nil {
		if st.StrictPermissions {
			st.Diags.Report(v.Pos(), diag.ErrorInvType, "%q has no explicit permission qualifier (strict-permissions is on)", v.Name.Text())
		}
		return
	}
	switch v.Perm.Kind {
	case ast.PermMut1, ast.PermUni, ast.PermOpaque:
		st.Diags.Report(v.Pos(), diag.ErrorInvType, "permission %s is not allowed on a local variable", v.Perm.Kind)
	case ast.PermConst:
		if !v.MayBeConst {
			st.Diags.Report(v.Pos(), diag.ErrorInvType, "permission %s is not allowed on %q here", v.Perm.Kind, v.Name.Text())
		}
	}
}

// visitFuncDecl walks a function/method's signature and, if present, its
// body, hooking the parameter list into a fresh scope for the duration of
// the body walk (name resolution only; type check reuses the bindings
// established then via each parameter's own value-type slot).
func visitFuncDecl(st *State, f *ast.FuncDecl) {
	switch st.Pass {
	case NameResolution:
		visitTypeSlot(st, f.Sig)
		if f.Body == nil {
			return
		}
		st.Names.PushScope()
		for i := 0; i < f.Sig.Params.Len(); i++ {
			p := f.Sig.Params.At(i)
			st.Names.Hook(p.Name, p)
		}
		st.withFuncSig(f.Sig, func() {
			visitBlockExpr(st, f.Body)
		})
		st.Names.PopScope()

	case TypeCheck:
		// Top-level functions have their signature's parameter value-types
		// filled in by the module's declared-type pre-pass before this runs,
		// but a struct method's signature is only ever reached through here,
		// so it must resolve its own params/return (including `self`)
		// before the body is walked. Either way f's own value-type slot
		// (read by a plain function call's `objfn.ValueType()`, spec §4.4
		// step 2) must be set here too: the module pre-pass only visits
		// top-level declarations, never a struct's methods.
		visitTypeSlot(st, f.Sig)
		f.SetValueType(f.Sig)
		if f.Body == nil {
			return
		}
		st.withFuncSig(f.Sig, func() {
			visitBlockExpr(st, f.Body)
		})
	}
}

// visitStructDecl hooks a struct's own property/method namespace while its
// members are walked (spec §4.3 "Structure declarations similarly hook
// their property/method namespace while their bodies are walked"), then
// resolves each property's declared type and walks each method body.
func visitStructDecl(st *State, s *ast.StructDecl) {
	switch st.Pass {
	case NameResolution:
		st.Names.PushScope()
		for i := 0; i < s.Properties.Len(); i++ {
			p := s.Properties.At(i)
			st.Names.Hook(p.Name, p)
		}
		for i := 0; i < s.Methods.Len(); i++ {
			m := s.Methods.At(i)
			st.Names.Hook(m.Name, m)
		}
		for i := 0; i < s.Properties.Len(); i++ {
			resolveDeclaredType(st, s.Properties.At(i))
		}
		for i := 0; i < s.Methods.Len(); i++ {
			visitFuncDecl(st, s.Methods.At(i))
		}
		st.Names.PopScope()

	case TypeCheck:
		for i := 0; i < s.Properties.Len(); i++ {
			visitStructProperty(st, s.Properties.At(i))
		}
		for i := 0; i < s.Methods.Len(); i++ {
			visitFuncDecl(st, s.Methods.At(i))
		}
	}
}

// visitStructProperty type-checks a struct field/property's declared type
// and optional default value. Unlike a local variable, a field's permission
// is never rejected by validateLocalPermission's local-only rules (spec
// §4.4's local-variable permission restrictions don't apply to struct
// members).
func visitStructProperty(st *State, v *ast.VarDecl) {
	if v.DeclaredType != nil {
		v.SetValueType(v.DeclaredType)
	}
	if v.Init == nil {
		return
	}
	visitExprSlot(st, &v.Init)
	switch {
	case v.DeclaredType != nil:
		if !coerces(st, v.DeclaredType, &v.Init) {
			st.Diags.Report(v.Pos(), diag.ErrorInvType, "default value for %q does not coerce to its declared type", v.Name.Text())
		}
	default:
		v.SetValueType(v.Init.ValueType())
	}
}

// validateForwardDecls implements the end-of-module "ErrorBadImpl" check:
// any top-level function or struct that reached the end of type check still
// forward-declared (no body, or no completed layout) has no implementation
// for the generator to emit (grounded on original_source's incomplete-impl
// diagnostics in ir/stmt/fndecl.c and ast/type.c).
func validateForwardDecls(st *State, mod *ast.ModuleNode) {
	for i := 0; i < mod.Decls.Len(); i++ {
		switch d := mod.Decls.At(i).(type) {
		case *ast.FuncDecl:
			if d.IsForward() {
				st.Diags.Report(d.Pos(), diag.ErrorBadImpl, "function %q is declared but never implemented", d.Name.Text())
			}
		case *ast.StructDecl:
			if d.IsForward {
				st.Diags.Report(d.Pos(), diag.ErrorBadImpl, "struct %q is forward-declared but never completed", d.Name.Text())
			}
		}
	}
}
