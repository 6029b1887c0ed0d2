package sema

import "github.com/aril-lang/arilc/internal/ast"

// hookModule pushes a new scope and hooks every one of mod's top-level
// declarations into it, so nested code sees them as "current" without
// further lookup through the namespace. Grounded on original_source's
// modHook (ir/stmt/module.c): "Switch name table over to new mod for name
// resolution" / "Unhook old module's names, hook new module's names".
func hookModule(st *State, mod *ast.ModuleNode) {
	st.Names.PushScope()
	for i := 0; i < mod.Decls.Len(); i++ {
		d := mod.Decls.At(i)
		if name := d.DeclName(); name != nil {
			st.Names.Hook(name, d)
		}
	}
}

func unhookModule(st *State) {
	st.Names.PopScope()
}

// VisitModule is this package's sole exported entry point: the driver calls
// it once per pass over the root module (spec §2 "driver invokes the
// visitor once per pass over the root module").
func VisitModule(st *State, root *ast.ModuleNode) {
	visitModule(st, root)
}

// visitModule runs the module two-pass described in spec §4.4 "Module
// node": first resolve every top-level variable/function's type (so forward
// references work even before bodies are checked), then walk every child
// fully. During name resolution it also brackets the walk with the module's
// own hook scope (spec §4.3 "Modules recurse with the hook stack").
func visitModule(st *State, mod *ast.ModuleNode) {
	savedModule := st.Module
	st.Module = mod

	if st.Pass == NameResolution {
		hookModule(st, mod)
	}

	// Pass 1: resolve permission/value type for every top-level var/func
	// declaration, so forward references across the module resolve even
	// before any body is type-checked (spec §4.4, original_source's modPass
	// "For global variables and functions, handle all their type info
	// first").
	for i := 0; i < mod.Decls.Len(); i++ {
		switch d := mod.Decls.At(i).(type) {
		case *ast.VarDecl:
			resolveDeclaredType(st, d)
		case *ast.FuncDecl:
			visitTypeSlot(st, d.Sig)
			if st.Pass == TypeCheck {
				d.SetValueType(d.Sig)
			}
		}
	}

	// Pass 2: full walk, but only if no errors yet broke the module's shape
	// (mirrors the C original's "if (errors == 0)" guard between passes,
	// narrowed here to this module's own walk).
	if st.Diags.Count() == 0 || st.Pass == TypeCheck {
		for i := 0; i < mod.Decls.Len(); i++ {
			visitDecl(st, mod.Decls.At(i))
		}
	}

	if st.Pass == NameResolution {
		unhookModule(st)
	}

	if st.Pass == TypeCheck {
		validateForwardDecls(st, mod)
	}

	st.Module = savedModule
}

// resolveDeclaredType fills a module/local VarDecl's value-type slot from
// its syntactic annotation during the early module pass, ahead of full body
// checking, the same as FuncSigType above.
func resolveDeclaredType(st *State, v *ast.VarDecl) {
	if v.Perm != nil {
		visitTypeSlot(st, v.Perm)
	}
	if v.DeclaredType != nil {
		visitTypeSlot(st, v.DeclaredType)
	}
}
