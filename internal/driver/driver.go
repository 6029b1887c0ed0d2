// Package driver implements spec §2 component 8: run name resolution, then
// (if no errors) type check, then hand the IR to whatever comes next. This
// is the only package that knows both passes exist; everything else only
// knows its own pass.
package driver

import (
	"github.com/aril-lang/arilc/internal/ast"
	"github.com/aril-lang/arilc/internal/diag"
	"github.com/aril-lang/arilc/internal/nametbl"
	"github.com/aril-lang/arilc/internal/sema"
)

// Result carries the outcome of a full compilation run.
type Result struct {
	// Module is the root module, rewritten in place by both passes.
	Module *ast.ModuleNode
	// Diags holds every diagnostic reported across whichever passes ran.
	Diags *diag.Sink
	// TypeChecked reports whether the type-check pass ran at all (it is
	// skipped entirely if name resolution reported any error, per spec §5
	// "Cancellation: a non-zero error count after a pass cancels
	// subsequent passes").
	TypeChecked bool
}

// Run executes the pipeline against mod with the base permission rules
// (strict-permissions off) and no error-count cap. Equivalent to
// RunStrict(names, mod, false, 0).
func Run(names *nametbl.Table, mod *ast.ModuleNode) *Result {
	return RunStrict(names, mod, false, 0)
}

// RunStrict executes the pipeline against mod, sharing one diagnostic sink
// across both passes (spec §4.2, §5 "the entire IR is consistent: name
// resolution completes before any type checking begins"). names must
// already carry whatever declaration-site interning the producer of mod
// performed (spec §6 "Parser → core": "declaration nodes hooked into the
// name table" happens before the core ever runs). strictPermissions mirrors
// the project config toggle of the same name (internal/config.Config);
// maxErrors mirrors Config.MaxErrors (0 means unlimited).
func RunStrict(names *nametbl.Table, mod *ast.ModuleNode, strictPermissions bool, maxErrors int) *Result {
	diags := diag.NewSink()
	diags.SetMaxErrors(maxErrors)

	nameRes := sema.NewState(sema.NameResolution, names, diags)
	nameRes.StrictPermissions = strictPermissions
	sema.VisitModule(nameRes, mod)

	result := &Result{Module: mod, Diags: diags}
	if diags.Count() > 0 {
		return result
	}

	typeCheck := sema.NewState(sema.TypeCheck, names, diags)
	typeCheck.StrictPermissions = strictPermissions
	sema.VisitModule(typeCheck, mod)
	result.TypeChecked = true
	return result
}
