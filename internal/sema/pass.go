// Package sema implements the two semantic analysis passes described in
// spec §4: name resolution (§4.3) and type checking / IR lowering (§4.4),
// driven by a single polymorphic visitor (§4.2) over the tagged IR defined
// in internal/ast.
//
// Grounded on the teacher's internal/semantic/pass.go (Pass interface,
// PassManager) and pass_context.go (PassContext, scope stack) for the
// overall shape, and on original_source/src/c-compiler's per-node-kind pass
// functions (nameUseWalk, fnCallPass, modPass, whilePass, ...) for what each
// handler actually does — the teacher's single monolithic *Analyzer walks a
// concrete-typed AST with Go method dispatch; this package instead switches
// on ast.Tag because the IR here is a tagged sum, as the spec's Design Notes
// (§9) call for.
package sema

import (
	"github.com/aril-lang/arilc/internal/ast"
	"github.com/aril-lang/arilc/internal/diag"
	"github.com/aril-lang/arilc/internal/nametbl"
)

// Pass identifies which of the two analysis passes is currently running.
// Handlers inspect this field and branch, exactly as nameuse.c's
// nameUseWalk switches on pstate->pass (spec §4.2).
type Pass int

const (
	NameResolution Pass = iota
	TypeCheck
)

func (p Pass) String() string {
	if p == NameResolution {
		return "NameResolution"
	}
	return "TypeCheck"
}

// Flag is a bit flag threaded through the pass state. Spec §4.2 only
// requires "inside a while" (consumed by the downstream flow pass); kept as
// a bitmask so later flags are cheap to add without changing call sites.
type Flag uint32

const (
	FlagNone       Flag = 0
	FlagWithinWhile Flag = 1 << iota
)

// State is the pass state threaded through every visit: which pass is
// running, the current module (for qualified lookups and hooking), the
// current function signature (for resolving bare `self`/parameter-0
// references), scope depth, and flags (spec §4.2).
//
// It is deliberately not named PassContext (the teacher's name for the
// equivalent type): the teacher's PassContext is keyed per-analyzer and
// long-lived across an entire compilation; this State is the narrower
// "address of a node pointer plus a few cursors" object the spec describes,
// recreated fresh for each pass.
type State struct {
	Pass    Pass
	Names   *nametbl.Table
	Diags   *diag.Sink
	Module  *ast.ModuleNode
	FuncSig *ast.FuncSigType // non-nil while walking inside a function/method body
	Depth   int
	Flags   Flag

	// StrictPermissions mirrors the project config toggle of the same name
	// (internal/config.Config.StrictPermissions): a block-local declaration
	// must carry an explicit permission qualifier (see
	// validateLocalPermission). Off by default.
	StrictPermissions bool
}

// NewState creates a pass state for running pass over root, sharing names
// and diags across both passes of a compilation.
func NewState(pass Pass, names *nametbl.Table, diags *diag.Sink) *State {
	return &State{Pass: pass, Names: names, Diags: diags}
}

// withFuncSig runs fn with FuncSig temporarily set to sig, restoring the
// previous value on return (mirrors pstate->fnsig save/restore in the C
// original's function-body walk).
func (s *State) withFuncSig(sig *ast.FuncSigType, fn func()) {
	saved := s.FuncSig
	s.FuncSig = sig
	fn()
	s.FuncSig = saved
}

// withFlag runs fn with extra flag bits set, restoring the previous flag
// word on return (spec §4.4 "While node": "Set the 'within while' flag for
// the subtree").
func (s *State) withFlag(extra Flag, fn func()) {
	saved := s.Flags
	s.Flags |= extra
	fn()
	s.Flags = saved
}
