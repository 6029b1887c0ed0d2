package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aril-lang/arilc/internal/ast"
	"github.com/aril-lang/arilc/internal/driver"
	"github.com/aril-lang/arilc/internal/fixture"
	"github.com/aril-lang/arilc/internal/nametbl"
)

// varByName finds a module-level VarDecl by name, failing the test if it's
// not there — the fixture module's shape is fixed, so a miss means the
// fixture changed underneath this test.
func varByName(t *testing.T, mod *ast.ModuleNode, name string) *ast.VarDecl {
	t.Helper()
	for i := 0; i < mod.Decls.Len(); i++ {
		if v, ok := mod.Decls.At(i).(*ast.VarDecl); ok && v.Name.Text() == name {
			return v
		}
	}
	t.Fatalf("no top-level var decl named %q", name)
	return nil
}

// TestRunTypeChecksTheDemoFixtureCleanly is the end-to-end run spec §8's
// scenarios are meant to be exercised through: the fixture module folds S1
// through S4 into one tree, and a clean run must finalize every one of its
// call sites to a concrete type.
func TestRunTypeChecksTheDemoFixtureCleanly(t *testing.T) {
	names := nametbl.New()
	mod := fixture.Demo(names)

	result := driver.Run(names, mod)

	require.Equal(t, 0, result.Diags.Count(), result.Diags.Format())
	assert.True(t, result.TypeChecked)

	for _, name := range []string{"rf", "rg1", "rg2", "rop", "rh"} {
		v := varByName(t, mod, name)
		require.NotNil(t, v.Init, "%s has no initializer", name)
		assert.NotNil(t, v.Init.ValueType(), "%s's initializer must carry a resolved type after a clean run (spec §8.2)", name)
		assert.Same(t, ast.Type(v.Init.ValueType()), v.ValueType(), "%s's own value type must be inferred from its initializer", name)
	}
}

// TestRunLeavesTheHookStackBalanced checks spec §8.3: every PushScope during
// either pass has a matching PopScope, so a clean run returns the name
// table to its starting depth.
func TestRunLeavesTheHookStackBalanced(t *testing.T) {
	names := nametbl.New()
	mod := fixture.Demo(names)

	driver.Run(names, mod)

	assert.Equal(t, 0, names.Depth(), "a completed run must leave the hook stack exactly as deep as it started")
}

// TestRunIsIdempotentOnASecondPass checks that once a module type-checks
// cleanly, running the same pipeline over it again still reports nothing
// and leaves the tree in the same state (no pass assumes it is the first
// to ever see this tree).
func TestRunIsIdempotentOnASecondPass(t *testing.T) {
	names := nametbl.New()
	mod := fixture.Demo(names)

	first := driver.Run(names, mod)
	require.Equal(t, 0, first.Diags.Count(), first.Diags.Format())

	second := driver.Run(names, mod)
	require.Equal(t, 0, second.Diags.Count(), second.Diags.Format())
	assert.Equal(t, 0, names.Depth())
}

// TestRunCancelsTypeCheckAfterNameResolutionErrors checks spec §5
// "Cancellation": an unresolved name during name resolution must stop the
// pipeline before type check ever runs.
func TestRunCancelsTypeCheckAfterNameResolutionErrors(t *testing.T) {
	names := nametbl.New()
	mod := ast.NewModule(nil, nil)

	badRef := ast.NewVarDecl(names.Intern("r"), nil, nil)
	badRef.Init = ast.NewNameUse(names.Intern("nowhere"))
	mod.AddDecl(badRef)

	result := driver.Run(names, mod)

	assert.False(t, result.TypeChecked, "type check must not run once name resolution reported an error")
	assert.Greater(t, result.Diags.Count(), 0)
}

// TestRunStrictPermissionsRejectsImplicitLocalPermission exercises the
// strict-permissions project toggle end to end: with it on, a local
// variable declared with no explicit permission qualifier is an error.
func TestRunStrictPermissionsRejectsImplicitLocalPermission(t *testing.T) {
	names := nametbl.New()
	mod := ast.NewModule(nil, nil)

	body := ast.NewBlock()
	local := ast.NewVarDecl(names.Intern("n"), nil, nil)
	local.ScopeDepth = 1
	local.Init = &ast.Literal{Kind: ast.LitInt, Value: 1}
	body.Stmts = []ast.Node{local}

	f := &ast.FuncDecl{
		Name: names.Intern("main"),
		Sig:  &ast.FuncSigType{Params: ast.NewNodeList[*ast.VarDecl](0), ReturnType: nil},
		Body: body,
	}
	mod.AddDecl(f)

	lenient := driver.RunStrict(names, mod, false, 0)
	assert.Equal(t, 0, lenient.Diags.Count(), lenient.Diags.Format())

	names2 := nametbl.New()
	mod2 := ast.NewModule(nil, nil)
	body2 := ast.NewBlock()
	local2 := ast.NewVarDecl(names2.Intern("n"), nil, nil)
	local2.ScopeDepth = 1
	local2.Init = &ast.Literal{Kind: ast.LitInt, Value: 1}
	body2.Stmts = []ast.Node{local2}
	f2 := &ast.FuncDecl{
		Name: names2.Intern("main"),
		Sig:  &ast.FuncSigType{Params: ast.NewNodeList[*ast.VarDecl](0), ReturnType: nil},
		Body: body2,
	}
	mod2.AddDecl(f2)

	strict := driver.RunStrict(names2, mod2, true, 0)
	assert.Greater(t, strict.Diags.Count(), 0, "strict-permissions must reject a local with no explicit qualifier")
}
