package sema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aril-lang/arilc/internal/ast"
	"github.com/aril-lang/arilc/internal/diag"
	"github.com/aril-lang/arilc/internal/driver"
	"github.com/aril-lang/arilc/internal/nametbl"
	"github.com/aril-lang/arilc/internal/sema"
)

func params(ps ...*ast.VarDecl) *ast.NodeList[*ast.VarDecl] {
	list := ast.NewNodeList[*ast.VarDecl](len(ps))
	for i, p := range ps {
		p.ParamIndex = i
		list.Add(p)
	}
	return list
}

// TestS1ImplicitSelf builds `struct P { x i32; fn f() i32 { x } }` and checks
// that `x` inside f's body is rewritten into a self-qualified property
// access with value type i32 (spec §8 scenario S1).
func TestS1ImplicitSelf(t *testing.T) {
	names := nametbl.New()
	mod := ast.NewModule(nil, nil)
	permImm := &ast.PermType{Kind: ast.PermImm}

	p := ast.NewStructDecl(names.Intern("P"))
	p.AddProperty(ast.NewVarDecl(names.Intern("x"), permImm, sema.I32Type))

	selfParam := ast.NewVarDecl(names.Intern("self"), nil, p)
	body := ast.NewBlock()
	body.Stmts = []ast.Node{ast.NewNameUse(names.Intern("x"))}
	p.AddMethod(&ast.FuncDecl{
		Name: names.Intern("f"),
		Sig:  &ast.FuncSigType{Params: params(selfParam), ReturnType: sema.I32Type},
		Body: body,
	})
	mod.AddDecl(p)

	result := driver.Run(names, mod)
	require.Equal(t, 0, result.Diags.Count(), result.Diags.Format())

	rewritten := body.Stmts[0]
	fn, ok := rewritten.(*ast.FnCall)
	require.True(t, ok, "the bare name use must have been rewritten into a call/property-access node")

	selfUse, ok := fn.Objfn.(*ast.NameUse)
	require.True(t, ok)
	assert.Equal(t, "self", selfUse.Name.Text())

	require.NotNil(t, fn.MethProp)
	assert.Equal(t, "x", fn.MethProp.Name.Text())
	assert.Same(t, ast.Type(sema.I32Type), fn.ValueType(), "the lowered property access must be typed i32")
}

// TestS3DefaultArgument builds `fn h(a i32, b i32 = 7) i32 { a }` and calls
// `h(1)`, checking the finalized call carries a synthesized second argument
// equal to the default expression (spec §8 scenario S3).
func TestS3DefaultArgument(t *testing.T) {
	names := nametbl.New()
	mod := ast.NewModule(nil, nil)

	aParam := ast.NewVarDecl(names.Intern("a"), nil, sema.I32Type)
	bParam := ast.NewVarDecl(names.Intern("b"), nil, sema.I32Type)
	bParam.Init = &ast.Literal{Kind: ast.LitInt, Value: 7}

	hBody := ast.NewBlock()
	hBody.Stmts = []ast.Node{ast.NewNameUse(names.Intern("a"))}
	h := &ast.FuncDecl{
		Name: names.Intern("h"),
		Sig:  &ast.FuncSigType{Params: params(aParam, bParam), ReturnType: sema.I32Type},
		Body: hBody,
	}
	mod.AddDecl(h)

	call := ast.NewFnCall(ast.NewNameUse(names.Intern("h")))
	call.Args = []ast.Expr{&ast.Literal{Kind: ast.LitInt, Value: 1}}
	result := ast.NewVarDecl(names.Intern("r"), nil, nil)
	result.Init = call
	mod.AddDecl(result)

	res := driver.Run(names, mod)
	require.Equal(t, 0, res.Diags.Count(), res.Diags.Format())

	require.Len(t, call.Args, 2, "finalization must produce an argument list of length n (spec §8.6)")
	defaultLit, ok := call.Args[1].(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, 7, defaultLit.Value)
	assert.Same(t, ast.Type(sema.I32Type), call.ValueType())
}

// TestBareIntraTypeMethodCallInjectsSelf builds
// `struct P { fn g(n i32) i32 { n }  fn f() i32 { g(1) } }` and checks that
// calling `g` from inside `f` without an explicit `self.` qualifier still
// lowers to a direct call with `self` inserted as argument 0 (spec §4.4
// step 6, SPEC_FULL §3: the bare name `g` binds to a *ast.FuncDecl, not a
// property VarDecl, so it never goes through the §4.3 step 3 self-rewrite).
func TestBareIntraTypeMethodCallInjectsSelf(t *testing.T) {
	names := nametbl.New()
	mod := ast.NewModule(nil, nil)

	p := ast.NewStructDecl(names.Intern("P"))

	gSelf := ast.NewVarDecl(names.Intern("self"), nil, p)
	nParam := ast.NewVarDecl(names.Intern("n"), nil, sema.I32Type)
	gBody := ast.NewBlock()
	gBody.Stmts = []ast.Node{ast.NewNameUse(names.Intern("n"))}
	p.AddMethod(&ast.FuncDecl{
		Name: names.Intern("g"),
		Sig:  &ast.FuncSigType{Params: params(gSelf, nParam), ReturnType: sema.I32Type},
		Body: gBody,
	})

	fSelf := ast.NewVarDecl(names.Intern("self"), nil, p)
	call := ast.NewFnCall(ast.NewNameUse(names.Intern("g")))
	call.Args = []ast.Expr{&ast.Literal{Kind: ast.LitInt, Value: 1}}
	fBody := ast.NewBlock()
	fBody.Stmts = []ast.Node{call}
	p.AddMethod(&ast.FuncDecl{
		Name: names.Intern("f"),
		Sig:  &ast.FuncSigType{Params: params(fSelf), ReturnType: sema.I32Type},
		Body: fBody,
	})
	mod.AddDecl(p)

	res := driver.Run(names, mod)
	require.Equal(t, 0, res.Diags.Count(), res.Diags.Format())

	require.Len(t, call.Args, 2, "self must be injected as argument 0 for a bare intra-type method call")
	selfArg, ok := call.Args[0].(*ast.NameUse)
	require.True(t, ok)
	assert.Equal(t, "self", selfArg.Name.Text())
	assert.Same(t, ast.Type(sema.I32Type), call.ValueType())
}

// TestS4OperatorCall builds `struct P { fn +(other P) i32 { 0 } }` and checks
// `a + b` lowers to a direct call on the `+` method (spec §8 scenario S4).
func TestS4OperatorCall(t *testing.T) {
	names := nametbl.New()
	mod := ast.NewModule(nil, nil)

	p := ast.NewStructDecl(names.Intern("P"))
	selfParam := ast.NewVarDecl(names.Intern("self"), nil, p)
	otherParam := ast.NewVarDecl(names.Intern("other"), nil, p)
	plusBody := ast.NewBlock()
	plusBody.Stmts = []ast.Node{&ast.Literal{Kind: ast.LitInt, Value: 0}}
	p.AddMethod(&ast.FuncDecl{
		Name: names.Intern("+"),
		Sig:  &ast.FuncSigType{Params: params(selfParam, otherParam), ReturnType: sema.I32Type},
		Body: plusBody,
	})
	mod.AddDecl(p)

	permImm := &ast.PermType{Kind: ast.PermImm}
	av := ast.NewVarDecl(names.Intern("a"), permImm, p)
	bv := ast.NewVarDecl(names.Intern("b"), permImm, p)
	mod.AddDecl(av)
	mod.AddDecl(bv)

	opCall := ast.NewOperatorCall(ast.NewNameUse(names.Intern("a")), names.Intern("+"), ast.NewNameUse(names.Intern("b")))
	sum := ast.NewVarDecl(names.Intern("sum"), nil, nil)
	sum.Init = opCall
	mod.AddDecl(sum)

	res := driver.Run(names, mod)
	require.Equal(t, 0, res.Diags.Count(), res.Diags.Format())

	call := opCall
	assert.Nil(t, call.MethProp, "a lowered method call clears methprop")
	fnUse, ok := call.Objfn.(*ast.NameUse)
	require.True(t, ok)
	plusDecl, ok := fnUse.Decl.(*ast.FuncDecl)
	require.True(t, ok)
	assert.Equal(t, "+", plusDecl.Name.Text())
	require.Len(t, call.Args, 2, "receiver must be inserted as argument 0")
}

// TestS4OperatorCallMissingOperatorIsNoMeth checks that `a + b` on a type
// with no `+` method raises ErrorNoMeth (spec §8 scenario S4, negative case).
func TestS4OperatorCallMissingOperatorIsNoMeth(t *testing.T) {
	names := nametbl.New()
	mod := ast.NewModule(nil, nil)

	p := ast.NewStructDecl(names.Intern("P"))
	mod.AddDecl(p)

	permImm := &ast.PermType{Kind: ast.PermImm}
	av := ast.NewVarDecl(names.Intern("a"), permImm, p)
	bv := ast.NewVarDecl(names.Intern("b"), permImm, p)
	mod.AddDecl(av)
	mod.AddDecl(bv)

	opCall := ast.NewOperatorCall(ast.NewNameUse(names.Intern("a")), names.Intern("+"), ast.NewNameUse(names.Intern("b")))
	sum := ast.NewVarDecl(names.Intern("sum"), nil, nil)
	sum.Init = opCall
	mod.AddDecl(sum)

	res := driver.Run(names, mod)
	require.Equal(t, 1, res.Diags.Count())
	assert.Equal(t, diag.ErrorNoMeth, res.Diags.Errors()[0].Kind)
}

// TestS5PrivateRejection checks that accessing a struct's `_hidden` property
// from outside raises ErrorNotPublic and leaves the call's value-type slot
// absent (spec §8 scenario S5).
func TestS5PrivateRejection(t *testing.T) {
	names := nametbl.New()
	mod := ast.NewModule(nil, nil)
	permImm := &ast.PermType{Kind: ast.PermImm}

	p := ast.NewStructDecl(names.Intern("P"))
	p.AddProperty(ast.NewVarDecl(names.Intern("_hidden"), permImm, sema.I32Type))
	mod.AddDecl(p)

	pv := ast.NewVarDecl(names.Intern("p"), permImm, p)
	mod.AddDecl(pv)

	access := ast.NewFnCall(ast.NewNameUse(names.Intern("p")))
	access.MethProp = ast.NewNameUse(names.Intern("_hidden"))
	r := ast.NewVarDecl(names.Intern("r"), nil, nil)
	r.Init = access
	mod.AddDecl(r)

	res := driver.Run(names, mod)
	require.Equal(t, 1, res.Diags.Count())
	assert.Equal(t, diag.ErrorNotPublic, res.Diags.Errors()[0].Kind)
	assert.Nil(t, access.ValueType(), "a failed access leaves the value-type slot absent")
}

// TestS6WhileConditionCoercion checks that `while 1 { }` raises ErrorInvType
// because an i32 literal does not coerce to bool (spec §8 scenario S6).
func TestS6WhileConditionCoercion(t *testing.T) {
	names := nametbl.New()
	mod := ast.NewModule(nil, nil)

	whileStmt := &ast.WhileExpr{
		Cond: &ast.Literal{Kind: ast.LitInt, Value: 1},
		Body: ast.NewBlock(),
	}
	body := ast.NewBlock()
	body.Stmts = []ast.Node{whileStmt}
	f := &ast.FuncDecl{
		Name: names.Intern("main"),
		Sig:  &ast.FuncSigType{Params: ast.NewNodeList[*ast.VarDecl](0), ReturnType: sema.VoidType},
		Body: body,
	}
	mod.AddDecl(f)

	res := driver.Run(names, mod)
	require.Equal(t, 1, res.Diags.Count())
	assert.Equal(t, diag.ErrorInvType, res.Diags.Errors()[0].Kind)
}

// TestS6WhileConditionAcceptsBool is the positive counterpart of S6: a
// genuinely boolean condition raises no diagnostic.
func TestS6WhileConditionAcceptsBool(t *testing.T) {
	names := nametbl.New()
	mod := ast.NewModule(nil, nil)

	whileStmt := &ast.WhileExpr{
		Cond: &ast.Literal{Kind: ast.LitBool, Value: true},
		Body: ast.NewBlock(),
	}
	body := ast.NewBlock()
	body.Stmts = []ast.Node{whileStmt}
	f := &ast.FuncDecl{
		Name: names.Intern("main"),
		Sig:  &ast.FuncSigType{Params: ast.NewNodeList[*ast.VarDecl](0), ReturnType: sema.VoidType},
		Body: body,
	}
	mod.AddDecl(f)

	res := driver.Run(names, mod)
	assert.Equal(t, 0, res.Diags.Count(), res.Diags.Format())
}
