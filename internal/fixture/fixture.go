// Package fixture builds a small, self-contained module IR in the shape
// the parser (spec §6's "Parser → core" external collaborator) would hand
// the core: declarations already hooked into a shared name table, function
// bodies as unchecked expression trees, value-type slots empty. Building
// the lexer and parser that would normally produce this tree is explicitly
// out of scope for this core (spec §1); this package exists so the CLI and
// the driver have something concrete to run the two passes over without
// reimplementing a front end.
//
// The module it builds deliberately exercises the spec's own end-to-end
// scenarios (§8 S1-S4): an implicit-self property access, an overloaded
// method call, a default-argument call, and an operator call.
package fixture

import (
	"github.com/aril-lang/arilc/internal/ast"
	"github.com/aril-lang/arilc/internal/nametbl"
	"github.com/aril-lang/arilc/internal/sema"
)

// Demo builds the root module described above, interning every name through
// names so declaration sites and use sites that share a spelling share a
// handle, exactly as a real parser's symbol table would guarantee.
func Demo(names *nametbl.Table) *ast.ModuleNode {
	mod := ast.NewModule(nil, nil)
	permImm := &ast.PermType{Kind: ast.PermImm}

	demo := buildDemoStruct(names, permImm)
	mod.AddDecl(demo)

	h := buildDefaultArgFunc(names)
	mod.AddDecl(h)

	p := ast.NewVarDecl(names.Intern("p"), permImm, demo)
	mod.AddDecl(p)

	mod.AddDecl(callResult(names, "rf", propertyAccessCall(names)))
	mod.AddDecl(callResult(names, "rg1", overloadCall(names, ast.LitInt, 1)))
	mod.AddDecl(callResult(names, "rg2", overloadCall(names, ast.LitString, "a")))
	mod.AddDecl(callResult(names, "rop", operatorCall(names)))
	mod.AddDecl(callResult(names, "rh", defaultArgCall(names)))

	return mod
}

func paramList(params ...*ast.VarDecl) *ast.NodeList[*ast.VarDecl] {
	list := ast.NewNodeList[*ast.VarDecl](len(params))
	for i, p := range params {
		p.ParamIndex = i
		list.Add(p)
	}
	return list
}

// buildDemoStruct builds `struct Demo { x i32; _hidden i32; fn f() i32 { x }
// fn g(n i32) i32 { n } fn g(s &str) i32 { 0 } fn +(other Demo) i32 { 0 } }`
// (spec §8 S1 "implicit self", S2 "method overload", S4 "operator call").
func buildDemoStruct(names *nametbl.Table, permImm *ast.PermType) *ast.StructDecl {
	demo := ast.NewStructDecl(names.Intern("Demo"))

	xProp := ast.NewVarDecl(names.Intern("x"), permImm, sema.I32Type)
	demo.AddProperty(xProp)

	hidden := ast.NewVarDecl(names.Intern("_hidden"), permImm, sema.I32Type)
	demo.AddProperty(hidden)

	fSelf := ast.NewVarDecl(names.Intern("self"), nil, demo)
	fBody := ast.NewBlock()
	fBody.Stmts = []ast.Node{ast.NewNameUse(names.Intern("x"))}
	demo.AddMethod(&ast.FuncDecl{
		Name: names.Intern("f"),
		Sig:  &ast.FuncSigType{Params: paramList(fSelf), ReturnType: sema.I32Type},
		Body: fBody,
	})

	g1Self := ast.NewVarDecl(names.Intern("self"), nil, demo)
	nParam := ast.NewVarDecl(names.Intern("n"), nil, sema.I32Type)
	g1Body := ast.NewBlock()
	g1Body.Stmts = []ast.Node{ast.NewNameUse(names.Intern("n"))}
	demo.AddMethod(&ast.FuncDecl{
		Name: names.Intern("g"),
		Sig:  &ast.FuncSigType{Params: paramList(g1Self, nParam), ReturnType: sema.I32Type},
		Body: g1Body,
	})

	g2Self := ast.NewVarDecl(names.Intern("self"), nil, demo)
	sParam := ast.NewVarDecl(names.Intern("s"), nil, &ast.RefType{ValueType: sema.StrType, Perm: permImm})
	g2Body := ast.NewBlock()
	g2Body.Stmts = []ast.Node{&ast.Literal{Kind: ast.LitInt, Value: 0}}
	demo.AddMethod(&ast.FuncDecl{
		Name: names.Intern("g"),
		Sig:  &ast.FuncSigType{Params: paramList(g2Self, sParam), ReturnType: sema.I32Type},
		Body: g2Body,
	})

	plusSelf := ast.NewVarDecl(names.Intern("self"), nil, demo)
	otherParam := ast.NewVarDecl(names.Intern("other"), nil, demo)
	plusBody := ast.NewBlock()
	plusBody.Stmts = []ast.Node{&ast.Literal{Kind: ast.LitInt, Value: 0}}
	demo.AddMethod(&ast.FuncDecl{
		Name: names.Intern("+"),
		Sig:  &ast.FuncSigType{Params: paramList(plusSelf, otherParam), ReturnType: sema.I32Type},
		Body: plusBody,
	})

	return demo
}

// buildDefaultArgFunc builds `fn h(a i32, b i32 = 7) i32 { a }` (spec §8 S3
// "default argument").
func buildDefaultArgFunc(names *nametbl.Table) *ast.FuncDecl {
	aParam := ast.NewVarDecl(names.Intern("a"), nil, sema.I32Type)
	bParam := ast.NewVarDecl(names.Intern("b"), nil, sema.I32Type)
	bParam.Init = &ast.Literal{Kind: ast.LitInt, Value: 7}

	body := ast.NewBlock()
	body.Stmts = []ast.Node{ast.NewNameUse(names.Intern("a"))}

	return &ast.FuncDecl{
		Name: names.Intern("h"),
		Sig:  &ast.FuncSigType{Params: paramList(aParam, bParam), ReturnType: sema.I32Type},
		Body: body,
	}
}

func callResult(names *nametbl.Table, varName string, init ast.Expr) *ast.VarDecl {
	v := ast.NewVarDecl(names.Intern(varName), nil, nil)
	v.Init = init
	return v
}

func propertyAccessCall(names *nametbl.Table) ast.Expr {
	call := ast.NewFnCall(ast.NewNameUse(names.Intern("p")))
	call.MethProp = ast.NewNameUse(names.Intern("f"))
	return call
}

func overloadCall(names *nametbl.Table, kind ast.LiteralKind, value any) ast.Expr {
	call := ast.NewFnCall(ast.NewNameUse(names.Intern("p")))
	call.MethProp = ast.NewNameUse(names.Intern("g"))
	call.Args = []ast.Expr{&ast.Literal{Kind: kind, Value: value}}
	return call
}

func operatorCall(names *nametbl.Table) ast.Expr {
	return ast.NewOperatorCall(
		ast.NewNameUse(names.Intern("p")),
		names.Intern("+"),
		ast.NewNameUse(names.Intern("p")),
	)
}

func defaultArgCall(names *nametbl.Table) ast.Expr {
	call := ast.NewFnCall(ast.NewNameUse(names.Intern("h")))
	call.Args = []ast.Expr{&ast.Literal{Kind: ast.LitInt, Value: 1}}
	return call
}
