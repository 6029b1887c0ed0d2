package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aril-lang/arilc/internal/ast"
	"github.com/aril-lang/arilc/internal/nametbl"
)

func TestNodeListAddAndAt(t *testing.T) {
	names := nametbl.New()
	list := ast.NewNodeList[*ast.VarDecl](2)

	a := ast.NewVarDecl(names.Intern("a"), nil, nil)
	b := ast.NewVarDecl(names.Intern("b"), nil, nil)
	list.Add(a)
	list.Add(b)

	require.Equal(t, 2, list.Len())
	assert.Same(t, a, list.At(0))
	assert.Same(t, b, list.At(1))
}

func TestNodeListInsertShiftsRight(t *testing.T) {
	names := nametbl.New()
	list := ast.NewNodeList[*ast.VarDecl](2)

	a := ast.NewVarDecl(names.Intern("a"), nil, nil)
	b := ast.NewVarDecl(names.Intern("b"), nil, nil)
	list.Add(a)
	list.Add(b)

	self := ast.NewVarDecl(names.Intern("self"), nil, nil)
	list.Insert(0, self)

	require.Equal(t, 3, list.Len())
	assert.Same(t, self, list.At(0), "receiver must be prepended as argument 0")
	assert.Same(t, a, list.At(1))
	assert.Same(t, b, list.At(2))
}

func TestNodeListNilLenIsZero(t *testing.T) {
	var list *ast.NodeList[*ast.VarDecl]
	assert.Equal(t, 0, list.Len())
	assert.Nil(t, list.Slice())
}

func TestNamespaceSetRejectsDuplicate(t *testing.T) {
	names := nametbl.New()
	ns := ast.NewNamespace()

	x := names.Intern("x")
	d1 := ast.NewVarDecl(x, nil, nil)
	d2 := ast.NewVarDecl(x, nil, nil)

	assert.True(t, ns.Set(x, d1))
	assert.False(t, ns.Set(x, d2), "a second Set for the same name must be rejected")

	found, ok := ns.Find(x)
	assert.True(t, ok)
	assert.Same(t, d1, found, "the first binding must survive a rejected duplicate Set")
}

func TestNamespaceOverwriteReplacesForwardDecl(t *testing.T) {
	names := nametbl.New()
	ns := ast.NewNamespace()

	name := names.Intern("f")
	forward := &ast.FuncDecl{Name: name}
	ns.Set(name, forward)

	full := &ast.FuncDecl{Name: name, Body: ast.NewBlock()}
	ns.Overwrite(name, full)

	found, ok := ns.Find(name)
	require.True(t, ok)
	assert.Same(t, full, found)
}

func TestFuncDeclOverloadsInDeclarationOrder(t *testing.T) {
	names := nametbl.New()
	s := ast.NewStructDecl(names.Intern("Demo"))

	g1 := &ast.FuncDecl{Name: names.Intern("g"), Sig: &ast.FuncSigType{Params: ast.NewNodeList[*ast.VarDecl](0)}}
	g2 := &ast.FuncDecl{Name: names.Intern("g"), Sig: &ast.FuncSigType{Params: ast.NewNodeList[*ast.VarDecl](0)}}
	s.AddMethod(g1)
	s.AddMethod(g2)

	overloads := g1.Overloads()
	require.Len(t, overloads, 2)
	assert.Same(t, g1, overloads[0])
	assert.Same(t, g2, overloads[1])
}

func TestStructDeclAddPropertyMarksMember(t *testing.T) {
	names := nametbl.New()
	s := ast.NewStructDecl(names.Intern("Demo"))
	x := ast.NewVarDecl(names.Intern("x"), nil, nil)

	ok := s.AddProperty(x)

	require.True(t, ok)
	assert.True(t, x.IsMethodOrProperty)
	assert.Equal(t, 1, s.Properties.Len())
	found, exists := s.MethProps.Find(names.Intern("x"))
	require.True(t, exists)
	assert.Same(t, x, found)
}
