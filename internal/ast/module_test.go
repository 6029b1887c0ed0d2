package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aril-lang/arilc/internal/ast"
	"github.com/aril-lang/arilc/internal/nametbl"
)

func TestModuleAddDeclRegistersPublicNames(t *testing.T) {
	names := nametbl.New()
	mod := ast.NewModule(nil, nil)

	v := ast.NewVarDecl(names.Intern("visible"), nil, nil)
	require.True(t, mod.AddDecl(v))

	found, ok := mod.Public.Find(names.Intern("visible"))
	assert.True(t, ok)
	assert.Same(t, v, found)
	assert.Equal(t, 1, mod.Decls.Len())
}

func TestModuleAddDeclSkipsPrivateNames(t *testing.T) {
	names := nametbl.New()
	mod := ast.NewModule(nil, nil)

	h := ast.NewVarDecl(names.Intern("_hidden"), nil, nil)
	require.True(t, mod.AddDecl(h))

	_, ok := mod.Public.Find(names.Intern("_hidden"))
	assert.False(t, ok, "a private declaration must not appear in the public namespace")
	assert.Equal(t, 1, mod.Decls.Len(), "it is still appended to the ordered declaration list")
}

func TestModuleAddDeclRejectsDuplicateName(t *testing.T) {
	names := nametbl.New()
	mod := ast.NewModule(nil, nil)
	name := names.Intern("x")

	assert.True(t, mod.AddDecl(ast.NewVarDecl(name, nil, nil)))
	assert.False(t, mod.AddDecl(ast.NewVarDecl(name, nil, nil)), "a second declaration with the same module-level name must be rejected")
}

func TestModuleLookupQualifiedWalksNestedModules(t *testing.T) {
	names := nametbl.New()
	root := ast.NewModule(nil, nil)
	child := ast.NewModule(names.Intern("io"), root)
	root.AddDecl(child)

	fn := ast.NewVarDecl(names.Intern("read"), nil, nil)
	child.AddDecl(fn)

	found, err := root.LookupQualified([]*ast.NameHandle{names.Intern("io")}, names.Intern("read"))
	require.NoError(t, err)
	assert.Same(t, fn, found)
}

func TestModuleLookupQualifiedUnknownModule(t *testing.T) {
	names := nametbl.New()
	root := ast.NewModule(nil, nil)

	_, err := root.LookupQualified([]*ast.NameHandle{names.Intern("nope")}, names.Intern("x"))
	assert.Error(t, err)
}

func TestModuleLookupQualifiedNotAModule(t *testing.T) {
	names := nametbl.New()
	root := ast.NewModule(nil, nil)
	root.AddDecl(ast.NewVarDecl(names.Intern("notamodule"), nil, nil))

	_, err := root.LookupQualified([]*ast.NameHandle{names.Intern("notamodule")}, names.Intern("x"))
	assert.Error(t, err)
}
