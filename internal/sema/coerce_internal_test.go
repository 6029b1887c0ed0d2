package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aril-lang/arilc/internal/ast"
)

func TestClassifyCoercionExactMatch(t *testing.T) {
	assert.Equal(t, coerceExact, classifyCoercion(I32Type, I32Type))
}

func TestClassifyCoercionWidensSameSignedness(t *testing.T) {
	assert.Equal(t, coerceWiden, classifyCoercion(I8Type, I32Type))
	assert.Equal(t, coerceWiden, classifyCoercion(U16Type, U64Type))
	assert.Equal(t, coerceNone, classifyCoercion(I32Type, I8Type), "narrowing is not a free coercion")
}

func TestClassifyCoercionAnyNumericWidensToF64(t *testing.T) {
	assert.Equal(t, coerceWiden, classifyCoercion(I32Type, F64Type))
	assert.Equal(t, coerceWiden, classifyCoercion(U8Type, F64Type))
	assert.Equal(t, coerceWiden, classifyCoercion(F32Type, F64Type))
}

func TestClassifyCoercionAutoRefAndDeref(t *testing.T) {
	perm := &ast.PermType{Kind: ast.PermImm}
	ref := &ast.RefType{ValueType: I32Type, Perm: perm}

	assert.Equal(t, coerceAutoRef, classifyCoercion(ref, I32Type), "a &i32 used where i32 is expected is one auto-deref")
	assert.Equal(t, coerceAutoRef, classifyCoercion(I32Type, ref), "an i32 used where &i32 is expected is one auto-ref")
}

func TestClassifyCoercionRejectsUnrelatedTypes(t *testing.T) {
	assert.Equal(t, coerceNone, classifyCoercion(I32Type, BoolType))
	assert.Equal(t, coerceNone, classifyCoercion(StrType, I32Type))
}

func TestCoercionRanksExactOverWidenOverAutoRef(t *testing.T) {
	assert.Greater(t, int(coerceExact), int(coerceWiden))
	assert.Greater(t, int(coerceWiden), int(coerceAutoRef))
	assert.Greater(t, int(coerceAutoRef), int(coerceNone))
}

func TestDereferencedValueTypePeelsOneLevel(t *testing.T) {
	perm := &ast.PermType{Kind: ast.PermImm}
	ptr := &ast.PointerType{ValueType: I32Type, Perm: perm}

	assert.Same(t, ast.Type(I32Type), dereferencedValueType(ptr))
	assert.Same(t, ast.Type(I32Type), dereferencedValueType(I32Type), "a non-reference type dereferences to itself")
}

func TestCoercesInsertsAtMostOneAutoDeref(t *testing.T) {
	perm := &ast.PermType{Kind: ast.PermImm}
	inner := &ast.Literal{Kind: ast.LitInt, Value: 1}
	inner.SetValueType(&ast.RefType{ValueType: I32Type, Perm: perm})

	var slot ast.Expr = inner
	st := NewState(TypeCheck, nil, nil)
	ok := coerces(st, I32Type, &slot)

	assert.True(t, ok)
	deref, isDeref := slot.(*ast.DerefExpr)
	if !isDeref {
		t.Fatalf("expected slot to be wrapped in a DerefExpr, got %T", slot)
	}
	assert.Same(t, ast.Type(I32Type), deref.ValueType())
}
