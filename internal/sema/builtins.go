package sema

import "github.com/aril-lang/arilc/internal/ast"

// Shared singleton instances for the built-in primitive types. Type nodes
// are arena-shared and compared by pointer identity (spec §3 "Ownership");
// using one instance per primitive kind keeps that identity meaningful for
// primitives instead of every literal minting its own copy.
var (
	VoidType = &ast.PrimitiveType{Kind: ast.PrimVoid}
	BoolType = &ast.PrimitiveType{Kind: ast.PrimBool}
	I8Type   = &ast.PrimitiveType{Kind: ast.PrimI8}
	I16Type  = &ast.PrimitiveType{Kind: ast.PrimI16}
	I32Type  = &ast.PrimitiveType{Kind: ast.PrimI32}
	I64Type  = &ast.PrimitiveType{Kind: ast.PrimI64}
	U8Type   = &ast.PrimitiveType{Kind: ast.PrimU8}
	U16Type  = &ast.PrimitiveType{Kind: ast.PrimU16}
	U32Type  = &ast.PrimitiveType{Kind: ast.PrimU32}
	U64Type  = &ast.PrimitiveType{Kind: ast.PrimU64}
	F32Type  = &ast.PrimitiveType{Kind: ast.PrimF32}
	F64Type  = &ast.PrimitiveType{Kind: ast.PrimF64}
	StrType  = &ast.PrimitiveType{Kind: ast.PrimStr}
)

func primitiveByKind(k ast.PrimitiveKind) *ast.PrimitiveType {
	switch k {
	case ast.PrimVoid:
		return VoidType
	case ast.PrimBool:
		return BoolType
	case ast.PrimI8:
		return I8Type
	case ast.PrimI16:
		return I16Type
	case ast.PrimI32:
		return I32Type
	case ast.PrimI64:
		return I64Type
	case ast.PrimU8:
		return U8Type
	case ast.PrimU16:
		return U16Type
	case ast.PrimU32:
		return U32Type
	case ast.PrimU64:
		return U64Type
	case ast.PrimF32:
		return F32Type
	case ast.PrimF64:
		return F64Type
	case ast.PrimStr:
		return StrType
	default:
		return nil
	}
}
