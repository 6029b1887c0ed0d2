// Package ast implements the heterogeneous IR node model described in spec
// §3 (Data model) and §2 components 2-3 (IR node model, node container
// utilities). Node kinds are modeled as a tagged sum: every concrete type
// carries a Tag() and a common position header, and passes dispatch on the
// tag with a type switch (see internal/sema) rather than through a class
// hierarchy, per the spec's Design Notes (§9).
//
// Grounded on original_source/src/c-compiler's ast.h/ir.h node shapes
// (AstNode header + per-kind struct), adapted to Go: instead of a C tagged
// union with an asttype field read by a big switch, every node is its own
// Go struct embedding Header, and Tag() returns a Go-idiomatic enum used the
// same way the C "asttype" field is used in ast.c's astPrintNode.
package ast

import "github.com/aril-lang/arilc/internal/token"

// Tag identifies a node's concrete kind. Corresponds to the C original's
// "asttype" enum.
type Tag uint8

const (
	TagInvalid Tag = iota

	// Declarations
	TagVarDecl
	TagFuncDecl

	// Type declarations
	TagStructDecl
	TagArrayType
	TagPointerType
	TagRefType
	TagFuncSigType
	TagPermType
	TagAllocatorType
	TagPrimitiveType

	// Expressions
	TagLiteral
	TagNameUse
	TagFnCall
	TagBorrow
	TagDeref
	TagBlock
	TagWhile
	TagAssign
	TagTupleReturn
	TagCopy

	// Module
	TagModule
)

func (t Tag) String() string {
	switch t {
	case TagVarDecl:
		return "VarDecl"
	case TagFuncDecl:
		return "FuncDecl"
	case TagStructDecl:
		return "StructDecl"
	case TagArrayType:
		return "ArrayType"
	case TagPointerType:
		return "PointerType"
	case TagRefType:
		return "RefType"
	case TagFuncSigType:
		return "FuncSigType"
	case TagPermType:
		return "PermType"
	case TagAllocatorType:
		return "AllocatorType"
	case TagPrimitiveType:
		return "PrimitiveType"
	case TagLiteral:
		return "Literal"
	case TagNameUse:
		return "NameUse"
	case TagFnCall:
		return "FnCall"
	case TagBorrow:
		return "Borrow"
	case TagDeref:
		return "Deref"
	case TagBlock:
		return "Block"
	case TagWhile:
		return "While"
	case TagAssign:
		return "Assign"
	case TagTupleReturn:
		return "TupleReturn"
	case TagCopy:
		return "Copy"
	case TagModule:
		return "Module"
	default:
		return "Invalid"
	}
}

// Node is the common interface satisfied by every IR node: declarations,
// types, expressions, statements, and the module node.
type Node interface {
	Tag() Tag
	Pos() token.Position
}

// Header is embedded in every concrete node and carries the lexer position
// metadata the parser attaches (spec §6).
type Header struct {
	Position token.Position
}

// Pos returns the node's source position.
func (h Header) Pos() token.Position { return h.Position }

// Typed is embedded in every expression node (and in declaration nodes,
// which per spec §3 also carry a value-type slot). Before type check the
// slot is nil; after, it is non-nil iff no fatal typing error was reported
// for that subtree (spec §3 "Value-type slot").
type Typed struct {
	VType Type
}

// ValueType returns the slot's current contents, or nil if not yet filled.
func (t *Typed) ValueType() Type { return t.VType }

// SetValueType fills the slot.
func (t *Typed) SetValueType(ty Type) { t.VType = ty }

// Expr is any expression node: it carries a value-type slot and can appear
// as a call argument, a block statement, an operand, etc.
type Expr interface {
	Node
	ValueType() Type
	SetValueType(Type)
}

// Decl is any declaration node: it carries a name handle and a value-type
// slot.
type Decl interface {
	Node
	DeclName() *NameHandle
	ValueType() Type
	SetValueType(Type)
}

// Type is any type node — itself a kind of declaration (spec §3 groups
// "Type declarations" under Declaration nodes), but also the thing value-type
// slots point at. Type nodes are arena-shared: many expression value-type
// slots may point at the same *StructDecl, *PrimitiveType, and so on
// (spec §3 "Ownership").
type Type interface {
	Node
	TypeKind() string
	// MethodNamespace returns the method/property namespace exposed by this
	// type, or nil if the type is not method-typed (spec §4.4 step 4,
	// Glossary "Method-typed").
	MethodNamespace() *Namespace
}
