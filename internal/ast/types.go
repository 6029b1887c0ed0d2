package ast

// PermKind enumerates the permission/mutability qualifiers a reference or
// pointer type carries (spec Glossary "Permission").
type PermKind uint8

const (
	PermImm PermKind = iota
	PermMut
	PermMut1
	PermUni
	PermConst
	PermOpaque
)

func (p PermKind) String() string {
	switch p {
	case PermImm:
		return "imm"
	case PermMut:
		return "mut"
	case PermMut1:
		return "mut1"
	case PermUni:
		return "uni"
	case PermConst:
		return "const"
	case PermOpaque:
		return "opaque"
	default:
		return "?perm"
	}
}

// PermType is the permission qualifier attached to every reference/pointer
// type (spec §3 "Type declarations").
type PermType struct {
	Header
	Kind PermKind
}

func (*PermType) Tag() Tag                    { return TagPermType }
func (*PermType) TypeKind() string            { return "PERM" }
func (*PermType) MethodNamespace() *Namespace { return nil }

// AllocKind enumerates allocation strategies a pointer/reference type can
// name (spec Glossary "Allocator").
type AllocKind uint8

const (
	AllocDefault AllocKind = iota
	AllocHeap
	AllocArena
	AllocRefCounted
)

func (a AllocKind) String() string {
	switch a {
	case AllocHeap:
		return "heap"
	case AllocArena:
		return "arena"
	case AllocRefCounted:
		return "rc"
	default:
		return "default"
	}
}

// AllocatorType names an allocation strategy attached to a pointer/reference
// type.
type AllocatorType struct {
	Header
	Kind AllocKind
}

func (*AllocatorType) Tag() Tag                    { return TagAllocatorType }
func (*AllocatorType) TypeKind() string            { return "ALLOCATOR" }
func (*AllocatorType) MethodNamespace() *Namespace { return nil }

// PrimitiveKind enumerates the built-in scalar types.
type PrimitiveKind uint8

const (
	PrimVoid PrimitiveKind = iota
	PrimBool
	PrimI8
	PrimI16
	PrimI32
	PrimI64
	PrimU8
	PrimU16
	PrimU32
	PrimU64
	PrimF32
	PrimF64
	PrimStr
)

func (p PrimitiveKind) String() string {
	names := map[PrimitiveKind]string{
		PrimVoid: "void", PrimBool: "bool",
		PrimI8: "i8", PrimI16: "i16", PrimI32: "i32", PrimI64: "i64",
		PrimU8: "u8", PrimU16: "u16", PrimU32: "u32", PrimU64: "u64",
		PrimF32: "f32", PrimF64: "f64", PrimStr: "str",
	}
	if s, ok := names[p]; ok {
		return s
	}
	return "?prim"
}

// PrimitiveType is a built-in scalar type (i32, bool, str, ...).
type PrimitiveType struct {
	Header
	Kind PrimitiveKind
}

func (*PrimitiveType) Tag() Tag                    { return TagPrimitiveType }
func (p *PrimitiveType) TypeKind() string          { return "PRIMITIVE" }
func (*PrimitiveType) MethodNamespace() *Namespace { return nil }

// String returns the primitive's spelling, e.g. "i32".
func (p *PrimitiveType) String() string { return p.Kind.String() }

// ArrayType is a fixed-size array type: Size elements of ElementType.
type ArrayType struct {
	Header
	Size        int
	ElementType Type
}

func (*ArrayType) Tag() Tag                    { return TagArrayType }
func (*ArrayType) TypeKind() string            { return "ARRAY" }
func (*ArrayType) MethodNamespace() *Namespace { return nil }

// PointerType is an owning or raw pointer to ValueType, permission-qualified
// and allocator-tagged.
type PointerType struct {
	Header
	ValueType Type
	Perm      *PermType
	Allocator *AllocatorType
	Scope     string // lightweight lifetime/region tag, carried but not enforced here
}

func (*PointerType) Tag() Tag                    { return TagPointerType }
func (*PointerType) TypeKind() string            { return "POINTER" }
func (*PointerType) MethodNamespace() *Namespace { return nil }

// RefType is a borrowed reference to ValueType: same shape as PointerType
// plus nullability and an array-ref discriminator (spec §3).
type RefType struct {
	Header
	ValueType Type
	Perm      *PermType
	Allocator *AllocatorType
	Scope     string
	Nullable  bool
	ArrayRef  bool // true when this reference is to an array's backing storage
}

func (*RefType) Tag() Tag                    { return TagRefType }
func (*RefType) TypeKind() string            { return "REF" }
func (*RefType) MethodNamespace() *Namespace { return nil }

// FuncSigType is a function signature: an ordered parameter list (as
// VarDecl, so defaults and permissions attach naturally) and a return type.
type FuncSigType struct {
	Header
	Params     *NodeList[*VarDecl]
	ReturnType Type
}

func (*FuncSigType) Tag() Tag                    { return TagFuncSigType }
func (*FuncSigType) TypeKind() string            { return "FUNCSIG" }
func (*FuncSigType) MethodNamespace() *Namespace { return nil }

// StructDecl is a struct-like type: an ordered list of properties and
// methods, plus a combined lookup namespace so method-call lowering (spec
// §4.4) can look up either kind by name in one place.
type StructDecl struct {
	Header
	Typed
	Name             *NameHandle
	Properties       *NodeList[*VarDecl]
	Methods          *NodeList[*FuncDecl]
	MethProps        *Namespace // properties and method overload-chain heads, by name
	Opaque           bool       // forward-declared with no visible layout
	PrivateNoDefault bool       // fields are private by default unless marked otherwise
	IsForward        bool
}

func (*StructDecl) Tag() Tag                 { return TagStructDecl }
func (*StructDecl) TypeKind() string         { return "STRUCT" }
func (s *StructDecl) MethodNamespace() *Namespace { return s.MethProps }
func (s *StructDecl) DeclName() *NameHandle  { return s.Name }

// NewStructDecl creates an empty struct declaration.
func NewStructDecl(name *NameHandle) *StructDecl {
	return &StructDecl{
		Name:       name,
		Properties: NewNodeList[*VarDecl](4),
		Methods:    NewNodeList[*FuncDecl](4),
		MethProps:  NewNamespace(),
	}
}

// AddProperty registers a property VarDecl both in the ordered list and the
// lookup namespace, marking it as a method/property member.
func (s *StructDecl) AddProperty(v *VarDecl) bool {
	v.IsMethodOrProperty = true
	if !s.MethProps.Set(v.Name, v) {
		return false
	}
	s.Properties.Add(v)
	return true
}

// AddMethod registers a method FuncDecl. If a method with the same name
// already exists, f is linked onto its overload chain instead of replacing
// it (spec §4.5 "Overload chain").
func (s *StructDecl) AddMethod(f *FuncDecl) {
	f.IsMethodOrProperty = true
	if existing, ok := s.MethProps.Find(f.Name); ok {
		if head, ok := existing.(*FuncDecl); ok {
			tail := head
			for tail.NextOverload != nil {
				tail = tail.NextOverload
			}
			tail.NextOverload = f
			s.Methods.Add(f)
			return
		}
	}
	s.MethProps.Overwrite(f.Name, f)
	s.Methods.Add(f)
}

// Implements TypeKind's MethodNamespace with a pointer receiver value check,
// satisfying the Type interface via methods declared on *StructDecl.
var _ Type = (*StructDecl)(nil)
var _ Decl = (*StructDecl)(nil)
