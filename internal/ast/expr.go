package ast

// LiteralKind enumerates the literal forms the parser can hand the core.
type LiteralKind uint8

const (
	LitInt LiteralKind = iota
	LitFloat
	LitString
	LitBool
)

// Literal is a constant value with no sub-expressions.
type Literal struct {
	Header
	Typed
	Kind  LiteralKind
	Value any
}

func (*Literal) Tag() Tag { return TagLiteral }

var _ Expr = (*Literal)(nil)

// NameUseKind discriminates a name-use node's resolved role (spec §3
// "Expression nodes: ... name use (two discriminated forms once resolved:
// value-name and type-name)", extended with the member-name form the
// implicit-self rewrite and method-call lowering both produce).
type NameUseKind uint8

const (
	// Unresolved is the parser's initial tag, before name resolution runs.
	Unresolved NameUseKind = iota
	VarNameUse
	TypeNameUse
	MbrNameUse
)

func (k NameUseKind) String() string {
	switch k {
	case VarNameUse:
		return "VarNameUse"
	case TypeNameUse:
		return "TypeNameUse"
	case MbrNameUse:
		return "MbrNameUse"
	default:
		return "Unresolved"
	}
}

// NameUse is an identifier reference. Qualifiers holds a dotted module path
// rooted at Base, resolved iteratively before the final name lookup (spec
// §4.3 step 1; supplemented from original_source's NameList/qualNames).
type NameUse struct {
	Header
	Typed
	Kind       NameUseKind
	Name       *NameHandle
	Qualifiers []*NameHandle
	Base       *ModuleNode // base module the qualifiers resolve from, or nil if unqualified
	Decl       Decl        // bound declaration, filled by name resolution
}

func (*NameUse) Tag() Tag { return TagNameUse }

// TypeKind and MethodNamespace let a resolved NameUse stand in directly for
// a named type in type position (a VarDecl's declared type, an array's
// element type, ...): once name resolution has bound Decl to a type
// declaration, the NameUse node itself is both the Expr used to refer to it
// and the Type it denotes (spec §4.3 step 4 "type-name" reclassification).
// Before resolution, or if Decl does not denote a type, these report an
// "UNRESOLVED" placeholder rather than panicking, so a misused name fails
// type checking with a normal diagnostic instead of crashing the compiler.
func (n *NameUse) TypeKind() string {
	if t, ok := n.Decl.(Type); ok {
		return t.TypeKind()
	}
	return "UNRESOLVED"
}

func (n *NameUse) MethodNamespace() *Namespace {
	if t, ok := n.Decl.(Type); ok {
		return t.MethodNamespace()
	}
	return nil
}

var _ Expr = (*NameUse)(nil)
var _ Type = (*NameUse)(nil)

// NewNameUse creates an unresolved, unqualified name use.
func NewNameUse(name *NameHandle) *NameUse {
	return &NameUse{Kind: Unresolved, Name: name}
}

// NewQualifiedNameUse creates a name use qualified by a dotted module path
// rooted at base.
func NewQualifiedNameUse(base *ModuleNode, qualifiers []*NameHandle, name *NameHandle) *NameUse {
	return &NameUse{Kind: Unresolved, Name: name, Qualifiers: qualifiers, Base: base}
}

// ImplicitCallOperator is the interned name used when a method-typed value
// is called with no explicit member name, e.g. a functor struct invoked as
// `f(x)` (spec §4.4 step 4: "set it to the implicit call operator, interned
// as the two-character sequence ()").
const ImplicitCallOperator = "()"

// FnCall is the single generic node standing in for a method call, a
// property access, a free-function call, or an operator expression — all
// syntactically identical until type check determines which one it is (spec
// §1, §4.4). Args == nil means no argument list was written at all (a bare
// property access like `p.x`); a non-nil but empty slice means `()` was
// written with zero arguments.
type FnCall struct {
	Header
	Typed
	Objfn    Expr
	MethProp *NameUse
	Args     []Expr
}

func (*FnCall) Tag() Tag { return TagFnCall }

var _ Expr = (*FnCall)(nil)

// NewFnCall creates a call node with no method/property name and no
// argument list (filled in later by lowering or by the parser).
func NewFnCall(objfn Expr) *FnCall {
	return &FnCall{Objfn: objfn}
}

// NewOperatorCall creates the parsed form of an operator expression, e.g.
// `a + b`: a call on `a` whose member name is the interned operator symbol
// and whose sole argument is `b` (spec Design Notes "Operator sugar";
// original_source's newFnCallOp).
func NewOperatorCall(lhs Expr, op *NameHandle, rhs Expr) *FnCall {
	return &FnCall{
		Objfn:    lhs,
		MethProp: &NameUse{Kind: Unresolved, Name: op},
		Args:     []Expr{rhs},
	}
}

// HasArgList reports whether a parenthesized argument list was written at
// all, as opposed to a bare property-style access.
func (f *FnCall) HasArgList() bool { return f.Args != nil }

// BorrowExpr creates a reference to Inner with the given permission
// (spec §4.7 auto-ref is this same shape, inserted implicitly).
type BorrowExpr struct {
	Header
	Typed
	Inner Expr
	Perm  *PermType
}

func (*BorrowExpr) Tag() Tag { return TagBorrow }

var _ Expr = (*BorrowExpr)(nil)

// DerefExpr dereferences Inner one level (spec §4.7 auto-deref is this same
// shape, inserted implicitly).
type DerefExpr struct {
	Header
	Typed
	Inner Expr
}

func (*DerefExpr) Tag() Tag { return TagDeref }

var _ Expr = (*DerefExpr)(nil)

// BlockExpr is a braced sequence of statements; an expression-oriented block
// whose value is that of its final statement (Void if empty or the final
// statement isn't an expression).
type BlockExpr struct {
	Header
	Typed
	Stmts []Node
}

func (*BlockExpr) Tag() Tag { return TagBlock }

var _ Expr = (*BlockExpr)(nil)

// NewBlock creates an empty block.
func NewBlock() *BlockExpr { return &BlockExpr{} }

// WhileExpr is a while loop: Cond must coerce to boolean (spec §4.4 "While
// node").
type WhileExpr struct {
	Header
	Typed
	Cond Expr
	Body *BlockExpr
}

func (*WhileExpr) Tag() Tag { return TagWhile }

var _ Expr = (*WhileExpr)(nil)

// AssignExpr assigns Value into Target.
type AssignExpr struct {
	Header
	Typed
	Target Expr
	Value  Expr
}

func (*AssignExpr) Tag() Tag { return TagAssign }

var _ Expr = (*AssignExpr)(nil)

// TupleReturnExpr bundles multiple return values into one expression node.
type TupleReturnExpr struct {
	Header
	Typed
	Values []Expr
}

func (*TupleReturnExpr) Tag() Tag { return TagTupleReturn }

var _ Expr = (*TupleReturnExpr)(nil)

// CopyExpr wraps an argument expression that must be duplicated rather than
// moved because it is bound to an owning parameter type but is not itself a
// move-capable expression (spec §4.6 step 1's "copy handler"). Inserted only
// by argument finalization during type check; legality of the move it
// replaces (versus requiring this copy) is a flow-analysis concern this core
// does not perform (spec §1 Non-goals).
type CopyExpr struct {
	Header
	Typed
	Inner Expr
}

func (*CopyExpr) Tag() Tag { return TagCopy }

var _ Expr = (*CopyExpr)(nil)
