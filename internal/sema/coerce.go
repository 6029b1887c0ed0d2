package sema

import "github.com/aril-lang/arilc/internal/ast"

// underlyingType unwraps a resolved *ast.NameUse standing in for a named
// type reference (spec §4.3 step 4) down to the type declaration it denotes,
// so every other helper in this file can compare and switch on concrete
// type nodes without caring whether the caller held the NameUse or the
// declaration itself.
func underlyingType(t ast.Type) ast.Type {
	if t == nil {
		return nil
	}
	if nu, ok := t.(*ast.NameUse); ok {
		if dt, ok2 := nu.Decl.(ast.Type); ok2 {
			return dt
		}
	}
	return t
}

// sameType compares two type references by the identity of the type node
// they denote (spec §3 "Ownership": type nodes are arena-shared, so pointer
// identity is the equality relation).
func sameType(a, b ast.Type) bool {
	a, b = underlyingType(a), underlyingType(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b
}

// dereferencedValueType peels one level of reference/pointer from t without
// mutating any expression (spec §4.4 step 3).
func dereferencedValueType(t ast.Type) ast.Type {
	t = underlyingType(t)
	if base, ok := derefOnce(t); ok {
		return base
	}
	return t
}

// derefOnce reports the pointee/referent type of a single-level
// reference or pointer type, or ok=false for anything else.
func derefOnce(t ast.Type) (ast.Type, bool) {
	switch ty := underlyingType(t).(type) {
	case *ast.RefType:
		return underlyingType(ty.ValueType), true
	case *ast.PointerType:
		return underlyingType(ty.ValueType), true
	default:
		return nil, false
	}
}

func asPrimitive(t ast.Type) *ast.PrimitiveType {
	if p, ok := underlyingType(t).(*ast.PrimitiveType); ok {
		return p
	}
	return nil
}

// intRank and uintRank order the fixed-width integer kinds by width within
// one signedness; a kind not present widens to nothing within its family.
var intRank = map[ast.PrimitiveKind]int{
	ast.PrimI8: 1, ast.PrimI16: 2, ast.PrimI32: 3, ast.PrimI64: 4,
}

var uintRank = map[ast.PrimitiveKind]int{
	ast.PrimU8: 1, ast.PrimU16: 2, ast.PrimU32: 3, ast.PrimU64: 4,
}

// widens formalizes the primitive-widening half of the coercion relation the
// spec leaves unspecified (§9 Open Questions): same-signedness integers
// widen to any wider sibling, and any integer or f32 widens to f64; f32
// widens from any narrower-or-equal integer kind is intentionally excluded
// (narrowing an i64 into an f32 loses precision silently, which this core
// declines to treat as a free coercion).
func widens(from, to ast.PrimitiveKind) bool {
	if from == to {
		return true
	}
	if fr, ok := intRank[from]; ok {
		if tr, ok2 := intRank[to]; ok2 {
			return fr < tr
		}
	}
	if fr, ok := uintRank[from]; ok {
		if tr, ok2 := uintRank[to]; ok2 {
			return fr < tr
		}
	}
	if to == ast.PrimF64 {
		_, isInt := intRank[from]
		_, isUint := uintRank[from]
		return isInt || isUint || from == ast.PrimF32
	}
	return false
}

// coercion ranks how closely an actual type satisfies an expected one,
// ordered so exact equality outranks a widening or an auto-ref/auto-deref
// (spec §4.5 "exact equality ranks above coercion that inserts a widening or
// an auto-ref/auto-deref").
type coercion int

const (
	coerceNone coercion = iota
	coerceAutoRef
	coerceWiden
	coerceExact
)

// classifyCoercion scores from against to without mutating anything; used
// both by coerces (which then performs the mutation) and by overload scoring
// (which must not mutate candidates it will discard).
func classifyCoercion(from, to ast.Type) coercion {
	from, to = underlyingType(from), underlyingType(to)
	if from == nil || to == nil {
		return coerceNone
	}
	if from == to {
		return coerceExact
	}
	if base, ok := derefOnce(from); ok && sameType(base, to) {
		return coerceAutoRef
	}
	if base, ok := derefOnce(to); ok && sameType(base, from) {
		return coerceAutoRef
	}
	if fp, tp := asPrimitive(from), asPrimitive(to); fp != nil && tp != nil && widens(fp.Kind, tp.Kind) {
		return coerceWiden
	}
	return coerceNone
}

// coerces implements spec §4.6 step 1's coercion check and §4.7's
// auto-ref/auto-deref: does the expression in *slot satisfy the expected
// type to, inserting at most one borrow or dereference node if needed?
// Primitive widening inserts no node — this IR has no cast node; the code
// generator reads both value types off the finalized tree and emits the
// conversion itself.
func coerces(st *State, to ast.Type, slot *ast.Expr) bool {
	expr := *slot
	actual := expr.ValueType()
	if actual == nil {
		return false
	}
	switch classifyCoercion(actual, to) {
	case coerceExact, coerceWiden:
		return true
	case coerceAutoRef:
		if base, ok := derefOnce(actual); ok && sameType(base, to) {
			insertAutoDeref(slot)
			return true
		}
		if base, ok := derefOnce(to); ok && sameType(base, actual) {
			insertAutoRef(slot, to)
			return true
		}
		return false
	default:
		return false
	}
}

// insertAutoDeref wraps *slot in a single DerefExpr, typed from the
// reference/pointer it peels. Reports false and leaves slot untouched if the
// expression's value type isn't a reference or pointer.
func insertAutoDeref(slot *ast.Expr) bool {
	expr := *slot
	base, ok := derefOnce(expr.ValueType())
	if !ok {
		return false
	}
	deref := &ast.DerefExpr{Inner: expr}
	deref.Position = expr.Pos()
	deref.SetValueType(base)
	*slot = deref
	return true
}

// insertAutoRef wraps *slot in a single BorrowExpr typed as to, copying to's
// permission if it names one. Used where a plain value is passed where a
// reference or pointer is expected.
func insertAutoRef(slot *ast.Expr, to ast.Type) {
	expr := *slot
	var perm *ast.PermType
	switch rt := underlyingType(to).(type) {
	case *ast.RefType:
		perm = rt.Perm
	case *ast.PointerType:
		perm = rt.Perm
	}
	borrow := &ast.BorrowExpr{Inner: expr, Perm: perm}
	borrow.Position = expr.Pos()
	borrow.SetValueType(to)
	*slot = borrow
}
