package ast

// VarDecl is a variable, parameter, field, or property declaration (spec §3
// "Variable declaration"). The same struct serves all four roles; ParamIndex
// and ScopeDepth distinguish them, matching the C original's single
// VarDclAstNode used for globals, locals, parameters, and fields alike.
type VarDecl struct {
	Header
	Typed
	Name               *NameHandle
	Perm               *PermType
	DeclaredType       Type // syntactic annotation; nil means "infer from Init"
	Init               Expr // optional initializer / default-argument expression
	ScopeDepth         int  // 0 = module scope, >=1 = nested
	ParamIndex         int  // >=0 when this VarDecl is a function parameter; -1 otherwise
	IsMethodOrProperty bool // true for struct fields/properties (spec §4.3 step 3)
	IsSetMethod        bool // true for a property's setter form
	MayBeConst         bool // parser-time flag: this declaration's `const` permission is legal (spec §4.4 "Variable declaration")
}

func (*VarDecl) Tag() Tag                { return TagVarDecl }
func (v *VarDecl) DeclName() *NameHandle { return v.Name }

// NewVarDecl creates a variable declaration with ParamIndex defaulted to "not
// a parameter".
func NewVarDecl(name *NameHandle, perm *PermType, declared Type) *VarDecl {
	return &VarDecl{
		Name:         name,
		Perm:         perm,
		DeclaredType: declared,
		ParamIndex:   -1,
	}
}

var _ Decl = (*VarDecl)(nil)

// FuncDecl is a function or method declaration: a signature plus an
// optional body (nil body = forward declaration, spec §6 "function bodies
// as unchecked expression trees").
type FuncDecl struct {
	Header
	Typed
	Name               *NameHandle
	Sig                *FuncSigType
	Body               *BlockExpr
	IsMethodOrProperty bool      // true when this FuncDecl lives in a struct's method namespace
	NextOverload       *FuncDecl // next declaration in this name's overload chain (spec §4.5)
}

func (*FuncDecl) Tag() Tag                { return TagFuncDecl }
func (f *FuncDecl) DeclName() *NameHandle { return f.Name }

// IsForward reports whether this declaration has no implementation yet.
func (f *FuncDecl) IsForward() bool { return f.Body == nil }

var _ Decl = (*FuncDecl)(nil)

// Overloads returns every declaration in this name's overload chain,
// starting with f itself, in declaration order (spec §4.5 "Tie-break by
// declaration order in the chain").
func (f *FuncDecl) Overloads() []*FuncDecl {
	var out []*FuncDecl
	for cur := f; cur != nil; cur = cur.NextOverload {
		out = append(out, cur)
	}
	return out
}
