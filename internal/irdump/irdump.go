// Package irdump renders the resolved IR as an indented text tree, the
// `--print-ir` / program.ast artifact spec §6 calls "not part of the
// compilation contract" — a debug aid only. Grounded directly on
// original_source's ast.c: astPrintLn's indent-guide rule (a "| " every
// fourth level, two spaces otherwise) and astPrintNode's per-kind dispatch,
// translated from fprintf-to-a-global-FILE* into a recursive writer over an
// io.Writer.
package irdump

import (
	"fmt"
	"io"
	"strings"

	"github.com/aril-lang/arilc/internal/ast"
)

// Dump writes mod's full tree to w.
func Dump(w io.Writer, mod *ast.ModuleNode) {
	d := &dumper{w: w}
	d.module(0, mod)
}

type dumper struct {
	w io.Writer
}

// line reproduces astPrintLn's indent guide: a vertical bar every fourth
// level keeps deep trees visually scannable without a ruler.
func (d *dumper) line(indent int, format string, args ...any) {
	var sb strings.Builder
	for i := 0; i < indent; i++ {
		if i&3 == 0 {
			sb.WriteString("| ")
		} else {
			sb.WriteString("  ")
		}
	}
	fmt.Fprintf(&sb, format, args...)
	sb.WriteString("\n")
	io.WriteString(d.w, sb.String())
}

func (d *dumper) module(indent int, mod *ast.ModuleNode) {
	name := "(root)"
	if mod.Name != nil {
		name = mod.Name.Text()
	}
	d.line(indent, "Module %s", name)
	for i := 0; i < mod.Decls.Len(); i++ {
		d.decl(indent+1, mod.Decls.At(i))
	}
}

func (d *dumper) decl(indent int, decl ast.Decl) {
	switch n := decl.(type) {
	case *ast.VarDecl:
		d.varDecl(indent, n)
	case *ast.FuncDecl:
		d.funcDecl(indent, n)
	case *ast.StructDecl:
		d.structDecl(indent, n)
	case *ast.ModuleNode:
		d.module(indent, n)
	default:
		d.line(indent, "**** UNKNOWN DECL ****")
	}
}

func (d *dumper) varDecl(indent int, v *ast.VarDecl) {
	d.line(indent, "VarDecl %s : %s", v.Name.Text(), typeKindOf(v.ValueType()))
	if v.Init != nil {
		d.expr(indent+1, v.Init)
	}
}

func (d *dumper) funcDecl(indent int, f *ast.FuncDecl) {
	ret := typeKindOf(f.Sig.ReturnType)
	state := "implemented"
	if f.IsForward() {
		state = "forward"
	}
	d.line(indent, "FuncDecl %s(%d params) -> %s [%s]", f.Name.Text(), f.Sig.Params.Len(), ret, state)
	if f.Body != nil {
		d.expr(indent+1, f.Body)
	}
}

func (d *dumper) structDecl(indent int, s *ast.StructDecl) {
	d.line(indent, "StructDecl %s (%d props, %d methods)", s.Name.Text(), s.Properties.Len(), s.Methods.Len())
	for i := 0; i < s.Properties.Len(); i++ {
		d.varDecl(indent+1, s.Properties.At(i))
	}
	for i := 0; i < s.Methods.Len(); i++ {
		d.funcDecl(indent+1, s.Methods.At(i))
	}
}

func (d *dumper) expr(indent int, e ast.Expr) {
	switch n := e.(type) {
	case nil:
		return
	case *ast.Literal:
		d.line(indent, "Literal %v : %s", n.Value, typeKindOf(n.ValueType()))
	case *ast.NameUse:
		d.line(indent, "NameUse %s [%s] : %s", n.Name.Text(), n.Kind, typeKindOf(n.ValueType()))
	case *ast.FnCall:
		d.line(indent, "FnCall : %s", typeKindOf(n.ValueType()))
		d.expr(indent+1, n.Objfn)
		for _, a := range n.Args {
			d.expr(indent+1, a)
		}
	case *ast.BorrowExpr:
		d.line(indent, "Borrow : %s", typeKindOf(n.ValueType()))
		d.expr(indent+1, n.Inner)
	case *ast.DerefExpr:
		d.line(indent, "Deref : %s", typeKindOf(n.ValueType()))
		d.expr(indent+1, n.Inner)
	case *ast.CopyExpr:
		d.line(indent, "Copy : %s", typeKindOf(n.ValueType()))
		d.expr(indent+1, n.Inner)
	case *ast.BlockExpr:
		d.line(indent, "Block (%d stmts) : %s", len(n.Stmts), typeKindOf(n.ValueType()))
		for _, s := range n.Stmts {
			d.stmt(indent+1, s)
		}
	case *ast.WhileExpr:
		d.line(indent, "While")
		d.expr(indent+1, n.Cond)
		d.expr(indent+1, n.Body)
	case *ast.AssignExpr:
		d.line(indent, "Assign")
		d.expr(indent+1, n.Target)
		d.expr(indent+1, n.Value)
	case *ast.TupleReturnExpr:
		d.line(indent, "TupleReturn (%d values)", len(n.Values))
		for _, v := range n.Values {
			d.expr(indent+1, v)
		}
	default:
		d.line(indent, "**** UNKNOWN NODE ****")
	}
}

func (d *dumper) stmt(indent int, n ast.Node) {
	if v, ok := n.(*ast.VarDecl); ok {
		d.varDecl(indent, v)
		return
	}
	if e, ok := n.(ast.Expr); ok {
		d.expr(indent, e)
		return
	}
	d.line(indent, "**** UNKNOWN NODE ****")
}

func typeKindOf(t ast.Type) string {
	if t == nil {
		return "?"
	}
	return t.TypeKind()
}
