package sema

import "github.com/aril-lang/arilc/internal/ast"

// bestMatch implements spec §4.5: score every candidate in chain's overload
// chain against args' current value types and return the best-scoring one
// that matches exactly in parameter count and accepts every argument. Ties
// go to the earliest-declared candidate, since the loop only replaces the
// champion on a strictly greater score and chain.Overloads() is already in
// declaration order.
func bestMatch(chain *ast.FuncDecl, args []ast.Expr) *ast.FuncDecl {
	var champion *ast.FuncDecl
	best := -1
	for _, cand := range chain.Overloads() {
		params := cand.Sig.Params
		if params.Len() != len(args) {
			continue
		}
		score, ok := scoreCandidate(params, args)
		if !ok {
			continue
		}
		if score > best {
			best = score
			champion = cand
		}
	}
	return champion
}

func scoreCandidate(params *ast.NodeList[*ast.VarDecl], args []ast.Expr) (int, bool) {
	total := 0
	for i, arg := range args {
		c := classifyCoercion(arg.ValueType(), params.At(i).ValueType())
		if c == coerceNone {
			return 0, false
		}
		total += int(c)
	}
	return total, true
}
