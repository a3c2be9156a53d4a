// Package capture implements the capture-avoiding primitives the
// reducer and type checker are both built on: shift, subst, used, and
// freeIn, over the locally-nameless representation in internal/term.
package capture

import "github.com/purelang/coc/internal/term"

// Shift adds d to the index of every free occurrence of the variable
// named x in e. An occurrence V(x, n) under a binding depth c (the
// number of same-named binders the traversal has descended through) is
// free when n >= c, and becomes V(x, n+d).
//
// A shift by -1 is only safe in the two ways the reducer and checker
// use it: after a matching +1, or after a substitution has removed the
// binder the index counted against. Used that way, Shift never produces
// a negative index.
func Shift(d int, x string, e term.Expr) term.Expr {
	return shift(d, x, 0, e)
}

func shift(d int, x string, depth int, e term.Expr) term.Expr {
	switch t := e.(type) {
	case term.ConstExpr:
		return t
	case term.VarExpr:
		if t.V.Name != x || t.V.Index < depth {
			return t
		}
		return term.VarExpr{V: term.Var{Name: t.V.Name, Index: t.V.Index + d}}
	case term.Lam:
		dom := shift(d, x, depth, t.Domain)
		nextDepth := depth
		if t.Name == x {
			nextDepth = depth + 1
		}
		body := shift(d, x, nextDepth, t.Body)
		return term.Lam{Name: t.Name, Domain: dom, Body: body}
	case term.Pi:
		dom := shift(d, x, depth, t.Domain)
		nextDepth := depth
		if t.Name == x {
			nextDepth = depth + 1
		}
		cod := shift(d, x, nextDepth, t.Codomain)
		return term.Pi{Name: t.Name, Domain: dom, Codomain: cod}
	case term.App:
		return term.App{Fun: shift(d, x, depth, t.Fun), Arg: shift(d, x, depth, t.Arg)}
	default:
		panic("capture: unknown Expr shape")
	}
}

// Subst performs the capture-avoiding substitution target[V(x,n) := replacement].
func Subst(x string, n int, replacement, target term.Expr) term.Expr {
	switch t := target.(type) {
	case term.ConstExpr:
		return t
	case term.VarExpr:
		if t.V.Name == x && t.V.Index == n {
			return replacement
		}
		return t
	case term.Lam:
		dom := Subst(x, n, replacement, t.Domain)
		nextN := n
		if t.Name == x {
			nextN = n + 1
		}
		shiftedRepl := Shift(1, t.Name, replacement)
		body := Subst(x, nextN, shiftedRepl, t.Body)
		return term.Lam{Name: t.Name, Domain: dom, Body: body}
	case term.Pi:
		dom := Subst(x, n, replacement, t.Domain)
		nextN := n
		if t.Name == x {
			nextN = n + 1
		}
		shiftedRepl := Shift(1, t.Name, replacement)
		cod := Subst(x, nextN, shiftedRepl, t.Codomain)
		return term.Pi{Name: t.Name, Domain: dom, Codomain: cod}
	case term.App:
		return term.App{Fun: Subst(x, n, replacement, t.Fun), Arg: Subst(x, n, replacement, t.Arg)}
	default:
		panic("capture: unknown Expr shape")
	}
}

// Used reports whether some occurrence of name x in e has an index at
// least as large as the number of intervening same-named binders — the
// hook a pretty printer uses to decide whether a Pi needs to render
// with an explicit binder or degenerate to a plain arrow.
func Used(x string, e term.Expr) bool {
	return used(x, 0, e)
}

func used(x string, depth int, e term.Expr) bool {
	switch t := e.(type) {
	case term.ConstExpr:
		return false
	case term.VarExpr:
		return t.V.Name == x && t.V.Index >= depth
	case term.Lam:
		if used(x, depth, t.Domain) {
			return true
		}
		nextDepth := depth
		if t.Name == x {
			nextDepth = depth + 1
		}
		return used(x, nextDepth, t.Body)
	case term.Pi:
		if used(x, depth, t.Domain) {
			return true
		}
		nextDepth := depth
		if t.Name == x {
			nextDepth = depth + 1
		}
		return used(x, nextDepth, t.Codomain)
	case term.App:
		return used(x, depth, t.Fun) || used(x, depth, t.Arg)
	default:
		panic("capture: unknown Expr shape")
	}
}

// FreeIn reports whether v has a free occurrence in e. Descent mirrors
// Subst's binder adjustment: under a binder of v's own name, the search
// continues for the index one higher.
func FreeIn(v term.Var, e term.Expr) bool {
	return freeIn(v.Name, v.Index, e)
}

func freeIn(x string, n int, e term.Expr) bool {
	switch t := e.(type) {
	case term.ConstExpr:
		return false
	case term.VarExpr:
		return t.V.Name == x && t.V.Index == n
	case term.Lam:
		if freeIn(x, n, t.Domain) {
			return true
		}
		nextN := n
		if t.Name == x {
			nextN = n + 1
		}
		return freeIn(x, nextN, t.Body)
	case term.Pi:
		if freeIn(x, n, t.Domain) {
			return true
		}
		nextN := n
		if t.Name == x {
			nextN = n + 1
		}
		return freeIn(x, nextN, t.Codomain)
	case term.App:
		return freeIn(x, n, t.Fun) || freeIn(x, n, t.Arg)
	default:
		panic("capture: unknown Expr shape")
	}
}
