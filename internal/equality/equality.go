// Package equality implements alpha-equivalence on normal forms: the
// only notion of term equality the core exposes to its collaborators.
package equality

import (
	"github.com/purelang/coc/internal/reduce"
	"github.com/purelang/coc/internal/term"
)

// Eq holds iff normalize(l) and normalize(r) are alpha-equivalent.
func Eq(l, r term.Expr) bool {
	return alphaEq(reduce.Normalize(l), reduce.Normalize(r), nil)
}

// binderPair is one frame of the parallel binder stack: the names bound
// on the left and right sides at the same nesting depth.
type binderPair struct {
	left, right string
}

func alphaEq(l, r term.Expr, stack []binderPair) bool {
	switch lt := l.(type) {
	case term.ConstExpr:
		rt, ok := r.(term.ConstExpr)
		return ok && lt.C == rt.C
	case term.VarExpr:
		rt, ok := r.(term.VarExpr)
		if !ok {
			return false
		}
		return varEq(lt.V, rt.V, stack)
	case term.Lam:
		rt, ok := r.(term.Lam)
		if !ok {
			return false
		}
		if !alphaEq(lt.Domain, rt.Domain, stack) {
			return false
		}
		next := append(append([]binderPair{}, stack...), binderPair{left: lt.Name, right: rt.Name})
		return alphaEq(lt.Body, rt.Body, next)
	case term.Pi:
		rt, ok := r.(term.Pi)
		if !ok {
			return false
		}
		if !alphaEq(lt.Domain, rt.Domain, stack) {
			return false
		}
		next := append(append([]binderPair{}, stack...), binderPair{left: lt.Name, right: rt.Name})
		return alphaEq(lt.Codomain, rt.Codomain, next)
	case term.App:
		rt, ok := r.(term.App)
		if !ok {
			return false
		}
		return alphaEq(lt.Fun, rt.Fun, stack) && alphaEq(lt.Arg, rt.Arg, stack)
	default:
		panic("equality: unknown Expr shape")
	}
}

// varEq walks the binder stack top-down (innermost first), decrementing
// the left index on every frame whose left name matches xL; when the
// counter reaches 0, the right name at that frame must match xR. If the
// stack is exhausted without finding a matching frame, both variables
// are free and must share the same name.
func varEq(l, r term.Var, stack []binderPair) bool {
	if l.Index != r.Index {
		return false
	}
	n := l.Index
	for i := len(stack) - 1; i >= 0; i-- {
		frame := stack[i]
		if frame.left != l.Name {
			continue
		}
		if n == 0 {
			return frame.right == r.Name
		}
		n--
	}
	return l.Name == r.Name
}
