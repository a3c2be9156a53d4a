// Package typecheck implements the bidirectional-style checker for the
// core calculus: the CoC axiom and its four Pi-formation rules, driven
// by internal/reduce for weak-head normal forms and internal/equality
// for comparing argument types.
package typecheck

import (
	"github.com/purelang/coc/internal/capture"
	"github.com/purelang/coc/internal/equality"
	"github.com/purelang/coc/internal/reduce"
	"github.com/purelang/coc/internal/term"
	"github.com/purelang/coc/internal/trace"
)

// Axiom gives the type of a sort: Star : Box. Box has no type.
func Axiom(c term.Const) (term.Const, bool) {
	if c == term.Star {
		return term.Box, true
	}
	return 0, false
}

// Rule gives the sort of Pi(x:A) -> B given the sorts of A and B. All
// four combinations in {Star, Box}^2 are valid; the result is the sort
// of the codomain B — spec.md §4.5.
func Rule(input, output term.Const) term.Const {
	return output
}

// TypeOf type-checks a closed expression under the empty context.
func TypeOf(e term.Expr) (term.Expr, *TypeError) {
	return typeWith(term.Empty(), e, nil)
}

// TypeOfTraced is TypeOf with an optional step tracer (nil-safe).
func TypeOfTraced(e term.Expr, t *trace.Tracer) (term.Expr, *TypeError) {
	return typeWith(term.Empty(), e, t)
}

// TypeWith infers the type of e under ctx, or returns a TypeError
// naming the narrowest offending sub-expression and the context
// prevailing at the point of failure. It never panics on ill-typed
// input — every failure mode named in spec.md §3 is a returned value.
func TypeWith(ctx term.Context, e term.Expr) (term.Expr, *TypeError) {
	return typeWith(ctx, e, nil)
}

// TypeWithTraced is TypeWith with an optional step tracer (nil-safe):
// every axiom and rule application, and every beta step the checker
// forces while reducing a type to weak-head normal form, is recorded.
func TypeWithTraced(ctx term.Context, e term.Expr, t *trace.Tracer) (term.Expr, *TypeError) {
	return typeWith(ctx, e, t)
}

func typeWith(ctx term.Context, e term.Expr, t *trace.Tracer) (term.Expr, *TypeError) {
	switch x := e.(type) {
	case term.ConstExpr:
		return typeOfConst(ctx, e, x.C, t)
	case term.VarExpr:
		return typeOfVar(ctx, e, x.V)
	case term.Lam:
		return typeOfLam(ctx, x, t)
	case term.Pi:
		return typeOfPi(ctx, x, t)
	case term.App:
		return typeOfApp(ctx, x, t)
	default:
		panic("typecheck: unknown Expr shape")
	}
}

func typeOfConst(ctx term.Context, e term.Expr, c term.Const, t *trace.Tracer) (term.Expr, *TypeError) {
	s, ok := Axiom(c)
	if !ok {
		return nil, errUntyped(ctx, e, c)
	}
	t.Step("axiom", e)
	return term.NewConst(s), nil
}

func typeOfVar(ctx term.Context, e term.Expr, v term.Var) (term.Expr, *TypeError) {
	t, ok := ctx.Lookup(v)
	if !ok {
		return nil, errUnbound(ctx, e)
	}
	return t, nil
}

func typeOfLam(ctx term.Context, lam term.Lam, t *trace.Tracer) (term.Expr, *TypeError) {
	ctxInner := shiftContext(lam.Name, ctx).Extend(lam.Name, lam.Domain)

	bodyType, err := typeWith(ctxInner, lam.Body, t)
	if err != nil {
		return nil, err
	}

	pi := term.Pi{Name: lam.Name, Domain: lam.Domain, Codomain: bodyType}
	// Validate the formed Pi is itself well-formed; the only purpose of
	// this call is to surface InvalidInputType/InvalidOutputType at the
	// right sub-expression, so its result type is discarded.
	if _, err := typeWith(ctx, pi, t); err != nil {
		return nil, err
	}
	return pi, nil
}

func typeOfPi(ctx term.Context, pi term.Pi, t *trace.Tracer) (term.Expr, *TypeError) {
	domType, err := typeWith(ctx, pi.Domain, t)
	if err != nil {
		return nil, err
	}
	domSort, ok := reduce.WHNFTraced(domType, t).(term.ConstExpr)
	if !ok {
		return nil, errInvalidInput(ctx, pi, pi.Domain)
	}

	ctxInner := shiftContext(pi.Name, ctx).Extend(pi.Name, pi.Domain)
	codType, err := typeWith(ctxInner, pi.Codomain, t)
	if err != nil {
		return nil, err
	}
	codSort, ok := reduce.WHNFTraced(codType, t).(term.ConstExpr)
	if !ok {
		return nil, errInvalidOutput(ctx, pi, pi.Codomain)
	}

	t.Step("rule", pi)
	return term.NewConst(Rule(domSort.C, codSort.C)), nil
}

func typeOfApp(ctx term.Context, app term.App, t *trace.Tracer) (term.Expr, *TypeError) {
	funType, err := typeWith(ctx, app.Fun, t)
	if err != nil {
		return nil, err
	}
	pi, ok := reduce.WHNFTraced(funType, t).(term.Pi)
	if !ok {
		return nil, errNotAFunction(ctx, app)
	}

	argType, err := typeWith(ctx, app.Arg, t)
	if err != nil {
		return nil, err
	}
	if !equality.Eq(pi.Domain, argType) {
		return nil, errTypeMismatch(ctx, app, reduce.Normalize(pi.Domain), reduce.Normalize(argType))
	}

	argShifted := capture.Shift(1, pi.Name, app.Arg)
	codSubst := capture.Subst(pi.Name, 0, argShifted, pi.Codomain)
	return capture.Shift(-1, pi.Name, codSubst), nil
}

// shiftContext raises the index of every free occurrence of name by one
// in every type already stored in ctx — required whenever a new binder
// of that name is entered, so that pre-existing references to outer
// same-named binders keep pointing at them (spec.md §4.4.1). The domain
// of the binder being entered is NOT shifted; it is prepended as-is by
// the caller immediately after.
func shiftContext(name string, ctx term.Context) term.Context {
	n := ctx.Len()
	names := make([]string, n)
	types := make([]term.Expr, n)
	for i := 0; i < n; i++ {
		nm, ty, _ := ctx.At(i)
		names[i] = nm
		types[i] = ty
	}
	shifted := term.Empty()
	for i := n - 1; i >= 0; i-- {
		shifted = shifted.Extend(names[i], capture.Shift(1, name, types[i]))
	}
	return shifted
}
