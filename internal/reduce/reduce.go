// Package reduce implements weak-head and full normalization over
// internal/term expressions: beta reduction for both, plus eta
// reduction for full normal forms.
package reduce

import (
	"github.com/purelang/coc/internal/capture"
	"github.com/purelang/coc/internal/term"
	"github.com/purelang/coc/internal/trace"
)

// WHNF reduces e to weak-head normal form: the head is reduced until it
// is not an application whose function position is a lambda. Bodies of
// binders and the outermost application's argument are left untouched.
//
// WHNF never errors. On ill-typed input it may fail to terminate — the
// spec does not ask for a guard here, and adding one would change the
// documented contract from total-on-well-typed to partial.
func WHNF(e term.Expr) term.Expr {
	return whnf(e, nil)
}

// WHNFTraced is WHNF with an optional step tracer (nil-safe).
func WHNFTraced(e term.Expr, t *trace.Tracer) term.Expr {
	return whnf(e, t)
}

func whnf(e term.Expr, t *trace.Tracer) term.Expr {
	app, ok := e.(term.App)
	if !ok {
		return e
	}
	f := whnf(app.Fun, t)
	lam, ok := f.(term.Lam)
	if !ok {
		return term.App{Fun: f, Arg: app.Arg}
	}
	t.Step("beta", e)
	argShifted := capture.Shift(1, lam.Name, app.Arg)
	bodySubst := capture.Subst(lam.Name, 0, argShifted, lam.Body)
	return whnf(capture.Shift(-1, lam.Name, bodySubst), t)
}

// Normalize computes the full normal form of e: sub-terms are
// recursively normalized, beta redexes are reduced wherever they
// appear, and eta redexes (λ(x:_) → f x with x not free in f) collapse
// to f. Normalize is total on well-typed terms — CoC is strongly
// normalizing — and its only failure mode on ill-typed input is
// non-termination (spec.md §7).
func Normalize(e term.Expr) term.Expr {
	return normalize(e, nil)
}

// NormalizeTraced is Normalize with an optional step tracer (nil-safe).
func NormalizeTraced(e term.Expr, t *trace.Tracer) term.Expr {
	return normalize(e, t)
}

func normalize(e term.Expr, t *trace.Tracer) term.Expr {
	switch x := e.(type) {
	case term.ConstExpr, term.VarExpr:
		return e
	case term.Lam:
		dom := normalize(x.Domain, t)
		body := normalize(x.Body, t)
		if app, ok := body.(term.App); ok {
			if v, ok := app.Arg.(term.VarExpr); ok && v.V.Name == x.Name && v.V.Index == 0 {
				if !capture.FreeIn(v.V, app.Fun) {
					t.Step("eta", e)
					return normalize(capture.Shift(-1, x.Name, app.Fun), t)
				}
			}
		}
		return term.Lam{Name: x.Name, Domain: dom, Body: body}
	case term.Pi:
		dom := normalize(x.Domain, t)
		cod := normalize(x.Codomain, t)
		return term.Pi{Name: x.Name, Domain: dom, Codomain: cod}
	case term.App:
		f := normalize(x.Fun, t)
		if lam, ok := f.(term.Lam); ok {
			t.Step("beta", e)
			argShifted := capture.Shift(1, lam.Name, x.Arg)
			bodySubst := capture.Subst(lam.Name, 0, argShifted, lam.Body)
			return normalize(capture.Shift(-1, lam.Name, bodySubst), t)
		}
		a := normalize(x.Arg, t)
		return term.App{Fun: f, Arg: a}
	default:
		panic("reduce: unknown Expr shape")
	}
}
