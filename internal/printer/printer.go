// Package printer is the pretty-printer collaborator described in
// spec.md §6. It consumes term.Expr read-only and never feeds back into
// the core — the core itself never formats or parses concrete syntax.
package printer

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/purelang/coc/internal/capture"
	"github.com/purelang/coc/internal/term"
)

// Print renders e following the rendering rules agreed in spec.md §6:
// sorts as * / □, Var(V(x,0)) as x and Var(V(x,n>=1)) as x@n, lambdas as
// λ(x : A) → b, Pi as ∀(x : A) → B or the non-dependent arrow A → B
// depending on capture.Used, and left-associative application with
// parenthesization of binder/application arguments.
func Print(e term.Expr) string {
	return render(e, false, false)
}

// PrintColor renders e the same way as Print but highlights sorts,
// binders, and variable occurrences with ANSI color, for use by
// terminal collaborators (see cmd/cocshow).
func PrintColor(e term.Expr) string {
	return renderColor(e, false, false)
}

// render is shared by the plain printer; asArg/asAppArg select
// parenthesization for the left-hand side of a non-dependent arrow and
// the argument of an application respectively, per §6's rules.
func render(e term.Expr, asArg, asAppArg bool) string {
	switch x := e.(type) {
	case term.ConstExpr:
		return x.C.String()
	case term.VarExpr:
		return x.V.String()
	case term.Lam:
		s := fmt.Sprintf("λ(%s : %s) → %s", x.Name, render(x.Domain, false, false), render(x.Body, false, false))
		if asArg || asAppArg {
			return "(" + s + ")"
		}
		return s
	case term.Pi:
		var s string
		if capture.Used(x.Name, x.Codomain) {
			s = fmt.Sprintf("∀(%s : %s) → %s", x.Name, render(x.Domain, false, false), render(x.Codomain, false, false))
		} else {
			s = fmt.Sprintf("%s → %s", render(x.Domain, true, false), render(x.Codomain, false, false))
		}
		if asArg || asAppArg {
			return "(" + s + ")"
		}
		return s
	case term.App:
		s := fmt.Sprintf("%s %s", render(x.Fun, false, false), render(x.Arg, false, true))
		if asAppArg {
			return "(" + s + ")"
		}
		return s
	default:
		panic("printer: unknown Expr shape")
	}
}

var (
	sortColor   = color.New(color.FgCyan).SprintFunc()
	binderColor = color.New(color.FgYellow).SprintFunc()
	varColor    = color.New(color.FgGreen).SprintFunc()
	arrowColor  = color.New(color.Faint).SprintFunc()
)

func renderColor(e term.Expr, asArg, asAppArg bool) string {
	switch x := e.(type) {
	case term.ConstExpr:
		return sortColor(x.C.String())
	case term.VarExpr:
		return varColor(x.V.String())
	case term.Lam:
		var b strings.Builder
		b.WriteString(binderColor("λ"))
		b.WriteString(fmt.Sprintf("(%s : %s)", x.Name, renderColor(x.Domain, false, false)))
		b.WriteString(arrowColor(" → "))
		b.WriteString(renderColor(x.Body, false, false))
		s := b.String()
		if asArg || asAppArg {
			return "(" + s + ")"
		}
		return s
	case term.Pi:
		var s string
		if capture.Used(x.Name, x.Codomain) {
			s = fmt.Sprintf("%s(%s : %s)%s%s", binderColor("∀"), x.Name, renderColor(x.Domain, false, false), arrowColor(" → "), renderColor(x.Codomain, false, false))
		} else {
			s = renderColor(x.Domain, true, false) + arrowColor(" → ") + renderColor(x.Codomain, false, false)
		}
		if asArg || asAppArg {
			return "(" + s + ")"
		}
		return s
	case term.App:
		s := renderColor(x.Fun, false, false) + " " + renderColor(x.Arg, false, true)
		if asAppArg {
			return "(" + s + ")"
		}
		return s
	default:
		panic("printer: unknown Expr shape")
	}
}
