// Package term defines the abstract syntax of the core calculus: sorts,
// variables, and the five-shape expression grammar, plus the ordered
// context used to type them.
package term

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Const is a sort: Star classifies types, Box classifies kinds.
type Const int

const (
	Star Const = iota
	Box
)

func (c Const) String() string {
	switch c {
	case Star:
		return "*"
	case Box:
		return "□"
	default:
		return fmt.Sprintf("Const(%d)", int(c))
	}
}

// NewName canonicalizes a binder or reference name to Unicode NFC so
// that two source occurrences of the "same" identifier in different
// normalization forms are never treated as distinct binders.
func NewName(name string) string {
	if norm.NFC.IsNormalString(name) {
		return name
	}
	return norm.NFC.String(name)
}

// Var is a variable reference: a name paired with a De Bruijn-style
// disambiguation index counting outward from the innermost binder of
// that name. Index 0 is the innermost.
type Var struct {
	Name  string
	Index int
}

// V builds a Var, canonicalizing its name.
func V(name string, index int) Var {
	if index < 0 {
		panic("term: negative variable index")
	}
	return Var{Name: NewName(name), Index: index}
}

func (v Var) String() string {
	if v.Index == 0 {
		return v.Name
	}
	return fmt.Sprintf("%s@%d", v.Name, v.Index)
}

// Expr is the sum type over the five expression shapes. Only the types
// defined in this package implement it.
type Expr interface {
	fmt.Stringer
	exprNode()
}

// ConstExpr wraps a sort as an expression.
type ConstExpr struct {
	C Const
}

func (ConstExpr) exprNode() {}
func (e ConstExpr) String() string { return e.C.String() }

// VarExpr wraps a variable reference as an expression.
type VarExpr struct {
	V Var
}

func (VarExpr) exprNode() {}
func (e VarExpr) String() string { return e.V.String() }

// Lam is a lambda abstraction. Body is evaluated with Name bound at
// index 0; outer occurrences of Name inside Body carry a raised index.
type Lam struct {
	Name   string
	Domain Expr
	Body   Expr
}

func (Lam) exprNode() {}
func (e Lam) String() string {
	return fmt.Sprintf("λ(%s : %s) → %s", e.Name, e.Domain, e.Body)
}

// Pi is a dependent function type. It degenerates to a non-dependent
// arrow in surface rendering when Name does not occur free in Codomain
// (see internal/printer), but the term itself always carries the name.
type Pi struct {
	Name     string
	Domain   Expr
	Codomain Expr
}

func (Pi) exprNode() {}
func (e Pi) String() string {
	return fmt.Sprintf("∀(%s : %s) → %s", e.Name, e.Domain, e.Codomain)
}

// App is function application.
type App struct {
	Fun Expr
	Arg Expr
}

func (App) exprNode() {}
func (e App) String() string { return fmt.Sprintf("%s %s", e.Fun, e.Arg) }

// Helper constructors for building terms programmatically (tests, the
// library catalog).
func NewConst(c Const) Expr        { return ConstExpr{C: c} }
func NewVar(name string, ix int) Expr { return VarExpr{V: V(name, ix)} }
func NewLam(name string, dom, body Expr) Expr {
	return Lam{Name: NewName(name), Domain: dom, Body: body}
}
func NewPi(name string, dom, cod Expr) Expr {
	return Pi{Name: NewName(name), Domain: dom, Codomain: cod}
}
func NewApp(fun, arg Expr) Expr { return App{Fun: fun, Arg: arg} }

// NewArrow builds a non-dependent Pi whose bound name cannot be referred
// to (a fresh, unreferenceable name), for callers that only need A -> B.
func NewArrow(dom, cod Expr) Expr {
	return Pi{Name: "_", Domain: dom, Codomain: cod}
}
