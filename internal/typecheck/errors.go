package typecheck

import (
	"fmt"

	"github.com/purelang/coc/internal/term"
)

// MessageKind discriminates the six ways type_with can fail.
type MessageKind int

const (
	UnboundVariable MessageKind = iota
	InvalidInputType
	InvalidOutputType
	NotAFunction
	TypeMismatch
	Untyped
)

func (k MessageKind) String() string {
	switch k {
	case UnboundVariable:
		return "UnboundVariable"
	case InvalidInputType:
		return "InvalidInputType"
	case InvalidOutputType:
		return "InvalidOutputType"
	case NotAFunction:
		return "NotAFunction"
	case TypeMismatch:
		return "TypeMismatch"
	case Untyped:
		return "Untyped"
	default:
		return fmt.Sprintf("MessageKind(%d)", int(k))
	}
}

// Message is the tagged payload of a TypeError, carrying only the
// fields relevant to its Kind.
type Message struct {
	Kind MessageKind

	// InvalidInputType / InvalidOutputType: the offending domain/codomain.
	Offending term.Expr

	// TypeMismatch: the declared and inferred argument types, both
	// already fully normalized.
	Expected term.Expr
	Actual   term.Expr

	// Untyped: always Box (Star has a type; Box famously does not).
	Sort term.Const
}

func (m Message) String() string {
	switch m.Kind {
	case InvalidInputType, InvalidOutputType:
		return fmt.Sprintf("%s(%s)", m.Kind, m.Offending)
	case TypeMismatch:
		return fmt.Sprintf("TypeMismatch(expected %s, got %s)", m.Expected, m.Actual)
	case Untyped:
		return fmt.Sprintf("Untyped(%s)", m.Sort)
	default:
		return m.Kind.String()
	}
}

// TypeError is the structured failure a typing derivation produces: the
// context and sub-expression at the point of failure, plus the tagged
// message. It is a plain value, not a panic — type_with never raises
// out of band.
type TypeError struct {
	Ctx     term.Context
	Expr    term.Expr
	Message Message
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Expr)
}

func errUnbound(ctx term.Context, e term.Expr) *TypeError {
	return &TypeError{Ctx: ctx, Expr: e, Message: Message{Kind: UnboundVariable}}
}

func errInvalidInput(ctx term.Context, e, offending term.Expr) *TypeError {
	return &TypeError{Ctx: ctx, Expr: e, Message: Message{Kind: InvalidInputType, Offending: offending}}
}

func errInvalidOutput(ctx term.Context, e, offending term.Expr) *TypeError {
	return &TypeError{Ctx: ctx, Expr: e, Message: Message{Kind: InvalidOutputType, Offending: offending}}
}

func errNotAFunction(ctx term.Context, e term.Expr) *TypeError {
	return &TypeError{Ctx: ctx, Expr: e, Message: Message{Kind: NotAFunction}}
}

func errTypeMismatch(ctx term.Context, e, expected, actual term.Expr) *TypeError {
	return &TypeError{Ctx: ctx, Expr: e, Message: Message{Kind: TypeMismatch, Expected: expected, Actual: actual}}
}

func errUntyped(ctx term.Context, e term.Expr, sort term.Const) *TypeError {
	return &TypeError{Ctx: ctx, Expr: e, Message: Message{Kind: Untyped, Sort: sort}}
}
