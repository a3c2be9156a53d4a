// Package errors provides structured, JSON-encodable reports for the
// six typecheck.MessageKind failures, each carrying a stable error code
// from a small per-phase taxonomy.
package errors

import "github.com/purelang/coc/internal/typecheck"

// Error codes, one per typecheck.MessageKind (TC### taxonomy).
const (
	TC001 = "TC001" // UnboundVariable
	TC002 = "TC002" // InvalidInputType
	TC003 = "TC003" // InvalidOutputType
	TC004 = "TC004" // NotAFunction
	TC005 = "TC005" // TypeMismatch
	TC006 = "TC006" // Untyped
)

// ErrorInfo describes one error code.
type ErrorInfo struct {
	Code        string
	Phase       string
	Description string
}

// Registry maps every typecheck error code to its description.
var Registry = map[string]ErrorInfo{
	TC001: {TC001, "typecheck", "Unbound variable"},
	TC002: {TC002, "typecheck", "Pi domain is not a sort"},
	TC003: {TC003, "typecheck", "Pi codomain is not a sort"},
	TC004: {TC004, "typecheck", "Application head is not a function"},
	TC005: {TC005, "typecheck", "Argument type does not match declared domain"},
	TC006: {TC006, "typecheck", "Box has no type"},
}

// CodeFor maps a MessageKind to its stable error code.
func CodeFor(kind typecheck.MessageKind) string {
	switch kind {
	case typecheck.UnboundVariable:
		return TC001
	case typecheck.InvalidInputType:
		return TC002
	case typecheck.InvalidOutputType:
		return TC003
	case typecheck.NotAFunction:
		return TC004
	case typecheck.TypeMismatch:
		return TC005
	case typecheck.Untyped:
		return TC006
	default:
		return "TC000"
	}
}
