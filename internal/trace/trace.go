// Package trace provides an optional, nil-safe step recorder the
// reducer and type checker can be handed to observe beta/eta reduction
// and typing-rule application, the same way a --trace flag exposes an
// evaluator's internal steps to a REPL.
package trace

import "github.com/purelang/coc/internal/term"

// Entry records a single traced step.
type Entry struct {
	Kind string // "beta", "eta", "axiom", "rule"
	Expr term.Expr
}

// Tracer accumulates Entries. A nil *Tracer is a valid no-op receiver,
// so callers that don't want tracing can pass nil straight through
// without branching.
type Tracer struct {
	entries []Entry
}

// New returns an empty, active Tracer.
func New() *Tracer { return &Tracer{} }

// Step records a step. Safe to call on a nil Tracer.
func (t *Tracer) Step(kind string, e term.Expr) {
	if t == nil {
		return
	}
	t.entries = append(t.entries, Entry{Kind: kind, Expr: e})
}

// Entries returns the recorded steps in order. Safe to call on a nil
// Tracer, returning nil.
func (t *Tracer) Entries() []Entry {
	if t == nil {
		return nil
	}
	return t.entries
}

// Reset clears recorded steps. Safe to call on a nil Tracer (no-op).
func (t *Tracer) Reset() {
	if t == nil {
		return
	}
	t.entries = nil
}
