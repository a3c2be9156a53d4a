package term

// Context is an ordered sequence of (name, type) pairs, most-recently
// bound first. The same name may appear more than once, modeling
// shadowing directly: V(x, n) resolves to the n-th occurrence of x
// scanning from the head.
type Context struct {
	entries []entry
}

type entry struct {
	name string
	typ  Expr
}

// Empty is the context with no bindings.
func Empty() Context { return Context{} }

// Extend returns a new context with (name, typ) prepended. The
// receiver's backing slice is never mutated, so contexts may be freely
// shared between branches of a typing derivation.
func (c Context) Extend(name string, typ Expr) Context {
	next := make([]entry, 0, len(c.entries)+1)
	next = append(next, entry{name: NewName(name), typ: typ})
	next = append(next, c.entries...)
	return Context{entries: next}
}

// Lookup resolves a variable reference against the context, returning
// its stored type. ok is false when fewer than Index+1 occurrences of
// Name exist.
func (c Context) Lookup(v Var) (Expr, bool) {
	seen := 0
	for _, e := range c.entries {
		if e.name != v.Name {
			continue
		}
		if seen == v.Index {
			return e.typ, true
		}
		seen++
	}
	return nil, false
}

// Len reports the number of bindings in the context.
func (c Context) Len() int { return len(c.entries) }

// At returns the i-th binding from the head (0 = most recently bound).
func (c Context) At(i int) (name string, typ Expr, ok bool) {
	if i < 0 || i >= len(c.entries) {
		return "", nil, false
	}
	return c.entries[i].name, c.entries[i].typ, true
}
