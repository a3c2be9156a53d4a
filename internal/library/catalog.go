package library

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/purelang/coc/internal/term"
)

// Entry is one named, built term.Expr in the catalog.
type Entry struct {
	Name        string
	Description string
	Term        term.Expr
}

type rawEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Term        *Node  `yaml:"term"`
}

// LoadFile reads a catalog of named terms from a YAML document: a list
// of {name, description, term} entries, where term is the tagged-union
// encoding Node/Build understands.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("library: reading %s: %w", path, err)
	}
	var raws []rawEntry
	if err := yaml.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("library: parsing %s: %w", path, err)
	}
	entries := make([]Entry, 0, len(raws))
	for _, r := range raws {
		expr, err := Build(r.Term)
		if err != nil {
			return nil, fmt.Errorf("library: entry %q: %w", r.Name, err)
		}
		entries = append(entries, Entry{Name: r.Name, Description: r.Description, Term: expr})
	}
	return entries, nil
}

// Find returns the entry named name, if present.
func Find(entries []Entry, name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Default returns the built-in catalog: the seed terms spec.md §8 names
// directly, built with the term constructors rather than parsed from
// YAML, so the catalog's correctness never depends on an external file
// being present.
func Default() []Entry {
	nat := term.NewPi("n", term.NewConst(term.Star),
		term.NewArrow(term.NewArrow(term.NewVar("n", 0), term.NewVar("n", 0)),
			term.NewArrow(term.NewVar("n", 0), term.NewVar("n", 0))))

	identity := term.NewLam("a", term.NewConst(term.Star),
		term.NewLam("x", term.NewVar("a", 0), term.NewVar("x", 0)))

	two := term.NewLam("n", term.NewConst(term.Star),
		term.NewLam("s", term.NewArrow(term.NewVar("n", 0), term.NewVar("n", 0)),
			term.NewLam("z", term.NewVar("n", 0),
				term.NewApp(term.NewVar("s", 0), term.NewApp(term.NewVar("s", 0), term.NewVar("z", 0))))))

	twoAppliedToSuccZero := term.NewApp(
		term.NewApp(
			term.NewApp(two, term.NewVar("Nat", 0)),
			term.NewVar("succ", 0)),
		term.NewVar("zero", 0))

	untypedBox := term.NewConst(term.Box)

	unboundVar := term.NewVar("x", 0)

	notAFunction := term.NewApp(term.NewConst(term.Star), term.NewConst(term.Star))

	typeMismatch := term.NewLam("a", term.NewConst(term.Star),
		term.NewLam("x", term.NewVar("a", 0),
			term.NewApp(
				term.NewLam("y", term.NewConst(term.Star), term.NewVar("y", 0)),
				term.NewVar("x", 0),
			)))

	shadowing := term.NewLam("x", term.NewConst(term.Star),
		term.NewLam("y", term.NewConst(term.Star),
			term.NewLam("x", term.NewConst(term.Star), term.NewVar("x", 0))))

	etaRedex := term.NewLam("x", term.NewVar("a", 0), term.NewApp(term.NewVar("f", 0), term.NewVar("x", 0)))

	return []Entry{
		{Name: "identity", Description: "polymorphic identity: ∀(a:*) → ∀(x:a) → a", Term: identity},
		{Name: "nat", Description: "Nat = ∀(n:*) → (n→n) → n → n", Term: nat},
		{Name: "church-two", Description: "Church numeral two over an abstract Nat", Term: two},
		{Name: "church-two-applied", Description: "two applied to an abstract succ and zero", Term: twoAppliedToSuccZero},
		{Name: "untyped-box", Description: "□ itself, which has no type", Term: untypedBox},
		{Name: "unbound-var", Description: "a free variable with no binder", Term: unboundVar},
		{Name: "not-a-function", Description: "applying * to * — the head is not a Pi", Term: notAFunction},
		{Name: "type-mismatch", Description: "applies the *->* identity to an x : a, where a * was expected", Term: typeMismatch},
		{Name: "shadowing", Description: "three nested x/y/x binders, innermost x@0 vs outer x@1", Term: shadowing},
		{Name: "eta-redex", Description: "λ(x:a) → f x, eta-reduces to f", Term: etaRedex},
	}
}
