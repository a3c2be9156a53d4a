// Package library loads named term.Expr fixtures from a YAML data
// format — not concrete syntax, a tagged-union encoding of the five
// expression shapes — using gopkg.in/yaml.v3 for structured fixture
// specs. cmd/cocshow reads its terms from this catalog.
package library

import (
	"fmt"

	"github.com/purelang/coc/internal/term"
)

// Node is the YAML-decodable shape of one term.Expr, tagged by Kind.
type Node struct {
	Kind string `yaml:"kind"` // "const" | "var" | "lam" | "pi" | "app"

	// const
	Sort string `yaml:"sort,omitempty"` // "star" | "box"

	// var
	Name  string `yaml:"name,omitempty"`
	Index int    `yaml:"index,omitempty"`

	// lam / pi share Name above for the binder
	Domain *Node `yaml:"domain,omitempty"`
	Body   *Node `yaml:"body,omitempty"`   // lam
	Cod    *Node `yaml:"cod,omitempty"`    // pi

	// app
	Fun *Node `yaml:"fun,omitempty"`
	Arg *Node `yaml:"arg,omitempty"`
}

// Build converts a Node tree into a term.Expr, failing on malformed
// catalog data (an unknown Kind or a missing required child) rather
// than panicking — this boundary parses externally-supplied YAML, not
// core-internal values.
func Build(n *Node) (term.Expr, error) {
	if n == nil {
		return nil, fmt.Errorf("library: nil node")
	}
	switch n.Kind {
	case "const":
		switch n.Sort {
		case "star":
			return term.NewConst(term.Star), nil
		case "box":
			return term.NewConst(term.Box), nil
		default:
			return nil, fmt.Errorf("library: const node has invalid sort %q", n.Sort)
		}
	case "var":
		if n.Name == "" {
			return nil, fmt.Errorf("library: var node missing name")
		}
		return term.NewVar(n.Name, n.Index), nil
	case "lam":
		if n.Name == "" || n.Domain == nil || n.Body == nil {
			return nil, fmt.Errorf("library: lam node missing name/domain/body")
		}
		dom, err := Build(n.Domain)
		if err != nil {
			return nil, err
		}
		body, err := Build(n.Body)
		if err != nil {
			return nil, err
		}
		return term.NewLam(n.Name, dom, body), nil
	case "pi":
		if n.Name == "" || n.Domain == nil || n.Cod == nil {
			return nil, fmt.Errorf("library: pi node missing name/domain/cod")
		}
		dom, err := Build(n.Domain)
		if err != nil {
			return nil, err
		}
		cod, err := Build(n.Cod)
		if err != nil {
			return nil, err
		}
		return term.NewPi(n.Name, dom, cod), nil
	case "app":
		if n.Fun == nil || n.Arg == nil {
			return nil, fmt.Errorf("library: app node missing fun/arg")
		}
		fun, err := Build(n.Fun)
		if err != nil {
			return nil, err
		}
		arg, err := Build(n.Arg)
		if err != nil {
			return nil, err
		}
		return term.NewApp(fun, arg), nil
	default:
		return nil, fmt.Errorf("library: unknown node kind %q", n.Kind)
	}
}
