// Package sid computes stable, content-addressed identifiers for
// term.Expr values: a hash of a term's canonical wire encoding, so two
// syntactically identical terms always get the same ID regardless of
// when or where they were built.
package sid

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/purelang/coc/internal/reduce"
	"github.com/purelang/coc/internal/term"
	"github.com/purelang/coc/internal/wire"
)

// ID is a stable identifier for a term.Expr.
type ID string

// digestLen is the number of hex characters kept from the sha256 sum.
const digestLen = 16

// Of returns the stable ID of e: the truncated hex SHA-256 digest of
// its wire.Encode bytes. Two terms that are not structurally identical
// — including ones that are alpha-equivalent but use different binder
// names — get different IDs. OfNormalized removes only the difference
// made by reducible redexes; binder names still count there, so use
// equality.Eq when they should not matter.
func Of(e term.Expr) ID {
	return digest(wire.Encode(e))
}

// OfNormalized returns the stable ID of e's normal form, so that terms
// related by beta/eta reduction share an ID.
func OfNormalized(e term.Expr) ID {
	return Of(reduce.Normalize(e))
}

func digest(data []byte) ID {
	sum := sha256.Sum256(data)
	return ID(hex.EncodeToString(sum[:])[:digestLen])
}
