package capture

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purelang/coc/internal/term"
)

func TestShiftZeroIsIdentity(t *testing.T) {
	// shift(0, x, e) == e structurally, for any e — spec.md §8 invariant 1.
	e := term.NewLam("x", term.NewVar("a", 0), term.NewApp(term.NewVar("x", 0), term.NewVar("y", 2)))

	got := Shift(0, "x", e)

	assert.Empty(t, cmp.Diff(e, got))
}

func TestShiftFreeOccurrenceOnly(t *testing.T) {
	tests := []struct {
		name string
		e    term.Expr
		want term.Expr
	}{
		{
			name: "free variable is shifted",
			e:    term.NewVar("x", 0),
			want: term.NewVar("x", 1),
		},
		{
			name: "bound occurrence under matching binder is untouched",
			e:    term.NewLam("x", term.NewConst(term.Star), term.NewVar("x", 0)),
			want: term.NewLam("x", term.NewConst(term.Star), term.NewVar("x", 0)),
		},
		{
			name: "free occurrence under matching binder is shifted",
			e:    term.NewLam("x", term.NewConst(term.Star), term.NewVar("x", 1)),
			want: term.NewLam("x", term.NewConst(term.Star), term.NewVar("x", 2)),
		},
		{
			name: "unrelated-name binder doesn't affect depth",
			e:    term.NewLam("y", term.NewConst(term.Star), term.NewVar("x", 0)),
			want: term.NewLam("y", term.NewConst(term.Star), term.NewVar("x", 1)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shift(1, "x", tt.e)
			assert.Empty(t, cmp.Diff(tt.want, got))
		})
	}
}

func TestShiftRoundTrip(t *testing.T) {
	// shift(-d, x, shift(d, x, e)) == e — spec.md §8 invariant 2.
	e := term.NewLam("a", term.NewConst(term.Star), term.NewApp(term.NewVar("x", 0), term.NewVar("x", 3)))

	up := Shift(1, "x", e)
	down := Shift(-1, "x", up)

	assert.Empty(t, cmp.Diff(e, down))
}

func TestSubstSelfIsIdentity(t *testing.T) {
	// subst(x, n, V(x,n), e) == e — spec.md §8 invariant 3.
	e := term.NewLam("y", term.NewConst(term.Star), term.NewApp(term.NewVar("x", 0), term.NewVar("y", 0)))

	got := Subst("x", 0, term.NewVar("x", 0), e)

	assert.Empty(t, cmp.Diff(e, got))
}

func TestSubstCapturesCorrectly(t *testing.T) {
	// Replacing x@0 with a term that mentions a free y, under a y binder,
	// must shift that y so it still refers to the outer scope.
	replacement := term.NewVar("y", 0)
	target := term.NewLam("y", term.NewConst(term.Star), term.NewVar("x", 0))

	got := Subst("x", 0, replacement, target)
	want := term.NewLam("y", term.NewConst(term.Star), term.NewVar("y", 1))

	require.Empty(t, cmp.Diff(want, got))
}

func TestUsed(t *testing.T) {
	tests := []struct {
		name string
		x    string
		e    term.Expr
		want bool
	}{
		{"free occurrence counts", "x", term.NewVar("x", 0), true},
		{"bound occurrence under own binder does not count", "x", term.NewLam("x", term.NewConst(term.Star), term.NewVar("x", 0)), false},
		{"occurrence escaping a foreign binder counts", "x", term.NewLam("y", term.NewConst(term.Star), term.NewVar("x", 0)), true},
		{"absent name", "z", term.NewVar("x", 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Used(tt.x, tt.e))
		})
	}
}

func TestFreeIn(t *testing.T) {
	v := term.V("x", 0)

	assert.True(t, FreeIn(v, term.NewVar("x", 0)))
	assert.False(t, FreeIn(v, term.NewLam("x", term.NewConst(term.Star), term.NewVar("x", 0))))
	assert.True(t, FreeIn(v, term.NewLam("y", term.NewConst(term.Star), term.NewVar("x", 0))))
}
