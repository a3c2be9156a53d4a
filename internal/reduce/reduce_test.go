package reduce

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/purelang/coc/internal/term"
	"github.com/purelang/coc/internal/trace"
)

// identity is λ(a : *) → λ(x : a) → x.
func identity() term.Expr {
	return term.NewLam("a", term.NewConst(term.Star),
		term.NewLam("x", term.NewVar("a", 0), term.NewVar("x", 0)))
}

func TestWHNFBeta(t *testing.T) {
	// (λ(x : *) → x) * reduces to *.
	e := term.NewApp(term.NewLam("x", term.NewConst(term.Star), term.NewVar("x", 0)), term.NewConst(term.Star))

	got := WHNF(e)

	assert.Empty(t, cmp.Diff(term.NewConst(term.Star), got))
}

func TestWHNFDoesNotDescendUnderBinders(t *testing.T) {
	// λ(x : *) → (λ(y:*) → y) x is already in WHNF (a Lam, not an App).
	e := term.NewLam("x", term.NewConst(term.Star),
		term.NewApp(term.NewLam("y", term.NewConst(term.Star), term.NewVar("y", 0)), term.NewVar("x", 0)))

	got := WHNF(e)

	assert.Empty(t, cmp.Diff(e, got))
}

func TestNormalizeIdentityIsItself(t *testing.T) {
	id := identity()

	assert.Empty(t, cmp.Diff(id, Normalize(id)))
}

func TestNormalizeApplyIdentityTwice(t *testing.T) {
	closed := term.NewVar("c", 0)
	// ((id *) closed) should normalize to closed.
	applied := term.NewApp(term.NewApp(identity(), term.NewConst(term.Star)), closed)

	got := Normalize(applied)

	assert.Empty(t, cmp.Diff(closed, got))
}

func TestNormalizeChurchTwoAppliedToSuccAndZero(t *testing.T) {
	// two = λ(n:*) → λ(s: n->n) → λ(z:n) → s (s z)
	nType := term.NewVar("n", 0)
	sType := term.NewArrow(nType, nType)
	two := term.NewLam("n", term.NewConst(term.Star),
		term.NewLam("s", sType,
			term.NewLam("z", nType,
				term.NewApp(term.NewVar("s", 0), term.NewApp(term.NewVar("s", 0), term.NewVar("z", 0))))))

	assert.Empty(t, cmp.Diff(two, Normalize(two)), "two should already be in normal form")

	nat := term.NewVar("Nat", 0)
	succ := term.NewVar("succ", 0)
	zero := term.NewVar("zero", 0)
	applied := term.NewApp(term.NewApp(term.NewApp(two, nat), succ), zero)

	want := term.NewApp(succ, term.NewApp(succ, zero))
	assert.Empty(t, cmp.Diff(want, Normalize(applied)))
}

func TestNormalizeEtaReducesToFunction(t *testing.T) {
	// λ(x : a) → f x normalizes to f when x is not free in f.
	e := term.NewLam("x", term.NewVar("a", 0), term.NewApp(term.NewVar("f", 0), term.NewVar("x", 0)))

	got := Normalize(e)

	assert.Empty(t, cmp.Diff(term.NewVar("f", 0), got))
}

func TestNormalizeEtaDoesNotFireWhenVariableEscapesUnderApplication(t *testing.T) {
	// λ(x:a) → x x is not an eta redex (x is also free in the function
	// position), so it must be left alone.
	e := term.NewLam("x", term.NewVar("a", 0), term.NewApp(term.NewVar("x", 0), term.NewVar("x", 0)))

	got := Normalize(e)

	assert.Empty(t, cmp.Diff(e, got))
}

func TestWHNFTracedRecordsBetaStep(t *testing.T) {
	e := term.NewApp(term.NewLam("x", term.NewConst(term.Star), term.NewVar("x", 0)), term.NewConst(term.Star))

	tr := trace.New()
	got := WHNFTraced(e, tr)

	assert.Empty(t, cmp.Diff(term.NewConst(term.Star), got))
	assert.Equal(t, []trace.Entry{{Kind: "beta", Expr: e}}, tr.Entries())
}

func TestNormalizeTracedRecordsStepsInOrder(t *testing.T) {
	// An eta redex sits in the body of the outer application's head; the
	// head is normalized (firing eta) before the outer application's own
	// beta step is taken, so eta is recorded before beta here.
	etaBody := term.NewLam("x", term.NewVar("a", 0), term.NewApp(term.NewVar("f", 0), term.NewVar("x", 0)))
	outer := term.NewApp(term.NewLam("y", term.NewConst(term.Star), etaBody), term.NewConst(term.Star))

	tr := trace.New()
	got := NormalizeTraced(outer, tr)

	assert.Empty(t, cmp.Diff(term.NewVar("f", 0), got))
	kinds := make([]string, len(tr.Entries()))
	for i, entry := range tr.Entries() {
		kinds[i] = entry.Kind
	}
	assert.Equal(t, []string{"eta", "beta"}, kinds)
}

func TestNormalizeIdempotent(t *testing.T) {
	// normalize(normalize(e)) == normalize(e) — spec.md §8 invariant 4.
	e := term.NewApp(identity(), term.NewConst(term.Star))

	once := Normalize(e)
	twice := Normalize(once)

	assert.Empty(t, cmp.Diff(once, twice))
}
