package errors

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purelang/coc/internal/term"
	"github.com/purelang/coc/internal/typecheck"
	"github.com/purelang/coc/testutil"
)

func TestFromTypeErrorUnbound(t *testing.T) {
	_, typeErr := typecheck.TypeOf(term.NewVar("x", 0))
	require.NotNil(t, typeErr)

	r := FromTypeError(typeErr)

	assert.Equal(t, TC001, r.Code)
	assert.Equal(t, "typecheck", r.Phase)
	assert.Equal(t, "coc.error/v1", r.Schema)
}

func TestFromTypeErrorUntypedIncludesSort(t *testing.T) {
	_, typeErr := typecheck.TypeOf(term.NewConst(term.Box))
	require.NotNil(t, typeErr)

	r := FromTypeError(typeErr)

	assert.Equal(t, TC006, r.Code)
	assert.Equal(t, "□", r.Data["sort"])
}

func TestFromTypeErrorMismatchIncludesBothTypes(t *testing.T) {
	bad := term.NewLam("a", term.NewConst(term.Star),
		term.NewLam("x", term.NewVar("a", 0),
			term.NewApp(
				term.NewLam("y", term.NewConst(term.Star), term.NewVar("y", 0)),
				term.NewVar("x", 0),
			)))
	_, typeErr := typecheck.TypeOf(bad)
	require.NotNil(t, typeErr)

	r := FromTypeError(typeErr)

	assert.Equal(t, TC005, r.Code)
	assert.Equal(t, "*", r.Data["expected"])
	assert.Equal(t, "a", r.Data["actual"])
}

func TestReportToJSONIsValidAndDeterministic(t *testing.T) {
	_, typeErr := typecheck.TypeOf(term.NewVar("x", 0))
	r := FromTypeError(typeErr)

	compact, err := r.ToJSON(true)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(compact), &parsed))
	assert.Equal(t, "TC001", parsed["code"])

	again, err := r.ToJSON(true)
	require.NoError(t, err)
	assert.Equal(t, compact, again)
}

func TestParseReportRoundTrips(t *testing.T) {
	_, typeErr := typecheck.TypeOf(term.NewVar("x", 0))
	r := FromTypeError(typeErr)

	encoded, err := r.ToJSON(true)
	require.NoError(t, err)

	parsed, err := ParseReport([]byte(encoded))
	require.NoError(t, err)
	assert.Equal(t, r.Schema, parsed.Schema)
	assert.Equal(t, r.Code, parsed.Code)
	assert.Equal(t, r.Phase, parsed.Phase)
	assert.Equal(t, r.Message, parsed.Message)
}

func TestParseReportRejectsUnknownSchema(t *testing.T) {
	_, err := ParseReport([]byte(`{"schema":"coc.error/v2","code":"TC001","phase":"typecheck","message":"UnboundVariable"}`))
	assert.Error(t, err)
}

func TestParseReportRejectsMalformedJSON(t *testing.T) {
	_, err := ParseReport([]byte("not json"))
	assert.Error(t, err)
}

func TestReportGoldenJSON(t *testing.T) {
	orig, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(orig) })
	require.NoError(t, os.Chdir(t.TempDir()))

	_, typeErr := typecheck.TypeOf(term.NewVar("x", 0))
	r := FromTypeError(typeErr)
	encoded, err := r.ToJSON(true)
	require.NoError(t, err)

	origUpdate := testutil.UpdateGoldens
	testutil.UpdateGoldens = true
	testutil.AssertGoldenJSON(t, "errors", "unbound-variable", []byte(encoded))
	testutil.UpdateGoldens = origUpdate

	testutil.AssertGoldenJSON(t, "errors", "unbound-variable", []byte(encoded))
}

func TestCodeForCoversAllKinds(t *testing.T) {
	kinds := []typecheck.MessageKind{
		typecheck.UnboundVariable,
		typecheck.InvalidInputType,
		typecheck.InvalidOutputType,
		typecheck.NotAFunction,
		typecheck.TypeMismatch,
		typecheck.Untyped,
	}
	seen := map[string]bool{}
	for _, k := range kinds {
		code := CodeFor(k)
		assert.NotEqual(t, "TC000", code)
		assert.False(t, seen[code], "duplicate code for %v", k)
		seen[code] = true
		_, ok := Registry[code]
		assert.True(t, ok)
	}
}
