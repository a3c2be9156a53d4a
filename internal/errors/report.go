package errors

import (
	"encoding/json"
	"fmt"

	"github.com/purelang/coc/internal/printer"
	"github.com/purelang/coc/internal/schema"
	"github.com/purelang/coc/internal/term"
	"github.com/purelang/coc/internal/typecheck"
)

// Report is the structured, JSON-encodable rendering of a
// *typecheck.TypeError: a stable code, a phase, a human-readable
// message, and a Data bag for structured detail.
type Report struct {
	Schema  string         `json:"schema"`
	Code    string         `json:"code"`
	Phase   string         `json:"phase"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// FromTypeError builds a Report from a checker failure.
func FromTypeError(err *typecheck.TypeError) *Report {
	r := &Report{
		Schema:  schema.ErrorV1,
		Code:    CodeFor(err.Message.Kind),
		Phase:   "typecheck",
		Message: err.Message.Kind.String(),
		Data: map[string]any{
			"expression": printer.Print(err.Expr),
			"context":    contextData(err.Ctx),
		},
	}

	switch err.Message.Kind {
	case typecheck.InvalidInputType, typecheck.InvalidOutputType:
		r.Data["offending"] = printer.Print(err.Message.Offending)
	case typecheck.TypeMismatch:
		r.Data["expected"] = printer.Print(err.Message.Expected)
		r.Data["actual"] = printer.Print(err.Message.Actual)
	case typecheck.Untyped:
		r.Data["sort"] = err.Message.Sort.String()
	}

	return r
}

// contextData renders a Context as "name : type" strings rather than
// exposing Context internals, matching §6's structural-access-only
// contract for collaborators.
func contextData(ctx term.Context) []string {
	out := make([]string, 0, ctx.Len())
	for i := 0; i < ctx.Len(); i++ {
		name, typ, ok := ctx.At(i)
		if !ok {
			continue
		}
		out = append(out, fmt.Sprintf("%s : %s", name, printer.Print(typ)))
	}
	return out
}

// ToJSON renders r as deterministic JSON, pretty-printed unless compact
// is requested.
func (r *Report) ToJSON(compact bool) (string, error) {
	data, err := schema.MarshalDeterministic(r)
	if err != nil {
		return "", err
	}
	schema.SetCompactMode(compact)
	defer schema.SetCompactMode(false)
	out, err := schema.FormatJSON(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ParseReport is the inverse of ToJSON: it decodes a Report a
// collaborator received over the wire (a file, a pipe, another
// process), rejecting it up front if its schema field isn't one this
// version of the package understands, before trusting the rest of the
// fields.
func ParseReport(data []byte) (*Report, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("errors: decoding report: %w", err)
	}
	if err := schema.MustValidate(schema.ErrorV1, raw); err != nil {
		return nil, fmt.Errorf("errors: %w", err)
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("errors: decoding report: %w", err)
	}
	return &r, nil
}

// Error implements the error interface so a Report can be returned
// through ordinary Go error-handling paths when a collaborator wants a
// single error value instead of the raw *typecheck.TypeError.
func (r *Report) Error() string {
	return r.Code + ": " + r.Message
}
