// Package errors implements the Messages and Errors components of
// spec.md §2/§4/§7: a structured error report type, an error-code
// taxonomy, an accumulator with an import-context stack and a
// speculative-checking disable counter, and a human-facing renderer.
//
// The Report/ReportError split is kept from the teacher's
// internal/errors/report.go: builders return *Report so structured data
// (Data/Fix) survives alongside the formatted message, and ReportError
// wraps it to satisfy the error interface without losing that structure
// to errors.As() unwrapping.
package errors

import (
	"encoding/json"
	stderrors "errors"

	"github.com/typewright/typewright/internal/ast"
)

// SchemaV1 replaces the teacher's separate internal/schema package (see
// DESIGN.md "Dropped teacher dependencies"): a single version string is
// not worth a package of its own once the eval-harness plan/registry
// machinery that motivated that package is out of scope.
const SchemaV1 = "typecheck.error/v1"

// Fix is an optional suggested-fix hint attached to a Report.
type Fix struct {
	Suggestion string  `json:"suggestion"`
	Confidence float64 `json:"confidence"`
}

// Report is the canonical structured error type for this checker.
type Report struct {
	Schema  string         `json:"schema"`
	Code    string         `json:"code"`
	Phase   string         `json:"phase"`
	Message string         `json:"message"`
	Span    *ast.Span      `json:"span,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
	Fix     *Fix           `json:"fix,omitempty"`

	// Context and ImportChain are filled in by Accumulator.Add from the
	// current scope/import stacks (spec.md §6's "At top level:"/"In
	// function \"F\":"/"In module imported in P, line L" context lines).
	Context     string   `json:"-"`
	ImportChain []string `json:"-"`
}

// ReportError wraps a Report as an error.
type ReportError struct {
	Rep *Report
}

func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown error"
	}
	return e.Rep.Code + ": " + e.Rep.Message
}

// AsReport extracts a Report from an error chain, if present.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if stderrors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// WrapReport wraps r as an error.
func WrapReport(r *Report) error {
	if r == nil {
		return nil
	}
	return &ReportError{Rep: r}
}

// ToJSON renders r as deterministic JSON.
func (r *Report) ToJSON(compact bool) (string, error) {
	if compact {
		b, err := json.Marshal(r)
		return string(b), err
	}
	b, err := json.MarshalIndent(r, "", "  ")
	return string(b), err
}

// New builds a Report for the given phase/code/message, with an optional
// source span and structured data.
func New(phase, code, message string, span *ast.Span, data map[string]any) *Report {
	return &Report{
		Schema:  SchemaV1,
		Code:    code,
		Phase:   phase,
		Message: message,
		Span:    span,
		Data:    data,
	}
}

// WithFix attaches a suggested-fix hint and returns r for chaining.
func (r *Report) WithFix(suggestion string, confidence float64) *Report {
	r.Fix = &Fix{Suggestion: suggestion, Confidence: confidence}
	return r
}
