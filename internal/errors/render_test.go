package errors

import (
	"encoding/json"
	"testing"

	"github.com/typewright/typewright/internal/ast"
	"github.com/typewright/typewright/testutil"
)

// TestRenderAllGolden pins RenderAll's ordering, dedup, and
// context/import-chain prefixing against a fixture (spec.md §5/§7's
// "Ordering"/"User-visible behavior"), following the teacher's use of
// golden JSON files for output that's easier to eyeball as a whole
// rendered transcript than to assert line-by-line.
func TestRenderAllGolden(t *testing.T) {
	reports := []*Report{
		New("call", CAL001, `"f" is missing required argument "x"`,
			&ast.Span{Start: ast.Pos{File: "main", Line: 12}}, nil),
		New("flow", "FLW003", "returned str, expected int",
			&ast.Span{Start: ast.Pos{File: "main", Line: 3}}, nil),
		New("flow", "FLW003", "returned str, expected int",
			&ast.Span{Start: ast.Pos{File: "main", Line: 3}}, nil), // adjacent duplicate, dropped
		New("name", "NAM001", `undefined name "nope"`,
			&ast.Span{Start: ast.Pos{File: "other", Line: 1}}, nil),
	}
	reports[0].Context = `In function "f":`
	reports[1].Context = `At top level:`
	reports[3].Context = `At top level:`
	reports[3].ImportChain = []string{`In module imported in main, line 20:`}

	lines, err := json.Marshal(RenderAll(reports))
	if err != nil {
		t.Fatalf("failed to marshal rendered lines: %v", err)
	}
	testutil.AssertGoldenJSON(t, "errors", "render_all", lines)
}
