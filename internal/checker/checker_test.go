package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typewright/typewright/internal/ast"
	"github.com/typewright/typewright/internal/errors"
	"github.com/typewright/typewright/internal/sema"
)

func intExpr() *ast.TypeExpr { return &ast.TypeExpr{Name: "int"} }
func strExpr() *ast.TypeExpr { return &ast.TypeExpr{Name: "str"} }
func anyExpr() *ast.TypeExpr { return &ast.TypeExpr{Name: "Any"} }
func boolExpr() *ast.TypeExpr { return &ast.TypeExpr{Name: "bool"} }

func name(n string) *ast.NameExpr { return &ast.NameExpr{Name: n} }

// analyzeAndCheck runs the full sema -> checker pipeline over one file,
// returning the shared Accumulator for assertions.
func analyzeAndCheck(t *testing.T, file *ast.File) *errors.Accumulator {
	t.Helper()
	errs := errors.NewAccumulator()
	a := sema.NewAnalyzer(errs)
	m := a.AnalyzeFile(file.Path, file, map[string]*sema.Module{})
	c := NewChecker(m, a.Builtins, errs)
	c.CheckFile()
	return errs
}

func TestCheckFileAcceptsWellTypedFunction(t *testing.T) {
	file := &ast.File{
		Path: "main",
		Defs: []ast.Node{
			&ast.FuncDef{
				Name: "add",
				Params: []ast.Param{
					{Name: "x", Kind: ast.ArgPositionalRequired, Annotation: intExpr()},
					{Name: "y", Kind: ast.ArgPositionalRequired, Annotation: intExpr()},
				},
				ReturnType: intExpr(),
				Body: ast.NewBlock(ast.Pos{},
					&ast.ReturnStmt{Value: &ast.BinaryExpr{Op: "+", Left: name("x"), Right: name("y")}},
				),
			},
		},
	}
	errs := analyzeAndCheck(t, file)
	assert.False(t, errs.HasErrors(), "%v", errs.Messages())
}

func TestCheckFileReturnTypeMismatchReported(t *testing.T) {
	file := &ast.File{
		Path: "main",
		Defs: []ast.Node{
			&ast.FuncDef{
				Name:       "f",
				ReturnType: intExpr(),
				Body: ast.NewBlock(ast.Pos{},
					&ast.ReturnStmt{Value: &ast.StringLit{Value: "oops"}},
				),
			},
		},
	}
	errs := analyzeAndCheck(t, file)
	require.True(t, errs.HasErrors())
	assert.Equal(t, "FLW003", errs.Reports()[0].Code)
}

func TestCheckFileNonBoolConditionReported(t *testing.T) {
	file := &ast.File{
		Path: "main",
		Defs: []ast.Node{
			&ast.FuncDef{
				Name: "f",
				Body: ast.NewBlock(ast.Pos{},
					&ast.IfStmt{
						Cond: &ast.IntLit{Value: 1},
						Then: ast.NewBlock(ast.Pos{}),
					},
				),
			},
		},
	}
	errs := analyzeAndCheck(t, file)
	require.True(t, errs.HasErrors())
	assert.Equal(t, "FLW001", errs.Reports()[0].Code)
}

// TestCheckFileMethodSignatureUsesOwningClass guards against the
// cross-class signature-resolution ambiguity fixed in checker.go:
// two classes share a same-named, same-arity method, and each body must
// be checked against its own class's declared parameter/return types,
// not whichever class happens to be scanned first.
func TestCheckFileMethodSignatureUsesOwningClass(t *testing.T) {
	makeClass := func(className string, paramType, retType *ast.TypeExpr, retVal ast.Expr) *ast.ClassDef {
		return &ast.ClassDef{
			Name: className,
			Body: []ast.Node{
				&ast.FuncDef{
					Name:     "describe",
					IsMethod: true,
					Params: []ast.Param{
						{Name: "self", Annotation: anyExpr()},
						{Name: "v", Annotation: paramType},
					},
					ReturnType: retType,
					Body:       ast.NewBlock(ast.Pos{}, &ast.ReturnStmt{Value: retVal}),
				},
			},
		}
	}

	file := &ast.File{
		Path: "main",
		Defs: []ast.Node{
			makeClass("Box", intExpr(), strExpr(), &ast.StringLit{Value: "ok"}),
			makeClass("Flag", boolExpr(), boolExpr(), name("v")),
		},
	}
	errs := analyzeAndCheck(t, file)
	assert.False(t, errs.HasErrors(), "%v", errs.Messages())
}

func TestCheckFileUndefinedNameReported(t *testing.T) {
	file := &ast.File{
		Path: "main",
		Defs: []ast.Node{
			&ast.FuncDef{
				Name: "f",
				Body: ast.NewBlock(ast.Pos{},
					&ast.ExprStmt{X: name("nope")},
				),
			},
		},
	}
	errs := analyzeAndCheck(t, file)
	require.True(t, errs.HasErrors())
	assert.Equal(t, "NAM001", errs.Reports()[0].Code)
}

// TestCheckFileListIndexReturnsElementType exercises the list[T]
// __getitem__ dunder registered in sema/bootstrap.go: indexing a
// list[int] with an int must synthesize int, not Any or an error.
func TestCheckFileListIndexReturnsElementType(t *testing.T) {
	listInt := &ast.TypeExpr{Name: "list", Args: []*ast.TypeExpr{intExpr()}}
	file := &ast.File{
		Path: "main",
		Defs: []ast.Node{
			&ast.FuncDef{
				Name: "first",
				Params: []ast.Param{
					{Name: "xs", Kind: ast.ArgPositionalRequired, Annotation: listInt},
				},
				ReturnType: intExpr(),
				Body: ast.NewBlock(ast.Pos{},
					&ast.ReturnStmt{Value: &ast.IndexExpr{X: name("xs"), Index: &ast.IntLit{Value: 0}}},
				),
			},
		},
	}
	errs := analyzeAndCheck(t, file)
	assert.False(t, errs.HasErrors(), "%v", errs.Messages())
}

// TestCheckFileDisjointCastReported guards cast.go's rejection of casts
// between two unrelated concrete classes.
func TestCheckFileDisjointCastReported(t *testing.T) {
	file := &ast.File{
		Path: "main",
		Defs: []ast.Node{
			&ast.FuncDef{
				Name: "f",
				Body: ast.NewBlock(ast.Pos{},
					&ast.ExprStmt{X: &ast.CastExpr{X: &ast.IntLit{Value: 1}, TargetType: strExpr()}},
				),
			},
		},
	}
	errs := analyzeAndCheck(t, file)
	require.True(t, errs.HasErrors())
	assert.Equal(t, "CST001", errs.Reports()[0].Code)
}

func TestCheckFileMissingRequiredArgument(t *testing.T) {
	file := &ast.File{
		Path: "main",
		Defs: []ast.Node{
			&ast.FuncDef{
				Name: "f",
				Params: []ast.Param{
					{Name: "x", Kind: ast.ArgPositionalRequired, Annotation: intExpr()},
				},
				ReturnType: intExpr(),
				Body:       ast.NewBlock(ast.Pos{}, &ast.ReturnStmt{Value: name("x")}),
			},
			&ast.FuncDef{
				Name: "g",
				Body: ast.NewBlock(ast.Pos{},
					&ast.ExprStmt{X: &ast.CallExpr{Callee: name("f")}},
				),
			},
		},
	}
	errs := analyzeAndCheck(t, file)
	require.True(t, errs.HasErrors())
	assert.Equal(t, "CAL001", errs.Reports()[0].Code)
}
