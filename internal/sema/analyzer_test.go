package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typewright/typewright/internal/ast"
	"github.com/typewright/typewright/internal/errors"
	"github.com/typewright/typewright/internal/types"
)

func intExpr() *ast.TypeExpr  { return &ast.TypeExpr{Name: "int"} }
func strExpr() *ast.TypeExpr  { return &ast.TypeExpr{Name: "str"} }
func anyExpr() *ast.TypeExpr  { return &ast.TypeExpr{Name: "Any"} }

func TestAnalyzeFileResolvesTopLevelFunction(t *testing.T) {
	errs := errors.NewAccumulator()
	a := NewAnalyzer(errs)

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
				Body:       ast.NewBlock(ast.Pos{}),
			},
		},
	}

	m := a.AnalyzeFile("main", file, map[string]*Module{})
	require.False(t, errs.HasErrors(), "%v", errs.Messages())

	fn, ok := m.Funcs["add"]
	require.True(t, ok)
	c, ok := fn.(*types.Callable)
	require.True(t, ok)
	assert.Equal(t, 2, c.MinArgs)
	assert.Equal(t, "int", c.Ret.String())
}

func TestAnalyzeFileClassHierarchyAndOverride(t *testing.T) {
	errs := errors.NewAccumulator()
	a := NewAnalyzer(errs)

	animal := &ast.ClassDef{
		Name: "Animal",
		Body: []ast.Node{
			&ast.FuncDef{
				Name:       "speak",
				Params:     []ast.Param{{Name: "self", Kind: ast.ArgPositionalRequired, Annotation: anyExpr()}},
				ReturnType: strExpr(),
				Body:       ast.NewBlock(ast.Pos{}),
				IsMethod:   true,
			},
		},
	}
	dog := &ast.ClassDef{
		Name:      "Dog",
		BaseExprs: []*ast.TypeExpr{{Name: "Animal"}},
		Body: []ast.Node{
			&ast.FuncDef{
				Name:       "speak",
				Params:     []ast.Param{{Name: "self", Kind: ast.ArgPositionalRequired, Annotation: anyExpr()}},
				ReturnType: strExpr(),
				Body:       ast.NewBlock(ast.Pos{}),
				IsMethod:   true,
			},
		},
	}

	file := &ast.File{Path: "animals", Defs: []ast.Node{animal, dog}}
	m := a.AnalyzeFile("animals", file, map[string]*Module{})
	require.False(t, errs.HasErrors(), "%v", errs.Messages())

	dogTI := m.Classes["Dog"]
	require.NotNil(t, dogTI.Super)
	assert.Equal(t, "Animal", dogTI.Super.FullName)
	assert.True(t, dogTI.IsSubclassOf(m.Classes["Animal"]))

	_, owner, ok := dogTI.MemberMRO("speak")
	require.True(t, ok)
	assert.Equal(t, dogTI, owner, "Dog's own override should win over Animal's")
}

// TestMapInstanceToSupertypePreservesDeclaredBaseArgs exercises a class
// extending a generic base with its own type variable substituted in
// (`class Box[T] extends Container[T]`): mapping Box[int] to Container
// must yield Container[int], not Container[Any].
func TestMapInstanceToSupertypePreservesDeclaredBaseArgs(t *testing.T) {
	errs := errors.NewAccumulator()
	a := NewAnalyzer(errs)

	container := &ast.ClassDef{Name: "Container", TypeVars: []string{"T"}}
	box := &ast.ClassDef{
		Name:      "Box",
		TypeVars:  []string{"T"},
		BaseExprs: []*ast.TypeExpr{{Name: "Container", Args: []*ast.TypeExpr{{Name: "T"}}}},
	}

	file := &ast.File{Path: "boxes", Defs: []ast.Node{container, box}}
	m := a.AnalyzeFile("boxes", file, map[string]*Module{})
	require.False(t, errs.HasErrors(), "%v", errs.Messages())

	boxTI := m.Classes["Box"]
	containerTI := m.Classes["Container"]

	boxInt := &types.Instance{Class: boxTI, Args: []types.Type{&types.Instance{Class: a.Builtins.Int}}}
	mapped, ok := types.MapInstanceToSupertype(boxInt, containerTI)
	require.True(t, ok)
	require.Len(t, mapped.Args, 1)
	assert.Equal(t, "int", mapped.Args[0].String(), "Box[int] mapped to Container must carry int through, not Any")
}

func TestAnalyzeFileReportsUnknownAnnotation(t *testing.T) {
	errs := errors.NewAccumulator()
	a := NewAnalyzer(errs)

	file := &ast.File{
		Path: "bad",
		Defs: []ast.Node{
			&ast.FuncDef{
				Name:       "f",
				ReturnType: &ast.TypeExpr{Name: "NoSuchType"},
				Body:       ast.NewBlock(ast.Pos{}),
			},
		},
	}
	a.AnalyzeFile("bad", file, map[string]*Module{})
	require.True(t, errs.HasErrors())
	assert.Contains(t, errs.Reports()[0].Message, "NoSuchType")
}

func TestExportedTypeFromImportedModule(t *testing.T) {
	errs := errors.NewAccumulator()
	a := NewAnalyzer(errs)

	libFile := &ast.File{
		Path: "lib",
		Defs: []ast.Node{
			&ast.FuncDef{Name: "id", Params: []ast.Param{{Name: "x", Annotation: intExpr()}}, ReturnType: intExpr(), Body: ast.NewBlock(ast.Pos{})},
		},
	}
	lib := a.AnalyzeFile("lib", libFile, map[string]*Module{})

	mainFile := &ast.File{
		Path: "main",
		Imports: []ast.Import{
			{Kind: ast.ImportFrom, Module: "lib", Names: []string{"id"}},
		},
	}
	main := a.AnalyzeFile("main", mainFile, map[string]*Module{"lib": lib})
	require.False(t, errs.HasErrors(), "%v", errs.Messages())

	sym, ok := main.Globals.LookupLocal("id")
	require.True(t, ok)
	require.NotNil(t, sym.TypeOverride)
	assert.Equal(t, "(int) -> int", sym.TypeOverride.String())
}
