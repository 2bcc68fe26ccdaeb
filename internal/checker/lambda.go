package checker

import (
	"github.com/typewright/typewright/internal/ast"
	"github.com/typewright/typewright/internal/symtable"
	"github.com/typewright/typewright/internal/types"
)

// checkLambda builds a Callable for a lambda expression, binding its
// parameters into a fresh scope before checking the body (spec.md §4.3:
// "a lambda parameter inherits its type from the calling context when
// unannotated, or from an explicit annotation otherwise, never from
// return-position inference").
//
// expected, when non-nil, supplies the calling context's Callable (e.g.
// a formal parameter type once substituted by inferGeneric); an
// unannotated lambda parameter then takes its type from the
// corresponding position of expected instead of defaulting to Any.
func (c *Checker) checkLambda(lam *ast.LambdaExpr, scope *symtable.Scope, expected types.Type) types.Type {
	var expectedCallable *types.Callable
	if ec, ok := expected.(*types.Callable); ok {
		expectedCallable = ec
	}

	local := symtable.NewScope(scope, symtable.Local)
	argTypes := make([]types.Type, len(lam.Params))
	argKinds := make([]ast.ArgKind, len(lam.Params))
	argNames := make([]string, len(lam.Params))
	for i, p := range lam.Params {
		var t types.Type = types.Any
		switch {
		case p.Annotation != nil:
			t = c.resolveInlineAnnotation(p.Annotation, local)
		case expectedCallable != nil && i < len(expectedCallable.ArgTypes):
			t = expectedCallable.ArgTypes[i]
		}
		local.Define(p.Name, lam, t, c.Module.Path)
		argTypes[i] = t
		argKinds[i] = p.Kind
		argNames[i] = p.Name
	}

	ret := c.CheckExpr(lam.Body, local)
	return &types.Callable{
		ArgTypes: argTypes,
		ArgKinds: argKinds,
		ArgNames: argNames,
		MinArgs:  len(lam.Params),
		Ret:      ret,
	}
}
