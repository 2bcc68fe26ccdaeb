package sema

import (
	"github.com/typewright/typewright/internal/ast"
	"github.com/typewright/typewright/internal/symtable"
	"github.com/typewright/typewright/internal/types"
)

// funcScope builds the type-variable scope visible inside a function's
// own signature and body: function type variables get negative IDs
// `-(i+1)`, disjoint from any enclosing class's positive IDs, so a
// generic method can introduce its own variables without colliding with
// the class's (spec.md §3 "function type variables use negative IDs").
func funcScope(parent *symtable.Scope, typeVars []string) *symtable.Scope {
	s := symtable.NewScope(parent, symtable.TypeVariable)
	for i, name := range typeVars {
		s.DefineTypeVar(name, -(i + 1), "")
	}
	return s
}

// buildCallable resolves a FuncDef's parameter and return annotations
// into a types.Callable (spec.md §4.2). Parameter scope is the function's
// own type variables layered over the enclosing scope (class type
// variables for methods, module globals for top-level functions).
func (a *Analyzer) buildCallable(fd *ast.FuncDef, enclosing *symtable.Scope, lookup classLookup) *types.Callable {
	scope := funcScope(enclosing, fd.TypeVars)

	argTypes := make([]types.Type, len(fd.Params))
	argKinds := make([]ast.ArgKind, len(fd.Params))
	argNames := make([]string, len(fd.Params))
	minArgs := 0
	variadic := false
	for i, p := range fd.Params {
		argTypes[i] = ResolveParam(p, scope, lookup, a.Errs)
		argKinds[i] = p.Kind
		argNames[i] = p.Name
		switch p.Kind {
		case ast.ArgPositionalRequired, ast.ArgNamed:
			if p.Default == nil {
				minArgs++
			}
		case ast.ArgStar, ast.ArgStarStar:
			variadic = true
		}
	}

	var ret types.Type = types.Any
	if fd.ReturnType != nil {
		ret = ResolveAnnotation(fd.ReturnType, scope, lookup, a.Errs)
	} else if fd.Body == nil {
		ret = types.Void
	}

	return &types.Callable{
		ArgTypes:  argTypes,
		ArgKinds:  argKinds,
		ArgNames:  argNames,
		MinArgs:   minArgs,
		Variadic:  variadic,
		Ret:       ret,
		Variables: append([]string{}, fd.TypeVars...),
	}
}

// buildOverload resolves every variant of an OverloadedFuncDef in
// declaration order; spec.md §4.3 step 2 relies on that order for
// first-match dispatch, so Items must not be reordered here.
func (a *Analyzer) buildOverload(ofd *ast.OverloadedFuncDef, enclosing *symtable.Scope, lookup classLookup) *types.Overloaded {
	items := make([]*types.Callable, len(ofd.Variants))
	for i, v := range ofd.Variants {
		items[i] = a.buildCallable(v, enclosing, lookup)
	}
	return &types.Overloaded{Items: items}
}
