package checker

import (
	"github.com/typewright/typewright/internal/ast"
	"github.com/typewright/typewright/internal/constraints"
	"github.com/typewright/typewright/internal/errors"
	"github.com/typewright/typewright/internal/symtable"
	"github.com/typewright/typewright/internal/types"
)

// inferGeneric solves callee's type variables from the already-checked
// actual argument types and substitutes the solution into a fresh
// Callable (spec.md §4.2/§4.3.2). Unresolved variables fall back to Any,
// matching "after each pass, unsolved variables become Any."
//
// Lambda arguments get a second look: if a positional actual is itself a
// LambdaExpr, its parameter types are first
// inferred from the already-substituted formal (a first pass over the
// non-lambda arguments), then the lambda is re-checked under that
// context — the two-pass shape spec.md §4.3.2 asks for.
func (c *Checker) inferGeneric(e *ast.CallExpr, callee *types.Callable, mapping *argMapping, actualTypes []types.Type, scope *symtable.Scope) *types.Callable {
	varIDs := make([]int, len(callee.Variables))
	for i := range callee.Variables {
		varIDs[i] = -(i + 1)
	}

	var cs []constraints.Constraint
	for i, formal := range callee.ArgTypes {
		if i >= len(actualTypes) {
			break
		}
		if isLambdaArg(mapping, i) {
			continue // deferred to the second pass below
		}
		cs = append(cs, constraints.InferConstraints(formal, actualTypes[i])...)
	}
	cs = append(cs, c.contextConstraints(callee, varIDs)...)

	sol := constraints.SolveConstraints(varIDs, cs)
	sub := sol.ToSubst(types.Any)

	// Second pass: re-check any lambda actual against its now-substituted
	// formal parameter types, so its body sees concrete (not Any) types.
	for i, formal := range callee.ArgTypes {
		if i >= len(mapping.positional) || !isLambdaArg(mapping, i) {
			continue
		}
		lam := mapping.positional[i].Value.(*ast.LambdaExpr)
		expected := types.Expand(formal, sub)
		actualTypes[i] = c.checkLambda(lam, scope, expected)
		cs = append(cs, constraints.InferConstraints(formal, actualTypes[i])...)
	}
	if len(cs) > 0 {
		sol = constraints.SolveConstraints(varIDs, cs)
		sub = sol.ToSubst(types.Any)
	}

	for _, id := range varIDs {
		if sol.IsUnsolved(id) {
			name := callee.Variables[-id-1]
			c.Errs.Add(errors.UnresolvedTypeVariable(e.Position(), calleeDisplayName(e.Callee), name))
		}
	}

	result := &types.Callable{
		ArgTypes:  make([]types.Type, len(callee.ArgTypes)),
		ArgKinds:  callee.ArgKinds,
		ArgNames:  callee.ArgNames,
		MinArgs:   callee.MinArgs,
		Variadic:  callee.Variadic,
		Ret:       types.Expand(callee.Ret, sub),
		IsTypeObj: callee.IsTypeObj,
	}
	for i, t := range callee.ArgTypes {
		result.ArgTypes[i] = types.Expand(t, sub)
	}
	for _, name := range callee.Variables {
		result.AddBoundVar(name, sub[varIDFor(callee, name)])
	}
	return result
}

// contextConstraints implements spec.md §4.3.2's context-direction step:
// the enclosing expected type (a return statement's declared return type,
// a typed var-def's annotation, an assignment to an already-declared
// name) is unified against callee's return type, so a variable no
// argument touches can still resolve, e.g. `xs: List[int] = empty()`.
//
// Type variables reachable in the context type that do NOT belong to
// this call (varIDs) are erased first — otherwise an enclosing generic
// function's own type parameter would leak into InferConstraints as a
// concrete "actual" and generate a bogus constraint.
func (c *Checker) contextConstraints(callee *types.Callable, varIDs []int) []constraints.Constraint {
	ctx := c.peekCtx()
	if ctx == nil {
		return nil
	}
	keep := make(map[int]bool, len(varIDs))
	for _, id := range varIDs {
		keep[id] = true
	}
	return constraints.InferConstraints(callee.Ret, eraseForeignFunctionVars(ctx, keep))
}

// collectNegativeVarIDs records every negative-ID TypeVar reachable in t.
// Source-level function type variables are allocated negative IDs (class
// type variables are positive and aren't foreign to any particular call).
func collectNegativeVarIDs(t types.Type, out map[int]bool) {
	switch t := t.(type) {
	case *types.TypeVar:
		if t.ID < 0 {
			out[t.ID] = true
		}
	case *types.Instance:
		for _, a := range t.Args {
			collectNegativeVarIDs(a, out)
		}
	case *types.Tuple:
		for _, it := range t.Items {
			collectNegativeVarIDs(it, out)
		}
	case *types.Callable:
		for _, a := range t.ArgTypes {
			collectNegativeVarIDs(a, out)
		}
		collectNegativeVarIDs(t.Ret, out)
	}
}

// eraseForeignFunctionVars replaces every negative-ID TypeVar reachable in
// t that is not in keep with types.Erased, so InferConstraints skips
// those positions (spec.md §3) instead of constraining a variable this
// call isn't solving for.
func eraseForeignFunctionVars(t types.Type, keep map[int]bool) types.Type {
	found := make(map[int]bool)
	collectNegativeVarIDs(t, found)
	if len(found) == 0 {
		return t
	}
	sub := make(types.Subst)
	for id := range found {
		if !keep[id] {
			sub[id] = types.Erased
		}
	}
	if len(sub) == 0 {
		return t
	}
	return types.Expand(t, sub)
}

func isLambdaArg(mapping *argMapping, i int) bool {
	if i >= len(mapping.positional) || mapping.positional[i] == nil {
		return false
	}
	_, ok := mapping.positional[i].Value.(*ast.LambdaExpr)
	return ok
}

func varIDFor(callee *types.Callable, name string) int {
	for i, n := range callee.Variables {
		if n == name {
			return -(i + 1)
		}
	}
	return 0
}
