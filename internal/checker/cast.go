package checker

import (
	"github.com/typewright/typewright/internal/ast"
	"github.com/typewright/typewright/internal/errors"
	"github.com/typewright/typewright/internal/symtable"
	"github.com/typewright/typewright/internal/types"
)

// checkCast implements an explicit `cast(x, T)` (spec.md §4.3): allowed
// whenever x's type and T are related by subtyping in either direction,
// or either side is Any/Error, or either side is an interface (a class
// implementing an interface elsewhere in the hierarchy isn't necessarily
// reachable by the subtype walk, so a cast involving an interface can
// always plausibly succeed at runtime); a cast between two disjoint
// concrete non-interface classes is rejected (CST001).
func (c *Checker) checkCast(e *ast.CastExpr, scope *symtable.Scope) types.Type {
	from := c.CheckExpr(e.X, scope)
	to := c.Module.ResolveInScope(e.TargetType, scope, c.Builtins, c.Errs)

	if types.IsSubtype(from, to) || types.IsSubtype(to, from) || involvesInterface(from) || involvesInterface(to) {
		return to
	}
	c.Errs.Add(errors.DisjointCast(e.Position(), from, to))
	return to
}

func involvesInterface(t types.Type) bool {
	inst, ok := t.(*types.Instance)
	return ok && inst.Class != nil && inst.Class.IsInterface
}

// checkTypeApplication implements `f[T1, T2](...)`-style explicit type
// arguments on a generic value (spec.md §4.3.2's opt-out from inference):
// the named variables are substituted directly rather than solved from
// call-site argument types.
func (c *Checker) checkTypeApplication(e *ast.TypeApplicationExpr, scope *symtable.Scope) types.Type {
	base := c.CheckExpr(e.X, scope)
	callable, ok := base.(*types.Callable)
	if !ok || len(callable.Variables) == 0 {
		return base
	}
	sub := make(types.Subst, len(callable.Variables))
	for i, name := range callable.Variables {
		if i >= len(e.TypeArgs) {
			break
		}
		t := c.Module.ResolveInScope(e.TypeArgs[i], scope, c.Builtins, c.Errs)
		sub[-(i + 1)] = t
		callable.AddBoundVar(name, t)
	}
	result := *callable
	result.Variables = nil
	result.ArgTypes = make([]types.Type, len(callable.ArgTypes))
	for i, t := range callable.ArgTypes {
		result.ArgTypes[i] = types.Expand(t, sub)
	}
	result.Ret = types.Expand(callable.Ret, sub)
	return &result
}
