package checker

import (
	"github.com/typewright/typewright/internal/ast"
	"github.com/typewright/typewright/internal/errors"
	"github.com/typewright/typewright/internal/symtable"
	"github.com/typewright/typewright/internal/types"
)

// checkIndex implements `x[i]` (spec.md §4.3 indexing): a literal
// integer index into a Tuple projects out that element's exact type; any
// other receiver dispatches to `__getitem__`. A non-literal index into a
// tuple is rejected (IDX001) rather than falling back to the tuple's
// joined element type — kept deliberately conservative, see DESIGN.md's
// Open Question decision on this point.
func (c *Checker) checkIndex(e *ast.IndexExpr, scope *symtable.Scope) types.Type {
	xt := c.CheckExpr(e.X, scope)
	idxT := c.CheckExpr(e.Index, scope)

	if tup, ok := xt.(*types.Tuple); ok {
		lit, isLit := e.Index.(*ast.IntLit)
		if !isLit {
			c.Errs.Add(errors.InvalidTupleIndex(e.Position(), "index must be an integer literal"))
			return types.ErrorT
		}
		i := int(lit.Value)
		if i < 0 {
			i += len(tup.Items)
		}
		if i < 0 || i >= len(tup.Items) {
			c.Errs.Add(errors.InvalidTupleIndex(e.Position(), "index out of range"))
			return types.ErrorT
		}
		return tup.Items[i]
	}

	inst, ok := xt.(*types.Instance)
	if !ok {
		if _, isAny := xt.(*types.AnyType); isAny {
			return types.Any
		}
		c.Errs.Add(errors.NoSuchMember(e.Position(), xt, "__getitem__"))
		return types.ErrorT
	}
	fn, owner, ok := inst.Class.MemberMRO("__getitem__")
	if !ok {
		c.Errs.Add(errors.NoSuchMember(e.Position(), xt, "__getitem__"))
		return types.ErrorT
	}
	callable, ok := fn.(*types.Callable)
	if !ok {
		c.Errs.Add(errors.OperatorNotCallable(e.Position(), "__getitem__", xt))
		return types.ErrorT
	}
	if len(callable.ArgTypes) > 1 && !types.IsSubtype(idxT, callable.ArgTypes[1]) {
		c.Errs.Add(errors.ArgumentTypeMismatch(e.Position(), 1, "__getitem__", callable.ArgTypes[1], idxT))
	}
	return types.Expand(callable.Ret, substFromInstance(inst, owner))
}

// checkSlice implements `x[lo:hi]`: both endpoints, if present, must be
// int; the result type is x's own type (slicing a list[T] yields list[T],
// slicing a tuple yields the same tuple type conservatively).
func (c *Checker) checkSlice(e *ast.SliceExpr, scope *symtable.Scope) types.Type {
	xt := c.CheckExpr(e.X, scope)
	intInst := &types.Instance{Class: c.Builtins.Int}
	if e.Low != nil {
		if t := c.CheckExpr(e.Low, scope); !types.IsSubtype(t, intInst) {
			c.Errs.Add(errors.NonIntegerSliceEndpoint(e.Low.Position(), t))
		}
	}
	if e.High != nil {
		if t := c.CheckExpr(e.High, scope); !types.IsSubtype(t, intInst) {
			c.Errs.Add(errors.NonIntegerSliceEndpoint(e.High.Position(), t))
		}
	}
	return xt
}
