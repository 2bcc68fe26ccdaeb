package checker

import (
	"github.com/typewright/typewright/internal/ast"
	"github.com/typewright/typewright/internal/errors"
	"github.com/typewright/typewright/internal/symtable"
	"github.com/typewright/typewright/internal/types"
)

// opMethod maps a surface operator token to the dunder method that
// implements it (spec.md §4.3's "operator-to-dunder-method dispatch").
// Identity (`is`/`is not`) and boolean (`and`/`or`/`not`) operators are
// handled structurally below rather than through a method lookup, since
// no user class can override them.
var opMethod = map[string]string{
	"+": "__add__", "-": "__sub__", "*": "__mul__", "/": "__truediv__",
	"//": "__floordiv__", "%": "__mod__", "**": "__pow__",
	"==": "__eq__", "!=": "__ne__", "<": "__lt__", "<=": "__le__",
	">": "__gt__", ">=": "__ge__",
	"&": "__and__", "|": "__or__", "^": "__xor__",
	"<<": "__lshift__", ">>": "__rshift__",
	"in": "__contains__", "not in": "__contains__",
}

var unaryOpMethod = map[string]string{
	"-": "__neg__", "+": "__pos__", "~": "__invert__",
}

func (c *Checker) checkBinary(e *ast.BinaryExpr, scope *symtable.Scope) types.Type {
	left := c.CheckExpr(e.Left, scope)
	right := c.CheckExpr(e.Right, scope)

	switch e.Op {
	case "and", "or":
		return types.Join(left, right)
	case "is", "is not":
		return &types.Instance{Class: c.Builtins.Bool}
	}

	method, ok := opMethod[e.Op]
	if !ok {
		c.Errs.Add(errors.UnsupportedOperand(e.Position(), e.Op, left, right))
		return types.ErrorT
	}

	recv, arg := left, right
	if e.Op == "in" || e.Op == "not in" {
		recv, arg = right, left
	}

	inst, ok := recv.(*types.Instance)
	if !ok {
		if _, isAny := recv.(*types.AnyType); isAny {
			return types.Any
		}
		c.Errs.Add(errors.UnsupportedOperand(e.Position(), e.Op, left, right))
		return types.ErrorT
	}

	fn, owner, ok := inst.Class.MemberMRO(method)
	if !ok {
		c.Errs.Add(errors.UnsupportedOperand(e.Position(), e.Op, left, right))
		return types.ErrorT
	}
	callable, ok := fn.(*types.Callable)
	if !ok {
		c.Errs.Add(errors.OperatorNotCallable(e.Position(), method, recv))
		return types.ErrorT
	}
	// callable's first declared parameter is the implicit receiver; the
	// remaining parameter (if any) is the operand.
	if len(callable.ArgTypes) > 1 && !types.IsSubtype(arg, callable.ArgTypes[1]) {
		c.Errs.Add(errors.UnsupportedOperand(e.Position(), e.Op, left, right))
		return types.ErrorT
	}
	return types.Expand(callable.Ret, substFromInstance(inst, owner))
}

func (c *Checker) checkUnary(e *ast.UnaryExpr, scope *symtable.Scope) types.Type {
	x := c.CheckExpr(e.X, scope)
	if e.Op == "not" {
		return &types.Instance{Class: c.Builtins.Bool}
	}
	method, ok := unaryOpMethod[e.Op]
	if !ok {
		c.Errs.Add(errors.UnsupportedOperand(e.Position(), e.Op, x, types.Void))
		return types.ErrorT
	}
	inst, ok := x.(*types.Instance)
	if !ok {
		if _, isAny := x.(*types.AnyType); isAny {
			return types.Any
		}
		c.Errs.Add(errors.UnsupportedOperand(e.Position(), e.Op, x, types.Void))
		return types.ErrorT
	}
	fn, owner, ok := inst.Class.MemberMRO(method)
	if !ok {
		c.Errs.Add(errors.UnsupportedOperand(e.Position(), e.Op, x, types.Void))
		return types.ErrorT
	}
	callable, ok := fn.(*types.Callable)
	if !ok {
		c.Errs.Add(errors.OperatorNotCallable(e.Position(), method, x))
		return types.ErrorT
	}
	return types.Expand(callable.Ret, substFromInstance(inst, owner))
}

// substFromInstance builds the Subst that rewrites owner's class type
// variables to inst's actual type arguments, so a member looked up
// through inst.Class.MemberMRO (whose Ret/ArgTypes may mention owner's
// class vars) can be expanded back into inst's own type arguments. Shared
// by checkMember, checkIndex and the operator dispatch in this file.
func substFromInstance(inst *types.Instance, owner *types.TypeInfo) types.Subst {
	sub := make(types.Subst)
	for i, name := range owner.TypeVars {
		_ = name
		if i < len(inst.Args) {
			sub[i+1] = inst.Args[i]
		}
	}
	return sub
}
