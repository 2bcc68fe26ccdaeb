// Package checker implements the bidirectional expression and statement
// checker (spec.md §2/§4.3/§4.4): call resolution and overload dispatch,
// two-pass generic lambda inference, actuals-to-formals argument mapping,
// operator-to-dunder dispatch, and the statement-level rules (typed
// definitions, assignment including tuple destructuring, control flow,
// raise/try/with).
//
// It consumes the scopes and TypeInfo/Callable signatures internal/sema
// has already resolved; it never itself resolves an annotation or builds
// a class hierarchy. Dispatch is a Go type switch throughout, grounded on
// the teacher's typechecker_core.go / typechecker_operators.go /
// typechecker_functions.go per-node-kind dispatch shape.
package checker

import (
	"github.com/typewright/typewright/internal/ast"
	"github.com/typewright/typewright/internal/errors"
	"github.com/typewright/typewright/internal/sema"
	"github.com/typewright/typewright/internal/symtable"
	"github.com/typewright/typewright/internal/types"
)

// Checker holds the state shared across one file's type-checking pass:
// the resolved Module (classes/funcs/imports), the shared Accumulator,
// the builtin class registry, and a counter, counting down from
// -1_000_000, from which freshVar allocates fresh type-variable IDs.
type Checker struct {
	Module   *sema.Module
	Builtins *sema.Builtins
	Errs     *errors.Accumulator

	nextFreshVar int

	// ctxStack holds the type expected at the position currently being
	// checked (a return value, a typed var-def initializer, an annotated
	// assignment target), innermost last. inferGeneric consults its top
	// for the context-direction step (spec.md §4.3.2): a generic call's
	// return type is unified against this expected type so an expected
	// result type can resolve a variable no argument touches, e.g.
	// `xs: List[int] = empty()`.
	ctxStack []types.Type
}

// NewChecker creates a Checker for one already semantically-analyzed
// module.
func NewChecker(m *sema.Module, builtins *sema.Builtins, errs *errors.Accumulator) *Checker {
	return &Checker{Module: m, Builtins: builtins, Errs: errs, nextFreshVar: -1_000_000}
}

// pushCtx records t as the expected type for whatever is about to be
// checked (spec.md §4.3.2 context-direction); popCtx must be called once
// that check returns, even on an early return, so stale context never
// leaks into an unrelated sibling expression.
func (c *Checker) pushCtx(t types.Type) {
	c.ctxStack = append(c.ctxStack, t)
}

func (c *Checker) popCtx() {
	c.ctxStack = c.ctxStack[:len(c.ctxStack)-1]
}

// peekCtx returns the innermost expected type, or nil if none is active.
func (c *Checker) peekCtx() types.Type {
	if len(c.ctxStack) == 0 {
		return nil
	}
	return c.ctxStack[len(c.ctxStack)-1]
}

// freshVar allocates a type variable ID guaranteed not to collide with
// any class (positive) or source-level function (small negative) type
// variable. inferGeneric does not call it: two-pass lambda inference
// solves the callee's own variable IDs and introduces no synthetic ones.
func (c *Checker) freshVar() int {
	id := c.nextFreshVar
	c.nextFreshVar--
	return id
}

// CheckFile type-checks every top-level definition in the module's file,
// returning true iff no new errors were added during this pass.
func (c *Checker) CheckFile() bool {
	before := len(c.Errs.Reports())
	for _, def := range c.Module.File.Defs {
		c.checkTopLevelDef(def)
	}
	return len(c.Errs.Reports()) == before
}

func (c *Checker) checkTopLevelDef(def ast.Node) {
	switch n := def.(type) {
	case *ast.FuncDef:
		c.Errs.WithScope(errors.ScopeFrame{Kind: errors.ScopeFunction, Name: n.Name}, func() {
			c.checkFuncBody(n, c.Module.Globals, nil)
		})
	case *ast.OverloadedFuncDef:
		for _, v := range n.Variants {
			c.Errs.WithScope(errors.ScopeFrame{Kind: errors.ScopeFunction, Name: n.Name}, func() {
				c.checkFuncBody(v, c.Module.Globals, nil)
			})
		}
	case *ast.ClassDef:
		c.checkClassBody(n)
	case *ast.VarDef:
		c.checkVarDef(n, c.Module.Globals)
	}
}

func (c *Checker) checkClassBody(cd *ast.ClassDef) {
	ti, ok := c.Module.Classes[cd.Name]
	if !ok {
		return
	}
	scope := symtable.NewScope(c.Module.Globals, symtable.TypeVariable)
	for i, name := range cd.TypeVars {
		scope.DefineTypeVar(name, i+1, "")
	}
	for _, node := range cd.Body {
		switch n := node.(type) {
		case *ast.FuncDef:
			c.Errs.WithScope(errors.ScopeFrame{Kind: errors.ScopeMember, Name: n.Name, ClassName: cd.Name}, func() {
				c.checkFuncBody(n, scope, ti)
			})
		case *ast.OverloadedFuncDef:
			for _, v := range n.Variants {
				c.Errs.WithScope(errors.ScopeFrame{Kind: errors.ScopeMember, Name: n.Name, ClassName: cd.Name}, func() {
					c.checkFuncBody(v, scope, ti)
				})
			}
		case *ast.VarDef:
			c.checkVarDef(n, scope)
		}
	}
}

// checkFuncBody binds parameters into a fresh local scope and checks the
// body's statements against the declared return type. owner is the
// enclosing class's TypeInfo for a method, or nil for a top-level
// function — passed explicitly so signatureOf never has to guess which
// class a same-named method belongs to.
func (c *Checker) checkFuncBody(fd *ast.FuncDef, enclosing *symtable.Scope, owner *types.TypeInfo) {
	if fd.Body == nil {
		return // interface/abstract declaration: no body to check
	}
	local := symtable.NewScope(enclosing, symtable.Local)
	for i, name := range fd.TypeVars {
		local.DefineTypeVar(name, -(i + 1), "")
	}
	callable := c.signatureOf(fd, owner)
	for i, p := range fd.Params {
		local.Define(p.Name, fd, callable.ArgTypes[i], c.Module.Path)
	}
	ret := callable.Ret
	c.checkBlock(fd.Body, local, ret)
}

// signatureOf recomputes the Callable for fd the same way internal/sema
// built it originally, so parameter types used inside the body agree
// exactly with the ones internal/sema exported for call sites.
func (c *Checker) signatureOf(fd *ast.FuncDef, owner *types.TypeInfo) *types.Callable {
	if owner != nil {
		if m, ok := owner.Methods[fd.Name]; ok {
			if call, ok := m.(*types.Callable); ok {
				return call
			}
			if ov, ok := m.(*types.Overloaded); ok {
				for _, item := range ov.Items {
					if len(item.ArgTypes) == len(fd.Params) {
						return item
					}
				}
			}
		}
	} else if fn, ok := c.Module.Funcs[fd.Name]; ok {
		if call, ok := fn.(*types.Callable); ok {
			return call
		}
		if ov, ok := fn.(*types.Overloaded); ok {
			for _, item := range ov.Items {
				if len(item.ArgTypes) == len(fd.Params) {
					return item
				}
			}
		}
	}
	// Fallback when no resolved signature is found: every parameter is
	// Any (annotations are not read here), and the return is Void when
	// unannotated and Any otherwise.
	argTypes := make([]types.Type, len(fd.Params))
	for i := range argTypes {
		argTypes[i] = types.Any
	}
	ret := types.Type(types.Any)
	if fd.ReturnType == nil {
		ret = types.Void
	}
	return &types.Callable{ArgTypes: argTypes, Ret: ret}
}
