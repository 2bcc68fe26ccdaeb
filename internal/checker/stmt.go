package checker

import (
	"github.com/typewright/typewright/internal/ast"
	"github.com/typewright/typewright/internal/errors"
	"github.com/typewright/typewright/internal/symtable"
	"github.com/typewright/typewright/internal/types"
)

// checkBlock checks every statement in block under scope, threading
// retType through so nested `return`s can be validated (spec.md §4.4).
func (c *Checker) checkBlock(block *ast.Block, scope *symtable.Scope, retType types.Type) {
	if block == nil {
		return
	}
	for _, stmt := range block.Stmts {
		c.checkStmt(stmt, scope, retType)
	}
}

func (c *Checker) checkStmt(stmt ast.Node, scope *symtable.Scope, retType types.Type) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		t := c.CheckExpr(s.X, scope)
		_ = t
	case *ast.AssignStmt:
		c.checkAssign(s, scope)
	case *ast.VarDef:
		c.checkVarDef(s, scope)
	case *ast.ReturnStmt:
		c.checkReturn(s, scope, retType)
	case *ast.RaiseStmt:
		c.checkRaise(s, scope)
	case *ast.IfStmt:
		c.checkCondition(s.Cond, scope)
		inner := symtable.NewScope(scope, symtable.Local)
		c.checkBlock(s.Then, inner, retType)
		switch e := s.Else.(type) {
		case *ast.Block:
			c.checkBlock(e, symtable.NewScope(scope, symtable.Local), retType)
		case *ast.IfStmt:
			c.checkStmt(e, scope, retType)
		}
	case *ast.WhileStmt:
		c.checkCondition(s.Cond, scope)
		c.checkBlock(s.Body, symtable.NewScope(scope, symtable.Local), retType)
	case *ast.ForStmt:
		c.checkFor(s, scope, retType)
	case *ast.TryStmt:
		c.checkTry(s, scope, retType)
	case *ast.WithStmt:
		c.checkWith(s, scope, retType)
	case *ast.Block:
		c.checkBlock(s, symtable.NewScope(scope, symtable.Local), retType)
	}
}

func (c *Checker) checkCondition(cond ast.Expr, scope *symtable.Scope) {
	t := c.CheckExpr(cond, scope)
	boolInst := &types.Instance{Class: c.Builtins.Bool}
	if _, isAny := t.(*types.AnyType); isAny {
		return
	}
	if !types.IsSubtype(t, boolInst) {
		c.Errs.Add(errors.NonBoolCondition(cond.Position(), t))
	}
}

// checkVarDef checks a (possibly multi-name, tuple-destructuring) typed
// variable definition (spec.md §4.4 "Typed definitions").
func (c *Checker) checkVarDef(vd *ast.VarDef, scope *symtable.Scope) {
	var declaredEarly types.Type
	if len(vd.Names) == 1 {
		declaredEarly = c.varDefDeclaredType(vd, scope)
	}

	var initT types.Type
	if vd.Initializer != nil {
		if declaredEarly != nil {
			c.pushCtx(declaredEarly)
			initT = c.CheckExpr(vd.Initializer, scope)
			c.popCtx()
		} else {
			initT = c.CheckExpr(vd.Initializer, scope)
		}
	}

	if len(vd.Names) == 1 {
		declared := declaredEarly
		if declared == nil {
			declared = initT
			if declared == nil {
				declared = types.Any
			}
		} else if initT != nil && !types.IsSubtype(initT, declared) {
			c.Errs.Add(errors.AssignmentTypeMismatch(vd.Position(), vd.Names[0], declared, initT))
		}
		scope.Define(vd.Names[0], vd, declared, c.Module.Path)
		return
	}

	tup, ok := initT.(*types.Tuple)
	if !ok {
		for _, name := range vd.Names {
			scope.Define(name, vd, types.Any, c.Module.Path)
		}
		return
	}
	if len(tup.Items) != len(vd.Names) {
		c.Errs.Add(errors.TupleAssignmentArity(vd.Position(), len(vd.Names), len(tup.Items)))
	}
	for i, name := range vd.Names {
		var t types.Type = types.Any
		if i < len(tup.Items) {
			t = tup.Items[i]
		}
		scope.Define(name, vd, t, c.Module.Path)
	}
}

func (c *Checker) varDefDeclaredType(vd *ast.VarDef, scope *symtable.Scope) types.Type {
	if vd.Annotation == nil {
		return nil
	}
	return c.Module.ResolveInScope(vd.Annotation, scope, c.Builtins, c.Errs)
}

// checkAssign checks `targets = value` (spec.md §4.4 "Assignment"),
// including `a, b = value` tuple destructuring across arbitrary lvalue
// kinds (name, member, index).
func (c *Checker) checkAssign(s *ast.AssignStmt, scope *symtable.Scope) {
	ctx := c.assignTargetDeclaredType(s, scope)
	if ctx != nil {
		c.pushCtx(ctx)
	}
	valT := c.CheckExpr(s.Value, scope)
	if ctx != nil {
		c.popCtx()
	}

	if len(s.Targets) == 1 {
		if tup, ok := s.Targets[0].(*ast.TupleExpr); ok {
			c.assignTuple(tup, valT, scope)
			return
		}
		c.assignOne(s.Targets[0], valT, scope)
		return
	}
	for _, target := range s.Targets {
		c.assignOne(target, valT, scope)
	}
}

// assignTargetDeclaredType looks up the single target's already-declared
// type, if any, to use as the context-direction expected type (spec.md
// §4.3.2) while checking the rvalue — mirrors the TypeOverride lookups
// assignOne performs for its own mismatch check, done early here so a
// generic call on the rvalue sees the target's type before argument
// constraints alone would resolve it.
func (c *Checker) assignTargetDeclaredType(s *ast.AssignStmt, scope *symtable.Scope) types.Type {
	if len(s.Targets) != 1 {
		return nil
	}
	name, ok := s.Targets[0].(*ast.NameExpr)
	if !ok {
		return nil
	}
	if sym, ok := scope.LookupLocal(name.Name); ok && sym.TypeOverride != nil {
		return sym.TypeOverride
	}
	if sym, ok := scope.Lookup(name.Name); ok && sym.TypeOverride != nil {
		return sym.TypeOverride
	}
	return nil
}

func (c *Checker) assignTuple(tup *ast.TupleExpr, valT types.Type, scope *symtable.Scope) {
	rhsTuple, ok := valT.(*types.Tuple)
	if !ok {
		for _, item := range tup.Items {
			c.assignOne(item, types.Any, scope)
		}
		return
	}
	if len(rhsTuple.Items) != len(tup.Items) {
		c.Errs.Add(errors.TupleAssignmentArity(tup.Position(), len(tup.Items), len(rhsTuple.Items)))
	}
	for i, item := range tup.Items {
		var t types.Type = types.Any
		if i < len(rhsTuple.Items) {
			t = rhsTuple.Items[i]
		}
		c.assignOne(item, t, scope)
	}
}

func (c *Checker) assignOne(target ast.Expr, valT types.Type, scope *symtable.Scope) {
	switch t := target.(type) {
	case *ast.NameExpr:
		if sym, ok := scope.LookupLocal(t.Name); ok && sym.TypeOverride != nil {
			if !types.IsSubtype(valT, sym.TypeOverride) {
				c.Errs.Add(errors.AssignmentTypeMismatch(t.Position(), t.Name, sym.TypeOverride, valT))
			}
			return
		}
		if sym, ok := scope.Lookup(t.Name); ok && sym.TypeOverride != nil {
			if !types.IsSubtype(valT, sym.TypeOverride) {
				c.Errs.Add(errors.AssignmentTypeMismatch(t.Position(), t.Name, sym.TypeOverride, valT))
			}
			return
		}
		scope.Define(t.Name, t, valT, c.Module.Path)
	case *ast.MemberExpr:
		xt := c.CheckExpr(t.X, scope)
		inst, ok := xt.(*types.Instance)
		if !ok {
			return
		}
		if declared, ok := inst.Class.Vars[t.Name]; ok && !types.IsSubtype(valT, declared) {
			c.Errs.Add(errors.AssignmentTypeMismatch(t.Position(), t.Name, declared, valT))
		}
	case *ast.IndexExpr:
		c.checkIndex(t, scope)
	default:
		c.CheckExpr(target, scope)
	}
}

func (c *Checker) checkReturn(s *ast.ReturnStmt, scope *symtable.Scope, retType types.Type) {
	if s.Value == nil {
		return
	}
	if _, isVoid := retType.(*types.VoidType); isVoid {
		c.Errs.Add(errors.ReturnInVoidFunction(s.Position()))
		c.CheckExpr(s.Value, scope)
		return
	}
	c.pushCtx(retType)
	t := c.CheckExpr(s.Value, scope)
	c.popCtx()
	if !types.IsSubtype(t, retType) {
		c.Errs.Add(errors.ReturnTypeMismatch(s.Position(), retType, t))
	}
}

func (c *Checker) checkRaise(s *ast.RaiseStmt, scope *symtable.Scope) {
	if s.Value == nil {
		return
	}
	t := c.CheckExpr(s.Value, scope)
	exInst := &types.Instance{Class: c.Builtins.Exception}
	if _, isAny := t.(*types.AnyType); isAny {
		return
	}
	if !types.IsSubtype(t, exInst) {
		c.Errs.Add(errors.RaisedValueNotException(s.Position(), t))
	}
}

func (c *Checker) checkFor(s *ast.ForStmt, scope *symtable.Scope, retType types.Type) {
	iterT := c.CheckExpr(s.Iterable, scope)
	elem := elementTypeOf(iterT)
	inner := symtable.NewScope(scope, symtable.Local)
	inner.Define(s.TargetName, s, elem, c.Module.Path)
	c.checkBlock(s.Body, inner, retType)
}

// elementTypeOf returns a container Instance's first type argument (its
// element type for list/set, its key type for dict), or Any when t isn't
// a parameterized Instance — matching the unannotated-default rule
// internal/sema applies elsewhere.
func elementTypeOf(t types.Type) types.Type {
	if inst, ok := t.(*types.Instance); ok && len(inst.Args) > 0 {
		return inst.Args[0]
	}
	return types.Any
}

func (c *Checker) checkTry(s *ast.TryStmt, scope *symtable.Scope, retType types.Type) {
	c.checkBlock(s.Body, symtable.NewScope(scope, symtable.Local), retType)
	for _, handler := range s.Handlers {
		inner := symtable.NewScope(scope, symtable.Local)
		if handler.ExcType != nil {
			excT := c.Module.ResolveInScope(handler.ExcType, scope, c.Builtins, c.Errs)
			if handler.Name != "" {
				inner.Define(handler.Name, s, excT, c.Module.Path)
			}
		}
		c.checkBlock(handler.Body, inner, retType)
	}
	if s.Finally != nil {
		c.checkBlock(s.Finally, symtable.NewScope(scope, symtable.Local), retType)
	}
}

func (c *Checker) checkWith(s *ast.WithStmt, scope *symtable.Scope, retType types.Type) {
	inner := symtable.NewScope(scope, symtable.Local)
	for _, item := range s.Items {
		t := c.CheckExpr(item.Ctx, scope)
		if item.Name != "" {
			inner.Define(item.Name, s, t, c.Module.Path)
		}
	}
	c.checkBlock(s.Body, inner, retType)
}
