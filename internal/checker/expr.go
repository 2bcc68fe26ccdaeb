package checker

import (
	"github.com/typewright/typewright/internal/ast"
	"github.com/typewright/typewright/internal/errors"
	"github.com/typewright/typewright/internal/symtable"
	"github.com/typewright/typewright/internal/types"
)

// CheckExpr computes expr's type, reporting any errors found along the
// way. It is bidirectional only inside generic calls (inferGeneric gives
// lambda actuals their parameter types from the substituted formal and
// matches the return type against the expected type on ctxStack). List,
// set and dict literals join their item types and are not rewritten as
// generic calls; everywhere else it synthesizes bottom-up, matching
// spec.md §4.3's expression-checking shape.
func (c *Checker) CheckExpr(expr ast.Expr, scope *symtable.Scope) types.Type {
	switch e := expr.(type) {
	case *ast.IntLit:
		return &types.Instance{Class: c.Builtins.Int}
	case *ast.FloatLit:
		return &types.Instance{Class: c.Builtins.Float}
	case *ast.StringLit:
		return &types.Instance{Class: c.Builtins.Str}
	case *ast.BytesLit:
		return &types.Instance{Class: c.Builtins.Bytes}
	case *ast.NoneLit:
		return types.None
	case *ast.NameExpr:
		return c.checkName(e, scope)
	case *ast.ParenExpr:
		return c.CheckExpr(e.X, scope)
	case *ast.MemberExpr:
		return c.checkMember(e, scope)
	case *ast.CallExpr:
		return c.checkCall(e, scope)
	case *ast.IndexExpr:
		return c.checkIndex(e, scope)
	case *ast.SliceExpr:
		return c.checkSlice(e, scope)
	case *ast.TupleExpr:
		items := make([]types.Type, len(e.Items))
		for i, it := range e.Items {
			items[i] = c.CheckExpr(it, scope)
		}
		return &types.Tuple{Items: items}
	case *ast.ListExpr:
		return c.checkHomogeneousLiteral(e.Items, e.ElementType, c.Builtins.List, scope)
	case *ast.SetExpr:
		return c.checkHomogeneousLiteral(e.Items, e.ElementType, c.Builtins.Set, scope)
	case *ast.DictExpr:
		return c.checkDictLiteral(e, scope)
	case *ast.GeneratorExpr:
		c.CheckExpr(e.Iterable, scope)
		elemScope := symtable.NewScope(scope, symtable.Local)
		elemScope.Define(e.TargetName, e, types.Any, c.Module.Path)
		if e.Cond != nil {
			c.CheckExpr(e.Cond, elemScope)
		}
		elt := c.CheckExpr(e.Elt, elemScope)
		return &types.Instance{Class: c.Builtins.List, Args: []types.Type{elt}}
	case *ast.ListCompExpr:
		c.CheckExpr(e.Iterable, scope)
		elemScope := symtable.NewScope(scope, symtable.Local)
		elemScope.Define(e.TargetName, e, types.Any, c.Module.Path)
		if e.Cond != nil {
			c.CheckExpr(e.Cond, elemScope)
		}
		elt := c.CheckExpr(e.Elt, elemScope)
		return &types.Instance{Class: c.Builtins.List, Args: []types.Type{elt}}
	case *ast.LambdaExpr:
		return c.checkLambda(e, scope, nil)
	case *ast.CastExpr:
		return c.checkCast(e, scope)
	case *ast.TypeApplicationExpr:
		return c.checkTypeApplication(e, scope)
	case *ast.UnaryExpr:
		return c.checkUnary(e, scope)
	case *ast.BinaryExpr:
		return c.checkBinary(e, scope)
	case *ast.ConditionalExpr:
		c.CheckExpr(e.Cond, scope)
		t := c.CheckExpr(e.Then, scope)
		f := c.CheckExpr(e.Else, scope)
		return types.Join(t, f)
	case *ast.SuperExpr:
		return c.checkSuper(scope)
	default:
		return types.Any
	}
}

func (c *Checker) checkName(e *ast.NameExpr, scope *symtable.Scope) types.Type {
	sym, ok := scope.Lookup(e.Name)
	if !ok {
		c.Errs.Add(errors.UndefinedName(e.Position(), e.Name))
		return types.ErrorT
	}
	if sym.Kind == symtable.TypeVariable {
		return &types.TypeVar{Name: sym.Name, ID: sym.VarID}
	}
	if sym.TypeOverride == nil {
		return types.Any // unannotated global/module alias: treated as Any at use sites
	}
	return sym.TypeOverride
}

func (c *Checker) checkMember(e *ast.MemberExpr, scope *symtable.Scope) types.Type {
	xt := c.CheckExpr(e.X, scope)
	inst, ok := xt.(*types.Instance)
	if !ok {
		if _, isAny := xt.(*types.AnyType); isAny {
			return types.Any
		}
		if _, isErr := xt.(*types.ErrorType); isErr {
			return types.ErrorT
		}
		c.Errs.Add(errors.NoSuchMember(e.Position(), xt, e.Name))
		return types.ErrorT
	}
	member, owner, ok := inst.Class.MemberMRO(e.Name)
	if !ok {
		c.Errs.Add(errors.NoSuchMember(e.Position(), xt, e.Name))
		return types.ErrorT
	}
	return types.Expand(member, substFromInstance(inst, owner))
}

func (c *Checker) checkHomogeneousLiteral(items []ast.Expr, elemAnn *ast.TypeExpr, class *types.TypeInfo, scope *symtable.Scope) types.Type {
	var elem types.Type = types.Any
	switch {
	case elemAnn != nil:
		elem = c.resolveInlineAnnotation(elemAnn, scope)
		for _, it := range items {
			c.CheckExpr(it, scope)
		}
	case len(items) > 0:
		elem = c.CheckExpr(items[0], scope)
		for _, it := range items[1:] {
			elem = types.Join(elem, c.CheckExpr(it, scope))
		}
	default:
		elem = types.None
	}
	return &types.Instance{Class: class, Args: []types.Type{elem}}
}

func (c *Checker) checkDictLiteral(e *ast.DictExpr, scope *symtable.Scope) types.Type {
	var key, val types.Type = types.Any, types.Any
	switch {
	case e.KeyType != nil:
		key = c.resolveInlineAnnotation(e.KeyType, scope)
		val = c.resolveInlineAnnotation(e.ValType, scope)
	case len(e.Entries) > 0:
		key = c.CheckExpr(e.Entries[0].Key, scope)
		val = c.CheckExpr(e.Entries[0].Value, scope)
		for _, entry := range e.Entries[1:] {
			key = types.Join(key, c.CheckExpr(entry.Key, scope))
			val = types.Join(val, c.CheckExpr(entry.Value, scope))
		}
	default:
		key, val = types.None, types.None
	}
	return &types.Instance{Class: c.Builtins.Dict, Args: []types.Type{key, val}}
}

// resolveInlineAnnotation resolves a TypeExpr appearing inside an
// expression (list/set/dict literal element types) using the same
// classLookup rules internal/sema applies to declarations, since a
// literal's explicit element type is just as much an annotation.
func (c *Checker) resolveInlineAnnotation(expr *ast.TypeExpr, scope *symtable.Scope) types.Type {
	return c.Module.ResolveInScope(expr, scope, c.Builtins, c.Errs)
}

func (c *Checker) checkSuper(scope *symtable.Scope) types.Type {
	sym, ok := scope.Lookup("self")
	if !ok || sym.TypeOverride == nil {
		return types.Any
	}
	inst, ok := sym.TypeOverride.(*types.Instance)
	if !ok || inst.Class.Super == nil {
		return types.Any
	}
	superInst, ok := types.MapInstanceToSupertype(inst, inst.Class.Super)
	if !ok {
		return types.Any
	}
	return superInst
}
