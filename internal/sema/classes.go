package sema

import (
	"github.com/typewright/typewright/internal/ast"
	"github.com/typewright/typewright/internal/errors"
	"github.com/typewright/typewright/internal/symtable"
	"github.com/typewright/typewright/internal/types"
)

// classScope builds the type-variable scope a class's own signature and
// method bodies see: each declared type variable gets the positional ID
// `i+1`, matching internal/types/supertype.go's classVarID so checker
// code that rebuilds this scope later (e.g. to type-check a method body)
// agrees with MapInstanceToSupertype's substitutions without needing to
// persist an ID table anywhere (spec.md §9's "recompute, don't cache"
// note on type-variable identity).
func classScope(parent *symtable.Scope, typeVars []string) *symtable.Scope {
	s := symtable.NewScope(parent, symtable.TypeVariable)
	for i, name := range typeVars {
		s.DefineTypeVar(name, i+1, "")
	}
	return s
}

// registerClassStubs creates an empty TypeInfo for every top-level class
// definition before any annotation resolution runs, so forward references
// between classes declared in the same file resolve (spec.md §4.2 "class
// definitions in one file may reference each other regardless of order").
func registerClassStubs(file *ast.File, m *Module) map[*ast.ClassDef]*types.TypeInfo {
	stubs := make(map[*ast.ClassDef]*types.TypeInfo)
	for _, def := range file.Defs {
		cd, ok := def.(*ast.ClassDef)
		if !ok {
			continue
		}
		ti := types.NewTypeInfo(cd.Name, cd.IsInterface)
		ti.TypeVars = append([]string{}, cd.TypeVars...)
		ti.BaseExprs = cd.BaseExprs
		m.Classes[cd.Name] = ti
		stubs[cd] = ti
	}
	return stubs
}

// resolveClassHierarchy fills in Super/Interfaces and Subclasses for each
// stub, using base-expression resolution scoped to the class's own type
// variables (spec.md §4.2, §3 "class hierarchy invariants").
func (a *Analyzer) resolveClassHierarchy(m *Module, stubs map[*ast.ClassDef]*types.TypeInfo, imported map[string]*types.TypeInfo) {
	for cd, ti := range stubs {
		scope := classScope(m.Globals, cd.TypeVars)
		lookup := classLookup{local: m.Classes, builtins: a.Builtins, imported: imported}
		for i, baseExpr := range cd.BaseExprs {
			baseT := ResolveAnnotation(baseExpr, scope, lookup, a.Errs)
			inst, ok := baseT.(*types.Instance)
			if !ok {
				continue // ResolveAnnotation already reported the error
			}
			if i == 0 && !cd.IsInterface {
				ti.Super = inst.Class
				ti.SuperArgs = inst.Args
				inst.Class.Subclasses = append(inst.Class.Subclasses, ti)
			} else {
				ti.Interfaces = append(ti.Interfaces, inst.Class)
				ti.InterfaceArgs = append(ti.InterfaceArgs, inst.Args)
				inst.Class.Subclasses = append(inst.Class.Subclasses, ti)
			}
		}
		if ti.Super == nil && !cd.IsInterface && ti != a.Builtins.Object {
			ti.Super = a.Builtins.Object
			a.Builtins.Object.Subclasses = append(a.Builtins.Object.Subclasses, ti)
		}
	}
}

// populateClassMembers resolves every method and field of a class body
// into ti.Methods/ti.Vars, after the whole hierarchy is known (so a
// method's parameter/return annotations may reference sibling classes).
func (a *Analyzer) populateClassMembers(m *Module, cd *ast.ClassDef, ti *types.TypeInfo, imported map[string]*types.TypeInfo) {
	scope := classScope(m.Globals, cd.TypeVars)
	lookup := classLookup{local: m.Classes, builtins: a.Builtins, imported: imported}

	for _, node := range cd.Body {
		switch n := node.(type) {
		case *ast.FuncDef:
			ti.Methods[n.Name] = a.buildCallable(n, scope, lookup)
		case *ast.OverloadedFuncDef:
			ti.Methods[n.Name] = a.buildOverload(n, scope, lookup)
		case *ast.VarDef:
			for _, name := range n.Names {
				ti.Vars[name] = ResolveAnnotation(n.Annotation, scope, lookup, a.Errs)
			}
		}
	}

	if ti.Super != nil {
		checkOverrides(ti, a.Errs)
	}
}

// checkOverrides reports OVR001 for any method whose erased signature is
// not a subtype-compatible override of the same-named inherited method
// (spec.md §4.4 "Override compatibility": contravariant parameters,
// covariant return).
func checkOverrides(ti *types.TypeInfo, errs *errors.Accumulator) {
	for name, m := range ti.Methods {
		base, owner, ok := ti.Super.MemberMRO(name)
		if !ok || owner == ti {
			continue
		}
		baseC, bok := base.(*types.Callable)
		thisC, tok := m.(*types.Callable)
		if !bok || !tok {
			continue
		}
		// spec.md §4.4: an override is compatible if its signature is
		// identical to the base's under erasure, or if it is a subtype of
		// the base (contravariant arguments, covariant return).
		if !types.ErasedSignaturesEqual(thisC, baseC) && !types.IsSubtype(thisC, baseC) {
			errs.Add(errors.IncompatibleOverride(ast.Pos{}, name, ti.FullName, baseC, thisC))
		}
	}
}
