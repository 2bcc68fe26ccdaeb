// Package sema implements the semantic-analysis phase described in
// spec.md §2/§4.2: three-layer scope construction, import-edge discovery,
// TypeInfo construction for class definitions, and annotation resolution
// from ast.TypeExpr (Unbound) into a concrete types.Type.
//
// It runs after parsing (out of scope for this module, per spec.md §1)
// and before internal/checker, which consults the Module values produced
// here to type-check expressions and statements. The two-pass structure
// (register names, then resolve signatures) is grounded on the teacher's
// internal/loader.go module-loading pipeline.
package sema

import (
	"github.com/typewright/typewright/internal/ast"
	"github.com/typewright/typewright/internal/symtable"
	"github.com/typewright/typewright/internal/types"
)

// ImportEdge records one import statement's resolved dependency, consumed
// by internal/build to order file processing (spec.md §4.4).
type ImportEdge struct {
	Pos      ast.Pos
	Module   string
	Names    []string // empty for ImportModule/ImportAll
	Wildcard bool
}

// Module is the result of analyzing one file: its global scope, the
// classes it defines, the top-level function signatures it exports, and
// the import edges a build manager needs to schedule dependencies.
type Module struct {
	Path    string
	File    *ast.File
	Globals *symtable.Scope
	Classes map[string]*types.TypeInfo
	Funcs   map[string]types.Type // *types.Callable or *types.Overloaded
	Imports []ImportEdge

	// There is no separate export table: in this checker every top-level
	// name is public, and ExportedType answers from the maps above.
}

func newModule(path string, file *ast.File) *Module {
	return &Module{
		Path:    path,
		File:    file,
		Globals: symtable.NewScope(nil, symtable.Global),
		Classes: make(map[string]*types.TypeInfo),
		Funcs:   make(map[string]types.Type),
	}
}

// ExportedType returns the type a `from <module> import <name>` should
// bind, checking functions first, then classes (as their constructor
// Callable via ConstructorType), matching the teacher's export-lookup
// order in internal/module/resolver.go.
func (m *Module) ExportedType(name string) (types.Type, bool) {
	if t, ok := m.Funcs[name]; ok {
		return t, true
	}
	if ti, ok := m.Classes[name]; ok {
		return ConstructorType(ti), true
	}
	if sym, ok := m.Globals.LookupLocal(name); ok && sym.TypeOverride != nil {
		return sym.TypeOverride, true
	}
	return nil, false
}

// ConstructorType builds the Callable that calling a class as a function
// (construction) presents to the checker: a Callable over __init__'s
// declared parameters (if any) returning an Instance of the class,
// generic over the class's own type variables.
func ConstructorType(ti *types.TypeInfo) types.Type {
	ret := &types.Instance{Class: ti, Args: classVarArgs(ti)}
	if initT, _, ok := ti.MemberMRO("__init__"); ok {
		if c, ok := initT.(*types.Callable); ok {
			// Drop the implicit receiver parameter (position 0) and
			// retarget the return type to the constructed instance.
			ctor := *c
			if len(ctor.ArgTypes) > 0 {
				ctor.ArgTypes = ctor.ArgTypes[1:]
				ctor.ArgKinds = ctor.ArgKinds[1:]
				ctor.ArgNames = ctor.ArgNames[1:]
				if ctor.MinArgs > 0 {
					ctor.MinArgs--
				}
			}
			ctor.Ret = ret
			ctor.IsTypeObj = true
			ctor.Variables = append([]string{}, ti.TypeVars...)
			return &ctor
		}
	}
	return &types.Callable{Ret: ret, IsTypeObj: true, Variables: append([]string{}, ti.TypeVars...)}
}

func classVarArgs(ti *types.TypeInfo) []types.Type {
	args := make([]types.Type, len(ti.TypeVars))
	for i, name := range ti.TypeVars {
		args[i] = &types.TypeVar{Name: name, ID: i + 1}
	}
	return args
}
