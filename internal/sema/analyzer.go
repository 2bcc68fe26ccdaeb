package sema

import (
	"github.com/typewright/typewright/internal/ast"
	"github.com/typewright/typewright/internal/errors"
	"github.com/typewright/typewright/internal/symtable"
	"github.com/typewright/typewright/internal/types"
)

// Analyzer is the semantic-analysis phase of the pipeline (spec.md
// §2/§4.2): it turns a parsed ast.File into resolved TypeInfo/Callable
// signatures and three-layer scopes, without checking expression bodies
// (internal/checker's job). The two-pass structure — register names,
// then resolve signatures, then resolve bodies' member lists — is
// grounded on the teacher's internal/loader.go module-loading pipeline.
type Analyzer struct {
	Builtins *Builtins
	Errs     *errors.Accumulator
}

// NewAnalyzer creates an Analyzer sharing errs with the rest of the
// pipeline, so every phase's diagnostics land in one sorted report list
// (spec.md §5 "single shared Accumulator per build run").
func NewAnalyzer(errs *errors.Accumulator) *Analyzer {
	return &Analyzer{Builtins: BootstrapBuiltins(), Errs: errs}
}

// AnalyzeFile runs semantic analysis on one parsed file. `resolved` is the
// set of already-analyzed dependency modules, keyed by module id.
// internal/build passes only the imported modules that have been analyzed
// by then: a module missing from the search path, or an import-cycle peer
// that is still only parsed, is absent, and names imported from it are
// left unbound (see resolveImports).
func (a *Analyzer) AnalyzeFile(path string, file *ast.File, resolved map[string]*Module) *Module {
	m := newModule(path, file)

	m.Imports = a.resolveImports(m, file, resolved)
	imported := classesFromImports(file, resolved)

	stubs := registerClassStubs(file, m)
	a.resolveClassHierarchy(m, stubs, imported)

	lookup := classLookup{local: m.Classes, builtins: a.Builtins, imported: imported}
	for _, def := range file.Defs {
		switch n := def.(type) {
		case *ast.FuncDef:
			m.Funcs[n.Name] = a.buildCallable(n, m.Globals, lookup)
			m.Globals.Define(n.Name, n, m.Funcs[n.Name], m.Path)
		case *ast.OverloadedFuncDef:
			m.Funcs[n.Name] = a.buildOverload(n, m.Globals, lookup)
			m.Globals.Define(n.Name, n, m.Funcs[n.Name], m.Path)
		case *ast.VarDef:
			a.registerVarDef(m, n, m.Globals, lookup)
		}
	}

	for cd, ti := range stubs {
		a.populateClassMembers(m, cd, ti, imported)
	}

	return m
}

// registerVarDef resolves a top-level (or, via the caller, any) VarDef
// and binds each name it introduces. A single name gets its resolved
// annotation (or nil when unannotated); for tuple destructuring every
// name is bound with a nil type and any annotation is not resolved here.
func (a *Analyzer) registerVarDef(m *Module, vd *ast.VarDef, scope *symtable.Scope, lookup classLookup) {
	if len(vd.Names) == 1 {
		var t types.Type
		if vd.Annotation != nil {
			t = ResolveAnnotation(vd.Annotation, scope, lookup, a.Errs)
		} // else nil: internal/checker infers the type from the initializer
		scope.Define(vd.Names[0], vd, t, m.Path)
		return
	}
	for _, name := range vd.Names {
		scope.Define(name, vd, nil, m.Path) // tuple element types resolved by internal/checker from the initializer
	}
}
