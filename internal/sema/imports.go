package sema

import (
	"github.com/typewright/typewright/internal/ast"
	"github.com/typewright/typewright/internal/errors"
	"github.com/typewright/typewright/internal/types"
)

// resolveImports walks a file's import statements, binding names into the
// module's global scope and recording one ImportEdge per statement for
// internal/build's dependency scheduler (spec.md §4.4 "Import edges").
//
// `resolved` holds the dependency modules internal/build has already
// analyzed. A module absent from it is not reported here: it is either
// missing from the search path (internal/build reports NAM003 when it
// parses the importing file) or an import-cycle peer not analyzed yet,
// and `from`/wildcard imports from it bind nothing. A `from` import of a
// name that a present module does not export is reported as NAM003 by
// bindImportedName.
func (a *Analyzer) resolveImports(m *Module, file *ast.File, resolved map[string]*Module) []ImportEdge {
	edges := make([]ImportEdge, 0, len(file.Imports))
	for _, imp := range file.Imports {
		imp := imp
		edge := ImportEdge{Pos: imp.Position(), Module: imp.Module}
		dep, haveDep := resolved[imp.Module]

		switch imp.Kind {
		case ast.ImportModule:
			alias := imp.Module
			if aliasName, ok := imp.Aliases[imp.Module]; ok && aliasName != "" {
				alias = aliasName
			}
			m.Globals.Define(alias, &imp, nil, imp.Module)
			// The bound symbol's TypeOverride is nil; internal/checker
			// resolves `alias.member` member access by looking up
			// a.Modules[imp.Module] directly, keeping the binding itself
			// a lightweight marker rather than duplicating export data.

		case ast.ImportFrom:
			edge.Names = imp.Names
			if haveDep {
				for _, name := range imp.Names {
					bindImportedName(m, dep, name, imp.Aliases[name], imp.Position(), a.Errs)
				}
			}

		case ast.ImportAll:
			edge.Wildcard = true
			if haveDep {
				for name := range dep.Funcs {
					bindImportedName(m, dep, name, "", imp.Position(), a.Errs)
				}
				for name := range dep.Classes {
					bindImportedName(m, dep, name, "", imp.Position(), a.Errs)
				}
			}
		}
		edges = append(edges, edge)
	}
	return edges
}

func bindImportedName(m *Module, dep *Module, name, alias string, pos ast.Pos, errs *errors.Accumulator) {
	t, ok := dep.ExportedType(name)
	if !ok {
		errs.Add(errors.UnknownModule(pos, dep.Path+"."+name))
		return
	}
	bound := name
	if alias != "" {
		bound = alias
	}
	if prev, ok := m.Globals.LookupLocal(bound); ok && prev.ModuleID != dep.Path {
		errs.Add(errors.AmbiguousName(pos, bound, []string{prev.ModuleID, dep.Path}))
	}
	m.Globals.Define(bound, nil, t, dep.Path)
}

// classesFromImports collects every TypeInfo an import has brought into
// scope, for use by ResolveAnnotation's classLookup.imported.
func classesFromImports(file *ast.File, resolved map[string]*Module) map[string]*types.TypeInfo {
	out := make(map[string]*types.TypeInfo)
	for _, imp := range file.Imports {
		dep, ok := resolved[imp.Module]
		if !ok {
			continue
		}
		switch imp.Kind {
		case ast.ImportFrom:
			for _, name := range imp.Names {
				if ti, ok := dep.Classes[name]; ok {
					out[aliasOf(imp, name)] = ti
				}
			}
		case ast.ImportAll:
			for name, ti := range dep.Classes {
				out[name] = ti
			}
		}
	}
	return out
}

func aliasOf(imp ast.Import, name string) string {
	if a, ok := imp.Aliases[name]; ok && a != "" {
		return a
	}
	return name
}
