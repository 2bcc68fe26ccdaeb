// Package symtable implements the symbol table node (spec.md §3) and the
// parent-chained scope lookup used by the semantic analyzer and checker.
// The chaining pattern is grounded on the teacher's internal/types/env.go
// TypeEnv (a bindings map plus a parent pointer).
package symtable

import (
	"github.com/typewright/typewright/internal/ast"
	"github.com/typewright/typewright/internal/types"
)

// Kind is the symbol's storage class.
type Kind int

const (
	Local Kind = iota
	Global
	Member
	ModuleRef
	TypeVariable
)

func (k Kind) String() string {
	switch k {
	case Local:
		return "local"
	case Global:
		return "global"
	case Member:
		return "member"
	case ModuleRef:
		return "module"
	case TypeVariable:
		return "type-variable"
	default:
		return "?"
	}
}

// Symbol is one symbol-table entry.
type Symbol struct {
	Name         string
	Kind         Kind
	Def          ast.Node    // the variable/function/class/file node this name resolves to
	TypeOverride types.Type  // explicit annotation, if any; nil means "infer"
	ModuleID     string      // owning module/file id
	VarID        int         // set when Kind == TypeVariable
}

// Scope is one layer of a parent-chained lexical scope: module globals,
// a function's locals (possibly nested), or a class's member scope.
type Scope struct {
	symbols map[string]*Symbol
	parent  *Scope
	kind    Kind // the Kind assigned to symbols defined directly in this scope
}

// NewScope creates an empty scope chained to parent (nil for the
// outermost/global scope).
func NewScope(parent *Scope, kind Kind) *Scope {
	return &Scope{symbols: make(map[string]*Symbol), parent: parent, kind: kind}
}

// Define binds name in this scope, returning the new Symbol. A name
// redefined within the same scope overwrites the previous binding, as
// statement-level rebinding is legal; shadowing an outer scope's binding
// is always legal by simply defining in the inner scope.
func (s *Scope) Define(name string, def ast.Node, override types.Type, moduleID string) *Symbol {
	sym := &Symbol{Name: name, Kind: s.kind, Def: def, TypeOverride: override, ModuleID: moduleID}
	s.symbols[name] = sym
	return sym
}

// DefineTypeVar binds a type-variable name with its allocated ID.
func (s *Scope) DefineTypeVar(name string, varID int, moduleID string) *Symbol {
	sym := &Symbol{Name: name, Kind: TypeVariable, VarID: varID, ModuleID: moduleID}
	s.symbols[name] = sym
	return sym
}

// Lookup searches this scope, then each enclosing scope in turn.
func (s *Scope) Lookup(name string) (*Symbol, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if sym, ok := cur.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// LookupLocal searches only this scope, not its parents; used when
// checking for a duplicate top-level definition.
func (s *Scope) LookupLocal(name string) (*Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

// Parent returns the enclosing scope, or nil at the root.
func (s *Scope) Parent() *Scope { return s.parent }
