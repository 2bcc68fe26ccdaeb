package types

import "github.com/typewright/typewright/internal/ast"

// TypeInfo is the semantic record for a class (spec.md §3). It is created
// once by the semantic analyzer when a class definition is processed and
// is never mutated after analysis ends for its owning file (spec.md
// "Lifecycle").
//
// Super/Interfaces are back-references into other TypeInfo values reached
// via the class hierarchy; Subclasses is the inverse edge, populated only
// for observation (never for ownership), per spec.md §9's arena/handle
// note — avoid relying on Subclasses to keep a TypeInfo alive.
type TypeInfo struct {
	FullName      string
	IsInterface   bool
	Super         *TypeInfo
	SuperArgs     []Type   // type args this class declared for Super, e.g. `extends Box[int]`
	Interfaces    []*TypeInfo
	InterfaceArgs [][]Type // declared args per Interfaces entry, same index
	TypeVars      []string
	BaseExprs     []*ast.TypeExpr // first is the superclass expr (if any), rest are interfaces
	Vars          map[string]Type
	Methods       map[string]Type // Callable or Overloaded
	Subclasses    []*TypeInfo     // observer-only back-links
}

// NewTypeInfo creates an empty class record ready for the semantic
// analyzer to populate.
func NewTypeInfo(fullName string, isInterface bool) *TypeInfo {
	return &TypeInfo{
		FullName:    fullName,
		IsInterface: isInterface,
		Vars:        make(map[string]Type),
		Methods:     make(map[string]Type),
	}
}

// HasTypeVars reports whether the class is itself generic.
func (ti *TypeInfo) HasTypeVars() bool { return len(ti.TypeVars) > 0 }

// Member looks up a variable or method by name, without considering
// superclasses; callers that want inherited lookup use MemberMRO.
func (ti *TypeInfo) Member(name string) (Type, bool) {
	if t, ok := ti.Methods[name]; ok {
		return t, true
	}
	if t, ok := ti.Vars[name]; ok {
		return t, true
	}
	return nil, false
}

// MemberMRO looks up a member by walking the superclass chain, then each
// interface in declaration order (direct members take precedence).
func (ti *TypeInfo) MemberMRO(name string) (Type, *TypeInfo, bool) {
	if t, ok := ti.Member(name); ok {
		return t, ti, true
	}
	if ti.Super != nil {
		if t, owner, ok := ti.Super.MemberMRO(name); ok {
			return t, owner, true
		}
	}
	for _, iface := range ti.Interfaces {
		if t, owner, ok := iface.MemberMRO(name); ok {
			return t, owner, true
		}
	}
	return nil, nil, false
}

// IsSubclassOf walks Super and Interfaces to decide nominal subclassing.
// The class hierarchy graph is acyclic by spec.md §3 invariant, so this
// terminates without a visited-set.
func (ti *TypeInfo) IsSubclassOf(other *TypeInfo) bool {
	if ti == other {
		return true
	}
	if ti.Super != nil && ti.Super.IsSubclassOf(other) {
		return true
	}
	for _, iface := range ti.Interfaces {
		if iface.IsSubclassOf(other) {
			return true
		}
	}
	return false
}

// ImplementationPaths enumerates the acyclic chains from ti down to each
// interface it implements directly or transitively, used by
// MapInstanceToSupertype when the target is an interface (spec.md §4.1).
func (ti *TypeInfo) ImplementationPaths(target *TypeInfo) [][]*TypeInfo {
	var paths [][]*TypeInfo
	var walk func(cur *TypeInfo, path []*TypeInfo)
	walk = func(cur *TypeInfo, path []*TypeInfo) {
		path = append(path, cur)
		if cur == target {
			cp := make([]*TypeInfo, len(path))
			copy(cp, path)
			paths = append(paths, cp)
			return
		}
		if cur.Super != nil {
			walk(cur.Super, path)
		}
		for _, iface := range cur.Interfaces {
			walk(iface, path)
		}
	}
	walk(ti, nil)
	return paths
}
