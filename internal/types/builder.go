package types

import "github.com/typewright/typewright/internal/ast"

// Builder provides fluent constructors for common types, grounded on the
// teacher's internal/types/builder.go convenience-constructor pattern
// (NewBuilder().Int(), .String(), ...) so call sites in tests and in the
// semantic analyzer's bootstrap read as a small DSL instead of repeated
// struct literals.
type Builder struct {
	objectClass *TypeInfo
}

// NewBuilder creates a Builder bound to the current `object` root class.
func NewBuilder(object *TypeInfo) *Builder {
	return &Builder{objectClass: object}
}

func (b *Builder) Object() Type { return &Instance{Class: b.objectClass} }

// Instance builds Instance{Class: ti, Args: args}.
func (b *Builder) Instance(ti *TypeInfo, args ...Type) Type {
	return &Instance{Class: ti, Args: args}
}

// Tuple builds a Tuple type from the given items.
func (b *Builder) Tuple(items ...Type) Type { return &Tuple{Items: items} }

// Func builds a non-generic, non-variadic Callable with all-required
// positional parameters.
func (b *Builder) Func(params []Type, ret Type) *Callable {
	kinds := make([]ast.ArgKind, len(params))
	names := make([]string, len(params))
	return &Callable{
		ArgTypes: params,
		ArgKinds: kinds,
		ArgNames: names,
		MinArgs:  len(params),
		Ret:      ret,
	}
}

// GenericFunc builds a Callable parameterized by the given function
// TypeVars (negative IDs by convention).
func (b *Builder) GenericFunc(vars []*TypeVar, params []Type, ret Type) *Callable {
	c := b.Func(params, ret)
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.Name
	}
	c.Variables = names
	return c
}

// ClassVar returns the i-th (1-based) class type variable for ti, using
// the same positional-ID convention as internal/types/supertype.go's
// classVarID, so callers building fixtures stay consistent with the
// analyzer's allocation scheme.
func (b *Builder) ClassVar(ti *TypeInfo, i int) *TypeVar {
	return &TypeVar{Name: ti.TypeVars[i-1], ID: i}
}
