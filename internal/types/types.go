// Package types implements the closed sum of type constructors described in
// spec.md §3 and the algebraic operations over it (§4.1): substitution,
// erasure, supertype mapping, subtyping, join, and meet.
//
// Every value of the Type interface is exactly one of the variants listed
// below; dispatch is a type switch everywhere in this package and in
// internal/checker, matching the visitor-exhaustiveness discipline spec.md
// §9 asks to preserve from the source's visitor pattern.
package types

import (
	"fmt"
	"strings"

	"github.com/typewright/typewright/internal/ast"
)

// Type is implemented by every type variant.
type Type interface {
	String() string
	isType()
}

// Kind distinguishes the twelve closed variants, useful for quick switches
// and for error messages that want a type's "shape" without printing it.
type Kind int

const (
	KindUnbound Kind = iota
	KindAny
	KindVoid
	KindNone
	KindError
	KindErased
	KindInstance
	KindTypeVar
	KindCallable
	KindOverloaded
	KindTuple
	KindRuntimeTypeVar
)

// ---- Unbound ----

// Unbound is a type reference not yet resolved by the semantic analyzer.
type Unbound struct {
	Name string
	Args []Type
}

func (*Unbound) isType() {}
func (u *Unbound) String() string {
	if len(u.Args) == 0 {
		return u.Name
	}
	return u.Name + "[" + joinTypes(u.Args) + "]"
}

// ---- Any ----

// AnyType is the dynamic/unchecked type: universal donor and acceptor.
type AnyType struct{}

func (*AnyType) isType() {}
func (*AnyType) String() string { return "Any" }

// Any is the single shared instance; types are compared by dynamic type,
// not pointer identity, so sharing is an optimization, not a requirement.
var Any Type = &AnyType{}

// ---- Void ----

// VoidType marks "no meaningful return value." It may appear only as a
// Callable's Ret or as the type of an expression-statement child.
type VoidType struct {
	Label string // optional source label, informational only
}

func (*VoidType) isType() {}
func (v *VoidType) String() string { return "void" }

var Void Type = &VoidType{}

// ---- None ----

// NoneType is the type of the singleton absent-value literal.
type NoneType struct{}

func (*NoneType) isType() {}
func (*NoneType) String() string { return "None" }

var None Type = &NoneType{}

// ---- Error ----

// ErrorType is produced by failed joins/meets; it propagates without
// generating additional errors at each site that touches it.
type ErrorType struct{}

func (*ErrorType) isType() {}
func (*ErrorType) String() string { return "<error>" }

var ErrorT Type = &ErrorType{}

// ---- Erased ----

// ErasedType is a temporary placeholder meaning "skip this position during
// inference." It never escapes the checker into a stored node type.
type ErasedType struct{}

func (*ErasedType) isType() {}
func (*ErasedType) String() string { return "<erased>" }

var Erased Type = &ErasedType{}

// ---- Instance ----

// Instance is a nominal class instantiated with type arguments.
type Instance struct {
	Class  *TypeInfo
	Args   []Type
	Erased bool // set true only by Expand when a type variable was replaced
}

func (*Instance) isType() {}
func (i *Instance) String() string {
	if len(i.Args) == 0 {
		return i.Class.FullName
	}
	return i.Class.FullName + "[" + joinTypes(i.Args) + "]"
}

// ---- TypeVar ----

// VarWrapper distinguishes how a TypeVar participates in display/runtime
// support; it carries no subtyping meaning of its own.
type VarWrapper int

const (
	WrapperNone VarWrapper = iota // ordinary class/function type parameter
	WrapperSelf                   // bound to the enclosing class ("Self")
)

// TypeVar is a class type variable (ID > 0) or a function type variable
// (ID < 0). IDs are unique within their owning scope.
type TypeVar struct {
	Name    string
	ID      int
	Wrapper VarWrapper
}

func (*TypeVar) isType() {}
func (t *TypeVar) String() string { return t.Name }

// IsClassVar reports whether this variable belongs to a class (ID > 0).
func (t *TypeVar) IsClassVar() bool { return t.ID > 0 }

// IsFuncVar reports whether this variable belongs to a function (ID < 0).
func (t *TypeVar) IsFuncVar() bool { return t.ID < 0 }

// ---- Callable ----

// BoundVar records an implicit type-argument binding resolved for a
// generic call, kept only for display and runtime support (spec.md §3
// lifecycle note); it is additive, never removed.
type BoundVar struct {
	Name string
	Type Type
}

// Callable is a function signature, possibly generic.
type Callable struct {
	ArgTypes  []Type
	ArgKinds  []ast.ArgKind
	ArgNames  []string
	MinArgs   int
	Variadic  bool
	Ret       Type
	IsTypeObj bool // true when this Callable represents a class's constructor
	Variables []string
	BoundVars []BoundVar
}

func (*Callable) isType() {}
func (c *Callable) String() string {
	parts := make([]string, len(c.ArgTypes))
	for i, t := range c.ArgTypes {
		prefix := ""
		switch c.ArgKinds[i] {
		case ast.ArgStar:
			prefix = "*"
		case ast.ArgStarStar:
			prefix = "**"
		case ast.ArgNamed:
			prefix = c.ArgNames[i] + "="
		}
		parts[i] = prefix + t.String()
	}
	prefix := ""
	if len(c.Variables) > 0 {
		prefix = "[" + strings.Join(c.Variables, ", ") + "] "
	}
	return fmt.Sprintf("%s(%s) -> %s", prefix, strings.Join(parts, ", "), c.Ret.String())
}

// AddBoundVar appends an implicit binding; call sites never overwrite a
// prior entry for the same name, matching the additive-only lifecycle.
func (c *Callable) AddBoundVar(name string, t Type) {
	c.BoundVars = append(c.BoundVars, BoundVar{Name: name, Type: t})
}

// ---- Overloaded ----

// Overloaded is an ordered, non-empty overload set; at a call site the
// first variant whose full call check reports no errors wins (see
// internal/checker's checkOverloadedCall).
type Overloaded struct {
	Items []*Callable
}

func (*Overloaded) isType() {}
func (o *Overloaded) String() string {
	parts := make([]string, len(o.Items))
	for i, c := range o.Items {
		parts[i] = c.String()
	}
	return strings.Join(parts, " | ")
}

// ---- Tuple ----

// Tuple is a fixed-arity heterogeneous tuple.
type Tuple struct {
	Items []Type
}

func (*Tuple) isType() {}
func (t *Tuple) String() string {
	return "(" + joinTypes(t.Items) + ")"
}

// ---- RuntimeTypeVar ----

// RuntimeTypeVar is a compile-time handle for a runtime type value (e.g.
// the result of a `typeof` expression used where a static type is needed).
type RuntimeTypeVar struct {
	Expr ast.Expr
}

func (*RuntimeTypeVar) isType() {}
func (*RuntimeTypeVar) String() string { return "<runtime type>" }

func joinTypes(ts []Type) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

// KindOf returns the variant tag for t, used by callers that want to
// switch without a full type switch (e.g. error message templates).
func KindOf(t Type) Kind {
	switch t.(type) {
	case *Unbound:
		return KindUnbound
	case *AnyType:
		return KindAny
	case *VoidType:
		return KindVoid
	case *NoneType:
		return KindNone
	case *ErrorType:
		return KindError
	case *ErasedType:
		return KindErased
	case *Instance:
		return KindInstance
	case *TypeVar:
		return KindTypeVar
	case *Callable:
		return KindCallable
	case *Overloaded:
		return KindOverloaded
	case *Tuple:
		return KindTuple
	case *RuntimeTypeVar:
		return KindRuntimeTypeVar
	default:
		panic(fmt.Sprintf("types: unreachable type variant %T", t))
	}
}
