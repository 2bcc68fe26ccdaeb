// Package constraints implements constraint generation and solving for
// generic-function inference (spec.md §4.2), grounded on the teacher's
// internal/types/unification.go substitution-threading shape, but solving
// to bounds (join/meet) instead of unifying to a single substitution.
package constraints

import "github.com/typewright/typewright/internal/types"

// Op is a constraint's relational operator.
type Op int

const (
	// GTE ("id :> X") records a lower bound: the variable must be a
	// supertype of X.
	GTE Op = iota
	// LTE ("id :< X") records an upper bound: the variable must be a
	// subtype of X.
	LTE
)

// Constraint is one (var_id, op, target) triple (spec.md §4.2).
type Constraint struct {
	VarID  int
	Op     Op
	Target types.Type
}

// Negate swaps GTE and LTE, used wherever a contravariant position flips
// the relation (callable parameters, invariant generic arguments).
func (c Constraint) Negate() Constraint {
	if c.Op == GTE {
		return Constraint{VarID: c.VarID, Op: LTE, Target: c.Target}
	}
	return Constraint{VarID: c.VarID, Op: GTE, Target: c.Target}
}

func negateAll(cs []Constraint) []Constraint {
	out := make([]Constraint, len(cs))
	for i, c := range cs {
		out[i] = c.Negate()
	}
	return out
}

// InferConstraints walks template, emitting constraints against actual
// (spec.md §4.2). template is expected to contain the TypeVars being
// solved for; actual is the concrete type observed at the call site (or,
// recursively, a sub-position of it).
func InferConstraints(template, actual types.Type) []Constraint {
	if _, ok := actual.(*types.ErasedType); ok {
		return nil // spec.md §3: Erased marks "skip this position during inference"
	}
	if _, ok := actual.(*types.AnyType); ok {
		return constrainToAny(template)
	}

	switch tpl := template.(type) {
	case *types.TypeVar:
		return []Constraint{{VarID: tpl.ID, Op: GTE, Target: actual}}

	case *types.Instance:
		act, ok := actual.(*types.Instance)
		if !ok {
			return nil
		}
		mapped, ok := types.MapInstanceToSupertype(act, tpl.Class)
		if !ok || len(mapped.Args) != len(tpl.Args) {
			return nil
		}
		var out []Constraint
		for i := range tpl.Args {
			direct := InferConstraints(tpl.Args[i], mapped.Args[i])
			out = append(out, direct...)
			out = append(out, negateAll(direct)...)
		}
		return out

	case *types.Callable:
		act, ok := actual.(*types.Callable)
		if !ok {
			return nil
		}
		var out []Constraint
		n := len(tpl.ArgTypes)
		if len(act.ArgTypes) < n {
			n = len(act.ArgTypes)
		}
		for i := 0; i < n; i++ {
			// contravariant
			out = append(out, negateAll(InferConstraints(tpl.ArgTypes[i], act.ArgTypes[i]))...)
		}
		// covariant
		out = append(out, InferConstraints(tpl.Ret, act.Ret)...)
		return out

	case *types.Tuple:
		act, ok := actual.(*types.Tuple)
		if !ok || len(act.Items) != len(tpl.Items) {
			return nil
		}
		var out []Constraint
		for i := range tpl.Items {
			out = append(out, InferConstraints(tpl.Items[i], act.Items[i])...)
		}
		return out

	default:
		return nil
	}
}

// constrainToAny emits {id :> Any, id :< Any} for every TypeVar reachable
// in template, per spec.md §4.2 "Against Any."
func constrainToAny(template types.Type) []Constraint {
	var out []Constraint
	var walk func(types.Type)
	walk = func(t types.Type) {
		switch t := t.(type) {
		case *types.TypeVar:
			out = append(out,
				Constraint{VarID: t.ID, Op: GTE, Target: types.Any},
				Constraint{VarID: t.ID, Op: LTE, Target: types.Any},
			)
		case *types.Instance:
			for _, a := range t.Args {
				walk(a)
			}
		case *types.Tuple:
			for _, it := range t.Items {
				walk(it)
			}
		case *types.Callable:
			for _, a := range t.ArgTypes {
				walk(a)
			}
			walk(t.Ret)
		}
	}
	walk(template)
	return out
}
