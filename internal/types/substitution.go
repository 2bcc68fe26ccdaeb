package types

// Subst maps a TypeVar's ID to its replacement type. IDs, not names, are
// the key: spec.md §4.1 requires Expand to match TypeVar positions by id.
type Subst map[int]Type

// Expand structurally recurses over t, replacing every TypeVar whose ID
// appears in sub. Any Instance produced as a replacement's *container* is
// marked Erased to record that substitution touched it (spec.md §3
// lifecycle: "Instance.erased is set true only by substitution when a
// type variable was replaced").
//
// Expand(t, {}) == t structurally (spec.md §8 law 5); composing two
// disjoint-domain substitutions is equivalent to one combined substitution
// since Expand never re-visits already-substituted subtrees.
func Expand(t Type, sub Subst) Type {
	if len(sub) == 0 {
		return t
	}
	switch t := t.(type) {
	case *TypeVar:
		if r, ok := sub[t.ID]; ok {
			return markErased(r)
		}
		return t
	case *Instance:
		args := expandAll(t.Args, sub)
		erased := t.Erased || argsChanged(t.Args, args)
		return &Instance{Class: t.Class, Args: args, Erased: erased}
	case *Tuple:
		return &Tuple{Items: expandAll(t.Items, sub)}
	case *Callable:
		return expandCallable(t, sub)
	case *Overloaded:
		items := make([]*Callable, len(t.Items))
		for i, c := range t.Items {
			items[i] = expandCallable(c, sub).(*Callable)
		}
		return &Overloaded{Items: items}
	case *Unbound:
		return &Unbound{Name: t.Name, Args: expandAll(t.Args, sub)}
	default:
		// Any, Void, None, Error, Erased, RuntimeTypeVar carry no type
		// variables and are structurally intact under substitution.
		return t
	}
}

func expandCallable(c *Callable, sub Subst) Type {
	args := expandAll(c.ArgTypes, sub)
	ret := Expand(c.Ret, sub)
	bound := make([]BoundVar, len(c.BoundVars))
	for i, bv := range c.BoundVars {
		bound[i] = BoundVar{Name: bv.Name, Type: Expand(bv.Type, sub)}
	}
	return &Callable{
		ArgTypes:  args,
		ArgKinds:  c.ArgKinds,
		ArgNames:  c.ArgNames,
		MinArgs:   c.MinArgs,
		Variadic:  c.Variadic,
		Ret:       ret,
		IsTypeObj: c.IsTypeObj,
		Variables: c.Variables,
		BoundVars: bound,
	}
}

func expandAll(ts []Type, sub Subst) []Type {
	out := make([]Type, len(ts))
	for i, t := range ts {
		out[i] = Expand(t, sub)
	}
	return out
}

func argsChanged(before, after []Type) bool {
	for i := range before {
		if before[i] != after[i] {
			return true
		}
	}
	return false
}

// markErased wraps the replacement Instance (if any) with Erased set, so
// that e.g. substituting T -> Foo[int] in a class-var position is visibly
// distinguishable from a user writing Foo[int] directly.
func markErased(t Type) Type {
	if inst, ok := t.(*Instance); ok && !inst.Erased {
		return &Instance{Class: inst.Class, Args: inst.Args, Erased: true}
	}
	return t
}

// ReplaceVars builds a Subst from TypeVar IDs to targets, a convenience
// used throughout internal/checker and internal/constraints.
func ReplaceVars(ids []int, targets []Type) Subst {
	sub := make(Subst, len(ids))
	for i, id := range ids {
		sub[id] = targets[i]
	}
	return sub
}
