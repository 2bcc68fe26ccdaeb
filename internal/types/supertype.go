package types

// MapInstanceToSupertype rewrites inst as an Instance of target by
// substituting type arguments along the inheritance chain (spec.md §4.1).
//
//   - If target is inst's own class, inst is returned unchanged (spec.md
//     §8 law 7).
//   - If target has no type variables and inst.Class is a subclass of it,
//     the result is Instance(target, []) regardless of inst's own
//     arguments.
//   - If target is an interface, an acyclic implementation path is
//     enumerated and followed step by step.
//   - Otherwise the superclass chain is walked, substituting at each step
//     using the current instance's type arguments; a base type expression
//     that omits arguments substitutes Any for each missing one (implicit
//     erasure, applied on demand here rather than at TypeInfo
//     construction, per spec.md §9's open design note).
//
// MapInstanceToSupertype returns (nil, false) if target is unreachable
// from inst.Class.
func MapInstanceToSupertype(inst *Instance, target *TypeInfo) (*Instance, bool) {
	if sameClass(inst.Class, target) {
		return inst, true
	}
	if len(target.TypeVars) == 0 {
		if !inst.Class.IsSubclassOf(target) {
			return nil, false
		}
		return &Instance{Class: target}, true
	}
	if target.IsInterface {
		paths := inst.Class.ImplementationPaths(target)
		if len(paths) == 0 {
			return nil, false
		}
		cur := inst
		for _, step := range paths[0][1:] {
			next, ok := mapOneStep(cur, step)
			if !ok {
				return nil, false
			}
			cur = next
		}
		return cur, true
	}
	cur := inst
	for cur.Class != target {
		if cur.Class.Super == nil {
			return nil, false
		}
		next, ok := mapOneStep(cur, cur.Class.Super)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// mapOneStep substitutes cur's type arguments into the declared base-type
// expression for `to` found among cur.Class's base expressions, padding
// missing arguments with Any.
func mapOneStep(cur *Instance, to *TypeInfo) (*Instance, bool) {
	sub := make(Subst, len(cur.Class.TypeVars))
	for i, name := range cur.Class.TypeVars {
		_ = name
		id := classVarID(cur.Class, i)
		if i < len(cur.Args) {
			sub[id] = cur.Args[i]
		} else {
			sub[id] = Any
		}
	}
	// declared holds the type arguments cur.Class wrote for `to` in its own
	// base-type expression (e.g. `class Box[T] extends Container[T]`
	// records Container's declared args as [TypeVar(T)]); substituting cur's
	// own bindings into those gives the correctly-mapped instance instead of
	// reusing cur.Args positionally, which silently assumed `to` and
	// cur.Class share the same type-variable list.
	declared := declaredBaseArgs(cur.Class, to)
	args := make([]Type, len(to.TypeVars))
	for i := range args {
		if i < len(declared) {
			args[i] = Expand(declared[i], sub)
		} else {
			args[i] = Any // declared base omitted this argument: implicit erasure (spec.md §4.1)
		}
	}
	return &Instance{Class: to, Args: args}, true
}

// declaredBaseArgs returns the type arguments `from` wrote for its base
// `to`, whether `to` is from's superclass or one of its direct interfaces.
func declaredBaseArgs(from, to *TypeInfo) []Type {
	if from.Super == to {
		return from.SuperArgs
	}
	for i, iface := range from.Interfaces {
		if iface == to && i < len(from.InterfaceArgs) {
			return from.InterfaceArgs[i]
		}
	}
	return nil
}

// classVarID returns the canonical positive TypeVar ID for the i-th type
// parameter of class ti. Semantic analysis assigns these at class-def
// time as 1, 2, 3...; mapOneStep recomputes the same scheme so it can
// substitute without needing the analyzer's original ID allocation table.
func classVarID(ti *TypeInfo, i int) int {
	return i + 1
}
