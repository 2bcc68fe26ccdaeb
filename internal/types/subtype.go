package types

// IsSubtype decides S <: T per spec.md §4.1.
//
// Subtyping is not defined across generic functions with free (unsolved)
// variables; such comparisons return false rather than panicking, per
// spec.md's explicit carve-out.
func IsSubtype(s, t Type) bool {
	if _, ok := t.(*AnyType); ok {
		return true
	}
	if _, ok := s.(*AnyType); ok {
		return true
	}
	if _, ok := s.(*ErrorType); ok {
		return true
	}
	if _, ok := t.(*ErrorType); ok {
		return true
	}

	switch s := s.(type) {
	case *VoidType:
		_, ok := t.(*VoidType)
		return ok
	case *NoneType:
		if _, ok := t.(*VoidType); ok {
			return false
		}
		return true
	case *Instance:
		tt, ok := t.(*Instance)
		if !ok {
			return false
		}
		mapped, ok := MapInstanceToSupertype(s, tt.Class)
		if !ok {
			return false
		}
		if len(mapped.Args) != len(tt.Args) {
			return false
		}
		for i := range mapped.Args {
			if !mutuallyEquivalent(mapped.Args[i], tt.Args[i]) {
				return false
			}
		}
		return true
	case *Callable:
		switch t := t.(type) {
		case *Callable:
			return callableSubtype(s, t)
		default:
			return false
		}
	case *Overloaded:
		for _, item := range s.Items {
			if IsSubtype(item, t) {
				return true
			}
		}
		return false
	case *Tuple:
		switch t := t.(type) {
		case *Tuple:
			if len(s.Items) != len(t.Items) {
				return false
			}
			for i := range s.Items {
				if !IsSubtype(s.Items[i], t.Items[i]) {
					return false
				}
			}
			return true
		case *Instance:
			return t.Class.FullName == "tuple" || t.Class.FullName == "object"
		default:
			return false
		}
	case *TypeVar:
		if tv, ok := t.(*TypeVar); ok {
			return s.ID == tv.ID
		}
		return false
	default:
		return SameType(s, t)
	}
}

// mutuallyEquivalent implements generic-parameter invariance: a <: b only
// when a and b are each other's subtype (spec.md §4.1 "invariant
// parameters").
func mutuallyEquivalent(a, b Type) bool {
	if hasFreeVar(a) || hasFreeVar(b) {
		return false
	}
	return IsSubtype(a, b) && IsSubtype(b, a)
}

// hasFreeVar reports whether t still contains an unsolved TypeVar,
// disqualifying it from subtyping comparisons per spec.md's carve-out.
func hasFreeVar(t Type) bool {
	switch t := t.(type) {
	case *TypeVar:
		return true
	case *Instance:
		for _, a := range t.Args {
			if hasFreeVar(a) {
				return true
			}
		}
		return false
	case *Tuple:
		for _, it := range t.Items {
			if hasFreeVar(it) {
				return true
			}
		}
		return false
	case *Callable:
		if len(t.Variables) > 0 {
			return true
		}
		for _, a := range t.ArgTypes {
			if hasFreeVar(a) {
				return true
			}
		}
		return hasFreeVar(t.Ret)
	default:
		return false
	}
}

// callableSubtype implements function subtyping: contravariant
// parameters, covariant return, left must accept at least right's
// required arity, and variadic compatibility must hold.
func callableSubtype(s, t *Callable) bool {
	if len(s.Variables) > 0 || len(t.Variables) > 0 {
		return false
	}
	if s.MinArgs > t.MinArgs {
		return false
	}
	if t.Variadic && !s.Variadic {
		return false
	}
	n := len(t.ArgTypes)
	if len(s.ArgTypes) < n && !s.Variadic {
		return false
	}
	for i := 0; i < n; i++ {
		var sArg Type
		if i < len(s.ArgTypes) {
			sArg = s.ArgTypes[i]
		} else if s.Variadic {
			sArg = s.ArgTypes[len(s.ArgTypes)-1]
		} else {
			return false
		}
		// contravariant: t's parameter must be a subtype of s's parameter
		if !IsSubtype(t.ArgTypes[i], sArg) {
			return false
		}
	}
	return IsSubtype(s.Ret, t.Ret)
}
