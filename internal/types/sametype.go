package types

// SameType is structural identity modulo variable-name-vs-id (ids decide
// equality for TypeVar), with Any equal only to Any and Void only to Void
// (spec.md §4.1).
func SameType(a, b Type) bool {
	switch a := a.(type) {
	case *AnyType:
		_, ok := b.(*AnyType)
		return ok
	case *VoidType:
		_, ok := b.(*VoidType)
		return ok
	case *NoneType:
		_, ok := b.(*NoneType)
		return ok
	case *ErrorType:
		_, ok := b.(*ErrorType)
		return ok
	case *ErasedType:
		_, ok := b.(*ErasedType)
		return ok
	case *Unbound:
		bb, ok := b.(*Unbound)
		return ok && a.Name == bb.Name && sameTypeList(a.Args, bb.Args)
	case *TypeVar:
		bb, ok := b.(*TypeVar)
		return ok && a.ID == bb.ID
	case *Instance:
		bb, ok := b.(*Instance)
		return ok && sameClass(a.Class, bb.Class) && sameTypeList(a.Args, bb.Args)
	case *Tuple:
		bb, ok := b.(*Tuple)
		return ok && sameTypeList(a.Items, bb.Items)
	case *Callable:
		bb, ok := b.(*Callable)
		return ok && sameCallable(a, bb)
	case *Overloaded:
		bb, ok := b.(*Overloaded)
		if !ok || len(a.Items) != len(bb.Items) {
			return false
		}
		for i := range a.Items {
			if !sameCallable(a.Items[i], bb.Items[i]) {
				return false
			}
		}
		return true
	case *RuntimeTypeVar:
		_, ok := b.(*RuntimeTypeVar)
		return ok
	default:
		return false
	}
}

func sameClass(a, b *TypeInfo) bool {
	return a == b || (a != nil && b != nil && a.FullName == b.FullName)
}

func sameTypeList(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !SameType(a[i], b[i]) {
			return false
		}
	}
	return true
}

func sameCallable(a, b *Callable) bool {
	if len(a.ArgTypes) != len(b.ArgTypes) {
		return false
	}
	if a.Variadic != b.Variadic || a.MinArgs != b.MinArgs {
		return false
	}
	for i := range a.ArgTypes {
		if a.ArgKinds[i] != b.ArgKinds[i] {
			return false
		}
		if !SameType(a.ArgTypes[i], b.ArgTypes[i]) {
			return false
		}
	}
	return SameType(a.Ret, b.Ret)
}
