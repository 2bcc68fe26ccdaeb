package types

// Meet computes the greatest lower bound of a and b under IsSubtype
// (spec.md §4.1). Unlike Join, Meet falls back to None rather than
// object when no common subtype exists, so `Meet(A, unrelated-B) == None`.
// Void meet anything-else is Error.
func Meet(a, b Type) Type {
	if _, ok := a.(*AnyType); ok {
		return b
	}
	if _, ok := b.(*AnyType); ok {
		return a
	}
	if isVoid(a) || isVoid(b) {
		if isVoid(a) && isVoid(b) {
			return Void
		}
		return ErrorT
	}
	if _, ok := a.(*ErrorType); ok {
		return ErrorT
	}
	if _, ok := b.(*ErrorType); ok {
		return ErrorT
	}
	if SameType(a, b) {
		return a
	}
	if IsSubtype(a, b) {
		return a
	}
	if IsSubtype(b, a) {
		return b
	}

	switch a := a.(type) {
	case *Instance:
		if b, ok := b.(*Instance); ok && sameClass(a.Class, b.Class) && len(a.Args) == len(b.Args) {
			args := make([]Type, len(a.Args))
			for i := range args {
				args[i] = Meet(a.Args[i], b.Args[i])
			}
			return &Instance{Class: a.Class, Args: args}
		}
		return None
	case *Tuple:
		if b, ok := b.(*Tuple); ok && len(a.Items) == len(b.Items) {
			items := make([]Type, len(a.Items))
			for i := range items {
				items[i] = Meet(a.Items[i], b.Items[i])
			}
			return &Tuple{Items: items}
		}
		return None
	case *Callable:
		if b, ok := b.(*Callable); ok && similarCallables(a, b) {
			args := make([]Type, len(a.ArgTypes))
			for i := range args {
				args[i] = Join(a.ArgTypes[i], b.ArgTypes[i])
			}
			return &Callable{
				ArgTypes: args,
				ArgKinds: a.ArgKinds,
				ArgNames: a.ArgNames,
				MinArgs:  a.MinArgs,
				Variadic: a.Variadic,
				Ret:      Meet(a.Ret, b.Ret),
			}
		}
		return None
	default:
		return None
	}
}
