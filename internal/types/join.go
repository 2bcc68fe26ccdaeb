package types

// Join computes the least upper bound of a and b under IsSubtype
// (spec.md §4.1). It is commutative in result (spec.md §8 law 3) and
// satisfies a, b <: Join(a, b) whenever the result isn't Error (law 4).
func Join(a, b Type) Type {
	if _, ok := a.(*AnyType); ok {
		return Any
	}
	if _, ok := b.(*AnyType); ok {
		return Any
	}
	if isNone(a) && !isVoid(b) {
		return b
	}
	if isNone(b) && !isVoid(a) {
		return a
	}
	if _, ok := a.(*ErrorType); ok {
		if _, ok := b.(*AnyType); ok {
			return Any
		}
		return ErrorT
	}
	if _, ok := b.(*ErrorType); ok {
		return ErrorT
	}
	if SameType(a, b) {
		return a
	}

	switch a := a.(type) {
	case *Instance:
		if b, ok := b.(*Instance); ok {
			return joinInstances(a, b)
		}
		if b, ok := b.(*Tuple); ok {
			return joinTupleAndInstance(b, a)
		}
		return objectType()
	case *Tuple:
		if b, ok := b.(*Tuple); ok {
			if len(a.Items) == len(b.Items) {
				items := make([]Type, len(a.Items))
				for i := range items {
					items[i] = Join(a.Items[i], b.Items[i])
				}
				return &Tuple{Items: items}
			}
			return objectType()
		}
		if b, ok := b.(*Instance); ok {
			return joinTupleAndInstance(a, b)
		}
		return objectType()
	case *Callable:
		if b, ok := b.(*Callable); ok {
			if similarCallables(a, b) {
				return joinCallables(a, b)
			}
		}
		return objectType()
	case *VoidType:
		if _, ok := b.(*VoidType); ok {
			return Void
		}
		return ErrorT
	default:
		return objectType()
	}
}

func isNone(t Type) bool { _, ok := t.(*NoneType); return ok }
func isVoid(t Type) bool { _, ok := t.(*VoidType); return ok }

func joinTupleAndInstance(t *Tuple, inst *Instance) Type {
	if inst.Class.FullName == "tuple" || inst.Class.FullName == "object" {
		return inst
	}
	return objectType()
}

// joinInstances combines two class instances: same class joins
// argument-wise; different classes walk the common-supertype search
// (superclasses then interface implementations), falling back to object.
func joinInstances(a, b *Instance) Type {
	if sameClass(a.Class, b.Class) {
		if len(a.Args) != len(b.Args) {
			return objectType()
		}
		args := make([]Type, len(a.Args))
		for i := range args {
			args[i] = Join(a.Args[i], b.Args[i])
		}
		return &Instance{Class: a.Class, Args: args}
	}
	if common := commonSuperclass(a.Class, b.Class); common != nil {
		ma, okA := MapInstanceToSupertype(a, common)
		mb, okB := MapInstanceToSupertype(b, common)
		if okA && okB {
			return joinInstances(ma, mb)
		}
	}
	return objectType()
}

// commonSuperclass walks a's superclass chain looking for an ancestor b
// also derives from (directly or via interfaces), preferring the nearest
// common ancestor found while walking a upward.
func commonSuperclass(a, b *TypeInfo) *TypeInfo {
	for cur := a; cur != nil; cur = cur.Super {
		if b.IsSubclassOf(cur) {
			return cur
		}
	}
	for cur := a; cur != nil; cur = cur.Super {
		for _, iface := range allInterfaces(b) {
			if cur == iface {
				return cur
			}
		}
	}
	return nil
}

func allInterfaces(ti *TypeInfo) []*TypeInfo {
	var out []*TypeInfo
	var walk func(*TypeInfo)
	walk = func(t *TypeInfo) {
		if t == nil {
			return
		}
		out = append(out, t.Interfaces...)
		for _, i := range t.Interfaces {
			walk(i)
		}
		walk(t.Super)
	}
	walk(ti)
	return out
}

func similarCallables(a, b *Callable) bool {
	return len(a.ArgTypes) == len(b.ArgTypes) && a.MinArgs == b.MinArgs && a.Variadic == b.Variadic
}

func joinCallables(a, b *Callable) *Callable {
	args := make([]Type, len(a.ArgTypes))
	for i := range args {
		// parameters are contravariant: the join of two functions accepts
		// the meet of their parameter types.
		args[i] = Meet(a.ArgTypes[i], b.ArgTypes[i])
	}
	return &Callable{
		ArgTypes: args,
		ArgKinds: a.ArgKinds,
		ArgNames: a.ArgNames,
		MinArgs:  a.MinArgs,
		Variadic: a.Variadic,
		Ret:      Join(a.Ret, b.Ret),
	}
}

var objectInfo = NewTypeInfo("object", false)

// RegisterBuiltinObjectClass installs the real `object` TypeInfo once the
// semantic analyzer bootstraps the builtin hierarchy, mirroring
// RegisterBuiltinTupleClass/RegisterBuiltinFunctionClass in erase.go.
func RegisterBuiltinObjectClass(ti *TypeInfo) { objectInfo = ti }

func objectType() Type { return &Instance{Class: objectInfo} }
