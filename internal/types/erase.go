package types

// Erase maps TypeVar -> Any, Instance[args...] -> Instance[Any...]
// (preserving arity), Tuple -> the builtin tuple base, and Callable -> the
// builtin function base, per spec.md §4.1. It is used wherever a
// signature needs to be compared ignoring type parameters: overload
// matching (spec.md §4.3 step 2) and override compatibility checks
// (spec.md §4.4).
//
// Erase is idempotent: Erase(Erase(x)) == Erase(x) (spec.md §8 law 6),
// since every branch below either returns a fixed point directly (Any,
// the tuple/function base Instances) or recurses into already-erased
// children.
func Erase(t Type) Type {
	switch t := t.(type) {
	case *TypeVar:
		return Any
	case *Instance:
		args := make([]Type, len(t.Args))
		for i := range args {
			args[i] = Any
		}
		return &Instance{Class: t.Class, Args: args}
	case *Tuple:
		return tupleBase(len(t.Items))
	case *Callable:
		return functionBase()
	case *Overloaded:
		items := make([]*Callable, len(t.Items))
		for i, c := range t.Items {
			items[i] = EraseSignature(c)
		}
		return &Overloaded{Items: items}
	default:
		return t
	}
}

// EraseSignature erases a Callable's argument and return types in place
// (TypeVar -> Any, Instance<...> -> Instance<Any...>, nested Tuple/
// Callable -> their builtin bases) while preserving the Callable's own
// shape — arg kinds, names, arity, variadic flag. This is deliberately
// narrower than Erase(*Callable), which per spec.md §4.1 collapses a
// Callable value itself to the builtin function base: that's the right
// erasure when a callable appears as an ordinary value being compared
// against unrelated types, but it would make every signature compare
// equal, which is useless for the actual consumers of erasure — overload
// dispatch (spec.md §4.3 step 2, §8 law 8) and override compatibility
// (spec.md §4.4) both need to compare one signature's *shape* against
// another's with only the type parameters washed out.
func EraseSignature(c *Callable) *Callable {
	args := make([]Type, len(c.ArgTypes))
	for i, t := range c.ArgTypes {
		args[i] = Erase(t)
	}
	return &Callable{
		ArgTypes:  args,
		ArgKinds:  c.ArgKinds,
		ArgNames:  c.ArgNames,
		MinArgs:   c.MinArgs,
		Variadic:  c.Variadic,
		Ret:       Erase(c.Ret),
		IsTypeObj: c.IsTypeObj,
	}
}

// builtinTupleInfo and builtinFunctionInfo stand in for the language's
// builtin `tuple` and `function` classes; the semantic analyzer normally
// supplies the real TypeInfo for these during bootstrap, but Erase needs a
// stable identity usable even before bootstrap has run (e.g. in tests
// that exercise types in isolation), so it keeps package-level sentinels
// that sema's BootstrapBuiltins replaces through RegisterBuiltinTupleClass
// and RegisterBuiltinFunctionClass.
var (
	builtinTupleInfo    = NewTypeInfo("tuple", false)
	builtinFunctionInfo = NewTypeInfo("function", false)
)

// RegisterBuiltinTupleClass lets the semantic analyzer's bootstrap install
// the real TypeInfo for `tuple` once the class hierarchy is built, so
// Erase's output compares equal (by class identity) to ordinary `tuple`
// instances appearing elsewhere in the same program.
func RegisterBuiltinTupleClass(ti *TypeInfo) { builtinTupleInfo = ti }

// RegisterBuiltinFunctionClass is the Callable analog of
// RegisterBuiltinTupleClass.
func RegisterBuiltinFunctionClass(ti *TypeInfo) { builtinFunctionInfo = ti }

func tupleBase(arity int) Type {
	args := make([]Type, arity)
	for i := range args {
		args[i] = Any
	}
	return &Instance{Class: builtinTupleInfo, Args: args}
}

func functionBase() Type {
	return &Instance{Class: builtinFunctionInfo}
}

// ErasedSignaturesEqual compares two Callables after EraseSignature. sema's
// checkOverrides uses it for override compatibility; overload dispatch in
// internal/checker does not (it runs a full call check per variant).
func ErasedSignaturesEqual(a, b *Callable) bool {
	return SameType(EraseSignature(a), EraseSignature(b))
}
