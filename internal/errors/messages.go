package errors

import (
	"fmt"

	"github.com/typewright/typewright/internal/ast"
	"github.com/typewright/typewright/internal/types"
)

// The builders below are the Messages component (spec.md §2): every
// caller in internal/checker and internal/sema goes through one of these
// rather than formatting ad hoc strings, so wording stays consistent and
// every message embeds pretty-printed types via Type.String().

func span(pos ast.Pos) *ast.Span { return &ast.Span{Start: pos, End: pos} }

func UndefinedName(pos ast.Pos, name string) *Report {
	return New("name-resolution", NAM001, fmt.Sprintf("undefined name %q", name), span(pos), nil)
}

func AmbiguousName(pos ast.Pos, name string, modules []string) *Report {
	return New("name-resolution", NAM002,
		fmt.Sprintf("ambiguous name %q (exported by multiple wildcard imports: %v)", name, modules),
		span(pos), map[string]any{"modules": modules})
}

func UnknownModule(pos ast.Pos, module string) *Report {
	return New("name-resolution", NAM003, fmt.Sprintf("unknown module %q", module), span(pos), nil)
}

func IllFormedAnnotation(pos ast.Pos, text string) *Report {
	return New("annotation", ANN001, fmt.Sprintf("ill-formed type annotation %q", text), span(pos), nil)
}

func AnnotationArityMismatch(pos ast.Pos, name string, want, got int) *Report {
	return New("annotation", ANN002,
		fmt.Sprintf("%q expects %d type argument(s), got %d", name, want, got), span(pos),
		map[string]any{"want": want, "got": got})
}

func IncompatibleOverride(pos ast.Pos, method, class string, base, override types.Type) *Report {
	return New("override", OVR001,
		fmt.Sprintf("signature of %q in class %q is incompatible with the overridden signature %s (got %s)",
			method, class, base.String(), override.String()),
		span(pos), map[string]any{"base": base.String(), "override": override.String()})
}

func AssignmentTypeMismatch(pos ast.Pos, target string, want, got types.Type) *Report {
	return New("assignment", ASG001,
		fmt.Sprintf("incompatible type for %q; expected %s, got %s", target, want.String(), got.String()),
		span(pos), map[string]any{"expected": want.String(), "got": got.String()})
}

func TupleAssignmentArity(pos ast.Pos, want, got int) *Report {
	return New("assignment", ASG002,
		fmt.Sprintf("cannot assign %d value(s) to %d target(s)", got, want), span(pos), nil)
}

func MissingRequiredArgument(pos ast.Pos, callee, name string) *Report {
	return New("call", CAL001, fmt.Sprintf("%q is missing required argument %q", callee, name), span(pos), nil)
}

func ExtraPositionalArgument(pos ast.Pos, callee string) *Report {
	return New("call", CAL002, fmt.Sprintf("too many positional arguments for %q", callee), span(pos), nil)
}

func UnknownKeywordArgument(pos ast.Pos, callee, name string) *Report {
	return New("call", CAL003, fmt.Sprintf("%q has no keyword argument %q", callee, name), span(pos), nil)
}

func DuplicateKeywordArgument(pos ast.Pos, name string) *Report {
	return New("call", CAL004, fmt.Sprintf("keyword argument %q given more than once", name), span(pos), nil)
}

func ArgumentTypeMismatch(pos ast.Pos, argPos int, callee string, want, got types.Type) *Report {
	return New("call", CAL005,
		fmt.Sprintf("argument %d to %q has incompatible type %s; expected %s",
			argPos, callee, got.String(), want.String()),
		span(pos), map[string]any{"expected": want.String(), "got": got.String()})
}

func VoidArgument(pos ast.Pos, argPos int, callee string) *Report {
	return New("call", CAL005, fmt.Sprintf("argument %d to %q does not return a value", argPos, callee), span(pos), nil)
}

func NotCallable(pos ast.Pos, got types.Type) *Report {
	return New("call", CAL006, fmt.Sprintf("%s is not callable", got.String()), span(pos), nil)
}

func UnresolvedTypeVariable(pos ast.Pos, callee, varName string) *Report {
	return New("call", CAL007, fmt.Sprintf("cannot infer type variable %q of %q", varName, callee), span(pos), nil)
}

func NoOverloadMatches(pos ast.Pos, callee string) *Report {
	return New("call", CAL008, fmt.Sprintf("no overload variant of %q matches argument types", callee), span(pos), nil)
}

func StarOnNonIterable(pos ast.Pos, got types.Type) *Report {
	return New("call", CAL009, fmt.Sprintf("`*` applied to non-iterable type %s", got.String()), span(pos), nil)
}

func StarStarOnNonMapping(pos ast.Pos, got types.Type) *Report {
	return New("call", CAL010, fmt.Sprintf("`**` applied to non-mapping type %s", got.String()), span(pos), nil)
}

func UnsupportedOperand(pos ast.Pos, op string, left, right types.Type) *Report {
	return New("operator", OPR001,
		fmt.Sprintf("unsupported operand types for %s: %s and %s", op, left.String(), right.String()),
		span(pos), nil)
}

func OperatorNotCallable(pos ast.Pos, method string, owner types.Type) *Report {
	return New("operator", OPR002, fmt.Sprintf("%q on %s is not callable", method, owner.String()), span(pos), nil)
}

func NonBoolCondition(pos ast.Pos, got types.Type) *Report {
	return New("flow", FLW001, fmt.Sprintf("condition has non-bool type %s", got.String()), span(pos), nil)
}

func ReturnInVoidFunction(pos ast.Pos) *Report {
	return New("flow", FLW002, "return with a value is not allowed in a function that returns no value", span(pos), nil)
}

func ReturnTypeMismatch(pos ast.Pos, want, got types.Type) *Report {
	return New("flow", FLW003,
		fmt.Sprintf("return value has type %s; expected %s", got.String(), want.String()),
		span(pos), map[string]any{"expected": want.String(), "got": got.String()})
}

func RaisedValueNotException(pos ast.Pos, got types.Type) *Report {
	return New("flow", FLW004, fmt.Sprintf("raised value has type %s, which does not subtype Exception", got.String()), span(pos), nil)
}

func InvalidTupleIndex(pos ast.Pos, reason string) *Report {
	return New("indexing", IDX001, fmt.Sprintf("invalid tuple index: %s", reason), span(pos), nil)
}

func NonIntegerSliceEndpoint(pos ast.Pos, got types.Type) *Report {
	return New("indexing", IDX002, fmt.Sprintf("slice endpoint must be int, got %s", got.String()), span(pos), nil)
}

func NoSuchMember(pos ast.Pos, owner types.Type, name string) *Report {
	return New("member", MEM001, fmt.Sprintf("%s has no member %q", owner.String(), name), span(pos), nil)
}

func DisjointCast(pos ast.Pos, from, to types.Type) *Report {
	return New("cast", CST001,
		fmt.Sprintf("cannot cast %s to unrelated type %s", from.String(), to.String()), span(pos), nil)
}
