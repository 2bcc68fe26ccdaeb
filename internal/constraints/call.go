package constraints

import "github.com/typewright/typewright/internal/types"

// ActualArg is one argument's observed type at a call site, paired with
// whether it arrived through a `*`-spread (so its element type, not its
// own type, should be matched against a fixed formal when it is a
// list-like spread of unknown static length).
type ActualArg struct {
	Type    types.Type
	IsSplat bool // true for `*actual`
}

// InferConstraintsForCallable expands star-actuals against callee's fixed
// parameters before emitting per-pair constraints, plus one constraint
// for the vararg tail if callee is variadic (spec.md §4.2).
//
// A splatted tuple actual distributes its items across formals by length;
// a splatted list-like actual (its Type is list[E]) fills the remaining
// non-keyword formals with E, preserving the source's leniency toward
// `*`-actuals of unknown length against multiple positional formals
// (spec.md §9 open question — kept lenient, see DESIGN.md).
func InferConstraintsForCallable(callee *types.Callable, actuals []ActualArg) []Constraint {
	expanded := expandSplats(actuals, len(callee.ArgTypes))

	var out []Constraint
	for i, formal := range callee.ArgTypes {
		if i >= len(expanded) {
			break
		}
		out = append(out, InferConstraints(formal, expanded[i])...)
	}

	if callee.Variadic && len(expanded) > len(callee.ArgTypes) {
		tailFormal := callee.ArgTypes[len(callee.ArgTypes)-1]
		for _, extra := range expanded[len(callee.ArgTypes):] {
			out = append(out, InferConstraints(tailFormal, extra)...)
		}
	}
	return out
}

// expandSplats flattens actuals, turning a splatted Tuple into its items
// and a splatted list-like Instance into copies of its element type until
// the flattened list holds `want` entries (matching formals greedily; see
// spec.md §4.3.1 for the identical rule used by actuals-to-formals
// argument mapping).
func expandSplats(actuals []ActualArg, want int) []types.Type {
	var out []types.Type
	for _, a := range actuals {
		if !a.IsSplat {
			out = append(out, a.Type)
			continue
		}
		if tup, ok := a.Type.(*types.Tuple); ok {
			out = append(out, tup.Items...)
			continue
		}
		if inst, ok := a.Type.(*types.Instance); ok && len(inst.Args) == 1 {
			elem := inst.Args[0]
			for len(out) < want {
				out = append(out, elem)
			}
			continue
		}
		// Unknown shape: leniently assume success at runtime and stop
		// contributing further constraints for this actual.
	}
	return out
}
