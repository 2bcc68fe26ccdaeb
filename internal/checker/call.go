package checker

import (
	"github.com/typewright/typewright/internal/ast"
	"github.com/typewright/typewright/internal/errors"
	"github.com/typewright/typewright/internal/symtable"
	"github.com/typewright/typewright/internal/types"
)

// checkCall implements call resolution (spec.md §4.3): resolve the
// callee, pick an overload variant if one is present, map actual
// arguments onto formal parameters, run two-pass generic inference when
// the chosen variant is generic, then check each actual's type against
// its (possibly substituted) formal type.
func (c *Checker) checkCall(e *ast.CallExpr, scope *symtable.Scope) types.Type {
	calleeName := calleeDisplayName(e.Callee)
	calleeType := c.CheckExpr(e.Callee, scope)

	switch ct := calleeType.(type) {
	case *types.AnyType:
		for _, a := range e.Args {
			c.CheckExpr(a.Value, scope)
		}
		return types.Any
	case *types.ErrorType:
		for _, a := range e.Args {
			c.CheckExpr(a.Value, scope)
		}
		return types.ErrorT
	case *types.Overloaded:
		return c.checkOverloadedCall(e, ct, calleeName, scope)
	case *types.Callable:
		return c.checkCallableCall(e, ct, calleeName, scope)
	default:
		c.Errs.Add(errors.NotCallable(e.Position(), calleeType))
		for _, a := range e.Args {
			c.CheckExpr(a.Value, scope)
		}
		return types.ErrorT
	}
}

func calleeDisplayName(callee ast.Expr) string {
	switch x := callee.(type) {
	case *ast.NameExpr:
		return x.Name
	case *ast.MemberExpr:
		return x.Name
	default:
		return "<expr>"
	}
}

// checkOverloadedCall tries each variant in declaration order against a
// scratch Accumulator whose reports are discarded, taking the first
// variant whose check reports no errors, i.e. whose argument types are
// all subtype-compatible after inference (spec.md §4.3 step 2 "first
// erased-signature match wins", generalized here to first-match-on-full-
// check since overload variants in this checker are full Callables, not
// merely erased signatures to disambiguate between).
func (c *Checker) checkOverloadedCall(e *ast.CallExpr, ov *types.Overloaded, name string, scope *symtable.Scope) types.Type {
	for _, variant := range ov.Items {
		var ret types.Type
		shared := c.Errs
		trial := errors.NewAccumulator()
		c.Errs = trial
		func() {
			defer func() { c.Errs = shared }()
			ret = c.checkCallableCall(e, variant, name, scope)
		}()
		if !trial.HasErrors() {
			return ret
		}
	}
	c.Errs.Add(errors.NoOverloadMatches(e.Position(), name))
	for _, a := range e.Args {
		c.CheckExpr(a.Value, scope)
	}
	return types.ErrorT
}

// checkCallableCall maps actuals to formals, runs generic inference if
// needed, and checks each actual's type.
func (c *Checker) checkCallableCall(e *ast.CallExpr, callee *types.Callable, name string, scope *symtable.Scope) types.Type {
	mapping, ok := c.mapArgsToFormals(e, callee, name, scope)
	if !ok {
		return types.ErrorT
	}

	actualTypes := make([]types.Type, len(mapping.positional))
	for i, arg := range mapping.positional {
		if arg == nil {
			actualTypes[i] = types.Any
			continue
		}
		actualTypes[i] = c.CheckExpr(arg.Value, scope)
	}

	var effectiveCallee *types.Callable = callee
	if len(callee.Variables) > 0 {
		effectiveCallee = c.inferGeneric(e, callee, mapping, actualTypes, scope)
	}

	for i, t := range actualTypes {
		if i >= len(effectiveCallee.ArgTypes) {
			break
		}
		pos := e.Position()
		if arg := mapping.positional[i]; arg != nil {
			pos = arg.Value.Position()
		}
		formal := effectiveCallee.ArgTypes[i]
		if _, isVoid := t.(*types.VoidType); isVoid {
			c.Errs.Add(errors.VoidArgument(pos, i+1, name))
			continue
		}
		if !types.IsSubtype(t, formal) {
			c.Errs.Add(errors.ArgumentTypeMismatch(pos, i+1, name, formal, t))
		}
	}
	return effectiveCallee.Ret
}

// argMapping is the actuals-to-formals result (spec.md §4.3.1): one slot
// per formal parameter, nil where an optional parameter used its default.
type argMapping struct {
	positional []*ast.Arg
}

// mapArgsToFormals walks e.Args against callee's declared parameters,
// matching positional actuals by position, named actuals by ArgNames,
// and reporting CAL001-CAL004 for arity/keyword mismatches.
func (c *Checker) mapArgsToFormals(e *ast.CallExpr, callee *types.Callable, name string, scope *symtable.Scope) (*argMapping, bool) {
	slots := make([]*ast.Arg, len(callee.ArgTypes))
	seen := make([]bool, len(callee.ArgTypes))
	ok := true

	posIdx := 0
	for i := range e.Args {
		arg := &e.Args[i]
		switch arg.Kind {
		case ast.ArgNamed:
			idx := indexOfName(callee.ArgNames, arg.Name)
			if idx < 0 {
				c.Errs.Add(errors.UnknownKeywordArgument(arg.Value.Position(), name, arg.Name))
				ok = false
				continue
			}
			if seen[idx] {
				c.Errs.Add(errors.DuplicateKeywordArgument(arg.Value.Position(), arg.Name))
				ok = false
				continue
			}
			slots[idx] = arg
			seen[idx] = true
		case ast.ArgStar, ast.ArgStarStar:
			t := c.CheckExpr(arg.Value, scope)
			splat := arg.Kind == ast.ArgStar
			_ = splat
			// A `*` or `**` actual claims every remaining positional slot
			// (see fillSplatSlots); its element types are not matched
			// against those formals.
			for posIdx < len(slots) && seen[posIdx] {
				posIdx++
			}
			fillSplatSlots(slots, seen, &posIdx, t)
		default:
			for posIdx < len(slots) && seen[posIdx] {
				posIdx++
			}
			if posIdx >= len(slots) {
				if !callee.Variadic {
					c.Errs.Add(errors.ExtraPositionalArgument(arg.Value.Position(), name))
					ok = false
					continue
				}
				slots = append(slots, arg)
				seen = append(seen, true)
				continue
			}
			slots[posIdx] = arg
			seen[posIdx] = true
			posIdx++
		}
	}

	for i := 0; i < callee.MinArgs && i < len(slots); i++ {
		if !seen[i] {
			argName := ""
			if i < len(callee.ArgNames) {
				argName = callee.ArgNames[i]
			}
			c.Errs.Add(errors.MissingRequiredArgument(e.Position(), name, argName))
			ok = false
		}
	}
	return &argMapping{positional: slots}, ok
}

// fillSplatSlots conservatively marks remaining unseen slots as satisfied
// by a splat without checking their individual types. The slots keep no
// actual, so checkCallableCall treats each of them as Any, both in the
// argument checks and in generic inference; the splat's element/item
// type is not consulted (constraints.InferConstraintsForCallable is not
// used by this checker), matching the source's lenient stance on
// `*`-actuals of unknown static length documented in DESIGN.md.
func fillSplatSlots(slots []*ast.Arg, seen []bool, posIdx *int, _ types.Type) {
	for *posIdx < len(slots) && !seen[*posIdx] {
		seen[*posIdx] = true
		*posIdx++
	}
}

func indexOfName(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
