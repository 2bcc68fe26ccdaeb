package constraints

import "github.com/typewright/typewright/internal/types"

// Solution maps a variable ID to its solved type. An ID present in the
// map with a nil Type means "no constraints at all" (spec.md: "Variables
// with no constraints return None"); an ID mapped to Unsolved means
// bottom <: top failed and the caller must treat it as unresolved
// (spec.md step: "mark this variable unsolved").
type Solution map[int]types.Type

// Unsolved is a sentinel distinguishing "constraints conflicted" from
// "no constraints were ever emitted": the first maps the ID to this
// non-nil marker, the second to a nil Type, so a caller that only checks
// `sol[id] == nil` sees only the second case.
var Unsolved types.Type = &unsolvedType{}

type unsolvedType struct{}

func (*unsolvedType) String() string { return "<unsolved>" }

// SolveConstraints solves to a lower bound per variable (spec.md §4.2).
//
// For each variable: bottom = join of all its GTE targets (None if there
// are none to join); top = meet of all its LTE targets (Any if there are
// none to meet, since an absent upper bound is the universal acceptor).
// If either bound is Any, the other is promoted to Any too. If bottom is
// None or bottom <: top, the variable solves to bottom; otherwise it is
// Unsolved.
func SolveConstraints(varIDs []int, cs []Constraint) Solution {
	byVar := make(map[int][]Constraint)
	for _, c := range cs {
		byVar[c.VarID] = append(byVar[c.VarID], c)
	}

	sol := make(Solution, len(varIDs))
	for _, id := range varIDs {
		own := byVar[id]
		if len(own) == 0 {
			sol[id] = nil
			continue
		}

		var bottom types.Type = types.None
		haveBottom := false
		var top types.Type = types.Any
		haveTop := false

		for _, c := range own {
			switch c.Op {
			case GTE:
				if !haveBottom {
					bottom = c.Target
					haveBottom = true
				} else {
					bottom = types.Join(bottom, c.Target)
				}
			case LTE:
				if !haveTop {
					top = c.Target
					haveTop = true
				} else {
					top = types.Meet(top, c.Target)
				}
			}
		}

		if isAny(bottom) || isAny(top) {
			bottom, top = types.Any, types.Any
		}

		if isNoneType(bottom) || types.IsSubtype(bottom, top) {
			sol[id] = bottom
		} else {
			sol[id] = Unsolved
		}
	}
	return sol
}

func isAny(t types.Type) bool  { _, ok := t.(*types.AnyType); return ok }
func isNoneType(t types.Type) bool { _, ok := t.(*types.NoneType); return ok }

// IsUnsolved reports whether id solved to the Unsolved sentinel.
func (s Solution) IsUnsolved(id int) bool {
	t, ok := s[id]
	return ok && t == Unsolved
}

// HasNoConstraints reports whether id had no constraints emitted at all.
func (s Solution) HasNoConstraints(id int) bool {
	t, ok := s[id]
	return ok && t == nil
}

// ToSubst converts a fully-resolved solution into a types.Subst, applying
// `fallback` (typically types.Any) wherever a variable is unsolved or had
// no constraints — matching spec.md §4.3.2's "After each pass, unsolved
// variables become Any."
func (s Solution) ToSubst(fallback types.Type) types.Subst {
	sub := make(types.Subst, len(s))
	for id, t := range s {
		if t == nil || t == Unsolved {
			sub[id] = fallback
		} else {
			sub[id] = t
		}
	}
	return sub
}
