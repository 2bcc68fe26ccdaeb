package constraints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typewright/typewright/internal/types"
)

func intInstance() types.Type {
	return &types.Instance{Class: types.NewTypeInfo("int", false)}
}

func listInstance(elem types.Type) types.Type {
	ti := types.NewTypeInfo("list", false)
	ti.TypeVars = []string{"T"}
	return &types.Instance{Class: ti, Args: []types.Type{elem}}
}

// Scenario 3 from spec.md §8: <T>(list<T>, T) -> T; f([1, 2], 3) infers
// T = int.
func TestGenericInferenceListAndElement(t *testing.T) {
	tv := &types.TypeVar{Name: "T", ID: -1}
	listT := listInstance(tv)

	actualList := listInstance(intInstance())
	actualElem := intInstance()

	var cs []Constraint
	cs = append(cs, InferConstraints(listT, actualList)...)
	cs = append(cs, InferConstraints(tv, actualElem)...)

	sol := SolveConstraints([]int{-1}, cs)
	require.False(t, sol.IsUnsolved(-1))
	require.False(t, sol.HasNoConstraints(-1))
	assert.True(t, types.SameType(sol[-1], intInstance()))
}

func TestNoConstraintsLeavesVariableUnconstrained(t *testing.T) {
	sol := SolveConstraints([]int{-7}, nil)
	assert.True(t, sol.HasNoConstraints(-7))
}

func TestConflictingBoundsAreUnsolved(t *testing.T) {
	stringTI := types.NewTypeInfo("string", false)
	stringInst := &types.Instance{Class: stringTI}
	cs := []Constraint{
		{VarID: -1, Op: GTE, Target: intInstance()},
		{VarID: -1, Op: LTE, Target: stringInst},
	}
	sol := SolveConstraints([]int{-1}, cs)
	assert.True(t, sol.IsUnsolved(-1))
}

func TestAnyPromotesBothBounds(t *testing.T) {
	cs := []Constraint{
		{VarID: -1, Op: GTE, Target: intInstance()},
		{VarID: -1, Op: LTE, Target: types.Any},
	}
	sol := SolveConstraints([]int{-1}, cs)
	require.False(t, sol.IsUnsolved(-1))
	assert.True(t, types.SameType(sol[-1], types.Any))
}
