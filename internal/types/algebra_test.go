package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classHierarchy() (object, a, b, g *TypeInfo) {
	object = NewTypeInfo("object", false)
	a = NewTypeInfo("A", false)
	a.Super = object
	b = NewTypeInfo("B", false)
	b.Super = a
	g = NewTypeInfo("G", false)
	g.TypeVars = []string{"T"}
	g.Super = object
	RegisterBuiltinObjectClass(object)
	return
}

func TestSubtypeReflexivity(t *testing.T) {
	_, a, _, _ := classHierarchy()
	x := &Instance{Class: a}
	assert.True(t, IsSubtype(x, x), "reflexivity: is_subtype(X, X)")
}

func TestSubtypeAntisymmetryImpliesSameType(t *testing.T) {
	_, a, _, _ := classHierarchy()
	x := &Instance{Class: a}
	y := &Instance{Class: a}
	require.True(t, IsSubtype(x, y) && IsSubtype(y, x))
	assert.True(t, SameType(x, y))
}

func TestJoinMeetCommutative(t *testing.T) {
	object, a, b, _ := classHierarchy()
	x := &Instance{Class: a}
	y := &Instance{Class: b}
	_ = object
	assert.True(t, SameType(Join(x, y), Join(y, x)))
	assert.True(t, SameType(Meet(x, y), Meet(y, x)))
}

func TestJoinUpperBound(t *testing.T) {
	_, a, b, _ := classHierarchy()
	x := &Instance{Class: a}
	y := &Instance{Class: b}
	j := Join(x, y)
	if _, isErr := j.(*ErrorType); !isErr {
		assert.True(t, IsSubtype(x, j))
		assert.True(t, IsSubtype(y, j))
	}
}

func TestMeetLowerBound(t *testing.T) {
	_, a, b, _ := classHierarchy()
	x := &Instance{Class: a}
	y := &Instance{Class: b}
	m := Meet(x, y)
	if _, isErr := m.(*ErrorType); !isErr {
		assert.True(t, IsSubtype(m, x))
	}
}

func TestExpandEmptySubstIsIdentity(t *testing.T) {
	_, a, _, _ := classHierarchy()
	x := &Instance{Class: a}
	assert.True(t, SameType(Expand(x, Subst{}), x))
}

func TestExpandComposesDisjointSubstitutions(t *testing.T) {
	tv1 := &TypeVar{Name: "T", ID: -1}
	tv2 := &TypeVar{Name: "U", ID: -2}
	tup := &Tuple{Items: []Type{tv1, tv2}}

	step1 := Expand(tup, Subst{-1: TInt()})
	step2 := Expand(step1, Subst{-2: TBool()})

	combined := Expand(tup, Subst{-1: TInt(), -2: TBool()})
	assert.True(t, SameType(step2, combined))
}

func TestEraseIdempotent(t *testing.T) {
	_, _, _, g := classHierarchy()
	inst := &Instance{Class: g, Args: []Type{&TypeVar{Name: "T", ID: 1}}}
	once := Erase(inst)
	twice := Erase(once)
	assert.True(t, SameType(once, twice))
}

func TestMapInstanceToSupertypeIdentity(t *testing.T) {
	_, _, _, g := classHierarchy()
	inst := &Instance{Class: g, Args: []Type{TInt()}}
	mapped, ok := MapInstanceToSupertype(inst, g)
	require.True(t, ok)
	assert.True(t, SameType(mapped, inst))
}

func TestGenericInvariance(t *testing.T) {
	object, a, b, g := classHierarchy()
	_ = object
	gb := &Instance{Class: g, Args: []Type{&Instance{Class: b}}}
	ga := &Instance{Class: g, Args: []Type{&Instance{Class: a}}}
	assert.False(t, IsSubtype(gb, ga), "G[B] must not be a subtype of G[A]: invariant parameters")
	assert.False(t, IsSubtype(ga, gb))
	assert.True(t, IsSubtype(gb, &Instance{Class: object}))
}

// TInt/TBool are tiny test-local helpers standing in for the builtin
// primitive classes the semantic analyzer would normally bootstrap.
func TInt() Type  { return &Instance{Class: NewTypeInfo("int", false)} }
func TBool() Type { return &Instance{Class: NewTypeInfo("bool", false)} }
