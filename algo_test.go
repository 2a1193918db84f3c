// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProbBasicEvent(t *testing.T) {
	m := New()
	a, err := m.Var("a")
	require.NoError(t, err)

	weights := map[string][]float64{"a": {0.9, 0.1}}
	p, err := Prob[float64](m, a, weights, FloatRing{})
	require.NoError(t, err)
	require.InDelta(t, 0.1, p, 1e-9)
}

func TestProbAndIndependent(t *testing.T) {
	m := New()
	a, err := m.Var("a")
	require.NoError(t, err)
	b, err := m.Var("b")
	require.NoError(t, err)
	and, err := m.And(a, b)
	require.NoError(t, err)

	weights := map[string][]float64{
		"a": {0.9, 0.1},
		"b": {0.8, 0.2},
	}
	p, err := Prob[float64](m, and, weights, FloatRing{})
	require.NoError(t, err)
	require.InDelta(t, 0.02, p, 1e-9)
}

func TestProbIntervalRing(t *testing.T) {
	m := New()
	a, err := m.Var("a")
	require.NoError(t, err)

	weights := map[string][]Interval{
		"a": {Degenerate(0.9), {Lo: 0.05, Hi: 0.15}},
	}
	p, err := Prob[Interval](m, a, weights, IntervalRing{})
	require.NoError(t, err)
	require.InDelta(t, 0.05, p.Lo, 1e-9)
	require.InDelta(t, 0.15, p.Hi, 1e-9)
}

func TestMinsolDropsRedundantVariable(t *testing.T) {
	m := New()
	a, err := m.Var("a")
	require.NoError(t, err)
	b, err := m.Var("b")
	require.NoError(t, err)

	// a or (a and b) reduces to a, but a's own diagram is still true for
	// both values of b: only {a} is a minimal true point, {a,b} is not,
	// since it is a strict superset of {a}.
	ab, err := m.And(a, b)
	require.NoError(t, err)
	f, err := m.Or(a, ab)
	require.NoError(t, err)
	require.True(t, f.Equal(a), "a or (a and b) should already reduce to a")

	min, err := m.Minsol(f)
	require.NoError(t, err)

	notB, err := m.Not(b)
	require.NoError(t, err)
	expected, err := m.And(a, notB)
	require.NoError(t, err)
	require.True(t, min.Equal(expected), "minsol(a) must drop the non-minimal {a,b} point")
}

func TestMinsolMultipleCutSets(t *testing.T) {
	m := New()
	a, err := m.Var("a")
	require.NoError(t, err)
	b, err := m.Var("b")
	require.NoError(t, err)
	c, err := m.Var("c")
	require.NoError(t, err)

	ab, err := m.And(a, b)
	require.NoError(t, err)
	f, err := m.Or(ab, c)
	require.NoError(t, err)

	min, err := m.Minsol(f)
	require.NoError(t, err)

	// The minimal cut sets of (a and b) or c are exactly {a,b} and {c}: the
	// only accepted points are (not a, not b, c) and (a, b, not c).
	na, err := m.Not(a)
	require.NoError(t, err)
	nb, err := m.Not(b)
	require.NoError(t, err)
	nc, err := m.Not(c)
	require.NoError(t, err)
	notABc, err := m.And(na, nb)
	require.NoError(t, err)
	notABc, err = m.And(notABc, c)
	require.NoError(t, err)
	abNotC, err := m.And(a, b)
	require.NoError(t, err)
	abNotC, err = m.And(abNotC, nc)
	require.NoError(t, err)
	expected, err := m.Or(notABc, abNotC)
	require.NoError(t, err)

	require.True(t, min.Equal(expected))
}

func TestWithoutRecAndIterAgree(t *testing.T) {
	m := New()
	a, err := m.Var("a")
	require.NoError(t, err)
	b, err := m.Var("b")
	require.NoError(t, err)
	c, err := m.Var("c")
	require.NoError(t, err)

	ab, err := m.And(a, b)
	require.NoError(t, err)
	f, err := m.Or(ab, c)
	require.NoError(t, err)

	// g shares a's level with a non-constant low branch (not(b)), so this
	// exercises the equal-levels recursion case, not just a's own base cases.
	notB, err := m.Not(b)
	require.NoError(t, err)
	g, err := m.And(a, notB)
	require.NoError(t, err)

	rec, err := m.withoutRec(f.id, g.id)
	require.NoError(t, err)
	iter, err := m.withoutStack(f.id, g.id)
	require.NoError(t, err)
	require.Equal(t, rec, iter)
}

func TestWithoutEqualLevelUsesDirectHighChild(t *testing.T) {
	m := New()
	a, err := m.Var("a")
	require.NoError(t, err)
	b, err := m.Var("b")
	require.NoError(t, err)

	// g shares a's level (both nonterminals on "a"), with a non-constant
	// low branch g0 = b-node and a constant high branch g1 = Zero: no
	// assignment accepted by f = a (a=1) is ever accepted by g, which is
	// forced false whenever a=1, so without(f,g) must leave f unchanged.
	notA, err := m.Not(a)
	require.NoError(t, err)
	g, err := m.And(notA, b)
	require.NoError(t, err)

	res, err := m.Without(a, g)
	require.NoError(t, err)
	require.True(t, res.Equal(a), "without(a, not(a) and b) must equal a unchanged")
}

func TestExtractFindsSatisfyingPath(t *testing.T) {
	m := New()
	a, err := m.Var("a")
	require.NoError(t, err)
	b, err := m.Var("b")
	require.NoError(t, err)
	f, err := m.And(a, b)
	require.NoError(t, err)

	paths, ok := m.Extract(f)
	require.True(t, ok)
	require.Len(t, paths, 1)
	require.Len(t, paths[0], 2)
	for _, asgn := range paths[0] {
		require.Equal(t, int64(1), asgn.Value)
	}
}

func TestExtractFailsOnZero(t *testing.T) {
	m := New()
	_, ok := m.Extract(m.Zero())
	require.False(t, ok)
}

// TestExtractOrListsEveryPath mirrors seed scenario S2: or(a,b) has exactly
// two accepting paths, a=1 (b is not tested) and a=0,b=1, and Extract must
// enumerate both, not just the first one found.
func TestExtractOrListsEveryPath(t *testing.T) {
	m := New()
	a, err := m.Var("a")
	require.NoError(t, err)
	b, err := m.Var("b")
	require.NoError(t, err)
	f, err := m.Or(a, b)
	require.NoError(t, err)

	paths, ok := m.Extract(f)
	require.True(t, ok)
	require.Len(t, paths, 2)

	labelsOf := func(path []Assignment) map[string]int64 {
		out := make(map[string]int64, len(path))
		for _, asgn := range path {
			out[asgn.Label] = asgn.Value
		}
		return out
	}
	got := []map[string]int64{labelsOf(paths[0]), labelsOf(paths[1])}
	require.Contains(t, got, map[string]int64{"a": 1})
	require.Contains(t, got, map[string]int64{"a": 0, "b": 1})
}

// TestExtractKofNListsEveryPath mirrors seed scenario S3: a 2-out-of-3
// threshold over {a,b,c} has exactly three accepting paths.
func TestExtractKofNListsEveryPath(t *testing.T) {
	m := New()
	ft := NewFaultTree(m)
	top := ft.KofN(2, ft.Basic("a"), ft.Basic("b"), ft.Basic("c"))
	n, err := ft.Compile(top)
	require.NoError(t, err)

	paths, ok := m.Extract(n)
	require.True(t, ok)
	require.Len(t, paths, 3)
}

func TestCountAcceptingPaths(t *testing.T) {
	m := New()
	a, err := m.Var("a")
	require.NoError(t, err)
	b, err := m.Var("b")
	require.NoError(t, err)
	f, err := m.Or(a, b)
	require.NoError(t, err)

	n, err := m.Count(f)
	require.NoError(t, err)
	require.Equal(t, int64(2), n.Int64())
}

func TestCountRejectsIntKind(t *testing.T) {
	m := New()
	_, err := m.Count(m.Value(3))
	require.ErrorIs(t, err, ErrKindMismatch)
}
