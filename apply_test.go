// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyAndOr(t *testing.T) {
	m := New()
	a, err := m.Var("a")
	require.NoError(t, err)
	b, err := m.Var("b")
	require.NoError(t, err)

	and, err := m.And(a, b)
	require.NoError(t, err)
	or, err := m.Or(a, b)
	require.NoError(t, err)

	require.False(t, and.Equal(or))

	// a and b => a or b : this is a tautology, check via implication.
	imp, err := m.Imp(and, or)
	require.NoError(t, err)
	require.True(t, imp.Equal(m.One()))
}

func TestNotInvolution(t *testing.T) {
	m := New()
	a, err := m.Var("a")
	require.NoError(t, err)
	na, err := m.Not(a)
	require.NoError(t, err)
	nna, err := m.Not(na)
	require.NoError(t, err)
	require.True(t, a.Equal(nna))
}

func TestUndetAbsorbs(t *testing.T) {
	m := New()
	a, err := m.Var("a")
	require.NoError(t, err)
	u := m.BoolUndet()
	res, err := m.And(a, u)
	require.NoError(t, err)
	require.True(t, res.Equal(u))
}

func TestIteConsistency(t *testing.T) {
	m := New()
	f, err := m.Var("f")
	require.NoError(t, err)
	g, err := m.Var("g")
	require.NoError(t, err)
	h, err := m.Var("h")
	require.NoError(t, err)

	ite, err := m.Ite(f, g, h)
	require.NoError(t, err)

	fg, err := m.And(f, g)
	require.NoError(t, err)
	nf, err := m.Not(f)
	require.NoError(t, err)
	nfh, err := m.And(nf, h)
	require.NoError(t, err)
	expected, err := m.Or(fg, nfh)
	require.NoError(t, err)

	require.True(t, ite.Equal(expected), "ite(f,g,h) must equal (f and g) or (not f and h)")
}

func TestApplyKindMismatch(t *testing.T) {
	m := New()
	a, err := m.Var("a")
	require.NoError(t, err)
	v := m.Value(1)
	_, err = m.And(a, v)
	require.ErrorIs(t, err, ErrKindMismatch)
}
