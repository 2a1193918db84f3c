// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArithConstantFolding(t *testing.T) {
	m := New()
	v3 := m.Value(3)
	v4 := m.Value(4)
	sum, err := m.Add(v3, v4)
	require.NoError(t, err)
	require.True(t, sum.Equal(m.Value(7)))
}

func TestDivByZeroIsDomainError(t *testing.T) {
	m := New()
	v1 := m.Value(1)
	v0 := m.Value(0)
	_, err := m.Div(v1, v0)
	require.ErrorIs(t, err, ErrDomain)
}

func TestCompareProducesBoolKind(t *testing.T) {
	m := New()
	v1 := m.Value(1)
	v2 := m.Value(2)
	lt, err := m.Lt(v1, v2)
	require.NoError(t, err)
	require.Equal(t, KindBool, lt.Kind())
	require.True(t, lt.Equal(m.One()))
}

func TestIfElseBridgesKinds(t *testing.T) {
	m := New()
	cond, err := m.Var("cond")
	require.NoError(t, err)
	t1 := m.Value(10)
	f1 := m.Value(20)

	r, err := m.IfElse(cond, t1, f1)
	require.NoError(t, err)
	require.Equal(t, KindInt, r.Kind())

	// Evaluating cond=true should select the t1 branch.
	low, err := m.Child(r, 0)
	require.NoError(t, err)
	high, err := m.Child(r, 1)
	require.NoError(t, err)
	require.True(t, low.Equal(f1))
	require.True(t, high.Equal(t1))
}

func TestIfElseRejectsKindMismatch(t *testing.T) {
	m := New()
	cond, err := m.Var("cond")
	require.NoError(t, err)
	_, err = m.IfElse(cond, m.One(), m.Value(1))
	require.ErrorIs(t, err, ErrKindMismatch)
}

func TestArithVariableDependent(t *testing.T) {
	m := New()
	x, err := m.DefVar("x", []int64{0, 1, 2})
	require.NoError(t, err)
	one := m.Value(1)
	sum, err := m.Add(x, one)
	require.NoError(t, err)
	require.Equal(t, KindInt, sum.Kind())

	c0, err := m.Child(sum, 0)
	require.NoError(t, err)
	require.True(t, c0.Equal(m.Value(1)))
	c2, err := m.Child(sum, 2)
	require.NoError(t, err)
	require.True(t, c2.Equal(m.Value(3)))
}
