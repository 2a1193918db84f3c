// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRPNArithmeticAndComparison(t *testing.T) {
	m := New()
	env := NewRPNEnv(m)

	n, err := env.Eval("3 4 +")
	require.NoError(t, err)
	require.True(t, n.Equal(m.Value(7)))

	n, err = env.Eval("3 4 <")
	require.NoError(t, err)
	require.True(t, n.Equal(m.One()))
}

func TestRPNBooleanAndNot(t *testing.T) {
	m := New()
	env := NewRPNEnv(m)
	a, err := m.Var("a")
	require.NoError(t, err)
	env.Bind("a", a)

	n, err := env.Eval("a !")
	require.NoError(t, err)
	expected, err := m.Not(a)
	require.NoError(t, err)
	require.True(t, n.Equal(expected))

	b, err := m.Var("b")
	require.NoError(t, err)
	env.Bind("b", b)
	n, err = env.Eval("a b &&")
	require.NoError(t, err)
	expected, err = m.And(a, b)
	require.NoError(t, err)
	require.True(t, n.Equal(expected))
}

func TestRPNTernaryBridgesKinds(t *testing.T) {
	m := New()
	env := NewRPNEnv(m)
	cond, err := m.Var("cond")
	require.NoError(t, err)
	env.Bind("cond", cond)

	n, err := env.Eval("cond 10 20 ?")
	require.NoError(t, err)
	require.Equal(t, KindInt, n.Kind())

	expected, err := m.IfElse(cond, m.Value(10), m.Value(20))
	require.NoError(t, err)
	require.True(t, n.Equal(expected))
}

func TestRPNUnknownVariableIsError(t *testing.T) {
	m := New()
	env := NewRPNEnv(m)
	_, err := env.Eval("x 1 +")
	require.ErrorIs(t, err, ErrUnknownVariable)
}

func TestRPNDeclareRangeAutoRegisters(t *testing.T) {
	m := New()
	env := NewRPNEnv(m)
	env.DeclareRange("x", []int64{0, 1, 2})

	n, err := env.Eval("x 1 +")
	require.NoError(t, err)
	require.Equal(t, KindInt, n.Kind())
	require.NotNil(t, m.HeaderByLabel("x"))

	c0, err := m.Child(n, 0)
	require.NoError(t, err)
	require.True(t, c0.Equal(m.Value(1)))
}

func TestRPNStackUnderflowIsError(t *testing.T) {
	m := New()
	env := NewRPNEnv(m)
	_, err := env.Eval("+")
	require.Error(t, err)
}

func TestRPNTrueFalseLiterals(t *testing.T) {
	m := New()
	env := NewRPNEnv(m)

	n, err := env.Eval("true")
	require.NoError(t, err)
	require.True(t, n.Equal(m.One()))

	n, err = env.Eval("false")
	require.NoError(t, err)
	require.True(t, n.Equal(m.Zero()))

	a, err := m.Var("a")
	require.NoError(t, err)
	env.Bind("a", a)
	n, err = env.Eval("a true &&")
	require.NoError(t, err)
	require.True(t, n.Equal(a), "a && true must reduce to a")
}
