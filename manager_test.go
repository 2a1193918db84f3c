// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVarCanonicity(t *testing.T) {
	m := New()
	a1, err := m.Var("a")
	require.NoError(t, err)
	a2, err := m.Var("a")
	require.NoError(t, err)
	require.True(t, a1.Equal(a2), "registering the same variable twice must return the same node")
}

func TestMakeHeaderArityConflict(t *testing.T) {
	m := New()
	_, err := m.MakeHeader("x", 2)
	require.NoError(t, err)
	_, err = m.MakeHeader("x", 3)
	require.ErrorIs(t, err, ErrArityMismatch)
}

func TestReductionCollapsesIdenticalChildren(t *testing.T) {
	m := New()
	h, err := m.MakeHeader("x", 2)
	require.NoError(t, err)
	id, err := m.makeNonTerminal(h, []int{idOne, idOne})
	require.NoError(t, err)
	require.Equal(t, idOne, id, "a node whose children all agree must collapse to that child")
}

func TestLevelViolation(t *testing.T) {
	m := New()
	lo, err := m.MakeHeader("lo", 2)
	require.NoError(t, err)
	hi, err := m.MakeHeader("hi", 2)
	require.NoError(t, err)

	// lo has a lower level than hi, so a lo-rooted node may take a
	// hi-rooted node as a child.
	hiNode, err := m.makeNonTerminal(hi, []int{idZero, idOne})
	require.NoError(t, err)
	_, err = m.makeNonTerminal(lo, []int{hiNode, idOne})
	require.NoError(t, err, "a hi-level child under a lo-level header is fine, ordering only constrains the other direction")

	// The reverse should fail: hi (lower in the tree) cannot take a lo-rooted
	// node (which sits above it) as a child.
	loNode, err := m.makeNonTerminal(lo, []int{idZero, idOne})
	require.NoError(t, err)
	_, err = m.makeNonTerminal(hi, []int{loNode, idOne})
	require.ErrorIs(t, err, ErrLevelViolation)
}

func TestValueIdempotent(t *testing.T) {
	m := New()
	v1 := m.Value(42)
	v2 := m.Value(42)
	require.True(t, v1.Equal(v2))
	v3 := m.Value(43)
	require.False(t, v1.Equal(v3))
}

func TestDefVarAtom(t *testing.T) {
	m := New()
	n, err := m.DefVar("d", []int64{10, 20, 30})
	require.NoError(t, err)
	require.Equal(t, KindInt, n.Kind())
	h := m.HeaderOf(n)
	require.NotNil(t, h)
	require.Equal(t, 3, h.Arity())
	require.Equal(t, []int64{10, 20, 30}, h.Values())
}
