// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFaultTreeBasicOccurrencesAreIndependent(t *testing.T) {
	m := New()
	ft := NewFaultTree(m)
	top := ft.Or(ft.Basic("pump"), ft.Basic("pump"))
	n, err := ft.Compile(top)
	require.NoError(t, err)

	require.NotNil(t, m.HeaderByLabel("pump_0"))
	require.NotNil(t, m.HeaderByLabel("pump_1"))
	require.Nil(t, m.HeaderByLabel("pump"))

	// Two independent occurrences in an Or gate is a tautology-free
	// combination: it must not reduce to a single variable, so the branch
	// where pump_0 does not fail still tests pump_1.
	low, err := m.Child(n, 0)
	require.NoError(t, err)
	require.NotNil(t, m.HeaderOf(low))
	require.Equal(t, "pump_1", m.HeaderOf(low).Label())
}

func TestFaultTreeRepeatSharesVariable(t *testing.T) {
	m := New()
	ft := NewFaultTree(m)
	top := ft.And(ft.Repeat("valve"), ft.Repeat("valve"))
	n, err := ft.Compile(top)
	require.NoError(t, err)

	valve, err := m.Var("valve")
	require.NoError(t, err)
	require.True(t, n.Equal(valve), "and(x,x) must reduce to x, confirming both Repeat occurrences share one variable")
}

func TestFaultTreeKofNEdgeCases(t *testing.T) {
	m := New()
	ft := NewFaultTree(m)

	orTree := ft.KofN(1, ft.Basic("a"), ft.Basic("b"))
	orNode, err := ft.Compile(orTree)
	require.NoError(t, err)

	m2 := New()
	ft2 := NewFaultTree(m2)
	a2, err := ft2.Compile(ft2.Basic("a"))
	require.NoError(t, err)
	b2, err := ft2.Compile(ft2.Basic("b"))
	require.NoError(t, err)
	orExpected, err := m2.Or(a2, b2)
	require.NoError(t, err)
	require.Equal(t, orExpected.Kind(), orNode.Kind())

	andTree := ft.KofN(2, ft.Basic("c"), ft.Basic("d"))
	andNode, err := ft.Compile(andTree)
	require.NoError(t, err)
	require.NotEqual(t, -1, andNode.ID())
}

func TestFaultTreeCompileIsMemoised(t *testing.T) {
	m := New()
	ft := NewFaultTree(m)
	shared := ft.Basic("x")
	top := ft.And(shared, shared)

	n1, err := ft.Compile(shared)
	require.NoError(t, err)
	n2, err := ft.Compile(top)
	require.NoError(t, err)
	// Since shared only ever gets compiled once, "x and x" must reduce to x
	// itself, not to a fresh independent occurrence.
	require.True(t, n1.Equal(n2))
}
