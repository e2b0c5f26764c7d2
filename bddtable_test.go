// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBddTableGetOrInsertIsCanonical(t *testing.T) {
	tbl := NewBddTable(3)

	p1, err := tbl.GetOrInsert(VarLabel(0), BddFalse, BddTrue, false)
	require.NoError(t, err)

	p2, err := tbl.GetOrInsert(VarLabel(0), BddFalse, BddTrue, false)
	require.NoError(t, err)

	require.Equal(t, p1, p2)
}

func TestBddTableDifferentVariablesDoNotCollide(t *testing.T) {
	tbl := NewBddTable(3)

	p1, err := tbl.GetOrInsert(VarLabel(0), BddFalse, BddTrue, false)
	require.NoError(t, err)
	p2, err := tbl.GetOrInsert(VarLabel(1), BddFalse, BddTrue, false)
	require.NoError(t, err)

	require.NotEqual(t, p1, p2)
}

func TestBddTableDerefRoundtrips(t *testing.T) {
	tbl := NewBddTable(2)

	p, err := tbl.GetOrInsert(VarLabel(0), BddFalse, BddTrue, false)
	require.NoError(t, err)

	low, high, err := tbl.Deref(p)
	require.NoError(t, err)
	require.Equal(t, BddFalse, low)
	require.Equal(t, BddTrue, high)
}

func TestBddTableNewLastExtendsOrder(t *testing.T) {
	tbl := NewBddTable(2)
	require.Equal(t, 2, tbl.Varnum())

	lbl := tbl.NewLast()
	require.Equal(t, VarLabel(2), lbl)
	require.Equal(t, 3, tbl.Varnum())

	p, err := tbl.GetOrInsert(lbl, BddFalse, BddTrue, false)
	require.NoError(t, err)
	v, _ := p.Var()
	require.Equal(t, lbl, v)
}

func TestBddTableNumNodesCountsAcrossSubtables(t *testing.T) {
	tbl := NewBddTable(2)
	tbl.GetOrInsert(VarLabel(0), BddFalse, BddTrue, false)
	tbl.GetOrInsert(VarLabel(1), BddFalse, BddTrue, false)
	require.Equal(t, 2, tbl.NumNodes())
}
