// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func twoLeafVTree() *VTree {
	left := NewVTreeLeaf(0, 1)
	right := NewVTreeLeaf(2, 3)
	return NewVTreeNode(left, right)
}

func TestSddTablePositionKinds(t *testing.T) {
	tbl := NewSddTable(twoLeafVTree())
	require.Equal(t, 3, tbl.NumPositions())

	isBdd0, err := tbl.IsBdd(0)
	require.NoError(t, err)
	require.True(t, isBdd0)

	isBdd1, err := tbl.IsBdd(1)
	require.NoError(t, err)
	require.False(t, isBdd1)

	isSdd1, err := tbl.IsSdd(1)
	require.NoError(t, err)
	require.True(t, isSdd1)
}

func TestSddTableRejectsWrongKindAccess(t *testing.T) {
	tbl := NewSddTable(twoLeafVTree())

	_, err := tbl.BddMan(1)
	require.ErrorIs(t, err, ErrVTreeMismatch)

	_, err = tbl.GetOrInsertSdd(0, nil)
	require.ErrorIs(t, err, ErrVTreeMismatch)
}

func TestSddTableGetOrInsertSddIsCanonical(t *testing.T) {
	tbl := NewSddTable(twoLeafVTree())

	elems := []primeSub{{prime: SddPtr{posIdx: 0, bdd: BddTrue}, sub: SddPtr{posIdx: 2, bdd: BddTrue}}}
	p1, err := tbl.GetOrInsertSdd(1, elems)
	require.NoError(t, err)

	p2, err := tbl.GetOrInsertSdd(1, elems)
	require.NoError(t, err)

	require.Equal(t, p1, p2)

	got, err := tbl.SddGetOr(p1)
	require.NoError(t, err)
	require.Equal(t, orList(elems), orList(got))
}

func TestSddToBddLabelTranslatesExternalLabel(t *testing.T) {
	tbl := NewSddTable(twoLeafVTree())
	internal, err := tbl.SddToBddLabel(0, VarLabel(1))
	require.NoError(t, err)
	require.Equal(t, VarLabel(1), internal)

	_, err = tbl.SddToBddLabel(0, VarLabel(2))
	require.Error(t, err)
}
