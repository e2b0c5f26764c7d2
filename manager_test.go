// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyAndOrConstants(t *testing.T) {
	m := NewBddManager(2)
	v0, _ := m.Ithvar(0)

	r, err := m.Apply(OpAnd, v0, BddTrue)
	require.NoError(t, err)
	require.Equal(t, v0, r)

	r, err = m.Apply(OpAnd, v0, BddFalse)
	require.NoError(t, err)
	require.Equal(t, BddFalse, r)

	r, err = m.Apply(OpOr, v0, BddTrue)
	require.NoError(t, err)
	require.Equal(t, BddTrue, r)
}

func TestApplySharesNodesAcrossEquivalentFormulas(t *testing.T) {
	m := NewBddManager(2)
	v0, _ := m.Ithvar(0)
	v1, _ := m.Ithvar(1)

	a, err := m.Apply(OpAnd, v0, v1)
	require.NoError(t, err)
	b, err := m.Apply(OpAnd, v0, v1)
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestNotIsInvolution(t *testing.T) {
	m := NewBddManager(1)
	v0, _ := m.Ithvar(0)
	require.Equal(t, v0, m.Not(m.Not(v0)))
	require.NotEqual(t, v0, m.Not(v0))
}

func TestIteMatchesAndOrDecomposition(t *testing.T) {
	m := NewBddManager(3)
	f, _ := m.Ithvar(0)
	g, _ := m.Ithvar(1)
	h, _ := m.Ithvar(2)

	ite, err := m.Ite(f, g, h)
	require.NoError(t, err)

	fg, _ := m.Apply(OpAnd, f, g)
	notF, _ := m.Apply(OpAnd, m.Not(f), h)
	expected, err := m.Apply(OpOr, fg, notF)
	require.NoError(t, err)

	require.Equal(t, expected, ite)
}

func TestExistEliminatesVariable(t *testing.T) {
	m := NewBddManager(2)
	v0, _ := m.Ithvar(0)
	v1, _ := m.Ithvar(1)

	f, err := m.Apply(OpAnd, v0, v1)
	require.NoError(t, err)

	r, err := m.Exist(f, []VarLabel{0})
	require.NoError(t, err)
	require.Equal(t, v1, r)
}

func TestReplaceRenamesVariables(t *testing.T) {
	m := NewBddManager(2)
	v0, _ := m.Ithvar(0)
	v1, _ := m.Ithvar(1)

	r, err := m.Replace(v0, map[VarLabel]VarLabel{0: 1})
	require.NoError(t, err)
	require.Equal(t, v1, r)
}

func TestSatcountCountsOverFullVarset(t *testing.T) {
	m := NewBddManager(2)
	v0, _ := m.Ithvar(0)

	// v0 alone, ignoring v1, is satisfied by exactly half of all
	// assignments over 2 variables: 2.
	count, err := m.Satcount(v0)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(2), count)

	full, err := m.Satcount(BddTrue)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(4), full)

	none, err := m.Satcount(BddFalse)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(0), none)
}

func TestAllsatEnumeratesEveryPath(t *testing.T) {
	m := NewBddManager(2)
	v0, _ := m.Ithvar(0)
	v1, _ := m.Ithvar(1)

	f, err := m.Apply(OpAnd, v0, v1)
	require.NoError(t, err)

	paths, err := m.Allsat(f)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Equal(t, Assignment{0: true, 1: true}, paths[0])
}

func TestAllnodesOmitsConstants(t *testing.T) {
	m := NewBddManager(2)
	v0, _ := m.Ithvar(0)
	v1, _ := m.Ithvar(1)
	f, err := m.Apply(OpAnd, v0, v1)
	require.NoError(t, err)

	nodes, err := m.Allnodes(f)
	require.NoError(t, err)
	require.NotEmpty(t, nodes)
	for _, n := range nodes {
		require.True(t, n.IsNode())
	}
}

// nqueensSolutionCount builds the board-placement BDD for the N-Queens
// problem (adapted from the teacher's nqueens_test.go) and returns the
// number of solutions via Satcount restricted to the placement variables.
func nqueensSolutionCount(t testing.TB, n int) *big.Int {
	m := NewBddManager(n * n)
	x := make([][]BddPtr, n)
	for i := range x {
		x[i] = make([]BddPtr, n)
		for j := range x[i] {
			v, err := m.Ithvar(VarLabel(i*n + j))
			require.NoError(t, err)
			x[i][j] = v
		}
	}

	queen := BddTrue
	var err error
	for i := 0; i < n; i++ {
		row := BddFalse
		for j := 0; j < n; j++ {
			row, err = m.Apply(OpOr, row, x[i][j])
			require.NoError(t, err)
		}
		queen, err = m.Apply(OpAnd, queen, row)
		require.NoError(t, err)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				if k == j {
					continue
				}
				imp, err := m.Ite(x[i][j], m.Not(x[i][k]), BddTrue)
				require.NoError(t, err)
				queen, err = m.Apply(OpAnd, queen, imp)
				require.NoError(t, err)
			}
			for k := 0; k < n; k++ {
				if k == i {
					continue
				}
				imp, err := m.Ite(x[i][j], m.Not(x[k][j]), BddTrue)
				require.NoError(t, err)
				queen, err = m.Apply(OpAnd, queen, imp)
				require.NoError(t, err)
			}
			for k := 0; k < n; k++ {
				if k == i {
					continue
				}
				l := k - i + j
				if l < 0 || l >= n {
					continue
				}
				imp, err := m.Ite(x[i][j], m.Not(x[k][l]), BddTrue)
				require.NoError(t, err)
				queen, err = m.Apply(OpAnd, queen, imp)
				require.NoError(t, err)
			}
			for k := 0; k < n; k++ {
				if k == i {
					continue
				}
				l := i + j - k
				if l < 0 || l >= n {
					continue
				}
				imp, err := m.Ite(x[i][j], m.Not(x[k][l]), BddTrue)
				require.NoError(t, err)
				queen, err = m.Apply(OpAnd, queen, imp)
				require.NoError(t, err)
			}
		}
	}

	count, err := m.Satcount(queen)
	require.NoError(t, err)
	return count
}

func TestNQueensFourHasTwoSolutions(t *testing.T) {
	count := nqueensSolutionCount(t, 4)
	require.Equal(t, big.NewInt(2), count)
}
