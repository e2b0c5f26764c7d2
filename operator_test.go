// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApply2TruthTables(t *testing.T) {
	require.True(t, apply2(OpAnd, true, true))
	require.False(t, apply2(OpAnd, true, false))
	require.True(t, apply2(OpOr, false, true))
	require.False(t, apply2(OpOr, false, false))
	require.True(t, apply2(OpXor, true, false))
	require.False(t, apply2(OpXor, true, true))
	require.False(t, apply2(OpImp, true, false))
	require.True(t, apply2(OpImp, false, false))
	require.True(t, apply2(OpBiimp, true, true))
	require.False(t, apply2(OpBiimp, true, false))
}

func TestOperatorString(t *testing.T) {
	require.Equal(t, "and", OpAnd.String())
	require.Equal(t, "unknown", Operator(99).String())
}
