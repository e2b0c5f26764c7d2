// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplacerAppliesPlan(t *testing.T) {
	m := NewBddManager(3)
	v0, _ := m.Ithvar(0)
	v2, _ := m.Ithvar(2)

	r := NewReplacer(m, map[VarLabel]VarLabel{0: 2})
	got, err := r.Replace(v0)
	require.NoError(t, err)
	require.Equal(t, v2, got)
}
