// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeconfigsDefaults(t *testing.T) {
	cfg := makeconfigs(8)
	require.Equal(t, 8, cfg.varnum)
	require.Equal(t, DefaultSubtableSz, cfg.subtableSz)
	require.Equal(t, defaultLoadFactor, cfg.loadFactor)
	require.Equal(t, defaultGrowthFactor, cfg.growthFactor)
	require.False(t, cfg.iteStandardize)
}

func TestFunctionalOptionsOverrideDefaults(t *testing.T) {
	cfg := makeconfigs(4)
	Subtablesize(1024)(cfg)
	Loadfactor(0.5)(cfg)
	Growthfactor(4)(cfg)
	Applycachecap(10)(cfg)
	WithIteStandardization()(cfg)

	require.Equal(t, 1024, cfg.subtableSz)
	require.Equal(t, 0.5, cfg.loadFactor)
	require.Equal(t, 4, cfg.growthFactor)
	require.Equal(t, 10, cfg.applyCacheCap)
	require.True(t, cfg.iteStandardize)
}

func TestFunctionalOptionsRejectInvalidValues(t *testing.T) {
	cfg := makeconfigs(4)
	Loadfactor(1.5)(cfg)
	require.Equal(t, defaultLoadFactor, cfg.loadFactor)

	Growthfactor(1)(cfg)
	require.Equal(t, defaultGrowthFactor, cfg.growthFactor)
}
