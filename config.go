// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

// DefaultSubtableSz is the default initial size of a per-variable Robin-Hood
// unique table, as named in spec §6.
const DefaultSubtableSz int = 16384

// DefaultApplyCacheCap is the default initial capacity (as a power of two
// exponent) of an apply cache, chosen so that 1<<DefaultApplyCacheCap is
// close to the INITIAL_CAPACITY named in spec §6 (2^20).
const DefaultApplyCacheCap int = 20

// defaultLoadFactor is the Robin-Hood table load factor target; spec §4.3
// gives a range of 0.7-0.8.
const defaultLoadFactor float64 = 0.8

// defaultGrowthFactor is the multiplier applied to a Robin-Hood table's
// capacity on growth; spec §4.3 requires >= 2 and notes the reference
// implementation uses 8.
const defaultGrowthFactor int = 8

// configs stores the configurable parameters of a BDD or SDD manager. It is
// populated by makeconfigs and mutated by the functional options below,
// following the same configuration idiom used throughout this package:
// constructors take variadic `func(*configs)` options rather than a config
// struct literal, so new knobs can be added without breaking callers.
type configs struct {
	varnum         int
	subtableSz     int
	loadFactor     float64
	growthFactor   int
	applyCacheCap  int
	iteStandardize bool
}

func makeconfigs(varnum int) *configs {
	return &configs{
		varnum:        varnum,
		subtableSz:    DefaultSubtableSz,
		loadFactor:    defaultLoadFactor,
		growthFactor:  defaultGrowthFactor,
		applyCacheCap: DefaultApplyCacheCap,
	}
}

// Subtablesize is a configuration option. It sets the initial size of each
// per-variable unique table. The default is DefaultSubtableSz.
func Subtablesize(size int) func(*configs) {
	return func(c *configs) {
		if size > 0 {
			c.subtableSz = size
		}
	}
}

// Loadfactor is a configuration option. It sets the target load factor for
// Robin-Hood unique tables, used to size the probe array and decide when to
// grow it. The default is 0.8; spec §4.3 recommends 0.7-0.8.
func Loadfactor(factor float64) func(*configs) {
	return func(c *configs) {
		if factor > 0 && factor < 1 {
			c.loadFactor = factor
		}
	}
}

// Growthfactor is a configuration option. It sets the multiplier applied to
// a Robin-Hood table's capacity whenever it must grow. The default is 8, the
// value used by the reference implementation (spec §4.3).
func Growthfactor(factor int) func(*configs) {
	return func(c *configs) {
		if factor >= 2 {
			c.growthFactor = factor
		}
	}
}

// Applycachecap is a configuration option. It sets the capacity, as a power
// of two exponent, of every apply/ite cache created for a manager. The
// default is DefaultApplyCacheCap.
func Applycachecap(exp int) func(*configs) {
	return func(c *configs) {
		if exp > 0 {
			c.applyCacheCap = exp
		}
	}
}

// WithIteStandardization is a configuration option. It enables the full Ite
// key-canonicalisation algorithm from spec §4.4 (constant introduction plus
// complement normalisation) instead of the identity transform. See the
// discussion in SPEC_FULL.md §4.4: the identity transform is what the
// original implementation actually ships, so it remains the default.
func WithIteStandardization() func(*configs) {
	return func(c *configs) {
		c.iteStandardize = true
	}
}
