// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

import "go.uber.org/zap"

// lru is a lossy, fixed-capacity, direct-mapped cache: capacity is always a
// power of two, there is no chaining and no growth, and a collision simply
// overwrites whatever was in the slot (spec §4.4). It trades correctness of
// "is this cached" for O(1) worst-case lookup/insert and a fixed memory
// footprint — callers must always be prepared for a miss, even for a key
// they inserted moments ago.
type lru[K comparable, V any] struct {
	slots    []lruSlot[K, V]
	mask     uint64
	toBytes  func(K) []byte

	lookupCount   int
	missCount     int
	conflictCount int
}

type lruSlot[K comparable, V any] struct {
	occupied bool
	key      K
	val      V
}

// newLru creates a cache with capacity 2^capExp.
func newLru[K comparable, V any](capExp int, toBytes func(K) []byte) *lru[K, V] {
	cap := 1 << uint(capExp)
	return &lru[K, V]{
		slots:   make([]lruSlot[K, V], cap),
		mask:    uint64(cap - 1),
		toBytes: toBytes,
	}
}

func (c *lru[K, V]) slotFor(key K) int {
	h := applyCacheHash(c.toBytes(key))
	return int(h & c.mask)
}

// Get looks up key. A miss is indistinguishable from "never inserted" and
// from "evicted by a colliding key" — that distinction is exactly what
// makes the cache lossy.
func (c *lru[K, V]) Get(key K) (V, bool) {
	c.lookupCount++
	i := c.slotFor(key)
	s := c.slots[i]
	var zero V
	if !s.occupied || !keysEqual(s.key, key) {
		c.missCount++
		return zero, false
	}
	return s.val, true
}

// Insert unconditionally stores key/val in its slot, overwriting whatever
// was previously there.
func (c *lru[K, V]) Insert(key K, val V) {
	i := c.slotFor(key)
	if c.slots[i].occupied && !keysEqual(c.slots[i].key, key) {
		c.conflictCount++
		logger.Debug("cache slot reclaimed", zap.Int("slot", i), zap.Int("conflicts", c.conflictCount))
	}
	c.slots[i] = lruSlot[K, V]{occupied: true, key: key, val: val}
}

func keysEqual[K comparable](a, b K) bool {
	return a == b
}

// Utilization returns the fraction of slots currently occupied.
func (c *lru[K, V]) Utilization() float64 {
	occ := 0
	for _, s := range c.slots {
		if s.occupied {
			occ++
		}
	}
	return float64(occ) / float64(len(c.slots))
}

// applyCacheStats mirrors original_source/src/manager/cache/lru.rs's
// ApplyCacheStats.
type applyCacheStats struct {
	LookupCount   int
	MissCount     int
	ConflictCount int
	Utilization   float64
}

func (c *lru[K, V]) Stats() applyCacheStats {
	return applyCacheStats{
		LookupCount:   c.lookupCount,
		MissCount:     c.missCount,
		ConflictCount: c.conflictCount,
		Utilization:   c.Utilization(),
	}
}
