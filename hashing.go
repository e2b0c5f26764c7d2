// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

import (
	"github.com/cespare/xxhash/v2"
	"github.com/segmentio/fasthash/fnv1a"
)

// uniqueTableSeed seeds the XxHash digest used by the Robin-Hood unique
// table, matching original_source/src/robin_hood.rs's
// `XxHash::with_seed(0xdeadbeef)`.
const uniqueTableSeed uint64 = 0xdeadbeef

// hashPair is the hash function for a (low, high) child pair, as specified
// in spec §4.3: "a seeded XxHash over the concatenation of the two child
// handles' bytes."
func hashPair(low, high BddPtr) uint64 {
	d := xxhash.NewWithSeed(uniqueTableSeed)
	lb := low.bytes()
	hb := high.bytes()
	d.Write(lb[:])
	d.Write(hb[:])
	return d.Sum64()
}

// applyCacheHash is the FNV-1a hash function used by the lossy LRU apply
// cache (spec §4.4), applied to an arbitrary byte encoding of a cache key.
func applyCacheHash(keyBytes []byte) uint64 {
	return fnv1a.HashBytes64(keyBytes)
}
