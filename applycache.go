// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

// applyKey is the memoization key for a binary Apply call: an operator plus
// its two (already-recursed-into) operands. Operands are stored in a fixed
// order — Apply is responsible for presenting them in a canonical order
// when the operator is commutative, so that equivalent calls hit the same
// cache slot (spec §4.4).
type applyKey struct {
	op          Operator
	left, right BddPtr
}

func applyKeyBytes(k applyKey) []byte {
	b := make([]byte, 0, 17)
	b = append(b, byte(k.op))
	lb := k.left.bytes()
	rb := k.right.bytes()
	b = append(b, lb[:]...)
	b = append(b, rb[:]...)
	return b
}

// applyCache is the lossy memoization table for Apply, keyed on (op, left,
// right) and valued on the resulting handle.
type applyCache struct {
	table *lru[applyKey, BddPtr]
}

func newApplyCache(capExp int) *applyCache {
	return &applyCache{table: newLru[applyKey, BddPtr](capExp, applyKeyBytes)}
}

func (c *applyCache) get(op Operator, left, right BddPtr) (BddPtr, bool) {
	return c.table.Get(applyKey{op: op, left: left, right: right})
}

func (c *applyCache) insert(op Operator, left, right, result BddPtr) {
	c.table.Insert(applyKey{op: op, left: left, right: right}, result)
}

func (c *applyCache) stats() applyCacheStats {
	return c.table.Stats()
}
