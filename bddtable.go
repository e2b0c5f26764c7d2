// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

import "go.uber.org/zap"

// toplessNode is a BDD node with its variable stripped off: the variable is
// implied by which per-variable sub-table the node lives in, so only the
// two children need to be stored and hashed (spec §4.3).
type toplessNode struct {
	low, high BddPtr
}

func toplessEqual(a, b toplessNode) bool {
	return a.low == b.low && a.high == b.high
}

func toplessHash(n toplessNode) uint64 {
	return hashPair(n.low, n.high)
}

// BddTable is the unique table for BDD nodes: one Robin-Hood sub-table per
// variable label, so that GetOrInsert never has to compare across
// variables. Canonicity follows directly from each sub-table's Robin-Hood
// guarantee (spec §4.3, §8 S2).
type BddTable struct {
	order      VarOrder
	subtables  []*robinHoodTable[toplessNode]
	cfg        *configs
}

// NewBddTable creates an empty BDD unique table over a freshly allocated
// linear variable order of size varnum.
func NewBddTable(varnum int, opts ...func(*configs)) *BddTable {
	cfg := makeconfigs(varnum)
	for _, opt := range opts {
		opt(cfg)
	}
	order := LinearOrder(varnum)
	t := &BddTable{order: order, cfg: cfg}
	t.subtables = make([]*robinHoodTable[toplessNode], varnum)
	for i := range t.subtables {
		t.subtables[i] = t.newSubtable()
	}
	return t
}

func (t *BddTable) newSubtable() *robinHoodTable[toplessNode] {
	return newRobinHoodTable[toplessNode](t.cfg.subtableSz, t.cfg.loadFactor, t.cfg.growthFactor, toplessHash, toplessEqual)
}

// NewLast allocates a fresh variable at the end of the current order, with
// its own empty sub-table, and returns its label.
func (t *BddTable) NewLast() VarLabel {
	lbl := t.order.NewLast()
	t.subtables = append(t.subtables, t.newSubtable())
	logger.Info("set varnum", zap.Int("varnum", t.order.Len()))
	return lbl
}

// Varnum returns the number of variables currently known to the table.
func (t *BddTable) Varnum() int {
	return t.order.Len()
}

func (t *BddTable) subtableFor(level VarLabel) (*robinHoodTable[toplessNode], error) {
	pos, err := t.order.Position(level)
	if err != nil {
		return nil, err
	}
	return t.subtables[pos], nil
}

// GetOrInsert interns a (low, high) node pair under variable level,
// returning the canonical handle for it. Invariant I2 (spec §8 S2) requires
// low != high for a well-formed node; GetOrInsert does not itself enforce
// this reduction rule — that belongs to the external apply algorithm
// (spec §1) — it only guarantees that equal pairs map to equal handles.
func (t *BddTable) GetOrInsert(level VarLabel, low, high BddPtr, compl bool) (BddPtr, error) {
	sub, err := t.subtableFor(level)
	if err != nil {
		return 0, err
	}
	idx, _ := sub.GetOrInsert(toplessNode{low: low, high: high})
	return NewNodePtr(level, idx, compl)
}

// Deref resolves a node-reference handle back to its (low, high) children.
// It fails with ErrUnknownVariable if p's variable is not in the order, or
// with an index out-of-range panic if p's index was never issued by this
// table (a programming error, since issued indexes are stable for the
// table's lifetime).
func (t *BddTable) Deref(p BddPtr) (low, high BddPtr, err error) {
	level, ok := p.Var()
	if !ok {
		return 0, 0, wrapf(ErrUnknownVariable, "deref of constant handle %v", p)
	}
	sub, err := t.subtableFor(level)
	if err != nil {
		return 0, 0, err
	}
	idx, _ := p.Index()
	n := sub.Deref(idx)
	if p.IsComplemented() {
		return n.low.Neg(), n.high.Neg(), nil
	}
	return n.low, n.high, nil
}

// NumNodes returns the total number of distinct nodes interned across every
// variable's sub-table.
func (t *BddTable) NumNodes() int {
	total := 0
	for _, sub := range t.subtables {
		total += sub.NumElements()
	}
	return total
}

// Stats returns the Robin-Hood statistics of every sub-table, one entry per
// variable in order position, mirroring original_source/src/backing_store/bdd_table_robinhood.rs's
// get_stats.
func (t *BddTable) Stats() []tableStats {
	out := make([]tableStats, len(t.subtables))
	for i, sub := range t.subtables {
		out[i] = sub.Stats()
	}
	return out
}
