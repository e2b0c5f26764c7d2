// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

// SddPtr references a node stored in an SddTable: either a BDD-shaped node
// living inside a leaf position's nested BddManager, or an SDD node living
// in an internal position's or-list table. posIdx identifies the vtree
// position (by its index in the table's in-order traversal); idx identifies
// the node within that position's sub-table.
type SddPtr struct {
	posIdx int
	bdd    BddPtr // valid when the owning position is a leaf
	idx    int    // valid when the owning position is internal
	compl  bool
}

// primeSub is one element of an SDD or-list: a (prime, sub) pair, where
// prime and sub are themselves SddPtr values possibly rooted in different
// positions. Grounded on original_source/src/backing_store/sdd_table.rs's
// element representation.
type primeSub struct {
	prime, sub SddPtr
}

type orList []primeSub

func orListEqual(a, b orList) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func orListHash(l orList) uint64 {
	d := uint64(0xcbf29ce484222325)
	for _, ps := range l {
		d = hashPair(ps.prime.bdd, ps.sub.bdd) ^ (d * 1099511628211) ^ uint64(ps.prime.idx)<<1 ^ uint64(ps.sub.idx)
	}
	return d
}

// sddPosition is one sub-table of an SddTable, corresponding to one node of
// the driving VTree. A leaf position owns a nested BddManager together with
// a bijection between its internal variable labels and the external labels
// the vtree leaf was built from. An internal position owns a Robin-Hood
// table of or-lists.
type sddPosition struct {
	vtree *VTree

	// leaf fields
	bdd       *BddManager
	extToSdd  map[VarLabel]VarLabel
	sddToExt  map[VarLabel]VarLabel

	// internal fields
	table *robinHoodTable[orList]
}

func (p *sddPosition) isLeaf() bool {
	return p.vtree.IsLeaf()
}

// SddTable is the unique table for SDD nodes, built over a VTree: leaves
// hold nested BDD managers, internal positions hold Robin-Hood or-list
// tables, assigned by an in-order walk of the vtree (spec SPEC_FULL.md
// §4.5, grounded on original_source/src/backing_store/sdd_table.rs).
type SddTable struct {
	root      *VTree
	positions []*sddPosition
	posIndex  map[*VTree]int
	cfg       *configs
}

// DefaultSddSubtableSz is the default initial or-list table size for an
// internal vtree position.
const DefaultSddSubtableSz int = 32768

// NewSddTable builds an SddTable over root, allocating one sub-table per
// vtree position in in-order.
func NewSddTable(root *VTree, opts ...func(*configs)) *SddTable {
	cfg := makeconfigs(0)
	for _, opt := range opts {
		opt(cfg)
	}
	t := &SddTable{root: root, posIndex: make(map[*VTree]int)}
	t.cfg = cfg
	for i, v := range root.InOrder() {
		t.posIndex[v] = i
		if v.IsLeaf() {
			bdd := NewBddManager(len(v.Vars), opts...)
			extToSdd := make(map[VarLabel]VarLabel, len(v.Vars))
			sddToExt := make(map[VarLabel]VarLabel, len(v.Vars))
			for j, ext := range v.Vars {
				internal := VarLabel(j)
				extToSdd[ext] = internal
				sddToExt[internal] = ext
			}
			t.positions = append(t.positions, &sddPosition{vtree: v, bdd: bdd, extToSdd: extToSdd, sddToExt: sddToExt})
		} else {
			sz := DefaultSddSubtableSz
			if cfg.subtableSz != DefaultSubtableSz {
				sz = cfg.subtableSz
			}
			tbl := newRobinHoodTable[orList](sz, cfg.loadFactor, cfg.growthFactor, orListHash, orListEqual)
			t.positions = append(t.positions, &sddPosition{vtree: v, table: tbl})
		}
	}
	return t
}

func (t *SddTable) positionAt(idx int) (*sddPosition, error) {
	if idx < 0 || idx >= len(t.positions) {
		return nil, wrapf(ErrVTreeMismatch, "position index %d out of range", idx)
	}
	return t.positions[idx], nil
}

// IsBdd reports whether the position at posIdx is a leaf (BDD-backed).
func (t *SddTable) IsBdd(posIdx int) (bool, error) {
	p, err := t.positionAt(posIdx)
	if err != nil {
		return false, err
	}
	return p.isLeaf(), nil
}

// IsSdd reports whether the position at posIdx is internal (or-list
// backed).
func (t *SddTable) IsSdd(posIdx int) (bool, error) {
	ok, err := t.IsBdd(posIdx)
	return !ok, err
}

// BddMan returns the nested BDD manager at a leaf position. It fails with
// ErrVTreeMismatch if posIdx names an internal position.
func (t *SddTable) BddMan(posIdx int) (*BddManager, error) {
	p, err := t.positionAt(posIdx)
	if err != nil {
		return nil, err
	}
	if !p.isLeaf() {
		return nil, wrapf(ErrVTreeMismatch, "position %d is not a leaf", posIdx)
	}
	return p.bdd, nil
}

// GetOrInsertSdd interns an or-list at an internal position, returning the
// canonical SddPtr for it. It fails with ErrVTreeMismatch if posIdx names a
// leaf position.
func (t *SddTable) GetOrInsertSdd(posIdx int, elements []primeSub) (SddPtr, error) {
	p, err := t.positionAt(posIdx)
	if err != nil {
		return SddPtr{}, err
	}
	if p.isLeaf() {
		return SddPtr{}, wrapf(ErrVTreeMismatch, "position %d is a leaf, not an internal sdd position", posIdx)
	}
	idx, _ := p.table.GetOrInsert(orList(elements))
	return SddPtr{posIdx: posIdx, idx: idx}, nil
}

// SddGetOr resolves an SddPtr rooted at an internal position back to its
// or-list elements.
func (t *SddTable) SddGetOr(ptr SddPtr) ([]primeSub, error) {
	p, err := t.positionAt(ptr.posIdx)
	if err != nil {
		return nil, err
	}
	if p.isLeaf() {
		return nil, wrapf(ErrVTreeMismatch, "position %d is a leaf, not an internal sdd position", ptr.posIdx)
	}
	return p.table.Deref(ptr.idx), nil
}

// SddToBddLabel translates an external variable label into the internal
// label used by the nested BDD manager at a leaf position.
func (t *SddTable) SddToBddLabel(posIdx int, ext VarLabel) (VarLabel, error) {
	p, err := t.positionAt(posIdx)
	if err != nil {
		return 0, err
	}
	if !p.isLeaf() {
		return 0, wrapf(ErrVTreeMismatch, "position %d is not a leaf", posIdx)
	}
	internal, ok := p.extToSdd[ext]
	if !ok {
		return 0, wrapf(ErrUnknownVariable, "label %d not owned by this leaf", ext)
	}
	return internal, nil
}

// NumPositions returns the number of vtree positions (= sub-tables) the
// table was built with.
func (t *SddTable) NumPositions() int {
	return len(t.positions)
}
