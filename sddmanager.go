// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

// SddManager is the supplemented external apply algorithm for the SDD
// table, mirroring BddManager's role for the BDD table (spec §1's
// "external apply algorithm" collaborator). It forwards BDD-shaped
// operations at a single vtree leaf straight through to that leaf's nested
// BddManager via the stored label bijection; combining results across
// multiple leaves (general SDD Apply/Ite over the whole vtree) is left
// unimplemented, since SPEC_FULL.md's SDD scope is the storage layer
// (SddTable) rather than a full multi-level SDD apply algorithm — see
// DESIGN.md.
type SddManager struct {
	table *SddTable
}

// NewSddManager wraps an existing SddTable with leaf-local Boolean
// operations.
func NewSddManager(table *SddTable) *SddManager {
	return &SddManager{table: table}
}

// LiteralAt returns the SddPtr for the literal of an external variable
// label, compiled through the leaf position that owns it.
func (m *SddManager) LiteralAt(posIdx int, ext VarLabel, neg bool) (SddPtr, error) {
	bdd, err := m.table.BddMan(posIdx)
	if err != nil {
		return SddPtr{}, err
	}
	internal, err := m.table.SddToBddLabel(posIdx, ext)
	if err != nil {
		return SddPtr{}, err
	}
	p, err := bdd.Ithvar(internal)
	if err != nil {
		return SddPtr{}, err
	}
	if neg {
		p = p.Neg()
	}
	return SddPtr{posIdx: posIdx, bdd: p}, nil
}

// ApplyAt computes op on two SDD pointers known to live at the same leaf
// position, by delegating to that leaf's nested BddManager. It fails with
// ErrVTreeMismatch if either pointer names a different position or an
// internal (non-leaf) position.
func (m *SddManager) ApplyAt(posIdx int, op Operator, a, b SddPtr) (SddPtr, error) {
	if a.posIdx != posIdx || b.posIdx != posIdx {
		return SddPtr{}, wrapf(ErrVTreeMismatch, "operands do not share leaf position %d", posIdx)
	}
	isLeaf, err := m.table.IsBdd(posIdx)
	if err != nil {
		return SddPtr{}, err
	}
	if !isLeaf {
		return SddPtr{}, wrapf(ErrVTreeMismatch, "position %d is not a leaf", posIdx)
	}
	bdd, err := m.table.BddMan(posIdx)
	if err != nil {
		return SddPtr{}, err
	}
	r, err := bdd.Apply(op, a.bdd, b.bdd)
	if err != nil {
		return SddPtr{}, err
	}
	return SddPtr{posIdx: posIdx, bdd: r}, nil
}
