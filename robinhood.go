// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

import "go.uber.org/zap"

// probeElem is the packed 32-bit probe-array cell described in spec §3 and
// §4.3: an occupied flag, the element's current probe offset, a 4-bit
// prefix of its hash (for cheap mismatch rejection), and the index of its
// data in the owning table's element buffer.
type probeElem uint32

const (
	peOccBits  = 1
	peOffBits  = 5
	peHashBits = 4
	peIdxBits  = 22

	peOccShift  = 0
	peOffShift  = peOccShift + peOccBits
	peHashShift = peOffShift + peOffBits
	peIdxShift  = peHashShift + peHashBits

	peOccMask  = (uint32(1) << peOccBits) - 1
	peOffMask  = (uint32(1) << peOffBits) - 1
	peHashMask = (uint32(1) << peHashBits) - 1
	peIdxMask  = (uint32(1) << peIdxBits) - 1

	// peMaxOffset is the largest probe offset a cell can record; beyond
	// this the offset field saturates rather than overflowing into the
	// adjacent field.
	peMaxOffset = peOffMask
)

func newProbeElem(idx int, hash uint64) probeElem {
	var w uint32
	w |= 1 << peOccShift
	w |= (hashPrefix4(hash) & peHashMask) << peHashShift
	w |= (uint32(idx) & peIdxMask) << peIdxShift
	return probeElem(w)
}

func (e probeElem) occupied() bool   { return (uint32(e)>>peOccShift)&peOccMask == 1 }
func (e probeElem) offset() uint32   { return (uint32(e) >> peOffShift) & peOffMask }
func (e probeElem) hashPrefix() uint32 { return (uint32(e) >> peHashShift) & peHashMask }
func (e probeElem) idx() int         { return int((uint32(e) >> peIdxShift) & peIdxMask) }

func (e probeElem) withIncrementedOffset() probeElem {
	off := e.offset()
	if off < peMaxOffset {
		off++
	}
	w := uint32(e) &^ (peOffMask << peOffShift)
	w |= (off & peOffMask) << peOffShift
	return probeElem(w)
}

// hashPrefix4 returns the top 4 bits of a 64-bit digest, the fast-rejection
// prefix stored in a probe element (spec §4.3, §9).
func hashPrefix4(h uint64) uint32 {
	return uint32(h>>60) & 0xF
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// tableStats reports on-demand diagnostics for a Robin-Hood table, per
// spec §4.3's "Statistics" paragraph.
type tableStats struct {
	HitCount    int
	LookupCount int
	AvgOffset   float64
	NumElements int
}

// robinHoodTable is an open-addressed, Robin-Hood-probed unique table: a
// probe array of packed cells mapping a hash to an index in an append-only
// element buffer. It guarantees canonicity — GetOrInsert returns the same
// index for structurally-equal elements — and monotone growth — once
// issued, an index remains valid (and derefs to the same element) for the
// table's lifetime, even across Grow.
//
// The element type E is generic so the same implementation backs both the
// BDD unique table (E = topless node, a (low, high) pair) and the SDD
// internal-node table (E = a variable-length or-list). Single-threaded use
// only; see spec §5.
type robinHoodTable[E any] struct {
	probe []probeElem
	elems []E

	cap int
	len int

	hashFn func(E) uint64
	eqFn   func(a, b E) bool

	loadFactor   float64
	growthFactor int

	hitCount    int
	lookupCount int
}

func newRobinHoodTable[E any](requested int, loadFactor float64, growthFactor int, hashFn func(E) uint64, eqFn func(a, b E) bool) *robinHoodTable[E] {
	cap := nextPowerOfTwo(int(float64(requested) * (1 + loadFactor)))
	return &robinHoodTable[E]{
		probe:        make([]probeElem, cap),
		elems:        make([]E, 0, requested),
		cap:          cap,
		hashFn:       hashFn,
		eqFn:         eqFn,
		loadFactor:   loadFactor,
		growthFactor: growthFactor,
	}
}

// GetOrInsert interns key, returning the index it occupies in the element
// buffer. If an equal element was already present, its existing index is
// returned and isNew is false; otherwise key is appended to the element
// buffer and isNew is true.
func (t *robinHoodTable[E]) GetOrInsert(key E) (idx int, isNew bool) {
	if float64(t.len+1) > float64(t.cap)*t.loadFactor {
		t.grow()
	}

	h := t.hashFn(key)
	pos := int(h % uint64(t.cap))
	searcher := newProbeElem(len(t.elems), h)

	inserted := false
	newIdx := 0

	for {
		cur := t.probe[pos]
		if cur.occupied() {
			if cur.hashPrefix() == searcher.hashPrefix() && t.eqFn(t.elems[cur.idx()], key) {
				t.hitCount++
				return cur.idx(), false
			}
			if cur.offset() < searcher.offset() {
				if !inserted {
					newIdx = searcher.idx()
					t.elems = append(t.elems, key)
					t.len++
					inserted = true
				}
				t.probe[pos], searcher = searcher, cur
			}
			searcher = searcher.withIncrementedOffset()
			pos = (pos + 1) % t.cap
			continue
		}
		// unoccupied: place whatever we are currently carrying and stop.
		if !inserted {
			newIdx = searcher.idx()
			t.elems = append(t.elems, key)
			t.len++
			inserted = true
		}
		t.probe[pos] = searcher
		return newIdx, true
	}
}

// Find looks up key without mutating the table. It returns (0, false) as
// soon as it reaches an unoccupied bucket.
func (t *robinHoodTable[E]) Find(key E) (idx int, ok bool) {
	t.lookupCount++
	h := t.hashFn(key)
	prefix := hashPrefix4(h)
	pos := int(h % uint64(t.cap))
	for {
		cur := t.probe[pos]
		if !cur.occupied() {
			return 0, false
		}
		if cur.hashPrefix() == prefix && t.eqFn(t.elems[cur.idx()], key) {
			t.hitCount++
			return cur.idx(), true
		}
		pos = (pos + 1) % t.cap
	}
}

// Deref returns the element stored at idx, as issued by a prior
// GetOrInsert. Valid for the table's lifetime regardless of intervening
// Grow calls, since growth only rebuilds the probe array, never the
// element buffer.
func (t *robinHoodTable[E]) Deref(idx int) E {
	return t.elems[idx]
}

// NumElements returns the number of distinct elements interned so far.
func (t *robinHoodTable[E]) NumElements() int {
	return len(t.elems)
}

// grow rehashes every element into a fresh probe array sized up by
// growthFactor (>= 2; the reference design in spec §4.3 uses 8). The
// element buffer itself is untouched, so previously-issued indexes remain
// valid.
func (t *robinHoodTable[E]) grow() {
	newCap := nextPowerOfTwo(t.cap * t.growthFactor)
	logger.Info("start resize", zap.Int("oldcap", t.cap), zap.Int("newcap", newCap), zap.Int("nodes", len(t.elems)))
	newProbe := make([]probeElem, newCap)
	for i, e := range t.elems {
		insertProbeOnly(newProbe, newCap, i, t.hashFn(e))
	}
	t.probe = newProbe
	t.cap = newCap
	logger.Info("end resize", zap.Int("cap", t.cap), zap.Int("nodes", len(t.elems)))
}

// insertProbeOnly performs a plain Robin-Hood insertion of (idx, hash) into
// an existing probe array, without any duplicate check: used during growth,
// where every element is already known to be distinct.
func insertProbeOnly(probe []probeElem, cap int, idx int, hash uint64) {
	pos := int(hash % uint64(cap))
	searcher := newProbeElem(idx, hash)
	for {
		cur := probe[pos]
		if !cur.occupied() {
			probe[pos] = searcher
			return
		}
		if cur.offset() < searcher.offset() {
			probe[pos], searcher = searcher, cur
		}
		searcher = searcher.withIncrementedOffset()
		pos = (pos + 1) % cap
	}
}

// Stats reports hit/lookup counters, average probe offset, and element
// count, per spec §4.3.
func (t *robinHoodTable[E]) Stats() tableStats {
	var total uint32
	var occ int
	for _, e := range t.probe {
		if e.occupied() {
			total += e.offset()
			occ++
		}
	}
	avg := 0.0
	if occ > 0 {
		avg = float64(total) / float64(occ)
	}
	return tableStats{
		HitCount:    t.hitCount,
		LookupCount: t.lookupCount,
		AvgOffset:   avg,
		NumElements: len(t.elems),
	}
}
