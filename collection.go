// ═══════════════════════════════════════════════════════════════════════════════
// BIT-VECTOR COLLECTION
// ═══════════════════════════════════════════════════════════════════════════════
// A BitVectorCollection packs many variable-length bit-records (one per term,
// in this library) into a single payload, plus a directory of start offsets
// so that record k can be located without scanning records 0..k-1.
//
// The offset directory is stored as a plain fixed-width array rather than a
// further-compressed monotone sequence: get(k) must be true O(1) (the FreqIndex
// reader calls it on every Cursor construction), and a fixed-width field does
// that with a single multiply-and-read, no decode loop. Each offset still only
// costs ceil_log2(totalBits+1) bits, so the directory is "compact" relative to
// a naive 64-bit-per-entry array, matching the spirit of record 2 in §4.4
// without paying for select support it would never need at this size.
// ═══════════════════════════════════════════════════════════════════════════════

package freqidx

// BitVectorCollectionBuilder accumulates variable-length bit-records.
type BitVectorCollectionBuilder struct {
	offsets []uint64 // offsets[i] = start bit of record i; offsets[count] = total bits
	payload BitVectorBuilder
}

// Append records the current end offset, then concatenates record's bits
// onto the payload.
func (b *BitVectorCollectionBuilder) Append(record *BitVector) {
	if len(b.offsets) == 0 {
		b.offsets = append(b.offsets, 0)
	}
	b.payload.AppendFrom(record, 0, record.NumBits())
	b.offsets = append(b.offsets, b.payload.NumBits())
}

// Size reports the number of records appended so far.
func (b *BitVectorCollectionBuilder) Size() int {
	if len(b.offsets) == 0 {
		return 0
	}
	return len(b.offsets) - 1
}

// Build freezes the builder into a read-only BitVectorCollection.
func (b *BitVectorCollectionBuilder) Build() *BitVectorCollection {
	offsets := b.offsets
	if offsets == nil {
		offsets = []uint64{0}
	}
	width := CeilLog2(offsets[len(offsets)-1] + 1)

	var dir BitVectorBuilder
	for _, off := range offsets {
		dir.AppendBits(off, width)
	}

	return &BitVectorCollection{
		count:       len(offsets) - 1,
		offsetWidth: width,
		offsets:     dir.Build(),
		payload:     b.payload.Build(),
	}
}

// BitVectorCollection is an immutable sequence of variable-length bit-records
// with O(1) access to each record's start offset.
type BitVectorCollection struct {
	count       int
	offsetWidth uint
	offsets     *BitVector
	payload     *BitVector
}

// Size reports the number of records.
func (c *BitVectorCollection) Size() int {
	return c.count
}

// Payload exposes the backing payload bit-vector (needed by enumerator
// constructors, which read directly from it).
func (c *BitVectorCollection) Payload() *BitVector {
	return c.payload
}

func (c *BitVectorCollection) offsetAt(i int) uint64 {
	if c.offsetWidth == 0 {
		return 0
	}
	return c.offsets.Reader(uint64(i) * uint64(c.offsetWidth)).Take(c.offsetWidth)
}

// Get returns a BitReader seeded at the start of record k. The caller is
// responsible for decoding fields until it has consumed exactly the record's
// bits; each field is self-delimiting so no explicit length is needed.
func (c *BitVectorCollection) Get(k int) *BitReader {
	if k < 0 || k >= c.count {
		indexOutOfBounds(k, c.count)
	}
	return c.payload.Reader(c.offsetAt(k))
}
