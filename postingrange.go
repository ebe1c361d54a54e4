package freqidx

// PostingRange is a restricted view of a term's posting list over a docid
// window [first, last). It borrows the FreqIndex it was built from, which
// must outlive it. Go has no move-only types; callers are expected to treat
// a PostingRange as if it were one (pass by value or pointer, never mutate
// the index it points at while a range is alive) rather than relying on the
// compiler to forbid aliasing, matching the intent — if not the mechanism —
// of the distilled spec's move-only C++ type (SPEC_FULL.md §4.6, §9).
type PostingRange struct {
	index *FreqIndex
	term  int
	first uint64
	last  uint64
}

// FirstDocument returns the range's inclusive lower bound.
func (r PostingRange) FirstDocument() uint64 {
	return r.first
}

// LastDocument returns the range's exclusive upper bound.
func (r PostingRange) LastDocument() uint64 {
	return r.last
}

// Cursor builds a Cursor scoped to this range: last is set to r.last, and if
// first > 0 the cursor is immediately seeded with NextGEQ(first).
func (r PostingRange) Cursor() *Cursor {
	docsEnum, freqsEnum, _ := r.index.decodeRecord(r.term)
	cur := newCursor(docsEnum, freqsEnum, r.last)
	if r.first > 0 {
		cur.NextGEQ(r.first)
	}
	return cur
}

// Size reports the cursor's size (the full posting list length), not
// hi-low. This mirrors an inconsistency present in the distilled spec's
// source (Posting_Range::size() returning the underlying cursor size rather
// than the restricted window width) which is preserved here deliberately;
// see SPEC_FULL.md §9.
func (r PostingRange) Size() int64 {
	return int64(r.Cursor().Size())
}

// Restrict returns a tighter PostingRange over [low, hi); it requires
// first <= low < hi <= last, returning ErrRangeOutOfBounds otherwise.
func (r PostingRange) Restrict(low, hi uint64) (PostingRange, error) {
	if !(low < hi && low >= r.first && hi <= r.last) {
		return PostingRange{}, ErrRangeOutOfBounds
	}
	return PostingRange{index: r.index, term: r.term, first: low, last: hi}, nil
}
