// ═══════════════════════════════════════════════════════════════════════════════
// BOOLEAN QUERY LAYER
// ═══════════════════════════════════════════════════════════════════════════════
// BooleanQuery sits above the core Cursor/FreqIndex machinery and gives the
// "obvious extension" named in SPEC_FULL.md §4.7 (multi-term AND/OR/NOT) a
// concrete, dependency-backed implementation: decode each queried term's
// posting list into a roaring.Bitmap of docids, then combine with the
// library's set operations. This is the same combinator shape as the
// donor's QueryBuilder (getTermBitmap/pushBitmap/Execute in query.go),
// ported from analyzed string tokens to dense term indices — tokenization
// and the lexicon remain out of scope (SPEC_FULL.md §1).
// ═══════════════════════════════════════════════════════════════════════════════

package freqidx

import "github.com/RoaringBitmap/roaring"

// TermBitmap decodes term's entire posting list into a roaring.Bitmap of
// docids. It fully drains a fresh cursor, so callers should not hold onto
// the Cursor afterwards.
func TermBitmap(index *FreqIndex, term int) *roaring.Bitmap {
	bm := roaring.NewBitmap()
	cur := index.Cursor(term)
	for cur.Docid() != cur.DocumentBound() {
		bm.Add(uint32(cur.Docid()))
		cur.Next()
	}
	return bm
}

// BooleanQuery is a small fluent builder over term bitmaps, mirroring the
// donor's QueryBuilder but operating on term indices.
type BooleanQuery struct {
	index  *FreqIndex
	result *roaring.Bitmap
}

// NewBooleanQuery seeds a query with a single required term.
func NewBooleanQuery(index *FreqIndex, term int) *BooleanQuery {
	return &BooleanQuery{index: index, result: TermBitmap(index, term)}
}

// And intersects the running result with term's posting list.
func (q *BooleanQuery) And(term int) *BooleanQuery {
	q.result = roaring.And(q.result, TermBitmap(q.index, term))
	return q
}

// Or unions the running result with term's posting list.
func (q *BooleanQuery) Or(term int) *BooleanQuery {
	q.result = roaring.Or(q.result, TermBitmap(q.index, term))
	return q
}

// AndNot removes term's postings from the running result.
func (q *BooleanQuery) AndNot(term int) *BooleanQuery {
	q.result = roaring.AndNot(q.result, TermBitmap(q.index, term))
	return q
}

// Execute returns the final sorted docid slice.
func (q *BooleanQuery) Execute() []uint32 {
	return q.result.ToArray()
}

// Bitmap exposes the running result bitmap directly, for callers that want
// to keep combining without going through Execute.
func (q *BooleanQuery) Bitmap() *roaring.Bitmap {
	return q.result
}
