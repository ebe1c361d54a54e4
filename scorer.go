package freqidx

import "math"

// TermScorer is the reference ScoringCursor: an inverse-document-frequency
// weighted term-frequency scorer wrapping a *Cursor, adapted from the
// donor's calculateIDF (search.go) from skip-list-backed postings to
// FreqIndex cursors. FreqIndex carries no per-document length, so this is a
// plain tf-idf shape rather than full BM25 length normalization — BM25's
// extra inputs (document length, average document length) have no home in
// this index's data model (SPEC_FULL.md §4.8).
type TermScorer struct {
	cursor  *Cursor
	numDocs uint64
}

// NewTermScorer wraps cursor with an IDF computed from numDocs and the
// cursor's posting-list length.
func NewTermScorer(cursor *Cursor, numDocs uint64) *TermScorer {
	return &TermScorer{cursor: cursor, numDocs: numDocs}
}

func (s *TermScorer) NextGEQ(lowerBound uint64) { s.cursor.NextGEQ(lowerBound) }
func (s *TermScorer) Docid() uint64             { return s.cursor.Docid() }

// Score returns idf * freq() at the cursor's current position.
func (s *TermScorer) Score() float64 {
	idf := math.Log(1 + float64(s.numDocs)/float64(s.cursor.Size()))
	return idf * float64(s.cursor.Freq())
}
