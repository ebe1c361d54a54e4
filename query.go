// ═══════════════════════════════════════════════════════════════════════════════
// QUERY OPERATORS
// ═══════════════════════════════════════════════════════════════════════════════
// PointScore and ListScore are translated directly from the distilled spec's
// termdid_search / termdidlist_search operators: they drive cursors with
// next_geq and read back a score, never mutating the index. Both are
// deliberately degenerate — single-cursor — per SPEC_FULL.md §4.7; the "AND"
// variants below are the named "obvious extension" made concrete.
// ═══════════════════════════════════════════════════════════════════════════════

package freqidx

// ScoringCursor is a Cursor augmented with a Score method supplied by an
// outer layer (see scorer.go for the reference implementation).
type ScoringCursor interface {
	NextGEQ(lowerBound uint64)
	Docid() uint64
	Score() float64
}

// PointScore answers termdid_search: it seeks cursors[0] to targetDocid and
// returns its score if found, 0 if the term does not occur at that
// document, or -1 if cursors is empty.
func PointScore(cursors []ScoringCursor, maxDocid uint64, targetDocid uint64) float64 {
	if len(cursors) == 0 {
		return -1
	}
	cursors[0].NextGEQ(targetDocid)
	if cursors[0].Docid() != targetDocid {
		return 0
	}
	return cursors[0].Score()
}

// ListScore answers termdidlist_search: targets is assumed monotone
// non-decreasing. Returns a parallel slice of scores (0 where absent), or a
// single-element slice containing -1 if cursors is empty.
func ListScore(cursors []ScoringCursor, maxDocid uint64, targets []uint64) []float64 {
	if len(cursors) == 0 {
		return []float64{-1}
	}
	scores := make([]float64, len(targets))
	for i, target := range targets {
		cursors[0].NextGEQ(target)
		if cursors[0].Docid() != target {
			scores[i] = 0
			continue
		}
		scores[i] = cursors[0].Score()
	}
	return scores
}

// PointScoreAnd is the multi-term extension named in SPEC_FULL.md §4.7: it
// intersects every cursor at targetDocid, returning the sum of their scores
// only if every cursor lands exactly on targetDocid, and 0 the moment any
// cursor misses (conjunctive semantics, short-circuiting like the donor's
// QueryBuilder.And combinator).
func PointScoreAnd(cursors []ScoringCursor, maxDocid uint64, targetDocid uint64) float64 {
	if len(cursors) == 0 {
		return -1
	}
	var total float64
	for _, c := range cursors {
		c.NextGEQ(targetDocid)
		if c.Docid() != targetDocid {
			return 0
		}
		total += c.Score()
	}
	return total
}

// ListScoreAnd applies PointScoreAnd across a monotone list of target docids.
func ListScoreAnd(cursors []ScoringCursor, maxDocid uint64, targets []uint64) []float64 {
	if len(cursors) == 0 {
		return []float64{-1}
	}
	scores := make([]float64, len(targets))
	for i, target := range targets {
		scores[i] = PointScoreAnd(cursors, maxDocid, target)
	}
	return scores
}
