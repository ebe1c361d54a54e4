package freqidx

// Cursor is a stateful reader over one term's posting list: the decoded
// docid stream and its parallel frequency stream. A single Cursor type
// serves both the unrestricted case (last = NumDocs()) and the
// PostingRange-restricted case (last = range's hi), unifying the two
// near-identical cursor shapes the distilled spec's source carried
// separately (SPEC_FULL.md §9).
type Cursor struct {
	pos      uint64
	curDocid uint64
	last     uint64

	docsEnum  SequenceEnumerator
	freqsEnum SequenceEnumerator
}

func newCursor(docsEnum, freqsEnum SequenceEnumerator, last uint64) *Cursor {
	c := &Cursor{docsEnum: docsEnum, freqsEnum: freqsEnum, last: last}
	c.Reset()
	return c
}

func (c *Cursor) clamp() {
	if c.curDocid >= c.last {
		c.curDocid = c.last
	}
}

// Reset returns the cursor to its initial state: position 0, docid equal to
// the first element (or the DOCUMENT_BOUND sentinel if that element is
// already at or past last).
func (c *Cursor) Reset() {
	pos, docid := c.docsEnum.Move(0)
	c.pos = pos
	c.curDocid = docid
	c.clamp()
}

// Next advances the docs enumerator by one position.
func (c *Cursor) Next() {
	pos, docid := c.docsEnum.Next()
	c.pos = pos
	c.curDocid = docid
	c.clamp()
}

// NextGEQ advances to the least position whose docid is >= lowerBound.
func (c *Cursor) NextGEQ(lowerBound uint64) {
	pos, docid := c.docsEnum.NextGEQ(lowerBound)
	c.pos = pos
	c.curDocid = docid
	c.clamp()
}

// Move jumps to an absolute position without applying the last-docid clamp
// (used when the caller bounds by position rather than by docid value).
func (c *Cursor) Move(position uint64) {
	pos, docid := c.docsEnum.Move(position)
	c.pos = pos
	c.curDocid = docid
}

// Freq returns the frequency at the cursor's current position. Safe to call
// whenever Position() is in [0, Size()).
func (c *Cursor) Freq() uint64 {
	_, freq := c.freqsEnum.Move(c.pos)
	return freq
}

// Docid returns the cursor's current docid, or the DOCUMENT_BOUND sentinel
// (c.last) once the cursor is exhausted.
func (c *Cursor) Docid() uint64 {
	return c.curDocid
}

// Position returns the cursor's current position within the docid sequence.
func (c *Cursor) Position() uint64 {
	return c.pos
}

// Size returns the number of postings (n) in the underlying docid sequence.
func (c *Cursor) Size() uint64 {
	return c.docsEnum.Size()
}

// DocumentBound returns this cursor's sentinel "past end" value: NumDocs()
// for a cursor built directly from the index, or a PostingRange's hi for a
// restricted cursor.
func (c *Cursor) DocumentBound() uint64 {
	return c.last
}
