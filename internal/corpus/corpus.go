// ═══════════════════════════════════════════════════════════════════════════════
// CORPUS: TEST-FIXTURE DOCUMENT COLLECTIONS
// ═══════════════════════════════════════════════════════════════════════════════
// Corpus turns a sequence of raw documents into a *freqidx.FreqIndex, the
// same way a caller of the core library would: analyze each document into
// terms, accumulate per-term (docid, freq) pairs in a deterministic term
// order, then drive freqidx.Builder.AddPostingList once per term. It exists
// so that tests and benchmarks of the core package can build realistic,
// multi-term indices from plain text instead of hand-written posting
// literals.
// ═══════════════════════════════════════════════════════════════════════════════

package corpus

import (
	"math/rand"

	"github.com/wizenheimer/freqidx"
)

// Corpus accumulates documents and their analyzed terms before handing them
// to a freqidx.Builder.
type Corpus struct {
	dict    *termDict
	numDocs uint64
}

// NewCorpus returns an empty corpus. rngSeed controls the skip list's
// coin-flip heights only — it has no effect on term order or the resulting
// index's contents, since term ids are assigned in sorted order regardless
// of tower shape.
func NewCorpus(rngSeed int64) *Corpus {
	return &Corpus{dict: newTermDict(rand.New(rand.NewSource(rngSeed)))}
}

// AddDocument analyzes text and records its terms against the next
// sequential docid, returning that docid.
func (c *Corpus) AddDocument(text string) uint64 {
	docid := c.numDocs
	c.numDocs++

	counts := make(map[string]uint64)
	for _, term := range analyze(text) {
		counts[term]++
	}
	for term, freq := range counts {
		p := c.dict.getOrCreate(term)
		p.docids = append(p.docids, docid)
		p.freqs = append(p.freqs, freq)
		p.occurrences += freq
	}
	return docid
}

// Build finalizes the corpus into a FreqIndex plus the term-id-ordered
// vocabulary (vocabulary[i] is the term text for term id i, the same order
// freqidx.Builder.AddPostingList was called in).
func (c *Corpus) Build(params freqidx.GlobalParameters) (*freqidx.FreqIndex, []string, error) {
	vocabulary := c.dict.sortedTerms()
	b := freqidx.NewBuilder(c.numDocs, params)
	for _, term := range vocabulary {
		p := c.dict.get(term)
		if err := b.AddPostingList(uint64(len(p.docids)), p.docids, p.freqs, p.occurrences); err != nil {
			return nil, nil, err
		}
	}
	return b.Build(), vocabulary, nil
}
