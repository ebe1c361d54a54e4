// ═══════════════════════════════════════════════════════════════════════════════
// FREQ INDEX: BUILDER AND READER
// ═══════════════════════════════════════════════════════════════════════════════
// FreqIndex is the per-term record store: for term k it holds a docs record
// (a gamma-coded occurrence header plus a DocIdSequence) and a parallel freqs
// record (a FreqSequence over the prefix sum of per-document frequencies).
// Both live in their own BitVectorCollection so that record k of one aligns
// with record k of the other (invariant I1/I2 in SPEC_FULL.md §3).
//
// BUILD EXAMPLE:
// --------------
//
//	b := NewBuilder(100, DefaultGlobalParameters())
//	b.AddPostingList(3, []uint64{10, 20, 30}, []uint64{2, 1, 3}, 6)
//	idx := b.Build()
//	cur := idx.Cursor(0)
//	cur.Docid() // 10
// ═══════════════════════════════════════════════════════════════════════════════

package freqidx

import (
	"log/slog"
	"sync"
)

// Builder accumulates posting lists, one per term, in term-id order, and
// produces an immutable FreqIndex via Build.
type Builder struct {
	numDocs uint64
	params  GlobalParameters
	docs    BitVectorCollectionBuilder
	freqs   BitVectorCollectionBuilder
	codec   SequenceCodec
}

// NewBuilder constructs a Builder for an index over numDocs documents.
func NewBuilder(numDocs uint64, params GlobalParameters) *Builder {
	return &Builder{numDocs: numDocs, params: params, codec: EliasFano{}}
}

// AddPostingList registers the posting list for the next term: n docids
// (strictly increasing, each < numDocs) with parallel per-document
// frequencies (each >= 1) summing to occurrences.
//
// The docs and freqs bit-records are encoded by two goroutines joined with a
// sync.WaitGroup before either is appended to its collection — they touch no
// shared state, so no further synchronization is needed (SPEC_FULL.md §4.5,
// §5).
func (b *Builder) AddPostingList(n uint64, docids []uint64, freqs []uint64, occurrences uint64) error {
	if n == 0 {
		return ErrEmptyPostingList
	}
	if uint64(len(docids)) != n || uint64(len(freqs)) != n {
		return ErrMalformedPosting
	}
	if err := validatePosting(n, docids, freqs, occurrences, b.numDocs); err != nil {
		return err
	}

	var wg sync.WaitGroup
	var docsRecord, freqsRecord *BitVector
	wg.Add(2)

	go func() {
		defer wg.Done()
		var bits BitVectorBuilder
		WriteGammaNonzero(&bits, occurrences)
		if occurrences > 1 {
			bits.AppendBits(n, CeilLog2(occurrences+1))
		}
		b.codec.Write(&bits, docids, b.numDocs, n, b.params)
		docsRecord = bits.Build()
	}()

	go func() {
		defer wg.Done()
		var bits BitVectorBuilder
		prefixSums := make([]uint64, n)
		var running uint64
		for i, f := range freqs {
			running += f
			prefixSums[i] = running
		}
		b.codec.Write(&bits, prefixSums, occurrences+1, n, b.params)
		freqsRecord = bits.Build()
	}()

	wg.Wait()

	b.docs.Append(docsRecord)
	b.freqs.Append(freqsRecord)
	return nil
}

func validatePosting(n uint64, docids, freqs []uint64, occurrences, numDocs uint64) error {
	var prev uint64
	var sum uint64
	for i, d := range docids {
		if d >= numDocs {
			return ErrMalformedPosting
		}
		if i > 0 && d <= prev {
			return ErrMalformedPosting
		}
		prev = d
	}
	for _, f := range freqs {
		if f == 0 {
			return ErrMalformedPosting
		}
		sum += f
	}
	if sum != occurrences {
		return ErrMalformedPosting
	}
	return nil
}

// Build finalizes both sub-collections into an immutable FreqIndex.
func (b *Builder) Build() *FreqIndex {
	slog.Info("freqidx: build complete", slog.Int("terms", b.docs.Size()), slog.Uint64("num_docs", b.numDocs))
	return &FreqIndex{
		numDocs: b.numDocs,
		params:  b.params,
		docs:    b.docs.Build(),
		freqs:   b.freqs.Build(),
		codec:   b.codec,
	}
}

// FreqIndex is the immutable, queryable result of a Builder. Once built it
// contains only read-only data; cursors borrow it and it must outlive them.
type FreqIndex struct {
	numDocs uint64
	params  GlobalParameters
	docs    *BitVectorCollection
	freqs   *BitVectorCollection
	codec   SequenceCodec
}

// Size reports the number of terms in the index.
func (f *FreqIndex) Size() int {
	return f.docs.Size()
}

// NumDocs reports the document universe size.
func (f *FreqIndex) NumDocs() uint64 {
	return f.numDocs
}

// Params returns the codec-tuning parameters the index was built with.
func (f *FreqIndex) Params() GlobalParameters {
	return f.params
}

// decodeRecord opens term k's docs and freqs records and constructs the
// matching enumerators, per SPEC_FULL.md §4.6.
func (f *FreqIndex) decodeRecord(k int) (docsEnum, freqsEnum SequenceEnumerator, n uint64) {
	if k < 0 || k >= f.Size() {
		indexOutOfBounds(k, f.Size())
	}

	docsReader := f.docs.Get(k)
	occurrences := ReadGammaNonzero(docsReader)
	n = 1
	if occurrences > 1 {
		n = docsReader.Take(CeilLog2(occurrences + 1))
	}
	if n > f.numDocs {
		panic(ErrCorruptIndex)
	}

	docsEnum = f.codec.NewEnumerator(f.docs.Payload(), docsReader.Position(), f.numDocs, n, f.params)

	freqsReader := f.freqs.Get(k)
	rawFreqsEnum := f.codec.NewEnumerator(f.freqs.Payload(), freqsReader.Position(), occurrences+1, n, f.params)
	freqsEnum = newFreqSequenceEnumerator(rawFreqsEnum)
	return docsEnum, freqsEnum, n
}

// Cursor constructs a Cursor over term k's full posting list (last =
// NumDocs()).
func (f *FreqIndex) Cursor(term int) *Cursor {
	docsEnum, freqsEnum, _ := f.decodeRecord(term)
	return newCursor(docsEnum, freqsEnum, f.numDocs)
}

// PostingRange returns the unrestricted posting range for term, spanning the
// full docid universe [0, NumDocs()).
func (f *FreqIndex) PostingRange(term int) PostingRange {
	if term < 0 || term >= f.Size() {
		indexOutOfBounds(term, f.Size())
	}
	return PostingRange{index: f, term: term, first: 0, last: f.numDocs}
}

// Warmup touches every word backing term k's docs and freqs records, forcing
// their pages into the process's resident set. It is the closest a pure-Go
// program gets to an OS madvise(WILLNEED) hint without cgo; see SPEC_FULL.md
// §9 for why this is implemented rather than left as a stub.
func (f *FreqIndex) Warmup(term int) {
	if term < 0 || term >= f.Size() {
		indexOutOfBounds(term, f.Size())
	}
	var sink uint64
	touch := func(coll *BitVectorCollection, k int) {
		r := coll.Get(k)
		words := coll.Payload().Words()
		start := r.Position() / wordBits
		for i := start; i < uint64(len(words)); i++ {
			sink ^= words[i]
		}
	}
	touch(f.docs, term)
	touch(f.freqs, term)
	_ = sink
}
