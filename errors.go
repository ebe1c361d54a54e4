package freqidx

import (
	"errors"
	"fmt"
)

// ═══════════════════════════════════════════════════════════════════════════════
// ERROR DEFINITIONS
// ═══════════════════════════════════════════════════════════════════════════════
// Package-level sentinel errors so callers can compare with errors.Is. The
// sentinels below are returned to the caller, except where ErrCorruptIndex's
// comment says otherwise; IndexOutOfBounds and raw bit-level contract
// violations (see bitvector.go) panic instead, since those indicate a
// programming error rather than bad input data.
var (
	// ErrEmptyPostingList is returned by AddPostingList when n == 0.
	ErrEmptyPostingList = errors.New("freqidx: posting list must be nonempty")

	// ErrMalformedPosting is returned when docids are not strictly increasing,
	// a docid falls outside [0, num_docs), a freq is zero, or the freqs do not
	// sum to the declared occurrences total.
	ErrMalformedPosting = errors.New("freqidx: malformed posting list")

	// ErrRangeOutOfBounds is returned by PostingRange.Restrict when the
	// requested (low, hi) window is not contained in the current range.
	ErrRangeOutOfBounds = errors.New("freqidx: posting range out of bounds")

	// ErrCorruptIndex reports an internally inconsistent index. Decode
	// returns it when the docs and freqs collections hold different record
	// counts; FreqIndex.Cursor and PostingRange.Cursor panic with it when a
	// term's decoded n exceeds num_docs. Decoded docids and record offsets
	// are not checked.
	ErrCorruptIndex = errors.New("freqidx: corrupt index")

	// ErrIOFailure wraps an underlying read/write error encountered while
	// loading or persisting a serialized index.
	ErrIOFailure = errors.New("freqidx: io failure")
)

// indexOutOfBounds panics with an error naming the term index and size. Term
// indices are caller-controlled and checked at every public entry point;
// a term index >= size() is a programmer error, not a data error, so it
// is fatal rather than returned.
func indexOutOfBounds(term, size int) {
	panic(fmt.Errorf("freqidx: term index %d out of bounds (size=%d)", term, size))
}
