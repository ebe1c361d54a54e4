// ═══════════════════════════════════════════════════════════════════════════════
// SERIALIZATION
// ═══════════════════════════════════════════════════════════════════════════════
// Encode/Decode persist a FreqIndex as a single little-endian blob, following
// the layout in SPEC_FULL.md §6.1: global parameters, num_docs, the docs
// BitVectorCollection, then the freqs BitVectorCollection. Each collection
// serializes as its record count, the offsets directory, then the payload.
// The directory and the payload share one format: a 64-bit bit length, a
// 64-bit word count, then the packed words; the payload therefore carries a
// bit length ahead of its word count. The encoding uses the same
// binary.Write/bytes.Buffer pairing the donor's own Encode/Decode use.
// ═══════════════════════════════════════════════════════════════════════════════

package freqidx

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
)

// Encode writes index as a single blob to w.
func Encode(w io.Writer, index *FreqIndex) error {
	var buf bytes.Buffer

	if err := binary.Write(&buf, binary.LittleEndian, index.params.Quantum); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, index.numDocs); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	if err := encodeCollection(&buf, index.docs); err != nil {
		return err
	}
	if err := encodeCollection(&buf, index.freqs); err != nil {
		return err
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	slog.Info("freqidx: encoded index", slog.Int("bytes", buf.Len()))
	return nil
}

func encodeCollection(buf *bytes.Buffer, c *BitVectorCollection) error {
	if err := binary.Write(buf, binary.LittleEndian, uint64(c.count)); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	if err := encodeBitVector(buf, c.offsets, uint64(c.count+1)*uint64(c.offsetWidth)); err != nil {
		return err
	}
	if err := encodeBitVector(buf, c.payload, c.payload.NumBits()); err != nil {
		return err
	}
	return nil
}

func encodeBitVector(buf *bytes.Buffer, v *BitVector, numBits uint64) error {
	if err := binary.Write(buf, binary.LittleEndian, numBits); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	wordCount := (numBits + wordBits - 1) / wordBits
	if err := binary.Write(buf, binary.LittleEndian, wordCount); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	words := v.Words()
	for i := uint64(0); i < wordCount; i++ {
		var w uint64
		if i < uint64(len(words)) {
			w = words[i]
		}
		if err := binary.Write(buf, binary.LittleEndian, w); err != nil {
			return fmt.Errorf("%w: %v", ErrIOFailure, err)
		}
	}
	return nil
}

// Decode reads a blob previously written by Encode and reconstructs a
// FreqIndex. It returns ErrCorruptIndex if the blob's internal counts are
// inconsistent, and ErrIOFailure on any underlying read error.
func Decode(r io.Reader) (*FreqIndex, error) {
	var quantum, numDocs uint64
	if err := binary.Read(r, binary.LittleEndian, &quantum); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	if err := binary.Read(r, binary.LittleEndian, &numDocs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	docs, err := decodeCollection(r)
	if err != nil {
		return nil, err
	}
	freqs, err := decodeCollection(r)
	if err != nil {
		return nil, err
	}
	if docs.count != freqs.count {
		return nil, ErrCorruptIndex
	}

	return &FreqIndex{
		numDocs: numDocs,
		params:  GlobalParameters{Quantum: quantum},
		docs:    docs,
		freqs:   freqs,
		codec:   EliasFano{},
	}, nil
}

func decodeCollection(r io.Reader) (*BitVectorCollection, error) {
	var count uint64
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	offsets, offsetBits, err := decodeBitVector(r)
	if err != nil {
		return nil, err
	}
	payload, _, err := decodeBitVector(r)
	if err != nil {
		return nil, err
	}

	var offsetWidth uint
	if count+1 > 0 {
		offsetWidth = uint(offsetBits / (count + 1))
	}

	return &BitVectorCollection{
		count:       int(count),
		offsetWidth: offsetWidth,
		offsets:     offsets,
		payload:     payload,
	}, nil
}

func decodeBitVector(r io.Reader) (*BitVector, uint64, error) {
	var numBits, wordCount uint64
	if err := binary.Read(r, binary.LittleEndian, &numBits); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	if err := binary.Read(r, binary.LittleEndian, &wordCount); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	words := make([]uint64, wordCount)
	for i := range words {
		if err := binary.Read(r, binary.LittleEndian, &words[i]); err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrIOFailure, err)
		}
	}
	return &BitVector{words: words, numBits: numBits}, numBits, nil
}
