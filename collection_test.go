package freqidx

import "testing"

func buildRecord(t *testing.T, width uint, value uint64) *BitVector {
	t.Helper()
	var b BitVectorBuilder
	b.AppendBits(value, width)
	return b.Build()
}

func TestBitVectorCollectionGetReturnsEachRecord(t *testing.T) {
	var builder BitVectorCollectionBuilder
	records := []struct {
		width uint
		value uint64
	}{
		{7, 0x5A},
		{13, 0x1ABC},
		{1, 1},
		{64, 0xDEADBEEFCAFEF00D},
	}
	for _, r := range records {
		builder.Append(buildRecord(t, r.width, r.value))
	}

	coll := builder.Build()
	if got := coll.Size(); got != len(records) {
		t.Fatalf("Size() = %d, want %d", got, len(records))
	}
	for i, r := range records {
		reader := coll.Get(i)
		if got := reader.Take(r.width); got != r.value {
			t.Errorf("record %d: Take(%d) = %x, want %x", i, r.width, got, r.value)
		}
	}
}

func TestBitVectorCollectionGetOutOfBoundsPanics(t *testing.T) {
	var builder BitVectorCollectionBuilder
	builder.Append(buildRecord(t, 4, 3))
	coll := builder.Build()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-bounds Get")
		}
	}()
	coll.Get(1)
}

func TestEmptyBitVectorCollection(t *testing.T) {
	var builder BitVectorCollectionBuilder
	coll := builder.Build()
	if got := coll.Size(); got != 0 {
		t.Fatalf("Size() = %d, want 0", got)
	}
}
