package freqidx

import "testing"

func TestTermBitmapContainsExactDocids(t *testing.T) {
	idx := buildSingleTermIndex(t, numDocsFixture, posting{[]uint64{3, 7, 40}, []uint64{1, 1, 1}, 3})
	bm := TermBitmap(idx, 0)

	for _, d := range []uint32{3, 7, 40} {
		if !bm.Contains(d) {
			t.Errorf("bitmap missing expected docid %d", d)
		}
	}
	if bm.Contains(8) {
		t.Error("bitmap contains unexpected docid 8")
	}
	if got := bm.GetCardinality(); got != 3 {
		t.Errorf("GetCardinality() = %d, want 3", got)
	}
}

func TestBooleanQueryAnd(t *testing.T) {
	idx := buildSingleTermIndex(t, numDocsFixture,
		posting{[]uint64{1, 2, 3, 4}, []uint64{1, 1, 1, 1}, 4},
		posting{[]uint64{3, 4, 5, 6}, []uint64{1, 1, 1, 1}, 4},
	)

	result := NewBooleanQuery(idx, 0).And(1).Execute()
	want := []uint32{3, 4}
	if len(result) != len(want) {
		t.Fatalf("And result = %v, want %v", result, want)
	}
	for i, d := range want {
		if result[i] != d {
			t.Errorf("And result[%d] = %d, want %d", i, result[i], d)
		}
	}
}

func TestBooleanQueryOrAndNot(t *testing.T) {
	idx := buildSingleTermIndex(t, numDocsFixture,
		posting{[]uint64{1, 2}, []uint64{1, 1}, 2},
		posting{[]uint64{2, 3}, []uint64{1, 1}, 2},
	)

	or := NewBooleanQuery(idx, 0).Or(1).Execute()
	if len(or) != 3 {
		t.Fatalf("Or result = %v, want 3 elements", or)
	}

	andNot := NewBooleanQuery(idx, 0).AndNot(1).Execute()
	if len(andNot) != 1 || andNot[0] != 1 {
		t.Fatalf("AndNot result = %v, want [1]", andNot)
	}
}
