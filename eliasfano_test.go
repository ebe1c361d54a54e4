package freqidx

import "testing"

func buildEliasFano(t *testing.T, values []uint64, universe uint64) SequenceEnumerator {
	t.Helper()
	var b BitVectorBuilder
	n := uint64(len(values))
	EliasFano{}.Write(&b, values, universe, n, DefaultGlobalParameters())
	v := b.Build()
	return EliasFano{}.NewEnumerator(v, 0, universe, n, DefaultGlobalParameters())
}

func TestEliasFanoMoveAndSize(t *testing.T) {
	values := []uint64{2, 5, 5, 9, 40, 41, 99}
	e := buildEliasFano(t, values, 100)

	if got := e.Size(); got != uint64(len(values)) {
		t.Fatalf("Size() = %d, want %d", got, len(values))
	}

	for i, want := range values {
		pos, val := e.Move(uint64(i))
		if pos != uint64(i) || val != want {
			t.Fatalf("Move(%d) = (%d, %d), want (%d, %d)", i, pos, val, i, want)
		}
	}

	// Move(n) returns the sentinel.
	pos, val := e.Move(uint64(len(values)))
	if pos != uint64(len(values)) || val != 100 {
		t.Fatalf("Move(n) = (%d, %d), want (%d, 100)", pos, val, len(values))
	}
}

func TestEliasFanoMoveOutOfOrderRewinds(t *testing.T) {
	values := []uint64{0, 10, 20, 30, 40}
	e := buildEliasFano(t, values, 50)

	// Decode forward, then request an earlier index; this must rewind and
	// decode from the start rather than returning stale state.
	if _, v := e.Move(3); v != 30 {
		t.Fatalf("Move(3) = %d, want 30", v)
	}
	if _, v := e.Move(1); v != 10 {
		t.Fatalf("Move(1) after forward decode = %d, want 10", v)
	}
}

func TestEliasFanoNext(t *testing.T) {
	values := []uint64{1, 4, 4, 8}
	e := buildEliasFano(t, values, 10)

	for i, want := range values {
		pos, val := e.Next()
		if pos != uint64(i) || val != want {
			t.Fatalf("Next() #%d = (%d, %d), want (%d, %d)", i, pos, val, i, want)
		}
	}
	if pos, val := e.Next(); pos != uint64(len(values)) || val != 10 {
		t.Fatalf("Next() past end = (%d, %d), want (%d, 10)", pos, val, len(values))
	}
}

func TestEliasFanoNextGEQ(t *testing.T) {
	values := []uint64{2, 5, 5, 9, 40}
	e := buildEliasFano(t, values, 100)

	cases := []struct {
		v        uint64
		wantPos  uint64
		wantVal  uint64
		wantTerm bool
	}{
		{0, 0, 2, false},
		{2, 0, 2, false},  // B5: next_geq on a present value returns that value
		{3, 1, 5, false},
		{6, 3, 9, false},
		{41, 5, 100, true}, // B4: next_geq past the end terminates cleanly
	}
	for _, c := range cases {
		pos, val := e.NextGEQ(c.v)
		if pos != c.wantPos || val != c.wantVal {
			t.Errorf("NextGEQ(%d) = (%d, %d), want (%d, %d)", c.v, pos, val, c.wantPos, c.wantVal)
		}
	}
}

func TestEliasFanoEmptySequence(t *testing.T) {
	e := buildEliasFano(t, nil, 100)
	if got := e.Size(); got != 0 {
		t.Fatalf("Size() = %d, want 0", got)
	}
	if pos, val := e.Move(0); pos != 0 || val != 100 {
		t.Fatalf("Move(0) on empty = (%d, %d), want (0, 100)", pos, val)
	}
}
