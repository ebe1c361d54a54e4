package freqidx

import "testing"

func TestCeilLog2(t *testing.T) {
	cases := []struct {
		in   uint64
		want uint
	}{
		{0, 0}, {1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {8, 3}, {9, 4},
	}
	for _, c := range cases {
		if got := CeilLog2(c.in); got != c.want {
			t.Errorf("CeilLog2(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestGammaNonzeroRoundTrip(t *testing.T) {
	values := []uint64{1, 2, 3, 4, 7, 8, 15, 16, 1023, 1024, 1 << 20}
	var b BitVectorBuilder
	for _, v := range values {
		WriteGammaNonzero(&b, v)
	}

	v := b.Build()
	r := v.Reader(0)
	for _, want := range values {
		if got := ReadGammaNonzero(r); got != want {
			t.Fatalf("ReadGammaNonzero = %d, want %d", got, want)
		}
	}
}

func TestWriteGammaNonzeroOfZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for gamma_nonzero(0)")
		}
	}()
	var b BitVectorBuilder
	WriteGammaNonzero(&b, 0)
}
