package mmser

import "testing"

func TestScalarRoundTrip(t *testing.T) {
	p := &Point{X: 42, Y: -7}
	got := roundTripBuffer(t, p)
	if *got != *p {
		t.Fatalf("got %+v, want %+v", *got, *p)
	}
}

func TestSizeAgreement(t *testing.T) {
	p := &Point{X: 1, Y: 2}
	n := MeasureSize(p)
	buf := make([]byte, n)
	WriteIntoBuffer(buf, p)

	// A write into an oversized buffer should touch exactly the prefix
	// MeasureSize predicted.
	big := make([]byte, n+64)
	WriteIntoBuffer(big, p)
	for i, b := range buf {
		if big[i] != b {
			t.Fatalf("byte %d mismatch between exact and oversized buffer", i)
		}
	}
	for i := n; i < uint64(len(big)); i++ {
		if big[i] != 0 {
			t.Fatalf("byte %d past the measured size was written", i)
		}
	}
}

func TestWriteIntoTooSmallBufferPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic writing into undersized buffer")
		}
		if _, ok := r.(*MisuseError); !ok {
			t.Fatalf("expected *MisuseError, got %T", r)
		}
	}()
	p := &Point{X: 1, Y: 2}
	buf := make([]byte, 1)
	WriteIntoBuffer(buf, p)
}

func TestReadPastEndPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic reading past end")
		}
		if _, ok := r.(*MisuseError); !ok {
			t.Fatalf("expected *MisuseError, got %T", r)
		}
	}()
	var p Point
	ReadFromBuffer([]byte{1, 2, 3}, &p)
}

// TestTotalSizeAccumulates asserts the resolved Open Question: every
// archive accumulates its running offset across sub-operations rather than
// assigning it, so two consecutive Vector fields land at the offsets their
// combined lengths and alignments predict, not just the last field's.
func TestTotalSizeAccumulates(t *testing.T) {
	type twoVectors struct {
		A Vector[uint8]
		B Vector[uint64]
	}

	orig := twoVectors{
		A: NewVectorFilled[uint8](3, 9),
		B: NewVectorFilled[uint64](2, 100),
	}

	var sz SizeArchive
	Value(&sz, &orig.A)
	Value(&sz, &orig.B)
	n := sz.Size()

	buf := make([]byte, n)
	wa := NewBufferWriteArchive(buf)
	Value(wa, &orig.A)
	Value(wa, &orig.B)

	var got twoVectors
	ra := NewBufferReadArchive(buf)
	Value(ra, &got.A)
	Value(ra, &got.B)

	if got.A.Len() != 3 || got.B.Len() != 2 {
		t.Fatalf("got lengths %d, %d", got.A.Len(), got.B.Len())
	}
	for i := 0; i < got.B.Len(); i++ {
		if got.B.At(i) != 100 {
			t.Fatalf("B[%d] = %d, want 100", i, got.B.At(i))
		}
	}
}

func TestMapReadAliasesVector(t *testing.T) {
	w := &WithVector{Tag: 7, Data: NewVectorFilled[uint64](4, 11)}
	n := MeasureSize(w)
	buf := make([]byte, n)
	WriteIntoBuffer(buf, w)

	var got WithVector
	ReadViaMap(buf, &got)
	if got.Tag != 7 || got.Data.Len() != 4 {
		t.Fatalf("got %+v", got)
	}
	if got.Data.IsOwned() {
		t.Fatal("map-read vector should be Borrowed until mutated")
	}
	for i := 0; i < got.Data.Len(); i++ {
		if got.Data.At(i) != 11 {
			t.Fatalf("Data[%d] = %d, want 11", i, got.Data.At(i))
		}
	}
}
