package mmser

import "testing"

type withFixedArray struct {
	IDs [4]uint32
}

func (w *withFixedArray) Describe(ar Archive) {
	Array(ar, w.IDs[:])
}

func TestFixedArrayRoundTrip(t *testing.T) {
	w := &withFixedArray{IDs: [4]uint32{1, 2, 3, 4}}
	got := roundTripBuffer(t, w)
	if got.IDs != w.IDs {
		t.Fatalf("got %+v, want %+v", got.IDs, w.IDs)
	}
}

type withPointSlice struct {
	Points []Point
}

func (w *withPointSlice) Describe(ar Archive) {
	Array(ar, w.Points)
}

func TestArrayOfNonBitCopyableElements(t *testing.T) {
	w := &withPointSlice{Points: []Point{{1, 2}, {3, 4}, {5, 6}}}
	n := MeasureSize(w)
	buf := make([]byte, n)
	WriteIntoBuffer(buf, w)

	got := &withPointSlice{Points: make([]Point, 3)}
	ReadFromBuffer(buf, got)
	for i := range w.Points {
		if got.Points[i] != w.Points[i] {
			t.Fatalf("Points[%d] = %+v, want %+v", i, got.Points[i], w.Points[i])
		}
	}
}
