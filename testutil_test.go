package mmser

import "testing"

type Point struct {
	X, Y int64
}

func (p *Point) Describe(ar Archive) {
	Value(ar, &p.X)
	Value(ar, &p.Y)
}

type WithString struct {
	Name string
	ID   int32
}

func (w *WithString) Describe(ar Archive) {
	Value(ar, &w.Name)
	Value(ar, &w.ID)
}

type WithVector struct {
	Tag  int32
	Data Vector[uint64]
}

func (w *WithVector) Describe(ar Archive) {
	Value(ar, &w.Tag)
	Value(ar, &w.Data)
}

func roundTripBuffer[T any](t *testing.T, v *T) *T {
	t.Helper()
	n := MeasureSize(v)
	buf := make([]byte, n)
	WriteIntoBuffer(buf, v)
	var got T
	ReadFromBuffer(buf, &got)
	if uint64(len(buf)) != n {
		t.Fatalf("buffer length %d != measured size %d", len(buf), n)
	}
	return &got
}
