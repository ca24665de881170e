package mmser

import "testing"

func TestTuple2RoundTrip(t *testing.T) {
	tup := &Tuple2[int32, int64]{First: 5, Second: -100}
	got := roundTripBuffer(t, tup)
	if got.First != tup.First || got.Second != tup.Second {
		t.Fatalf("got %+v, want %+v", *got, *tup)
	}
}

func TestTuple3WithString(t *testing.T) {
	tup := &Tuple3[int32, string, uint8]{First: 1, Second: "three", Third: 3}
	got := roundTripBuffer(t, tup)
	if got.First != tup.First || got.Second != tup.Second || got.Third != tup.Third {
		t.Fatalf("got %+v, want %+v", *got, *tup)
	}
}

func TestTuple4RoundTrip(t *testing.T) {
	tup := &Tuple4[int8, int16, int32, int64]{First: 1, Second: 2, Third: 3, Fourth: 4}
	got := roundTripBuffer(t, tup)
	if *got != *tup {
		t.Fatalf("got %+v, want %+v", *got, *tup)
	}
}

func TestNestedTuple(t *testing.T) {
	type nested = Tuple2[Tuple2[int32, int32], int64]
	tup := &nested{
		First:  Tuple2[int32, int32]{First: 1, Second: 2},
		Second: 3,
	}
	got := roundTripBuffer(t, tup)
	if *got != *tup {
		t.Fatalf("got %+v, want %+v", *got, *tup)
	}
}
