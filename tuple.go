package mmser

// Tuple2, Tuple3, and Tuple4 are the Go stand-ins for std::tuple<Ts...>:
// Go has no variadic generics, so fixed-arity tuple types cover the same
// ground the original's variadic tuple handler did, component by
// component, in positional order.

type Tuple2[A, B any] struct {
	First  A
	Second B
}

func (t *Tuple2[A, B]) Describe(ar Archive) {
	Value(ar, &t.First)
	Value(ar, &t.Second)
}

type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func (t *Tuple3[A, B, C]) Describe(ar Archive) {
	Value(ar, &t.First)
	Value(ar, &t.Second)
	Value(ar, &t.Third)
}

type Tuple4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

func (t *Tuple4[A, B, C, D]) Describe(ar Archive) {
	Value(ar, &t.First)
	Value(ar, &t.Second)
	Value(ar, &t.Third)
	Value(ar, &t.Fourth)
}
