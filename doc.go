/*
Package mmser implements zero-copy, memory-mapped binary serialization.

A type participates by implementing Describable and issuing a sequence of
Value/Array calls against whatever Archive it's handed:

	type Point struct {
		X, Y int64
	}

	func (p *Point) Describe(ar mmser.Archive) {
		mmser.Value(ar, &p.X)
		mmser.Value(ar, &p.Y)
	}

The SAME Describe method, replayed against four different Archive
implementations, computes a size, writes bytes, reads bytes, or maps bytes
in place:

	n := mmser.MeasureSize(&p)
	buf := make([]byte, n)
	mmser.WriteIntoBuffer(buf, &p)
	var p2 Point
	mmser.ReadFromBuffer(buf, &p2)

# On-disk layout

Bytes are the concatenation of each sub-operation in Describe order, each
preceded by zero-valued padding bringing the running offset to a multiple of
that sub-operation's alignment. There is no header, footer, type tag, or
trailing sentinel, and the format is native byte order / native type width:
it is not meant to travel between architectures.

# Zero-copy loads

Vector[T] is the container whose whole purpose is to let a load alias bytes
of a memory-mapped file directly, with no copy — see LoadFileMap and
Vector's own doc comment for the Borrowed/Owned state machine this requires.

Pointer-typed fields are rejected: this library does not serialize pointer
graphs.
*/
package mmser
