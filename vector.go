package mmser

import (
	"reflect"
	"unsafe"
)

// Vector is the Go name for mm_vector<T>: a dual-state container that is
// either Borrowed (its view aliases someone else's memory — a memory-mapped
// file, most usefully) or Owned (its view aliases a Go-managed backing
// slice it is responsible for). Every mutating operation promotes a
// Borrowed vector to Owned first, copying the current view into a fresh
// backing slice; a freshly map-read Vector stays Borrowed until the first
// write.
type Vector[T any] struct {
	view  []T
	owned []T
}

// NewVector returns an Owned vector of n zero-valued elements.
func NewVector[T any](n int) Vector[T] {
	owned := make([]T, n)
	return Vector[T]{view: owned, owned: owned}
}

// NewVectorFilled returns an Owned vector of n elements, each set to v.
func NewVectorFilled[T any](n int, v T) Vector[T] {
	owned := make([]T, n)
	for i := range owned {
		owned[i] = v
	}
	return Vector[T]{view: owned, owned: owned}
}

func (v *Vector[T]) Len() int { return len(v.view) }

// IsOwned reports whether the vector currently owns its backing storage.
func (v *Vector[T]) IsOwned() bool { return v.owned != nil }

// At returns the element at index i. Valid in both Borrowed and Owned
// states; it never promotes.
func (v *Vector[T]) At(i int) T { return v.view[i] }

// Set assigns the element at index i, promoting to Owned first if
// Borrowed.
func (v *Vector[T]) Set(i int, val T) {
	v.MakeOwning()
	v.owned[i] = val
}

// Back returns the last element. Panics (MisuseError) on an empty vector.
func (v *Vector[T]) Back() T {
	if len(v.view) == 0 {
		misuse("Vector.Back", "vector is empty")
	}
	return v.view[len(v.view)-1]
}

// PushBack appends val, promoting to Owned first if Borrowed.
func (v *Vector[T]) PushBack(val T) {
	v.MakeOwning()
	v.owned = append(v.owned, val)
	v.view = v.owned
}

// Reserve grows the Owned backing slice's capacity to at least n without
// changing Len, promoting to Owned first if Borrowed.
func (v *Vector[T]) Reserve(n int) {
	v.MakeOwning()
	if cap(v.owned) >= n {
		return
	}
	grown := make([]T, len(v.owned), n)
	copy(grown, v.owned)
	v.owned = grown
	v.view = v.owned
}

// Resize sets Len to n, promoting to Owned first if Borrowed. Growing
// appends zero-valued elements; shrinking truncates.
func (v *Vector[T]) Resize(n int) {
	v.MakeOwning()
	switch {
	case n <= len(v.owned):
		v.owned = v.owned[:n]
	default:
		v.owned = append(v.owned, make([]T, n-len(v.owned))...)
	}
	v.view = v.owned
}

// MakeOwning promotes a Borrowed vector to Owned by copying its current
// view into a fresh backing slice. Idempotent: calling it on an
// already-Owned vector is a no-op.
func (v *Vector[T]) MakeOwning() {
	if v.owned != nil {
		return
	}
	owned := make([]T, len(v.view))
	copy(owned, v.view)
	v.owned = owned
	v.view = owned
}

// Describe replays one of three behaviors depending on ar.Mode():
//
//   - ModeSize / ModeWrite: emit the current view as one length-prefixed
//     byte block at alignof(T).
//   - ModeMapRead: discard any owned backing, borrow the payload directly
//     from the archive (zero-copy), and reinterpret it as a []T view via
//     unsafe.Slice — the vector ends Borrowed, aliasing the mapping.
//   - ModeRead (buffer or stream): borrow the payload, copy it
//     element-wise into a freshly Owned backing slice, and rebuild the
//     view — the vector ends Owned.
//
// T must be bit-copyable; Vector does not support element types with their
// own Describe method (spec.md's container is for flat element data, and a
// non-bit-copyable element type would make the zero-copy aliasing in
// ModeMapRead unsound).
func (v *Vector[T]) Describe(ar Archive) {
	var zero T
	t := reflect.TypeOf(zero)
	if !isBitCopyable(t) {
		misuse("Vector.Describe", "element type %s is not bit-copyable", t)
	}
	elemSize := int(unsafe.Sizeof(zero))
	align := uint64(unsafe.Alignof(zero))

	switch ar.Mode() {
	case ModeSize:
		ar.ReserveSize(8, 8)
		ar.ReserveSize(len(v.view)*elemSize, align)
	case ModeWrite:
		var b []byte
		if len(v.view) > 0 {
			b = unsafe.Slice((*byte)(unsafe.Pointer(&v.view[0])), len(v.view)*elemSize)
		}
		ar.EmitPrefixed(b, align)
	case ModeMapRead:
		v.owned = nil
		data := ar.BorrowAligned(align)
		if len(data) == 0 {
			v.view = nil
			return
		}
		v.view = unsafe.Slice((*T)(unsafe.Pointer(&data[0])), len(data)/elemSize)
	case ModeRead:
		data := ar.BorrowAligned(align)
		n := len(data) / elemSize
		owned := make([]T, n)
		if n > 0 {
			src := unsafe.Slice((*T)(unsafe.Pointer(&data[0])), n)
			copy(owned, src)
		}
		v.owned = owned
		v.view = owned
	default:
		misuse("Vector.Describe", "unknown mode %v", ar.Mode())
	}
}
