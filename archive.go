package mmser

import (
	"reflect"
	"sync"
	"unsafe"
)

// Archive is the single interface every concrete archive (SizeArchive,
// BufferWriteArchive, BufferReadArchive, MapReadArchive, StreamWriteArchive,
// StreamReadArchive) implements. A Describe method is written once against
// this interface and replayed under all six concrete archives; which
// sub-operations are valid depends on Mode(), and calling the wrong one for
// the current mode is a MisuseError panic, not a compile error — see
// mode.go's doc comment and DESIGN.md for why Go resolves this at
// runtime rather than at compile time the way the C++ source does.
type Archive interface {
	Mode() Mode
	IsReading() bool
	IsMapReading() bool
	IsWriting() bool

	// ReserveSize accounts for n bytes at the given alignment without
	// producing or consuming any bytes. Valid only in ModeSize.
	ReserveSize(n int, align uint64)

	// EmitAligned writes b after padding the running offset to align.
	// Valid only in ModeWrite.
	EmitAligned(b []byte, align uint64)

	// ConsumeAligned reads len(dst) bytes into dst after skipping padding
	// to align. Valid in both ModeRead and ModeMapRead: a plain scalar
	// field lives in the Describable's own struct, not in the mapping, so
	// even a map-reading archive copies it out byte-for-byte — only
	// BorrowAligned's length-prefixed blobs get aliased in place.
	ConsumeAligned(dst []byte, align uint64)

	// BorrowAligned skips an 8-byte little-endian length prefix (itself
	// 8-byte aligned), then pads to align and returns the next n bytes,
	// where n is the decoded length. Valid on all three read archives
	// (BufferRead and StreamRead in ModeRead, MapRead in ModeMapRead);
	// MapRead aliases directly into the backing mapping, the other two
	// return a freshly allocated slice the caller copies out of.
	BorrowAligned(align uint64) []byte

	// EmitPrefixed writes an 8-byte little-endian length for len(b),
	// itself 8-byte aligned, then b at align. Valid only in ModeWrite.
	EmitPrefixed(b []byte, align uint64)
}

// Describable is implemented by any type whose layout this library knows how
// to serialize. Implementations are expected on a pointer receiver, issuing
// Value/Array calls in field order; the same method runs under every Mode.
type Describable interface {
	Describe(ar Archive)
}

var handlers sync.Map // map[reflect.Type]func(Archive, unsafe.Pointer)

// RegisterHandler installs a tier-2 handler for T, used by Value whenever
// *T does not implement Describable. fn receives the archive and a pointer
// to the value being serialized. The string handler in string.go is
// installed this way in an init() func; callers may register handlers for
// their own non-Describable types the same way.
func RegisterHandler[T any](fn func(ar Archive, v *T)) {
	var zero T
	t := reflect.TypeOf(zero)
	handlers.Store(t, func(ar Archive, p unsafe.Pointer) {
		fn(ar, (*T)(p))
	})
}

var bitCopyable sync.Map // map[reflect.Type]bool

// isBitCopyable reports whether t's values can be serialized as a raw byte
// block: numeric/bool/complex scalars, and fixed-size arrays whose element
// type is itself bit-copyable (recursively). The result is cached per
// reflect.Type the same way the teacher's encflat.go caches flatEncodings,
// since reflect.Kind switches are not free and Value is called per field.
func isBitCopyable(t reflect.Type) bool {
	if cached, ok := bitCopyable.Load(t); ok {
		return cached.(bool)
	}
	ok := computeBitCopyable(t)
	bitCopyable.Store(t, ok)
	return ok
}

func computeBitCopyable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return isBitCopyable(t.Elem())
	default:
		return false
	}
}

// Value serializes (or deserializes, or measures, depending on ar.Mode())
// the value pointed to by v, dispatching in four tiers:
//
//  1. *T implements Describable: v.Describe(ar).
//  2. A handler registered via RegisterHandler[T] exists for T.
//  3. T is a bit-copyable scalar (or fixed array of such): treated as a raw
//     byte block of size unsafe.Sizeof(*v) at alignment unsafe.Alignof(*v).
//  4. Otherwise: MisuseError panic.
//
// Pointer-typed T is rejected unconditionally before any tier runs: this
// library never serializes pointer graphs.
func Value[T any](ar Archive, v *T) {
	t := reflect.TypeOf(*v)
	if t != nil && t.Kind() == reflect.Ptr {
		misuse("Value", "type %s is a pointer; mmser does not serialize pointer graphs", t)
	}

	if d, ok := any(v).(Describable); ok {
		d.Describe(ar)
		return
	}

	if fn, ok := handlers.Load(t); ok {
		fn.(func(Archive, unsafe.Pointer))(ar, unsafe.Pointer(v))
		return
	}

	if isBitCopyable(t) {
		scalar(ar, v)
		return
	}

	misuse("Value", "type %s has no Describe method and no registered Handler", t)
}

// scalar handles tier 3: a bit-copyable T reinterpreted as its own raw
// bytes. Grounded in the same unsafe.Slice technique the teacher's
// mmap_windows.go uses to reinterpret a mapped region as a []byte.
func scalar[T any](ar Archive, v *T) {
	size := unsafe.Sizeof(*v)
	align := uint64(unsafe.Alignof(*v))

	switch ar.Mode() {
	case ModeSize:
		ar.ReserveSize(int(size), align)
	case ModeWrite:
		b := unsafe.Slice((*byte)(unsafe.Pointer(v)), size)
		ar.EmitAligned(b, align)
	case ModeRead, ModeMapRead:
		b := unsafe.Slice((*byte)(unsafe.Pointer(v)), size)
		ar.ConsumeAligned(b, align)
	default:
		misuse("Value", "unknown mode %v", ar.Mode())
	}
}
