package mmser

import (
	"reflect"
	"unsafe"
)

// Array serializes a fixed-length array or any contiguous run of T whose
// length is tracked elsewhere by the caller (the description for a [N]T
// field passes arr[:]; a []T field passes the slice itself). If T is
// bit-copyable the whole run is emitted as one aligned byte block with no
// length prefix (the Go realization of Handler<std::array<T,N>> and
// Handler<std::span<T>>); otherwise each element is serialized on its own
// via Value.
func Array[T any](ar Archive, s []T) {
	var zero T
	t := reflect.TypeOf(zero)
	if !isBitCopyable(t) {
		for i := range s {
			Value(ar, &s[i])
		}
		return
	}

	size := int(unsafe.Sizeof(zero)) * len(s)
	align := uint64(unsafe.Alignof(zero))

	switch ar.Mode() {
	case ModeSize:
		ar.ReserveSize(size, align)
	case ModeWrite:
		var b []byte
		if len(s) > 0 {
			b = unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), size)
		}
		ar.EmitAligned(b, align)
	case ModeRead, ModeMapRead:
		var b []byte
		if len(s) > 0 {
			b = unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), size)
		}
		ar.ConsumeAligned(b, align)
	default:
		misuse("Array", "unknown mode %v", ar.Mode())
	}
}
