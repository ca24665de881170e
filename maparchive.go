package mmser

import "encoding/binary"

// MapReadArchive reads out of a memory-mapped (or otherwise
// caller-owned, long-lived) buffer — the Go realization of
// Archive<Mode::LoadMMap>. Plain scalar fields are still copied (they live
// in the Describable's own struct, not the mapping); BorrowAligned, used by
// Vector[T] and by the string handler (which copies out of it), returns a
// slice that aliases buf directly with no copy, which is the entire point
// of this archive.
type MapReadArchive struct {
	buf       []byte
	totalSize uint64
}

// NewMapReadArchive wraps buf (typically a memory-mapped file's contents)
// for a single Describe replay in ModeMapRead. The caller is responsible
// for keeping buf alive for as long as any Vector[T] aliasing it is in use.
func NewMapReadArchive(buf []byte) *MapReadArchive {
	return &MapReadArchive{buf: buf}
}

func (a *MapReadArchive) Mode() Mode         { return ModeMapRead }
func (a *MapReadArchive) IsReading() bool    { return true }
func (a *MapReadArchive) IsMapReading() bool { return true }
func (a *MapReadArchive) IsWriting() bool    { return false }

func (a *MapReadArchive) ReserveSize(n int, align uint64) {
	misuse("MapReadArchive.ReserveSize", "not valid in ModeMapRead")
}

func (a *MapReadArchive) EmitAligned(b []byte, align uint64) {
	misuse("MapReadArchive.EmitAligned", "not valid in ModeMapRead")
}

func (a *MapReadArchive) ConsumeAligned(dst []byte, align uint64) {
	pad := padding(a.totalSize, align)
	a.skip(int(pad))
	if len(dst) > len(a.buf) {
		misuse("MapReadArchive", "read past end: need %d bytes, have %d", len(dst), len(a.buf))
	}
	copy(dst, a.buf[:len(dst)])
	a.buf = a.buf[len(dst):]
	a.totalSize += pad + uint64(len(dst))
}

func (a *MapReadArchive) BorrowAligned(align uint64) []byte {
	var lenBuf [8]byte
	a.ConsumeAligned(lenBuf[:], 8)
	n := binary.LittleEndian.Uint64(lenBuf[:])

	pad := padding(a.totalSize, align)
	a.skip(int(pad))
	if n > uint64(len(a.buf)) {
		misuse("MapReadArchive", "blob length %d exceeds remaining %d bytes", n, len(a.buf))
	}
	out := a.buf[:n:n]
	a.buf = a.buf[n:]
	a.totalSize += pad + n
	return out
}

func (a *MapReadArchive) EmitPrefixed(b []byte, align uint64) {
	misuse("MapReadArchive.EmitPrefixed", "not valid in ModeMapRead")
}

func (a *MapReadArchive) skip(n int) {
	if n > len(a.buf) {
		misuse("MapReadArchive", "read past end skipping %d padding bytes", n)
	}
	a.buf = a.buf[n:]
}

// ReadViaMap replays v's Describe under ModeMapRead against buf, aliasing
// any Vector[T] fields directly into buf with no copy. buf must outlive v
// (or whatever eventually takes ownership of it via Storage).
func ReadViaMap[T any](buf []byte, v *T) {
	ar := NewMapReadArchive(buf)
	Value[T](ar, v)
}
