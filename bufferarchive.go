package mmser

import "encoding/binary"

// BufferWriteArchive fills a caller-supplied, already-correctly-sized
// buffer — the Go realization of Archive<Mode::Save>. The buffer must be at
// least as large as MeasureSize(v); writing past its end is a MisuseError,
// matching the original's assert(_out.size() <= buffer.size()).
type BufferWriteArchive struct {
	buf       []byte
	totalSize uint64
}

// NewBufferWriteArchive wraps buf for a single Describe replay in ModeWrite.
func NewBufferWriteArchive(buf []byte) *BufferWriteArchive {
	return &BufferWriteArchive{buf: buf}
}

func (a *BufferWriteArchive) Mode() Mode         { return ModeWrite }
func (a *BufferWriteArchive) IsReading() bool    { return false }
func (a *BufferWriteArchive) IsMapReading() bool { return false }
func (a *BufferWriteArchive) IsWriting() bool    { return true }

func (a *BufferWriteArchive) ReserveSize(n int, align uint64) {
	misuse("BufferWriteArchive.ReserveSize", "not valid in ModeWrite")
}

func (a *BufferWriteArchive) EmitAligned(b []byte, align uint64) {
	a.emitRaw(b, align)
}

func (a *BufferWriteArchive) ConsumeAligned(dst []byte, align uint64) {
	misuse("BufferWriteArchive.ConsumeAligned", "not valid in ModeWrite")
}

func (a *BufferWriteArchive) BorrowAligned(align uint64) []byte {
	misuse("BufferWriteArchive.BorrowAligned", "not valid in ModeWrite")
	return nil
}

func (a *BufferWriteArchive) EmitPrefixed(b []byte, align uint64) {
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(b)))
	a.emitRaw(lenBuf[:], 8)
	a.emitRaw(b, align)
}

// emitRaw is EmitAligned without the recursive self-reference, so
// EmitPrefixed can compose two emits without going through the exported
// method twice (the length field, then the payload).
func (a *BufferWriteArchive) emitRaw(b []byte, align uint64) {
	pad := padding(a.totalSize, align)
	a.advance(int(pad))
	if len(b) > int(^uint(0)>>1) {
		misuse("BufferWriteArchive", "length overflow")
	}
	if len(b) > len(a.buf) {
		misuse("BufferWriteArchive", "buffer too small: need %d more bytes, have %d", len(b), len(a.buf))
	}
	copy(a.buf[:len(b)], b)
	a.buf = a.buf[len(b):]
	a.totalSize += pad + uint64(len(b))
}

func (a *BufferWriteArchive) advance(pad int) {
	if pad > len(a.buf) {
		misuse("BufferWriteArchive", "buffer too small for %d bytes of padding", pad)
	}
	a.buf = a.buf[pad:]
}

// BufferReadArchive decodes out of a caller-supplied buffer by copying
// every field, including Vector payloads — the Go realization of
// Archive<Mode::Load>. Unlike the original's documented totalSize
// assignment bug (spec.md §9), this accumulates totalSize on every
// sub-operation, matching every other archive.
type BufferReadArchive struct {
	buf       []byte
	totalSize uint64
}

// NewBufferReadArchive wraps buf for a single Describe replay in ModeRead.
func NewBufferReadArchive(buf []byte) *BufferReadArchive {
	return &BufferReadArchive{buf: buf}
}

func (a *BufferReadArchive) Mode() Mode         { return ModeRead }
func (a *BufferReadArchive) IsReading() bool    { return true }
func (a *BufferReadArchive) IsMapReading() bool { return false }
func (a *BufferReadArchive) IsWriting() bool    { return false }

func (a *BufferReadArchive) ReserveSize(n int, align uint64) {
	misuse("BufferReadArchive.ReserveSize", "not valid in ModeRead")
}

func (a *BufferReadArchive) EmitAligned(b []byte, align uint64) {
	misuse("BufferReadArchive.EmitAligned", "not valid in ModeRead")
}

func (a *BufferReadArchive) ConsumeAligned(dst []byte, align uint64) {
	pad := padding(a.totalSize, align)
	a.skip(int(pad))
	if len(dst) > len(a.buf) {
		misuse("BufferReadArchive", "read past end: need %d bytes, have %d", len(dst), len(a.buf))
	}
	copy(dst, a.buf[:len(dst)])
	a.buf = a.buf[len(dst):]
	a.totalSize += pad + uint64(len(dst))
}

func (a *BufferReadArchive) BorrowAligned(align uint64) []byte {
	var lenBuf [8]byte
	a.ConsumeAligned(lenBuf[:], 8)
	n := binary.LittleEndian.Uint64(lenBuf[:])

	pad := padding(a.totalSize, align)
	a.skip(int(pad))
	if n > uint64(len(a.buf)) {
		misuse("BufferReadArchive", "blob length %d exceeds remaining %d bytes", n, len(a.buf))
	}
	out := make([]byte, n)
	copy(out, a.buf[:n])
	a.buf = a.buf[n:]
	a.totalSize += pad + n
	return out
}

func (a *BufferReadArchive) EmitPrefixed(b []byte, align uint64) {
	misuse("BufferReadArchive.EmitPrefixed", "not valid in ModeRead")
}

func (a *BufferReadArchive) skip(n int) {
	if n > len(a.buf) {
		misuse("BufferReadArchive", "read past end skipping %d padding bytes", n)
	}
	a.buf = a.buf[n:]
}
