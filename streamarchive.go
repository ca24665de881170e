package mmser

import (
	"encoding/binary"
	"io"

	"github.com/mmser-go/mmser/internal/iohelp"
)

// StreamWriteArchive emits a description sequentially to an io.Writer,
// never seeking backward — the file-backed sibling of BufferWriteArchive,
// used by SaveFileStream so a save can run without holding the whole
// serialized form in memory at once. Padding bytes are sourced from a
// reused zero buffer rather than allocated per call.
type StreamWriteArchive struct {
	w         io.Writer
	totalSize uint64
	zero      iohelp.ZeroBuf
}

// NewStreamWriteArchive wraps w for a single Describe replay in ModeWrite.
func NewStreamWriteArchive(w io.Writer) *StreamWriteArchive {
	return &StreamWriteArchive{w: w}
}

func (a *StreamWriteArchive) Mode() Mode         { return ModeWrite }
func (a *StreamWriteArchive) IsReading() bool    { return false }
func (a *StreamWriteArchive) IsMapReading() bool { return false }
func (a *StreamWriteArchive) IsWriting() bool    { return true }

func (a *StreamWriteArchive) ReserveSize(n int, align uint64) {
	misuse("StreamWriteArchive.ReserveSize", "not valid in ModeWrite")
}

func (a *StreamWriteArchive) EmitAligned(b []byte, align uint64) {
	a.emitRaw(b, align)
}

func (a *StreamWriteArchive) ConsumeAligned(dst []byte, align uint64) {
	misuse("StreamWriteArchive.ConsumeAligned", "not valid in ModeWrite")
}

func (a *StreamWriteArchive) BorrowAligned(align uint64) []byte {
	misuse("StreamWriteArchive.BorrowAligned", "not valid in ModeWrite")
	return nil
}

func (a *StreamWriteArchive) EmitPrefixed(b []byte, align uint64) {
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(b)))
	a.emitRaw(lenBuf[:], 8)
	a.emitRaw(b, align)
}

func (a *StreamWriteArchive) emitRaw(b []byte, align uint64) {
	pad := padding(a.totalSize, align)
	if pad > 0 {
		if _, err := a.w.Write(a.zero.Bytes(int(pad))); err != nil {
			misuse("StreamWriteArchive", "writing %d padding bytes: %v", pad, err)
		}
	}
	if len(b) > 0 {
		if _, err := a.w.Write(b); err != nil {
			misuse("StreamWriteArchive", "writing %d bytes: %v", len(b), err)
		}
	}
	a.totalSize += pad + uint64(len(b))
}

// StreamReadArchive decodes a description sequentially from an io.Reader,
// never seeking backward — the file-backed sibling of BufferReadArchive,
// used by LoadFileStream. Every field, including Vector payloads, is copied
// into freshly allocated Go memory; streaming never aliases.
type StreamReadArchive struct {
	r         io.Reader
	totalSize uint64
	zero      iohelp.ZeroBuf
}

// NewStreamReadArchive wraps r for a single Describe replay in ModeRead.
func NewStreamReadArchive(r io.Reader) *StreamReadArchive {
	return &StreamReadArchive{r: r}
}

func (a *StreamReadArchive) Mode() Mode         { return ModeRead }
func (a *StreamReadArchive) IsReading() bool    { return true }
func (a *StreamReadArchive) IsMapReading() bool { return false }
func (a *StreamReadArchive) IsWriting() bool    { return false }

func (a *StreamReadArchive) ReserveSize(n int, align uint64) {
	misuse("StreamReadArchive.ReserveSize", "not valid in ModeRead")
}

func (a *StreamReadArchive) EmitAligned(b []byte, align uint64) {
	misuse("StreamReadArchive.EmitAligned", "not valid in ModeRead")
}

func (a *StreamReadArchive) ConsumeAligned(dst []byte, align uint64) {
	pad := padding(a.totalSize, align)
	if pad > 0 {
		if _, err := io.ReadFull(a.r, a.zero.Bytes(int(pad))); err != nil {
			misuse("StreamReadArchive", "skipping %d padding bytes: %v", pad, err)
		}
	}
	if len(dst) > 0 {
		if _, err := io.ReadFull(a.r, dst); err != nil {
			misuse("StreamReadArchive", "reading %d bytes: %v", len(dst), err)
		}
	}
	a.totalSize += pad + uint64(len(dst))
}

func (a *StreamReadArchive) BorrowAligned(align uint64) []byte {
	var lenBuf [8]byte
	a.ConsumeAligned(lenBuf[:], 8)
	n := binary.LittleEndian.Uint64(lenBuf[:])

	out := make([]byte, n)
	a.ConsumeAligned(out, align)
	return out
}

func (a *StreamReadArchive) EmitPrefixed(b []byte, align uint64) {
	misuse("StreamReadArchive.EmitPrefixed", "not valid in ModeRead")
}
