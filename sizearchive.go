package mmser

// SizeArchive computes the number of bytes a description would emit,
// without writing anything — the Go realization of Archive<Mode::SaveSize>.
// It is also the mechanism EmitPrefixed's own length field goes through:
// ReserveSize is called once for the 8-byte count, then once more for the
// payload, exactly mirroring storeSizeMMap in original_source's Archive.h.
type SizeArchive struct {
	totalSize uint64
}

func (a *SizeArchive) Mode() Mode         { return ModeSize }
func (a *SizeArchive) IsReading() bool    { return false }
func (a *SizeArchive) IsMapReading() bool { return false }
func (a *SizeArchive) IsWriting() bool    { return false }
func (a *SizeArchive) Size() uint64       { return a.totalSize }

func (a *SizeArchive) ReserveSize(n int, align uint64) {
	a.totalSize += padding(a.totalSize, align) + uint64(n)
}

func (a *SizeArchive) EmitAligned(b []byte, align uint64) {
	misuse("SizeArchive.EmitAligned", "not valid in ModeSize; use ReserveSize")
}

func (a *SizeArchive) ConsumeAligned(dst []byte, align uint64) {
	misuse("SizeArchive.ConsumeAligned", "not valid in ModeSize")
}

func (a *SizeArchive) BorrowAligned(align uint64) []byte {
	misuse("SizeArchive.BorrowAligned", "not valid in ModeSize")
	return nil
}

func (a *SizeArchive) EmitPrefixed(b []byte, align uint64) {
	misuse("SizeArchive.EmitPrefixed", "not valid in ModeSize; use ReserveSize twice")
}

// MeasureSize returns the byte count Describe(v) would produce under
// ModeWrite.
func MeasureSize[T any](v *T) uint64 {
	var ar SizeArchive
	Value[T](&ar, v)
	return ar.totalSize
}
