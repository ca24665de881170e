package mmser

func init() {
	RegisterHandler(describeString)
}

// describeString is the tier-2 Handler for string: a length-prefixed
// (8-byte count) run of bytes at alignment 1, mirroring Handler<std::string>
// in original_source/src/mmser/std/string.h. Strings are never borrowed —
// even under ModeMapRead the payload is copied into a fresh Go string,
// since Go strings are immutable and cannot alias a mapping's bytes without
// defeating that immutability guarantee the rest of the language assumes.
func describeString(ar Archive, v *string) {
	switch ar.Mode() {
	case ModeSize:
		ar.ReserveSize(8, 8)
		ar.ReserveSize(len(*v), 1)
	case ModeWrite:
		ar.EmitPrefixed([]byte(*v), 1)
	case ModeRead, ModeMapRead:
		b := ar.BorrowAligned(1)
		*v = string(b)
	default:
		misuse("Value", "unknown mode %v", ar.Mode())
	}
}
