package mmser

// Mode identifies which of the four archive behaviors a Describe call is
// running under. Unlike the original C++ source, which resolves this at
// compile time via a template parameter, Go resolves it at runtime: every
// concrete archive answers Mode() and the three boolean queries below, and
// container/handler code (Vector[T].Describe in particular) switches on
// them. The invariant that matters is not where the branch happens but that
// every mode produces the identical (length, alignment) sub-operation
// sequence for the same value.
type Mode int

const (
	ModeSize Mode = iota
	ModeWrite
	ModeRead
	ModeMapRead
)

func (m Mode) String() string {
	switch m {
	case ModeSize:
		return "Size"
	case ModeWrite:
		return "Write"
	case ModeRead:
		return "Read"
	case ModeMapRead:
		return "MapRead"
	default:
		return "Mode(?)"
	}
}
