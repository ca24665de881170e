//go:build unix

package mmser

// On unix, where mmser/mmap's real syscalls are wired, SaveFile/LoadFile
// default to the Map strategy, matching spec.md §4.6's platform rule.
func saveFileDefault[T any](path string, v *T, opt Options) error {
	return SaveFileMap(path, v, opt)
}

func loadFileDefault[T any](path string, opt Options) (*T, Storage, error) {
	return LoadFileMap[T](path, opt)
}
