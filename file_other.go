//go:build !unix

package mmser

// Off unix, SaveFile/LoadFile use the streaming strategy. This includes
// Windows: mmser/mmap has a Windows mapping implementation, but the default
// strategies do not use it there.
func saveFileDefault[T any](path string, v *T, opt Options) error {
	return SaveFileStream(path, v, opt)
}

func loadFileDefault[T any](path string, opt Options) (*T, Storage, error) {
	return LoadFileStream[T](path, opt)
}
