package mmser

import "fmt"

// MisuseError reports a programmer error: a buffer too small to hold a
// write, a read that ran past the end of its source, a pointer-typed field,
// or a value with neither a Describe method nor a registered Handler. Per
// the library's error taxonomy, misuse is not recoverable data corruption —
// it is always paired with a panic, the same way the teacher's DataError is
// constructed and then wrapped into a panic by its callers.
type MisuseError struct {
	Op  string
	Msg string
}

func (e *MisuseError) Error() string {
	if e.Op == "" {
		return e.Msg
	}
	return fmt.Sprintf("mmser: %s: %s", e.Op, e.Msg)
}

func misusef(op, format string, args ...any) *MisuseError {
	return &MisuseError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

func misuse(op, format string, args ...any) {
	panic(misusef(op, format, args...))
}

// IOError wraps a failure from the file-I/O strategies (open, mmap,
// truncate, read, write, close, unmap). Unlike MisuseError it is returned,
// not panicked: spec.md classifies I/O failure as reportable rather than
// programmer error.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("mmser: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func ioErrf(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}
