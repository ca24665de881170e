package mmser

import (
	"errors"
	"testing"
)

func TestMisuseErrorMessage(t *testing.T) {
	err := misusef("Value", "type %s is unsupported", "Foo")
	want := "mmser: Value: type Foo is unsupported"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestIOErrorUnwrap(t *testing.T) {
	inner := errors.New("disk full")
	err := ioErrf("SaveFileCopy", "/tmp/x", inner)
	if !errors.Is(err, inner) {
		t.Fatal("errors.Is should see through IOError to the wrapped error")
	}
}

func TestIOErrfNilPassthrough(t *testing.T) {
	if ioErrf("op", "path", nil) != nil {
		t.Fatal("ioErrf(..., nil) should return nil")
	}
}

func TestPointerFieldRejected(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic serializing a pointer field")
		}
		if _, ok := r.(*MisuseError); !ok {
			t.Fatalf("expected *MisuseError, got %T", r)
		}
	}()
	var x int32 = 5
	p := &x
	var ar SizeArchive
	Value(&ar, &p)
}

func TestUnregisteredTypeRejected(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for a type with no Describe and no Handler")
		}
	}()
	type opaque struct {
		ch chan int
	}
	var v opaque
	var ar SizeArchive
	Value(&ar, &v)
}
