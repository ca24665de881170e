package mmser

import (
	"os"

	"github.com/mmser-go/mmser/mmap"
)

// Storage is the handle a Load* call returns alongside the decoded value,
// the Go name for the original's move-only StorageHandle. As long as
// Storage is open, any Vector[T] the loaded value aliases (via ModeMapRead)
// remains valid; calling Close invalidates that aliased memory. Copy-loaded
// values never alias anything external, so their Storage is a no-op.
type Storage interface {
	Close() error
}

// mmapStorage keeps a memory-mapped file's backing bytes (and the open
// *os.File beneath it) alive until Close, at which point it unmaps and
// closes the file — the backbone of LoadFileMap.
type mmapStorage struct {
	f    *os.File
	data []byte
}

func (s *mmapStorage) Close() error {
	var firstErr error
	if s.data != nil {
		if err := mmap.Munmap(s.data); err != nil && firstErr == nil {
			firstErr = err
		}
		s.data = nil
	}
	if s.f != nil {
		if err := s.f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		s.f = nil
	}
	return firstErr
}

// scratchStorage is the Storage LoadFileStream returns. It can hold a
// heap-allocated byte slice reachable until Close, but LoadFileStream
// returns it with no slice attached: Go's read archives always copy out of
// their source rather than alias it, so this is purely a
// lifetime-documentation device — Close drops any reference it holds so
// the garbage collector can reclaim it, and never errors.
type scratchStorage struct {
	data []byte
}

func (s *scratchStorage) Close() error {
	s.data = nil
	return nil
}

// noopStorage is returned by the Copy strategies: a Copy-loaded value owns
// every byte it needs already, so there is nothing for Close to release.
type noopStorage struct{}

func (noopStorage) Close() error { return nil }
