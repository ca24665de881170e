package mmser

import (
	"bufio"
	"log/slog"
	"os"

	"github.com/mmser-go/mmser/mmap"
)

// Options configures the file-I/O strategies. The zero value is usable: no
// mmap access hint, a 1 MiB stream buffer size, and slog.Default() as the
// logger.
type Options struct {
	// MmapAccess is an mmap.Options access-pattern hint (SequentialAccess,
	// RandomAccess, Prefault); Writable is set internally as needed and
	// any Writable bit passed here is ignored.
	MmapAccess mmap.Options

	// StreamChunkSize is the buffer size of the bufio.Writer used by
	// SaveFileStream and of the bufio.Reader used by LoadFileStream. Zero
	// selects 1 MiB.
	StreamChunkSize int

	// Logger defaults to slog.Default(). None of the file strategies in
	// this file writes to it; their failures are returned as *IOError.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) chunkSize() int {
	if o.StreamChunkSize > 0 {
		return o.StreamChunkSize
	}
	return 1 << 20
}

// WriteIntoBuffer replays v's Describe under ModeWrite into buf, which must
// be at least MeasureSize(v) bytes.
func WriteIntoBuffer[T any](buf []byte, v *T) {
	ar := NewBufferWriteArchive(buf)
	Value[T](ar, v)
}

// ReadFromBuffer replays v's Describe under ModeRead against buf, copying
// every field (including Vector payloads) into freshly allocated memory.
func ReadFromBuffer[T any](buf []byte, v *T) {
	ar := NewBufferReadArchive(buf)
	Value[T](ar, v)
}

// SaveFileCopy measures v, fills an in-memory buffer, and writes it to path
// in one os.WriteFile call.
func SaveFileCopy[T any](path string, v *T, opt Options) error {
	n := MeasureSize(v)
	buf := make([]byte, n)
	WriteIntoBuffer(buf, v)
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return ioErrf("SaveFileCopy", path, err)
	}
	return nil
}

// SaveFileStream replays v's Describe directly against a buffered writer
// over path, never holding the whole serialized form in memory at once.
func SaveFileStream[T any](path string, v *T, opt Options) error {
	f, err := os.Create(path)
	if err != nil {
		return ioErrf("SaveFileStream", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriterSize(f, opt.chunkSize())
	ar := NewStreamWriteArchive(bw)

	if err := callDescribe(ar, v); err != nil {
		return ioErrf("SaveFileStream", path, err)
	}
	if err := bw.Flush(); err != nil {
		return ioErrf("SaveFileStream", path, err)
	}
	if err := f.Sync(); err != nil {
		return ioErrf("SaveFileStream", path, err)
	}
	return nil
}

// SaveFileMap measures v, truncates path to that size, maps it writable,
// replays v's Describe directly into the mapping, and unmaps.
func SaveFileMap[T any](path string, v *T, opt Options) error {
	n := MeasureSize(v)

	f, err := os.Create(path)
	if err != nil {
		return ioErrf("SaveFileMap", path, err)
	}
	defer f.Close()

	if n == 0 {
		return nil
	}

	if err := f.Truncate(int64(n)); err != nil {
		return ioErrf("SaveFileMap", path, err)
	}

	data, err := mmap.Mmap(f, 0, int(n), opt.MmapAccess|mmap.Writable)
	if err != nil {
		return ioErrf("SaveFileMap", path, err)
	}
	WriteIntoBuffer(data, v)
	if err := mmap.Munmap(data); err != nil {
		return ioErrf("SaveFileMap", path, err)
	}
	return nil
}

// LoadFileCopy reads path fully into memory and decodes it with
// ReadFromBuffer. The returned Storage is a no-op: the decoded value owns
// everything.
func LoadFileCopy[T any](path string, opt Options) (*T, Storage, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, ioErrf("LoadFileCopy", path, err)
	}
	var v T
	ReadFromBuffer(buf, &v)
	return &v, noopStorage{}, nil
}

// LoadFileStream reads path through a buffered reader and decodes it with
// a StreamReadArchive. Like LoadFileCopy, nothing in the result aliases the
// file; the returned Storage just releases the scratch buffer reference.
func LoadFileStream[T any](path string, opt Options) (*T, Storage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, ioErrf("LoadFileStream", path, err)
	}
	defer f.Close()

	br := bufio.NewReaderSize(f, opt.chunkSize())
	ar := NewStreamReadArchive(br)

	var v T
	if err := callDescribe(ar, &v); err != nil {
		return nil, nil, ioErrf("LoadFileStream", path, err)
	}
	return &v, &scratchStorage{}, nil
}

// LoadFileMap maps path read-only and replays v's Describe under
// ModeMapRead directly against the mapping: any Vector[T] field ends up
// aliasing the mapped bytes with no copy. The returned Storage must be kept
// open for as long as the decoded value (or anything derived from it) is
// used; Close unmaps and closes the file.
func LoadFileMap[T any](path string, opt Options) (*T, Storage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, ioErrf("LoadFileMap", path, err)
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, ioErrf("LoadFileMap", path, err)
	}

	size := int(st.Size())
	var v T
	if size == 0 {
		f.Close()
		ReadViaMap(nil, &v)
		return &v, noopStorage{}, nil
	}

	data, err := mmap.Mmap(f, 0, size, opt.MmapAccess&^mmap.Writable)
	if err != nil {
		f.Close()
		return nil, nil, ioErrf("LoadFileMap", path, err)
	}

	if err := callDescribeMap(&v, data); err != nil {
		mmap.Munmap(data)
		f.Close()
		return nil, nil, ioErrf("LoadFileMap", path, err)
	}

	return &v, &mmapStorage{f: f, data: data}, nil
}

// SaveFile picks the mmap-backed strategy on unix builds (build tag unix)
// and the streaming strategy on every other platform, Windows included.
func SaveFile[T any](path string, v *T, opt Options) error {
	return saveFileDefault(path, v, opt)
}

// LoadFile picks the mmap-backed strategy on unix builds (build tag unix)
// and the streaming strategy on every other platform, Windows included.
func LoadFile[T any](path string, opt Options) (*T, Storage, error) {
	return loadFileDefault[T](path, opt)
}

// callDescribe recovers a MisuseError panic (e.g. a short write mid-stream)
// into a returned error, since the stream archives run entirely inside the
// library's own Value/Describe dispatch and a panic there should surface to
// the file-I/O wrapper's caller as a normal error, not a crash.
func callDescribe[T any](ar Archive, v *T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if me, ok := r.(*MisuseError); ok {
				err = me
				return
			}
			panic(r)
		}
	}()
	Value[T](ar, v)
	return nil
}

func callDescribeMap[T any](v *T, data []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if me, ok := r.(*MisuseError); ok {
				err = me
				return
			}
			panic(r)
		}
	}()
	ReadViaMap(data, v)
	return nil
}
