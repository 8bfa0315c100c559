package sfx

import (
	"os"
)

// BufferHandle is an opaque reservation in playback device memory. Zero
// is the invalid handle; a load keeps going when a reservation fails and
// leaves the affected side at zero.
type BufferHandle uint32

// SoundMem reserves and fills device resident sample memory.
type SoundMem interface {
	Alloc(size uint32) BufferHandle
	Free(handle BufferHandle)
	Load(handle BufferHandle, data []byte)
}

type Stream interface {
	Read(p []byte) (n int, err error)
	Seek(offset int64, whence int) (ret int64, err error)
	Close() error
}

// FileSystem opens named sample streams. The default implementation goes
// through the host filesystem; callers with packed archives or network
// backends supply their own.
type FileSystem interface {
	Open(name string) (Stream, error)
}

// Mappable is an optional fast path for streams whose whole contents can
// be exposed as a read only view without copying. Loads fall back to
// buffered reads when mapping is unavailable.
type Mappable interface {
	Map() ([]byte, bool)
}

type osFileSystem struct{}

func (osFileSystem) Open(name string) (Stream, error) {
	file, err := os.Open(name)

	if err != nil {
		return nil, err
	}

	return file, nil
}
