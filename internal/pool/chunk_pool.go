package pool

import "sync"

// Read chunk sizes for streaming consumers.
const (
	ReadChunkDefaultSize  = 1024 * 128      // 128KiB
	ReadChunkMaxThreshold = 1024 * 1024 * 4 // 4MiB
)

// Chunk is a fixed-length read buffer.
type Chunk struct {
	// B is the underlying byte slice. Its length is the usable chunk size.
	B []byte
}

// NewChunk creates a new Chunk of the specified size.
func NewChunk(size int) *Chunk {
	return &Chunk{
		B: make([]byte, size),
	}
}

// Len returns the usable size of the chunk.
func (c *Chunk) Len() int {
	return len(c.B)
}

// Resize makes the chunk exactly size bytes long, reallocating only when the
// current capacity is too small.
func (c *Chunk) Resize(size int) {
	if size < 0 {
		panic("Resize: invalid size")
	}

	if cap(c.B) < size {
		c.B = make([]byte, size)
		return
	}

	c.B = c.B[:size]
}

// ChunkPool is a pool of Chunks to minimize allocations for repeated reads.
//
// Chunks larger than maxThreshold are discarded on Put so that a single large read
// cannot pin memory for the lifetime of the pool.
type ChunkPool struct {
	pool         sync.Pool
	defaultSize  int
	maxThreshold int
}

// NewChunkPool creates a new ChunkPool handing out chunks of defaultSize bytes.
func NewChunkPool(defaultSize int, maxThreshold int) *ChunkPool {
	return &ChunkPool{
		pool: sync.Pool{
			New: func() any {
				return NewChunk(defaultSize)
			},
		},
		defaultSize:  defaultSize,
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a chunk of exactly size bytes. A non-positive size selects the
// pool's default size.
func (cp *ChunkPool) Get(size int) *Chunk {
	if size <= 0 {
		size = cp.defaultSize
	}

	c, _ := cp.pool.Get().(*Chunk)
	c.Resize(size)

	return c
}

// Put returns a Chunk to the pool for reuse.
func (cp *ChunkPool) Put(c *Chunk) {
	if c == nil {
		return
	}

	if cp.maxThreshold > 0 && cap(c.B) > cp.maxThreshold {
		return
	}

	cp.pool.Put(c)
}

var readDefaultPool = NewChunkPool(ReadChunkDefaultSize, ReadChunkMaxThreshold)

// GetReadChunk retrieves a chunk of size bytes from the default read pool.
func GetReadChunk(size int) *Chunk {
	return readDefaultPool.Get(size)
}

// PutReadChunk returns a chunk to the default read pool.
func PutReadChunk(c *Chunk) {
	readDefaultPool.Put(c)
}
