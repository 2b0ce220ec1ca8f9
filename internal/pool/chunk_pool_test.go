package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChunk(t *testing.T) {
	c := NewChunk(1024)

	require.NotNil(t, c)
	assert.Equal(t, 1024, c.Len())
	assert.Equal(t, 1024, cap(c.B))
}

func TestChunk_Resize(t *testing.T) {
	c := NewChunk(1024)

	c.Resize(512)
	assert.Equal(t, 512, c.Len())
	assert.Equal(t, 1024, cap(c.B), "shrinking should keep the allocation")

	c.Resize(4096)
	assert.Equal(t, 4096, c.Len())
	assert.GreaterOrEqual(t, cap(c.B), 4096)

	assert.Panics(t, func() { c.Resize(-1) })
}

func TestChunkPool_GetDefaultSize(t *testing.T) {
	cp := NewChunkPool(256, 0)

	c := cp.Get(0)
	require.NotNil(t, c)
	assert.Equal(t, 256, c.Len())

	c = cp.Get(-5)
	assert.Equal(t, 256, c.Len())
}

func TestChunkPool_GetExplicitSize(t *testing.T) {
	cp := NewChunkPool(256, 0)

	c := cp.Get(100)
	assert.Equal(t, 100, c.Len())
	cp.Put(c)

	c = cp.Get(1000)
	assert.Equal(t, 1000, c.Len())
}

func TestChunkPool_PutNil(t *testing.T) {
	cp := NewChunkPool(256, 0)

	assert.NotPanics(t, func() { cp.Put(nil) })
}

func TestChunkPool_DiscardsOversized(t *testing.T) {
	cp := NewChunkPool(64, 128)

	big := cp.Get(1024)
	cp.Put(big)

	// the oversized chunk was dropped, so the next one is a fresh default chunk
	c := cp.Get(64)
	assert.Equal(t, 64, c.Len())
	assert.LessOrEqual(t, cap(c.B), 128)
}

func TestReadChunk_Default(t *testing.T) {
	c := GetReadChunk(0)
	defer PutReadChunk(c)

	assert.Equal(t, ReadChunkDefaultSize, c.Len())
}

func TestChunkPool_Concurrent(t *testing.T) {
	cp := NewChunkPool(512, 0)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				size := 1 + (i*100+j)%1024
				c := cp.Get(size)
				if c.Len() != size {
					t.Errorf("chunk size = %d, want %d", c.Len(), size)
				}
				c.B[0] = byte(j)
				cp.Put(c)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkChunkPool_GetPut(b *testing.B) {
	cp := NewChunkPool(ReadChunkDefaultSize, ReadChunkMaxThreshold)
	for b.Loop() {
		c := cp.Get(0)
		cp.Put(c)
	}
}
