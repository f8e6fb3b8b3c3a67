package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, bb.Cap())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(ScratchBufferDefaultSize)
	bb.B = append(bb.B, []byte("some data")...)
	originalCap := bb.Cap()

	require.Equal(t, []byte("some data"), bb.Bytes())

	bb.Reset()

	assert.Equal(t, 0, bb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, bb.Cap(), "Reset should preserve capacity")
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(64, 0)

	bb := p.Get()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	bb.B = append(bb.B, 1, 2, 3)
	p.Put(bb)

	again := p.Get()
	require.NotNil(t, again)
	require.Equal(t, 0, again.Len(), "pooled buffers must come back empty")
}

func TestByteBufferPool_PutNil(t *testing.T) {
	p := NewByteBufferPool(64, 0)
	require.NotPanics(t, func() { p.Put(nil) })
}

func TestByteBufferPool_DropsOversized(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	big := NewByteBuffer(128)
	big.B = append(big.B, 1)
	p.Put(big)

	// The oversized buffer is not reset because it was never pooled.
	require.Equal(t, 1, big.Len())
}

func TestScratchBuffer_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			bb := GetScratchBuffer()
			defer PutScratchBuffer(bb)

			for range 100 {
				bb.B = append(bb.B, byte(n))
			}
			assert.Equal(t, 100, bb.Len())
		}(i)
	}
	wg.Wait()
}

func BenchmarkScratchBuffer(b *testing.B) {
	for b.Loop() {
		bb := GetScratchBuffer()
		bb.B = append(bb.B, make([]byte, 256)...)
		PutScratchBuffer(bb)
	}
}
