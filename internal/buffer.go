package internal

import (
	"bytes"
	"sync"
)

// BufferPool hands out reusable byte buffers for encoding request and
// response bodies.
type BufferPool struct {
	pool sync.Pool
	// buffers that grew beyond this are dropped instead of pooled
	maxRetained int
}

// NewBufferPool creates a pool whose buffers start at initialCapacity bytes.
func NewBufferPool(initialCapacity int) *BufferPool {
	if initialCapacity <= 0 {
		initialCapacity = 2048
	}

	return &BufferPool{
		maxRetained: 64 * initialCapacity,
		pool: sync.Pool{
			New: func() any {
				return bytes.NewBuffer(make([]byte, 0, initialCapacity))
			},
		},
	}
}

// Get retrieves an empty buffer from the pool
func (bp *BufferPool) Get() *bytes.Buffer {
	return bp.pool.Get().(*bytes.Buffer)
}

// Put resets buf and returns it to the pool.
func (bp *BufferPool) Put(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > bp.maxRetained {
		return
	}
	buf.Reset()
	bp.pool.Put(buf)
}

// GetBytes runs fn on a pooled buffer and returns a copy of what it wrote.
func (bp *BufferPool) GetBytes(fn func(*bytes.Buffer) error) ([]byte, error) {
	buf := bp.Get()
	defer bp.Put(buf)

	if err := fn(buf); err != nil {
		return nil, err
	}

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())

	return result, nil
}
