package pool

import (
	"io"
	"sync"
)

// Default sizes of pooled buffers.
const (
	DocumentBufferDefaultSize  = 1024 * 16       // 16KiB
	DocumentBufferMaxThreshold = 1024 * 1024 * 4 // 4MiB
	IndexBufferDefaultSize     = 1024 * 2        // 2KiB
	IndexBufferMaxThreshold    = 1024 * 256      // 256KiB
)

// ByteBuffer is an append-only byte buffer used while rendering text output.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Clone returns a copy of the buffer contents that outlives the buffer.
func (bb *ByteBuffer) Clone() []byte {
	out := make([]byte, len(bb.B))
	copy(out, bb.B)

	return out
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Truncate discards all but the first n bytes.
// Panics if n is negative or greater than the length.
func (bb *ByteBuffer) Truncate(n int) {
	if n < 0 || n > len(bb.B) {
		panic("Truncate: invalid length")
	}
	bb.B = bb.B[:n]
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteString appends s to the buffer.
func (bb *ByteBuffer) WriteString(s string) (int, error) {
	bb.B = append(bb.B, s...)
	return len(s), nil
}

// WriteByte appends c to the buffer.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally to manage the buffers.
// The pool can be configured with a maximum size threshold to avoid retaining
// overly large buffers that could lead to memory bloat.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		// Discard overly large buffers to prevent memory bloat
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	documentDefaultPool = NewByteBufferPool(DocumentBufferDefaultSize, DocumentBufferMaxThreshold)
	indexDefaultPool    = NewByteBufferPool(IndexBufferDefaultSize, IndexBufferMaxThreshold)
)

// GetDocumentBuffer retrieves a ByteBuffer sized for compact documents.
func GetDocumentBuffer() *ByteBuffer {
	return documentDefaultPool.Get()
}

// PutDocumentBuffer returns a ByteBuffer to the compact document pool.
func PutDocumentBuffer(bb *ByteBuffer) {
	documentDefaultPool.Put(bb)
}

// GetIndexBuffer retrieves a ByteBuffer sized for index documents.
func GetIndexBuffer() *ByteBuffer {
	return indexDefaultPool.Get()
}

// PutIndexBuffer returns a ByteBuffer to the index document pool.
func PutIndexBuffer(bb *ByteBuffer) {
	indexDefaultPool.Put(bb)
}
