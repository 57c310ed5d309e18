// Package pool provides pooled scratch buffers for serialization and dump
// output, so building a record image does not allocate per call.
package pool

import "sync"

const (
	// RecordBufferDefaultSize is the initial capacity of a pooled buffer.
	// Property records are small; a few hundred bytes covers the common case
	// of a dozen fixed headers plus a couple of complex payloads.
	RecordBufferDefaultSize = 512

	// RecordBufferMaxThreshold is the capacity above which a buffer is not
	// returned to the pool, so one oversized picture payload does not pin
	// memory forever.
	RecordBufferMaxThreshold = 64 * 1024
)

// ByteBuffer is a growable byte slice with explicit length control, suitable
// for the two-pass layout where headers are written at fixed positions before
// the trailing payloads exist.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the current length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Write implements io.Writer on top of MustWrite. It never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// SetLength sets the length of the buffer to n, growing the allocation when n
// exceeds the current capacity. Bytes exposed by growth are zeroed.
func (bb *ByteBuffer) SetLength(n int) {
	if n < 0 {
		panic("SetLength: negative length")
	}
	if n <= cap(bb.B) {
		old := len(bb.B)
		bb.B = bb.B[:n]
		for i := old; i < n; i++ {
			bb.B[i] = 0
		}

		return
	}

	grown := make([]byte, n)
	copy(grown, bb.B)
	bb.B = grown
}

var recordBufferPool = sync.Pool{
	New: func() any { return NewByteBuffer(RecordBufferDefaultSize) },
}

// GetRecordBuffer retrieves an empty ByteBuffer from the pool.
// The caller must return it with PutRecordBuffer when done.
func GetRecordBuffer() *ByteBuffer {
	bb, _ := recordBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutRecordBuffer returns a ByteBuffer to the pool. Buffers that grew past
// RecordBufferMaxThreshold are dropped instead of pooled.
func PutRecordBuffer(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > RecordBufferMaxThreshold {
		return
	}
	recordBufferPool.Put(bb)
}
