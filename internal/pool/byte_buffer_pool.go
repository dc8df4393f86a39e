// Package pool provides a pooled, growable output buffer for the encoder.
//
// ByteBuffer extends a plain []byte with the two layers of append
// operation the encoder core needs: checked operations that grow the
// backing array on demand, and unchecked "nocheck" fast-path appenders
// that assume a prior Grow already covers their write.
package pool

import (
	"math"
	"sync"

	"github.com/serealgo/sereal/endian"
)

// BufferDefaultSize is the default capacity of a ByteBuffer obtained from the pool.
const (
	BufferDefaultSize  = 1024       // INITIAL_BUFFER_SIZE from the wire spec
	BufferMaxThreshold = 1024 * 128 // buffers larger than this are not returned to the pool
)

// ByteBuffer is a growable byte region with a write cursor implicit in len(B).
//
// Offsets into B remain valid across Grow calls: Grow only ever
// reallocates to a larger backing array and copies the existing
// prefix, it never shrinks or moves logical positions.
type ByteBuffer struct {
	// B is the underlying byte slice; bytes [0:len(B)) are valid output.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice written so far.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Snapshot copies the written bytes out into a new, independently owned slice.
//
// Callers that hand a buffer back to the pool (Reset) must take a
// Snapshot first if they intend to keep the encoded bytes: Reset
// truncates B in place and a pooled buffer may be reused (and
// overwritten) by the next caller to Get it.
func (bb *ByteBuffer) Snapshot() []byte {
	out := make([]byte, len(bb.B))
	copy(out, bb.B)

	return out
}

// Reset truncates the buffer to zero length, retaining the backing array for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of bytes written so far (the write cursor).
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the buffer's current capacity.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Slice returns B[start:end]. Panics if the indices are out of bounds.
func (bb *ByteBuffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(bb.B) {
		panic("pool: Slice: invalid indices")
	}

	return bb.B[start:end]
}

// SetLength sets len(B) to n without touching the backing array's contents.
func (bb *ByteBuffer) SetLength(n int) {
	if n < 0 || n > cap(bb.B) {
		panic("pool: SetLength: invalid length")
	}
	bb.B = bb.B[:n]
}

// Grow ensures the buffer can hold requiredBytes more bytes without reallocating.
//
// Growth is at least doubling, matching the spec's "monotonic, at least
// doubling" growth policy. The growth step starts at BufferDefaultSize
// (a quarter of the current capacity once that exceeds
// 4*BufferDefaultSize), is raised to requiredBytes if that is larger, and
// is raised to the current capacity whenever a smaller step would not
// double it.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := BufferDefaultSize
	if cap(bb.B) > 4*BufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}
	// enforce at-least-doubling when the buffer already holds data
	if cap(bb.B) > 0 && cap(bb.B)+growBy < cap(bb.B)*2 {
		growBy = cap(bb.B)
	}

	newBuf := make([]byte, len(bb.B), cap(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Extend extends the buffer length by n bytes if capacity allows, returning false otherwise.
func (bb *ByteBuffer) Extend(n int) bool {
	curLen := len(bb.B)
	if cap(bb.B)-curLen < n {
		return false
	}
	bb.B = bb.B[:curLen+n]

	return true
}

// ExtendOrGrow extends the buffer by n bytes, growing the backing array first if needed.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	if bb.Extend(n) {
		return
	}
	start := len(bb.B)
	bb.Grow(n)
	bb.B = bb.B[:start+n]
}

// MustWriteByte appends a single byte without a capacity check.
//
// Callers must have issued a prior Grow covering this write (and any
// other unchecked appends in the same region).
func (bb *ByteBuffer) MustWriteByte(b byte) {
	bb.B = append(bb.B, b)
}

// MustWrite appends data without a capacity check.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// MustWriteUvarint appends the 7-bit continuation encoding of v without a capacity check.
//
// Callers must have Grow'n at least varint.MaxVarintLen64 bytes.
func (bb *ByteBuffer) MustWriteUvarint(v uint64) {
	for v >= 0x80 {
		bb.B = append(bb.B, byte(v)|0x80)
		v >>= 7
	}
	bb.B = append(bb.B, byte(v))
}

// MustWriteFloat64LE appends the little-endian IEEE-754 bit pattern of v without a capacity check.
func (bb *ByteBuffer) MustWriteFloat64LE(v float64) {
	bb.B = endian.GetLittleEndianEngine().AppendUint64(bb.B, math.Float64bits(v))
}

// OrByteAt ORs bit into the byte already written at offset, mutating a past byte in place.
//
// This is the offset-indexed mutation primitive the flag bit requires
// (Design Notes: "implementations must expose an offset-indexed
// mutation primitive rather than only append"). Panics if offset is
// not a previously written position.
func (bb *ByteBuffer) OrByteAt(offset int, bit byte) {
	if offset < 0 || offset >= len(bb.B) {
		panic("pool: OrByteAt: offset out of range")
	}
	bb.B[offset] |= bit
}

// ByteBufferPool pools ByteBuffers to amortize allocation across encodings.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize and are
// discarded (not returned to the pool) once they grow past maxThreshold.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put resets and returns a ByteBuffer to the pool, unless it grew past the
// pool's maxThreshold, in which case it is left for the garbage collector.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}
	bb.Reset()
	p.pool.Put(bb)
}

var defaultPool = NewByteBufferPool(BufferDefaultSize, BufferMaxThreshold)

// Get retrieves a ByteBuffer from the package-level default pool.
func Get() *ByteBuffer { return defaultPool.Get() }

// Put returns a ByteBuffer to the package-level default pool.
func Put(bb *ByteBuffer) { defaultPool.Put(bb) }
