// Package encoder implements the Sereal v1-style tagged-value encoder
// core: a single-threaded, synchronous session that serializes a value
// tree reachable through a value.Model into a self-delimited byte
// string, using back-references to bound the cost of repeated values.
package encoder

import (
	"fmt"

	"github.com/serealgo/sereal/errs"
	"github.com/serealgo/sereal/format"
	"github.com/serealgo/sereal/internal/options"
	"github.com/serealgo/sereal/internal/pool"
	"github.com/serealgo/sereal/internal/seen"
	"github.com/serealgo/sereal/value"
)

// defaultMaxRecursionDepth is used when WithMaxRecursionDepth is not
// supplied; 0 from WithMaxRecursionDepth disables the encoder-imposed
// ceiling entirely, per spec.
const defaultMaxRecursionDepth = 1000

// hardRecursionCeiling stands in for the host stack-depth probe the
// original source consults on every recursive call (CPython's
// Py_EnterRecursiveCall). Go has no equivalent introspection into
// remaining goroutine stack, so this fixed ceiling is the idiomatic Go
// substitute: it is always enforced, independent of
// WithMaxRecursionDepth, as a last-resort guard against a runaway
// self-referential value tree outrunning the user-configured limit.
const hardRecursionCeiling = 100_000

// EncoderFlags holds the configuration fixed at Encoder construction.
// Flags are immutable for the lifetime of the Encoder.
type EncoderFlags struct {
	sharedHashkeys    bool
	snappy            bool
	snappyIncremental bool
	maxRecursionDepth int
}

// Encoder is a single-use-per-call-but-reusable encoding session. It is
// NOT safe for concurrent use: an Encoder has no internal concurrency
// and must not be shared across concurrent producers.
type Encoder struct {
	buf   *pool.ByteBuffer
	model value.Model
	flags EncoderFlags

	seen  seen.Table
	depth int

	closed bool
}

// New constructs an Encoder with the given model and options applied.
// model may be nil, in which case value.Native{} is used.
func New(model value.Model, opts ...options.Option[*Encoder]) (*Encoder, error) {
	if model == nil {
		model = value.Native{}
	}

	e := &Encoder{
		buf:   pool.Get(),
		model: model,
		flags: EncoderFlags{
			sharedHashkeys:    true,
			maxRecursionDepth: defaultMaxRecursionDepth,
		},
	}

	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Dump produces one complete, self-delimited encoded document for root.
//
// All errors abort the call and unwind cleanly: the recursion counter is
// restored and partial buffer contents are discarded. The Encoder
// remains usable for a subsequent Dump after Reset.
func (e *Encoder) Dump(root any) (out []byte, err error) {
	if e.closed {
		return nil, errs.ErrEncoderClosed
	}

	if e.flags.snappy || e.flags.snappyIncremental {
		return nil, fmt.Errorf("%w: snappy compression", errs.ErrNotImplemented)
	}

	defer func() {
		if r := recover(); r != nil {
			e.depth = 0
			e.buf.Reset()
			e.seen.Reset()
			err = fmt.Errorf("%w: %v", errs.ErrHostError, r)
			out = nil
		}
	}()

	e.buf.Reset()
	e.seen.Reset()
	e.depth = 0

	hdr := appendHeader(nil, format.EncodingRaw)
	e.buf.Grow(len(hdr))
	e.buf.MustWrite(hdr)

	if err := e.encodeValue(root); err != nil {
		e.buf.Reset()
		e.seen.Reset()
		e.depth = 0
		return nil, err
	}

	return e.buf.Snapshot(), nil
}

// Reset discards any buffered state, readying the Encoder for reuse.
func (e *Encoder) Reset() {
	e.buf.Reset()
	e.seen.Reset()
	e.depth = 0
}

// Close releases the Encoder's pooled buffer. After Close, Dump returns
// errs.ErrEncoderClosed.
func (e *Encoder) Close() {
	if e.closed {
		return
	}
	pool.Put(e.buf)
	e.buf = nil
	e.closed = true
}
