// Package sereal provides a Sereal v1-style tagged-value binary encoder:
// given an in-memory value tree built from a small closed set of
// primitive/composite kinds, it emits a byte string a matching decoder
// could reconstruct, using back-references to bound the cost of
// repeated values.
//
// # Basic usage
//
//	enc, err := sereal.NewEncoder()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer enc.Close()
//
//	doc, err := enc.Dump(value.NewList(
//	    value.NewInt(1),
//	    value.NewText("hello"),
//	    true,
//	))
//
// # Value model
//
// The encoder never depends on a host type system directly; it talks to
// value.Model. NewEncoder uses value.Native{}, which recognizes
// plain bool and this module's reference-typed wrappers (value.Int,
// value.Float, value.Bytes, value.Text, value.List) — or any host type
// implementing the narrower "-er" interfaces in package value.
//
// Back-reference tracking is by object identity, not value equality:
// two value.Int instances holding the same number are distinct objects
// unless the same pointer is reused.
package sereal

import (
	"github.com/serealgo/sereal/encoder"
	"github.com/serealgo/sereal/internal/options"
	"github.com/serealgo/sereal/value"
)

// Encoder is a tagged-value encoding session. See encoder.Encoder.
type Encoder = encoder.Encoder

// Option configures an Encoder at construction time.
type Option = options.Option[*Encoder]

// NewEncoder constructs an Encoder using the default value.Native model.
//
// Recognized options:
//   - WithSharedHashkeys
//   - WithMaxRecursionDepth
//   - WithSnappyCompression / WithSnappyIncrementalCompression
func NewEncoder(opts ...Option) (*Encoder, error) {
	return encoder.New(value.Native{}, opts...)
}

// NewEncoderWithModel constructs an Encoder against a custom value.Model,
// for hosts that want to encode their own types without adopting this
// module's reference-typed wrappers.
func NewEncoderWithModel(model value.Model, opts ...Option) (*Encoder, error) {
	return encoder.New(model, opts...)
}

// Re-exported option constructors, so callers need only import this
// root package for the common case.
var (
	WithSharedHashkeys               = encoder.WithSharedHashkeys
	WithMaxRecursionDepth            = encoder.WithMaxRecursionDepth
	WithSnappyCompression            = encoder.WithSnappyCompression
	WithSnappyIncrementalCompression = encoder.WithSnappyIncrementalCompression
)

// Dump is a convenience one-shot: construct a default Encoder, encode
// root, and release the Encoder's pooled buffer.
func Dump(root any, opts ...Option) ([]byte, error) {
	enc, err := NewEncoder(opts...)
	if err != nil {
		return nil, err
	}
	defer enc.Close()

	return enc.Dump(root)
}
