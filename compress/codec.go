// Package compress provides the Codec abstraction backing the wire
// format's VERSION_AND_FLAGS encoding bits.
//
// The encoder does not call any codec: Encoder.Dump writes raw
// (format.EncodingRaw) output directly, and it rejects both Snappy flags
// with errs.ErrNotImplemented before any codec is invoked. NoOp and
// Snappy are independently testable, matching the wire format's
// reserved encoding bits.
package compress

import (
	"fmt"

	"github.com/serealgo/sereal/format"
)

// Compressor compresses a complete encoded document.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	//
	// The returned slice is newly allocated and owned by the caller;
	// the input slice is never modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a payload produced by the matching Compressor.
type Decompressor interface {
	// Decompress restores data to its original form.
	//
	// Returns an error if data is corrupted or was compressed with an
	// incompatible algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression directions.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function returning the Codec for encoding.
func CreateCodec(encoding format.EncodingType) (Codec, error) {
	switch encoding {
	case format.EncodingRaw:
		return NewNoOpCodec(), nil
	case format.EncodingSnappy, format.EncodingSnappyIncremental:
		return NewSnappyCodec(), nil
	default:
		return nil, fmt.Errorf("compress: unknown encoding %v", encoding)
	}
}
