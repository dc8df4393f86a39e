package compress

import "github.com/klauspost/compress/s2"

// SnappyCodec backs the wire format's reserved Snappy encoding bits.
// It is a real, independently testable Snappy-compatible codec (s2 is
// Snappy-format compatible), but the encoder never calls it from Dump:
// requesting either Snappy flag fails Dump with errs.ErrNotImplemented
// before a codec is constructed.
type SnappyCodec struct{}

var _ Codec = (*SnappyCodec)(nil)

// NewSnappyCodec returns the Snappy-compatible codec.
func NewSnappyCodec() SnappyCodec {
	return SnappyCodec{}
}

// Compress compresses data using the Snappy-compatible S2 format.
func (c SnappyCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.EncodeSnappy(nil, data), nil
}

// Decompress decompresses data previously produced by Compress.
func (c SnappyCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
