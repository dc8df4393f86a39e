package encoder

import (
	"github.com/serealgo/sereal/format"
	"github.com/serealgo/sereal/wire"
)

// appendHeader appends the stream preamble for the given encoding family.
func appendHeader(dst []byte, encoding format.EncodingType) []byte {
	var bits byte
	switch encoding {
	case format.EncodingSnappy:
		bits = wire.EncodingSnappy
	case format.EncodingSnappyIncremental:
		bits = wire.EncodingSnappyIncremental
	default:
		bits = wire.EncodingRaw
	}

	return wire.AppendHeader(dst, bits)
}
