// Package format names the wire format's encoding-bit vocabulary: the
// single byte OR'd into VERSION_AND_FLAGS that selects which payload
// framing follows the header.
package format

// EncodingType is the compression family selected by VERSION_AND_FLAGS.
type EncodingType uint8

const (
	// EncodingRaw is an uncompressed payload.
	EncodingRaw EncodingType = iota
	// EncodingSnappy is a whole-payload Snappy-compressed document.
	EncodingSnappy
	// EncodingSnappyIncremental is a Snappy-compressed document using
	// the incremental/streaming framing.
	EncodingSnappyIncremental
)

func (e EncodingType) String() string {
	switch e {
	case EncodingRaw:
		return "Raw"
	case EncodingSnappy:
		return "Snappy"
	case EncodingSnappyIncremental:
		return "SnappyIncremental"
	default:
		return "Unknown"
	}
}
