// Package wire defines the tag-byte alphabet, masks, and stream header
// layout of the Sereal v1-style wire protocol.
package wire

// Tag bytes. Low-range tags (POS_LOW, NEG_LOW, ARRAYREF_LOW,
// SHORT_BINARY_LOW) pack a small payload into the byte's low bits; the
// comment on each gives the packed range and the OR arithmetic callers
// must use.
const (
	// POS_LOW | n, n in [0,15]: inline small non-negative integer.
	PosLow byte = 0x00
	// NEG_LOW | (n+32), n in [-16,-1]: inline small negative integer.
	NegLow byte = 0x20

	Varint  byte = 0x10 // VARINT + varint(n), non-negative integer >= 16
	Zigzag  byte = 0x11 // ZIGZAG + zigzag-varint, negative integer < -16
	Double  byte = 0x12 // DOUBLE + 8 bytes LE
	True    byte = 0x13 // TRUE
	False   byte = 0x14 // FALSE
	Binary  byte = 0x15 // BINARY + varint(len) + bytes
	StrUTF8 byte = 0x16 // STR_UTF8 + varint(len) + bytes
	RefN    byte = 0x17 // REFN, construction prefix for a large referenceable array
	RefP    byte = 0x18 // REFP + varint(offset), back-reference to a referenceable value
	Copy    byte = 0x19 // COPY + varint(offset), back-reference to an immutable scalar
	Array   byte = 0x1A // ARRAY + varint(len), large array body (follows REFN)

	// ARRAYREF_LOW | len, len in [0,15]: small referenceable array.
	ArrayRefLow byte = 0x40
	// SHORT_BINARY_LOW | len, len in [0,31]: short byte string.
	ShortBinaryLow byte = 0x60
)

// FlagBit is the top bit of a tag byte at a referenceable position,
// marking that a later REFP points here. It does not change the tag's
// identity; decoders mask it off when reading the tag.
const FlagBit byte = 0x80

// Masks bounding the packed low-bit payloads.
const (
	MaskArrayRefCount  = 0x0F // max packed length for ARRAYREF_LOW
	MaskShortBinaryLen = 0x1F // max packed length for SHORT_BINARY_LOW
)

// NegLowBias is the bias added to a small negative integer before it is
// packed into NEG_LOW's low bits: NegLow | (n + NegLowBias).
const NegLowBias = 32

// Magic is the 4-byte stream preamble identifying the format.
var Magic = [4]byte{0x3d, 0x73, 0x72, 0x6c}

// ProtocolVersion is the version value ORed into VERSION_AND_FLAGS.
const ProtocolVersion byte = 0x01

// Encoding type bits, OR'd with ProtocolVersion to form VERSION_AND_FLAGS.
// Exactly one must be set.
const (
	EncodingRaw               byte = 0x00
	EncodingSnappy            byte = 0x20
	EncodingSnappyIncremental byte = 0x40
)

// HeaderSuffixLen is always zero: this core never emits a user header.
const HeaderSuffixLen byte = 0x00

// AppendHeader appends the 6-byte stream preamble (MAGIC, VERSION_AND_FLAGS,
// HEADER_SUFFIX_LEN) to dst and returns the extended slice.
func AppendHeader(dst []byte, encoding byte) []byte {
	dst = append(dst, Magic[:]...)
	dst = append(dst, ProtocolVersion|encoding)
	dst = append(dst, HeaderSuffixLen)
	return dst
}
