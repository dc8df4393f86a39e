// Package varint implements the unsigned LEB128-style varint and the
// zigzag signed-integer mapping the wire format uses for VARINT and
// ZIGZAG tag payloads.
package varint

// MaxVarintLen64 is the maximum number of bytes AppendUvarint can produce
// for a uint64.
const MaxVarintLen64 = 10

// AppendUvarint appends the 7-bit continuation encoding of v to dst and
// returns the extended slice.
func AppendUvarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// Zigzag maps a signed integer to an unsigned one so that small-magnitude
// values (positive or negative) encode to a small varint.
func Zigzag(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

// Unzigzag is the inverse of Zigzag.
func Unzigzag(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}

// AppendZigzag appends the zigzag-varint encoding of v to dst.
func AppendZigzag(dst []byte, v int64) []byte {
	return AppendUvarint(dst, Zigzag(v))
}

// Len returns the exact number of bytes AppendUvarint would produce for v.
func Len(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// ZigzagLen returns the exact number of bytes AppendZigzag would produce for v.
func ZigzagLen(v int64) int {
	return Len(Zigzag(v))
}

// EstimateLen is the spec's intentionally conservative VARINT_LEN(x)
// predicate: 1 + floor(x/128). It over-approximates or matches the true
// encoded length for any non-negative x, and exists only to cheaply
// compare the cost of a COPY tag (a varint offset) against re-emitting a
// value in full, without actually encoding the offset first.
//
// It must never be used in place of Len/ZigzagLen to size a buffer for
// an actual write.
func EstimateLen(x uint64) int {
	return 1 + int(x/128)
}
