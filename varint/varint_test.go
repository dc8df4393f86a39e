package varint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendUvarint_SingleByte(t *testing.T) {
	got := AppendUvarint(nil, 0)
	require.Equal(t, []byte{0x00}, got)

	got = AppendUvarint(nil, 127)
	require.Equal(t, []byte{0x7f}, got)
}

func TestAppendUvarint_MultiByte(t *testing.T) {
	got := AppendUvarint(nil, 128)
	require.Equal(t, []byte{0x80, 0x01}, got)

	got = AppendUvarint(nil, 300)
	require.Equal(t, []byte{0xac, 0x02}, got)
}

func TestZigzag_RoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 2, -2, 127, -128, 1 << 40, -(1 << 40)}
	for _, c := range cases {
		z := Zigzag(c)
		require.Equal(t, c, Unzigzag(z), "value %d", c)
	}
}

func TestZigzag_SmallMagnitudeIsSmall(t *testing.T) {
	require.Equal(t, uint64(0), Zigzag(0))
	require.Equal(t, uint64(1), Zigzag(-1))
	require.Equal(t, uint64(2), Zigzag(1))
	require.Equal(t, uint64(3), Zigzag(-2))
}

func TestLen_MatchesAppendedLength(t *testing.T) {
	for _, v := range []uint64{0, 1, 127, 128, 16383, 16384, 1 << 35} {
		got := AppendUvarint(nil, v)
		require.Equal(t, len(got), Len(v), "value %d", v)
	}
}

func TestEstimateLen_NeverUndershoots(t *testing.T) {
	for _, v := range []uint64{0, 1, 127, 128, 16383, 16384, 1 << 35} {
		require.GreaterOrEqual(t, EstimateLen(v), Len(v), "value %d", v)
	}
}
