package compress

import (
	"testing"

	"github.com/serealgo/sereal/format"
	"github.com/stretchr/testify/require"
)

func TestNoOpCodec_RoundTrip(t *testing.T) {
	c := NewNoOpCodec()
	data := []byte("hello world")

	compressed, err := c.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, compressed)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestSnappyCodec_RoundTrip(t *testing.T) {
	c := NewSnappyCodec()
	data := []byte("the quick brown fox jumps over the lazy dog, repeatedly, repeatedly")

	compressed, err := c.Compress(data)
	require.NoError(t, err)
	require.NotEmpty(t, compressed)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestSnappyCodec_EmptyInput(t *testing.T) {
	c := NewSnappyCodec()
	compressed, err := c.Compress(nil)
	require.NoError(t, err)
	require.Nil(t, compressed)
}

func TestCreateCodec(t *testing.T) {
	codec, err := CreateCodec(format.EncodingRaw)
	require.NoError(t, err)
	require.IsType(t, NoOpCodec{}, codec)

	codec, err = CreateCodec(format.EncodingSnappy)
	require.NoError(t, err)
	require.IsType(t, SnappyCodec{}, codec)

	_, err = CreateCodec(format.EncodingType(99))
	require.Error(t, err)
}
