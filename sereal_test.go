package sereal_test

import (
	"errors"
	"math"
	"testing"

	"github.com/serealgo/sereal"
	"github.com/serealgo/sereal/errs"
	"github.com/serealgo/sereal/value"
	"github.com/serealgo/sereal/wire"
	"github.com/stretchr/testify/require"
)

func header(encoding byte) []byte {
	return []byte{wire.Magic[0], wire.Magic[1], wire.Magic[2], wire.Magic[3], wire.ProtocolVersion | encoding, 0x00}
}

func TestDump_True(t *testing.T) {
	out, err := sereal.Dump(true)
	require.NoError(t, err)
	want := append(header(wire.EncodingRaw), wire.True)
	require.Equal(t, want, out)
}

func TestDump_ZeroIsPosLow(t *testing.T) {
	out, err := sereal.Dump(value.NewInt(0))
	require.NoError(t, err)
	want := append(header(wire.EncodingRaw), wire.PosLow|0)
	require.Equal(t, want, out)
}

func TestDump_NegativeOneIsNegLow(t *testing.T) {
	out, err := sereal.Dump(value.NewInt(-1))
	require.NoError(t, err)
	want := append(header(wire.EncodingRaw), 0x3F)
	require.Equal(t, want, out)
}

func TestDump_300IsVarint(t *testing.T) {
	out, err := sereal.Dump(value.NewInt(300))
	require.NoError(t, err)
	want := append(header(wire.EncodingRaw), wire.Varint, 0xAC, 0x02)
	require.Equal(t, want, out)
}

func TestDump_SmallArray(t *testing.T) {
	out, err := sereal.Dump(value.NewList(value.NewInt(1), value.NewInt(2), value.NewInt(3)))
	require.NoError(t, err)
	want := append(header(wire.EncodingRaw),
		wire.ArrayRefLow|3,
		wire.PosLow|1,
		wire.PosLow|2,
		wire.PosLow|3,
	)
	require.Equal(t, want, out)
}

func TestDump_RepeatedStringObject_EmitsCopy(t *testing.T) {
	s := value.NewText("abc")
	out, err := sereal.Dump(value.NewList(s, s))
	require.NoError(t, err)

	// first occurrence: inline STR_UTF8 tag
	hdr := header(wire.EncodingRaw)
	offset := len(hdr) + 1 // past ARRAYREF_LOW|2 tag byte, at the STR_UTF8 tag
	require.Equal(t, wire.StrUTF8, out[offset])

	// second occurrence must be a COPY back to the first tag's offset
	require.Equal(t, wire.Copy, out[len(out)-2])
	require.Equal(t, byte(offset), out[len(out)-1])
}

func TestDump_DistinctEqualStrings_BothInline(t *testing.T) {
	out, err := sereal.Dump(value.NewList(value.NewText("abc"), value.NewText("abc")))
	require.NoError(t, err)

	// neither occurrence may be a COPY: distinct objects, equal content
	require.NotContains(t, out, wire.Copy)
}

func TestDump_SelfReferentialList(t *testing.T) {
	l := value.NewList()
	l.Append(l)

	out, err := sereal.Dump(l)
	require.NoError(t, err)

	hdr := header(wire.EncodingRaw)
	tagOffset := len(hdr)
	require.Equal(t, wire.ArrayRefLow|1|wire.FlagBit, out[tagOffset], "flag bit must be set on the outer tag")
	require.Equal(t, wire.RefP, out[len(out)-2])
}

func TestDump_RecursionLimit(t *testing.T) {
	var root any = value.NewList()
	cur := root.(*value.List)
	for i := 0; i < 10; i++ {
		inner := value.NewList()
		cur.Append(inner)
		cur = inner
	}

	_, err := sereal.Dump(root, sereal.WithMaxRecursionDepth(5))
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrRecursionLimit))
}

func TestDump_UnsupportedType(t *testing.T) {
	_, err := sereal.Dump(struct{ X int }{X: 1})
	require.True(t, errors.Is(err, errs.ErrUnsupportedType))
}

func TestDump_SnappyNotImplemented(t *testing.T) {
	_, err := sereal.Dump(true, sereal.WithSnappyCompression())
	require.True(t, errors.Is(err, errs.ErrNotImplemented))
}

func TestDump_FloatNaNAndInf(t *testing.T) {
	out, err := sereal.Dump(value.NewList(
		value.NewFloat(math.NaN()),
		value.NewFloat(math.Inf(1)),
		value.NewFloat(math.Inf(-1)),
	))
	require.NoError(t, err)
	require.NotEmpty(t, out)
}

func TestDump_Deterministic(t *testing.T) {
	build := func() any {
		return value.NewList(value.NewInt(1), value.NewText("x"), value.NewFloat(1.5), false)
	}
	a, err := sereal.Dump(build())
	require.NoError(t, err)
	b, err := sereal.Dump(build())
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestEncoder_ResetAllowsReuse(t *testing.T) {
	enc, err := sereal.NewEncoder()
	require.NoError(t, err)
	defer enc.Close()

	_, err = enc.Dump(value.NewInt(1))
	require.NoError(t, err)

	enc.Reset()

	out, err := enc.Dump(value.NewInt(2))
	require.NoError(t, err)
	want := append(header(wire.EncodingRaw), wire.PosLow|2)
	require.Equal(t, want, out)
}

func TestEncoder_DumpAfterCloseFails(t *testing.T) {
	enc, err := sereal.NewEncoder()
	require.NoError(t, err)
	enc.Close()

	_, err = enc.Dump(value.NewInt(1))
	require.True(t, errors.Is(err, errs.ErrEncoderClosed))
}
