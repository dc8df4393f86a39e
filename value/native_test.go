package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNative_Classify(t *testing.T) {
	m := Native{}
	require.Equal(t, KindBool, m.Classify(true))
	require.Equal(t, KindInt, m.Classify(NewInt(5)))
	require.Equal(t, KindFloat, m.Classify(NewFloat(1.5)))
	require.Equal(t, KindBytes, m.Classify(NewBytes([]byte("x"))))
	require.Equal(t, KindText, m.Classify(NewText("x")))
	require.Equal(t, KindList, m.Classify(NewList()))
	require.Equal(t, KindUnsupported, m.Classify(struct{}{}))
}

func TestNative_IdentityIsPerPointerNotPerValue(t *testing.T) {
	m := Native{}
	a := NewInt(42)
	b := NewInt(42)

	idA, okA := m.Identity(a)
	idB, okB := m.Identity(b)
	require.True(t, okA)
	require.True(t, okB)
	require.NotEqual(t, idA, idB, "equal-valued but distinct objects must have distinct identity")

	idA2, _ := m.Identity(a)
	require.Equal(t, idA, idA2, "identity must be stable across calls for the same object")
}

func TestNative_BoolHasNoIdentity(t *testing.T) {
	m := Native{}
	_, ok := m.Identity(true)
	require.False(t, ok)
}

func TestNative_Extractors(t *testing.T) {
	m := Native{}
	require.Equal(t, int64(7), m.Int(NewInt(7)))
	require.Equal(t, 2.5, m.Float(NewFloat(2.5)))
	require.Equal(t, []byte("hi"), m.Bytes(NewBytes([]byte("hi"))))

	txt, err := m.Text(NewText("hello"))
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), txt)
}

func TestNative_List(t *testing.T) {
	m := Native{}
	l := NewList(NewInt(1), NewInt(2), NewInt(3))
	require.Equal(t, 3, m.ListLen(l))
	require.Equal(t, int64(2), m.Int(m.ListElem(l, 1)))
}

type customBool bool

func (c customBool) SerealBool() bool { return bool(c) }

func TestNative_BoolValuerSlowPath(t *testing.T) {
	m := Native{}
	require.Equal(t, KindBool, m.Classify(customBool(true)))
	require.True(t, m.Bool(customBool(true)))
}
