package binutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteU8(0xAB)
	w.WriteI16(-1234)
	w.WriteU32(0xDEADBEEF)
	w.WriteI64(-1)
	w.WriteF32(3.5)
	w.WriteF64(2.25)

	r := NewReader(w.Data)
	u8, err := r.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0xAB), u8)

	i16, err := r.ReadI16()
	require.NoError(t, err)
	assert.Equal(t, int16(-1234), i16)

	u32, err := r.ReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), u32)

	i64, err := r.ReadI64()
	require.NoError(t, err)
	assert.Equal(t, int64(-1), i64)

	f32, err := r.ReadF32()
	require.NoError(t, err)
	assert.Equal(t, float32(3.5), f32)

	f64, err := r.ReadF64()
	require.NoError(t, err)
	assert.Equal(t, 2.25, f64)
}

func TestPascalStringRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WritePascalString("")
	w.WritePascalString("hello")

	r := NewReader(w.Data)
	s1, err := r.ReadPascalString()
	require.NoError(t, err)
	assert.Equal(t, "", s1)

	s2, err := r.ReadPascalString()
	require.NoError(t, err)
	assert.Equal(t, "hello", s2)
}

func TestPascalStringMissingNulFails(t *testing.T) {
	w := NewWriter()
	w.WriteU32(2)
	w.WriteBytes([]byte("xy"))
	r := NewReader(w.Data)
	_, err := r.ReadPascalString()
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestCStringRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteCString("v011")
	r := NewReader(w.Data)
	s, err := r.ReadCString()
	require.NoError(t, err)
	assert.Equal(t, "v011", s)
}

func TestTruncatedRead(t *testing.T) {
	r := NewReader([]byte{1, 2})
	_, err := r.ReadU32()
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestBool32(t *testing.T) {
	w := NewWriter()
	w.WriteBool32(true)
	w.WriteBool32(false)
	r := NewReader(w.Data)
	b1, err := r.ReadBool32()
	require.NoError(t, err)
	assert.True(t, b1)
	b2, err := r.ReadBool32()
	require.NoError(t, err)
	assert.False(t, b2)
}
