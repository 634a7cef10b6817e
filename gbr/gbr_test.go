package gbr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	b := &Brush{
		Version: 2,
		Width:   2,
		Height:  2,
		Depth:   DepthRGBA,
		Spacing: 25,
		Name:    "Test Brush",
		Pixels:  []byte{1, 2, 3, 255, 4, 5, 6, 255, 7, 8, 9, 255, 10, 11, 12, 255},
	}
	data := b.Encode()
	got, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, b, got)
}

func TestDecodeAtOffset(t *testing.T) {
	b := &Brush{Version: 2, Width: 1, Height: 1, Depth: DepthGray, Name: "a", Pixels: []byte{9}}
	data := append([]byte{0xde, 0xad, 0xbe, 0xef}, b.Encode()...)
	got, n, err := DecodeAt(data, 4)
	require.NoError(t, err)
	require.Equal(t, len(data)-4, n)
	require.Equal(t, b, got)
}

func TestBadMagic(t *testing.T) {
	b := &Brush{Version: 2, Width: 1, Height: 1, Depth: DepthGray, Name: "a", Pixels: []byte{9}}
	data := b.Encode()
	data[20] = 'X' // corrupt the "GIMP" magic
	_, err := Decode(data)
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestUnsupportedVersion(t *testing.T) {
	b := &Brush{Version: 3, Width: 1, Height: 1, Depth: DepthGray, Name: "a", Pixels: []byte{9}}
	_, err := Decode(b.Encode())
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}
