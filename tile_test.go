package xcf

import (
	"context"
	"testing"

	"github.com/TheHeadlessSourceMan/gimpFormats/internal/binutil"
	"github.com/stretchr/testify/require"
)

func TestTileRoundTripNone(t *testing.T) {
	pixels := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	enc, err := EncodeTile(pixels, CompressionNone, 2, 2, 3)
	require.NoError(t, err)
	got, err := DecodeTile(enc, CompressionNone, 2, 2, 3)
	require.NoError(t, err)
	require.Equal(t, pixels, got)
}

func TestTileRoundTripRLE(t *testing.T) {
	// 8x8 RGBA tile with some uniform and some noisy regions.
	pixels := make([]byte, 8*8*4)
	for i := range pixels {
		if i%4 == 0 {
			pixels[i] = byte(i % 7) // noisy red channel
		} else {
			pixels[i] = 200 // uniform other channels
		}
	}
	enc, err := EncodeTile(pixels, CompressionRLE, 8, 8, 4)
	require.NoError(t, err)
	got, err := DecodeTile(enc, CompressionRLE, 8, 8, 4)
	require.NoError(t, err)
	require.Equal(t, pixels, got)
}

func TestTileRoundTripZlib(t *testing.T) {
	pixels := make([]byte, 64*64*4)
	for i := range pixels {
		pixels[i] = byte(i * 37)
	}
	enc, err := EncodeTile(pixels, CompressionZlib, 64, 64, 4)
	require.NoError(t, err)
	// Over-long trailing data must not affect decoding.
	encPlusGarbage := append(append([]byte{}, enc...), []byte{0xde, 0xad, 0xbe, 0xef}...)
	got, err := DecodeTile(encPlusGarbage, CompressionZlib, 64, 64, 4)
	require.NoError(t, err)
	require.Equal(t, pixels, got)
}

func TestDecodeRLEChannelOpcodeClasses(t *testing.T) {
	cur := binutil.NewWriter()
	// short-same: opcode 4 -> 5 repeats of 0xAA
	cur.WriteU8(4)
	cur.WriteU8(0xAA)
	// long-same: opcode 127, count 300, value 0xBB
	cur.WriteU8(127)
	cur.WriteU16(300)
	cur.WriteU8(0xBB)
	// long-different: opcode 128, count 3, literal bytes
	cur.WriteU8(128)
	cur.WriteU16(3)
	cur.WriteBytes([]byte{1, 2, 3})
	// short-different: opcode 254 -> 2 literal bytes
	cur.WriteU8(254)
	cur.WriteBytes([]byte{9, 10})

	want := 5 + 300 + 3 + 2
	r := binutil.NewReader(cur.Data)
	out, err := decodeRLEChannel(r, want)
	require.NoError(t, err)
	require.Len(t, out, want)
	require.Equal(t, []byte{0xAA, 0xAA, 0xAA, 0xAA, 0xAA}, out[:5])
	require.Equal(t, byte(0xBB), out[5])
	require.Equal(t, byte(0xBB), out[5+299])
	require.Equal(t, []byte{1, 2, 3}, out[305:308])
	require.Equal(t, []byte{9, 10}, out[308:310])
}

func TestDecodeTilesParallel(t *testing.T) {
	pixels1 := []byte{1, 1, 1, 1}
	pixels2 := []byte{2, 2, 2, 2}
	enc1, err := EncodeTile(pixels1, CompressionRLE, 2, 2, 1)
	require.NoError(t, err)
	enc2, err := EncodeTile(pixels2, CompressionRLE, 2, 2, 1)
	require.NoError(t, err)
	out, err := DecodeTilesParallel(context.Background(), [][]byte{enc1, enc2}, CompressionRLE, []int{2, 2}, []int{2, 2}, 1)
	require.NoError(t, err)
	require.Equal(t, pixels1, out[0])
	require.Equal(t, pixels2, out[1])
}
