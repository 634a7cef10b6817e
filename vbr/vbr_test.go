package vbr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTripV1(t *testing.T) {
	b := &Brush{
		Version: 1.0, Name: "Round", Spacing: 10, Radius: 20,
		Hardness: 0.5, AspectRatio: 1, Angle: 0,
	}
	got, err := Decode(b.Encode())
	require.NoError(t, err)
	require.Equal(t, b, got)
}

func TestRoundTripV15(t *testing.T) {
	b := &Brush{
		Version: 1.5, Name: "Spiky", Shape: ShapeDiamond, Spacing: 15,
		Radius: 30, Spikes: 4, Hardness: 0.8, AspectRatio: 1.2, Angle: 45,
	}
	got, err := Decode(b.Encode())
	require.NoError(t, err)
	require.Equal(t, b, got)
}

func TestUnsupportedVersion(t *testing.T) {
	b := &Brush{Version: 2.0, Name: "x"}
	_, err := Decode(b.Encode())
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestBadMagic(t *testing.T) {
	_, err := Decode([]byte("NOT-VBR\n1.0\n"))
	require.ErrorIs(t, err, ErrBadMagic)
}
