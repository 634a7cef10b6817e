package xcf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColorModeChannelsAndAlpha(t *testing.T) {
	require.Equal(t, 3, ColorModeRGB.Channels())
	require.False(t, ColorModeRGB.HasAlpha())
	require.Equal(t, 4, ColorModeRGBA.Channels())
	require.True(t, ColorModeRGBA.HasAlpha())
	require.Equal(t, 2, ColorModeGrayAlpha.Channels())
	require.True(t, ColorModeIndexedAlpha.Indexed())
}

func TestColorModeBytesPerPixel(t *testing.T) {
	p8 := Precision{Depth: BitDepth8}
	p16 := Precision{Depth: BitDepth16}
	require.Equal(t, 3, ColorModeRGB.BytesPerPixel(p8))
	require.Equal(t, 6, ColorModeRGB.BytesPerPixel(p16))
	require.Equal(t, 1, ColorModeIndexed.BytesPerPixel(p16))
	require.Equal(t, 2, ColorModeIndexedAlpha.BytesPerPixel(p16))
}

func TestColorModeForBase(t *testing.T) {
	require.Equal(t, ColorModeRGB, colorModeForBase(BaseColorModeRGB))
	require.Equal(t, ColorModeGray, colorModeForBase(BaseColorModeGray))
	require.Equal(t, ColorModeIndexed, colorModeForBase(BaseColorModeIndexed))
}
