package xcf

import (
	"context"
	"testing"

	"github.com/TheHeadlessSourceMan/gimpFormats/internal/binutil"
	"github.com/stretchr/testify/require"
)

func TestTileGridAndDims(t *testing.T) {
	cols, rows := tileGrid(100, 70)
	require.Equal(t, 2, cols)
	require.Equal(t, 2, rows)

	w, h := tileDims(1, 1, 100, 70)
	require.Equal(t, 36, w) // 100 - 64
	require.Equal(t, 6, h)  // 70 - 64

	w, h = tileDims(0, 0, 100, 70)
	require.Equal(t, 64, w)
	require.Equal(t, 64, h)
}

func TestLevelEncodeDecodeRoundTrip(t *testing.T) {
	level := &Level{Width: 65, Height: 1, Tiles: [][]byte{
		rgbaPixels(64, 1, 0),
		rgbaPixels(1, 1, 200),
	}}
	cur := binutil.NewWriter()
	require.NoError(t, level.encode(cur, 5, CompressionNone, 4))

	r := binutil.NewReader(cur.Data)
	got, err := decodeLevel(context.Background(), r, cur.Data, 5, CompressionNone, 4)
	require.NoError(t, err)
	require.Equal(t, level, got)
}

func TestLevelRaster(t *testing.T) {
	level := &Level{Width: 2, Height: 1, Tiles: [][]byte{{1, 2, 3, 4, 5, 6, 7, 8}}}
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, level.Raster(4))
}
