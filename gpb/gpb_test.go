package gpb

import (
	"testing"

	"github.com/TheHeadlessSourceMan/gimpFormats/gbr"
	"github.com/TheHeadlessSourceMan/gimpFormats/pat"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	bp := &BrushPattern{
		Brush:   &gbr.Brush{Version: 2, Width: 1, Height: 1, Depth: gbr.DepthGray, Name: "a", Pixels: []byte{1}},
		Pattern: &pat.Pattern{Version: 1, Width: 1, Height: 1, Depth: pat.DepthGray, Name: "b", Pixels: []byte{2}},
	}
	got, err := Decode(bp.Encode())
	require.NoError(t, err)
	require.Equal(t, bp, got)
}
