package xcf

import (
	"testing"

	"github.com/TheHeadlessSourceMan/gimpFormats/internal/binutil"
	"github.com/stretchr/testify/require"
)

func TestStrokeRoundTripFullDynamics(t *testing.T) {
	s := &Stroke{
		Type:              StrokeTypeBezier,
		Closed:            true,
		NumFloatsPerPoint: 6,
		Points: []Point{
			{Type: PointAnchor, X: 1, Y: 2, Pressure: 0.9, XTilt: 0.1, YTilt: 0.2, Wheel: 0.3},
			{Type: PointAnchor, X: 3, Y: 4, Pressure: 0.8, XTilt: 0.4, YTilt: 0.5, Wheel: 0.6},
		},
	}
	cur := binutil.NewWriter()
	s.encode(cur)
	got := &Stroke{}
	require.NoError(t, got.decode(binutil.NewReader(cur.Data)))
	require.Equal(t, s, got)
}

func TestStrokeDecodeAppliesDynamicsDefaults(t *testing.T) {
	s := &Stroke{
		Type:              StrokeTypeBezier,
		NumFloatsPerPoint: 2, // only x,y on disk
		Points: []Point{
			{Type: PointAnchor, X: 5, Y: 6},
		},
	}
	cur := binutil.NewWriter()
	s.encode(cur)
	got := &Stroke{}
	require.NoError(t, got.decode(binutil.NewReader(cur.Data)))
	require.Len(t, got.Points, 1)
	p := got.Points[0]
	require.Equal(t, float32(5), p.X)
	require.Equal(t, float32(6), p.Y)
	require.Equal(t, float32(1.0), p.Pressure)
	require.Equal(t, float32(0.5), p.XTilt)
	require.Equal(t, float32(0.5), p.YTilt)
	require.Equal(t, float32(0.5), p.Wheel)
}

func TestVectorRoundTrip(t *testing.T) {
	v := &Vector{
		Name:     "Path 1",
		TattooID: 7,
		Visible:  true,
		Linked:   false,
		Parasites: []*Parasite{
			{Name: "note", Flags: 0, Data: []byte("x")},
		},
		Strokes: []*Stroke{
			{
				Type:              StrokeTypeBezier,
				Closed:            false,
				NumFloatsPerPoint: 2,
				Points: []Point{
					newPointAt(0, 0),
					newPointAt(10, 0),
					newPointAt(10, 10),
				},
			},
		},
	}
	cur := binutil.NewWriter()
	v.encode(cur)
	got := &Vector{}
	require.NoError(t, got.decode(binutil.NewReader(cur.Data)))
	require.Equal(t, v, got)
}

func newPointAt(x, y float32) Point {
	p := newPoint()
	p.Type = PointAnchor
	p.X, p.Y = x, y
	return p
}

func TestVectorSVGPath(t *testing.T) {
	v := &Vector{
		Strokes: []*Stroke{
			{Closed: true, Points: []Point{newPointAt(0, 0), newPointAt(1, 1), newPointAt(2, 0)}},
		},
	}
	require.Equal(t, "M0,0 Q1,1 Q2,0 Z", v.SVGPath())
}

func TestVectorSVGPathSkipsEmptyStroke(t *testing.T) {
	v := &Vector{Strokes: []*Stroke{{}}}
	require.Equal(t, "", v.SVGPath())
}
