package xcf

import (
	"fmt"
	"strings"

	"github.com/TheHeadlessSourceMan/gimpFormats/internal/binutil"
)

// PointType is the anchor kind of a single Bezier control Point.
type PointType uint32

const (
	PointAnchor PointType = 1
)

// Point is one control point of a Stroke. X and Y are always present;
// Pressure, XTilt, YTilt, and Wheel are stylus dynamics that are only
// stored on disk when the owning Stroke's NumFloatsPerPoint says so,
// defaulting to 1.0 / 0.5 / 0.5 / 0.5 when absent.
type Point struct {
	Type     PointType
	X, Y     float32
	Pressure float32
	XTilt    float32
	YTilt    float32
	Wheel    float32
}

func newPoint() Point {
	return Point{Pressure: 1.0, XTilt: 0.5, YTilt: 0.5, Wheel: 0.5}
}

// StrokeType selects how a Stroke's points are interpolated. GIMP only
// ever emits StrokeTypeBezier.
type StrokeType uint32

const (
	StrokeTypeBezier StrokeType = 1
)

// Stroke is one contiguous path within a Vector, e.g. one subpath of a
// multi-subpath shape.
type Stroke struct {
	Type              StrokeType
	Closed            bool
	NumFloatsPerPoint uint32
	Points            []Point
}

func (s *Stroke) decode(cur *binutil.Cursor) error {
	t, err := cur.ReadU32()
	if err != nil {
		return err
	}
	s.Type = StrokeType(t)
	if s.Closed, err = cur.ReadBool32(); err != nil {
		return err
	}
	if s.NumFloatsPerPoint, err = cur.ReadU32(); err != nil {
		return err
	}
	n, err := cur.ReadU32()
	if err != nil {
		return err
	}
	s.Points = make([]Point, 0, n)
	for i := uint32(0); i < n; i++ {
		p := newPoint()
		pt, err := cur.ReadU32()
		if err != nil {
			return err
		}
		p.Type = PointType(pt)
		floats := make([]float32, s.NumFloatsPerPoint)
		for j := range floats {
			if floats[j], err = cur.ReadF32(); err != nil {
				return err
			}
		}
		if len(floats) > 0 {
			p.X = floats[0]
		}
		if len(floats) > 1 {
			p.Y = floats[1]
		}
		if len(floats) > 2 {
			p.Pressure = floats[2]
		}
		if len(floats) > 3 {
			p.XTilt = floats[3]
		}
		if len(floats) > 4 {
			p.YTilt = floats[4]
		}
		if len(floats) > 5 {
			p.Wheel = floats[5]
		}
		s.Points = append(s.Points, p)
	}
	return nil
}

func (s *Stroke) encode(cur *binutil.Cursor) {
	cur.WriteU32(uint32(s.Type))
	cur.WriteBool32(s.Closed)
	cur.WriteU32(s.NumFloatsPerPoint)
	cur.WriteU32(uint32(len(s.Points)))
	all := []float32{}
	for _, p := range s.Points {
		cur.WriteU32(uint32(p.Type))
		all = all[:0]
		all = append(all, p.X, p.Y, p.Pressure, p.XTilt, p.YTilt, p.Wheel)
		for j := uint32(0); j < s.NumFloatsPerPoint && j < uint32(len(all)); j++ {
			cur.WriteF32(all[j])
		}
	}
}

// Vector is a named, orderable path made of one or more Strokes; GIMP's
// Paths dialog entries are Vectors.
type Vector struct {
	Name      string
	TattooID  uint32
	Visible   bool
	Linked    bool
	Parasites []*Parasite
	Strokes   []*Stroke
}

func (v *Vector) decode(cur *binutil.Cursor) error {
	var err error
	if v.Name, err = cur.ReadPascalString(); err != nil {
		return err
	}
	if v.TattooID, err = cur.ReadU32(); err != nil {
		return err
	}
	if v.Visible, err = cur.ReadBool32(); err != nil {
		return err
	}
	if v.Linked, err = cur.ReadBool32(); err != nil {
		return err
	}
	numParasites, err := cur.ReadU32()
	if err != nil {
		return err
	}
	numStrokes, err := cur.ReadU32()
	if err != nil {
		return err
	}
	v.Parasites = make([]*Parasite, 0, numParasites)
	for i := uint32(0); i < numParasites; i++ {
		p := &Parasite{}
		if err := p.decode(cur); err != nil {
			return err
		}
		v.Parasites = append(v.Parasites, p)
	}
	v.Strokes = make([]*Stroke, 0, numStrokes)
	for i := uint32(0); i < numStrokes; i++ {
		s := &Stroke{}
		if err := s.decode(cur); err != nil {
			return err
		}
		v.Strokes = append(v.Strokes, s)
	}
	return nil
}

func (v *Vector) encode(cur *binutil.Cursor) {
	cur.WritePascalString(v.Name)
	cur.WriteU32(v.TattooID)
	cur.WriteBool32(v.Visible)
	cur.WriteBool32(v.Linked)
	cur.WriteU32(uint32(len(v.Parasites)))
	cur.WriteU32(uint32(len(v.Strokes)))
	for _, p := range v.Parasites {
		p.encode(cur)
	}
	for _, s := range v.Strokes {
		s.encode(cur)
	}
}

// SVGPath renders the vector's strokes as an SVG path "d" attribute,
// one subpath per non-empty Stroke: an M to its first point, one Q
// carrying only the x,y of each remaining point, and a closing Z when
// the stroke is closed. Control points are not grouped into true
// quadratic or cubic curve segments.
func (v *Vector) SVGPath() string {
	var b strings.Builder
	for _, s := range v.Strokes {
		if len(s.Points) == 0 {
			continue
		}
		fmt.Fprintf(&b, "M%g,%g ", s.Points[0].X, s.Points[0].Y)
		for _, p := range s.Points[1:] {
			fmt.Fprintf(&b, "Q%g,%g ", p.X, p.Y)
		}
		if s.Closed {
			b.WriteString("Z ")
		}
	}
	return strings.TrimSpace(b.String())
}
