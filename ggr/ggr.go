// Package ggr decodes and encodes GIMP's gradient (.ggr) format: a
// named, ordered list of blended color segments.
package ggr

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadMagic means the file did not begin with the "GIMP Gradient" header line.
var ErrBadMagic = errors.New("ggr: bad magic")

// BlendFunction selects how color is interpolated across a segment.
type BlendFunction int

const (
	BlendLinear BlendFunction = iota
	BlendCurved
	BlendSinusoidal
	BlendSphericalIncreasing
	BlendSphericalDecreasing
	BlendStep
)

// ColorType selects the color space segment interpolation runs in.
type ColorType int

const (
	ColorRGB ColorType = iota
	ColorHSVCCW
	ColorHSVCW
)

// EndpointColorType selects whether a segment endpoint is a fixed RGBA
// value or tracks GIMP's foreground/background color.
type EndpointColorType int

const (
	EndpointFixed EndpointColorType = iota
	EndpointForeground
	EndpointForegroundTransparent
	EndpointBackground
	EndpointBackgroundTransparent
)

// RGBA is a floating-point 0-1 color, as gradients store it.
type RGBA struct{ R, G, B, A float64 }

// Segment is one blended span of a gradient, running from LeftPosition
// to RightPosition with a midpoint controlling where the blend is
// centered.
type Segment struct {
	LeftPosition, MiddlePosition, RightPosition float64
	LeftColor, RightColor                       RGBA
	BlendFunc                                   BlendFunction
	ColorType                                   ColorType
	LeftColorType, RightColorType               EndpointColorType
	// HasExtended reports whether BlendFunc/ColorType/LeftColorType/
	// RightColorType were present on disk; GIMP's older files omit
	// them entirely rather than writing defaults.
	HasExtended bool
}

// Gradient is a named, ordered list of blended color segments.
type Gradient struct {
	Name     string
	Segments []Segment
}

// Decode reads one .ggr gradient from data.
func Decode(data []byte) (*Gradient, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	if !scanner.Scan() {
		return nil, fmt.Errorf("ggr: empty file")
	}
	if strings.TrimSpace(scanner.Text()) != "GIMP Gradient" {
		return nil, fmt.Errorf("%w: %q", ErrBadMagic, scanner.Text())
	}
	if !scanner.Scan() {
		return nil, fmt.Errorf("ggr: missing name line")
	}
	g := &Gradient{}
	nameLine := strings.TrimSpace(scanner.Text())
	if rest, ok := strings.CutPrefix(nameLine, "Name:"); ok {
		g.Name = strings.TrimSpace(rest)
	} else {
		g.Name = nameLine
	}
	if !scanner.Scan() {
		return nil, fmt.Errorf("ggr: missing segment count")
	}
	numSegments, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, fmt.Errorf("ggr: bad segment count: %w", err)
	}
	for i := 0; i < numSegments; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("ggr: truncated, expected %d segments, got %d", numSegments, i)
		}
		seg, err := decodeSegment(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("ggr: segment %d: %w", i, err)
		}
		g.Segments = append(g.Segments, seg)
	}
	return g, scanner.Err()
}

func decodeSegment(line string) (Segment, error) {
	fields := strings.Fields(line)
	if len(fields) < 11 || len(fields) > 15 {
		return Segment{}, fmt.Errorf("unexpected field count %d", len(fields))
	}
	nums := make([]float64, 11)
	for i := 0; i < 11; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Segment{}, fmt.Errorf("field %d: %w", i, err)
		}
		nums[i] = v
	}
	seg := Segment{
		LeftPosition:   nums[0],
		MiddlePosition: nums[1],
		RightPosition:  nums[2],
		LeftColor:      RGBA{nums[3], nums[4], nums[5], nums[6]},
		RightColor:     RGBA{nums[7], nums[8], nums[9], nums[10]},
	}
	if len(fields) >= 12 {
		seg.HasExtended = true
		n, err := strconv.Atoi(fields[11])
		if err != nil {
			return Segment{}, fmt.Errorf("blend function: %w", err)
		}
		seg.BlendFunc = BlendFunction(n)
	}
	if len(fields) >= 13 {
		n, err := strconv.Atoi(fields[12])
		if err != nil {
			return Segment{}, fmt.Errorf("color type: %w", err)
		}
		seg.ColorType = ColorType(n)
	}
	if len(fields) >= 14 {
		n, err := strconv.Atoi(fields[13])
		if err != nil {
			return Segment{}, fmt.Errorf("left color type: %w", err)
		}
		seg.LeftColorType = EndpointColorType(n)
	}
	if len(fields) >= 15 {
		n, err := strconv.Atoi(fields[14])
		if err != nil {
			return Segment{}, fmt.Errorf("right color type: %w", err)
		}
		seg.RightColorType = EndpointColorType(n)
	}
	return seg, nil
}

// Encode renders the gradient back to its .ggr text form.
func (g *Gradient) Encode() []byte {
	var buf bytes.Buffer
	buf.WriteString("GIMP Gradient\n")
	fmt.Fprintf(&buf, "Name: %s\n", g.Name)
	fmt.Fprintf(&buf, "%d\n", len(g.Segments))
	for _, seg := range g.Segments {
		buf.WriteString(encodeSegment(seg))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func encodeSegment(s Segment) string {
	fields := []string{
		formatFloat(s.LeftPosition),
		formatFloat(s.MiddlePosition),
		formatFloat(s.RightPosition),
		formatFloat(s.LeftColor.R), formatFloat(s.LeftColor.G),
		formatFloat(s.LeftColor.B), formatFloat(s.LeftColor.A),
		formatFloat(s.RightColor.R), formatFloat(s.RightColor.G),
		formatFloat(s.RightColor.B), formatFloat(s.RightColor.A),
	}
	if s.HasExtended {
		fields = append(fields,
			strconv.Itoa(int(s.BlendFunc)),
			strconv.Itoa(int(s.ColorType)),
			strconv.Itoa(int(s.LeftColorType)),
			strconv.Itoa(int(s.RightColorType)),
		)
	}
	return strings.Join(fields, " ")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}
