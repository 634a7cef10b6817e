// Package pat decodes and encodes GIMP's pattern (.pat) format: a
// fixed header followed by raw, uncompressed grayscale or RGBA pixel
// data, tiled seamlessly when used as a fill pattern.
package pat

import (
	"errors"
	"fmt"

	"github.com/TheHeadlessSourceMan/gimpFormats/internal/binutil"
)

// ErrBadMagic means the file did not contain the "GPAT" magic marker.
var ErrBadMagic = errors.New("pat: bad magic")

// ColorDepth is the pattern's bytes-per-pixel.
type ColorDepth uint32

const (
	DepthGray      ColorDepth = 1
	DepthGrayAlpha ColorDepth = 2
	DepthRGB       ColorDepth = 3
	DepthRGBA      ColorDepth = 4
)

// Pattern is a single GIMP fill pattern: a named, tileable raster.
type Pattern struct {
	Version uint32
	Width   int
	Height  int
	Depth   ColorDepth
	Name    string
	Pixels  []byte
}

// Decode reads one .pat pattern from data.
func Decode(data []byte) (*Pattern, error) {
	p, _, err := DecodeAt(data, 0)
	return p, err
}

// DecodeAt decodes one pattern starting at offset index, returning the
// number of bytes consumed — used by the legacy .gpb format, which
// concatenates a .gbr blob with a .pat blob.
func DecodeAt(data []byte, index int) (*Pattern, int, error) {
	cur := binutil.NewReader(data)
	cur.Seek(index)
	headerSize, err := cur.ReadU32()
	if err != nil {
		return nil, 0, err
	}
	p := &Pattern{}
	if p.Version, err = cur.ReadU32(); err != nil {
		return nil, 0, err
	}
	width, err := cur.ReadU32()
	if err != nil {
		return nil, 0, err
	}
	height, err := cur.ReadU32()
	if err != nil {
		return nil, 0, err
	}
	p.Width, p.Height = int(width), int(height)
	depth, err := cur.ReadU32()
	if err != nil {
		return nil, 0, err
	}
	p.Depth = ColorDepth(depth)
	magic, err := cur.ReadBytes(4)
	if err != nil {
		return nil, 0, err
	}
	if string(magic) != "GPAT" {
		return nil, 0, fmt.Errorf("%w: %q", ErrBadMagic, magic)
	}
	nameLen := int(headerSize) - (cur.Pos - index)
	if nameLen < 0 {
		return nil, 0, fmt.Errorf("pat: header size %d too small", headerSize)
	}
	nameBytes, err := cur.ReadBytes(nameLen)
	if err != nil {
		return nil, 0, err
	}
	p.Name = string(nameBytes)
	pixelLen := p.Width * p.Height * int(p.Depth)
	if p.Pixels, err = cur.ReadBytes(pixelLen); err != nil {
		return nil, 0, err
	}
	p.Pixels = append([]byte(nil), p.Pixels...)
	return p, cur.Pos - index, nil
}

// Encode renders the pattern back to its .pat byte form.
func (p *Pattern) Encode() []byte {
	cur := binutil.NewWriter()
	cur.WriteU32(uint32(24 + len(p.Name)))
	cur.WriteU32(p.Version)
	cur.WriteU32(uint32(p.Width))
	cur.WriteU32(uint32(p.Height))
	cur.WriteU32(uint32(p.Depth))
	cur.WriteBytes([]byte("GPAT"))
	cur.WriteBytes([]byte(p.Name))
	cur.WriteBytes(p.Pixels)
	return cur.Data
}
