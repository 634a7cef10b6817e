// Package gbr decodes and encodes GIMP's single-brush (.gbr) format: a
// small fixed header followed by raw, uncompressed grayscale or RGBA
// pixel data.
package gbr

import (
	"errors"
	"fmt"

	"github.com/TheHeadlessSourceMan/gimpFormats/internal/binutil"
)

// ErrBadMagic means the file did not contain the "GIMP" magic marker.
var ErrBadMagic = errors.New("gbr: bad magic")

// ErrUnsupportedVersion means the version field was not 2, the only
// version GIMP has ever written.
var ErrUnsupportedVersion = errors.New("gbr: unsupported version")

// ColorDepth is the brush's bytes-per-pixel, which also determines its
// pixel layout.
type ColorDepth uint32

const (
	DepthGray      ColorDepth = 1
	DepthGrayAlpha ColorDepth = 2
	DepthRGB       ColorDepth = 3
	DepthRGBA      ColorDepth = 4
)

// Brush is a single GIMP brush: a named grayscale or RGBA raster with a
// suggested stamp spacing.
type Brush struct {
	Version uint32
	Width   int
	Height  int
	Depth   ColorDepth
	Spacing uint32
	Name    string
	Pixels  []byte // Width*Height*int(Depth) bytes, row-major
}

// Decode reads one .gbr brush from data.
func Decode(data []byte) (*Brush, error) {
	b, _, err := DecodeAt(data, 0)
	return b, err
}

// DecodeAt decodes one brush starting at offset index, returning the
// number of bytes consumed — used by the gih brush-pipe and gpb legacy
// formats, which concatenate a .gbr blob with other data.
func DecodeAt(data []byte, index int) (*Brush, int, error) {
	cur := binutil.NewReader(data)
	cur.Seek(index)
	headerSize, err := cur.ReadU32()
	if err != nil {
		return nil, 0, err
	}
	b := &Brush{}
	if b.Version, err = cur.ReadU32(); err != nil {
		return nil, 0, err
	}
	if b.Version != 2 {
		return nil, 0, fmt.Errorf("%w: %d", ErrUnsupportedVersion, b.Version)
	}
	width, err := cur.ReadU32()
	if err != nil {
		return nil, 0, err
	}
	height, err := cur.ReadU32()
	if err != nil {
		return nil, 0, err
	}
	b.Width, b.Height = int(width), int(height)
	depth, err := cur.ReadU32()
	if err != nil {
		return nil, 0, err
	}
	b.Depth = ColorDepth(depth)
	magic, err := cur.ReadBytes(4)
	if err != nil {
		return nil, 0, err
	}
	if string(magic) != "GIMP" {
		return nil, 0, fmt.Errorf("%w: %q", ErrBadMagic, magic)
	}
	if b.Spacing, err = cur.ReadU32(); err != nil {
		return nil, 0, err
	}
	nameLen := int(headerSize) - (cur.Pos - index)
	if nameLen < 0 {
		return nil, 0, fmt.Errorf("gbr: header size %d too small", headerSize)
	}
	nameBytes, err := cur.ReadBytes(nameLen)
	if err != nil {
		return nil, 0, err
	}
	b.Name = string(nameBytes)
	pixelLen := b.Width * b.Height * int(b.Depth)
	if b.Pixels, err = cur.ReadBytes(pixelLen); err != nil {
		return nil, 0, err
	}
	b.Pixels = append([]byte(nil), b.Pixels...)
	return b, cur.Pos - index, nil
}

// Encode renders the brush back to its .gbr byte form.
func (b *Brush) Encode() []byte {
	cur := binutil.NewWriter()
	cur.WriteU32(uint32(28 + len(b.Name)))
	cur.WriteU32(b.Version)
	cur.WriteU32(uint32(b.Width))
	cur.WriteU32(uint32(b.Height))
	cur.WriteU32(uint32(b.Depth))
	cur.WriteBytes([]byte("GIMP"))
	cur.WriteU32(b.Spacing)
	cur.WriteBytes([]byte(b.Name))
	cur.WriteBytes(b.Pixels)
	return cur.Data
}
