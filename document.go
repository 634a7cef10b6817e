// Package xcf decodes and encodes GIMP's native .xcf image format,
// along with the ancillary brush, pattern, palette, gradient, and tool
// preset formats GIMP ships alongside it (see the gbr, pat, gih, gpb,
// gpl, ggr, vbr, and gtp subpackages).
package xcf

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"

	"github.com/TheHeadlessSourceMan/gimpFormats/internal/binutil"
)

const magic = "gimp xcf "

// Document is a fully decoded .xcf file: its canvas dimensions, color
// precision, document-level properties, and flat layer and channel
// lists.
type Document struct {
	Version       uint32
	Width, Height int
	BaseColorMode BaseColorMode
	Precision     Precision
	Properties    *PropertyBag
	Layers        []*Layer
	Channels      []*Channel
}

// Decode reads a complete .xcf file, rejecting any unrecognized
// property id it encounters.
func Decode(r io.Reader) (*Document, error) {
	return decode(context.Background(), r, true)
}

// DecodeLenient behaves like Decode but tolerates unrecognized property
// ids, preserving their raw bytes instead of failing. Use it to load
// files written by a newer GIMP than this package knows about.
func DecodeLenient(r io.Reader) (*Document, error) {
	return decode(context.Background(), r, false)
}

func decode(ctx context.Context, r io.Reader, strict bool) (*Document, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	cur := binutil.NewReader(buf)

	magicBytes, err := cur.ReadBytes(len(magic))
	if err != nil {
		return nil, err
	}
	if string(magicBytes) != magic {
		return nil, errAt(ErrBadMagic, 0, string(magicBytes))
	}
	versionToken, err := cur.ReadCString()
	if err != nil {
		return nil, err
	}
	version, err := parseVersionToken(versionToken)
	if err != nil {
		return nil, err
	}

	doc := &Document{Version: version}
	width, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	height, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	doc.Width, doc.Height = int(width), int(height)
	baseMode, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	doc.BaseColorMode = BaseColorMode(baseMode)

	var precisionCode uint32
	if version >= 4 {
		if precisionCode, err = cur.ReadU32(); err != nil {
			return nil, err
		}
	}
	if doc.Precision, err = DecodePrecision(version, precisionCode); err != nil {
		return nil, err
	}

	if doc.Properties, err = DecodePropertyBag(cur, strict); err != nil {
		return nil, err
	}

	var compression CompressionMode = CompressionNone
	if doc.Properties.Compression != nil {
		compression = *doc.Properties.Compression
	}

	layerPointers, err := readPointerList(cur, version)
	if err != nil {
		return nil, err
	}
	channelPointers, err := readPointerList(cur, version)
	if err != nil {
		return nil, err
	}

	doc.Layers = make([]*Layer, 0, len(layerPointers))
	for _, p := range layerPointers {
		lc, err := pointerTarget(buf, p, cur.Pos, "layer pointer")
		if err != nil {
			return nil, err
		}
		layer, err := decodeLayer(ctx, lc, buf, version, compression, strict)
		if err != nil {
			return nil, err
		}
		doc.Layers = append(doc.Layers, layer)
	}

	doc.Channels = make([]*Channel, 0, len(channelPointers))
	for _, p := range channelPointers {
		cc, err := pointerTarget(buf, p, cur.Pos, "channel pointer")
		if err != nil {
			return nil, err
		}
		channel, err := decodeChannel(ctx, cc, buf, version, compression, strict)
		if err != nil {
			return nil, err
		}
		doc.Channels = append(doc.Channels, channel)
	}

	return doc, nil
}

func parseVersionToken(token string) (uint32, error) {
	if token == "file" {
		return 0, nil
	}
	if len(token) != 4 || token[0] != 'v' {
		return 0, errAt(ErrUnsupportedVersion, 0, token)
	}
	n, err := strconv.Atoi(token[1:])
	if err != nil {
		return 0, errAt(ErrUnsupportedVersion, 0, token)
	}
	return uint32(n), nil
}

func versionToken(version uint32) string {
	if version == 0 {
		return "file"
	}
	return fmt.Sprintf("v%03d", version)
}

// Encode renders the document back to its on-disk byte form. It builds
// the file in a single forward pass: a fixed-size header and pointer
// lists are reserved by writing placeholder offsets first, each layer
// and channel is then serialized in turn, and the offsets recorded
// earlier are patched to its actual position once known — the standard
// two-pass approach this format's pointer-heavy layout requires.
func (d *Document) Encode() ([]byte, error) {
	cur := binutil.NewWriter()
	cur.WriteBytes([]byte(magic))
	cur.WriteCString(versionToken(d.Version))
	cur.WriteU32(uint32(d.Width))
	cur.WriteU32(uint32(d.Height))
	cur.WriteU32(uint32(d.BaseColorMode))
	if d.Version >= 4 {
		code, err := d.Precision.Encode(d.Version)
		if err != nil {
			return nil, err
		}
		cur.WriteU32(code)
	}
	cur.WriteBytes(d.Properties.Encode())

	// Matches decode's default: a missing PROP_COMPRESSION means
	// uncompressed tiles, not RLE.
	compression := CompressionNone
	if d.Properties.Compression != nil {
		compression = *d.Properties.Compression
	}

	layerListPos := cur.Pos
	for range d.Layers {
		writePointer(cur, d.Version, 0)
	}
	writePointer(cur, d.Version, 0)
	channelListPos := cur.Pos
	for range d.Channels {
		writePointer(cur, d.Version, 0)
	}
	writePointer(cur, d.Version, 0)

	layerOffsets := make([]uint64, len(d.Layers))
	for i, l := range d.Layers {
		layerOffsets[i] = uint64(cur.Pos)
		if err := encodeLayerBody(cur, d.Version, compression, l); err != nil {
			return nil, err
		}
	}
	channelOffsets := make([]uint64, len(d.Channels))
	for i, c := range d.Channels {
		channelOffsets[i] = uint64(cur.Pos)
		if err := encodeChannelBody(cur, d.Version, compression, c); err != nil {
			return nil, err
		}
	}

	patchPointerList(cur.Data, d.Version, layerListPos, layerOffsets)
	patchPointerList(cur.Data, d.Version, channelListPos, channelOffsets)
	return cur.Data, nil
}

// encodeLayerBody writes one layer's header, then its hierarchy, then
// its optional mask, patching the hierarchy/mask pointer fields that
// sit between the header and the hierarchy bytes once their positions
// are known.
func encodeLayerBody(cur *binutil.Cursor, version uint32, compression CompressionMode, l *Layer) error {
	l.encodeHeader(cur)
	pointerFieldPos := cur.Pos
	writePointer(cur, version, 0) // hierarchy pointer placeholder
	writePointer(cur, version, 0) // mask pointer placeholder

	hierPos := cur.Pos
	if err := l.Hierarchy.encode(cur, version, compression); err != nil {
		return err
	}
	var maskPos uint64
	if l.Mask != nil {
		maskPos = uint64(cur.Pos)
		l.Mask.encodeHeader(cur)
		if err := l.Mask.Hierarchy.encode(cur, version, compression); err != nil {
			return err
		}
	}
	patchPointer(cur.Data, version, pointerFieldPos, uint64(hierPos))
	patchPointer(cur.Data, version, pointerFieldPos+pointerSize(version), maskPos)
	return nil
}

// encodeChannelBody mirrors encodeLayerBody: the channel's header is
// followed by a single hierarchy pointer field, reserved here and
// patched once the hierarchy bytes that follow it are placed.
func encodeChannelBody(cur *binutil.Cursor, version uint32, compression CompressionMode, c *Channel) error {
	c.encodeHeader(cur)
	pointerFieldPos := cur.Pos
	writePointer(cur, version, 0) // hierarchy pointer placeholder

	hierPos := cur.Pos
	if err := c.Hierarchy.encode(cur, version, compression); err != nil {
		return err
	}
	patchPointer(cur.Data, version, pointerFieldPos, uint64(hierPos))
	return nil
}

func patchPointer(buf []byte, version uint32, pos int, value uint64) {
	w := pointerSize(version)
	if w == 8 {
		binary.BigEndian.PutUint64(buf[pos:pos+8], value)
	} else {
		binary.BigEndian.PutUint32(buf[pos:pos+4], uint32(value))
	}
}

func patchPointerList(buf []byte, version uint32, listPos int, values []uint64) {
	w := pointerSize(version)
	for i, v := range values {
		patchPointer(buf, version, listPos+i*w, v)
	}
}

// LayerNode is one node of the tree LayerTree reconstructs from the
// flat layer list's PROP_ITEM_PATH entries.
type LayerNode struct {
	Layer    *Layer
	Children []*LayerNode
}

// LayerTree rebuilds the parent/child nesting GIMP's Layers dialog
// shows from each layer's PROP_ITEM_PATH, the only place that structure
// survives on disk. A layer with no item path is a top-level sibling.
func (d *Document) LayerTree() []*LayerNode {
	roots := []*LayerNode{}
	byPath := map[string]*LayerNode{}
	pathKey := func(path []uint32) string {
		return fmt.Sprint(path)
	}
	nodes := make([]*LayerNode, len(d.Layers))
	for i, l := range d.Layers {
		nodes[i] = &LayerNode{Layer: l}
		if len(l.Properties.ItemPath) > 0 {
			byPath[pathKey(l.Properties.ItemPath)] = nodes[i]
		}
	}
	for i, l := range d.Layers {
		path := l.Properties.ItemPath
		if len(path) == 0 {
			roots = append(roots, nodes[i])
			continue
		}
		parentPath := path[:len(path)-1]
		if parent, ok := byPath[pathKey(parentPath)]; ok {
			parent.Children = append(parent.Children, nodes[i])
		} else {
			roots = append(roots, nodes[i])
		}
	}
	return roots
}
