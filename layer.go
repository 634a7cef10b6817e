package xcf

import (
	"context"

	"github.com/TheHeadlessSourceMan/gimpFormats/internal/binutil"
)

// Layer is one entry of a Document's flat layer list. Group layers
// (Properties.IsGroup) are themselves flat list entries; the actual
// parent/child nesting is reconstructed from PROP_ITEM_PATH via
// Document.LayerTree, not stored as a native tree on disk.
type Layer struct {
	Width, Height int
	Mode          ColorMode
	Name          string
	Properties    *PropertyBag
	Hierarchy     *Hierarchy
	Mask          *Channel // nil if the layer has no layer mask
}

func decodeLayer(ctx context.Context, cur *binutil.Cursor, buf []byte, version uint32, compression CompressionMode, strict bool) (*Layer, error) {
	l := &Layer{}
	width, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	height, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	mode, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	l.Width, l.Height, l.Mode = int(width), int(height), ColorMode(mode)
	if l.Name, err = cur.ReadPascalString(); err != nil {
		return nil, err
	}
	if l.Properties, err = DecodePropertyBag(cur, strict); err != nil {
		return nil, err
	}
	hierPtr, err := readPointer(cur, version)
	if err != nil {
		return nil, err
	}
	maskPtr, err := readPointer(cur, version)
	if err != nil {
		return nil, err
	}
	hierCur, err := pointerTarget(buf, hierPtr, cur.Pos, "layer hierarchy pointer")
	if err != nil {
		return nil, err
	}
	if l.Hierarchy, err = decodeHierarchy(ctx, hierCur, buf, version, compression); err != nil {
		return nil, err
	}
	if l.Hierarchy.BPP != l.Mode.Channels() {
		return nil, errAt(ErrInconsistentColorMode, cur.Pos, "layer color mode vs hierarchy bpp")
	}
	if maskPtr != 0 {
		maskCur, err := pointerTarget(buf, maskPtr, cur.Pos, "layer mask pointer")
		if err != nil {
			return nil, err
		}
		if l.Mask, err = decodeChannel(ctx, maskCur, buf, version, compression, strict); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *Layer) encodeHeader(cur *binutil.Cursor) {
	cur.WriteU32(uint32(l.Width))
	cur.WriteU32(uint32(l.Height))
	cur.WriteU32(uint32(l.Mode))
	cur.WritePascalString(l.Name)
	cur.WriteBytes(l.Properties.Encode())
}
