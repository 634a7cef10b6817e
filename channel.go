package xcf

import (
	"context"

	"github.com/TheHeadlessSourceMan/gimpFormats/internal/binutil"
)

// Channel is a single-plane grayscale mask: a saved selection, a
// layer mask, or a user-created channel in the Channels dialog.
type Channel struct {
	Width, Height int
	Name          string
	Properties    *PropertyBag
	Hierarchy     *Hierarchy
}

func decodeChannel(ctx context.Context, cur *binutil.Cursor, buf []byte, version uint32, compression CompressionMode, strict bool) (*Channel, error) {
	ch := &Channel{}
	width, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	height, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	ch.Width, ch.Height = int(width), int(height)
	if ch.Name, err = cur.ReadPascalString(); err != nil {
		return nil, err
	}
	if ch.Properties, err = DecodePropertyBag(cur, strict); err != nil {
		return nil, err
	}
	hierPtr, err := readPointer(cur, version)
	if err != nil {
		return nil, err
	}
	hierCur, err := pointerTarget(buf, hierPtr, cur.Pos, "channel hierarchy pointer")
	if err != nil {
		return nil, err
	}
	if ch.Hierarchy, err = decodeHierarchy(ctx, hierCur, buf, version, compression); err != nil {
		return nil, err
	}
	return ch, nil
}

// encodeHeader writes everything up to (not including) the hierarchy
// pointer; the caller patches that pointer in once the hierarchy itself
// has been placed.
func (c *Channel) encodeHeader(cur *binutil.Cursor) {
	cur.WriteU32(uint32(c.Width))
	cur.WriteU32(uint32(c.Height))
	cur.WritePascalString(c.Name)
	cur.WriteBytes(c.Properties.Encode())
}
