package xcf

import (
	"context"

	"github.com/TheHeadlessSourceMan/gimpFormats/internal/binutil"
)

// Hierarchy is a Layer or Channel's pixel storage: a declared size and
// bytes-per-pixel, plus a pointer list that in principle addresses a
// mipmap pyramid of Levels. In every GIMP version that has ever shipped
// only level 0 is populated; any further pointers in the list are
// skipped rather than decoded.
type Hierarchy struct {
	Width, Height int
	BPP           int
	Level         *Level
}

func decodeHierarchy(ctx context.Context, cur *binutil.Cursor, buf []byte, version uint32, compression CompressionMode) (*Hierarchy, error) {
	width, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	height, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	bpp, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	if bpp < 1 || bpp > 4 {
		return nil, errAt(ErrCorruptBpp, cur.Pos, "hierarchy bpp")
	}
	pointers, err := readPointerList(cur, version)
	if err != nil {
		return nil, err
	}
	if len(pointers) == 0 {
		return nil, errAt(ErrLevelSizeMismatch, cur.Pos, "hierarchy has no levels")
	}
	levelCur, err := pointerTarget(buf, pointers[0], cur.Pos, "hierarchy level pointer")
	if err != nil {
		return nil, err
	}
	level, err := decodeLevel(ctx, levelCur, buf, version, compression, int(bpp))
	if err != nil {
		return nil, err
	}
	if level.Width != int(width) || level.Height != int(height) {
		return nil, errAt(ErrLevelSizeMismatch, cur.Pos, "level size does not match hierarchy")
	}
	return &Hierarchy{Width: int(width), Height: int(height), BPP: int(bpp), Level: level}, nil
}

func (h *Hierarchy) encode(cur *binutil.Cursor, version uint32, compression CompressionMode) error {
	cur.WriteU32(uint32(h.Width))
	cur.WriteU32(uint32(h.Height))
	cur.WriteU32(uint32(h.BPP))

	// One level pointer, immediately followed by the terminator and the
	// level's own bytes, mirroring decode's "only level 0 exists" rule.
	listLen := 2 * pointerSize(version)
	levelOffset := cur.Pos + listLen
	writePointer(cur, version, uint64(levelOffset))
	writePointer(cur, version, 0)
	return h.Level.encode(cur, version, compression, h.BPP)
}
