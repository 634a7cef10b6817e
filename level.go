package xcf

import (
	"context"

	"github.com/TheHeadlessSourceMan/gimpFormats/internal/binutil"
)

// Level is one mip level of a Hierarchy: a grid of TileEdge x TileEdge
// tiles covering Width x Height pixels, stored row-major with edge
// tiles clipped to the level's actual size. GIMP has never written more
// than one level per hierarchy; level 0 is always authoritative.
type Level struct {
	Width, Height int
	Tiles         [][]byte // row-major, interleaved pixel bytes per tile
}

func tileGrid(width, height int) (cols, rows int) {
	cols = (width + TileEdge - 1) / TileEdge
	rows = (height + TileEdge - 1) / TileEdge
	return
}

func tileDims(col, row, width, height int) (w, h int) {
	w = TileEdge
	if (col+1)*TileEdge > width {
		w = width - col*TileEdge
	}
	h = TileEdge
	if (row+1)*TileEdge > height {
		h = height - row*TileEdge
	}
	return
}

// decodeLevel reads one level at cur's current position: width, height,
// a zero-terminated tile pointer list, and the tile payloads those
// pointers address. Tiles decode through DecodeTilesParallel since tile
// order carries no meaning.
func decodeLevel(ctx context.Context, cur *binutil.Cursor, buf []byte, version uint32, compression CompressionMode, bpp int) (*Level, error) {
	width32, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	height32, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	width, height := int(width32), int(height32)
	pointers, err := readPointerList(cur, version)
	if err != nil {
		return nil, err
	}
	cols, rows := tileGrid(width, height)
	if len(pointers) != cols*rows {
		return nil, errAt(ErrLevelSizeMismatch, cur.Pos, "tile pointer count does not match grid")
	}
	raw := make([][]byte, len(pointers))
	tw := make([]int, len(pointers))
	th := make([]int, len(pointers))
	for i, p := range pointers {
		if int(p) >= len(buf) {
			return nil, errAt(ErrPointerOutOfRange, cur.Pos, "tile pointer")
		}
		raw[i] = buf[p:]
		col, row := i%cols, i/cols
		tw[i], th[i] = tileDims(col, row, width, height)
	}
	tiles, err := DecodeTilesParallel(ctx, raw, compression, tw, th, bpp)
	if err != nil {
		return nil, err
	}
	return &Level{Width: width, Height: height, Tiles: tiles}, nil
}

// encode renders the level's header, tile pointer list, and tile
// payloads. Because pointers must be known before the payloads that
// follow them are written, encoding happens in two passes: payloads are
// compressed into a side buffer first so their offsets (absolute
// positions in cur's buffer) are known when the pointer list itself
// is written.
func (l *Level) encode(cur *binutil.Cursor, version uint32, compression CompressionMode, bpp int) error {
	cur.WriteU32(uint32(l.Width))
	cur.WriteU32(uint32(l.Height))

	cols, rows := tileGrid(l.Width, l.Height)
	if len(l.Tiles) != cols*rows {
		return errAt(ErrLevelSizeMismatch, cur.Pos, "tile count does not match grid")
	}
	payloads := make([][]byte, len(l.Tiles))
	for i, pixels := range l.Tiles {
		col, row := i%cols, i/cols
		w, h := tileDims(col, row, l.Width, l.Height)
		enc, err := EncodeTile(pixels, compression, w, h, bpp)
		if err != nil {
			return err
		}
		payloads[i] = enc
	}

	pointerListLen := (len(payloads) + 1) * pointerSize(version)
	offset := cur.Pos + pointerListLen
	for _, p := range payloads {
		writePointer(cur, version, uint64(offset))
		offset += len(p)
	}
	writePointer(cur, version, 0)
	for _, p := range payloads {
		cur.WriteBytes(p)
	}
	return nil
}

// Raster assembles the level's tiles into one contiguous, row-major
// buffer of Width*Height*bpp bytes, the layout gimpImageInternals.py's
// `image` property builds by pasting each tile into a blank canvas at
// its grid position.
func (l *Level) Raster(bpp int) []byte {
	cols, _ := tileGrid(l.Width, l.Height)
	out := make([]byte, l.Width*l.Height*bpp)
	stride := l.Width * bpp
	for i, tile := range l.Tiles {
		col, row := i%cols, i/cols
		tw, th := tileDims(col, row, l.Width, l.Height)
		tileStride := tw * bpp
		x0, y0 := col*TileEdge, row*TileEdge
		for y := 0; y < th; y++ {
			srcOff := y * tileStride
			dstOff := (y0+y)*stride + x0*bpp
			copy(out[dstOff:dstOff+tileStride], tile[srcOff:srcOff+tileStride])
		}
	}
	return out
}

func pointerSize(version uint32) int {
	if pointerWidth64(version) {
		return 8
	}
	return 4
}
