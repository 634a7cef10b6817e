package xcf

import "github.com/TheHeadlessSourceMan/gimpFormats/internal/binutil"

// pointerWidth64 reports whether version stores file offsets as 64-bit
// values; versions before 11 use 32-bit offsets, which caps those files
// at 4GiB.
func pointerWidth64(version uint32) bool { return version >= 11 }

// readPointer reads one offset field, width selected by version.
func readPointer(cur *binutil.Cursor, version uint32) (uint64, error) {
	if pointerWidth64(version) {
		return cur.ReadU64()
	}
	v, err := cur.ReadU32()
	return uint64(v), err
}

// writePointer writes one offset field, width selected by version.
func writePointer(cur *binutil.Cursor, version uint32, v uint64) {
	if pointerWidth64(version) {
		cur.WriteU64(v)
		return
	}
	cur.WriteU32(uint32(v))
}

// readPointerList reads a zero-terminated list of offsets, the shape
// used for both the hierarchy/level pointer chain and a document's
// layer and channel pointer lists.
func readPointerList(cur *binutil.Cursor, version uint32) ([]uint64, error) {
	var out []uint64
	for {
		p, err := readPointer(cur, version)
		if err != nil {
			return nil, err
		}
		if p == 0 {
			return out, nil
		}
		out = append(out, p)
	}
}

// pointerTarget returns a cursor over buf positioned at p, the shape
// every pointed-to structure (hierarchy, level, layer, channel) is
// decoded from. errPos and what identify the pointer field itself for
// the out-of-range error, not the target position.
func pointerTarget(buf []byte, p uint64, errPos int, what string) (*binutil.Cursor, error) {
	if int(p) >= len(buf) {
		return nil, errAt(ErrPointerOutOfRange, errPos, what)
	}
	c := binutil.NewReader(buf)
	c.Seek(int(p))
	return c, nil
}
