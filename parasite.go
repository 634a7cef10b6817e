package xcf

import "github.com/TheHeadlessSourceMan/gimpFormats/internal/binutil"

// Parasite is an opaque, named blob of plugin-private data that can be
// attached to a Document, Layer, or Channel via PROP_PARASITES.
type Parasite struct {
	Name  string
	Flags uint32
	Data  []byte
}

func (p *Parasite) decode(cur *binutil.Cursor) error {
	var err error
	if p.Name, err = cur.ReadPascalString(); err != nil {
		return err
	}
	if p.Flags, err = cur.ReadU32(); err != nil {
		return err
	}
	n, err := cur.ReadU32()
	if err != nil {
		return err
	}
	if p.Data, err = cur.ReadBytes(int(n)); err != nil {
		return err
	}
	p.Data = append([]byte(nil), p.Data...)
	return nil
}

func (p *Parasite) encode(cur *binutil.Cursor) {
	cur.WritePascalString(p.Name)
	cur.WriteU32(p.Flags)
	cur.WriteU32(uint32(len(p.Data)))
	cur.WriteBytes(p.Data)
}
