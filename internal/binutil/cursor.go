// Package binutil provides a positioned reader/writer over a byte buffer,
// the primitive that every gimpFormats codec is built on.
package binutil

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrTruncated is returned whenever a read would run past the end of the
// buffer.
var ErrTruncated = errors.New("binutil: truncated")

// Order selects the byte order a Cursor uses for multi-byte primitives.
// XCF and its ancillary binary formats are big-endian throughout; Order
// exists because some callers (none in this module's own formats, but
// callers embedding this package) may need little-endian access to the
// same buffer.
type Order = binary.ByteOrder

// Cursor is a positioned read/write view over a growable byte buffer.
// Reads advance Pos and fail with ErrTruncated rather than panicking;
// writes extend the buffer as needed.
type Cursor struct {
	Data  []byte
	Pos   int
	Order Order
}

// NewReader wraps an existing buffer for reading, starting at offset 0.
func NewReader(data []byte) *Cursor {
	return &Cursor{Data: data, Order: binary.BigEndian}
}

// NewWriter returns a Cursor ready to grow a fresh buffer from scratch.
func NewWriter() *Cursor {
	return &Cursor{Order: binary.BigEndian}
}

// Len returns the number of bytes in the underlying buffer.
func (c *Cursor) Len() int { return len(c.Data) }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.Data) - c.Pos }

// Seek moves the cursor to an absolute offset, without bounds checking
// against the buffer length (reads past the end still fail cleanly).
func (c *Cursor) Seek(pos int) { c.Pos = pos }

func (c *Cursor) need(n int) error {
	if c.Pos < 0 || n < 0 || c.Pos+n > len(c.Data) {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, n, c.Pos, len(c.Data))
	}
	return nil
}

// ReadBytes returns a slice of the next n raw bytes and advances Pos.
// The slice aliases the underlying buffer.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	b := c.Data[c.Pos : c.Pos+n]
	c.Pos += n
	return b, nil
}

// WriteBytes appends raw bytes and advances Pos.
func (c *Cursor) WriteBytes(b []byte) {
	c.Data = append(c.Data, b...)
	c.Pos = len(c.Data)
}

func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) WriteU8(v uint8) { c.WriteBytes([]byte{v}) }

func (c *Cursor) ReadI8() (int8, error) {
	v, err := c.ReadU8()
	return int8(v), err
}

func (c *Cursor) WriteI8(v int8) { c.WriteU8(uint8(v)) }

func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return c.Order.Uint16(b), nil
}

func (c *Cursor) WriteU16(v uint16) {
	var b [2]byte
	c.Order.PutUint16(b[:], v)
	c.WriteBytes(b[:])
}

func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

func (c *Cursor) WriteI16(v int16) { c.WriteU16(uint16(v)) }

func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return c.Order.Uint32(b), nil
}

func (c *Cursor) WriteU32(v uint32) {
	var b [4]byte
	c.Order.PutUint32(b[:], v)
	c.WriteBytes(b[:])
}

func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

func (c *Cursor) WriteI32(v int32) { c.WriteU32(uint32(v)) }

func (c *Cursor) ReadU64() (uint64, error) {
	b, err := c.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return c.Order.Uint64(b), nil
}

func (c *Cursor) WriteU64(v uint64) {
	var b [8]byte
	c.Order.PutUint64(b[:], v)
	c.WriteBytes(b[:])
}

func (c *Cursor) ReadI64() (int64, error) {
	v, err := c.ReadU64()
	return int64(v), err
}

func (c *Cursor) WriteI64(v int64) { c.WriteU64(uint64(v)) }

func (c *Cursor) ReadF32() (float32, error) {
	v, err := c.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (c *Cursor) WriteF32(v float32) { c.WriteU32(math.Float32bits(v)) }

func (c *Cursor) ReadF64() (float64, error) {
	v, err := c.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

func (c *Cursor) WriteF64(v float64) { c.WriteU64(math.Float64bits(v)) }

// ReadBool32 reads a 4-byte boolean flag, the width GIMP uses for every
// bool-shaped property payload.
func (c *Cursor) ReadBool32() (bool, error) {
	v, err := c.ReadU32()
	return v != 0, err
}

func (c *Cursor) WriteBool32(v bool) {
	if v {
		c.WriteU32(1)
	} else {
		c.WriteU32(0)
	}
}

// ReadPascalString reads XCF's length-prefixed UTF-8 string: a u32 byte
// count that includes the trailing NUL, followed by that many bytes. A
// count of zero encodes the empty string with no trailing NUL at all.
func (c *Cursor) ReadPascalString() (string, error) {
	n, err := c.ReadU32()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	b, err := c.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	if b[len(b)-1] != 0 {
		return "", fmt.Errorf("%w: pascal string missing trailing NUL", ErrTruncated)
	}
	return string(b[:len(b)-1]), nil
}

// WritePascalString writes s using XCF's length-prefixed string shape.
func (c *Cursor) WritePascalString(s string) {
	if s == "" {
		c.WriteU32(0)
		return
	}
	c.WriteU32(uint32(len(s)) + 1)
	c.WriteBytes([]byte(s))
	c.WriteU8(0)
}

// ReadCString reads a NUL-terminated ASCII string.
func (c *Cursor) ReadCString() (string, error) {
	start := c.Pos
	for {
		if c.Pos >= len(c.Data) {
			return "", fmt.Errorf("%w: unterminated C string", ErrTruncated)
		}
		if c.Data[c.Pos] == 0 {
			s := string(c.Data[start:c.Pos])
			c.Pos++
			return s, nil
		}
		c.Pos++
	}
}

// WriteCString writes a NUL-terminated ASCII string.
func (c *Cursor) WriteCString(s string) {
	c.WriteBytes([]byte(s))
	c.WriteU8(0)
}
