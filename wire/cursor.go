package wire

import (
	"math"

	"github.com/kagelund/serialcore/serialerr"
)

// Cursor is an advancing position inside a byte range, bounds-checked
// against its end on every read and write. The same Cursor type backs
// both encode (mutable range) and decode (the range is conceptually
// read-only, but Go has no separate read-only byte slice type); callers
// must not write through a Cursor obtained for decoding.
type Cursor struct {
	buf    []byte
	pos    int
	engine EndianEngine
}

// NewCursor creates a cursor over buf using the given storage order,
// starting at position 0.
func NewCursor(buf []byte, engine EndianEngine) *Cursor {
	return &Cursor{buf: buf, engine: engine}
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the total length of the underlying range.
func (c *Cursor) Len() int { return len(c.buf) }

// Remaining returns the number of unread/unwritten bytes ahead of pos.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

// Engine returns the cursor's configured storage order.
func (c *Cursor) Engine() EndianEngine { return c.engine }

// Clone returns an independent cursor over the same backing buffer at the
// same position. Used by the two-pass decoder: the init pass walks a
// clone so the real cursor's position is unaffected.
func (c *Cursor) Clone() *Cursor {
	return &Cursor{buf: c.buf, pos: c.pos, engine: c.engine}
}

// Bytes returns the full backing slice (not just the unread portion).
func (c *Cursor) Bytes() []byte { return c.buf }

func (c *Cursor) checkSpace(n int) error {
	if n < 0 || c.pos+n > len(c.buf) {
		return serialerr.ErrBufferOverflow
	}

	return nil
}

// Skip advances the cursor by n bytes without reading or writing, used by
// Init to size a fixed-width region.
func (c *Cursor) Skip(n int) error {
	if err := c.checkSpace(n); err != nil {
		return err
	}
	c.pos += n

	return nil
}

// WriteBytes copies b verbatim (no byte-swap) and advances the cursor.
func (c *Cursor) WriteBytes(b []byte) error {
	if err := c.checkSpace(len(b)); err != nil {
		return err
	}
	copy(c.buf[c.pos:], b)
	c.pos += len(b)

	return nil
}

// ReadBytes returns the next n bytes and advances the cursor. The
// returned slice aliases the cursor's backing array.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if err := c.checkSpace(n); err != nil {
		return nil, err
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}

func (c *Cursor) WriteUint8(v uint8) error {
	if err := c.checkSpace(1); err != nil {
		return err
	}
	c.buf[c.pos] = v
	c.pos++

	return nil
}

func (c *Cursor) ReadUint8() (uint8, error) {
	if err := c.checkSpace(1); err != nil {
		return 0, err
	}
	v := c.buf[c.pos]
	c.pos++

	return v, nil
}

func (c *Cursor) WriteUint16(v uint16) error {
	if err := c.checkSpace(2); err != nil {
		return err
	}
	c.engine.PutUint16(c.buf[c.pos:], v)
	c.pos += 2

	return nil
}

func (c *Cursor) ReadUint16() (uint16, error) {
	if err := c.checkSpace(2); err != nil {
		return 0, err
	}
	v := c.engine.Uint16(c.buf[c.pos:])
	c.pos += 2

	return v, nil
}

func (c *Cursor) WriteUint32(v uint32) error {
	if err := c.checkSpace(4); err != nil {
		return err
	}
	c.engine.PutUint32(c.buf[c.pos:], v)
	c.pos += 4

	return nil
}

func (c *Cursor) ReadUint32() (uint32, error) {
	if err := c.checkSpace(4); err != nil {
		return 0, err
	}
	v := c.engine.Uint32(c.buf[c.pos:])
	c.pos += 4

	return v, nil
}

func (c *Cursor) WriteUint64(v uint64) error {
	if err := c.checkSpace(8); err != nil {
		return err
	}
	c.engine.PutUint64(c.buf[c.pos:], v)
	c.pos += 8

	return nil
}

func (c *Cursor) ReadUint64() (uint64, error) {
	if err := c.checkSpace(8); err != nil {
		return 0, err
	}
	v := c.engine.Uint64(c.buf[c.pos:])
	c.pos += 8

	return v, nil
}

func (c *Cursor) WriteInt8(v int8) error   { return c.WriteUint8(uint8(v)) }
func (c *Cursor) ReadInt8() (int8, error)  { v, err := c.ReadUint8(); return int8(v), err }
func (c *Cursor) WriteInt16(v int16) error { return c.WriteUint16(uint16(v)) }
func (c *Cursor) ReadInt16() (int16, error) {
	v, err := c.ReadUint16()

	return int16(v), err
}

func (c *Cursor) WriteInt32(v int32) error { return c.WriteUint32(uint32(v)) }
func (c *Cursor) ReadInt32() (int32, error) {
	v, err := c.ReadUint32()

	return int32(v), err
}

func (c *Cursor) WriteInt64(v int64) error { return c.WriteUint64(uint64(v)) }
func (c *Cursor) ReadInt64() (int64, error) {
	v, err := c.ReadUint64()

	return int64(v), err
}

// WriteFloat32 swaps on the bitwise-equivalent uint32 view so a signalling
// NaN's bit pattern is never reinterpreted during the swap.
func (c *Cursor) WriteFloat32(v float32) error {
	return c.WriteUint32(math.Float32bits(v))
}

func (c *Cursor) ReadFloat32() (float32, error) {
	v, err := c.ReadUint32()

	return math.Float32frombits(v), err
}

func (c *Cursor) WriteFloat64(v float64) error {
	return c.WriteUint64(math.Float64bits(v))
}

func (c *Cursor) ReadFloat64() (float64, error) {
	v, err := c.ReadUint64()

	return math.Float64frombits(v), err
}
