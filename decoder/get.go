package nanocbor

import (
	"math"

	"github.com/x448/float16"
)

// Uint32 decodes an unsigned integer item into 32 bits and advances past
// it. Arguments encoded wider than 4 bytes fail with UintOverflow even
// when the value itself would fit.
func (c *Cursor) Uint32() (uint32, error) {
	v, n, err := c.readUint(addInfoUint32, majorTypeUint)
	if err != nil {
		return 0, err
	}
	c.advance(n)
	return uint32(v), nil
}

// Uint64 decodes an unsigned integer item of any width and advances past it.
func (c *Cursor) Uint64() (uint64, error) {
	v, n, err := c.readUint(addInfoUint64, majorTypeUint)
	if err != nil {
		return 0, err
	}
	c.advance(n)
	return v, nil
}

// Int32 decodes a signed integer item into 32 bits and advances past it.
// The unsigned interpretation is attempted first; only a major-type
// mismatch falls through to the negative-integer interpretation, where the
// decoded magnitude m yields -(m)-1. Both branches leave the cursor
// untouched on failure, which is what makes the fallback legal.
func (c *Cursor) Int32() (int32, error) {
	v, n, err := c.readUint(addInfoUint32, majorTypeUint)
	if err == nil {
		if v > math.MaxInt32 {
			return 0, IntOverflow{Value: int64(v), FailedBitsize: 32}
		}
		c.advance(n)
		return int32(v), nil
	}
	if _, ok := err.(InvalidPrefixError); !ok {
		return 0, err
	}
	v, n, err = c.readUint(addInfoUint32, majorTypeNegInt)
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt32 {
		return 0, IntOverflow{Value: -1 - int64(v), FailedBitsize: 32}
	}
	c.advance(n)
	return -1 - int32(v), nil
}

// Int64 decodes a signed integer item into 64 bits and advances past it.
func (c *Cursor) Int64() (int64, error) {
	v, n, err := c.readUint(addInfoUint64, majorTypeUint)
	if err == nil {
		if v > math.MaxInt64 {
			return 0, IntOverflow{Value: int64(v), FailedBitsize: 64}
		}
		c.advance(n)
		return int64(v), nil
	}
	if _, ok := err.(InvalidPrefixError); !ok {
		return 0, err
	}
	v, n, err = c.readUint(addInfoUint64, majorTypeNegInt)
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt64 {
		// The magnitude itself does not fit int64; report the closest
		// representable value.
		return 0, IntOverflow{Value: math.MinInt64, FailedBitsize: 64}
	}
	c.advance(n)
	return -1 - int64(v), nil
}

// Bytes decodes a byte string and returns a view into the cursor's buffer.
// No copy is made; the view stays valid only while the buffer does.
func (c *Cursor) Bytes() ([]byte, error) {
	return c.str(majorTypeBytes)
}

// Text decodes a text string and returns a view into the cursor's buffer.
// Text and byte strings differ only in their type tag here: no UTF-8
// validation is performed.
func (c *Cursor) Text() ([]byte, error) {
	return c.str(majorTypeText)
}

// TextString decodes a text string as a string sharing the buffer's
// memory. The same lifetime rules as Text apply: the buffer must stay
// immutable while the string is in use.
func (c *Cursor) TextString() (string, error) {
	v, err := c.str(majorTypeText)
	if err != nil {
		return "", err
	}
	return UnsafeString(v), nil
}

func (c *Cursor) str(major uint8) ([]byte, error) {
	ln, n, err := c.readUint(sizeMaxInfo, major)
	if err != nil {
		return nil, err
	}
	if uint64(len(c.buf)-c.pos-n) < ln {
		return nil, ErrShortBytes
	}
	start := c.pos + n
	c.advance(n + int(ln))
	return c.buf[start : start+int(ln)], nil
}

// Bool decodes a false or true item; the low bit of the matched byte
// carries the value.
func (c *Cursor) Bool() (bool, error) {
	if c.pos >= len(c.buf) {
		return false, ErrShortBytes
	}
	head := c.buf[c.pos]
	if head&^1 != makeByte(majorTypeSimple, simpleFalse) {
		return false, TypeError{Method: BoolType, Encoded: getType(head)}
	}
	c.advance(1)
	return head&1 == 1, nil
}

// Null consumes a null item.
func (c *Cursor) Null() error {
	if c.pos >= len(c.buf) {
		return ErrShortBytes
	}
	if c.buf[c.pos] != makeByte(majorTypeSimple, simpleNull) {
		return TypeError{Method: NilType, Encoded: getType(c.buf[c.pos])}
	}
	c.advance(1)
	return nil
}

// Simple decodes a non-float simple value: 0..23 directly, or 32..255
// following an 0xf8 prefix. Float encodings are not handled here.
func (c *Cursor) Simple() (uint8, error) {
	if c.pos >= len(c.buf) {
		return 0, ErrShortBytes
	}
	head := c.buf[c.pos]
	if got := getMajorType(head); got != majorTypeSimple {
		return 0, badPrefix(got, majorTypeSimple)
	}
	info := getAddInfo(head)
	switch {
	case info <= addInfoDirect:
		c.advance(1)
		return info, nil
	case info == addInfoUint8:
		if len(c.buf)-c.pos < 2 {
			return 0, ErrShortBytes
		}
		v := c.buf[c.pos+1]
		c.advance(2)
		return v, nil
	default:
		return 0, InvalidAdditionalInfoError{Major: majorTypeSimple, Info: info}
	}
}

// Float32 decodes a half- or single-precision float item. Half-precision
// bits are widened through the IEEE 754 binary16 conversion.
func (c *Cursor) Float32() (float32, error) {
	if c.pos >= len(c.buf) {
		return 0, ErrShortBytes
	}
	switch c.buf[c.pos] {
	case makeByte(majorTypeSimple, simpleFloat16):
		if len(c.buf)-c.pos < 3 {
			return 0, ErrShortBytes
		}
		v := float16.Frombits(uint16(beUint(c.buf[c.pos+1 : c.pos+3]))).Float32()
		c.advance(3)
		return v, nil
	case makeByte(majorTypeSimple, simpleFloat32):
		if len(c.buf)-c.pos < 5 {
			return 0, ErrShortBytes
		}
		v := math.Float32frombits(uint32(beUint(c.buf[c.pos+1 : c.pos+5])))
		c.advance(5)
		return v, nil
	}
	return 0, TypeError{Method: Float32Type, Encoded: getType(c.buf[c.pos])}
}

// Float64 decodes a float item of any precision.
func (c *Cursor) Float64() (float64, error) {
	if c.pos >= len(c.buf) {
		return 0, ErrShortBytes
	}
	if c.buf[c.pos] == makeByte(majorTypeSimple, simpleFloat64) {
		if len(c.buf)-c.pos < 9 {
			return 0, ErrShortBytes
		}
		v := math.Float64frombits(beUint(c.buf[c.pos+1 : c.pos+9]))
		c.advance(9)
		return v, nil
	}
	f, err := c.Float32()
	if err != nil {
		if te, ok := err.(TypeError); ok {
			te.Method = Float64Type
			return 0, te
		}
		return 0, err
	}
	return float64(f), nil
}

// Tag decodes a semantic tag number and advances past the tag header. The
// tagged content stays at the cursor as the next item; inside a definite
// container the header and its content each consume one slot.
func (c *Cursor) Tag() (uint64, error) {
	v, n, err := c.readUint(addInfoUint64, majorTypeTag)
	if err != nil {
		return 0, err
	}
	c.advance(n)
	return v, nil
}
