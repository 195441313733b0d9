package nanocbor

import "errors"

// ErrTrailingBytes is returned by WellFormed when bytes remain after the
// first item.
var ErrTrailingBytes error = errors.New("nanocbor: trailing bytes after item")

// Skip consumes exactly one well-formed item of any type without exposing
// its payload, descending into arrays and maps at most RecursionMax levels
// deep. It doubles as the well-formedness check and as the fast-forward
// primitive for selective traversal.
//
// When a failure occurs inside a container, the progress made before the
// failure is still committed to c through Leave, so the position reflects
// how far the walk got. Errors propagated out of a container are wrapped
// with the slot indices on the way up; Cause recovers the underlying
// error.
func (c *Cursor) Skip() error {
	return c.skip(RecursionMax)
}

func (c *Cursor) skip(limit int) error {
	if limit == 0 {
		return ErrRecursion
	}
	if c.pos >= len(c.buf) {
		return ErrShortBytes
	}

	switch getMajorType(c.buf[c.pos]) {
	case majorTypeBytes:
		_, err := c.Bytes()
		return err

	case majorTypeText:
		_, err := c.Text()
		return err

	case majorTypeArray, majorTypeMap:
		var child Cursor
		var err error
		if getMajorType(c.buf[c.pos]) == majorTypeMap {
			child, err = c.EnterMap()
		} else {
			child, err = c.EnterArray()
		}
		if err != nil {
			return err
		}
		for i := 0; !child.AtEnd(); i++ {
			if err = child.skip(limit - 1); err != nil {
				err = WrapError(err, i)
				break
			}
		}
		c.Leave(&child)
		return err

	default:
		return c.skipSimple()
	}
}

// skipSimple advances past an item that carries no payload beyond its
// header argument: integers, tag headers, and simple/float values.
func (c *Cursor) skipSimple() error {
	major := getMajorType(c.buf[c.pos])
	_, n, err := c.readUint(addInfoUint64, major)
	if err != nil {
		return err
	}
	c.advance(n)
	return nil
}

// WellFormed reports whether b contains exactly one well-formed item, up
// to the RecursionMax nesting ceiling.
func WellFormed(b []byte) error {
	c := NewCursor(b)
	if err := c.Skip(); err != nil {
		return err
	}
	if !c.AtEnd() {
		return ErrTrailingBytes
	}
	return nil
}

// WellFormedSequence validates every item in b until the buffer is
// exhausted, as for a CBOR sequence (RFC 8742). An empty buffer is a valid
// empty sequence.
func WellFormedSequence(b []byte) error {
	c := NewCursor(b)
	for !c.AtEnd() {
		if err := c.Skip(); err != nil {
			return err
		}
	}
	return nil
}
