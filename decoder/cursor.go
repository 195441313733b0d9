package nanocbor

const (
	flagContainer  uint8 = 1 << 0
	flagIndefinite uint8 = 1 << 1
)

// indefiniteRemaining is the slot-count sentinel for containers that did
// not declare a count; their end is detected by the break byte instead.
const indefiniteRemaining = ^uint32(0)

// Cursor is a decode position within a CBOR buffer. The zero value is a
// cursor over an empty buffer; NewCursor builds one over caller-owned
// bytes. All getters mutate the cursor in place and only on success: a
// failed call leaves the position and the container bookkeeping exactly as
// they were, so the caller may retry with a different getter or restore a
// saved copy.
//
// Cursors derived by EnterArray/EnterMap share the parent's window (same
// backing array, same limit) but are independent values; they converge
// only through an explicit Leave.
type Cursor struct {
	buf       []byte
	pos       int
	flags     uint8
	remaining uint32
}

// NewCursor returns a top-level cursor over b. The buffer must stay
// immutable and alive for as long as the cursor or any view returned by
// Bytes/Text/TextString is in use.
func NewCursor(b []byte) Cursor {
	return Cursor{buf: b}
}

// Remaining returns the number of unread bytes in the cursor's window.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

// Type reports the kind of the item at the cursor without consuming it.
// It returns InvalidType when no byte is left; callers iterating a
// container should consult AtEnd first.
func (c *Cursor) Type() Type {
	if c.pos >= len(c.buf) {
		return InvalidType
	}
	return getType(c.buf[c.pos])
}

// AtEnd reports whether the cursor has no items left. For a definite
// container this is a count check; for a top-level cursor, a byte-limit
// check.
//
// For an indefinite container AtEnd is deliberately stateful: observing
// the break byte consumes it. Call AtEnd exactly once per iteration step,
// never as a side-effect-free peek.
func (c *Cursor) AtEnd() bool {
	if c.flags&flagContainer != 0 {
		if c.flags&flagIndefinite != 0 &&
			c.pos < len(c.buf) && c.buf[c.pos] == makeByte(majorTypeSimple, simpleBreak) {
			c.pos++
			return true
		}
		return c.remaining == 0
	}
	return c.pos >= len(c.buf)
}

// readUint decodes the header argument at the cursor: the 5-bit additional
// info either carries the value directly or selects 1/2/4/8 trailing
// big-endian bytes. maxInfo is the widest trailing encoding the caller can
// accept (addInfoUint8..addInfoUint64); wider encodings fail with
// UintOverflow. The cursor is never advanced here — on success the
// magnitude and the total header size in bytes are returned and committing
// is up to the caller.
func (c *Cursor) readUint(maxInfo uint8, major uint8) (uint64, int, error) {
	if c.pos >= len(c.buf) {
		return 0, 0, ErrShortBytes
	}
	head := c.buf[c.pos]
	if got := getMajorType(head); got != major {
		return 0, 0, badPrefix(got, major)
	}
	info := getAddInfo(head)
	if info <= addInfoDirect {
		return uint64(info), 1, nil
	}
	if info > addInfoUint64 {
		return 0, 0, InvalidAdditionalInfoError{Major: major, Info: info}
	}
	if info > maxInfo {
		// Decode the oversized argument for the error message when its
		// bytes are present; the width alone already decides the outcome.
		var v uint64
		if n := 1 << (info - addInfoUint8); len(c.buf)-c.pos-1 >= n {
			v = beUint(c.buf[c.pos+1 : c.pos+1+n])
		}
		return 0, 0, UintOverflow{Value: v, FailedBitsize: 8 << (maxInfo - addInfoUint8)}
	}
	n := 1 << (info - addInfoUint8)
	if len(c.buf)-c.pos-1 < n {
		return 0, 0, ErrShortBytes
	}
	return beUint(c.buf[c.pos+1 : c.pos+1+n]), 1 + n, nil
}

// beUint assembles big-endian bytes by shift-or accumulation. No
// reinterpretation of the byte region takes place, which keeps the
// assembly independent of host byte order and alignment.
func beUint(b []byte) uint64 {
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v
}

// advance commits n consumed bytes and one consumed item slot. The slot
// count is only meaningful inside a definite container; elsewhere the
// wraparound is harmless and never observed.
func (c *Cursor) advance(n int) {
	c.pos += n
	c.remaining--
}
