package nanocbor

import "math"

// enterContainer derives a child cursor scoped to the items of the
// container at c. The child shares the parent's window; the parent is left
// untouched and only advances through a later Leave.
func (c *Cursor) enterContainer(major uint8) (Cursor, error) {
	if c.pos >= len(c.buf) {
		return Cursor{}, ErrShortBytes
	}
	child := Cursor{buf: c.buf}
	if getAddInfo(c.buf[c.pos]) == addInfoIndefinite {
		child.flags = flagContainer | flagIndefinite
		child.pos = c.pos + 1
		child.remaining = indefiniteRemaining
		return child, nil
	}
	count, n, err := c.readUint(addInfoUint32, major)
	if err != nil {
		return Cursor{}, err
	}
	child.flags = flagContainer
	child.pos = c.pos + n
	child.remaining = uint32(count)
	return child, nil
}

// EnterArray derives a child cursor over the items of the array at c.
// For a definite array the child counts down the declared item count; for
// an indefinite one, termination is detected by AtEnd observing the break
// byte.
func (c *Cursor) EnterArray() (Cursor, error) {
	return c.enterContainer(majorTypeArray)
}

// EnterMap derives a child cursor over the entries of the map at c. Each
// key and each value consumes one slot, so a definite map of n pairs
// starts with 2n remaining; a declared pair count above half the
// representable range fails with UintOverflow.
func (c *Cursor) EnterMap() (Cursor, error) {
	child, err := c.enterContainer(majorTypeMap)
	if err != nil {
		return Cursor{}, err
	}
	if child.flags&flagIndefinite == 0 {
		if child.remaining > math.MaxUint32/2 {
			return Cursor{}, UintOverflow{Value: uint64(child.remaining), FailedBitsize: 32}
		}
		child.remaining *= 2
	}
	return child, nil
}

// Leave merges a child cursor produced by EnterArray or EnterMap back into
// c: the parent resumes at the child's final position and the nested
// container counts as a single consumed slot, independent of how many
// items it held.
//
// The slot decrement is keyed on the parent's flags being exactly the
// plain container flag, so an indefinite parent keeps its sentinel count;
// its end is detected by AtEnd observing the break byte, never by the
// slot bookkeeping.
func (c *Cursor) Leave(child *Cursor) {
	c.pos = child.pos
	if c.flags == flagContainer {
		c.remaining--
	}
}
