package nanocbor

import "math/bits"

// RecursionMax bounds the container depth that Skip descends into. Deeper
// structures fail with ErrRecursion.
const RecursionMax = 10

// sizeMaxInfo is the widest length argument accepted for byte and text
// strings: 4-byte arguments on 32-bit hosts, 8-byte on 64-bit hosts. A
// length that does not fit the host int can never describe bytes that fit
// in an addressable buffer.
const sizeMaxInfo = addInfoUint32 + bits.UintSize/64
