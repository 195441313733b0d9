package nanocbor

import "unsafe"

// UnsafeString returns a string that shares the same underlying memory as
// b. TextString uses it to keep text extraction zero-copy; it is only safe
// while the backing buffer stays immutable.
func UnsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
