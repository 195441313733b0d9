// Package nanocbor is a minimal-footprint decoder for CBOR (RFC 8949)
// buffers held fully in memory.
//
// The decoder is built around a single value type, Cursor, which walks a
// caller-owned byte slice without allocating. Strings and byte strings come
// back as borrowed views into that slice; the caller must keep the buffer
// immutable and alive for as long as any view is in use.
//
// Containers are traversed with an Enter/Leave pair: EnterArray and EnterMap
// derive an independent child cursor scoped to the nested items, and Leave
// merges the child's final position back into the parent. AtEnd is the
// per-cursor termination test, and Skip consumes exactly one well-formed
// item of any type, recursing into containers up to RecursionMax.
//
// A Cursor is trivially copyable. Saving a copy before an operation and
// restoring it afterwards is the supported way to retry or rewind; no other
// rollback mechanism exists.
package nanocbor

// CBOR major types (3 bits)
const (
	majorTypeUint   = 0 // unsigned integer
	majorTypeNegInt = 1 // negative integer
	majorTypeBytes  = 2 // byte string
	majorTypeText   = 3 // text string (UTF-8)
	majorTypeArray  = 4 // array
	majorTypeMap    = 5 // map
	majorTypeTag    = 6 // semantic tag
	majorTypeSimple = 7 // float, simple values, break
)

// Additional info values (5 bits)
const (
	// 0-23: literal value
	addInfoDirect     = 23 // max direct value
	addInfoUint8      = 24 // 1-byte uint8 follows
	addInfoUint16     = 25 // 2-byte uint16 follows
	addInfoUint32     = 26 // 4-byte uint32 follows
	addInfoUint64     = 27 // 8-byte uint64 follows
	addInfoIndefinite = 31 // indefinite length (for bytes, text, array, map)
)

// Simple values in major type 7
const (
	simpleFalse     = 20
	simpleTrue      = 21
	simpleNull      = 22
	simpleUndefined = 23
	simpleFloat16   = 25
	simpleFloat32   = 26
	simpleFloat64   = 27
	simpleBreak     = 31
)

// makeByte creates a CBOR initial byte from major type and additional info
func makeByte(majorType, addInfo uint8) byte {
	return byte((majorType << 5) | addInfo)
}

// getMajorType extracts the major type from a CBOR initial byte
func getMajorType(b byte) uint8 {
	return (b >> 5) & 0x07
}

// getAddInfo extracts the additional info from a CBOR initial byte
func getAddInfo(b byte) uint8 {
	return b & 0x1f
}

// Type represents CBOR data types
type Type byte

// CBOR Types
const (
	InvalidType Type = iota

	StrType       // text string
	BinType       // byte string
	MapType       // map
	ArrayType     // array
	Float64Type   // float64
	Float32Type   // float32
	BoolType      // bool
	IntType       // signed integer
	UintType      // unsigned integer
	NilType       // nil
	ExtensionType // tagged value
)

// String implements fmt.Stringer
func (t Type) String() string {
	switch t {
	case StrType:
		return "str"
	case BinType:
		return "bin"
	case MapType:
		return "map"
	case ArrayType:
		return "array"
	case Float64Type:
		return "float64"
	case Float32Type:
		return "float32"
	case BoolType:
		return "bool"
	case UintType:
		return "uint"
	case IntType:
		return "int"
	case ExtensionType:
		return "ext"
	case NilType:
		return "nil"
	default:
		return "<invalid>"
	}
}

// getType returns the CBOR type from an initial byte
func getType(b byte) Type {
	switch getMajorType(b) {
	case majorTypeUint:
		return UintType
	case majorTypeNegInt:
		return IntType
	case majorTypeBytes:
		return BinType
	case majorTypeText:
		return StrType
	case majorTypeArray:
		return ArrayType
	case majorTypeMap:
		return MapType
	case majorTypeTag:
		return ExtensionType
	case majorTypeSimple:
		switch getAddInfo(b) {
		case simpleTrue, simpleFalse:
			return BoolType
		case simpleNull:
			return NilType
		case simpleFloat16, simpleFloat32:
			return Float32Type
		case simpleFloat64:
			return Float64Type
		}
	}
	return InvalidType
}
