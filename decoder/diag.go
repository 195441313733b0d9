package nanocbor

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"
)

// Diag renders the next CBOR item in b in RFC 8949 diagnostic notation and
// returns the remaining bytes. The traversal is driven by the cursor API
// and shares Skip's recursion ceiling. Indefinite-length strings are not
// supported, matching the decoder itself.
func Diag(b []byte) (string, []byte, error) {
	c := NewCursor(b)
	var sb strings.Builder
	if err := diagItem(&sb, &c, RecursionMax); err != nil {
		return "", b, err
	}
	return sb.String(), b[c.pos:], nil
}

func diagItem(sb *strings.Builder, c *Cursor, limit int) error {
	if limit == 0 {
		return ErrRecursion
	}
	if c.pos >= len(c.buf) {
		return ErrShortBytes
	}
	head := c.buf[c.pos]

	switch getMajorType(head) {
	case majorTypeUint:
		v, err := c.Uint64()
		if err != nil {
			return err
		}
		sb.WriteString(strconv.FormatUint(v, 10))
		return nil

	case majorTypeNegInt:
		v, err := c.Int64()
		if err != nil {
			return err
		}
		sb.WriteString(strconv.FormatInt(v, 10))
		return nil

	case majorTypeBytes:
		v, err := c.Bytes()
		if err != nil {
			return err
		}
		sb.WriteString("h'")
		sb.WriteString(hex.EncodeToString(v))
		sb.WriteString("'")
		return nil

	case majorTypeText:
		v, err := c.Text()
		if err != nil {
			return err
		}
		sb.WriteString(strconv.Quote(string(v)))
		return nil

	case majorTypeArray:
		child, err := c.EnterArray()
		if err != nil {
			return err
		}
		indef := child.flags&flagIndefinite != 0
		if indef {
			sb.WriteString("[_")
		} else {
			sb.WriteString("[")
		}
		for i := 0; !child.AtEnd(); i++ {
			if i > 0 {
				sb.WriteString(", ")
			} else if indef {
				sb.WriteString(" ")
			}
			if err := diagItem(sb, &child, limit-1); err != nil {
				return WrapError(err, i)
			}
		}
		sb.WriteString("]")
		c.Leave(&child)
		return nil

	case majorTypeMap:
		child, err := c.EnterMap()
		if err != nil {
			return err
		}
		indef := child.flags&flagIndefinite != 0
		if indef {
			sb.WriteString("{_")
		} else {
			sb.WriteString("{")
		}
		for i := 0; !child.AtEnd(); i++ {
			if i%2 == 1 {
				sb.WriteString(": ")
			} else if i > 0 {
				sb.WriteString(", ")
			} else if indef {
				sb.WriteString(" ")
			}
			if err := diagItem(sb, &child, limit-1); err != nil {
				return WrapError(err, i)
			}
		}
		sb.WriteString("}")
		c.Leave(&child)
		return nil

	case majorTypeTag:
		tag, err := c.Tag()
		if err != nil {
			return err
		}
		sb.WriteString(strconv.FormatUint(tag, 10))
		sb.WriteString("(")
		if err := diagItem(sb, c, limit-1); err != nil {
			return err
		}
		sb.WriteString(")")
		return nil

	default: // majorTypeSimple
		switch getAddInfo(head) {
		case simpleFalse, simpleTrue:
			v, err := c.Bool()
			if err != nil {
				return err
			}
			if v {
				sb.WriteString("true")
			} else {
				sb.WriteString("false")
			}
			return nil
		case simpleNull:
			if err := c.Null(); err != nil {
				return err
			}
			sb.WriteString("null")
			return nil
		case simpleFloat16, simpleFloat32:
			f, err := c.Float32()
			if err != nil {
				return err
			}
			sb.WriteString(formatFloatDiag(float64(f), 32))
			return nil
		case simpleFloat64:
			f, err := c.Float64()
			if err != nil {
				return err
			}
			sb.WriteString(formatFloatDiag(f, 64))
			return nil
		default:
			v, err := c.Simple()
			if err != nil {
				return err
			}
			if v == simpleUndefined {
				sb.WriteString("undefined")
				return nil
			}
			sb.WriteString("simple(")
			sb.WriteString(strconv.Itoa(int(v)))
			sb.WriteString(")")
			return nil
		}
	}
}

// formatFloatDiag formats a float for diagnostic notation, matching the
// RFC examples: fixed-point for reasonable magnitudes, named forms for
// infinities and NaN.
func formatFloatDiag(f float64, bitSize int) string {
	if math.IsInf(f, +1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	if math.IsNaN(f) {
		return "NaN"
	}
	var s string
	if af := math.Abs(f); af == 0 || af < 1e15 {
		s = strconv.FormatFloat(f, 'f', -1, bitSize)
	} else {
		s = strconv.FormatFloat(f, 'g', -1, bitSize)
	}
	// A float item always renders with a fractional or exponent part, so
	// it stays distinguishable from an integer item.
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
