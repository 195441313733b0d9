package benchmarks

import (
	"strconv"
	"testing"

	cbor "github.com/fxamacker/cbor/v2"
	msgp "github.com/tinylib/msgp/msgp"
)

// record is the shared benchmark payload: a small metadata map of the kind
// a stream consumer pages through, with scalars, strings, bytes, and a
// nested array.
type record struct {
	Name     string   `cbor:"name" msg:"name"`
	Seq      uint64   `cbor:"seq" msg:"seq"`
	Offset   int64    `cbor:"offset" msg:"offset"`
	Live     bool     `cbor:"live" msg:"live"`
	Digest   []byte   `cbor:"digest" msg:"digest"`
	Subjects []string `cbor:"subjects" msg:"subjects"`
}

func benchRecord() record {
	return record{
		Name:     "orders.eu-west.2026",
		Seq:      88231457,
		Offset:   -4096,
		Live:     true,
		Digest:   []byte{0x9a, 0x3f, 0x10, 0x77, 0xde, 0xad, 0xbe, 0xef},
		Subjects: []string{"orders.created", "orders.updated", "orders.deleted"},
	}
}

func recordCBOR(b *testing.B) []byte {
	b.Helper()
	data, err := cbor.Marshal(benchRecord())
	if err != nil {
		b.Fatal(err)
	}
	return data
}

// recordMsgpack builds the MessagePack equivalent of benchRecord by hand;
// the msgp runtime is append-based rather than reflection-based.
func recordMsgpack() []byte {
	r := benchRecord()
	out := msgp.AppendMapHeader(nil, 6)
	out = msgp.AppendString(out, "name")
	out = msgp.AppendString(out, r.Name)
	out = msgp.AppendString(out, "seq")
	out = msgp.AppendUint64(out, r.Seq)
	out = msgp.AppendString(out, "offset")
	out = msgp.AppendInt64(out, r.Offset)
	out = msgp.AppendString(out, "live")
	out = msgp.AppendBool(out, r.Live)
	out = msgp.AppendString(out, "digest")
	out = msgp.AppendBytes(out, r.Digest)
	out = msgp.AppendString(out, "subjects")
	out = msgp.AppendArrayHeader(out, uint32(len(r.Subjects)))
	for _, s := range r.Subjects {
		out = msgp.AppendString(out, s)
	}
	return out
}

func intsCBOR(b *testing.B) []byte {
	b.Helper()
	vals := make([]uint64, 256)
	for i := range vals {
		vals[i] = uint64(i) * 977
	}
	data, err := cbor.Marshal(vals)
	if err != nil {
		b.Fatal(err)
	}
	return data
}

func stringsCBOR(b *testing.B) []byte {
	b.Helper()
	vals := make([]string, 64)
	for i := range vals {
		vals[i] = "subject." + strconv.Itoa(i)
	}
	data, err := cbor.Marshal(vals)
	if err != nil {
		b.Fatal(err)
	}
	return data
}
