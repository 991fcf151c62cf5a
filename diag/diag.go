// Package diag renders decoded CBOR values in RFC 8949 §8 diagnostic
// notation. It is an external collaborator of the core decode/encode
// engine (runtime.Value is a closed data type with no knowledge of its
// own textual rendering): FromValue walks a runtime.Value tree built by
// runtime.Decode or runtime.DecodeWithSourceMap, or assembled by hand in
// a test, and never re-parses bytes.
package diag

import (
	"math"
	"strconv"
	"strings"

	cbor "github.com/cborlens/cbor/runtime"
)

// FromValue renders v in RFC 8949 §8 diagnostic notation.
func FromValue(v cbor.Value) string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

func writeValue(b *strings.Builder, v cbor.Value) {
	switch v.Kind {
	case cbor.KindUint:
		if v.IsBig() {
			b.WriteString(v.Big.String())
			return
		}
		b.WriteString(strconv.FormatUint(v.Uint64, 10))
	case cbor.KindNegative:
		if v.IsBig() {
			b.WriteString(v.Big.String())
			return
		}
		b.WriteString(strconv.FormatInt(v.Int64, 10))
	case cbor.KindBytes:
		writeBytes(b, v)
	case cbor.KindText:
		b.WriteString(strconv.Quote(v.Text))
	case cbor.KindArray:
		writeArray(b, v)
	case cbor.KindMap:
		writeMap(b, v)
	case cbor.KindTag:
		b.WriteString(strconv.FormatUint(v.Tag, 10))
		b.WriteByte('(')
		if v.Tagged != nil {
			writeValue(b, *v.Tagged)
		}
		b.WriteByte(')')
	case cbor.KindSimple:
		b.WriteString("simple(")
		b.WriteString(strconv.Itoa(int(v.Simple)))
		b.WriteByte(')')
	case cbor.KindBool:
		b.WriteString(strconv.FormatBool(v.Bool))
	case cbor.KindNull:
		b.WriteString("null")
	case cbor.KindUndefined:
		b.WriteString("undefined")
	case cbor.KindFloat:
		writeFloat(b, v)
	case cbor.KindPlutusConstr:
		writePlutusConstr(b, v)
	default:
		b.WriteString("?")
	}
}

func writeBytes(b *strings.Builder, v cbor.Value) {
	if v.Chunks != nil {
		b.WriteString("(_ ")
		for i, c := range v.Chunks {
			if i > 0 {
				b.WriteString(", ")
			}
			writeHexString(b, c)
		}
		b.WriteByte(')')
		return
	}
	writeHexString(b, v.Bytes)
}

func writeHexString(b *strings.Builder, raw []byte) {
	b.WriteString("h'")
	b.WriteString(cbor.BytesToHex(raw))
	b.WriteByte('\'')
}

func writeArray(b *strings.Builder, v cbor.Value) {
	if v.Indefinite {
		b.WriteString("[_ ")
	} else {
		b.WriteByte('[')
	}
	for i, el := range v.Array {
		if i > 0 {
			b.WriteString(", ")
		}
		writeValue(b, el)
	}
	b.WriteByte(']')
}

func writeMap(b *strings.Builder, v cbor.Value) {
	if v.Indefinite {
		b.WriteString("{_ ")
	} else {
		b.WriteByte('{')
	}
	for i, e := range v.Map {
		if i > 0 {
			b.WriteString(", ")
		}
		writeValue(b, e.Key)
		b.WriteString(": ")
		writeValue(b, e.Value)
	}
	b.WriteByte('}')
}

func writePlutusConstr(b *strings.Builder, v cbor.Value) {
	b.WriteString("constr<")
	b.WriteString(strconv.FormatUint(v.PlutusConstr, 10))
	b.WriteString(">[")
	for i, f := range v.PlutusFields {
		if i > 0 {
			b.WriteString(", ")
		}
		writeValue(b, f)
	}
	b.WriteByte(']')
}

func writeFloat(b *strings.Builder, v cbor.Value) {
	f := v.Float
	switch {
	case math.IsNaN(f):
		b.WriteString("NaN")
	case math.IsInf(f, 1):
		b.WriteString("Infinity")
	case math.IsInf(f, -1):
		b.WriteString("-Infinity")
	case v.NegativeZero:
		b.WriteString("-0.0")
	default:
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		b.WriteString(s)
	}
}
