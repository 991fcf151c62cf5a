package benchmarks

import (
	"testing"

	fxcbor "github.com/fxamacker/cbor/v2"

	cbor "github.com/cborlens/cbor/runtime"
)

// Microbenchmarks comparing this CBOR runtime's Decode/Encode against
// fxamacker/cbor/v2's Unmarshal/Marshal on equivalent payloads. This
// helps surface regressions relative to an independent RFC 8949
// implementation, since both engines are held to the same wire format.

var smallMapValue = cbor.Value{Kind: cbor.KindMap, Map: []cbor.MapEntry{
	{Key: cbor.Value{Kind: cbor.KindText, Text: "name"}, Value: cbor.Value{Kind: cbor.KindText, Text: "Alice"}},
	{Key: cbor.Value{Kind: cbor.KindText, Text: "age"}, Value: cbor.Value{Kind: cbor.KindUint, Uint64: 42}},
}}

var smallMapGo = map[string]any{"name": "Alice", "age": uint64(42)}

var plutusConstrValue = cbor.Value{Kind: cbor.KindPlutusConstr, PlutusConstr: 0, PlutusFields: []cbor.Value{
	{Kind: cbor.KindUint, Uint64: 1},
	{Kind: cbor.KindBytes, Bytes: []byte("deadbeef")},
}}

func BenchmarkCBOR_EncodeValue_SmallMap(b *testing.B) {
	opts := cbor.CanonicalEncodeOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cbor.EncodeValue(smallMapValue, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFxamacker_Marshal_SmallMap(b *testing.B) {
	mode, err := fxcbor.CanonicalEncOptions().EncMode()
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mode.Marshal(smallMapGo); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCBOR_Decode_SmallMap(b *testing.B) {
	opts := cbor.CanonicalEncodeOptions()
	enc, err := cbor.EncodeValue(smallMapValue, opts)
	if err != nil {
		b.Fatal(err)
	}
	decOpts := cbor.DefaultDecodeOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := cbor.Decode(enc, decOpts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFxamacker_Unmarshal_SmallMap(b *testing.B) {
	mode, err := fxcbor.CanonicalEncOptions().EncMode()
	if err != nil {
		b.Fatal(err)
	}
	enc, err := mode.Marshal(smallMapGo)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var out map[string]any
		if err := fxcbor.Unmarshal(enc, &out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCBOR_DecodeWithSourceMap_SmallMap(b *testing.B) {
	opts := cbor.CanonicalEncodeOptions()
	enc, err := cbor.EncodeValue(smallMapValue, opts)
	if err != nil {
		b.Fatal(err)
	}
	decOpts := cbor.DefaultDecodeOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, _, err := cbor.DecodeWithSourceMap(enc, decOpts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCBOR_EncodeValue_PlutusConstr(b *testing.B) {
	opts := cbor.CanonicalEncodeOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cbor.EncodeValue(plutusConstrValue, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCBOR_DecodePlutusConstr(b *testing.B) {
	opts := cbor.CanonicalEncodeOptions()
	enc, err := cbor.EncodeValue(plutusConstrValue, opts)
	if err != nil {
		b.Fatal(err)
	}
	decOpts := cbor.DefaultDecodeOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := cbor.Decode(enc, decOpts); err != nil {
			b.Fatal(err)
		}
	}
}
