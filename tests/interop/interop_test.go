// Package tests cross-validates the canonical encode/decode path against
// fxamacker/cbor/v2, an independent RFC 8949 implementation. Where the
// benchmarks package borrows fxamacker as a throughput comparison point,
// this package borrows it as a correctness oracle: anything this runtime
// calls canonical should mean the same bytes to a decoder that never saw
// this codebase (see benchmarks/runtime_bench_test.go for the throughput
// comparison).
package tests

import (
	"bytes"
	"math/big"
	"testing"

	fxcbor "github.com/fxamacker/cbor/v2"

	cbor "github.com/cborlens/cbor/runtime"
)

// fxDecMode mirrors RFC 8949 canonical decoding: reject duplicate map
// keys and require definite-length containers, the same posture this
// runtime's CanonicalEncodeOptions produces on the write side.
func fxDecMode(t *testing.T) fxcbor.DecMode {
	t.Helper()
	mode, err := fxcbor.DecOptions{
		DupMapKey:   fxcbor.DupMapKeyEnforcedAPF,
		IndefLength: fxcbor.IndefLengthForbidden,
	}.DecMode()
	if err != nil {
		t.Fatalf("fxDecMode: %v", err)
	}
	return mode
}

// TestEncodeValue_FxamackerAccepts feeds a representative set of
// runtime.Value trees through EncodeValue and confirms fxamacker parses
// the canonical output as well-formed and agrees on the decoded shape.
func TestEncodeValue_FxamackerAccepts(t *testing.T) {
	mode := fxDecMode(t)

	cases := []struct {
		name string
		v    cbor.Value
		want any
	}{
		{"uint-small", cbor.Value{Kind: cbor.KindUint, Uint64: 7}, uint64(7)},
		{"uint-big", cbor.Value{Kind: cbor.KindUint, Uint64: 1 << 40}, uint64(1 << 40)},
		{"negative", cbor.Value{Kind: cbor.KindNegative, Int64: -500}, int64(-500)},
		{"bignum-pos", cbor.Value{Kind: cbor.KindUint, Big: big.NewInt(0).Lsh(big.NewInt(1), 100)}, nil},
		{"text", cbor.Value{Kind: cbor.KindText, Text: "hello", TextValid: true}, "hello"},
		{"bytes", cbor.Value{Kind: cbor.KindBytes, Bytes: []byte{0xde, 0xad, 0xbe, 0xef}}, []byte{0xde, 0xad, 0xbe, 0xef}},
		{"bool", cbor.Value{Kind: cbor.KindBool, Bool: true}, true},
		{"null", cbor.Value{Kind: cbor.KindNull}, nil},
		{
			"array",
			cbor.Value{Kind: cbor.KindArray, Array: []cbor.Value{
				{Kind: cbor.KindUint, Uint64: 1},
				{Kind: cbor.KindUint, Uint64: 2},
				{Kind: cbor.KindUint, Uint64: 3},
			}},
			[]any{uint64(1), uint64(2), uint64(3)},
		},
		{
			"map-sorted-keys",
			cbor.Value{Kind: cbor.KindMap, Map: []cbor.MapEntry{
				{Key: cbor.Value{Kind: cbor.KindUint, Uint64: 1}, Value: cbor.Value{Kind: cbor.KindBool, Bool: false}},
				{Key: cbor.Value{Kind: cbor.KindUint, Uint64: 2}, Value: cbor.Value{Kind: cbor.KindBool, Bool: true}},
			}},
			map[any]any{uint64(1): false, uint64(2): true},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			enc, err := cbor.EncodeValue(c.v, cbor.CanonicalEncodeOptions())
			if err != nil {
				t.Fatalf("EncodeValue: %v", err)
			}
			if err := fxcbor.Unmarshal(enc, new(any)); err != nil {
				t.Fatalf("fxamacker rejected canonical output: %v (bytes %x)", err, enc)
			}
			var got any
			if err := mode.Unmarshal(enc, &got); err != nil {
				t.Fatalf("fxamacker canonical-mode unmarshal: %v", err)
			}
			if c.want != nil {
				assertInteropEqual(t, c.name, c.want, got)
			}
		})
	}
}

func assertInteropEqual(t *testing.T, name string, want, got any) {
	t.Helper()
	switch w := want.(type) {
	case []byte:
		g, ok := got.([]byte)
		if !ok || !bytes.Equal(w, g) {
			t.Fatalf("%s: got %#v, want %#v", name, got, want)
		}
	case map[any]any:
		g, ok := got.(map[any]any)
		if !ok || len(g) != len(w) {
			t.Fatalf("%s: got %#v, want %#v", name, got, want)
		}
		for k, v := range w {
			gv, present := g[k]
			if !present || gv != v {
				t.Fatalf("%s: key %v got %#v, want %#v", name, k, gv, v)
			}
		}
	case []any:
		g, ok := got.([]any)
		if !ok || len(g) != len(w) {
			t.Fatalf("%s: got %#v, want %#v", name, got, want)
		}
		for i := range w {
			if g[i] != w[i] {
				t.Fatalf("%s: element %d got %#v, want %#v", name, i, g[i], w[i])
			}
		}
	default:
		if got != want {
			t.Fatalf("%s: got %#v, want %#v", name, got, want)
		}
	}
}

// TestEncode_FxamackerRoundTrip drives the generic any-ingestion path
// (Encode) through fxamacker's own Marshal/Unmarshal round trip so both
// implementations agree byte-for-byte on canonical output for the same
// host value.
func TestEncode_FxamackerRoundTrip(t *testing.T) {
	fxEncMode, err := fxcbor.CanonicalEncOptions().EncMode()
	if err != nil {
		t.Fatalf("fxcbor EncMode: %v", err)
	}

	inputs := []any{
		uint64(0),
		uint64(23),
		uint64(24),
		int64(-1),
		int64(-1000),
		"diagnostic",
		[]byte("payload"),
		[]any{uint64(1), "two", uint64(3)},
		map[string]any{"a": uint64(1), "b": uint64(2)},
		true,
		false,
	}

	for _, in := range inputs {
		ours, err := cbor.Encode(in, cbor.CanonicalEncodeOptions())
		if err != nil {
			t.Fatalf("Encode(%#v): %v", in, err)
		}
		theirs, err := fxEncMode.Marshal(in)
		if err != nil {
			t.Fatalf("fxcbor.Marshal(%#v): %v", in, err)
		}
		if !bytes.Equal(ours, theirs) {
			t.Fatalf("canonical mismatch for %#v:\n ours: %x\ntheirs: %x", in, ours, theirs)
		}
	}
}

// TestDecode_AcceptsFxamackerCanonicalOutput feeds bytes produced by
// fxamacker's canonical encoder into Decode and confirms this runtime
// parses them without error, exercising the decode side of the same
// cross-implementation contract.
func TestDecode_AcceptsFxamackerCanonicalOutput(t *testing.T) {
	fxEncMode, err := fxcbor.CanonicalEncOptions().EncMode()
	if err != nil {
		t.Fatalf("fxcbor EncMode: %v", err)
	}

	inputs := []any{
		map[string]any{"name": "Alice", "age": uint64(42)},
		[]any{uint64(1), uint64(2), uint64(3)},
		"round trip through another implementation",
	}

	opts := cbor.DefaultDecodeOptions()
	opts.ValidateCanonical = true

	for _, in := range inputs {
		enc, err := fxEncMode.Marshal(in)
		if err != nil {
			t.Fatalf("fxcbor.Marshal(%#v): %v", in, err)
		}
		if _, _, err := cbor.Decode(enc, opts); err != nil {
			t.Fatalf("Decode rejected fxamacker canonical bytes for %#v: %v (bytes %x)", in, err, enc)
		}
	}
}
