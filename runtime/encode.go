package cbor

import (
	"math"
	"math/big"
	"sort"
	"time"
)

// EncodeOptions configures Encode/EncodeValue/EncodeSequence.
type EncodeOptions struct {
	Canonical           bool
	PreferShortestFloat bool
	StrictUTF8          bool
	AllowUndefined      bool
}

// CanonicalEncodeOptions returns options that produce RFC 8949 §4.2.1
// deterministic encoding: minimal-length integers, sorted map keys,
// shortest lossless float width.
func CanonicalEncodeOptions() EncodeOptions {
	return EncodeOptions{Canonical: true, PreferShortestFloat: true, StrictUTF8: true}
}

// Encode ingests an arbitrary Go value (per the dispatch order in
// ingestAny's doc) or a Value directly, and appends its CBOR
// encoding. v may be a Value, or any of the Go types ingestAny
// recognizes (nil, bool, the integer/float kinds, string, []byte,
// []any, map[string]any, *big.Int, time.Time).
func Encode(v any, opts EncodeOptions) ([]byte, error) {
	val, err := ingestAny(v)
	if err != nil {
		return nil, err
	}
	return EncodeValue(val, opts)
}

// EncodeValue encodes an already-decoded or hand-built Value tree.
func EncodeValue(v Value, opts EncodeOptions) ([]byte, error) {
	return appendValue(nil, v, opts)
}

// EncodeCanonical is EncodeValue with CanonicalEncodeOptions, used by
// the tag-258 Set duplicate check and anywhere an unambiguous
// byte-for-byte comparison of two decoded values is needed.
func EncodeCanonical(v Value) ([]byte, error) {
	return EncodeValue(v, CanonicalEncodeOptions())
}

// EncodeSequence concatenates the encodings of each value with no
// outer framing (RFC 8742 CBOR Sequences).
func EncodeSequence(vs []Value, opts EncodeOptions) ([]byte, error) {
	var out []byte
	for i, v := range vs {
		enc, err := appendValue(out, v, opts)
		if err != nil {
			return nil, newDecodeErrorf(ErrKindEncodingUnsupported, 0, arrayChildPath("", i), "sequence element %d: %v", i, err)
		}
		out = enc
	}
	return out, nil
}

func appendValue(b []byte, v Value, opts EncodeOptions) ([]byte, error) {
	switch v.Kind {
	case KindUint:
		if v.Big != nil {
			return appendBignumValue(b, 2, v.Big), nil
		}
		return appendUintCore(b, majorTypeUint, v.Uint64), nil
	case KindNegative:
		if v.Big != nil {
			mag := new(big.Int).Neg(v.Big)
			mag.Sub(mag, big.NewInt(1))
			return appendBignumValue(b, 3, mag), nil
		}
		return appendUintCore(b, majorTypeNegInt, uint64(-1-v.Int64)), nil
	case KindBytes:
		return AppendBytes(b, v.bytesFlat()), nil
	case KindText:
		if opts.StrictUTF8 && !isUTF8Valid(UnsafeBytes(v.Text)) {
			return b, newDecodeError(ErrKindInvalidUTF8, 0, "", "text value is not valid UTF-8")
		}
		return AppendString(b, v.Text), nil
	case KindArray:
		return appendArrayValue(b, v, opts)
	case KindMap:
		return appendMapValue(b, v, opts)
	case KindTag:
		b = appendUintCore(b, majorTypeTag, v.Tag)
		if v.Tagged == nil {
			return b, newDecodeError(ErrKindEncodingUnsupported, 0, "", "tag value has no inner value")
		}
		return appendValue(b, *v.Tagged, opts)
	case KindSimple:
		return AppendSimpleValue(b, v.Simple), nil
	case KindBool:
		return AppendBool(b, v.Bool), nil
	case KindNull:
		return AppendNil(b), nil
	case KindUndefined:
		if !opts.AllowUndefined {
			return b, newDecodeError(ErrKindEncodingUnsupported, 0, "", "undefined value not allowed by encode options")
		}
		return AppendUndefined(b), nil
	case KindFloat:
		return appendFloatValue(b, v, opts)
	case KindPlutusConstr:
		return appendPlutusConstr(b, v, opts)
	default:
		return b, newDecodeError(ErrKindEncodingUnsupported, 0, "", "cannot encode invalid/zero Value")
	}
}

// appendBignumValue encodes a *big.Int magnitude as a tag-2/tag-3
// byte-string payload, big-endian unsigned.
func appendBignumValue(b []byte, tag uint64, mag *big.Int) []byte {
	b = appendUintCore(b, majorTypeTag, tag)
	return AppendBytes(b, mag.Bytes())
}

func appendArrayValue(b []byte, v Value, opts EncodeOptions) ([]byte, error) {
	b = appendUintCore(b, majorTypeArray, uint64(len(v.Array)))
	for i, el := range v.Array {
		var err error
		b, err = appendValue(b, el, opts)
		if err != nil {
			return nil, newDecodeErrorf(ErrKindEncodingUnsupported, 0, arrayChildPath("", i), "array element %d: %v", i, err)
		}
	}
	return b, nil
}

func appendMapValue(b []byte, v Value, opts EncodeOptions) ([]byte, error) {
	type encPair struct {
		key []byte
		val []byte
	}
	pairs := make([]encPair, 0, len(v.Map))
	for _, e := range v.Map {
		kb, err := appendValue(nil, e.Key, opts)
		if err != nil {
			return nil, newDecodeErrorf(ErrKindEncodingUnsupported, 0, "", "map key: %v", err)
		}
		vb, err := appendValue(nil, e.Value, opts)
		if err != nil {
			return nil, newDecodeErrorf(ErrKindEncodingUnsupported, 0, "", "map value: %v", err)
		}
		pairs = append(pairs, encPair{kb, vb})
	}

	if opts.Canonical {
		sort.SliceStable(pairs, func(i, j int) bool {
			return lengthLexLess(pairs[i].key, pairs[j].key)
		})
	}

	seen := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		ks := string(p.key)
		if _, dup := seen[ks]; dup {
			return nil, newDecodeError(ErrKindDuplicateKey, 0, "", "duplicate encoded map key")
		}
		seen[ks] = struct{}{}
	}

	b = appendUintCore(b, majorTypeMap, uint64(len(pairs)))
	for _, p := range pairs {
		b = append(b, p.key...)
		b = append(b, p.val...)
	}
	return b, nil
}

// appendPlutusConstr re-encodes a decoded Plutus constructor using
// the smallest tag shape available: small indices (0..6) use
// 121..127, larger ones (7..127) use 1280..1400, everything else
// falls back to the general tag-102 [index, fields] shape.
func appendPlutusConstr(b []byte, v Value, opts EncodeOptions) ([]byte, error) {
	fields := Value{Kind: KindArray, Array: v.PlutusFields}
	switch {
	case v.PlutusConstr <= 6:
		b = appendUintCore(b, majorTypeTag, tagPlutusConstrRange1Min+v.PlutusConstr)
		return appendValue(b, fields, opts)
	case v.PlutusConstr >= 7 && v.PlutusConstr <= 127:
		b = appendUintCore(b, majorTypeTag, tagPlutusConstrRange2Min+v.PlutusConstr-7)
		return appendValue(b, fields, opts)
	default:
		b = appendUintCore(b, majorTypeTag, tagPlutusConstr)
		pair := Value{Kind: KindArray, Array: []Value{
			{Kind: KindUint, Uint64: v.PlutusConstr},
			fields,
		}}
		return appendValue(b, pair, opts)
	}
}

// appendFloatValue picks the encoding width. In canonical/shortest
// mode it tries binary16, then binary32, then binary64, accepting the
// first width whose round trip preserves both the numeric value and
// the sign of zero (Object.is-style equality) — unlike the teacher's
// AppendFloatCanonical, this never folds -0 into +0.
func appendFloatValue(b []byte, v Value, opts EncodeOptions) ([]byte, error) {
	f := v.Float
	if v.NegativeZero {
		f = math.Copysign(0, -1)
	}

	if math.IsNaN(f) {
		return appendFloat16Bits(b, canonicalNaN16Bits), nil
	}

	if !opts.PreferShortestFloat {
		return appendFloatAtWidth(b, f, v.FloatWidth), nil
	}

	if representableAsFloat16(f) {
		bits := float32ToFloat16Bits(float32(f))
		return appendFloat16Bits(b, bits), nil
	}
	if representableAsFloat32(f) {
		return AppendFloat32(b, float32(f)), nil
	}
	return AppendFloat64(b, f), nil
}

func appendFloat16Bits(b []byte, bits uint16) []byte {
	o, n := ensure(b, 3)
	o[n] = makeByte(majorTypeSimple, simpleFloat16)
	be.PutUint16(o[n+1:], bits)
	return o
}

func appendFloatAtWidth(b []byte, f float64, width uint8) []byte {
	switch width {
	case 16:
		bits := float32ToFloat16Bits(float32(f))
		return appendFloat16Bits(b, bits)
	case 32:
		return AppendFloat32(b, float32(f))
	default:
		return AppendFloat64(b, f)
	}
}

// ingestAny implements the encoder's value-dispatch order (spec
// §4.8): -0 -> float; integer-valued finite number in
// [-2^63, 2^64-1] -> integer; other number -> float; bigint ->
// integer or tag 2/3 by magnitude; byte buffer -> byte string;
// string -> text string; slice -> array; map -> map; Value passes
// through unchanged.
func ingestAny(in any) (Value, error) {
	switch x := in.(type) {
	case Value:
		return x, nil
	case nil:
		return Value{Kind: KindNull}, nil
	case bool:
		return Value{Kind: KindBool, Bool: x}, nil
	case string:
		return Value{Kind: KindText, Text: x}, nil
	case []byte:
		return Value{Kind: KindBytes, Bytes: x}, nil
	case *big.Int:
		return ingestBigInt(x), nil
	case int:
		return ingestInt64(int64(x)), nil
	case int8:
		return ingestInt64(int64(x)), nil
	case int16:
		return ingestInt64(int64(x)), nil
	case int32:
		return ingestInt64(int64(x)), nil
	case int64:
		return ingestInt64(x), nil
	case uint:
		return Value{Kind: KindUint, Uint64: uint64(x)}, nil
	case uint8:
		return Value{Kind: KindUint, Uint64: uint64(x)}, nil
	case uint16:
		return Value{Kind: KindUint, Uint64: uint64(x)}, nil
	case uint32:
		return Value{Kind: KindUint, Uint64: uint64(x)}, nil
	case uint64:
		return Value{Kind: KindUint, Uint64: x}, nil
	case float32:
		return ingestFloat(float64(x), 32), nil
	case float64:
		return ingestFloat(x, 64), nil
	case time.Time:
		txt := x.UTC().Format(time.RFC3339Nano)
		inner := Value{Kind: KindText, Text: txt}
		return Value{Kind: KindTag, Tag: 0, Tagged: &inner}, nil
	case []any:
		arr := make([]Value, len(x))
		for i, el := range x {
			v, err := ingestAny(el)
			if err != nil {
				return Value{}, err
			}
			arr[i] = v
		}
		return Value{Kind: KindArray, Array: arr}, nil
	case map[string]any:
		entries := make([]MapEntry, 0, len(x))
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			v, err := ingestAny(x[k])
			if err != nil {
				return Value{}, err
			}
			entries = append(entries, MapEntry{Key: Value{Kind: KindText, Text: k}, Value: v})
		}
		return Value{Kind: KindMap, Map: entries}, nil
	default:
		return Value{}, newDecodeErrorf(ErrKindEncodingUnsupported, 0, "", "cannot encode Go value of type %T", in)
	}
}

func ingestInt64(i int64) Value {
	if i >= 0 {
		return Value{Kind: KindUint, Uint64: uint64(i)}
	}
	return Value{Kind: KindNegative, Int64: i}
}

func ingestBigInt(z *big.Int) Value {
	if z.Sign() >= 0 {
		if z.IsUint64() {
			return Value{Kind: KindUint, Uint64: z.Uint64()}
		}
		return Value{Kind: KindUint, Big: new(big.Int).Set(z)}
	}
	if z.IsInt64() {
		return Value{Kind: KindNegative, Int64: z.Int64()}
	}
	return Value{Kind: KindNegative, Big: new(big.Int).Set(z)}
}

func ingestFloat(f float64, width uint8) Value {
	neg0 := f == 0 && math.Signbit(f)
	if !neg0 && !math.IsNaN(f) && !math.IsInf(f, 0) {
		if i := int64(f); float64(i) == f && f >= -(1<<63) && f < 1<<63 {
			return ingestInt64(i)
		}
		if f >= 0 && f < 1<<64 {
			u := uint64(f)
			if float64(u) == f {
				return Value{Kind: KindUint, Uint64: u}
			}
		}
	}
	return Value{Kind: KindFloat, Float: f, FloatWidth: width, NegativeZero: neg0}
}
