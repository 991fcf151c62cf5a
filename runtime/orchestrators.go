package cbor

// DecodeResult is the return shape of Decode/DecodeWithSourceMap
// described by the spec's in-process API surface (§6.1): the decoded
// value plus how many bytes of the input it consumed.
type DecodeResult struct {
	Value     Value
	BytesRead int
}

// SourceMapResult is DecodeResult plus the pre-order source map
// produced alongside it.
type SourceMapResult struct {
	Value     Value
	BytesRead int
	SourceMap []SourceMapEntry
}

// EncodeResult is the return shape of EncodeInput/EncodeSequenceInput:
// the raw bytes plus their lowercase hex rendering, since callers in
// either representation are equally idiomatic per the spec.
type EncodeResult struct {
	Bytes []byte
	Hex   string
}

// DecodeInput accepts either a hex string or a raw byte slice and
// decodes exactly one CBOR data item from it, using opts. This is the
// hex-or-bytes convenience wrapper named in the spec's API surface;
// Decode itself only accepts bytes.
func DecodeInput(input any, opts DecodeOptions) (DecodeResult, error) {
	b, err := inputBytes(input)
	if err != nil {
		return DecodeResult{}, err
	}
	v, n, err := Decode(b, opts)
	if err != nil {
		return DecodeResult{}, err
	}
	return DecodeResult{Value: v, BytesRead: n}, nil
}

// DecodeWithSourceMapInput is DecodeInput's source-map-producing
// counterpart.
func DecodeWithSourceMapInput(input any, opts DecodeOptions) (SourceMapResult, error) {
	b, err := inputBytes(input)
	if err != nil {
		return SourceMapResult{}, err
	}
	v, n, sm, err := DecodeWithSourceMap(b, opts)
	if err != nil {
		return SourceMapResult{}, err
	}
	return SourceMapResult{Value: v, BytesRead: n, SourceMap: sm}, nil
}

// EncodeInput encodes v (a Value or any Go value ingestAny accepts)
// and returns both the raw bytes and their hex form.
func EncodeInput(v any, opts EncodeOptions) (EncodeResult, error) {
	b, err := Encode(v, opts)
	if err != nil {
		return EncodeResult{}, err
	}
	return EncodeResult{Bytes: b, Hex: BytesToHex(b)}, nil
}

// EncodeSequenceInput is EncodeInput's RFC 8742 sequence counterpart.
func EncodeSequenceInput(vs []Value, opts EncodeOptions) (EncodeResult, error) {
	b, err := EncodeSequence(vs, opts)
	if err != nil {
		return EncodeResult{}, err
	}
	return EncodeResult{Bytes: b, Hex: BytesToHex(b)}, nil
}

// inputBytes normalizes a decode input argument: a string is treated
// as hex, a []byte is used as-is.
func inputBytes(input any) ([]byte, error) {
	switch x := input.(type) {
	case string:
		return HexToBytes(x)
	case []byte:
		return x, nil
	default:
		return nil, newDecodeErrorf(ErrKindInvalidHex, 0, "", "decode input must be a hex string or []byte, got %T", x)
	}
}
