package cbor

import (
	"math/big"
	"time"
)

// decodeTagValue decodes a tag header, recursively decodes its inner
// value through the same limit-aware decodeItem used everywhere else
// (tags never get a second, unlimited parse path), and then applies
// tag-specific semantic validation from the dispatch table.
func decodeTagValue(orig, b []byte, path string, st *decodeState) (Value, []byte, []string, error) {
	offset := len(orig) - len(b)
	ai := getAddInfo(b[0])
	if ai >= 28 && ai <= 30 {
		return Value{}, b, nil, newDecodeError(ErrKindReserved, offset, path, "reserved additional info in tag header")
	}
	if ai == addInfoIndefinite {
		return Value{}, b, nil, newDecodeError(ErrKindUnexpectedBreak, offset, path, "indefinite marker not valid for a tag header")
	}

	if err := st.lim.enter(offset, path); err != nil {
		return Value{}, b, nil, err
	}
	defer st.lim.leave()

	tagAi, tagNum, consumed, err := readHeaderArg(b, majorTypeTag)
	if err != nil {
		return Value{}, b, nil, wrapAtOffset(err, ErrKindUnexpectedEOF, offset, path)
	}
	if st.opts.ValidateCanonical && isNonCanonicalArg(tagAi, tagNum) {
		return Value{}, b, nil, newDecodeError(ErrKindNonCanonicalInteger, offset, path, "tag number not encoded in minimal form")
	}
	rest := b[consumed:]

	innerPath := tagChildPath(path)
	inner, rest2, err := decodeItem(orig, rest, innerPath, path, true, st)
	if err != nil {
		return Value{}, b, nil, err
	}
	children := []string{innerPath}

	v, err := dispatchTag(st.opts, tagNum, inner, offset, path)
	if err != nil {
		return Value{}, b, nil, err
	}
	return v, rest2, children, nil
}

// dispatchTag applies the tag-specific semantic rule for tagNum to an
// already-decoded inner value. Tags outside the table pass through as
// opaque Tagged(tag, inner) unless StrictTags is set, in which case
// they fail with UnknownTag.
func dispatchTag(opts DecodeOptions, tagNum uint64, inner Value, offset int, path string) (Value, error) {
	switch {
	case tagNum == 0:
		return dispatchRFC3339(opts, inner, offset, path)
	case tagNum == 1:
		return dispatchEpoch(inner, offset, path)
	case tagNum == 2 || tagNum == 3:
		return dispatchBignum(opts, tagNum, inner, offset, path)
	case tagNum == 4 || tagNum == 5:
		return dispatchFractionOrFloat(tagNum, inner, offset, path)
	case tagNum == 32 || tagNum == 35 || tagNum == 36:
		return dispatchStringTag(tagNum, inner, offset, path)
	case tagNum == 33 || tagNum == 34:
		return dispatchStringTag(tagNum, inner, offset, path)
	case tagNum == tagSet:
		return dispatchSet(inner, offset, path)
	case tagNum == tagPlutusConstr:
		return dispatchPlutusGeneral(inner, offset, path)
	case tagNum >= tagPlutusConstrRange1Min && tagNum <= tagPlutusConstrRange1Max:
		return dispatchPlutusRange1(tagNum, inner, offset, path)
	case tagNum >= tagPlutusConstrRange2Min && tagNum <= tagPlutusConstrRange2Max:
		return dispatchPlutusRange2(tagNum, inner, offset, path)
	case tagNum == tagSelfDescribeCBOR:
		return inner, nil
	default:
		if opts.StrictTags {
			return Value{}, newDecodeErrorf(ErrKindUnknownTag, offset, path, "unrecognized tag %d", tagNum)
		}
		return Value{Kind: KindTag, Tag: tagNum, Tagged: &inner}, nil
	}
}

func dispatchRFC3339(opts DecodeOptions, inner Value, offset int, path string) (Value, error) {
	if inner.Kind != KindText {
		return Value{}, newDecodeError(ErrKindTagShapeMismatch, offset, path, "tag 0 requires a text string")
	}
	if opts.RFC3339Strict {
		if _, err := time.Parse(time.RFC3339Nano, inner.Text); err != nil {
			return Value{}, newDecodeErrorf(ErrKindTagShapeMismatch, offset, path, "tag 0 text is not RFC 3339: %v", err)
		}
	}
	return Value{Kind: KindTag, Tag: 0, Tagged: &inner}, nil
}

func dispatchEpoch(inner Value, offset int, path string) (Value, error) {
	if !inner.IsInteger() && inner.Kind != KindFloat {
		return Value{}, newDecodeError(ErrKindTagShapeMismatch, offset, path, "tag 1 requires an integer or float")
	}
	return Value{Kind: KindTag, Tag: 1, Tagged: &inner}, nil
}

// dispatchBignum implements tags 2/3: the inner value must be a byte
// string (definite or indefinite — decodeBytesValue keeps the chunks of
// an indefinite one in Chunks, and bytesFlat concatenates them here
// before the length check), within max_bignum_bytes, decoded as a
// big-endian unsigned magnitude. Tag 3 yields -1-magnitude. Per
// DESIGN.md Open Question 4 the result always surfaces as KindUint or
// KindNegative with Big populated, never as a KindTag wrapper.
func dispatchBignum(opts DecodeOptions, tagNum uint64, inner Value, offset int, path string) (Value, error) {
	if inner.Kind != KindBytes {
		return Value{}, newDecodeError(ErrKindTagShapeMismatch, offset, path, "tag 2/3 requires a byte string")
	}
	flat := inner.bytesFlat()
	if opts.MaxBignumBytes > 0 && len(flat) > opts.MaxBignumBytes {
		return Value{}, newDecodeError(ErrKindBignumTooLarge, offset, path, "bignum payload exceeds max_bignum_bytes")
	}
	mag := new(big.Int).SetBytes(flat)
	if tagNum == 2 {
		return Value{Kind: KindUint, Big: mag}, nil
	}
	neg := new(big.Int).Neg(mag)
	neg.Sub(neg, big.NewInt(1))
	return Value{Kind: KindNegative, Big: neg}, nil
}

// dispatchFractionOrFloat implements tags 4 (decimal fraction) and 5
// (bigfloat): both require a 2-element array [exponent:int,
// mantissa:int-or-bignum]. Neither tag has a dedicated Value kind;
// both surface as KindTag so callers can inspect the exponent/mantissa
// pair themselves.
func dispatchFractionOrFloat(tagNum uint64, inner Value, offset int, path string) (Value, error) {
	if inner.Kind != KindArray || len(inner.Array) != 2 {
		return Value{}, newDecodeErrorf(ErrKindTagShapeMismatch, offset, path, "tag %d requires a 2-element array", tagNum)
	}
	if !inner.Array[0].IsInteger() {
		return Value{}, newDecodeErrorf(ErrKindTagShapeMismatch, offset, path, "tag %d exponent must be an integer", tagNum)
	}
	if !inner.Array[1].IsInteger() {
		return Value{}, newDecodeErrorf(ErrKindTagShapeMismatch, offset, path, "tag %d mantissa must be an integer or bignum", tagNum)
	}
	return Value{Kind: KindTag, Tag: tagNum, Tagged: &inner}, nil
}

func dispatchStringTag(tagNum uint64, inner Value, offset int, path string) (Value, error) {
	if inner.Kind != KindText {
		return Value{}, newDecodeErrorf(ErrKindTagShapeMismatch, offset, path, "tag %d requires a text string", tagNum)
	}
	return Value{Kind: KindTag, Tag: tagNum, Tagged: &inner}, nil
}

// dispatchSet implements tag 258: the inner array must contain no
// duplicate elements under byte-slice equality of each element's own
// canonical re-encoding (DESIGN.md Open Question 8), mirroring the
// map's duplicate-key check rather than a separate comparison scheme.
func dispatchSet(inner Value, offset int, path string) (Value, error) {
	if inner.Kind != KindArray {
		return Value{}, newDecodeError(ErrKindTagShapeMismatch, offset, path, "tag 258 requires an array")
	}
	seen := make(map[string]struct{}, len(inner.Array))
	for _, el := range inner.Array {
		enc, err := EncodeCanonical(el)
		if err != nil {
			return Value{}, newDecodeError(ErrKindTagShapeMismatch, offset, path, "tag 258 element could not be canonically re-encoded")
		}
		key := string(enc)
		if _, dup := seen[key]; dup {
			return Value{}, newDecodeError(ErrKindDuplicateKey, offset, path, "duplicate element in set (tag 258)")
		}
		seen[key] = struct{}{}
	}
	return Value{Kind: KindTag, Tag: tagSet, Tagged: &inner}, nil
}

func dispatchPlutusGeneral(inner Value, offset int, path string) (Value, error) {
	if inner.Kind != KindArray || len(inner.Array) != 2 {
		return Value{}, newDecodeError(ErrKindPlutusShapeMismatch, offset, path, "tag 102 requires [constr_index, fields]")
	}
	idx, ok := inner.Array[0].AsUint64()
	if !ok {
		return Value{}, newDecodeError(ErrKindPlutusShapeMismatch, offset, path, "tag 102 constructor index must be a non-negative integer")
	}
	if inner.Array[1].Kind != KindArray {
		return Value{}, newDecodeError(ErrKindPlutusShapeMismatch, offset, path, "tag 102 fields must be an array")
	}
	return Value{Kind: KindPlutusConstr, PlutusConstr: idx, PlutusFields: inner.Array[1].Array}, nil
}

func dispatchPlutusRange1(tagNum uint64, inner Value, offset int, path string) (Value, error) {
	if inner.Kind != KindArray {
		return Value{}, newDecodeError(ErrKindPlutusShapeMismatch, offset, path, "plutus constructor tag requires an array")
	}
	idx := tagNum - tagPlutusConstrRange1Min
	return Value{Kind: KindPlutusConstr, PlutusConstr: idx, PlutusFields: inner.Array}, nil
}

func dispatchPlutusRange2(tagNum uint64, inner Value, offset int, path string) (Value, error) {
	if inner.Kind != KindArray {
		return Value{}, newDecodeError(ErrKindPlutusShapeMismatch, offset, path, "plutus constructor tag requires an array")
	}
	idx := tagNum - tagPlutusConstrRange2Min + 7
	return Value{Kind: KindPlutusConstr, PlutusConstr: idx, PlutusFields: inner.Array}, nil
}
