package cbor

import (
	"math/big"
)

// decodeState carries everything a single top-level Decode or
// DecodeWithSourceMap call threads through the recursive walk: the
// frozen options, the limits accountant, and (only for
// DecodeWithSourceMap) the source-map builder. Decode and
// DecodeWithSourceMap call the exact same decodeItem function; the
// only difference is whether sm is nil. This is what makes "both
// paths enforce every limit identically" true by construction rather
// than by keeping two parsers in sync by hand.
type decodeState struct {
	opts DecodeOptions
	lim  *limitState
	sm   *sourceMapBuilder
}

// Decode parses exactly one CBOR data item from b and returns the
// decoded value plus the number of bytes consumed.
func Decode(b []byte, opts DecodeOptions) (Value, int, error) {
	st := &decodeState{opts: opts, lim: newLimitState(opts)}
	v, rest, err := decodeItem(b, b, "", "", false, st)
	if err != nil {
		return Value{}, 0, err
	}
	return v, len(b) - len(rest), nil
}

// DecodeWithSourceMap parses exactly one CBOR data item from b,
// returning the decoded value, the number of bytes consumed, and a
// pre-order list of source-map entries covering every value visited
// (including the root). It enforces every DecodeOptions limit
// identically to Decode; see the decodeState doc comment.
func DecodeWithSourceMap(b []byte, opts DecodeOptions) (Value, int, []SourceMapEntry, error) {
	sm := &sourceMapBuilder{}
	st := &decodeState{opts: opts, lim: newLimitState(opts), sm: sm}
	v, rest, err := decodeItem(b, b, "", "", false, st)
	if err != nil {
		return Value{}, 0, nil, err
	}
	return v, len(b) - len(rest), sm.entries, nil
}

// decodeItem decodes the single CBOR data item at the front of b
// (where orig is the original top-level buffer b was sliced from, so
// offsets can be computed as len(orig)-len(remaining)) located at the
// structural path, with parent/hasParent describing the enclosing
// value's own path (hasParent is false only for the document root),
// and returns the remaining bytes after it.
func decodeItem(orig, b []byte, path, parent string, hasParent bool, st *decodeState) (Value, []byte, error) {
	startOffset := len(orig) - len(b)
	if err := st.lim.checkTimeout(startOffset, path); err != nil {
		return Value{}, b, err
	}
	if len(b) < 1 {
		return Value{}, b, newDecodeError(ErrKindUnexpectedEOF, startOffset, path, "no bytes remaining")
	}

	var smIdx int = -1
	if st.sm != nil {
		smIdx = st.sm.begin(path, startOffset)
	}

	major := getMajorType(b[0])

	var (
		v        Value
		rest     []byte
		children []string
		err      error
	)

	switch major {
	case majorTypeUint:
		v, rest, err = decodeUint(b, startOffset, path, st)
	case majorTypeNegInt:
		v, rest, err = decodeNegInt(b, startOffset, path, st)
	case majorTypeBytes:
		v, rest, err = decodeBytesValue(b, startOffset, path, st)
	case majorTypeText:
		v, rest, err = decodeTextValue(b, startOffset, path, st)
	case majorTypeArray:
		v, rest, children, err = decodeArrayValue(orig, b, path, st)
	case majorTypeMap:
		v, rest, children, err = decodeMapValue(orig, b, path, st)
	case majorTypeTag:
		v, rest, children, err = decodeTagValue(orig, b, path, st)
	case majorTypeSimple:
		v, rest, err = decodeSimpleOrFloat(b, startOffset, path, st)
	default:
		err = newDecodeError(ErrKindReserved, startOffset, path, "invalid major type")
	}
	if err != nil {
		return Value{}, b, err
	}

	consumed := len(b) - len(rest)
	if err := st.lim.addOutput(startOffset, path, consumed); err != nil {
		return Value{}, b, err
	}

	if st.sm != nil {
		endOffset := len(orig) - len(rest)
		st.sm.finish(smIdx, endOffset, major, typeLabel(v), reprValue(v), parent, hasParent, children)
	}
	return v, rest, nil
}

// readHeaderArg parses a CBOR header of the given expected major type
// and returns its additional-info nibble, its decoded argument (valid
// only when ai is not 28-30 or 31), and the number of bytes consumed
// by the header itself. Reserved (28-30) and indefinite (31) additional
// info are reported via ai with arg=0 so callers can special-case them
// with the right offset/path context.
func readHeaderArg(b []byte, major uint8) (ai uint8, arg uint64, consumed int, err error) {
	if len(b) < 1 {
		return 0, 0, 0, ErrShortBytes
	}
	if getMajorType(b[0]) != major {
		return 0, 0, 0, badPrefix(getMajorType(b[0]), major)
	}
	ai = getAddInfo(b[0])
	if ai >= 28 && ai <= 30 {
		return ai, 0, 1, nil
	}
	if ai == addInfoIndefinite {
		return ai, 0, 1, nil
	}
	arg, rest, err2 := readUintCore(b, major)
	if err2 != nil {
		return ai, 0, 0, err2
	}
	return ai, arg, len(b) - len(rest), nil
}

// isNonCanonicalArg reports whether ai represents arg using more
// bytes than the shortest possible encoding — the canonical-mode
// check applied uniformly to every integer header (DESIGN.md Open
// Question 2), not only to map keys.
func isNonCanonicalArg(ai uint8, arg uint64) bool {
	switch ai {
	case addInfoUint8:
		return arg <= addInfoDirect
	case addInfoUint16:
		return arg <= 0xFF
	case addInfoUint32:
		return arg <= 0xFFFF
	case addInfoUint64:
		return arg <= 0xFFFFFFFF
	default:
		return false
	}
}

func decodeUint(b []byte, offset int, path string, st *decodeState) (Value, []byte, error) {
	ai, arg, consumed, err := readHeaderArg(b, majorTypeUint)
	if err != nil {
		return Value{}, b, wrapAtOffset(err, ErrKindUnexpectedEOF, offset, path)
	}
	if ai >= 28 && ai <= 30 {
		return Value{}, b, newDecodeError(ErrKindReserved, offset, path, "reserved additional info in integer header")
	}
	if ai == addInfoIndefinite {
		return Value{}, b, newDecodeError(ErrKindUnexpectedBreak, offset, path, "indefinite marker not valid for integers")
	}
	if st.opts.ValidateCanonical && isNonCanonicalArg(ai, arg) {
		return Value{}, b, newDecodeError(ErrKindNonCanonicalInteger, offset, path, "integer not encoded in minimal form")
	}
	return Value{Kind: KindUint, Uint64: arg}, b[consumed:], nil
}

func decodeNegInt(b []byte, offset int, path string, st *decodeState) (Value, []byte, error) {
	ai, arg, consumed, err := readHeaderArg(b, majorTypeNegInt)
	if err != nil {
		return Value{}, b, wrapAtOffset(err, ErrKindUnexpectedEOF, offset, path)
	}
	if ai >= 28 && ai <= 30 {
		return Value{}, b, newDecodeError(ErrKindReserved, offset, path, "reserved additional info in integer header")
	}
	if ai == addInfoIndefinite {
		return Value{}, b, newDecodeError(ErrKindUnexpectedBreak, offset, path, "indefinite marker not valid for integers")
	}
	if st.opts.ValidateCanonical && isNonCanonicalArg(ai, arg) {
		return Value{}, b, newDecodeError(ErrKindNonCanonicalInteger, offset, path, "integer not encoded in minimal form")
	}
	neg := new(big.Int).SetUint64(arg)
	neg.Add(neg, big.NewInt(1))
	neg.Neg(neg)
	if neg.IsInt64() {
		return Value{Kind: KindNegative, Int64: neg.Int64()}, b[consumed:], nil
	}
	return Value{Kind: KindNegative, Big: neg}, b[consumed:], nil
}

// readDefiniteChunk reads one definite-length bytes or text chunk and
// returns its payload and the bytes consumed; used both for a plain
// definite string and for each chunk of an indefinite one.
func readDefiniteChunk(b []byte, major uint8, offset int, path string) ([]byte, []byte, error) {
	sz, rest, err := readUintCore(b, major)
	if err != nil {
		return nil, b, wrapAtOffset(err, ErrKindUnexpectedEOF, offset, path)
	}
	if uint64(len(rest)) < sz {
		return nil, b, newDecodeError(ErrKindUnexpectedEOF, offset, path, "truncated string chunk")
	}
	return rest[:sz], rest[sz:], nil
}

func decodeBytesValue(b []byte, offset int, path string, st *decodeState) (Value, []byte, error) {
	ai := getAddInfo(b[0])
	if ai >= 28 && ai <= 30 {
		return Value{}, b, newDecodeError(ErrKindReserved, offset, path, "reserved additional info in byte string header")
	}

	if ai == addInfoIndefinite {
		if !st.opts.AllowIndefinite {
			return Value{}, b, newDecodeError(ErrKindIndefiniteDisallowed, offset, path, "indefinite byte string not allowed")
		}
		rest := b[1:]
		var chunks [][]byte
		total := 0
		for {
			if len(rest) < 1 {
				return Value{}, b, newDecodeError(ErrKindMissingBreak, offset, path, "unterminated indefinite byte string")
			}
			if rest[0] == makeByte(majorTypeSimple, simpleBreak) {
				rest = rest[1:]
				break
			}
			if getMajorType(rest[0]) != majorTypeBytes || getAddInfo(rest[0]) == addInfoIndefinite {
				return Value{}, b, newDecodeError(ErrKindNestedIndefinite, offset, path, "byte string chunk must be definite-length bytes")
			}
			chunkOffset := offset + (len(b) - len(rest))
			chunk, rest2, err := readDefiniteChunk(rest, majorTypeBytes, chunkOffset, path)
			if err != nil {
				return Value{}, b, err
			}
			total += len(chunk)
			if st.opts.MaxByteStringLength > 0 && total > st.opts.MaxByteStringLength {
				return Value{}, b, newDecodeError(ErrKindStringTooLong, offset, path, "byte string exceeds max length")
			}
			chunks = append(chunks, chunk)
			rest = rest2
		}
		return Value{Kind: KindBytes, Chunks: chunks}, rest, nil
	}

	chunk, rest, err := readDefiniteChunk(b, majorTypeBytes, offset, path)
	if err != nil {
		return Value{}, b, err
	}
	if st.opts.MaxByteStringLength > 0 && len(chunk) > st.opts.MaxByteStringLength {
		return Value{}, b, newDecodeError(ErrKindStringTooLong, offset, path, "byte string exceeds max length")
	}
	return Value{Kind: KindBytes, Bytes: chunk}, rest, nil
}

func decodeTextValue(b []byte, offset int, path string, st *decodeState) (Value, []byte, error) {
	ai := getAddInfo(b[0])
	if ai >= 28 && ai <= 30 {
		return Value{}, b, newDecodeError(ErrKindReserved, offset, path, "reserved additional info in text string header")
	}

	validate := func(buf []byte) (bool, error) {
		valid := isUTF8Valid(buf)
		if !valid && st.opts.StrictUTF8 {
			return false, newDecodeError(ErrKindInvalidUTF8, offset, path, "text string is not valid UTF-8")
		}
		return valid, nil
	}

	if ai == addInfoIndefinite {
		if !st.opts.AllowIndefinite {
			return Value{}, b, newDecodeError(ErrKindIndefiniteDisallowed, offset, path, "indefinite text string not allowed")
		}
		rest := b[1:]
		var chunks [][]byte
		total := 0
		for {
			if len(rest) < 1 {
				return Value{}, b, newDecodeError(ErrKindMissingBreak, offset, path, "unterminated indefinite text string")
			}
			if rest[0] == makeByte(majorTypeSimple, simpleBreak) {
				rest = rest[1:]
				break
			}
			if getMajorType(rest[0]) != majorTypeText || getAddInfo(rest[0]) == addInfoIndefinite {
				return Value{}, b, newDecodeError(ErrKindNestedIndefinite, offset, path, "text string chunk must be definite-length text")
			}
			chunkOffset := offset + (len(b) - len(rest))
			chunk, rest2, err := readDefiniteChunk(rest, majorTypeText, chunkOffset, path)
			if err != nil {
				return Value{}, b, err
			}
			total += len(chunk)
			if st.opts.MaxTextStringLength > 0 && total > st.opts.MaxTextStringLength {
				return Value{}, b, newDecodeError(ErrKindStringTooLong, offset, path, "text string exceeds max length")
			}
			chunks = append(chunks, chunk)
			rest = rest2
		}
		flat := make([]byte, 0, total)
		for _, c := range chunks {
			flat = append(flat, c...)
		}
		valid, err := validate(flat)
		if err != nil {
			return Value{}, b, err
		}
		return Value{Kind: KindText, Text: string(flat), TextValid: valid, Chunks: chunks}, rest, nil
	}

	chunk, rest, err := readDefiniteChunk(b, majorTypeText, offset, path)
	if err != nil {
		return Value{}, b, err
	}
	if st.opts.MaxTextStringLength > 0 && len(chunk) > st.opts.MaxTextStringLength {
		return Value{}, b, newDecodeError(ErrKindStringTooLong, offset, path, "text string exceeds max length")
	}
	valid, err := validate(chunk)
	if err != nil {
		return Value{}, b, err
	}
	return Value{Kind: KindText, Text: string(chunk), TextValid: valid}, rest, nil
}

func decodeArrayValue(orig, b []byte, path string, st *decodeState) (Value, []byte, []string, error) {
	offset := len(orig) - len(b)
	ai := getAddInfo(b[0])
	if ai >= 28 && ai <= 30 {
		return Value{}, b, nil, newDecodeError(ErrKindReserved, offset, path, "reserved additional info in array header")
	}
	if err := st.lim.enter(offset, path); err != nil {
		return Value{}, b, nil, err
	}
	defer st.lim.leave()

	if ai == addInfoIndefinite {
		if !st.opts.AllowIndefinite {
			return Value{}, b, nil, newDecodeError(ErrKindIndefiniteDisallowed, offset, path, "indefinite array not allowed")
		}
		rest := b[1:]
		var items []Value
		var children []string
		count := 0
		for {
			if len(rest) < 1 {
				return Value{}, b, nil, newDecodeError(ErrKindMissingBreak, offset, path, "unterminated indefinite array")
			}
			if rest[0] == makeByte(majorTypeSimple, simpleBreak) {
				rest = rest[1:]
				break
			}
			count++
			if st.opts.MaxArrayLength > 0 && count > st.opts.MaxArrayLength {
				return Value{}, b, nil, newDecodeError(ErrKindArrayTooLarge, offset, path, "array exceeds max length")
			}
			childPath := arrayChildPath(path, len(items))
			item, rest2, err := decodeItem(orig, rest, childPath, path, true, st)
			if err != nil {
				return Value{}, b, nil, err
			}
			items = append(items, item)
			children = append(children, childPath)
			rest = rest2
		}
		return Value{Kind: KindArray, Array: items, Indefinite: true}, rest, children, nil
	}

	_, count64, consumed, err := readHeaderArg(b, majorTypeArray)
	if err != nil {
		return Value{}, b, nil, wrapAtOffset(err, ErrKindUnexpectedEOF, offset, path)
	}
	if st.opts.MaxArrayLength > 0 && count64 > uint64(st.opts.MaxArrayLength) {
		return Value{}, b, nil, newDecodeError(ErrKindArrayTooLarge, offset, path, "array exceeds max length")
	}
	rest := b[consumed:]
	prealloc := clampPrealloc(count64, len(rest))
	items := make([]Value, 0, prealloc)
	children := make([]string, 0, prealloc)
	for i := uint64(0); i < count64; i++ {
		if err := st.lim.checkTimeout(len(orig)-len(rest), path); err != nil {
			return Value{}, b, nil, err
		}
		childPath := arrayChildPath(path, int(i))
		item, rest2, err := decodeItem(orig, rest, childPath, path, true, st)
		if err != nil {
			return Value{}, b, nil, err
		}
		items = append(items, item)
		children = append(children, childPath)
		rest = rest2
	}
	return Value{Kind: KindArray, Array: items}, rest, children, nil
}

func decodeMapValue(orig, b []byte, path string, st *decodeState) (Value, []byte, []string, error) {
	offset := len(orig) - len(b)
	ai := getAddInfo(b[0])
	if ai >= 28 && ai <= 30 {
		return Value{}, b, nil, newDecodeError(ErrKindReserved, offset, path, "reserved additional info in map header")
	}
	if err := st.lim.enter(offset, path); err != nil {
		return Value{}, b, nil, err
	}
	defer st.lim.leave()

	var entries []MapEntry
	var rawKeys [][]byte
	var children []string
	seen := make(map[string]struct{})

	appendEntry := func(k, v Value, rawKey []byte) error {
		ks := string(rawKey)
		if _, dup := seen[ks]; dup {
			return newDecodeError(ErrKindDuplicateKey, offset, path, "duplicate map key")
		}
		seen[ks] = struct{}{}
		entries = append(entries, MapEntry{Key: k, Value: v})
		rawKeys = append(rawKeys, rawKey)
		return nil
	}

	decodePair := func(rest []byte, idx int) ([]byte, error) {
		keyPath := mapKeyPath(path, idx)
		keyStart := len(orig) - len(rest)
		keyVal, rest2, err := decodeItem(orig, rest, keyPath, path, true, st)
		if err != nil {
			return rest, err
		}
		keyEnd := len(orig) - len(rest2)
		rawKey := orig[keyStart:keyEnd]

		if len(rest2) >= 1 && rest2[0] == makeByte(majorTypeSimple, simpleBreak) {
			return rest2, newDecodeError(ErrKindBreakInsideMapPair, len(orig)-len(rest2), path, "break inside map pair")
		}

		valuePath := mapValueChildPath(path, keyVal, idx)
		valVal, rest3, err := decodeItem(orig, rest2, valuePath, path, true, st)
		if err != nil {
			return rest3, err
		}
		if err := appendEntry(keyVal, valVal, rawKey); err != nil {
			return rest3, err
		}
		children = append(children, keyPath, valuePath)
		return rest3, nil
	}

	if ai == addInfoIndefinite {
		if !st.opts.AllowIndefinite {
			return Value{}, b, nil, newDecodeError(ErrKindIndefiniteDisallowed, offset, path, "indefinite map not allowed")
		}
		rest := b[1:]
		count := 0
		for {
			if len(rest) < 1 {
				return Value{}, b, nil, newDecodeError(ErrKindMissingBreak, offset, path, "unterminated indefinite map")
			}
			if rest[0] == makeByte(majorTypeSimple, simpleBreak) {
				rest = rest[1:]
				break
			}
			count++
			if st.opts.MaxMapSize > 0 && count > st.opts.MaxMapSize {
				return Value{}, b, nil, newDecodeError(ErrKindMapTooLarge, offset, path, "map exceeds max size")
			}
			var err error
			rest, err = decodePair(rest, len(entries))
			if err != nil {
				return Value{}, b, nil, err
			}
		}
		if err := checkCanonicalOrder(st.opts, rawKeys, offset, path); err != nil {
			return Value{}, b, nil, err
		}
		return Value{Kind: KindMap, Map: entries, Indefinite: true}, rest, children, nil
	}

	_, count64, consumed, err := readHeaderArg(b, majorTypeMap)
	if err != nil {
		return Value{}, b, nil, wrapAtOffset(err, ErrKindUnexpectedEOF, offset, path)
	}
	if st.opts.MaxMapSize > 0 && count64 > uint64(st.opts.MaxMapSize) {
		return Value{}, b, nil, newDecodeError(ErrKindMapTooLarge, offset, path, "map exceeds max size")
	}
	rest := b[consumed:]
	for i := uint64(0); i < count64; i++ {
		if err := st.lim.checkTimeout(len(orig)-len(rest), path); err != nil {
			return Value{}, b, nil, err
		}
		var err error
		rest, err = decodePair(rest, len(entries))
		if err != nil {
			return Value{}, b, nil, err
		}
	}
	if err := checkCanonicalOrder(st.opts, rawKeys, offset, path); err != nil {
		return Value{}, b, nil, err
	}
	return Value{Kind: KindMap, Map: entries}, rest, children, nil
}

// checkCanonicalOrder verifies that raw key byte slices are in strict
// length-lexicographic order (shorter first; equal length compared
// byte-wise ascending). It compares the raw parsed bytes directly
// rather than re-encoding, which is sound because canonical mode also
// enforces minimal-length integers uniformly (DESIGN.md Open
// Question 2), so parsed key bytes are already in canonical form.
func checkCanonicalOrder(opts DecodeOptions, rawKeys [][]byte, offset int, path string) error {
	if !opts.ValidateCanonical {
		return nil
	}
	for i := 1; i < len(rawKeys); i++ {
		if lengthLexLess(rawKeys[i], rawKeys[i-1]) {
			return newDecodeErrorf(ErrKindNonCanonicalKeyOrder, offset, path, "map key %d out of canonical order", i)
		}
	}
	return nil
}

// lengthLexLess reports whether a sorts strictly before b under
// length-lexicographic order: shorter byte strings first, and among
// equal-length strings the bytewise-smaller one first.
func lengthLexLess(a, b []byte) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func decodeSimpleOrFloat(b []byte, offset int, path string, st *decodeState) (Value, []byte, error) {
	ai := getAddInfo(b[0])
	switch {
	case ai <= 19:
		return Value{Kind: KindSimple, Simple: ai}, b[1:], nil
	case ai == simpleFalse:
		return Value{Kind: KindBool, Bool: false}, b[1:], nil
	case ai == simpleTrue:
		return Value{Kind: KindBool, Bool: true}, b[1:], nil
	case ai == simpleNull:
		return Value{Kind: KindNull}, b[1:], nil
	case ai == simpleUndefined:
		return Value{Kind: KindUndefined}, b[1:], nil
	case ai == addInfoUint8:
		if len(b) < 2 {
			return Value{}, b, newDecodeError(ErrKindUnexpectedEOF, offset, path, "truncated simple value")
		}
		val := b[1]
		if val < 32 {
			return Value{}, b, newDecodeError(ErrKindOverlongSimple, offset, path, "overlong simple value encoding")
		}
		return Value{Kind: KindSimple, Simple: val}, b[2:], nil
	case ai == simpleFloat16:
		return decodeFloat(b, offset, path, st, 16)
	case ai == simpleFloat32:
		return decodeFloat(b, offset, path, st, 32)
	case ai == simpleFloat64:
		return decodeFloat(b, offset, path, st, 64)
	case ai >= 28 && ai <= 30:
		return Value{}, b, newDecodeError(ErrKindReserved, offset, path, "reserved additional info")
	case ai == simpleBreak:
		return Value{}, b, newDecodeError(ErrKindUnexpectedBreak, offset, path, "unexpected break outside indefinite item")
	default:
		return Value{}, b, newDecodeError(ErrKindReserved, offset, path, "unrecognized additional info")
	}
}

func decodeFloat(b []byte, offset int, path string, st *decodeState, width int) (Value, []byte, error) {
	var f float64
	var rest []byte

	switch width {
	case 16:
		if len(b) < 3 {
			return Value{}, b, newDecodeError(ErrKindUnexpectedEOF, offset, path, "truncated float16")
		}
		bits := be.Uint16(b[1:])
		f = float64(float16BitsToFloat32(bits))
		rest = b[3:]
		if st.opts.ValidateCanonical && isFloat16NaN(bits) && bits != canonicalNaN16Bits {
			return Value{}, b, newDecodeError(ErrKindNonCanonicalNaN, offset, path, "non-canonical float16 NaN")
		}
	case 32:
		if len(b) < 5 {
			return Value{}, b, newDecodeError(ErrKindUnexpectedEOF, offset, path, "truncated float32")
		}
		bits := be.Uint32(b[1:])
		f = float64(mathFloat32frombits(bits))
		rest = b[5:]
		if st.opts.ValidateCanonical {
			if mathIsNaNbits32(bits) {
				return Value{}, b, newDecodeError(ErrKindNonCanonicalNaN, offset, path, "float32 NaN is never canonical: canonical NaN is always float16")
			}
			if representableAsFloat16(f) {
				return Value{}, b, newDecodeError(ErrKindNonMinimalFloat, offset, path, "float32 value representable as float16")
			}
		}
	case 64:
		if len(b) < 9 {
			return Value{}, b, newDecodeError(ErrKindUnexpectedEOF, offset, path, "truncated float64")
		}
		bits := be.Uint64(b[1:])
		f = mathFloat64frombits(bits)
		rest = b[9:]
		if st.opts.ValidateCanonical {
			if mathIsNaNbits64(bits) {
				return Value{}, b, newDecodeError(ErrKindNonCanonicalNaN, offset, path, "float64 NaN is never canonical: canonical NaN is always float16")
			}
			if representableAsFloat32(f) {
				return Value{}, b, newDecodeError(ErrKindNonMinimalFloat, offset, path, "float64 value representable as float32")
			}
		}
	}

	neg0 := f == 0 && signbit64(f)
	return Value{Kind: KindFloat, Float: f, FloatWidth: uint8(width), NegativeZero: neg0}, rest, nil
}
