package cbor

import "math/big"

// ValueKind identifies which field(s) of a Value are populated.
type ValueKind uint8

const (
	KindInvalid ValueKind = iota
	KindUint
	KindNegative
	KindBytes
	KindText
	KindArray
	KindMap
	KindTag
	KindSimple
	KindBool
	KindNull
	KindUndefined
	KindFloat
	KindPlutusConstr
)

func (k ValueKind) String() string {
	switch k {
	case KindUint:
		return "uint"
	case KindNegative:
		return "negative"
	case KindBytes:
		return "bytes"
	case KindText:
		return "text"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindTag:
		return "tag"
	case KindSimple:
		return "simple"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindFloat:
		return "float"
	case KindPlutusConstr:
		return "plutus-constr"
	default:
		return "invalid"
	}
}

// MapEntry is a single key/value pair of a decoded Map, preserving
// the order the pairs appeared in the input.
type MapEntry struct {
	Key   Value
	Value Value
}

// Value is the decoded form produced by Decode and DecodeWithSourceMap:
// a closed tagged union over every CBOR major type plus the semantic
// results of tag dispatch (bignums, decimal fractions/bigfloats left
// as Tagged, and Cardano Plutus Data constructors).
//
// Plutus Map/List/Int/Bytes (per the data model's logical union) are
// not distinct Kinds here: they alias KindMap/KindArray/(KindUint or
// KindNegative)/KindBytes, since only the constructor tags attach
// extra tag-derived metadata (the constructor index). See DESIGN.md,
// Open Question 7.
type Value struct {
	Kind ValueKind

	// KindUint / KindNegative.
	Uint64 uint64
	Int64  int64
	Big    *big.Int // non-nil for tag-2/3 bignum results and for a major-type-1 integer below the int64 range; EncodeValue writes any Big-backed value as a tag-2/3 bignum

	// KindBytes.
	Bytes  []byte
	Chunks [][]byte // set only when decoded from indefinite-length framing

	// KindText.
	Text      string
	TextValid bool // meaningful only when StrictUTF8 was false

	// KindArray.
	Array      []Value
	Indefinite bool

	// KindMap.
	Map []MapEntry

	// KindTag.
	Tag    uint64
	Tagged *Value

	// KindSimple.
	Simple uint8

	// KindBool.
	Bool bool

	// KindFloat.
	Float        float64
	FloatWidth   uint8 // 16, 32, or 64: the width the value was decoded from
	NegativeZero bool

	// KindPlutusConstr.
	PlutusConstr uint64
	PlutusFields []Value
}

// IsBig reports whether this Uint/Negative value's magnitude is
// carried in Big rather than in Uint64/Int64.
func (v Value) IsBig() bool { return v.Big != nil }

// AsUint64 returns the value as a uint64 when it is a non-negative
// integer that fits, reporting false otherwise.
func (v Value) AsUint64() (uint64, bool) {
	switch v.Kind {
	case KindUint:
		if v.Big != nil {
			if v.Big.Sign() < 0 || !v.Big.IsUint64() {
				return 0, false
			}
			return v.Big.Uint64(), true
		}
		return v.Uint64, true
	default:
		return 0, false
	}
}

// AsInt64 returns the value as an int64 when it is an integer (either
// sign) that fits, reporting false otherwise.
func (v Value) AsInt64() (int64, bool) {
	switch v.Kind {
	case KindUint:
		if v.Big != nil {
			if !v.Big.IsInt64() {
				return 0, false
			}
			return v.Big.Int64(), true
		}
		if v.Uint64 > 1<<63-1 {
			return 0, false
		}
		return int64(v.Uint64), true
	case KindNegative:
		if v.Big != nil {
			if !v.Big.IsInt64() {
				return 0, false
			}
			return v.Big.Int64(), true
		}
		return v.Int64, true
	default:
		return 0, false
	}
}

// IsInteger reports whether v holds an Unsigned or Negative integer
// (plain or bignum-backed).
func (v Value) IsInteger() bool { return v.Kind == KindUint || v.Kind == KindNegative }

// bytesFlat returns the concatenated bytes of a KindBytes value,
// whether it was decoded as one definite chunk or several indefinite
// chunks.
func (v Value) bytesFlat() []byte {
	if v.Chunks == nil {
		return v.Bytes
	}
	total := 0
	for _, c := range v.Chunks {
		total += len(c)
	}
	out := make([]byte, 0, total)
	for _, c := range v.Chunks {
		out = append(out, c...)
	}
	return out
}
