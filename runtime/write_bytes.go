package cbor

import (
	"encoding/binary"
	"math"
)

// ensure 'sz' extra bytes in 'b' btw len(b) and cap(b)
func ensure(b []byte, sz int) ([]byte, int) {
	l := len(b)
	c := cap(b)
	if c-l < sz {
		o := make([]byte, (2*c)+sz) // exponential growth
		n := copy(o, b)
		return o[:n+sz], n
	}
	return b[:l+sz], l
}

// appendUintCore encodes an unsigned integer with the given major type,
// always choosing the shortest header width that can hold u.
func appendUintCore(b []byte, majorType uint8, u uint64) []byte {
	switch {
	case u <= addInfoDirect:
		return append(b, makeByte(majorType, uint8(u)))
	case u <= math.MaxUint8:
		o, n := ensure(b, 2)
		o[n] = makeByte(majorType, addInfoUint8)
		o[n+1] = uint8(u)
		return o
	case u <= math.MaxUint16:
		o, n := ensure(b, 3)
		o[n] = makeByte(majorType, addInfoUint16)
		binary.BigEndian.PutUint16(o[n+1:], uint16(u))
		return o
	case u <= math.MaxUint32:
		o, n := ensure(b, 5)
		o[n] = makeByte(majorType, addInfoUint32)
		binary.BigEndian.PutUint32(o[n+1:], uint32(u))
		return o
	default:
		o, n := ensure(b, 9)
		o[n] = makeByte(majorType, addInfoUint64)
		binary.BigEndian.PutUint64(o[n+1:], u)
		return o
	}
}

// AppendNil appends a null value.
func AppendNil(b []byte) []byte {
	return append(b, makeByte(majorTypeSimple, simpleNull))
}

// AppendUndefined appends the undefined simple value (23).
func AppendUndefined(b []byte) []byte {
	return append(b, makeByte(majorTypeSimple, simpleUndefined))
}

// AppendFloat64 appends a binary64 float.
func AppendFloat64(b []byte, f float64) []byte {
	o, n := ensure(b, 9)
	o[n] = makeByte(majorTypeSimple, simpleFloat64)
	binary.BigEndian.PutUint64(o[n+1:], math.Float64bits(f))
	return o
}

// AppendFloat32 appends a binary32 float.
func AppendFloat32(b []byte, f float32) []byte {
	o, n := ensure(b, 5)
	o[n] = makeByte(majorTypeSimple, simpleFloat32)
	binary.BigEndian.PutUint32(o[n+1:], math.Float32bits(f))
	return o
}

// AppendBytes appends a definite-length byte string.
func AppendBytes(b []byte, data []byte) []byte {
	sz := uint64(len(data))
	var h int
	switch {
	case sz <= addInfoDirect:
		h = 1
	case sz <= math.MaxUint8:
		h = 2
	case sz <= math.MaxUint16:
		h = 3
	case sz <= math.MaxUint32:
		h = 5
	default:
		h = 9
	}
	o, n := ensure(b, h+int(sz))
	switch h {
	case 1:
		o[n] = makeByte(majorTypeBytes, uint8(sz))
		n++
	case 2:
		o[n] = makeByte(majorTypeBytes, addInfoUint8)
		o[n+1] = uint8(sz)
		n += 2
	case 3:
		o[n] = makeByte(majorTypeBytes, addInfoUint16)
		binary.BigEndian.PutUint16(o[n+1:], uint16(sz))
		n += 3
	case 5:
		o[n] = makeByte(majorTypeBytes, addInfoUint32)
		binary.BigEndian.PutUint32(o[n+1:], uint32(sz))
		n += 5
	case 9:
		o[n] = makeByte(majorTypeBytes, addInfoUint64)
		binary.BigEndian.PutUint64(o[n+1:], sz)
		n += 9
	}
	copy(o[n:], data)
	return o[:n+int(sz)]
}

// AppendString appends a definite-length text string.
func AppendString(b []byte, s string) []byte {
	sz := uint64(len(s))
	var h int
	switch {
	case sz <= addInfoDirect:
		h = 1
	case sz <= math.MaxUint8:
		h = 2
	case sz <= math.MaxUint16:
		h = 3
	case sz <= math.MaxUint32:
		h = 5
	default:
		h = 9
	}
	o, n := ensure(b, h+int(sz))
	switch h {
	case 1:
		o[n] = makeByte(majorTypeText, uint8(sz))
		n++
	case 2:
		o[n] = makeByte(majorTypeText, addInfoUint8)
		o[n+1] = uint8(sz)
		n += 2
	case 3:
		o[n] = makeByte(majorTypeText, addInfoUint16)
		binary.BigEndian.PutUint16(o[n+1:], uint16(sz))
		n += 3
	case 5:
		o[n] = makeByte(majorTypeText, addInfoUint32)
		binary.BigEndian.PutUint32(o[n+1:], uint32(sz))
		n += 5
	case 9:
		o[n] = makeByte(majorTypeText, addInfoUint64)
		binary.BigEndian.PutUint64(o[n+1:], sz)
		n += 9
	}
	copy(o[n:], s)
	return o[:n+int(sz)]
}

// AppendBool appends a boolean simple value.
func AppendBool(b []byte, val bool) []byte {
	if val {
		return append(b, makeByte(majorTypeSimple, simpleTrue))
	}
	return append(b, makeByte(majorTypeSimple, simpleFalse))
}

// AppendSimpleValue appends a generic simple value. Values 0..23 are
// encoded in the additional information; every value from 24 up is
// encoded as 0xf8 XX. The value is not range-checked: 24..31 are not
// valid two-byte simple values, and are written in that form anyway.
func AppendSimpleValue(b []byte, val uint8) []byte {
	switch {
	case val <= addInfoDirect:
		return append(b, makeByte(majorTypeSimple, val))
	default:
		o, n := ensure(b, 2)
		o[n] = makeByte(majorTypeSimple, addInfoUint8)
		o[n+1] = val
		return o
	}
}

// float32ToFloat16Bits converts float32 to IEEE 754 binary16 (round to
// nearest even), used by the canonical-mode shortest-float search.
func float32ToFloat16Bits(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16((bits >> 31) & 0x1)
	exp := int((bits >> 23) & 0xFF)
	mant := bits & 0x7FFFFF

	var h uint16
	switch exp {
	case 0xFF: // NaN or Inf
		if mant == 0 {
			h = (0x1F << 10) // Inf
		} else {
			h = (0x1F << 10) | uint16(mant>>13)
			if h&0x03FF == 0 { // ensure NaN payload
				h |= 1
			}
		}
	case 0: // zero or subnormal in f32 flushes to zero at f16 granularity
		h = 0
	default:
		// Unbias exponent: e32 = exp-127; target e16 = e32 + 15
		e32 := exp - 127
		e16 := e32 + 15
		if e16 >= 0x1F { // overflow => Inf
			h = (0x1F << 10)
		} else if e16 <= 0 { // subnormal or underflow
			shift := -e32 - 1
			if shift > 24 { // too small => zero
				h = 0
			} else {
				mantissa := (mant | 1<<23)
				round := uint32(1) << (shift - 1)
				val := uint32(mantissa)
				val += round - 1 + ((val >> (shift)) & 1) // round to even
				frac := uint16(val >> shift)
				h = frac // 0x0400 here is a round-up to the smallest normal
			}
		} else {
			// normal half: round mantissa from 23 to 10 bits
			mantR := mant
			round := uint32(1) << 12
			val := mantR + round - 1 + ((mantR >> 13) & 1)
			frac := uint16(val >> 13)
			h = (uint16(e16) << 10) | (frac & 0x03FF)
			if frac>>10 != 0 { // mantissa overflow rounded up exponent
				e16++
				if e16 >= 0x1F {
					h = (0x1F << 10)
				} else {
					h = (uint16(e16) << 10)
				}
			}
		}
	}
	return (sign << 15) | h
}
