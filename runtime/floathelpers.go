package cbor

import "math"

// canonicalNaN16Bits is the single bit pattern canonical encoding ever
// produces for NaN: canonical mode always narrows a NaN payload down
// to float16, discarding any payload bits (spec's canonical NaN
// policy; DESIGN.md Open Question 3).
const canonicalNaN16Bits = 0x7E00

func mathFloat32frombits(bits uint32) float32 { return math.Float32frombits(bits) }
func mathFloat64frombits(bits uint64) float64 { return math.Float64frombits(bits) }

func mathIsNaNbits32(bits uint32) bool { return math.IsNaN(float64(math.Float32frombits(bits))) }
func mathIsNaNbits64(bits uint64) bool { return math.IsNaN(math.Float64frombits(bits)) }

// isFloat16NaN reports whether a raw float16 bit pattern encodes NaN:
// exponent field all ones and a non-zero mantissa.
func isFloat16NaN(bits uint16) bool {
	return bits&0x7C00 == 0x7C00 && bits&0x03FF != 0
}

func signbit64(f float64) bool { return math.Signbit(f) }

// representableAsFloat16 reports whether f round-trips exactly through
// a float16 encoding, including agreement on the sign of zero. Used
// by the decoder's canonical-mode "shorter width exists" check on
// float32 values and by the encoder's shortest-float search; f is
// never NaN here, both callers handle NaN earlier.
func representableAsFloat16(f float64) bool {
	f32 := float32(f)
	if float64(f32) != f {
		return false
	}
	bits16 := float32ToFloat16Bits(f32)
	back := float64(float16BitsToFloat32(bits16))
	if back != f {
		return false
	}
	if f == 0 && math.Signbit(f) != (bits16&0x8000 != 0) {
		return false
	}
	return true
}

// representableAsFloat32 is the float64-width analogue of
// representableAsFloat16: reports whether f round-trips exactly
// through a float32 encoding, sign of zero included.
func representableAsFloat32(f float64) bool {
	f32 := float32(f)
	if float64(f32) != f {
		return false
	}
	if f == 0 && math.Signbit(f) != math.Signbit(float64(f32)) {
		return false
	}
	return true
}
