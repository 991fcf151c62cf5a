// Package cbor implements RFC 8949 CBOR encoding and decoding, a
// source-map extension that links decoded values to their exact byte
// ranges, and structural validation for the Cardano Plutus Data tag
// family (102, 121-127, 1280-1400).
//
// Decode and DecodeWithSourceMap both parse into a Value tree; Encode
// and EncodeValue both append canonical or non-canonical CBOR bytes
// from one. There is no streaming Reader/Writer surface: every entry
// point takes or returns a complete []byte.
package cbor

// CBOR major types (3 bits)
const (
	majorTypeUint   = 0 // unsigned integer
	majorTypeNegInt = 1 // negative integer
	majorTypeBytes  = 2 // byte string
	majorTypeText   = 3 // text string (UTF-8)
	majorTypeArray  = 4 // array
	majorTypeMap    = 5 // map
	majorTypeTag    = 6 // semantic tag
	majorTypeSimple = 7 // float, simple values, break
)

// Additional info values (5 bits)
const (
	// 0-23: literal value
	addInfoDirect     = 23 // max direct value
	addInfoUint8      = 24 // 1-byte uint8 follows
	addInfoUint16     = 25 // 2-byte uint16 follows
	addInfoUint32     = 26 // 4-byte uint32 follows
	addInfoUint64     = 27 // 8-byte uint64 follows
	addInfoIndefinite = 31 // indefinite length (for bytes, text, array, map)
)

// Simple values in major type 7
const (
	simpleFalse     = 20
	simpleTrue      = 21
	simpleNull      = 22
	simpleUndefined = 23
	simpleFloat16   = 25
	simpleFloat32   = 26
	simpleFloat64   = 27
	simpleBreak     = 31
)

// Tags dispatchTag branches on by name rather than numeric literal.
// Every other recognized tag (0-5, 32-36) is handled by literal tag
// number in tags_dispatch.go.
const (
	tagSelfDescribeCBOR = 55799 // Self-describe CBOR (0xd9d9f7)
	tagSet              = 258   // Set: array with no duplicate elements
)

// Cardano Plutus Data constructor tags. tagPlutusConstr wraps a generic
// [index, fields] pair; the two ranges encode small constructor indices
// directly in the tag number.
const (
	tagPlutusConstr          = 102
	tagPlutusConstrRange1Min = 121
	tagPlutusConstrRange1Max = 127
	tagPlutusConstrRange2Min = 1280
	tagPlutusConstrRange2Max = 1400
)

// makeByte creates a CBOR initial byte from major type and additional info
func makeByte(majorType, addInfo uint8) byte {
	return byte((majorType << 5) | addInfo)
}

// getMajorType extracts the major type from a CBOR initial byte
func getMajorType(b byte) uint8 {
	return (b >> 5) & 0x07
}

// getAddInfo extracts the additional info from a CBOR initial byte
func getAddInfo(b byte) uint8 {
	return b & 0x1f
}
