package cbor

// UnsafeBytes returns the string as a byte slice, for feeding into
// isUTF8Valid on the encode path's StrictUTF8 check.
func UnsafeBytes(s string) []byte { return []byte(s) }
