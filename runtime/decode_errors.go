package cbor

import "fmt"

// ErrorKind identifies the category of a DecodeError. The set is closed:
// every fatal condition the decoder, source-map builder, or tag
// dispatcher can raise has exactly one kind.
type ErrorKind string

const (
	ErrKindUnexpectedEOF        ErrorKind = "UnexpectedEof"
	ErrKindInvalidHex           ErrorKind = "InvalidHex"
	ErrKindReserved             ErrorKind = "Reserved"
	ErrKindUnexpectedBreak      ErrorKind = "UnexpectedBreak"
	ErrKindMissingBreak         ErrorKind = "MissingBreak"
	ErrKindNestedIndefinite     ErrorKind = "NestedIndefinite"
	ErrKindIndefiniteDisallowed ErrorKind = "IndefiniteDisallowed"
	ErrKindDepthExceeded        ErrorKind = "DepthExceeded"
	ErrKindArrayTooLarge        ErrorKind = "ArrayTooLarge"
	ErrKindMapTooLarge          ErrorKind = "MapTooLarge"
	ErrKindOutputTooLarge       ErrorKind = "OutputTooLarge"
	ErrKindBignumTooLarge       ErrorKind = "BignumTooLarge"
	ErrKindStringTooLong        ErrorKind = "StringTooLong"
	ErrKindTimeout              ErrorKind = "Timeout"
	ErrKindInvalidUTF8          ErrorKind = "InvalidUtf8"
	ErrKindOverlongSimple       ErrorKind = "OverlongSimple"
	ErrKindNonCanonicalKeyOrder ErrorKind = "NonCanonicalKeyOrder"
	ErrKindDuplicateKey         ErrorKind = "DuplicateKey"
	ErrKindNonCanonicalInteger  ErrorKind = "NonCanonicalInteger"
	ErrKindNonMinimalFloat      ErrorKind = "NonMinimalFloat"
	ErrKindNonCanonicalNaN      ErrorKind = "NonCanonicalNaN"
	ErrKindBreakInsideMapPair   ErrorKind = "BreakInsideMapPair"
	ErrKindUnknownTag           ErrorKind = "UnknownTag"
	ErrKindTagShapeMismatch     ErrorKind = "TagShapeMismatch"
	ErrKindPlutusShapeMismatch  ErrorKind = "PlutusShapeMismatch"
	ErrKindEncodingUnsupported  ErrorKind = "EncodingUnsupportedValue"
)

// DecodeError is returned by Decode, DecodeWithSourceMap, Encode, and
// EncodeSequence for every fatal condition. It always carries the byte
// offset at which the problem was detected and the structural path of
// the value being checked there (empty for the document root).
type DecodeError struct {
	Kind   ErrorKind
	Offset int
	Path   string
	Msg    string
}

func (e *DecodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("cbor: %s at offset %d (path %s): %s", e.Kind, e.Offset, e.Path, e.Msg)
	}
	return fmt.Sprintf("cbor: %s at offset %d: %s", e.Kind, e.Offset, e.Msg)
}

func newDecodeError(kind ErrorKind, offset int, path string, msg string) *DecodeError {
	return &DecodeError{Kind: kind, Offset: offset, Path: path, Msg: msg}
}

func newDecodeErrorf(kind ErrorKind, offset int, path string, format string, args ...any) *DecodeError {
	return &DecodeError{Kind: kind, Offset: offset, Path: path, Msg: fmt.Sprintf(format, args...)}
}

// wrapAtOffset reattaches a byte-level error (from readUintCore or
// readHeaderArg) to the richer DecodeError taxonomy used by the Value-producing
// decoder, so every error surfaced through Decode/DecodeWithSourceMap
// carries an offset and path regardless of which layer detected it.
func wrapAtOffset(err error, kind ErrorKind, offset int, path string) *DecodeError {
	if err == nil {
		return nil
	}
	return newDecodeError(kind, offset, path, err.Error())
}
