package cbor

import (
	"reflect"
	"strconv"
)

// ErrShortBytes is returned when the slice being decoded is too short
// to contain the contents of the message.
var ErrShortBytes error = errShort{}

type errShort struct{}

func (e errShort) Error() string { return "cbor: too few bytes left to read object" }

// badPrefix reports that the initial byte at the current read position
// carries a major type other than the one the caller required.
func badPrefix(gotMajor uint8, wantMajor uint8) error {
	return InvalidPrefixError{Want: wantMajor, Got: gotMajor}
}

// InvalidPrefixError is returned when a bad encoding uses a major type
// that is not expected.
type InvalidPrefixError struct {
	Want uint8
	Got  uint8
}

// Error implements the error interface
func (i InvalidPrefixError) Error() string {
	return "cbor: expected major type " + strconv.Itoa(int(i.Want)) + " but got " + strconv.Itoa(int(i.Got))
}

// ErrUnsupportedType is returned when a bad argument is supplied to a
// function that accepts arbitrary values.
type ErrUnsupportedType struct {
	T reflect.Type
}

// Error implements error
func (e *ErrUnsupportedType) Error() string {
	return "cbor: type " + quoteStr(e.T.String()) + " not supported"
}

func quoteStr(s string) string { return strconv.Quote(s) }
