package greetbridge

import (
	"errors"
	"fmt"
)

// ErrEncoding matches any *EncodingError via errors.Is.
var ErrEncoding = errors.New("greetbridge: text not representable in target encoding")

// ErrClosed is returned by calls on a Greeter that has been closed.
var ErrClosed = errors.New("greetbridge: greeter is closed")

// Direction names which side of the boundary a conversion was heading to.
type Direction int

const (
	// Inbound is managed text converted for the native object.
	Inbound Direction = iota
	// Outbound is native text converted for the managed caller.
	Outbound
)

func (d Direction) String() string {
	switch d {
	case Inbound:
		return "inbound"
	case Outbound:
		return "outbound"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Encoding identifies a text representation on one side of the boundary.
type Encoding string

const (
	UTF8  Encoding = "UTF-8"
	UTF16 Encoding = "UTF-16"
)

// EncodingError reports text that could not be transcoded losslessly.
// Offset is measured in units of Source: bytes for UTF-8, code units for UTF-16.
type EncodingError struct {
	Direction Direction
	Source    Encoding
	Offset    int
	Reason    string
	Err       error // underlying decoder error, if any
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("greetbridge: %s %s at offset %d: %s", e.Direction, e.Source, e.Offset, e.Reason)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrEncoding) true for every EncodingError.
func (e *EncodingError) Is(target error) bool {
	return target == ErrEncoding
}
