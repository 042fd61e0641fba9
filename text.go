package greetbridge

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

const (
	surrogateMin     = 0xD800
	highSurrogateMax = 0xDBFF
	surrogateMax     = 0xDFFF
)

// ToNative converts managed UTF-8 text into the byte representation held by
// the native object. The result never aliases s.
func ToNative(s string) ([]byte, error) {
	if err := validateUTF8(s, Inbound); err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// FromNative converts bytes produced by the native object into a Go string.
// The native side has no encoding guarantee, so the bytes are validated.
func FromNative(b []byte) (string, error) {
	s := string(b)
	if err := validateUTF8(s, Outbound); err != nil {
		return "", err
	}
	return s, nil
}

// DecodeUTF16 converts UTF-16 code units from a managed caller into UTF-8.
// Unpaired surrogates are rejected rather than replaced with U+FFFD.
func DecodeUTF16(u []uint16) (string, error) {
	var b strings.Builder
	b.Grow(len(u))
	for i := 0; i < len(u); i++ {
		c := rune(u[i])
		switch {
		case c < surrogateMin || c > surrogateMax:
			b.WriteRune(c)
		case c <= highSurrogateMax && i+1 < len(u):
			r := utf16.DecodeRune(c, rune(u[i+1]))
			if r == utf8.RuneError {
				return "", unpairedSurrogate(i, c)
			}
			b.WriteRune(r)
			i++
		default:
			return "", unpairedSurrogate(i, c)
		}
	}
	return b.String(), nil
}

// EncodeUTF16 converts UTF-8 text into UTF-16 code units for a managed caller.
func EncodeUTF16(s string) ([]uint16, error) {
	if err := validateUTF8(s, Outbound); err != nil {
		return nil, err
	}
	out := make([]uint16, 0, len(s))
	for _, r := range s {
		out = utf16.AppendRune(out, r)
	}
	return out, nil
}

func validateUTF8(s string, dir Direction) error {
	if _, _, err := transform.String(encoding.UTF8Validator, s); err != nil {
		return &EncodingError{
			Direction: dir,
			Source:    UTF8,
			Offset:    firstInvalidUTF8(s),
			Reason:    "invalid UTF-8 sequence",
			Err:       err,
		}
	}
	return nil
}

// firstInvalidUTF8 returns the byte offset of the first invalid sequence,
// or len(s) if there is none.
func firstInvalidUTF8(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(s)
}

func unpairedSurrogate(offset int, c rune) *EncodingError {
	kind := "low"
	if c <= highSurrogateMax {
		kind = "high"
	}
	return &EncodingError{
		Direction: Inbound,
		Source:    UTF16,
		Offset:    offset,
		Reason:    "unpaired " + kind + " surrogate",
	}
}
