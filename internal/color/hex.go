package color

import (
	"encoding/hex"
	"math/rand"
	"strings"
)

const hexDigits = "0123456789ABCDEF"

// ParseHex parses 6 or 8 hex digits (optionally prefixed with '#') into a
// Color. Six digits get an implicit opaque alpha.
func ParseHex(s string) (Color, error) {
	code := strings.TrimPrefix(s, "#")
	if len(code) == 6 {
		code += "FF"
	}
	if len(code) != 8 {
		return Color{}, &FormatError{Notation: NotationHex, Input: s, Reason: "must be 6 or 8 hex digits"}
	}

	b, err := hex.DecodeString(code)
	if err != nil {
		return Color{}, &FormatError{Notation: NotationHex, Input: s, Reason: "contains a non-hex digit"}
	}
	return Color{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
}

// RandomHex returns 6 uppercase hex digits drawn uniformly at random. It is
// not suitable for anything security related.
func RandomHex() string {
	var b [6]byte
	for i := range b {
		b[i] = hexDigits[rand.Intn(len(hexDigits))]
	}
	return string(b[:])
}

// Random returns an opaque Color built from RandomHex.
func Random() Color {
	c, _ := ParseHex(RandomHex())
	return c
}
