package color

import (
	"fmt"
	"strings"
)

// Notation names one of the supported textual colour encodings.
type Notation string

const (
	NotationHex  Notation = "hex"
	NotationRGB  Notation = "rgb"
	NotationRGBA Notation = "rgba"
	NotationHSL  Notation = "hsl"
	NotationHSLA Notation = "hsla"
	NotationCMYK Notation = "cmyk"
)

// Notations lists every supported notation in display order.
var Notations = []Notation{
	NotationHex,
	NotationRGB,
	NotationRGBA,
	NotationHSL,
	NotationHSLA,
	NotationCMYK,
}

var parsers = map[Notation]func(string) (Color, error){
	NotationHex:  ParseHex,
	NotationRGB:  ParseRGB,
	NotationRGBA: ParseRGBA,
	NotationHSL:  ParseHSL,
	NotationHSLA: ParseHSLA,
	NotationCMYK: ParseCMYK,
}

// ParseNotation resolves a case-insensitive notation keyword.
func ParseNotation(name string) (Notation, error) {
	n := Notation(strings.ToLower(name))
	if _, ok := parsers[n]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownNotation, name)
	}
	return n, nil
}

// Parse dispatches code to the parser for notation n.
func Parse(n Notation, code string) (Color, error) {
	parse, ok := parsers[n]
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownNotation, string(n))
	}
	return parse(code)
}

// Title returns the upper-case label used in user-facing messages, e.g. "HSLA".
func (n Notation) Title() string {
	return strings.ToUpper(string(n))
}
