package swatch

import (
	"github.com/jsvensson/swatch/internal/color"
)

// Conversion is a parsed colour together with its code in every notation.
type Conversion struct {
	Notation color.Notation `json:"notation"`
	Input    string         `json:"input"`
	Color    color.Color    `json:"-"`
	Hex      string         `json:"hex"`
	RGB      string         `json:"rgb"`
	RGBA     string         `json:"rgba"`
	HSL      string         `json:"hsl"`
	HSLA     string         `json:"hsla"`
	CMYK     string         `json:"cmyk"`
}

// Convert parses code in the named notation and derives every other notation
// from the canonical colour.
func Convert(notation, code string) (*Conversion, error) {
	n, err := color.ParseNotation(notation)
	if err != nil {
		return nil, err
	}

	c, err := color.Parse(n, code)
	if err != nil {
		return nil, err
	}

	conv := FromColor(c)
	conv.Notation = n
	conv.Input = code
	return conv, nil
}

// FromColor builds a Conversion for an already canonical colour.
func FromColor(c color.Color) *Conversion {
	return &Conversion{
		Notation: color.NotationHex,
		Input:    c.Hex(),
		Color:    c,
		Hex:      c.Code(color.NotationHex),
		RGB:      c.Code(color.NotationRGB),
		RGBA:     c.Code(color.NotationRGBA),
		HSL:      c.Code(color.NotationHSL),
		HSLA:     c.Code(color.NotationHSLA),
		CMYK:     c.Code(color.NotationCMYK),
	}
}

// Random returns the Conversion of a random opaque colour.
func Random() *Conversion {
	return FromColor(color.Random())
}

// Code returns the conversion's code for notation n.
func (c *Conversion) Code(n color.Notation) string {
	switch n {
	case color.NotationRGB:
		return c.RGB
	case color.NotationRGBA:
		return c.RGBA
	case color.NotationHSL:
		return c.HSL
	case color.NotationHSLA:
		return c.HSLA
	case color.NotationCMYK:
		return c.CMYK
	default:
		return c.Hex
	}
}
