package color

import (
	"math"
	"regexp"
	"strconv"
)

var cmykPattern = regexp.MustCompile(`^([0-9]{1,3}),([0-9]{1,3}),([0-9]{1,3}),([0-9]{1,3})$`)

var cmykFields = [4]string{"cyan", "magenta", "yellow", "black"}

// ParseCMYK parses "c,m,y,k" with every component a percentage in [0, 100].
// The result is fully opaque.
func ParseCMYK(s string) (Color, error) {
	m := cmykPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, &FormatError{Notation: NotationCMYK, Input: s, Reason: "expected c,m,y,k as integers"}
	}

	var v [4]float64
	for i, tok := range m[1:] {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Color{}, &FormatError{Notation: NotationCMYK, Input: s, Reason: cmykFields[i] + " is not a number"}
		}
		if err := checkRange(NotationCMYK, cmykFields[i], f, 0, 100); err != nil {
			return Color{}, err
		}
		v[i] = f
	}

	r, g, b := cmykToRGB(v[0], v[1], v[2], v[3])
	return Opaque(r, g, b), nil
}

// cmykToRGB converts percentages to 8-bit channels. Channels are truncated,
// not rounded.
func cmykToRGB(c, m, y, k float64) (r, g, b uint8) {
	k /= 100
	ch := func(v float64) uint8 {
		return uint8((1 - math.Min(1, v/100*(1-k)+k)) * 255)
	}
	return ch(c), ch(m), ch(y)
}
