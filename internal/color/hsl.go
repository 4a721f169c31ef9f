package color

import (
	"math"
	"regexp"
	"strconv"
)

var (
	hslPattern  = regexp.MustCompile(`^([0-9]{1,3}),([0-9]{1,3}),([0-9]{1,3})$`)
	hslaPattern = regexp.MustCompile(`^([0-9]{1,3}),([0-9]{1,3}),([0-9]{1,3}),(0|1|1\.0|0\.[0-9]+)$`)
)

var hslFields = [3]struct {
	name string
	max  float64
}{
	{"hue", 360},
	{"saturation", 100},
	{"lightness", 100},
}

// ParseHSL parses "h,s,l" with hue in degrees [0, 360] and saturation and
// lightness in percent [0, 100]. The result is fully opaque.
func ParseHSL(s string) (Color, error) {
	m := hslPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, &FormatError{Notation: NotationHSL, Input: s, Reason: "expected h,s,l as integers"}
	}
	h, sat, l, err := hslComponents(NotationHSL, s, m[1:4])
	if err != nil {
		return Color{}, err
	}
	r, g, b := hslToRGB(h, sat, l)
	return Opaque(r, g, b), nil
}

// ParseHSLA parses "h,s,l,a" where a is an opacity of 0, 1, 1.0 or 0.<digits>.
func ParseHSLA(s string) (Color, error) {
	m := hslaPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, &FormatError{Notation: NotationHSLA, Input: s, Reason: "expected h,s,l,a with integer h,s,l and a in 0-1"}
	}
	h, sat, l, err := hslComponents(NotationHSLA, s, m[1:4])
	if err != nil {
		return Color{}, err
	}
	a, err := parseAlpha(NotationHSLA, s, m[4])
	if err != nil {
		return Color{}, err
	}
	r, g, b := hslToRGB(h, sat, l)
	return New(r, g, b, a), nil
}

func hslComponents(n Notation, input string, toks []string) (h, s, l float64, err error) {
	var v [3]float64
	for i, tok := range toks {
		iv, convErr := strconv.Atoi(tok)
		if convErr != nil {
			return 0, 0, 0, &FormatError{Notation: n, Input: input, Reason: hslFields[i].name + " is not an integer"}
		}
		if err := checkRange(n, hslFields[i].name, float64(iv), 0, hslFields[i].max); err != nil {
			return 0, 0, 0, err
		}
		v[i] = float64(iv)
	}
	return v[0], v[1], v[2], nil
}

// hslToRGB converts hue in degrees and saturation/lightness in percent to 8-bit
// channels. A hue of 360 is the same angle as 0.
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	h = math.Mod(h, 360)
	s /= 100
	l /= 100

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var rf, gf, bf float64
	switch {
	case h < 60:
		rf, gf, bf = c, x, 0
	case h < 120:
		rf, gf, bf = x, c, 0
	case h < 180:
		rf, gf, bf = 0, c, x
	case h < 240:
		rf, gf, bf = 0, x, c
	case h < 300:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}

	return toChannel(rf + m), toChannel(gf + m), toChannel(bf + m)
}

// toChannel scales a unit value to 0-255, rounding half to even and clamping
// float error at the edges.
func toChannel(v float64) uint8 {
	v = math.RoundToEven(v * 255)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
