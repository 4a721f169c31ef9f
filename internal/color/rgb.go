package color

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const byteToken = `(0|[1-9][0-9]?|1[0-9]{2}|2[0-4][0-9]|25[0-5])`

// rgbaPattern accepts r,g,b as 0-255 without leading zeros and a as 0, 1,
// 0.<digits>, 1.<zeros> or .<digits>.
var rgbaPattern = regexp.MustCompile(
	`^` + byteToken + `,` + byteToken + `,` + byteToken + `,` +
		`(0(?:\.[0-9]*)?|1(?:\.0*)?|0?\.[0-9]+)$`,
)

// rgbaShape is the loose form of rgbaPattern. Input that fails the strict
// grammar but has this shape is reported as a range problem rather than a
// format problem.
var rgbaShape = regexp.MustCompile(`^([0-9]+),([0-9]+),([0-9]+),([0-9]*\.?[0-9]*)$`)

// ParseRGB parses "r,g,b" with each component an integer in [0, 255]. The
// result is fully opaque.
func ParseRGB(s string) (Color, error) {
	parts := strings.Split(s, ",")
	switch {
	case len(parts) > 3:
		return Color{}, &FormatError{Notation: NotationRGB, Input: s, Reason: "too many components, expected 3"}
	case len(parts) < 3:
		return Color{}, &FormatError{Notation: NotationRGB, Input: s, Reason: "too few components, expected 3"}
	}

	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Color{}, &FormatError{Notation: NotationRGB, Input: s, Reason: channelNames[i] + " is not an integer"}
		}
		if err := checkRange(NotationRGB, channelNames[i], float64(v), 0, 255); err != nil {
			return Color{}, err
		}
		ch[i] = uint8(v)
	}
	return Opaque(ch[0], ch[1], ch[2]), nil
}

// ParseRGBA parses "r,g,b,a" where a is an opacity in [0, 1].
func ParseRGBA(s string) (Color, error) {
	m := rgbaPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, rgbaMismatch(s)
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Color{}, &FormatError{Notation: NotationRGBA, Input: s, Reason: channelNames[i] + " is not an integer"}
		}
		if err := checkRange(NotationRGBA, channelNames[i], float64(v), 0, 255); err != nil {
			return Color{}, err
		}
		ch[i] = uint8(v)
	}

	a, err := parseAlpha(NotationRGBA, s, m[4])
	if err != nil {
		return Color{}, err
	}
	return New(ch[0], ch[1], ch[2], a), nil
}

// rgbaMismatch classifies input rejected by rgbaPattern.
func rgbaMismatch(s string) error {
	formatErr := &FormatError{Notation: NotationRGBA, Input: s, Reason: "expected r,g,b,a with r,g,b in 0-255 and a in 0-1"}

	m := rgbaShape.FindStringSubmatch(s)
	if m == nil {
		return formatErr
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return formatErr
		}
		if err := checkRange(NotationRGBA, channelNames[i], v, 0, 255); err != nil {
			return err
		}
	}
	a, err := strconv.ParseFloat(m[4], 64)
	if err != nil {
		return formatErr
	}
	if err := checkRange(NotationRGBA, "alpha", a, 0, 1); err != nil {
		return err
	}
	return formatErr
}

// parseAlpha validates an opacity in [0, 1] and quantises it to a channel.
func parseAlpha(n Notation, input, tok string) (uint8, error) {
	a, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &FormatError{Notation: n, Input: input, Reason: "alpha is not a number"}
	}
	if err := checkRange(n, "alpha", a, 0, 1); err != nil {
		return 0, err
	}
	return quantize(a), nil
}

// quantize maps a unit interval value onto 0-255, rounding half to even.
func quantize(v float64) uint8 {
	return uint8(math.RoundToEven(v * 255))
}
