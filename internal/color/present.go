package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL returns the colour's hue in degrees [0, 360) and its saturation and
// lightness in percent, each rounded to the nearest integer.
func (c Color) HSL() (h, s, l int) {
	hf, sf, lf := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hsl()

	h = int(math.Round(hf)) % 360
	return h, int(math.Round(sf * 100)), int(math.Round(lf * 100))
}

// CMYK returns the colour's cyan, magenta, yellow and black percentages,
// each rounded to the nearest integer.
func (c Color) CMYK() (cy, m, y, k int) {
	r, g, b := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255
	kf := 1 - math.Max(r, math.Max(g, b))
	if kf == 1 {
		return 0, 0, 0, 100
	}
	pct := func(v float64) int {
		return int(math.Round((1 - v - kf) / (1 - kf) * 100))
	}
	return pct(r), pct(g), pct(b), int(math.Round(kf * 100))
}

// Alpha returns the alpha channel as an opacity in [0, 1], formatted with at
// most three decimals so that it parses back to the same channel value.
func (c Color) Alpha() string {
	switch c.A {
	case 0:
		return "0"
	case 0xFF:
		return "1"
	}
	s := strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64)
	return strings.TrimRight(s, "0")
}

// Code returns the colour written in the input grammar of notation n, so that
// it can be fed back to the matching parser. HSL, HSLA and CMYK are lossy.
func (c Color) Code(n Notation) string {
	switch n {
	case NotationRGB:
		return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
	case NotationRGBA:
		return fmt.Sprintf("%d,%d,%d,%s", c.R, c.G, c.B, c.Alpha())
	case NotationHSL:
		h, s, l := c.HSL()
		return fmt.Sprintf("%d,%d,%d", h, s, l)
	case NotationHSLA:
		h, s, l := c.HSL()
		return fmt.Sprintf("%d,%d,%d,%s", h, s, l, c.Alpha())
	case NotationCMYK:
		cy, m, y, k := c.CMYK()
		return fmt.Sprintf("%d,%d,%d,%d", cy, m, y, k)
	default:
		return c.Hex()
	}
}

// CSS returns the colour as a functional literal, e.g. "hsl(0,100,50)", or as
// "#RRGGBB" ("#RRGGBBAA" when translucent) for hex.
func (c Color) CSS(n Notation) string {
	if n == NotationHex || n == "" {
		if c.Opaque() {
			return "#" + c.HexRGB()
		}
		return "#" + c.Hex()
	}
	return fmt.Sprintf("%s(%s)", n, c.Code(n))
}
