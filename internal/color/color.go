package color

import (
	"fmt"
	imgcolor "image/color"
	"strings"
)

// Color is the canonical colour value every notation converts to. The R, G, B, A
// uint8 fields are the source of truth; all output formats are derived from them.
type Color struct {
	R, G, B, A uint8
}

// New returns a Color from its four channels.
func New(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Opaque returns a fully opaque Color.
func Opaque(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// Hex returns the colour as 8 uppercase hex digits, e.g. "EB6F92FF".
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// HexRGB returns the colour as 6 uppercase hex digits without alpha, e.g. "EB6F92".
func (c Color) HexRGB() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Channels returns the colour as a 4-element slice in R, G, B, A order.
func (c Color) Channels() []int {
	return []int{int(c.R), int(c.G), int(c.B), int(c.A)}
}

// NRGBA converts the colour for use with the image packages. Channels are
// straight (not premultiplied) alpha.
func (c Color) NRGBA() imgcolor.NRGBA {
	return imgcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Opaque reports whether the alpha channel is 255.
func (c Color) Opaque() bool {
	return c.A == 0xFF
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return "#" + c.Hex()
}

// Serialize converts raw channel values into the 8-digit hex form. Unlike
// Color.Hex it accepts arbitrary input, so it checks the channel count and
// each channel's range.
func Serialize(channels []int) (string, error) {
	if len(channels) != 4 {
		return "", &ShapeError{Got: len(channels)}
	}

	var b strings.Builder
	for i, v := range channels {
		if err := checkRange(NotationHex, channelNames[i], float64(v), 0, 255); err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%02X", v)
	}
	return b.String(), nil
}

var channelNames = [4]string{"red", "green", "blue", "alpha"}
