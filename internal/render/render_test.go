package render

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"testing"

	"github.com/jsvensson/swatch/internal/color"
)

func TestPNG(t *testing.T) {
	tests := []struct {
		name  string
		color color.Color
		size  int
	}{
		{"single pixel red", color.Opaque(255, 0, 0), 1},
		{"translucent", color.New(10, 20, 30, 128), 4},
		{"transparent", color.New(0, 0, 0, 0), 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := PNG(tt.color, tt.size)
			if err != nil {
				t.Fatalf("PNG() error = %v", err)
			}

			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("png.Decode() error = %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tt.size || b.Dy() != tt.size {
				t.Errorf("bounds = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.size, tt.size)
			}

			for _, p := range [][2]int{{0, 0}, {tt.size - 1, tt.size - 1}} {
				got := color.New(rgba8(img.At(p[0], p[1]).RGBA()))
				if tt.color.A == 0 {
					if got.A != 0 {
						t.Errorf("pixel %v alpha = %d, want 0", p, got.A)
					}
					continue
				}
				if got != unpremultiplied(tt.color) {
					t.Errorf("pixel %v = %v, want %v", p, got, tt.color)
				}
			}
		})
	}
}

func TestPNGInvalidSize(t *testing.T) {
	if _, err := PNG(color.Opaque(0, 0, 0), 0); err == nil {
		t.Error("PNG(size 0) succeeded, want error")
	}
}

func TestBase64(t *testing.T) {
	c := color.Opaque(0, 128, 255)
	raw, err := PNG(c, 2)
	if err != nil {
		t.Fatalf("PNG() error = %v", err)
	}
	got, err := Base64(c, 2)
	if err != nil {
		t.Fatalf("Base64() error = %v", err)
	}
	if want := base64.StdEncoding.EncodeToString(raw); got != want {
		t.Errorf("Base64() does not match encoded PNG bytes")
	}
}

func TestDataURIPrefix(t *testing.T) {
	if DataURIPrefix != "data:image/png;base64," {
		t.Errorf("DataURIPrefix = %q", DataURIPrefix)
	}
}

// rgba8 converts 16-bit premultiplied channels back to straight 8-bit values.
func rgba8(r, g, b, a uint32) (uint8, uint8, uint8, uint8) {
	if a == 0 {
		return 0, 0, 0, 0
	}
	return uint8(r * 0xffff / a >> 8), uint8(g * 0xffff / a >> 8), uint8(b * 0xffff / a >> 8), uint8(a >> 8)
}

// unpremultiplied is the identity for opaque colours; translucent colours are
// compared after the same premultiply/unpremultiply trip the decoder applies.
func unpremultiplied(c color.Color) color.Color {
	r, g, b, a := c.NRGBA().RGBA()
	return color.New(rgba8(r, g, b, a))
}
