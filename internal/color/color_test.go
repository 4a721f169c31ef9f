package color

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"six digits", "eb6f92", Color{235, 111, 146, 255}, false},
		{"with hash", "#eb6f92", Color{235, 111, 146, 255}, false},
		{"eight digits", "eb6f9280", Color{235, 111, 146, 128}, false},
		{"uppercase", "AABBCC", Color{170, 187, 204, 255}, false},
		{"mixed case", "aAbBcCdD", Color{170, 187, 204, 221}, false},
		{"black", "000000", Color{0, 0, 0, 255}, false},
		{"transparent", "00000000", Color{0, 0, 0, 0}, false},
		{"too short", "fff", Color{}, true},
		{"seven digits", "abcdef0", Color{}, true},
		{"too long", "aabbccddee", Color{}, true},
		{"invalid chars", "zzzzzz", Color{}, true},
		{"empty", "", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHexFormatError(t *testing.T) {
	_, err := ParseHex("12345")
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("ParseHex error = %T, want *FormatError", err)
	}
	if fe.Input != "12345" {
		t.Errorf("FormatError.Input = %q, want %q", fe.Input, "12345")
	}
	if fe.Notation != NotationHex {
		t.Errorf("FormatError.Notation = %q, want %q", fe.Notation, NotationHex)
	}
}

func TestHexRoundTripSixDigits(t *testing.T) {
	inputs := []string{"000000", "FFFFFF", "eb6f92", "0A0B0C", "123abc", "7f7f7f"}
	for _, in := range inputs {
		c, err := ParseHex(in)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", in, err)
		}
		want := strings.ToUpper(in) + "FF"
		if got := c.Hex(); got != want {
			t.Errorf("ParseHex(%q).Hex() = %q, want %q", in, got, want)
		}
	}
}

func TestHexRoundTripEightDigits(t *testing.T) {
	for i := 0; i < 256; i += 17 {
		in := fmt.Sprintf("%02x%02x%02x%02x", i, 255-i, i/2, 255-i/3)
		c, err := ParseHex(in)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", in, err)
		}
		if got, want := c.Hex(), strings.ToUpper(in); got != want {
			t.Errorf("ParseHex(%q).Hex() = %q, want %q", in, got, want)
		}
	}
}

func TestColorHexZeroPadding(t *testing.T) {
	c := Color{0, 5, 10, 15}
	want := "00050A0F"
	if got := c.Hex(); got != want {
		t.Errorf("Color.Hex() = %q, want %q", got, want)
	}
	if got := c.HexRGB(); got != "00050A" {
		t.Errorf("Color.HexRGB() = %q, want %q", got, "00050A")
	}
}

func TestSerialize(t *testing.T) {
	tests := []struct {
		name      string
		channels  []int
		want      string
		wantShape bool
		wantRange bool
	}{
		{"opaque red", []int{255, 0, 0, 255}, "FF0000FF", false, false},
		{"padding", []int{1, 2, 3, 4}, "01020304", false, false},
		{"three channels", []int{1, 2, 3}, "", true, false},
		{"five channels", []int{1, 2, 3, 4, 5}, "", true, false},
		{"nil", nil, "", true, false},
		{"channel 256", []int{256, 0, 0, 0}, "", false, true},
		{"negative alpha", []int{0, 0, 0, -1}, "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Serialize(tt.channels)
			var se *ShapeError
			var re *RangeError
			if errors.As(err, &se) != tt.wantShape {
				t.Errorf("Serialize(%v) error = %v, want ShapeError %v", tt.channels, err, tt.wantShape)
			}
			if errors.As(err, &re) != tt.wantRange {
				t.Errorf("Serialize(%v) error = %v, want RangeError %v", tt.channels, err, tt.wantRange)
			}
			if got != tt.want {
				t.Errorf("Serialize(%v) = %q, want %q", tt.channels, got, tt.want)
			}
		})
	}
}

func TestSerializeMatchesHex(t *testing.T) {
	c := Color{235, 111, 146, 64}
	got, err := Serialize(c.Channels())
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if got != c.Hex() {
		t.Errorf("Serialize(%v) = %q, want %q", c.Channels(), got, c.Hex())
	}
}

func TestRandomHex(t *testing.T) {
	for i := 0; i < 10000; i++ {
		s := RandomHex()
		if len(s) != 6 {
			t.Fatalf("RandomHex() = %q, want 6 characters", s)
		}
		for _, r := range s {
			if !strings.ContainsRune(hexDigits, r) {
				t.Fatalf("RandomHex() = %q contains invalid character %q", s, r)
			}
		}
	}
}

func TestRandomIsOpaque(t *testing.T) {
	for i := 0; i < 100; i++ {
		if c := Random(); c.A != 255 {
			t.Fatalf("Random() = %v, want alpha 255", c)
		}
	}
}

func TestColorNRGBA(t *testing.T) {
	c := Color{10, 20, 30, 40}
	got := c.NRGBA()
	if got.R != 10 || got.G != 20 || got.B != 30 || got.A != 40 {
		t.Errorf("NRGBA() = %v, want {10 20 30 40}", got)
	}
}

func TestColorString(t *testing.T) {
	if got := Opaque(255, 0, 0).String(); got != "#FF0000FF" {
		t.Errorf("String() = %q, want %q", got, "#FF0000FF")
	}
}
