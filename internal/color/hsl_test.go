package color

import (
	"errors"
	"testing"
)

func TestParseHSL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{"red", "0,100,50", Color{255, 0, 0, 255}},
		{"yellow", "60,100,50", Color{255, 255, 0, 255}},
		{"green", "120,100,50", Color{0, 255, 0, 255}},
		{"cyan", "180,100,50", Color{0, 255, 255, 255}},
		{"blue", "240,100,50", Color{0, 0, 255, 255}},
		{"magenta", "300,100,50", Color{255, 0, 255, 255}},
		{"black", "0,0,0", Color{0, 0, 0, 255}},
		{"white", "0,0,100", Color{255, 255, 255, 255}},
		{"mid gray", "0,0,50", Color{128, 128, 128, 255}},
		{"hue 360 wraps to red", "360,100,50", Color{255, 0, 0, 255}},
		{"dark orange", "30,100,25", Color{128, 64, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHSL(tt.input)
			if err != nil {
				t.Fatalf("ParseHSL(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHSL(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHSLErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string // empty means FormatError
	}{
		{"hue out of range", "361,0,0", "hue"},
		{"saturation out of range", "0,101,0", "saturation"},
		{"lightness out of range", "0,0,101", "lightness"},
		{"four digits", "1000,0,0", ""},
		{"trailing garbage", "0,100,50xyz", ""},
		{"two components", "0,100", ""},
		{"decimal", "0.5,100,50", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHSL(tt.input)
			if err == nil {
				t.Fatalf("ParseHSL(%q) succeeded, want error", tt.input)
			}
			if tt.wantField == "" {
				var fe *FormatError
				if !errors.As(err, &fe) {
					t.Errorf("ParseHSL(%q) error = %T, want *FormatError", tt.input, err)
				}
				return
			}
			var re *RangeError
			if !errors.As(err, &re) {
				t.Fatalf("ParseHSL(%q) error = %T, want *RangeError", tt.input, err)
			}
			if re.Field != tt.wantField {
				t.Errorf("RangeError.Field = %q, want %q", re.Field, tt.wantField)
			}
		})
	}
}

func TestParseHSLA(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{"half red", "0,100,50,0.5", Color{255, 0, 0, 128}},
		{"opaque", "120,100,50,1", Color{0, 255, 0, 255}},
		{"opaque decimal", "120,100,50,1.0", Color{0, 255, 0, 255}},
		{"transparent", "240,100,50,0", Color{0, 0, 255, 0}},
		{"quarter", "0,0,0,0.25", Color{0, 0, 0, 64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHSLA(tt.input)
			if err != nil {
				t.Fatalf("ParseHSLA(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHSLA(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHSLAErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
	}{
		{"hue out of range", "400,0,0,0.5", "hue"},
		{"alpha one point five", "0,0,0,1.5", ""},
		{"alpha leading dot", "0,0,0,.5", ""},
		{"missing alpha", "0,0,0", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHSLA(tt.input)
			if err == nil {
				t.Fatalf("ParseHSLA(%q) succeeded, want error", tt.input)
			}
			var re *RangeError
			isRange := errors.As(err, &re)
			if tt.wantField == "" {
				if isRange {
					t.Errorf("ParseHSLA(%q) error = %v, want *FormatError", tt.input, err)
				}
				return
			}
			if !isRange || re.Field != tt.wantField {
				t.Errorf("ParseHSLA(%q) error = %v, want RangeError on %s", tt.input, err, tt.wantField)
			}
		})
	}
}

func TestHSLToRGBSectorBoundaries(t *testing.T) {
	// Each sector starts at its lower bound; the previous sector must not claim it.
	tests := []struct {
		h       float64
		r, g, b uint8
	}{
		{59, 255, 251, 0},
		{60, 255, 255, 0},
		{61, 251, 255, 0},
		{299, 251, 0, 255},
		{300, 255, 0, 255},
		{359, 255, 0, 4},
	}
	for _, tt := range tests {
		r, g, b := hslToRGB(tt.h, 100, 50)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("hslToRGB(%v, 100, 50) = (%d, %d, %d), want (%d, %d, %d)", tt.h, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
