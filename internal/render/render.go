// Package render draws solid-colour swatches and encodes them as PNG.
package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/jsvensson/swatch/internal/color"
)

// MimeType is the content type of every encoded swatch.
const MimeType = "image/png"

// DataURIPrefix turns Base64 output into a "data:" URI.
const DataURIPrefix = "data:" + MimeType + ";base64,"

// Swatch returns a size×size image filled with c.
func Swatch(c color.Color, size int) (image.Image, error) {
	if size < 1 {
		return nil, fmt.Errorf("invalid swatch size %d: must be at least 1", size)
	}
	return imaging.New(size, size, c.NRGBA()), nil
}

// PNG renders a swatch and returns the encoded bytes. The caller owns the
// returned slice.
func PNG(c color.Color, size int) ([]byte, error) {
	img, err := Swatch(c, size)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// Base64 renders a swatch and returns the PNG as standard base64 text for
// embedding in a data URI.
func Base64(c color.Color, size int) (string, error) {
	data, err := PNG(c, size)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
