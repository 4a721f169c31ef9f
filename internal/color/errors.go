package color

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownNotation is returned when dispatching on a notation keyword that
// is not one of the supported notations.
var ErrUnknownNotation = errors.New("unknown color notation")

// FormatError reports input that does not match a notation's grammar.
type FormatError struct {
	Notation Notation
	Input    string
	Reason   string
}

func (e *FormatError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid %s color %q", e.Notation, e.Input)
	}
	return fmt.Sprintf("invalid %s color %q: %s", e.Notation, e.Input, e.Reason)
}

// RangeError reports a syntactically valid field whose value falls outside
// [Min, Max].
type RangeError struct {
	Notation Notation
	Field    string
	Value    float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s value out of range: %s (must be between %s and %s)",
		e.Field, formatNumber(e.Value), formatNumber(e.Min), formatNumber(e.Max))
}

// ShapeError reports a channel list that does not hold exactly four values.
type ShapeError struct {
	Got int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("expected exactly 4 channels (R, G, B, A), got %d", e.Got)
}

// checkRange is the shared bounds check used by every parser.
func checkRange(n Notation, field string, v, lo, hi float64) error {
	if v < lo || v > hi {
		return &RangeError{Notation: n, Field: field, Value: v, Min: lo, Max: hi}
	}
	return nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
