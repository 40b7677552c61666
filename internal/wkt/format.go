package wkt

import (
	"fmt"
	"math"
	"strconv"
)

// Coordinates are rendered with exactly this many fractional digits.
// Fixed policy, matching common WKT interchange precision; not
// configurable.
const precision = 6

// AppendCoord appends v in fixed-point decimal notation with exactly 6
// fractional digits. The output is locale independent: '.' separator,
// no grouping, no exponent. Rounding is strconv's correct rounding
// (round half to even); a negative value rounding to zero keeps its
// sign, so -0.0000004 renders as "-0.000000".
func AppendCoord(dst []byte, v float64) ([]byte, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return dst, fmt.Errorf("%w: %v", ErrNonFiniteCoordinate, v)
	}
	return strconv.AppendFloat(dst, v, 'f', precision, 64), nil
}

// FormatCoord renders a single coordinate value as text.
func FormatCoord(v float64) (string, error) {
	b, err := AppendCoord(nil, v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// appendXY appends "x y" for one vertex.
func appendXY(dst []byte, x, y float64) ([]byte, error) {
	dst, err := AppendCoord(dst, x)
	if err != nil {
		return dst, err
	}
	dst = append(dst, ' ')
	return AppendCoord(dst, y)
}
