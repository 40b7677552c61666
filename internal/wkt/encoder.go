// Package wkt encodes vertex-sequence geometries as Well-Known Text.
//
// The encoder is one-directional (no parser), pure, and allocates only
// its output buffer, so concurrent use on independent geometries needs
// no coordination. Malformed input fails eagerly: no partial WKT ever
// reaches the caller.
package wkt

import (
	"errors"
	"fmt"
	"io"

	"github.com/bloomberg/mapnik/internal/geometry"
)

var (
	// ErrMalformedPoint reports a Point without exactly one vertex.
	ErrMalformedPoint = errors.New("wkt: point must have exactly one vertex")
	// ErrEmptyGeometry reports a geometry with no vertices or parts.
	ErrEmptyGeometry = errors.New("wkt: empty geometry")
	// ErrNonFiniteCoordinate reports a NaN or infinite ordinate, which
	// has no fixed-point rendering.
	ErrNonFiniteCoordinate = errors.New("wkt: non-finite coordinate")
	// ErrUnsupportedType reports a geometry type the encoder does not
	// recognize.
	ErrUnsupportedType = errors.New("wkt: unsupported geometry type")
	// ErrUnexpectedCommand reports a path command the encoder cannot
	// place, such as a Close vertex or a polygon that does not open
	// with MoveTo.
	ErrUnexpectedCommand = errors.New("wkt: unexpected path command")
)

// Encode renders g as WKT text, e.g. Point(1.500000 -2.250000).
func Encode(g geometry.Geometry) (string, error) {
	b, err := Append(nil, g)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// EncodeTo writes the WKT text for g to w. The text is buffered first;
// nothing is written on failure.
func EncodeTo(w io.Writer, g geometry.Geometry) error {
	b, err := Append(nil, g)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Append appends the WKT text for g to dst. On error dst is returned
// unchanged.
func Append(dst []byte, g geometry.Geometry) ([]byte, error) {
	out, err := appendGeometry(dst, g)
	if err != nil {
		return dst, err
	}
	return out, nil
}

func appendGeometry(dst []byte, g geometry.Geometry) ([]byte, error) {
	switch g.Type {
	case geometry.TypePoint:
		dst = append(dst, "Point("...)
		dst, err := appendPointBody(dst, g.Vertices)
		if err != nil {
			return dst, err
		}
		return append(dst, ')'), nil

	case geometry.TypeLineString:
		dst = append(dst, "LineString("...)
		dst, err := appendLineBody(dst, g.Vertices)
		if err != nil {
			return dst, err
		}
		return append(dst, ')'), nil

	case geometry.TypePolygon:
		dst = append(dst, "Polygon("...)
		dst, err := appendPolygonBody(dst, g.Vertices)
		if err != nil {
			return dst, err
		}
		return append(dst, ')'), nil

	case geometry.TypeMultiPoint, geometry.TypeMultiLineString, geometry.TypeMultiPolygon:
		return appendMulti(dst, g)

	default:
		return dst, fmt.Errorf("%w: %s", ErrUnsupportedType, g.Type)
	}
}

func appendPointBody(dst []byte, vs []geometry.Vertex) ([]byte, error) {
	if len(vs) != 1 {
		return dst, fmt.Errorf("%w: got %d", ErrMalformedPoint, len(vs))
	}
	if vs[0].Cmd == geometry.Close {
		return dst, fmt.Errorf("%w: Close at vertex 0", ErrUnexpectedCommand)
	}
	return appendXY(dst, vs[0].X, vs[0].Y)
}

func appendLineBody(dst []byte, vs []geometry.Vertex) ([]byte, error) {
	if len(vs) == 0 {
		return dst, fmt.Errorf("%w: linestring has no vertices", ErrEmptyGeometry)
	}
	var err error
	for i, v := range vs {
		if v.Cmd == geometry.Close {
			return dst, fmt.Errorf("%w: Close at vertex %d", ErrUnexpectedCommand, i)
		}
		if i > 0 {
			dst = append(dst, ',')
		}
		dst, err = appendXY(dst, v.X, v.Y)
		if err != nil {
			return dst, err
		}
	}
	return dst, nil
}

// appendPolygonBody emits the ring list of a polygon, without the
// outer Polygon( ) wrapper. Ring boundaries come from path commands
// alone: every MoveTo vertex opens a ring. The walk is a two-state
// machine, "awaiting first ring" then "in ring"; ring separators are
// decided by how many MoveTo vertices have been seen, and the final
// ring's closing paren is appended after the last vertex.
func appendPolygonBody(dst []byte, vs []geometry.Vertex) ([]byte, error) {
	if len(vs) == 0 {
		return dst, fmt.Errorf("%w: polygon has no vertices", ErrEmptyGeometry)
	}
	rings := 0
	var err error
	for i, v := range vs {
		switch v.Cmd {
		case geometry.MoveTo:
			rings++
			if rings == 1 {
				dst = append(dst, '(')
			} else {
				dst = append(dst, "),("...)
			}
		case geometry.LineTo:
			if rings == 0 {
				return dst, fmt.Errorf("%w: polygon does not start with MoveTo", ErrUnexpectedCommand)
			}
			dst = append(dst, ',')
		default:
			return dst, fmt.Errorf("%w: %s at vertex %d", ErrUnexpectedCommand, v.Cmd, i)
		}
		dst, err = appendXY(dst, v.X, v.Y)
		if err != nil {
			return dst, err
		}
	}
	return append(dst, ')'), nil
}

// appendMulti wraps component bodies in Multi<Kind>( ... ), components
// comma-separated, reusing the element body logic. MultiPoint elements
// are bare coordinates; line and polygon elements keep their own
// parentheses.
func appendMulti(dst []byte, g geometry.Geometry) ([]byte, error) {
	if len(g.Parts) == 0 {
		return dst, fmt.Errorf("%w: %s has no parts", ErrEmptyGeometry, g.Type)
	}
	dst = append(dst, g.Type.String()...)
	dst = append(dst, '(')
	elem := g.Type.Elem()
	var err error
	for i, part := range g.Parts {
		if part.Type != elem {
			return dst, fmt.Errorf("%w: %s part inside %s", ErrUnsupportedType, part.Type, g.Type)
		}
		if i > 0 {
			dst = append(dst, ',')
		}
		switch elem {
		case geometry.TypePoint:
			dst, err = appendPointBody(dst, part.Vertices)
		case geometry.TypeLineString:
			dst = append(dst, '(')
			if dst, err = appendLineBody(dst, part.Vertices); err == nil {
				dst = append(dst, ')')
			}
		case geometry.TypePolygon:
			dst = append(dst, '(')
			if dst, err = appendPolygonBody(dst, part.Vertices); err == nil {
				dst = append(dst, ')')
			}
		}
		if err != nil {
			return dst, err
		}
	}
	return append(dst, ')'), nil
}
