// Package geometry holds the vertex-sequence geometry model consumed by
// the WKT encoder. A geometry is a type tag plus an ordered run of
// vertices, each vertex tagged with the path command that produced it;
// ring boundaries inside polygons are carried by MoveTo commands, not
// by nested slices.
package geometry

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Command tags a vertex with its role in the path.
type Command uint8

const (
	// MoveTo starts a new subpath (a ring, or the first vertex of a line).
	MoveTo Command = iota
	// LineTo continues the current subpath.
	LineTo
	// Close marks an explicit subpath closure. The encoder rejects it;
	// closed rings repeat their first coordinate instead.
	Close
)

func (c Command) String() string {
	switch c {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case Close:
		return "Close"
	}
	return "Unknown"
}

// Type is the closed set of geometry kinds.
type Type uint8

const (
	TypeUnknown Type = iota
	TypePoint
	TypeLineString
	TypePolygon
	TypeMultiPoint
	TypeMultiLineString
	TypeMultiPolygon
)

func (t Type) String() string {
	switch t {
	case TypePoint:
		return "Point"
	case TypeLineString:
		return "LineString"
	case TypePolygon:
		return "Polygon"
	case TypeMultiPoint:
		return "MultiPoint"
	case TypeMultiLineString:
		return "MultiLineString"
	case TypeMultiPolygon:
		return "MultiPolygon"
	}
	return "Unknown"
}

// Multi reports whether t is a collection kind carried in Parts.
func (t Type) Multi() bool {
	switch t {
	case TypeMultiPoint, TypeMultiLineString, TypeMultiPolygon:
		return true
	}
	return false
}

// Elem returns the component kind of a Multi type, or TypeUnknown.
func (t Type) Elem() Type {
	switch t {
	case TypeMultiPoint:
		return TypePoint
	case TypeMultiLineString:
		return TypeLineString
	case TypeMultiPolygon:
		return TypePolygon
	}
	return TypeUnknown
}

type Vertex struct {
	X, Y float64
	Cmd  Command
}

// Geometry is read-only input to the encoder. Single kinds carry
// Vertices; Multi kinds carry their components in Parts and leave
// Vertices empty.
type Geometry struct {
	Type     Type
	Vertices []Vertex
	Parts    []Geometry
}

func NewPoint(x, y float64) Geometry {
	return Geometry{
		Type:     TypePoint,
		Vertices: []Vertex{{X: x, Y: y, Cmd: MoveTo}},
	}
}

// NewLineString builds a line from coordinate pairs. The first vertex
// gets MoveTo, the rest LineTo.
func NewLineString(coords ...[2]float64) Geometry {
	g := Geometry{Type: TypeLineString, Vertices: pathVertices(nil, coords)}
	return g
}

// NewPolygon builds a polygon from one or more rings. Each ring opens
// with a MoveTo vertex. Callers supply closed rings (first coordinate
// repeated last); closure is trusted, not enforced.
func NewPolygon(rings ...[][2]float64) Geometry {
	g := Geometry{Type: TypePolygon}
	for _, ring := range rings {
		g.Vertices = pathVertices(g.Vertices, ring)
	}
	return g
}

func NewMultiPoint(coords ...[2]float64) Geometry {
	g := Geometry{Type: TypeMultiPoint, Parts: make([]Geometry, 0, len(coords))}
	for _, c := range coords {
		g.Parts = append(g.Parts, NewPoint(c[0], c[1]))
	}
	return g
}

func NewMultiLineString(lines ...[][2]float64) Geometry {
	g := Geometry{Type: TypeMultiLineString, Parts: make([]Geometry, 0, len(lines))}
	for _, l := range lines {
		g.Parts = append(g.Parts, NewLineString(l...))
	}
	return g
}

func NewMultiPolygon(polys ...[][][2]float64) Geometry {
	g := Geometry{Type: TypeMultiPolygon, Parts: make([]Geometry, 0, len(polys))}
	for _, p := range polys {
		g.Parts = append(g.Parts, NewPolygon(p...))
	}
	return g
}

func pathVertices(dst []Vertex, coords [][2]float64) []Vertex {
	for i, c := range coords {
		cmd := LineTo
		if i == 0 {
			cmd = MoveTo
		}
		dst = append(dst, Vertex{X: c[0], Y: c[1], Cmd: cmd})
	}
	return dst
}

// Rings counts MoveTo vertices, which is the ring count for polygons.
func (g Geometry) Rings() int {
	n := 0
	for _, v := range g.Vertices {
		if v.Cmd == MoveTo {
			n++
		}
	}
	return n
}

// VertexCount returns the total number of vertices including parts.
func (g Geometry) VertexCount() int {
	n := len(g.Vertices)
	for _, p := range g.Parts {
		n += p.VertexCount()
	}
	return n
}

// Fingerprint returns a stable content hash over the type tag, path
// commands and coordinate bit patterns. Identical geometries hash
// identically across processes, so the hash is usable as a shared
// cache key.
func (g Geometry) Fingerprint() uint64 {
	d := xxhash.New()
	hashInto(d, g)
	return d.Sum64()
}

func hashInto(d *xxhash.Digest, g Geometry) {
	var buf [17]byte
	buf[0] = byte(g.Type)
	_, _ = d.Write(buf[:1])
	for _, v := range g.Vertices {
		buf[0] = byte(v.Cmd)
		binary.LittleEndian.PutUint64(buf[1:9], math.Float64bits(v.X))
		binary.LittleEndian.PutUint64(buf[9:17], math.Float64bits(v.Y))
		_, _ = d.Write(buf[:])
	}
	for _, p := range g.Parts {
		hashInto(d, p)
	}
}
