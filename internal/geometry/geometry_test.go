package geometry

import "testing"

func TestNewLineString_Commands(t *testing.T) {
	g := NewLineString([2]float64{0, 0}, [2]float64{1, 1}, [2]float64{2, 2})
	if g.Type != TypeLineString {
		t.Fatalf("type=%v", g.Type)
	}
	if len(g.Vertices) != 3 {
		t.Fatalf("vertices=%d want 3", len(g.Vertices))
	}
	if g.Vertices[0].Cmd != MoveTo {
		t.Fatalf("first vertex cmd=%v want MoveTo", g.Vertices[0].Cmd)
	}
	for i, v := range g.Vertices[1:] {
		if v.Cmd != LineTo {
			t.Fatalf("vertex %d cmd=%v want LineTo", i+1, v.Cmd)
		}
	}
}

func TestNewPolygon_RingBoundaries(t *testing.T) {
	outer := [][2]float64{{0, 0}, {4, 0}, {4, 4}, {0, 0}}
	hole := [][2]float64{{1, 1}, {2, 1}, {2, 2}, {1, 1}}
	g := NewPolygon(outer, hole)

	if got := g.Rings(); got != 2 {
		t.Fatalf("Rings()=%d want 2", got)
	}
	if len(g.Vertices) != 8 {
		t.Fatalf("vertices=%d want 8", len(g.Vertices))
	}
	if g.Vertices[0].Cmd != MoveTo || g.Vertices[4].Cmd != MoveTo {
		t.Fatalf("ring starts not tagged MoveTo: %v %v", g.Vertices[0].Cmd, g.Vertices[4].Cmd)
	}
}

func TestMulti_PartsAndCounts(t *testing.T) {
	g := NewMultiPolygon(
		[][][2]float64{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}},
		[][][2]float64{{{5, 5}, {6, 5}, {6, 6}, {5, 5}}},
	)
	if !g.Type.Multi() {
		t.Fatalf("Multi()=false for %v", g.Type)
	}
	if g.Type.Elem() != TypePolygon {
		t.Fatalf("Elem()=%v want Polygon", g.Type.Elem())
	}
	if len(g.Parts) != 2 {
		t.Fatalf("parts=%d want 2", len(g.Parts))
	}
	if got := g.VertexCount(); got != 8 {
		t.Fatalf("VertexCount()=%d want 8", got)
	}
}

func TestFingerprint_StableAndDiscriminating(t *testing.T) {
	a := NewPoint(1.5, -2.25)
	b := NewPoint(1.5, -2.25)
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatalf("identical geometries hash differently")
	}

	c := NewPoint(1.5, -2.26)
	if a.Fingerprint() == c.Fingerprint() {
		t.Fatalf("different coordinates hash identically")
	}

	// same coordinates, different type tag
	line := NewLineString([2]float64{1.5, -2.25})
	if a.Fingerprint() == line.Fingerprint() {
		t.Fatalf("type tag not part of the fingerprint")
	}
}

func TestFingerprint_CommandSensitive(t *testing.T) {
	one := Geometry{Type: TypePolygon, Vertices: []Vertex{
		{X: 0, Y: 0, Cmd: MoveTo},
		{X: 1, Y: 1, Cmd: LineTo},
		{X: 2, Y: 2, Cmd: LineTo},
	}}
	two := Geometry{Type: TypePolygon, Vertices: []Vertex{
		{X: 0, Y: 0, Cmd: MoveTo},
		{X: 1, Y: 1, Cmd: LineTo},
		{X: 2, Y: 2, Cmd: MoveTo}, // second ring
	}}
	if one.Fingerprint() == two.Fingerprint() {
		t.Fatalf("ring structure not part of the fingerprint")
	}
}
