package h3grid

import (
	"testing"

	"github.com/bloomberg/mapnik/internal/geometry"
)

func TestCellForPoint_ResValidation(t *testing.T) {
	if _, err := CellForPoint(59.3, 18.0, -1); err == nil {
		t.Fatalf("expected error for res=-1")
	}
	if _, err := CellForPoint(59.3, 18.0, 16); err == nil {
		t.Fatalf("expected error for res=16")
	}
}

func TestCellPolygon_ClosedSingleRing(t *testing.T) {
	cell, err := CellForPoint(59.3293, 18.0686, 8)
	if err != nil {
		t.Fatalf("CellForPoint: %v", err)
	}

	poly, err := CellPolygon(cell)
	if err != nil {
		t.Fatalf("CellPolygon: %v", err)
	}
	if poly.Type != geometry.TypePolygon {
		t.Fatalf("type=%v", poly.Type)
	}
	if got := poly.Rings(); got != 1 {
		t.Fatalf("rings=%d want 1", got)
	}
	// hexagon boundary plus closing vertex
	if n := len(poly.Vertices); n < 7 {
		t.Fatalf("vertices=%d want >=7", n)
	}
	first := poly.Vertices[0]
	last := poly.Vertices[len(poly.Vertices)-1]
	if first.X != last.X || first.Y != last.Y {
		t.Fatalf("ring not closed: first=(%v,%v) last=(%v,%v)", first.X, first.Y, last.X, last.Y)
	}
}

func TestCellForPoint_Deterministic(t *testing.T) {
	a, err := CellForPoint(40.7128, -74.0060, 9)
	if err != nil {
		t.Fatalf("CellForPoint: %v", err)
	}
	b, err := CellForPoint(40.7128, -74.0060, 9)
	if err != nil {
		t.Fatalf("CellForPoint: %v", err)
	}
	if a != b {
		t.Fatalf("same point mapped to different cells: %s vs %s", a, b)
	}
}
