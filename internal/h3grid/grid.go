// Package h3grid turns H3 cells into polygon geometries so cell
// boundaries can be exported as WKT.
package h3grid

import (
	"fmt"

	h3 "github.com/uber/h3-go/v4"

	"github.com/bloomberg/mapnik/internal/geometry"
)

// CellForPoint locates the H3 cell containing (lat, lng) in degrees.
func CellForPoint(lat, lng float64, res int) (h3.Cell, error) {
	if err := validateRes(res); err != nil {
		return 0, err
	}
	cell, err := h3.LatLngToCell(h3.LatLng{Lat: lat, Lng: lng}, res)
	if err != nil {
		return 0, fmt.Errorf("h3 cell lookup: %w", err)
	}
	return cell, nil
}

// CellPolygon returns the cell boundary as a single-ring polygon, with
// the first vertex repeated last so the ring is closed. Coordinates
// are (lng, lat) to match the x-y order of the encoder.
func CellPolygon(cell h3.Cell) (geometry.Geometry, error) {
	boundary, err := cell.Boundary()
	if err != nil {
		return geometry.Geometry{}, fmt.Errorf("h3 boundary: %w", err)
	}
	if len(boundary) == 0 {
		return geometry.Geometry{}, fmt.Errorf("h3 boundary: cell %s has no vertices", cell)
	}
	ring := make([][2]float64, 0, len(boundary)+1)
	for _, ll := range boundary {
		ring = append(ring, [2]float64{ll.Lng, ll.Lat})
	}
	ring = append(ring, ring[0])
	return geometry.NewPolygon(ring), nil
}

func validateRes(res int) error {
	if res < 0 || res > 15 {
		return fmt.Errorf("invalid H3 resolution %d (must be 0..15)", res)
	}
	return nil
}
