// Package geojson decodes GeoJSON geometry objects into the internal
// vertex-sequence model. Only geometries are handled, not Features or
// FeatureCollections.
package geojson

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bloomberg/mapnik/internal/geometry"
)

// Decode parses a single GeoJSON geometry. Coordinates are [x, y]
// (lon, lat for EPSG:4326); extra ordinates are rejected.
func Decode(data []byte) (geometry.Geometry, error) {
	var hdr struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
	}
	if err := json.Unmarshal(data, &hdr); err != nil {
		return geometry.Geometry{}, fmt.Errorf("parse geojson: %w", err)
	}

	switch strings.TrimSpace(hdr.Type) {
	case "Point":
		var c []float64
		if err := json.Unmarshal(hdr.Coordinates, &c); err != nil {
			return geometry.Geometry{}, fmt.Errorf("parse point coords: %w", err)
		}
		xy, err := toXY(c)
		if err != nil {
			return geometry.Geometry{}, err
		}
		return geometry.NewPoint(xy[0], xy[1]), nil

	case "LineString":
		var cs [][]float64
		if err := json.Unmarshal(hdr.Coordinates, &cs); err != nil {
			return geometry.Geometry{}, fmt.Errorf("parse linestring coords: %w", err)
		}
		line, err := toLine(cs)
		if err != nil {
			return geometry.Geometry{}, err
		}
		return geometry.NewLineString(line...), nil

	case "Polygon":
		var rings [][][]float64
		if err := json.Unmarshal(hdr.Coordinates, &rings); err != nil {
			return geometry.Geometry{}, fmt.Errorf("parse polygon coords: %w", err)
		}
		rs, err := toRings(rings)
		if err != nil {
			return geometry.Geometry{}, err
		}
		return geometry.NewPolygon(rs...), nil

	case "MultiPoint":
		var cs [][]float64
		if err := json.Unmarshal(hdr.Coordinates, &cs); err != nil {
			return geometry.Geometry{}, fmt.Errorf("parse multipoint coords: %w", err)
		}
		pts, err := toLine(cs)
		if err != nil {
			return geometry.Geometry{}, err
		}
		return geometry.NewMultiPoint(pts...), nil

	case "MultiLineString":
		var ls [][][]float64
		if err := json.Unmarshal(hdr.Coordinates, &ls); err != nil {
			return geometry.Geometry{}, fmt.Errorf("parse multilinestring coords: %w", err)
		}
		lines, err := toRings(ls)
		if err != nil {
			return geometry.Geometry{}, err
		}
		return geometry.NewMultiLineString(lines...), nil

	case "MultiPolygon":
		var polys [][][][]float64
		if err := json.Unmarshal(hdr.Coordinates, &polys); err != nil {
			return geometry.Geometry{}, fmt.Errorf("parse multipolygon coords: %w", err)
		}
		out := make([][][][2]float64, 0, len(polys))
		for pi, rings := range polys {
			rs, err := toRings(rings)
			if err != nil {
				return geometry.Geometry{}, fmt.Errorf("polygon %d: %w", pi, err)
			}
			out = append(out, rs)
		}
		return geometry.NewMultiPolygon(out...), nil

	default:
		return geometry.Geometry{}, fmt.Errorf("unsupported GeoJSON type %q", hdr.Type)
	}
}

func toXY(c []float64) ([2]float64, error) {
	if len(c) != 2 {
		return [2]float64{}, errors.New("coordinate must be [x,y]")
	}
	return [2]float64{c[0], c[1]}, nil
}

func toLine(cs [][]float64) ([][2]float64, error) {
	out := make([][2]float64, 0, len(cs))
	for i, c := range cs {
		xy, err := toXY(c)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, err)
		}
		out = append(out, xy)
	}
	return out, nil
}

func toRings(rings [][][]float64) ([][][2]float64, error) {
	out := make([][][2]float64, 0, len(rings))
	for ri, ring := range rings {
		r, err := toLine(ring)
		if err != nil {
			return nil, fmt.Errorf("ring %d: %w", ri, err)
		}
		out = append(out, r)
	}
	return out, nil
}
