// Package router holds the HTTP handlers of the encode service.
package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bloomberg/mapnik/internal/geojson"
	"github.com/bloomberg/mapnik/internal/h3grid"
	"github.com/bloomberg/mapnik/internal/observability"
	"github.com/bloomberg/mapnik/internal/service"
	"github.com/bloomberg/mapnik/internal/timing"
	"github.com/bloomberg/mapnik/internal/wkt"
)

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

// HandleEncode accepts a GeoJSON geometry body and responds with its
// WKT rendering as text/plain.
func HandleEncode(logger *slog.Logger, svc *service.Service, maxBody int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		defer func() {
			observability.ObserveHTTP(r.Method, "/encode", sw.code, time.Since(start).Seconds())
		}()

		body, err := io.ReadAll(io.LimitReader(r.Body, maxBody+1))
		if err != nil {
			http.Error(sw, "read body: "+err.Error(), http.StatusBadRequest)
			return
		}
		if int64(len(body)) > maxBody {
			http.Error(sw, fmt.Sprintf("body exceeds %d bytes", maxBody), http.StatusRequestEntityTooLarge)
			return
		}

		g, err := geojson.Decode(body)
		if err != nil {
			http.Error(sw, err.Error(), http.StatusBadRequest)
			return
		}

		res, err := svc.Encode(r.Context(), g)
		if err != nil {
			logger.Warn("encode failed", "type", g.Type.String(), "err", err)
			http.Error(sw, err.Error(), encodeStatus(err))
			return
		}

		sw.Header().Set("Content-Type", "text/plain; charset=utf-8")
		sw.Header().Set("X-Cache", res.Source)
		_, _ = io.WriteString(sw, res.WKT)
	}
}

// encodeStatus maps encode failures to HTTP statuses. All taxonomy
// errors are caller mistakes; anything unrecognized is a 500.
func encodeStatus(err error) int {
	switch {
	case errors.Is(err, wkt.ErrMalformedPoint),
		errors.Is(err, wkt.ErrEmptyGeometry),
		errors.Is(err, wkt.ErrNonFiniteCoordinate),
		errors.Is(err, wkt.ErrUnsupportedType),
		errors.Is(err, wkt.ErrUnexpectedCommand):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// HandleCell returns the H3 cell containing (lat, lng) at the given
// resolution, rendered as a WKT polygon.
func HandleCell(logger *slog.Logger, svc *service.Service, defaultRes int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		defer func() {
			observability.ObserveHTTP(r.Method, "/cell", sw.code, time.Since(start).Seconds())
		}()

		lat, err := queryFloat(r, "lat")
		if err != nil {
			http.Error(sw, err.Error(), http.StatusBadRequest)
			return
		}
		lng, err := queryFloat(r, "lng")
		if err != nil {
			http.Error(sw, err.Error(), http.StatusBadRequest)
			return
		}
		if lat < -90 || lat > 90 {
			http.Error(sw, "lat must be in [-90,90]", http.StatusBadRequest)
			return
		}
		if lng < -180 || lng > 180 {
			http.Error(sw, "lng must be in [-180,180]", http.StatusBadRequest)
			return
		}

		res := defaultRes
		if raw := strings.TrimSpace(r.URL.Query().Get("res")); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				http.Error(sw, "res: "+err.Error(), http.StatusBadRequest)
				return
			}
			res = n
		}

		cell, err := h3grid.CellForPoint(lat, lng, res)
		if err != nil {
			http.Error(sw, err.Error(), http.StatusBadRequest)
			return
		}
		poly, err := h3grid.CellPolygon(cell)
		if err != nil {
			logger.Error("cell boundary failed", "cell", cell.String(), "err", err)
			http.Error(sw, err.Error(), http.StatusInternalServerError)
			return
		}

		out, err := svc.Encode(r.Context(), poly)
		if err != nil {
			logger.Error("cell encode failed", "cell", cell.String(), "err", err)
			http.Error(sw, err.Error(), http.StatusInternalServerError)
			return
		}

		sw.Header().Set("Content-Type", "text/plain; charset=utf-8")
		sw.Header().Set("X-H3-Cell", cell.String())
		_, _ = io.WriteString(sw, out.WKT)
	}
}

// HandleStats serves the timing registry: GET for a snapshot, DELETE
// to reset.
func HandleStats(stats *timing.Stats) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		defer func() {
			observability.ObserveHTTP(r.Method, "/stats", sw.code, time.Since(start).Seconds())
		}()

		switch r.Method {
		case http.MethodDelete:
			stats.Reset()
			sw.WriteHeader(http.StatusNoContent)
		default:
			sw.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(sw).Encode(stats.Snapshot())
		}
	}
}

func queryFloat(r *http.Request, name string) (float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, fmt.Errorf("missing required parameter: %s", name)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s must be finite", name)
	}
	return f, nil
}
