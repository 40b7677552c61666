// Package service runs the encode pipeline: cache-key the geometry,
// consult the memory and Redis tiers, encode on a miss, then record
// timing and publish a best-effort event. Only encode errors reach the
// caller; cache and event failures are logged and swallowed.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/bloomberg/mapnik/internal/cache"
	"github.com/bloomberg/mapnik/internal/cache/keys"
	"github.com/bloomberg/mapnik/internal/events"
	"github.com/bloomberg/mapnik/internal/geometry"
	"github.com/bloomberg/mapnik/internal/observability"
	"github.com/bloomberg/mapnik/internal/timing"
	"github.com/bloomberg/mapnik/internal/wkt"
)

// EventSink is the optional encode-event publisher.
type EventSink interface {
	Publish(ev events.Event)
}

type Options struct {
	Memory         cache.Store // optional
	Shared         cache.Store // optional, e.g. Redis
	Stats          timing.Recorder
	Events         EventSink // optional
	CacheOpTimeout time.Duration
}

type Service struct {
	log    *slog.Logger
	mem    cache.Store
	shared cache.Store
	stats  timing.Recorder
	events EventSink
	opTO   time.Duration
}

func New(log *slog.Logger, opts Options) *Service {
	if opts.CacheOpTimeout <= 0 {
		opts.CacheOpTimeout = 250 * time.Millisecond
	}
	return &Service{
		log:    log,
		mem:    opts.Memory,
		shared: opts.Shared,
		stats:  opts.Stats,
		events: opts.Events,
		opTO:   opts.CacheOpTimeout,
	}
}

// Result carries the encoded text and where it came from.
type Result struct {
	WKT      string
	CacheHit bool
	Source   string // "memory", "shared" or "encode"
}

// Encode returns the WKT text for g, serving from cache when possible.
func (s *Service) Encode(ctx context.Context, g geometry.Geometry) (Result, error) {
	key := keys.Key(g)

	if s.mem != nil {
		if text, ok := s.mem.Get(ctx, key); ok {
			observability.IncCacheResult("hit_memory")
			s.publish(g, text, true, 0, 0)
			return Result{WKT: text, CacheHit: true, Source: "memory"}, nil
		}
	}

	if s.shared != nil {
		opCtx, cancel := context.WithTimeout(ctx, s.opTO)
		text, ok := s.shared.Get(opCtx, key)
		cancel()
		if ok {
			observability.IncCacheResult("hit_redis")
			if s.mem != nil {
				s.mem.Set(ctx, key, text)
			}
			s.publish(g, text, true, 0, 0)
			return Result{WKT: text, CacheHit: true, Source: "shared"}, nil
		}
	}
	observability.IncCacheResult("miss")

	tm := timing.StartTimer()
	text, err := wkt.Encode(g)
	cpuMS, wallMS := tm.Stop()
	observability.ObserveEncode(g.Type.String(), err, wallMS/1000)
	timing.Report(s.stats, "wkt_encode", cpuMS, wallMS)
	if err != nil {
		return Result{}, err
	}

	if s.mem != nil {
		s.mem.Set(ctx, key, text)
	}
	if s.shared != nil {
		opCtx, cancel := context.WithTimeout(ctx, s.opTO)
		s.shared.Set(opCtx, key, text)
		cancel()
	}

	s.publish(g, text, false, cpuMS, wallMS)
	return Result{WKT: text, CacheHit: false, Source: "encode"}, nil
}

func (s *Service) publish(g geometry.Geometry, text string, hit bool, cpuMS, wallMS float64) {
	if s.events == nil {
		return
	}
	ev := events.Event{
		Type:       g.Type.String(),
		Vertices:   g.VertexCount(),
		Bytes:      len(text),
		CacheHit:   hit,
		CPUMillis:  cpuMS,
		WallMillis: wallMS,
		TS:         time.Now().UTC(),
	}
	if g.Type == geometry.TypePolygon {
		ev.Rings = g.Rings()
	}
	s.events.Publish(ev)
}
