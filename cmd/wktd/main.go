// Command wktd serves WKT renderings of GeoJSON geometries and H3 cell
// boundaries over HTTP.
package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/bloomberg/mapnik/internal/cache"
	"github.com/bloomberg/mapnik/internal/cache/memory"
	"github.com/bloomberg/mapnik/internal/cache/redisstore"
	"github.com/bloomberg/mapnik/internal/config"
	"github.com/bloomberg/mapnik/internal/events"
	"github.com/bloomberg/mapnik/internal/logger"
	"github.com/bloomberg/mapnik/internal/observability"
	"github.com/bloomberg/mapnik/internal/server"
	"github.com/bloomberg/mapnik/internal/service"
	"github.com/bloomberg/mapnik/internal/timing"
)

var Version = "dev"

func main() {
	os.Exit(run())
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func run() int {
	cfg := config.FromEnv()

	zl := logger.Build(logger.Config{
		Level:     cfg.LogLevel,
		Console:   strings.ToLower(os.Getenv("LOG_CONSOLE")) == "true",
		SampleN:   envInt("LOG_SAMPLE_N", 0),
		Component: "wktd",
	}, os.Stdout)

	appLog := logger.NewSlog(&zl)

	observability.ExposeBuildInfo(Version)
	appLog.Info("starting wktd", "addr", cfg.Addr, "version", Version)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mem, err := memory.New(cfg.LRUSize)
	if err != nil {
		appLog.Error("memory cache setup failed", "err", err)
		return 1
	}

	var shared cache.Store
	if cfg.RedisEnabled {
		cli, err := redisstore.New(ctx, cfg.RedisAddr, cfg.CacheTTL)
		if err != nil {
			appLog.Error("redis setup failed", "addr", cfg.RedisAddr, "err", err)
			return 1
		}
		defer func() { _ = cli.Close() }()
		shared = cli
	}

	var sink service.EventSink
	if cfg.Events.Enabled {
		pub, err := events.NewPublisher(strings.Split(cfg.Events.Brokers, ","), cfg.Events.Topic, cfg.Events.Queue)
		if err != nil {
			// events are best effort; run without them
			appLog.Warn("event publisher setup failed", "err", err)
		} else {
			defer func() { _ = pub.Close() }()
			sink = pub
		}
	}

	stats := timing.NewStats()

	svc := service.New(appLog, service.Options{
		Memory:         mem,
		Shared:         shared,
		Stats:          stats,
		Events:         sink,
		CacheOpTimeout: cfg.CacheOpTimeout,
	})

	if err := server.Run(ctx, cfg, appLog, svc, stats); err != nil {
		appLog.Error("server exited with error", "err", err)
		return 1
	}
	appLog.Info("server stopped")
	return 0
}
