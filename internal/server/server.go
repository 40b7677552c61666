package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bloomberg/mapnik/internal/config"
	"github.com/bloomberg/mapnik/internal/health"
	"github.com/bloomberg/mapnik/internal/middleware"
	"github.com/bloomberg/mapnik/internal/router"
	"github.com/bloomberg/mapnik/internal/service"
	"github.com/bloomberg/mapnik/internal/timing"
)

// sets up http and starts serving
func Run(ctx context.Context, cfg config.Config, logger *slog.Logger, svc *service.Service, stats *timing.Stats) error {
	r := chi.NewRouter()
	r.Use(middleware.Recover())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS())

	r.Get("/healthz", health.Liveness())
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Post("/encode", router.HandleEncode(logger, svc, cfg.MaxBodyBytes))
	r.Get("/cell", router.HandleCell(logger, svc, cfg.H3Res))
	r.Get("/stats", router.HandleStats(stats))
	r.Delete("/stats", router.HandleStats(stats))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http listen", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		return err
	}
}
