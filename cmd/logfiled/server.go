package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/philipp01105/logfile"
	"github.com/philipp01105/logfile/bridge"
	"github.com/philipp01105/logfile/core"
)

// logAPI logs through the backend directly, counting its calls.
type logAPI struct {
	target logfile.Target
	count  atomic.Int64
}

func (a *logAPI) get(w http.ResponseWriter, r *http.Request) {
	n := a.count.Add(1)
	_ = a.target.New(core.WarnLevel).
		Msgf("GET api/log %d time(s)", n).
		Fields(core.String("request_id", middleware.GetReqID(r.Context()))).
		Log()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "Logged %d time(s).", n)
}

func newRouter(target logfile.Target, access *slog.Logger) http.Handler {
	api := &logAPI{target: target}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(accessLog(access))

	r.Route("/api", func(r chi.Router) {
		r.Get("/log", api.get)
	})
	return r
}

// accessLog logs one entry per request through slog.
func accessLog(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			logger.LogAttrs(r.Context(), slog.LevelDebug, "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())))
		})
	}
}

// runTicker logs through the bridge on every tick until ctx is done.
func runTicker(ctx context.Context, logger bridge.Logger, interval time.Duration) {
	if interval <= 0 {
		interval = defaultInterval
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for i := 1; ; i++ {
		if logger.IsEnabled(bridge.Information) {
			logger.Log(bridge.Information, bridge.EventID{ID: 1, Name: "Tick"},
				fmt.Sprintf("Logged %d time(s) via the bridge.", i), nil, bridge.DefaultFormatter)
		}
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}

func slogFor(l bridge.Logger) *slog.Logger {
	return slog.New(bridge.NewSlogHandler(l))
}
