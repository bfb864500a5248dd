// Package http provides the HTTP router and middleware for the console API.
package http

// File: internal/http/router.go
// Purpose: Construct mux and apply CORS + request logging middleware.

import (
	"log/slog"
	"net/http"
	"time"
)

// NewRouter builds an HTTP handler with CORS and request logging. The
// dashboard is served from a different origin, so CORS stays wide open.
func NewRouter(register func(mux *http.ServeMux), logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	register(mux)
	return withCORS(withRequestLogging(mux, logger))
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func withRequestLogging(next http.Handler, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
