package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/CloudyJayC/DocumentScannerAI/pkg/errors"
	"github.com/CloudyJayC/DocumentScannerAI/pkg/logger"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// AnalysisID attaches a fresh id to the request context; the whole pipeline
// logs under it.
func AnalysisID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		ctx := logger.WithAnalysisID(r.Context(), id)
		w.Header().Set("X-Analysis-ID", id)
		next(w, r.WithContext(ctx))
	}
}

func Logger(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		id := logger.GetAnalysisID(r.Context())
		slog.Info("request started",
			"method", r.Method,
			"path", r.URL.Path,
			"analysis_id", id,
			"remote_addr", r.RemoteAddr,
		)

		next(rw, r)

		attrs := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
			"analysis_id", id,
		}
		switch {
		case rw.statusCode >= 500:
			slog.Error("request failed with server error", attrs...)
		case rw.statusCode >= 400:
			slog.Warn("request failed with client error", attrs...)
		default:
			slog.Info("request completed", attrs...)
		}
	}
}

func MethodChecker(allowedMethods ...string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !slices.Contains(allowedMethods, r.Method) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusOK)
					return
				}
				id := logger.GetAnalysisID(r.Context())
				RespondWithError(w, errors.ErrMethodNotAllowed("method not allowed").WithRequestID(id))
				return
			}
			next(w, r)
		}
	}
}

func Recover(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				id := logger.GetAnalysisID(r.Context())
				slog.Error("panic recovered", "error", err, "analysis_id", id, "path", r.URL.Path)
				RespondWithError(w, errors.ErrInternalServer("unexpected server error occurred").WithRequestID(id))
			}
		}()
		next(w, r)
	}
}

func RespondWithJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "err", err)
	}
}

func RespondWithError(w http.ResponseWriter, apiErr *errors.ApiError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.StatusCode())
	if err := json.NewEncoder(w).Encode(apiErr); err != nil {
		slog.Error("failed to encode error response", "err", err)
	}
}
