package httpserver

import (
	"context"
	"io"
	"log/slog"
	"net/http"
)

// HealthCheckHandler serves liveness and readiness probes. With no
// dependency functions it answers 200 "ALIVE"; with dependencies it runs
// each and answers 200 "READY" or 500 "NOT_READY".
func HealthCheckHandler(log *slog.Logger, deps ...func(context.Context) error) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if len(deps) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, dep := range deps {
			if err := dep(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "health check dependency failed", slog.Any("error", err))
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
