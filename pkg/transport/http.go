package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kcaldas/genie-skill/pkg/logging"
	"github.com/kcaldas/genie-skill/pkg/metrics"
	"github.com/kcaldas/genie-skill/pkg/skill"
)

// maxRequestBytes bounds the size of an inbound request envelope
const maxRequestBytes = 1 << 20

// NewRouter exposes the skill endpoint, health check and metrics
func NewRouter(invoker Invoker, logger logging.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Post("/", func(w http.ResponseWriter, req *http.Request) {
		var envelope skill.RequestEnvelope
		if err := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxRequestBytes)).Decode(&envelope); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json"})
			return
		}

		response, err := invoker.Invoke(req.Context(), &envelope)
		switch {
		case errors.Is(err, skill.ErrSkillIDMismatch):
			writeJSON(w, http.StatusForbidden, map[string]any{"error": "skill id mismatch"})
			return
		case errors.Is(err, skill.ErrMissingRequest):
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
			return
		case err != nil:
			logger.Error("skill invocation failed",
				"request_id", middleware.GetReqID(req.Context()),
				"error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal error"})
			return
		}

		writeJSON(w, http.StatusOK, response)
	})

	return r
}

// Serve runs the HTTP transport until ctx is cancelled
func Serve(ctx context.Context, addr string, handler http.Handler, logger logging.Logger) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("skill endpoint listening", "addr", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down skill endpoint")
		return server.Shutdown(shutdownCtx)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json;charset=UTF-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
