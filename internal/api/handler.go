// Package api exposes the exercise generator and answer checker over HTTP.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abhisek/kidguard/internal/answer"
	"github.com/abhisek/kidguard/internal/exercise"
)

const (
	ServiceName = "KidGuard API"
	Version     = "1.0.0"
)

// Generator produces exercises.
type Generator interface {
	Generate(ctx context.Context, input exercise.GenerateInput) ([]exercise.Exercise, error)
}

// Checker judges answers. It never fails.
type Checker interface {
	Validate(ctx context.Context, input answer.ValidateInput) answer.Verdict
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds the dependencies shared by every route.
type Handler struct {
	generator Generator
	checker   Checker
	db        Pinger
	logger    *slog.Logger
	now       func() time.Time
}

// NewHandler creates a Handler. db may be nil when nothing is persisted.
func NewHandler(gen Generator, checker Checker, db Pinger, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		generator: gen,
		checker:   checker,
		db:        db,
		logger:    logger,
		now:       time.Now,
	}
}

// NewRouter builds the full route tree with the standard middleware stack.
// gatherer may be nil to leave /metrics unmounted.
func NewRouter(h *Handler, gatherer prometheus.Gatherer) chi.Router {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)

	h.RegisterRoutes(r)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Route("/exercise", func(r chi.Router) {
			r.Post("/generate", h.GenerateExercises)
			r.Post("/validate", h.ValidateAnswer)
		})
	})
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// ErrorBody is the envelope of every error response.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes one API error.
type ErrorDetail struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Details   any       `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Error writes a JSON error response.
func (h *Handler) Error(w http.ResponseWriter, status int, code, message string, details any) {
	JSON(w, status, ErrorBody{Error: ErrorDetail{
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: h.now().UTC(),
	}})
}
