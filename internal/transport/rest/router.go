// Package rest exposes the HTTP API: public lookup endpoints plus a
// key-gated curation surface for administrators.
package rest

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/alarino/alarino-backend/internal/config"
	"github.com/alarino/alarino-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Translate *TranslateHandler
	DailyWord *DailyWordHandler
	Proverb   *ProverbHandler
	Admin     *AdminHandler
	Health    *HealthHandler
}

// NewRouter assembles the API router with the full middleware stack.
// The rate limiter is owned by the caller so it can be stopped on
// shutdown.
func NewRouter(cfg *config.Config, logger *slog.Logger, limiter *middleware.RateLimiter, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Requester)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   splitCSV(cfg.CORS.AllowedOrigins),
		AllowedMethods:   splitCSV(cfg.CORS.AllowedMethods),
		AllowedHeaders:   splitCSV(cfg.CORS.AllowedHeaders),
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))
	r.Use(limiter.Limit(cfg.Server.RateLimitPerMin))

	r.Route("/api", func(r chi.Router) {
		r.Post("/translate", h.Translate.Translate)
		r.Get("/daily-word", h.DailyWord.WordOfDay)
		r.Get("/proverb", h.Proverb.Random)
		r.Get("/health", h.Health.Health)
		r.Get("/ready", h.Health.Ready)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminKey(cfg.Admin.APIKey))
			r.Post("/bulk-upload", h.Admin.BulkUpload)
			r.Get("/missing", h.Admin.Missing)
		})
	})

	return r
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
