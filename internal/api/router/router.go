package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/clinicpulse/outcomes-dashboard/internal/doctors"
	httpmiddleware "github.com/clinicpulse/outcomes-dashboard/internal/http/middleware"
	"github.com/clinicpulse/outcomes-dashboard/internal/outcomes"
	"github.com/clinicpulse/outcomes-dashboard/internal/reporting"
	"github.com/clinicpulse/outcomes-dashboard/internal/templates"
	"github.com/clinicpulse/outcomes-dashboard/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	OutcomesHandler    *outcomes.Handler
	DoctorsHandler     *doctors.Handler
	DashboardHandler   *reporting.Handler
	TemplatesHandler   *templates.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// Requests/sec per client IP; zero disables rate limiting.
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}
	if cfg.RateLimitPerSecond > 0 {
		r.Use(httpmiddleware.RateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api/v1", func(api chi.Router) {
		if cfg.OutcomesHandler != nil {
			api.Route("/outcomes", func(r chi.Router) {
				r.Get("/", cfg.OutcomesHandler.List)
				r.Post("/", cfg.OutcomesHandler.Create)
				r.Patch("/{id}", cfg.OutcomesHandler.Update)
				r.Delete("/{id}", cfg.OutcomesHandler.Delete)
			})
		}
		if cfg.DoctorsHandler != nil {
			api.Route("/doctors", func(r chi.Router) {
				r.Get("/", cfg.DoctorsHandler.List)
				r.Post("/", cfg.DoctorsHandler.Create)
				r.Patch("/{id}", cfg.DoctorsHandler.Update)
				r.Delete("/{id}", cfg.DoctorsHandler.Delete)
			})
		}
		if cfg.DashboardHandler != nil {
			api.Get("/dashboard", cfg.DashboardHandler.Dashboard)
			api.Get("/dashboard/annual", cfg.DashboardHandler.Annual)
		}
		if cfg.TemplatesHandler != nil {
			api.Route("/templates", func(r chi.Router) {
				r.Get("/", cfg.TemplatesHandler.List)
				r.Post("/{id}/personalize", cfg.TemplatesHandler.Personalize)
			})
		}
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
