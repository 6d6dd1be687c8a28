package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/adapter/http/handler"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/adapter/http/middleware"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/infrastructure/auth"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AuthHandler       *handler.AuthHandler
	ResourceHandler   *handler.ResourceHandler
	MovementHandler   *handler.MovementHandler
	LedgerHandler     *handler.LedgerHandler
	DepartmentHandler *handler.DepartmentHandler
	HealthHandler     *handler.HealthHandler
	JWTManager        *auth.JWTManager
	LoginRateLimiter  *middleware.RateLimiter
	Logger            zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Unauthenticated endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	login := http.Handler(http.HandlerFunc(cfg.AuthHandler.Login))
	if cfg.LoginRateLimiter != nil {
		login = cfg.LoginRateLimiter.Limit(login)
	}
	r.Method(http.MethodPost, "/api/v1/auth/login", login)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTManager))

		r.Get("/auth/me", cfg.AuthHandler.Me)

		// Resources and their ledger
		r.Route("/resources", func(r chi.Router) {
			r.Post("/", cfg.ResourceHandler.Create)
			r.Get("/", cfg.ResourceHandler.List)
			r.Get("/consistency", cfg.LedgerHandler.Consistency)
			r.Get("/{id}", cfg.ResourceHandler.Get)
			r.Post("/{id}/movements", cfg.MovementHandler.Record)
			r.Get("/{id}/movements", cfg.MovementHandler.ListByResource)
			r.Get("/{id}/movements/export", cfg.MovementHandler.Export)
		})

		// Departments
		r.Route("/departments", func(r chi.Router) {
			r.Get("/", cfg.DepartmentHandler.List)
			r.Get("/{id}", cfg.DepartmentHandler.Get)
		})
	})

	return r
}
