package rest

import (
	"net/http"

	"github.com/kik369/sankey-kiro-app-sub000/infrastructure/di"
	"github.com/kik369/sankey-kiro-app-sub000/interfaces/http/rest/handlers"
	"github.com/kik369/sankey-kiro-app-sub000/interfaces/http/rest/middleware"
	pkgerrors "github.com/kik369/sankey-kiro-app-sub000/pkg/errors"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	container *di.Container
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(container *di.Container) *Router {
	return &Router{
		container: container,
		logger:    container.Logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()
	cfg := rt.container.Config

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.Metrics(rt.container.Metrics))

	if cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	// Health and metrics
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	router.Method(http.MethodGet, "/metrics", rt.container.Metrics.Handler())

	errorHandler := pkgerrors.NewErrorHandler(rt.logger, cfg.IsDevelopment())

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		// Flow endpoints
		r.Route("/flows", func(r chi.Router) {
			flowHandler := handlers.NewFlowHandler(
				rt.container.AddFlow,
				rt.container.CommandBus,
				rt.container.QueryBus,
				rt.container.InputValidator,
				errorHandler,
				rt.logger,
			)
			r.Post("/", flowHandler.AddFlow)
			r.Get("/", flowHandler.ListFlows)
			r.Delete("/", flowHandler.ClearFlows)
			r.Put("/{flowID}", flowHandler.UpdateFlowValue)
			r.Delete("/{flowID}", flowHandler.DeleteFlow)
			r.Post("/validate", flowHandler.ValidateInput)
			r.Get("/validate", flowHandler.ValidateCollection)
			r.Get("/duplicates", flowHandler.FindDuplicates)
		})

		// Chart data endpoints
		r.Route("/sankey", func(r chi.Router) {
			sankeyHandler := handlers.NewSankeyHandler(rt.container.QueryBus, errorHandler, rt.logger)
			r.Get("/", sankeyHandler.GetSankeyData)
			r.Get("/summary", sankeyHandler.GetSummary)
		})

		// Theme endpoints
		r.Route("/theme", func(r chi.Router) {
			themeHandler := handlers.NewThemeHandler(rt.container.CommandBus, rt.container.QueryBus, errorHandler, rt.logger)
			r.Get("/", themeHandler.GetTheme)
			r.Put("/", themeHandler.SetTheme)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	// The collection is in memory, so readiness matches liveness
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
