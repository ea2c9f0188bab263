package rest

import (
	"net/http"

	"glossary/application/services"
	"glossary/interfaces/http/rest/handlers"
	"glossary/interfaces/http/rest/middleware"
	pkgerrors "glossary/pkg/errors"
	"glossary/pkg/observability"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	glossary     services.GlossaryService
	errorHandler *pkgerrors.ErrorHandler
	metrics      *observability.Collector
	tracer       *observability.Tracer
	logger       *zap.Logger
}

// NewRouter creates a new router instance. A nil metrics collector disables
// both the metrics middleware and the /metrics endpoint.
func NewRouter(
	glossary services.GlossaryService,
	errorHandler *pkgerrors.ErrorHandler,
	metrics *observability.Collector,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *Router {
	return &Router{
		glossary:     glossary,
		errorHandler: errorHandler,
		metrics:      metrics,
		tracer:       tracer,
		logger:       logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Logger(rt.logger))
	if rt.tracer != nil {
		router.Use(middleware.Tracing(rt.tracer))
	}
	if rt.metrics != nil {
		router.Use(middleware.Metrics(rt.metrics))
	}
	router.Use(rt.errorHandler.Middleware)

	// Any origin may read the glossary; nothing is credentialed
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.NotFound(rt.errorHandler.NotFound)
	router.MethodNotAllowed(rt.errorHandler.MethodNotAllowed)

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	if rt.metrics != nil {
		router.Method(http.MethodGet, "/metrics", rt.metrics.Handler())
	}

	router.Route("/api", func(r chi.Router) {
		termHandler := handlers.NewTermHandler(rt.glossary, rt.errorHandler, rt.logger)
		r.Get("/terms", termHandler.ListTerms)

		graphHandler := handlers.NewGraphHandler(rt.glossary, rt.errorHandler, rt.logger)
		r.Get("/graph", graphHandler.GetGraph)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck reports ready once the dataset is loaded, which happens
// before the router is built
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
