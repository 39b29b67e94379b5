package http

import (
	"net/http"

	"hit-reports/internal/ingestors"
	"hit-reports/internal/reports"
	"hit-reports/internal/shared/loggers"
	"hit-reports/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(hitService ingestors.HitService, facade *reports.Facade, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	logHitHandler := NewLogHitHandler(hitService)
	getReportHandler := NewGetReportHandler(facade)

	// Routes
	router.Post("/hits", errorHandlingAdapter(logHitHandler))
	router.Get("/reports/{name}", errorHandlingAdapter(getReportHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
