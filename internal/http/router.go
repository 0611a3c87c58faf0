package http

import (
	"net/http"

	"traffic-analytics/internal/aggregators"
	"traffic-analytics/internal/ingestors"
	"traffic-analytics/internal/shared/loggers"
	"traffic-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(ingestionService ingestors.IngestionService, statsService aggregators.StatsService, ingestLimiter *rate.Limiter, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	ingestEventHandler := NewIngestEventHandler(ingestionService)
	customerStatsHandler := NewCustomerStatsHandler(statsService)

	// Routes
	router.With(mwIngestRateLimit(ingestLimiter)).Post("/events", errorHandlingAdapter(ingestEventHandler))
	router.Get("/stats/{customerID}/{day}", errorHandlingAdapter(customerStatsHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
