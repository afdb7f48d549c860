package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health
//	GET /api/v1/locations
//	GET /api/v1/panchangam/today?location={key}
//	GET /api/v1/panchangam/date/{date}?location={key}
//	GET /api/v1/panchangam/range?location={key}&start=&end=&kind=
//	GET /api/v1/festivals/range?location={key}&start=&end=
func SetupRoutes(handlers *Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RecoveryMiddleware(logger))
	r.Use(LoggingMiddleware(logger))

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/locations", handlers.ListLocations)
		r.Route("/panchangam", func(r chi.Router) {
			r.Get("/today", handlers.GetTodayCalendar)
			r.Get("/date/{date}", handlers.GetDateCalendar)
			r.Get("/range", handlers.GetRangeCalendar)
		})
		r.Get("/festivals/range", handlers.GetFestivalsRange)
	})

	return r
}
