// Package api exposes the stored panchangam calendar over HTTP.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/svaidyanathan/panchangam/internal/config"
	"github.com/svaidyanathan/panchangam/internal/database"
	"github.com/svaidyanathan/panchangam/internal/panchang"
)

// maxRangeDays caps range queries; a year plus the leap day is the
// largest span the generator ever produces in one run.
const maxRangeDays = 366

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db     *database.DB
	cfg    *config.Config
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *database.DB, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		db:     db,
		cfg:    cfg,
		logger: logger,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Health(ctx); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// ListLocations handles GET /api/v1/locations
func (h *Handlers) ListLocations(w http.ResponseWriter, r *http.Request) {
	locs, err := h.db.ListLocations(r.Context())
	if err != nil {
		h.logger.Error("failed to list locations", slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve locations")
		return
	}
	WriteSuccess(w, locs)
}

// requireLocation resolves the ?location= query parameter against the
// stored locations. Writes the error response itself on failure.
func (h *Handlers) requireLocation(w http.ResponseWriter, r *http.Request) (database.StoredLocation, bool) {
	key := r.URL.Query().Get("location")
	if key == "" {
		WriteBadRequest(w, "location query parameter is required")
		return database.StoredLocation{}, false
	}

	loc, err := h.db.GetLocation(r.Context(), key)
	if database.IsNotFound(err) {
		WriteNotFound(w, fmt.Sprintf("Unknown location: %s", key))
		return database.StoredLocation{}, false
	}
	if err != nil {
		h.logger.Error("failed to load location",
			slog.String("location", key),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve location")
		return database.StoredLocation{}, false
	}
	return loc, true
}

// GetTodayCalendar handles GET /api/v1/panchangam/today?location={key}
//
// "Today" is the current civil date in the location's own timezone, not
// the server's.
func (h *Handlers) GetTodayCalendar(w http.ResponseWriter, r *http.Request) {
	loc, ok := h.requireLocation(w, r)
	if !ok {
		return
	}

	tz, err := time.LoadLocation(loc.Timezone)
	if err != nil {
		h.logger.Error("stored location has bad timezone",
			slog.String("location", loc.Key),
			slog.String("timezone", loc.Timezone))
		WriteInternalError(w, "Location timezone is invalid")
		return
	}

	today := panchang.DateOf(time.Now().In(tz))
	h.writeEntriesForDate(w, r.Context(), loc.Key, today.String())
}

// GetDateCalendar handles GET /api/v1/panchangam/date/{date}?location={key}
func (h *Handlers) GetDateCalendar(w http.ResponseWriter, r *http.Request) {
	loc, ok := h.requireLocation(w, r)
	if !ok {
		return
	}

	dateStr := chi.URLParam(r, "date")
	if _, err := panchang.ParseDate(dateStr); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	h.writeEntriesForDate(w, r.Context(), loc.Key, dateStr)
}

func (h *Handlers) writeEntriesForDate(w http.ResponseWriter, ctx context.Context, locKey, date string) {
	entries, err := h.db.GetEntriesByDate(ctx, locKey, date)
	if database.IsNotFound(err) {
		WriteNotFound(w, fmt.Sprintf("No calendar generated for %s at %s", date, locKey))
		return
	}
	if err != nil {
		h.logger.Error("failed to get entries",
			slog.String("date", date),
			slog.String("location", locKey),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve calendar")
		return
	}
	WriteSuccess(w, entries)
}

// GetRangeCalendar handles
// GET /api/v1/panchangam/range?location={key}&start=YYYY-MM-DD&end=YYYY-MM-DD&kind={kind}
func (h *Handlers) GetRangeCalendar(w http.ResponseWriter, r *http.Request) {
	loc, ok := h.requireLocation(w, r)
	if !ok {
		return
	}

	start, end, ok := h.parseRange(w, r)
	if !ok {
		return
	}

	kind := database.EntryKind(r.URL.Query().Get("kind"))
	if kind != "" && !kind.IsValid() {
		WriteBadRequest(w, fmt.Sprintf("Invalid kind: %s", kind))
		return
	}

	entries, err := h.db.GetEntriesInRange(r.Context(), loc.Key, start.String(), end.String(), kind)
	if err != nil {
		h.logger.Error("failed to get range",
			slog.String("location", loc.Key),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve calendar")
		return
	}
	WriteSuccess(w, entries)
}

// GetFestivalsRange handles
// GET /api/v1/festivals/range?location={key}&start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handlers) GetFestivalsRange(w http.ResponseWriter, r *http.Request) {
	loc, ok := h.requireLocation(w, r)
	if !ok {
		return
	}

	start, end, ok := h.parseRange(w, r)
	if !ok {
		return
	}

	entries, err := h.db.GetFestivalsInRange(r.Context(), loc.Key, start.String(), end.String())
	if err != nil {
		h.logger.Error("failed to get festivals",
			slog.String("location", loc.Key),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve festivals")
		return
	}
	WriteSuccess(w, entries)
}

// parseRange validates start/end query parameters. Writes the error
// response itself on failure.
func (h *Handlers) parseRange(w http.ResponseWriter, r *http.Request) (start, end panchang.Date, ok bool) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" || endStr == "" {
		WriteBadRequest(w, "Both start and end date parameters are required")
		return
	}

	start, err := panchang.ParseDate(startStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid start date format: %s. Use YYYY-MM-DD", startStr))
		return
	}
	end, err = panchang.ParseDate(endStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid end date format: %s. Use YYYY-MM-DD", endStr))
		return
	}
	if start.After(end) {
		WriteBadRequest(w, "start must not be after end")
		return
	}
	if start.AddDays(maxRangeDays).Before(end) {
		WriteBadRequest(w, fmt.Sprintf("Range too large; maximum is %d days", maxRangeDays))
		return
	}
	return start, end, true
}
