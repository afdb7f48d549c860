package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrNotFound is returned when a requested record doesn't exist
	ErrNotFound = errors.New("not found")
)

// IsNotFound checks if an error is a not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// =============================================================================
// Helper Functions
// =============================================================================

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Tries multiple formats and returns nil if parsing fails.
func parseTimestamp(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}

	t, err := time.Parse(time.RFC3339, ns.String)
	if err == nil {
		return &t
	}

	t, err = time.Parse("2006-01-02 15:04:05", ns.String)
	if err == nil {
		return &t
	}

	return nil
}

const entryColumns = `
	id, entry_key, location_key, kind, date,
	start_at, end_at, title, description,
	created_at, updated_at
`

// scanEntry reads one calendar entry row. Works for both *sql.Row and
// *sql.Rows through the scanner interface.
func scanEntry(scan func(dest ...any) error) (CalendarEntry, error) {
	var e CalendarEntry
	var kind string
	var startAt, endAt, createdAt, updatedAt sql.NullString

	err := scan(
		&e.ID, &e.EntryKey, &e.LocationKey, &kind, &e.Date,
		&startAt, &endAt, &e.Title, &e.Description,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return CalendarEntry{}, err
	}

	e.Kind = EntryKind(kind)
	e.StartAt = parseTimestamp(startAt)
	e.EndAt = parseTimestamp(endAt)
	if t := parseTimestamp(createdAt); t != nil {
		e.CreatedAt = *t
	}
	if t := parseTimestamp(updatedAt); t != nil {
		e.UpdatedAt = *t
	}
	return e, nil
}

func collectEntries(rows *sql.Rows) ([]CalendarEntry, error) {
	defer rows.Close()

	var entries []CalendarEntry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan calendar entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calendar entries: %w", err)
	}
	return entries, nil
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}

// =============================================================================
// Write Path (generator)
// =============================================================================

// UpsertLocation inserts or updates one location row.
func (db *DB) UpsertLocation(ctx context.Context, loc StoredLocation) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO locations (key, name, latitude, longitude, timezone, style, lang)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			name = excluded.name,
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			timezone = excluded.timezone,
			style = excluded.style,
			lang = excluded.lang
	`, loc.Key, loc.Name, loc.Latitude, loc.Longitude, loc.Timezone, loc.Style, loc.Lang)
	if err != nil {
		return fmt.Errorf("upsert location %s: %w", loc.Key, err)
	}
	return nil
}

// UpsertEntries writes a batch of calendar entries in one transaction.
// Rows are matched on entry_key, so regenerating the same span updates
// rows in place instead of duplicating them.
func (db *DB) UpsertEntries(ctx context.Context, entries []CalendarEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return db.WithTx(ctx, func(tx *Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO calendar_entries (
				entry_key, location_key, kind, date,
				start_at, end_at, title, description
			)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(entry_key) DO UPDATE SET
				date = excluded.date,
				start_at = excluded.start_at,
				end_at = excluded.end_at,
				title = excluded.title,
				description = excluded.description,
				updated_at = datetime('now')
		`)
		if err != nil {
			return fmt.Errorf("prepare upsert: %w", err)
		}
		defer stmt.Close()

		for _, e := range entries {
			if !e.Kind.IsValid() {
				return fmt.Errorf("entry %s: invalid kind %q", e.EntryKey, e.Kind)
			}
			_, err := stmt.ExecContext(ctx,
				e.EntryKey, e.LocationKey, string(e.Kind), e.Date,
				nullTime(e.StartAt), nullTime(e.EndAt), e.Title, e.Description,
			)
			if err != nil {
				return fmt.Errorf("upsert entry %s: %w", e.EntryKey, err)
			}
		}
		return nil
	})
}

// DeleteEntriesInRange removes all generated entries for a location in
// the inclusive [from, to] date range. Manual entries are kept; they
// are not derived from the span being regenerated.
func (db *DB) DeleteEntriesInRange(ctx context.Context, locationKey, from, to string) (int64, error) {
	res, err := db.ExecContext(ctx, `
		DELETE FROM calendar_entries
		WHERE location_key = ? AND date BETWEEN ? AND ?
		  AND kind != 'manual'
	`, locationKey, from, to)
	if err != nil {
		return 0, fmt.Errorf("delete entries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

// =============================================================================
// Read Path (API)
// =============================================================================

// GetEntriesByDate retrieves all entries for a location on one date.
// Returns ErrNotFound when the date has no entries at all, which means
// it was never generated.
func (db *DB) GetEntriesByDate(ctx context.Context, locationKey, date string) ([]CalendarEntry, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT `+entryColumns+`
		FROM calendar_entries
		WHERE location_key = ? AND date = ?
		ORDER BY kind, entry_key
	`, locationKey, date)
	if err != nil {
		return nil, fmt.Errorf("query entries by date: %w", err)
	}

	entries, err := collectEntries(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNotFound
	}
	return entries, nil
}

// GetEntriesInRange retrieves entries for a location in the inclusive
// [from, to] date range, optionally filtered by kind (empty matches
// every kind). An empty result is a valid answer for range queries.
func (db *DB) GetEntriesInRange(ctx context.Context, locationKey, from, to string, kind EntryKind) ([]CalendarEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM calendar_entries
		WHERE location_key = ? AND date BETWEEN ? AND ?
	`
	args := []any{locationKey, from, to}
	if kind != "" {
		query += " AND kind = ?"
		args = append(args, string(kind))
	}
	query += " ORDER BY date, kind, entry_key"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query entries in range: %w", err)
	}
	return collectEntries(rows)
}

// GetFestivalsInRange retrieves festival entries for a location in the
// inclusive [from, to] date range.
func (db *DB) GetFestivalsInRange(ctx context.Context, locationKey, from, to string) ([]CalendarEntry, error) {
	return db.GetEntriesInRange(ctx, locationKey, from, to, EntryKindFestival)
}

// ListLocations returns every known location, ordered by key.
func (db *DB) ListLocations(ctx context.Context) ([]StoredLocation, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT key, name, latitude, longitude, timezone, style, lang
		FROM locations
		ORDER BY key
	`)
	if err != nil {
		return nil, fmt.Errorf("query locations: %w", err)
	}
	defer rows.Close()

	var locs []StoredLocation
	for rows.Next() {
		var l StoredLocation
		if err := rows.Scan(&l.Key, &l.Name, &l.Latitude, &l.Longitude,
			&l.Timezone, &l.Style, &l.Lang); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locs = append(locs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate locations: %w", err)
	}
	return locs, nil
}

// GetLocation returns one location by key, or ErrNotFound.
func (db *DB) GetLocation(ctx context.Context, key string) (StoredLocation, error) {
	var l StoredLocation
	err := db.QueryRowContext(ctx, `
		SELECT key, name, latitude, longitude, timezone, style, lang
		FROM locations
		WHERE key = ?
	`, key).Scan(&l.Key, &l.Name, &l.Latitude, &l.Longitude, &l.Timezone, &l.Style, &l.Lang)
	if errors.Is(err, sql.ErrNoRows) {
		return StoredLocation{}, ErrNotFound
	}
	if err != nil {
		return StoredLocation{}, fmt.Errorf("query location %s: %w", key, err)
	}
	return l, nil
}
