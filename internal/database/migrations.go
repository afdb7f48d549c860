package database

// migrationsSQL contains all database migrations.
// Migrations are applied in order by version number.
// Each migration should be idempotent (safe to run multiple times).
var migrationsSQL = map[int]string{
	1: migrationV1CalendarSchema,
}

// migrationV1CalendarSchema creates the calendar storage schema.
//
// Key design decisions:
//
// 1. ENTRY KEY DEDUPLICATION
//   - entry_key is the generator's stable identity string
//   - UNIQUE constraint lets regeneration upsert instead of duplicating
//
// 2. CIVIL DATE AS TEXT
//   - date is the location-local civil date in YYYY-MM-DD
//   - lexicographic order equals chronological order, so range queries
//     are plain BETWEEN comparisons
//
// 3. TIMED ENTRIES
//   - vratams carry start_at/end_at in RFC 3339; day-granular kinds
//     leave them NULL
const migrationV1CalendarSchema = `
-- Migration 001: Calendar storage schema

-- ============================================================================
-- Table: locations
-- ============================================================================
-- The observation points calendars are generated for. Seeded by the
-- generate command; the API reads it to validate ?location= filters.
-- ============================================================================
CREATE TABLE IF NOT EXISTS locations (
    key TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    latitude REAL NOT NULL,
    longitude REAL NOT NULL,
    timezone TEXT NOT NULL,
    style TEXT NOT NULL CHECK (style IN ('tamil', 'telugu')),
    lang TEXT NOT NULL CHECK (lang IN ('TA', 'TE'))
);

-- ============================================================================
-- Table: calendar_entries
-- ============================================================================
-- One row per generated calendar item: the daily panchangam sheet,
-- festivals, timed vratams and manually maintained events.
-- ============================================================================
CREATE TABLE IF NOT EXISTS calendar_entries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,

    entry_key TEXT NOT NULL UNIQUE,
    location_key TEXT NOT NULL REFERENCES locations(key),

    kind TEXT NOT NULL CHECK (kind IN (
        'panchangam',
        'festival',
        'vratam',
        'manual'
    )),

    -- Location-local civil date, YYYY-MM-DD
    date TEXT NOT NULL,

    -- RFC 3339 span for timed entries, NULL for day-granular kinds
    start_at TEXT,
    end_at TEXT,

    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',

    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_entries_location_date
    ON calendar_entries(location_key, date);

CREATE INDEX IF NOT EXISTS idx_entries_kind_date
    ON calendar_entries(kind, date);
`
