// Package main is the calendar generator. It derives panchangam,
// festival and vratam entries for every configured location and writes
// them to the SQLite database the API serves from.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/svaidyanathan/panchangam/internal/astro"
	"github.com/svaidyanathan/panchangam/internal/config"
	"github.com/svaidyanathan/panchangam/internal/database"
	"github.com/svaidyanathan/panchangam/internal/generator"
	"github.com/svaidyanathan/panchangam/internal/logger"
	"github.com/svaidyanathan/panchangam/internal/panchang"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	startFlag := flag.String("start", "", "first civil date to generate, YYYY-MM-DD (default: today)")
	daysFlag := flag.Int("days", 0, "number of days to generate (default: DAYS_AHEAD from config)")
	locFlag := flag.String("location", "", "generate only this location key (default: all)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	log := logger.Setup(cfg)

	start := panchang.DateOf(time.Now())
	if *startFlag != "" {
		start, err = panchang.ParseDate(*startFlag)
		if err != nil {
			return fmt.Errorf("bad -start: %w", err)
		}
	}
	days := cfg.DaysAhead
	if *daysFlag > 0 {
		days = *daysFlag
	}

	locations, err := panchang.DefaultLocations()
	if err != nil {
		return fmt.Errorf("load locations: %w", err)
	}
	if *locFlag != "" {
		loc, ok := panchang.LocationByKey(locations, *locFlag)
		if !ok {
			return fmt.Errorf("unknown location key %q", *locFlag)
		}
		locations = []panchang.Location{loc}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(database.DefaultConfig(cfg.DatabasePath), log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	manual, err := generator.LoadManualEvents(cfg.ManualEventsPath, log)
	if err != nil {
		return err
	}

	provider := astro.Provider{}
	gen := &generator.Generator{
		Sky: &panchang.Sky{
			Eph: provider,
			Ayanamsa: panchang.Ayanamsa{
				DegAtJ2000:    cfg.AyanamsaDegAtJ2000,
				ArcsecPerYear: cfg.AyanamsaArcsecPerYear,
			},
		},
		Almanac: provider,
		Finder:  provider,
		Log:     log,
	}

	end := start.AddDays(days - 1)
	log.Info("generating calendar",
		slog.String("from", start.String()),
		slog.String("to", end.String()),
		slog.Int("locations", len(locations)),
	)

	entries, err := gen.Run(ctx, generator.Options{
		Start:        start,
		Days:         days,
		Locations:    locations,
		ManualEvents: manual,
		StepDays:     cfg.DiscreteStepDays,
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	for _, loc := range locations {
		if err := db.UpsertLocation(ctx, storedLocation(loc)); err != nil {
			return err
		}
		n, err := db.DeleteEntriesInRange(ctx, loc.Key, start.String(), end.String())
		if err != nil {
			return err
		}
		log.Debug("cleared stale entries", slog.String("location", loc.Key), slog.Int64("deleted", n))
	}

	rows := make([]database.CalendarEntry, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, toRow(e))
	}
	if err := db.UpsertEntries(ctx, rows); err != nil {
		return fmt.Errorf("store entries: %w", err)
	}

	log.Info("generation complete", slog.Int("entries", len(rows)))
	return nil
}

func storedLocation(loc panchang.Location) database.StoredLocation {
	style := "tamil"
	if loc.Style == panchang.StyleTelugu {
		style = "telugu"
	}
	return database.StoredLocation{
		Key:       loc.Key,
		Name:      loc.Name,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Timezone:  loc.TZ.String(),
		Style:     style,
		Lang:      string(loc.Lang),
	}
}

func toRow(e generator.Entry) database.CalendarEntry {
	row := database.CalendarEntry{
		EntryKey:    e.Key,
		LocationKey: e.LocationKey,
		Kind:        database.EntryKind(e.Kind),
		Date:        e.Date.String(),
		Title:       e.Title,
		Description: e.Description,
	}
	if !e.Start.IsZero() {
		start := e.Start
		row.StartAt = &start
	}
	if !e.End.IsZero() {
		end := e.End
		row.EndAt = &end
	}
	return row
}
