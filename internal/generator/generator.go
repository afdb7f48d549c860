package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/svaidyanathan/panchangam/internal/logger"
	"github.com/svaidyanathan/panchangam/internal/panchang"
)

// Generator derives calendar entries for a span of civil days across a
// set of locations.
type Generator struct {
	Sky     *panchang.Sky
	Almanac panchang.Almanac
	Finder  panchang.TransitionFinder
	Log     *slog.Logger
}

// Options configures a single Run.
type Options struct {
	Start        panchang.Date
	Days         int
	Locations    []panchang.Location
	ManualEvents []ManualEvent
	StepDays     float64 // scan step for transition precomputation
}

// seriesSlackDays extends the scan window past the requested range so
// the month maps and next-sunrise lookups never fall off the table.
const seriesSlackDays = 50

// Run computes every entry for the requested span. The tithi and
// nakshatra tables are precomputed once and shared across locations;
// everything location-dependent (sun events, month maps, epochs) is
// derived per location. A location whose new-year epochs cannot be
// resolved is logged and skipped; days without a full sunrise, sunset
// and next-sunrise triple are skipped the same way.
func (g *Generator) Run(ctx context.Context, opts Options) ([]Entry, error) {
	if opts.Days <= 0 {
		return nil, fmt.Errorf("days must be positive, got %d", opts.Days)
	}
	if opts.StepDays <= 0 {
		return nil, fmt.Errorf("step days must be positive, got %g", opts.StepDays)
	}
	end := opts.Start.AddDays(opts.Days - 1)

	t0 := opts.Start.AddDays(-panchang.LunarBackScanDays).In(time.UTC)
	t1 := end.AddDays(seriesSlackDays).In(time.UTC)

	g.Log.Info("precomputing transition tables",
		"from", opts.Start, "to", end, "step_days", opts.StepDays)
	tithi, err := panchang.PrecomputeSeries(g.Finder, g.Sky.Tithi, t0, t1, opts.StepDays)
	if err != nil {
		return nil, fmt.Errorf("tithi table: %w", err)
	}
	nakshatra, err := panchang.PrecomputeSeries(g.Finder, g.Sky.Nakshatra, t0, t1, opts.StepDays)
	if err != nil {
		return nil, fmt.Errorf("nakshatra table: %w", err)
	}

	set := newEntrySet()
	for _, loc := range opts.Locations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := g.runLocation(ctx, loc, opts, end, tithi, nakshatra, set); err != nil {
			if errors.Is(err, panchang.ErrEpochNotFound) {
				g.Log.Error("skipping location, new year epoch unresolved",
					"location", loc.Key, "error", err)
				continue
			}
			return nil, err
		}
	}
	return set.entries, nil
}

func (g *Generator) runLocation(ctx context.Context, loc panchang.Location, opts Options,
	end panchang.Date, tithi, nakshatra *panchang.SteppedSeries, set *entrySet) error {

	log := logger.ForLocation(g.Log, loc.Key)

	epochs, err := panchang.NewYearEpochs(g.Sky, g.Almanac, loc, opts.Start.Year-1, end.Year+1)
	if err != nil {
		return err
	}

	solarMap := panchang.BuildSolarMonthMap(g.Sky, g.Finder, g.Almanac, loc,
		opts.Start, end, opts.StepDays)
	lunarMap := panchang.BuildLunarMonthMap(g.Sky, g.Almanac, loc, opts.Start, end, tithi)
	rules := panchang.RulesFor(loc.Style)

	for d := opts.Start; !d.After(end); d = d.AddDays(1) {
		if err := ctx.Err(); err != nil {
			return err
		}
		sun, ok := panchang.SunriseFor(g.Almanac, loc, d)
		if !ok {
			log.Warn("skipping day without sun events", "date", d)
			continue
		}
		next, ok := panchang.SunriseFor(g.Almanac, loc, d.AddDays(1))
		if !ok {
			log.Warn("skipping day without next sunrise", "date", d)
			continue
		}

		attr := panchang.ComputeDailyAttributes(g.Sky, d, sun, next.Rise, tithi, nakshatra)
		if rise, ok := g.Almanac.Moonrise(loc.Latitude, loc.Longitude, loc.TZ,
			d.Year, d.Month, d.Day); ok {
			attr.Moonrise = rise
		}

		facts := panchang.DayFacts{
			Date:       d,
			Weekday:    attr.Weekday,
			Tithi:      attr.Tithi,
			Nakshatra:  attr.Nakshatra,
			SolarMonth: -1,
			LunarMonth: -1,
		}
		r := dayRender{
			Loc:        loc,
			Attr:       attr,
			Sky:        g.Sky,
			Samvatsara: panchang.SamvatsaraName(d, epochs),
			LunarMonth: -1,
		}
		if info, ok := solarMap[d]; ok {
			facts.SolarMonth, facts.SolarDay = info.Month, info.Day
			r.SolarMonth, r.HaveSolar = info, true
		}
		if m, ok := lunarMap[d]; ok {
			facts.LunarMonth = m
			r.LunarMonth, r.HaveLunar = m, true
		}
		if st, ok := panchang.SraddhaTithi(attr.Sunrise, attr.Sunset, tithi); ok {
			r.SraddhaTithi, r.HaveSraddha = st, true
		}
		r.Festivals = panchang.EvaluateRules(rules, facts)

		set.add(Entry{
			LocationKey: loc.Key,
			Kind:        KindPanchangam,
			Date:        d,
			Title:       r.title(),
			Description: r.description(),
			Key:         dailyKey(loc.Key, d),
		})
		for _, hit := range r.Festivals {
			set.add(Entry{
				LocationKey: loc.Key,
				Kind:        KindFestival,
				Date:        d,
				Title:       "\U0001F389 " + hit.Festival.Name,
				Description: festivalDescription(hit.Festival),
				Key:         festivalKey(loc.Key, d, hit.Festival.Name),
			})
		}
		for _, v := range panchang.TimedVratams(attr.Sunrise, attr.Sunset, tithi) {
			start := v.Start.In(loc.TZ)
			set.add(Entry{
				LocationKey: loc.Key,
				Kind:        KindVratam,
				Date:        d,
				Start:       start,
				End:         v.End.In(loc.TZ),
				Title:       v.Name,
				Description: fmt.Sprintf("%s - %s", fmtTime(v.Start, loc.TZ), fmtTime(v.End, loc.TZ)),
				Key:         vratamKey(loc.Key, start, v.Name),
			})
		}
	}

	for _, ev := range opts.ManualEvents {
		if !ev.appliesTo(loc.Key) {
			continue
		}
		set.add(ev.entryFor(loc.Key, loc.TZ))
	}
	return nil
}
