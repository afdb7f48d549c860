package panchang

import (
	"sort"
	"time"
)

// Back/forward padding, in days, around the generation window when
// searching for month-start events. Solar months are at most 32 days
// long; the lunar back-scan needs a full synodic month plus slack.
const (
	solarMonthBackScanDays    = 45
	solarMonthForwardScanDays = 15
	// LunarBackScanDays is how far before the horizon start the tithi
	// series must reach for the lunar month map to seat its first month.
	LunarBackScanDays = 60
)

// SolarMonthInfo is the solar-month position of one civil day.
type SolarMonthInfo struct {
	Month int // month index [0, 11], equal to the solar rasi index
	Day   int // ordinal day within the month, >= 1
}

// SolarMonthMap gives each civil day its solar month and day number.
type SolarMonthMap map[Date]SolarMonthInfo

// BuildSolarMonthMap detects every solar-rasi ingress around the window
// and numbers the days of [start, end]. Each ingress starts a month on
// its own civil date when it occurs at or before local sunset, on the
// next date otherwise (the same cutover as the solar new year).
func BuildSolarMonthMap(s *Sky, tf TransitionFinder, alm Almanac, loc Location, start, end Date, stepDays float64) SolarMonthMap {
	t0 := start.AddDays(-solarMonthBackScanDays).In(time.UTC)
	t1 := end.AddDays(solarMonthForwardScanDays).In(time.UTC)

	ingresses := tf.FindTransitions(s.SolarRasi, t0, t1, stepDays)

	monthStarts := make(map[Date]int, len(ingresses))
	for _, ing := range ingresses {
		monthStarts[sunsetRuleDate(alm, loc, ing.At)] = ing.Value
	}

	// Seat the month in force at the window start: the latest detected
	// start at or before it, else sample the rasi directly.
	startDates := make([]Date, 0, len(monthStarts))
	for d := range monthStarts {
		startDates = append(startDates, d)
	}
	sort.Slice(startDates, func(i, j int) bool { return startDates[i].Before(startDates[j]) })

	current := -1
	lastStart := start
	for _, sd := range startDates {
		if sd.After(start) {
			break
		}
		current = monthStarts[sd]
		lastStart = sd
	}
	if current < 0 {
		current = s.SolarRasi(start.In(time.UTC).Add(6 * time.Hour))
		lastStart = start
	}

	m := make(SolarMonthMap)
	ordinal := daysBetween(lastStart, start) + 1
	for d := start; !d.After(end); d = d.AddDays(1) {
		if mi, ok := monthStarts[d]; ok {
			current = mi
			ordinal = 1
		}
		m[d] = SolarMonthInfo{Month: current, Day: ordinal}
		ordinal++
	}
	return m
}

func daysBetween(a, b Date) int {
	return int(b.In(time.UTC).Sub(a.In(time.UTC)) / (24 * time.Hour))
}

// LunarMonthMap gives each civil day its lunar month index [0, 11].
type LunarMonthMap map[Date]int

// BuildLunarMonthMap assigns lunar months from the shared tithi series:
// each transition into tithi 1 (new-moon end) opens the month indexed by
// (solar rasi at that instant + 1) mod 12, and a civil day belongs to
// the month whose opening transition is the latest one strictly before
// that day's sunrise.
//
// tithiSeries must extend at least LunarBackScanDays before start so the
// first day's month is known.
func BuildLunarMonthMap(s *Sky, alm Almanac, loc Location, start, end Date, tithiSeries *SteppedSeries) LunarMonthMap {
	scanFrom := start.AddDays(-LunarBackScanDays).In(time.UTC)
	scanTo := end.AddDays(2).In(time.UTC)

	type monthStart struct {
		at    time.Time
		month int
	}
	var starts []monthStart
	for _, tr := range tithiSeries.Between(scanFrom, scanTo) {
		if tr.Value == 1 {
			starts = append(starts, monthStart{
				at:    tr.At,
				month: (s.SolarRasi(tr.At) + 1) % 12,
			})
		}
	}

	m := make(LunarMonthMap)
	current := -1
	for d := start; !d.After(end); d = d.AddDays(1) {
		if st, ok := SunriseFor(alm, loc, d); ok {
			for _, ms := range starts {
				if ms.at.Before(st.Rise) {
					current = ms.month
				} else {
					break
				}
			}
		}
		// Days without a sunrise inherit the last known month; they are
		// excluded from day-level output anyway.
		m[d] = current
	}
	return m
}
